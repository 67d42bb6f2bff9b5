// Package persons provides repository access to the directory's person
// collection.
package persons

import (
	"context"

	"github.com/dmitrijs2005/phonebook/internal/server/docstore"
	"github.com/dmitrijs2005/phonebook/internal/server/models"
)

// StoreRepository implements Repository on top of a document-store collection.
type StoreRepository struct {
	coll docstore.Collection[*models.Person]
}

func NewStoreRepository(coll docstore.Collection[*models.Person]) *StoreRepository {
	return &StoreRepository{coll: coll}
}

func (r *StoreRepository) Count(ctx context.Context) (int64, error) {
	return r.coll.Count(ctx)
}

func (r *StoreRepository) All(ctx context.Context) ([]*models.Person, error) {
	return r.coll.Find(ctx, docstore.Filter{})
}

// ByPhonePresence returns persons with or without a phone. This is a pure
// read: it must never remove matched documents.
func (r *StoreRepository) ByPhonePresence(ctx context.Context, hasPhone bool) ([]*models.Person, error) {
	return r.coll.Find(ctx, docstore.Filter{"phone": docstore.Exists(hasPhone)})
}

func (r *StoreRepository) ByName(ctx context.Context, name string) (*models.Person, error) {
	return r.coll.FindOne(ctx, docstore.Filter{"name": name})
}

func (r *StoreRepository) ByID(ctx context.Context, id string) (*models.Person, error) {
	return r.coll.FindOne(ctx, docstore.Filter{"_id": id})
}

func (r *StoreRepository) Add(ctx context.Context, person *models.Person) (*models.Person, error) {
	return r.coll.Insert(ctx, person)
}

func (r *StoreRepository) Save(ctx context.Context, person *models.Person) (*models.Person, error) {
	return r.coll.Update(ctx, person)
}
