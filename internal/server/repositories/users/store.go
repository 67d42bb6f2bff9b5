// Package users provides repository access to the account collection.
package users

import (
	"context"

	"github.com/dmitrijs2005/phonebook/internal/server/docstore"
	"github.com/dmitrijs2005/phonebook/internal/server/models"
)

// StoreRepository implements Repository on top of a document-store collection.
type StoreRepository struct {
	coll docstore.Collection[*models.User]
}

func NewStoreRepository(coll docstore.Collection[*models.User]) *StoreRepository {
	return &StoreRepository{coll: coll}
}

func (r *StoreRepository) ByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.coll.FindOne(ctx, docstore.Filter{"username": username})
}

func (r *StoreRepository) ByID(ctx context.Context, id string) (*models.User, error) {
	return r.coll.FindOne(ctx, docstore.Filter{"_id": id})
}

func (r *StoreRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	return r.coll.Insert(ctx, user)
}

func (r *StoreRepository) Save(ctx context.Context, user *models.User) (*models.User, error) {
	return r.coll.Update(ctx, user)
}
