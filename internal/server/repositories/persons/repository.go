package persons

import (
	"context"

	"github.com/dmitrijs2005/phonebook/internal/server/models"
)

type Repository interface {
	Count(ctx context.Context) (int64, error)
	All(ctx context.Context) ([]*models.Person, error)
	ByPhonePresence(ctx context.Context, hasPhone bool) ([]*models.Person, error)
	ByName(ctx context.Context, name string) (*models.Person, error)
	ByID(ctx context.Context, id string) (*models.Person, error)
	Add(ctx context.Context, person *models.Person) (*models.Person, error)
	Save(ctx context.Context, person *models.Person) (*models.Person, error)
}
