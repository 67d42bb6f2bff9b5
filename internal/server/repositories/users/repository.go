package users

import (
	"context"

	"github.com/dmitrijs2005/phonebook/internal/server/models"
)

type Repository interface {
	ByUsername(ctx context.Context, username string) (*models.User, error)
	ByID(ctx context.Context, id string) (*models.User, error)
	Create(ctx context.Context, user *models.User) (*models.User, error)
	Save(ctx context.Context, user *models.User) (*models.User, error)
}
