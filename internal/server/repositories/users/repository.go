package users

import (
	"context"

	"github.com/dmitrijs2005/contacthub/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) error
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByToken(ctx context.Context, token string) (*models.User, error)
	CountByUsername(ctx context.Context, username string) (int64, error)
	Update(ctx context.Context, user *models.User) error
	SetToken(ctx context.Context, username string, token string) error
	ClearToken(ctx context.Context, username string, token string) error
}
