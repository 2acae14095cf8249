package addresses

import (
	"context"

	"github.com/dmitrijs2005/contacthub/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, address *models.Address) (*models.Address, error)
	GetByID(ctx context.Context, contactID int64, id int64) (*models.Address, error)
	Count(ctx context.Context, contactID int64, id int64) (int64, error)
	Update(ctx context.Context, address *models.Address) error
	Delete(ctx context.Context, contactID int64, id int64) error
	ListByContact(ctx context.Context, contactID int64) ([]*models.Address, error)
}
