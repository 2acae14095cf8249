package contacts

import (
	"context"

	"github.com/dmitrijs2005/contacthub/internal/server/models"
)

// Filter holds the optional contains-filters and the page window of a
// contact search. Empty strings contribute no predicate.
type Filter struct {
	Name   string
	Email  string
	Phone  string
	Limit  int
	Offset int
}

type Repository interface {
	Create(ctx context.Context, contact *models.Contact) (*models.Contact, error)
	GetByID(ctx context.Context, username string, id int64) (*models.Contact, error)
	Count(ctx context.Context, username string, id int64) (int64, error)
	Update(ctx context.Context, contact *models.Contact) error
	Delete(ctx context.Context, username string, id int64) error
	Search(ctx context.Context, username string, f Filter) ([]*models.Contact, error)
	SearchCount(ctx context.Context, username string, f Filter) (int64, error)
}
