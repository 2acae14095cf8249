package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/contacthub/internal/common"
	"github.com/dmitrijs2005/contacthub/internal/dbx"
	"github.com/dmitrijs2005/contacthub/internal/server/models"
	"github.com/dmitrijs2005/contacthub/internal/server/repositories/contacts"
	"github.com/dmitrijs2005/contacthub/internal/server/repositories/repomanager"
)

// ContactInput carries the mutable fields of a contact.
type ContactInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

// SearchFilter is a validated contact search request: optional
// contains-filters plus the page window (page >= 1, size >= 1).
type SearchFilter struct {
	Name  string
	Email string
	Phone string
	Page  int
	Size  int
}

// Paging describes the metadata of one result page.
type Paging struct {
	Page      int
	TotalItem int
	TotalPage int
}

// ContactService implements owner-scoped contact CRUD and the paginated
// search engine. An owner mismatch is always reported as
// common.ErrorNotFound, never as a distinct "forbidden".
type ContactService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewContactService constructs a ContactService using the repository manager.
func NewContactService(db *sql.DB, m repomanager.RepositoryManager) *ContactService {
	return &ContactService{db: db, repomanager: m}
}

// Create stores a new contact attached to its owner.
func (s *ContactService) Create(ctx context.Context, username string, in ContactInput) (*models.Contact, error) {
	repo := s.repomanager.Contacts(s.db)
	contact := &models.Contact{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Phone:     in.Phone,
		Username:  username,
	}
	created, err := repo.Create(ctx, contact)
	if err != nil {
		return nil, fmt.Errorf("error creating contact: %w", err)
	}
	return created, nil
}

// Get returns the owner's contact by id, or common.ErrorNotFound.
func (s *ContactService) Get(ctx context.Context, username string, id int64) (*models.Contact, error) {
	repo := s.repomanager.Contacts(s.db)
	return repo.GetByID(ctx, username, id)
}

// Update replaces all mutable fields of the owner's contact. The ownership
// existence check and the write run in one transaction; a zero count yields
// common.ErrorNotFound before anything is written.
func (s *ContactService) Update(ctx context.Context, username string, id int64, in ContactInput) (*models.Contact, error) {
	contact := &models.Contact{
		ID:        id,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Phone:     in.Phone,
		Username:  username,
	}
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Contacts(tx)
		n, err := repo.Count(ctx, username, id)
		if err != nil {
			return err
		}
		if n == 0 {
			return common.ErrorNotFound
		}
		return repo.Update(ctx, contact)
	})
	if err != nil {
		return nil, err
	}
	return contact, nil
}

// Delete removes the owner's contact using the count-then-delete pattern:
// exactly one row must match ownership and id, otherwise common.ErrorNotFound.
func (s *ContactService) Delete(ctx context.Context, username string, id int64) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Contacts(tx)
		n, err := repo.Count(ctx, username, id)
		if err != nil {
			return err
		}
		if n != 1 {
			return common.ErrorNotFound
		}
		return repo.Delete(ctx, username, id)
	})
}

// Search runs the filter conjunction over the owner's contacts and computes
// the paging metadata. A page past the end returns an empty list while the
// totals still reflect the full match count.
func (s *ContactService) Search(ctx context.Context, username string, f SearchFilter) ([]*models.Contact, Paging, error) {
	repo := s.repomanager.Contacts(s.db)

	filter := contacts.Filter{
		Name:   f.Name,
		Email:  f.Email,
		Phone:  f.Phone,
		Limit:  f.Size,
		Offset: (f.Page - 1) * f.Size,
	}

	result, err := repo.Search(ctx, username, filter)
	if err != nil {
		return nil, Paging{}, fmt.Errorf("error searching contacts: %w", err)
	}

	total, err := repo.SearchCount(ctx, username, filter)
	if err != nil {
		return nil, Paging{}, fmt.Errorf("error counting contacts: %w", err)
	}

	// Integer ceiling; zero items naturally gives zero pages.
	totalPage := (int(total) + f.Size - 1) / f.Size

	return result, Paging{Page: f.Page, TotalItem: int(total), TotalPage: totalPage}, nil
}
