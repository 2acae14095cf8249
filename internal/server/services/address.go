package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/contacthub/internal/common"
	"github.com/dmitrijs2005/contacthub/internal/dbx"
	"github.com/dmitrijs2005/contacthub/internal/server/models"
	"github.com/dmitrijs2005/contacthub/internal/server/repositories/repomanager"
)

// AddressInput carries the mutable fields of an address.
type AddressInput struct {
	Street     string
	City       string
	Province   string
	Country    string
	PostalCode string
}

// AddressService implements address CRUD. Ownership is transitive: every
// operation first resolves the parent contact under the requesting user, and
// a mismatch anywhere along the chain is common.ErrorNotFound.
type AddressService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewAddressService constructs an AddressService using the repository manager.
func NewAddressService(db *sql.DB, m repomanager.RepositoryManager) *AddressService {
	return &AddressService{db: db, repomanager: m}
}

// ensureContact confirms the contact exists and belongs to the user.
func (s *AddressService) ensureContact(ctx context.Context, db dbx.DBTX, username string, contactID int64) error {
	n, err := s.repomanager.Contacts(db).Count(ctx, username, contactID)
	if err != nil {
		return err
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

// Create stores a new address under the user's contact.
func (s *AddressService) Create(ctx context.Context, username string, contactID int64, in AddressInput) (*models.Address, error) {
	if err := s.ensureContact(ctx, s.db, username, contactID); err != nil {
		return nil, err
	}

	address := &models.Address{
		ContactID:  contactID,
		Street:     in.Street,
		City:       in.City,
		Province:   in.Province,
		Country:    in.Country,
		PostalCode: in.PostalCode,
	}
	created, err := s.repomanager.Addresses(s.db).Create(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("error creating address: %w", err)
	}
	return created, nil
}

// Get returns one address of the user's contact, or common.ErrorNotFound.
func (s *AddressService) Get(ctx context.Context, username string, contactID, addressID int64) (*models.Address, error) {
	if err := s.ensureContact(ctx, s.db, username, contactID); err != nil {
		return nil, err
	}
	return s.repomanager.Addresses(s.db).GetByID(ctx, contactID, addressID)
}

// Update replaces all mutable fields of the address in one operation (no
// partial merge). Ownership check, existence check, and write share one
// transaction.
func (s *AddressService) Update(ctx context.Context, username string, contactID, addressID int64, in AddressInput) (*models.Address, error) {
	address := &models.Address{
		ID:         addressID,
		ContactID:  contactID,
		Street:     in.Street,
		City:       in.City,
		Province:   in.Province,
		Country:    in.Country,
		PostalCode: in.PostalCode,
	}
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.ensureContact(ctx, tx, username, contactID); err != nil {
			return err
		}
		repo := s.repomanager.Addresses(tx)
		n, err := repo.Count(ctx, contactID, addressID)
		if err != nil {
			return err
		}
		if n == 0 {
			return common.ErrorNotFound
		}
		return repo.Update(ctx, address)
	})
	if err != nil {
		return nil, err
	}
	return address, nil
}

// Delete removes the address using the count-then-delete pattern.
func (s *AddressService) Delete(ctx context.Context, username string, contactID, addressID int64) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.ensureContact(ctx, tx, username, contactID); err != nil {
			return err
		}
		repo := s.repomanager.Addresses(tx)
		n, err := repo.Count(ctx, contactID, addressID)
		if err != nil {
			return err
		}
		if n != 1 {
			return common.ErrorNotFound
		}
		return repo.Delete(ctx, contactID, addressID)
	})
}

// List returns every address of the user's contact.
func (s *AddressService) List(ctx context.Context, username string, contactID int64) ([]*models.Address, error) {
	if err := s.ensureContact(ctx, s.db, username, contactID); err != nil {
		return nil, err
	}
	return s.repomanager.Addresses(s.db).ListByContact(ctx, contactID)
}
