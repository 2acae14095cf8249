// Package addresses provides a PostgreSQL-backed repository for address rows.
// Rows are scoped by contact id; the caller is responsible for resolving the
// contact under the requesting user's ownership first.
package addresses

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/contacthub/internal/common"
	"github.com/dmitrijs2005/contacthub/internal/dbx"
	"github.com/dmitrijs2005/contacthub/internal/server/models"
)

// PostgresRepository implements Repository over dbx.DBTX
// (satisfied by *sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts an address under its contact and fills in the generated id.
func (r *PostgresRepository) Create(ctx context.Context, address *models.Address) (*models.Address, error) {
	query := `
		INSERT INTO addresses (contact_id, street, city, province, country, postal_code)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query,
		address.ContactID, address.Street, address.City, address.Province,
		address.Country, address.PostalCode).Scan(&address.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return address, nil
}

// GetByID returns the address matching both id and contact.
// If no such row exists, it returns common.ErrorNotFound.
func (r *PostgresRepository) GetByID(ctx context.Context, contactID int64, id int64) (*models.Address, error) {
	query := `
		SELECT id, contact_id, street, city, province, country, postal_code FROM addresses
		WHERE id = $1 AND contact_id = $2
	`
	address := &models.Address{}
	var street, city, province sql.NullString
	err := r.db.QueryRowContext(ctx, query, id, contactID).Scan(
		&address.ID, &address.ContactID, &street, &city, &province,
		&address.Country, &address.PostalCode)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	address.Street = street.String
	address.City = city.String
	address.Province = province.String
	return address, nil
}

// Count reports how many rows match both id and contact (0 or 1). It backs
// the count-then-act existence checks of update and delete.
func (r *PostgresRepository) Count(ctx context.Context, contactID int64, id int64) (int64, error) {
	query := `
		SELECT COUNT(*) FROM addresses
		WHERE id = $1 AND contact_id = $2
	`
	var n int64
	if err := r.db.QueryRowContext(ctx, query, id, contactID).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

// Update replaces all mutable fields of the address in one write.
func (r *PostgresRepository) Update(ctx context.Context, address *models.Address) error {
	query := `
		UPDATE addresses SET street = $1, city = $2, province = $3, country = $4, postal_code = $5
		WHERE id = $6 AND contact_id = $7
	`
	if _, err := r.db.ExecContext(ctx, query,
		address.Street, address.City, address.Province, address.Country,
		address.PostalCode, address.ID, address.ContactID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// Delete removes the contact's address by id.
func (r *PostgresRepository) Delete(ctx context.Context, contactID int64, id int64) error {
	query := `
		DELETE FROM addresses
		WHERE id = $1 AND contact_id = $2
	`
	if _, err := r.db.ExecContext(ctx, query, id, contactID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// ListByContact returns every address of a contact ordered by id ascending.
func (r *PostgresRepository) ListByContact(ctx context.Context, contactID int64) ([]*models.Address, error) {
	query := `
		SELECT id, contact_id, street, city, province, country, postal_code FROM addresses
		WHERE contact_id = $1
		ORDER BY id
	`
	rows, err := r.db.QueryContext(ctx, query, contactID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Address
	for rows.Next() {
		var item models.Address
		var street, city, province sql.NullString
		if err := rows.Scan(&item.ID, &item.ContactID, &street, &city, &province,
			&item.Country, &item.PostalCode); err != nil {
			return nil, err
		}
		item.Street = street.String
		item.City = city.String
		item.Province = province.String
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
