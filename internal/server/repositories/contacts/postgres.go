// Package contacts provides a PostgreSQL-backed repository for contact rows.
// Every read and write is scoped by the owning username in addition to the
// row id, so a mismatch is indistinguishable from a missing row.
package contacts

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

// Create inserts a contact for its owner and fills in the generated id.
func (r *PostgresRepository) Create(ctx context.Context, contact *models.Contact) (*models.Contact, error) {
	query := `
		INSERT INTO contacts (first_name, last_name, email, phone, username)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query,
		contact.FirstName, contact.LastName, contact.Email, contact.Phone, contact.Username).Scan(&contact.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return contact, nil
}

// GetByID returns the contact matching both id and owner.
// If no such row exists, it returns common.ErrorNotFound.
func (r *PostgresRepository) GetByID(ctx context.Context, username string, id int64) (*models.Contact, error) {
	query := `
		SELECT id, first_name, last_name, email, phone, username FROM contacts
		WHERE id = $1 AND username = $2
	`
	contact := &models.Contact{}
	var lastName, email, phone sql.NullString
	err := r.db.QueryRowContext(ctx, query, id, username).Scan(
		&contact.ID, &contact.FirstName, &lastName, &email, &phone, &contact.Username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	contact.LastName = lastName.String
	contact.Email = email.String
	contact.Phone = phone.String
	return contact, nil
}

// Count reports how many rows match both id and owner (0 or 1). It backs the
// count-then-act existence checks of update and delete.
func (r *PostgresRepository) Count(ctx context.Context, username string, id int64) (int64, error) {
	query := `
		SELECT COUNT(*) FROM contacts
		WHERE id = $1 AND username = $2
	`
	var n int64
	if err := r.db.QueryRowContext(ctx, query, id, username).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

// Update replaces all mutable fields of the owner's contact.
func (r *PostgresRepository) Update(ctx context.Context, contact *models.Contact) error {
	query := `
		UPDATE contacts SET first_name = $1, last_name = $2, email = $3, phone = $4
		WHERE id = $5 AND username = $6
	`
	if _, err := r.db.ExecContext(ctx, query,
		contact.FirstName, contact.LastName, contact.Email, contact.Phone, contact.ID, contact.Username); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// Delete removes the owner's contact by id.
func (r *PostgresRepository) Delete(ctx context.Context, username string, id int64) error {
	query := `
		DELETE FROM contacts
		WHERE id = $1 AND username = $2
	`
	if _, err := r.db.ExecContext(ctx, query, id, username); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// Search returns one page of the owner's contacts matching the filter
// conjunction, ordered by id ascending for stable paging.
func (r *PostgresRepository) Search(ctx context.Context, username string, f Filter) ([]*models.Contact, error) {
	where, args := searchWhere(username, f)
	query := fmt.Sprintf(`
		SELECT id, first_name, last_name, email, phone, username FROM contacts
		WHERE %s
		ORDER BY id
		LIMIT $%d OFFSET $%d
	`, where, len(args)+1, len(args)+2)
	args = append(args, f.Limit, f.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Contact
	for rows.Next() {
		var item models.Contact
		var lastName, email, phone sql.NullString
		if err := rows.Scan(&item.ID, &item.FirstName, &lastName, &email, &phone, &item.Username); err != nil {
			return nil, err
		}
		item.LastName = lastName.String
		item.Email = email.String
		item.Phone = phone.String
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// SearchCount counts every row matching the same conjunction, ignoring the
// page window.
func (r *PostgresRepository) SearchCount(ctx context.Context, username string, f Filter) (int64, error) {
	where, args := searchWhere(username, f)
	query := fmt.Sprintf(`
		SELECT COUNT(*) FROM contacts
		WHERE %s
	`, where)

	var n int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}
