// Package users provides a PostgreSQL-backed repository for account rows,
// including the opaque session token used by the auth gate.
package users

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

// Create inserts a new user row. The password field must already be hashed.
func (r *PostgresRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (username, password, name)
		VALUES ($1, $2, $3)
	`
	if _, err := r.db.ExecContext(ctx, query, user.Username, user.Password, user.Name); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// GetByUsername returns the user row for the given username.
// If not found, it returns common.ErrorNotFound.
func (r *PostgresRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `
		SELECT username, password, name, token FROM users
		WHERE username = $1
	`
	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, username).Scan(&user.Username, &user.Password, &user.Name, &user.Token)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return user, nil
}

// GetByToken resolves a session token to its user by exact equality.
// This is the single store lookup the auth gate performs per request.
func (r *PostgresRepository) GetByToken(ctx context.Context, token string) (*models.User, error) {
	query := `
		SELECT username, password, name, token FROM users
		WHERE token = $1
	`
	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, token).Scan(&user.Username, &user.Password, &user.Name, &user.Token)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return user, nil
}

// CountByUsername reports how many rows carry the given username (0 or 1).
func (r *PostgresRepository) CountByUsername(ctx context.Context, username string) (int64, error) {
	query := `
		SELECT COUNT(*) FROM users
		WHERE username = $1
	`
	var n int64
	if err := r.db.QueryRowContext(ctx, query, username).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

// Update replaces the mutable profile fields (name, password hash).
func (r *PostgresRepository) Update(ctx context.Context, user *models.User) error {
	query := `
		UPDATE users SET name = $1, password = $2
		WHERE username = $3
	`
	if _, err := r.db.ExecContext(ctx, query, user.Name, user.Password, user.Username); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// SetToken stores a freshly issued session token on the user row.
func (r *PostgresRepository) SetToken(ctx context.Context, username string, token string) error {
	query := `
		UPDATE users SET token = $1
		WHERE username = $2
	`
	if _, err := r.db.ExecContext(ctx, query, token, username); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// ClearToken removes the session token with compare-and-clear semantics:
// only the presented token is revoked, so a token issued by a concurrent
// login survives.
func (r *PostgresRepository) ClearToken(ctx context.Context, username string, token string) error {
	query := `
		UPDATE users SET token = NULL
		WHERE username = $1 AND token = $2
	`
	if _, err := r.db.ExecContext(ctx, query, username, token); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
