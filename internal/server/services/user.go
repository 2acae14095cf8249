// Package services contains server-side business logic. This file implements
// UserService, which handles registration, credential verification, session
// token issuance/revocation, and profile updates.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/contacthub/internal/common"
	"github.com/dmitrijs2005/contacthub/internal/dbx"
	"github.com/dmitrijs2005/contacthub/internal/server/models"
	"github.com/dmitrijs2005/contacthub/internal/server/repositories/repomanager"
)

// UserService provides account-related operations:
// - Register: create users with a bcrypt-hashed password
// - Login: verify credentials and issue an opaque session token
// - GetByToken: resolve a session token for the auth gate
// - Update: partial profile update (name and/or password)
// - Logout: revoke the presented session token
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewUserService constructs a UserService using the repository manager.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager) *UserService {
	return &UserService{db: db, repomanager: m}
}

// Register creates a new user. A taken username yields common.ErrorConflict.
// The returned user carries the hash internally; callers must project it
// away before responding.
func (s *UserService) Register(ctx context.Context, username, password, name string) (*models.User, error) {
	repo := s.repomanager.Users(s.db)

	n, err := repo.CountByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("error checking username: %w", err)
	}
	if n > 0 {
		return nil, common.ErrorConflict
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, common.ErrorInternal
	}

	user := &models.User{Username: username, Password: string(hash), Name: name}
	if err := repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return user, nil
}

// Login verifies the password against the stored bcrypt hash and, on success,
// persists and returns a fresh opaque token. Missing user and wrong password
// both yield the same generic common.ErrorUnauthorized.
func (s *UserService) Login(ctx context.Context, username, password string) (string, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorUnauthorized
		}
		return "", fmt.Errorf("error getting user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return "", common.ErrorUnauthorized
	}

	token := uuid.NewString()
	if err := repo.SetToken(ctx, username, token); err != nil {
		return "", fmt.Errorf("error saving token: %w", err)
	}
	return token, nil
}

// GetByToken resolves an opaque session token to its user. Any miss,
// including an empty token, yields common.ErrorUnauthorized.
func (s *UserService) GetByToken(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, common.ErrorUnauthorized
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, fmt.Errorf("error getting user by token: %w", err)
	}
	return user, nil
}

// Update applies a partial profile update: empty name or password leaves the
// stored value untouched; a provided password is re-hashed. The read and
// write run in one transaction.
func (s *UserService) Update(ctx context.Context, username, name, password string) (*models.User, error) {
	var updated *models.User
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)

		user, err := repo.GetByUsername(ctx, username)
		if err != nil {
			return err
		}
		if name != "" {
			user.Name = name
		}
		if password != "" {
			hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
			if err != nil {
				return common.ErrorInternal
			}
			user.Password = string(hash)
		}
		if err := repo.Update(ctx, user); err != nil {
			return err
		}
		updated = user
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Logout clears the presented session token with compare-and-clear semantics.
// Subsequent GetByToken lookups with the old token fail.
func (s *UserService) Logout(ctx context.Context, username, token string) error {
	repo := s.repomanager.Users(s.db)
	if err := repo.ClearToken(ctx, username, token); err != nil {
		return fmt.Errorf("error clearing token: %w", err)
	}
	return nil
}
