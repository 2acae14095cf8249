// Package rest exposes the ContactHub HTTP/JSON API: user registration and
// sessions, owner-scoped contact CRUD with paginated search, and addresses
// nested under contacts.
package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrijs2005/contacthub/internal/logging"
	"github.com/dmitrijs2005/contacthub/internal/server/models"
	"github.com/dmitrijs2005/contacthub/internal/server/services"
)

// UserDirectory is the slice of UserService the handlers need.
type UserDirectory interface {
	Register(ctx context.Context, username, password, name string) (*models.User, error)
	Login(ctx context.Context, username, password string) (string, error)
	GetByToken(ctx context.Context, token string) (*models.User, error)
	Update(ctx context.Context, username, name, password string) (*models.User, error)
	Logout(ctx context.Context, username, token string) error
}

// ContactDirectory is the slice of ContactService the handlers need.
type ContactDirectory interface {
	Create(ctx context.Context, username string, in services.ContactInput) (*models.Contact, error)
	Get(ctx context.Context, username string, id int64) (*models.Contact, error)
	Update(ctx context.Context, username string, id int64, in services.ContactInput) (*models.Contact, error)
	Delete(ctx context.Context, username string, id int64) error
	Search(ctx context.Context, username string, f services.SearchFilter) ([]*models.Contact, services.Paging, error)
}

// AddressDirectory is the slice of AddressService the handlers need.
type AddressDirectory interface {
	Create(ctx context.Context, username string, contactID int64, in services.AddressInput) (*models.Address, error)
	Get(ctx context.Context, username string, contactID, addressID int64) (*models.Address, error)
	Update(ctx context.Context, username string, contactID, addressID int64, in services.AddressInput) (*models.Address, error)
	Delete(ctx context.Context, username string, contactID, addressID int64) error
	List(ctx context.Context, username string, contactID int64) ([]*models.Address, error)
}

type Server struct {
	address         string
	shutdownTimeout time.Duration
	logger          logging.Logger
	users           UserDirectory
	contacts        ContactDirectory
	addresses       AddressDirectory
}

func NewServer(address string, shutdownTimeout time.Duration, l logging.Logger, us UserDirectory, cs ContactDirectory, as AddressDirectory) *Server {
	return &Server{
		address:         address,
		shutdownTimeout: shutdownTimeout,
		logger:          l.With("module", "rest_server"),
		users:           us,
		contacts:        cs,
		addresses:       as,
	}
}

// Handler builds the chi router. Registration and login are public; every
// other route sits behind the auth gate.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Post("/api/users", s.handleRegister)
	r.Post("/api/users/login", s.handleLogin)

	r.Group(func(r chi.Router) {
		r.Use(s.authenticate)

		r.Get("/api/users/current", s.handleGetCurrentUser)
		r.Patch("/api/users/current", s.handleUpdateCurrentUser)
		r.Delete("/api/users/logout", s.handleLogout)

		r.Route("/api/contacts", func(r chi.Router) {
			r.Post("/", s.handleCreateContact)
			r.Get("/", s.handleSearchContacts)

			r.Route("/{contactId}", func(r chi.Router) {
				r.Get("/", s.handleGetContact)
				r.Put("/", s.handleUpdateContact)
				r.Delete("/", s.handleDeleteContact)

				r.Route("/addresses", func(r chi.Router) {
					r.Post("/", s.handleCreateAddress)
					r.Get("/", s.handleListAddresses)
					r.Get("/{addressId}", s.handleGetAddress)
					r.Put("/{addressId}", s.handleUpdateAddress)
					r.Delete("/{addressId}", s.handleDeleteAddress)
				})
			})
		})
	})

	return r
}

// Run starts the HTTP server and shuts it down gracefully when ctx is
// cancelled.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Handler(),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	select {
	case <-ctx.Done():
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		<-errCh
		return nil
	case err := <-errCh:
		return err
	}
}
