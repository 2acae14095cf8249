package rest

import (
	"net/http"

	"github.com/dmitrijs2005/contacthub/internal/common"
	"github.com/dmitrijs2005/contacthub/internal/validation"
	"github.com/dmitrijs2005/contacthub/pkg/api"
)

// handleRegister serves POST /api/users.
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(ctx, w, err)
		return
	}
	if err := validation.Register(req); err != nil {
		s.writeError(ctx, w, err)
		return
	}

	user, err := s.users.Register(ctx, req.Username, req.Password, req.Name)
	if err != nil {
		s.writeError(ctx, w, err)
		return
	}

	s.logger.Info(ctx, "user registered", "username", user.Username)
	s.writeData(w, http.StatusCreated, toUserResponse(user))
}

// handleLogin serves POST /api/users/login.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(ctx, w, err)
		return
	}
	if err := validation.Login(req); err != nil {
		s.writeError(ctx, w, err)
		return
	}

	token, err := s.users.Login(ctx, req.Username, req.Password)
	if err != nil {
		s.writeError(ctx, w, err)
		return
	}

	s.logger.Info(ctx, "user logged in", "username", req.Username)
	s.writeData(w, http.StatusOK, api.TokenResponse{Token: token})
}

// handleGetCurrentUser serves GET /api/users/current.
func (s *Server) handleGetCurrentUser(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())
	s.writeData(w, http.StatusOK, toUserResponse(user))
}

// handleUpdateCurrentUser serves PATCH /api/users/current. The update is
// partial: absent fields keep their stored values.
func (s *Server) handleUpdateCurrentUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := userFromContext(ctx)

	var req api.UpdateUserRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(ctx, w, err)
		return
	}
	if err := validation.UpdateUser(req); err != nil {
		s.writeError(ctx, w, err)
		return
	}

	updated, err := s.users.Update(ctx, user.Username, req.Name, req.Password)
	if err != nil {
		s.writeError(ctx, w, err)
		return
	}

	s.writeData(w, http.StatusOK, toUserResponse(updated))
}

// handleLogout serves DELETE /api/users/logout, revoking the presented token.
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := userFromContext(ctx)
	token := r.Header.Get(common.AuthHeaderName)

	if err := s.users.Logout(ctx, user.Username, token); err != nil {
		s.writeError(ctx, w, err)
		return
	}

	s.logger.Info(ctx, "user logged out", "username", user.Username)
	s.writeData(w, http.StatusOK, "ok")
}
