package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrijs2005/contacthub/internal/server/services"
	"github.com/dmitrijs2005/contacthub/internal/validation"
	"github.com/dmitrijs2005/contacthub/pkg/api"
)

func contactInput(req api.ContactRequest) services.ContactInput {
	return services.ContactInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	}
}

// handleCreateContact serves POST /api/contacts.
func (s *Server) handleCreateContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := userFromContext(ctx)

	var req api.ContactRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(ctx, w, err)
		return
	}
	if err := validation.Contact(req); err != nil {
		s.writeError(ctx, w, err)
		return
	}

	contact, err := s.contacts.Create(ctx, user.Username, contactInput(req))
	if err != nil {
		s.writeError(ctx, w, err)
		return
	}

	s.writeData(w, http.StatusCreated, toContactResponse(contact))
}

// handleGetContact serves GET /api/contacts/{contactId}.
func (s *Server) handleGetContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := userFromContext(ctx)

	id, err := validation.ID("contactId", chi.URLParam(r, "contactId"))
	if err != nil {
		s.writeError(ctx, w, err)
		return
	}

	contact, err := s.contacts.Get(ctx, user.Username, id)
	if err != nil {
		s.writeError(ctx, w, err)
		return
	}

	s.writeData(w, http.StatusOK, toContactResponse(contact))
}

// handleUpdateContact serves PUT /api/contacts/{contactId}: a full replace
// of the mutable fields.
func (s *Server) handleUpdateContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := userFromContext(ctx)

	id, err := validation.ID("contactId", chi.URLParam(r, "contactId"))
	if err != nil {
		s.writeError(ctx, w, err)
		return
	}

	var req api.ContactRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(ctx, w, err)
		return
	}
	if err := validation.Contact(req); err != nil {
		s.writeError(ctx, w, err)
		return
	}

	contact, err := s.contacts.Update(ctx, user.Username, id, contactInput(req))
	if err != nil {
		s.writeError(ctx, w, err)
		return
	}

	s.writeData(w, http.StatusOK, toContactResponse(contact))
}

// handleDeleteContact serves DELETE /api/contacts/{contactId}.
func (s *Server) handleDeleteContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := userFromContext(ctx)

	id, err := validation.ID("contactId", chi.URLParam(r, "contactId"))
	if err != nil {
		s.writeError(ctx, w, err)
		return
	}

	if err := s.contacts.Delete(ctx, user.Username, id); err != nil {
		s.writeError(ctx, w, err)
		return
	}

	s.writeData(w, http.StatusOK, "ok")
}

// handleSearchContacts serves GET /api/contacts with optional name, email,
// and phone contains-filters plus page/size.
func (s *Server) handleSearchContacts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := userFromContext(ctx)
	q := r.URL.Query()

	page, size, err := validation.ParsePaging(q.Get("page"), q.Get("size"))
	if err != nil {
		s.writeError(ctx, w, err)
		return
	}

	filter := services.SearchFilter{
		Name:  q.Get("name"),
		Email: q.Get("email"),
		Phone: q.Get("phone"),
		Page:  page,
		Size:  size,
	}

	result, paging, err := s.contacts.Search(ctx, user.Username, filter)
	if err != nil {
		s.writeError(ctx, w, err)
		return
	}

	s.writePage(w, toContactResponses(result), api.Paging{
		Page:      paging.Page,
		TotalItem: paging.TotalItem,
		TotalPage: paging.TotalPage,
	})
}
