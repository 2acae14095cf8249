package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrijs2005/contacthub/internal/server/services"
	"github.com/dmitrijs2005/contacthub/internal/validation"
	"github.com/dmitrijs2005/contacthub/pkg/api"
)

func addressInput(req api.AddressRequest) services.AddressInput {
	return services.AddressInput{
		Street:     req.Street,
		City:       req.City,
		Province:   req.Province,
		Country:    req.Country,
		PostalCode: req.PostalCode,
	}
}

// addressIDs extracts and validates both path parameters of a nested
// address route.
func addressIDs(r *http.Request) (contactID, addressID int64, err error) {
	contactID, err = validation.ID("contactId", chi.URLParam(r, "contactId"))
	if err != nil {
		return 0, 0, err
	}
	addressID, err = validation.ID("addressId", chi.URLParam(r, "addressId"))
	if err != nil {
		return 0, 0, err
	}
	return contactID, addressID, nil
}

// handleCreateAddress serves POST /api/contacts/{contactId}/addresses.
func (s *Server) handleCreateAddress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := userFromContext(ctx)

	contactID, err := validation.ID("contactId", chi.URLParam(r, "contactId"))
	if err != nil {
		s.writeError(ctx, w, err)
		return
	}

	var req api.AddressRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(ctx, w, err)
		return
	}
	if err := validation.Address(req); err != nil {
		s.writeError(ctx, w, err)
		return
	}

	address, err := s.addresses.Create(ctx, user.Username, contactID, addressInput(req))
	if err != nil {
		s.writeError(ctx, w, err)
		return
	}

	s.writeData(w, http.StatusCreated, toAddressResponse(address))
}

// handleGetAddress serves GET /api/contacts/{contactId}/addresses/{addressId}.
func (s *Server) handleGetAddress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := userFromContext(ctx)

	contactID, addressID, err := addressIDs(r)
	if err != nil {
		s.writeError(ctx, w, err)
		return
	}

	address, err := s.addresses.Get(ctx, user.Username, contactID, addressID)
	if err != nil {
		s.writeError(ctx, w, err)
		return
	}

	s.writeData(w, http.StatusOK, toAddressResponse(address))
}

// handleUpdateAddress serves PUT /api/contacts/{contactId}/addresses/{addressId}:
// a full replace of the mutable fields, no partial merge.
func (s *Server) handleUpdateAddress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := userFromContext(ctx)

	contactID, addressID, err := addressIDs(r)
	if err != nil {
		s.writeError(ctx, w, err)
		return
	}

	var req api.AddressRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(ctx, w, err)
		return
	}
	if err := validation.Address(req); err != nil {
		s.writeError(ctx, w, err)
		return
	}

	address, err := s.addresses.Update(ctx, user.Username, contactID, addressID, addressInput(req))
	if err != nil {
		s.writeError(ctx, w, err)
		return
	}

	s.writeData(w, http.StatusOK, toAddressResponse(address))
}

// handleDeleteAddress serves DELETE /api/contacts/{contactId}/addresses/{addressId}.
func (s *Server) handleDeleteAddress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := userFromContext(ctx)

	contactID, addressID, err := addressIDs(r)
	if err != nil {
		s.writeError(ctx, w, err)
		return
	}

	if err := s.addresses.Delete(ctx, user.Username, contactID, addressID); err != nil {
		s.writeError(ctx, w, err)
		return
	}

	s.writeData(w, http.StatusOK, "ok")
}

// handleListAddresses serves GET /api/contacts/{contactId}/addresses.
func (s *Server) handleListAddresses(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := userFromContext(ctx)

	contactID, err := validation.ID("contactId", chi.URLParam(r, "contactId"))
	if err != nil {
		s.writeError(ctx, w, err)
		return
	}

	list, err := s.addresses.List(ctx, user.Username, contactID)
	if err != nil {
		s.writeError(ctx, w, err)
		return
	}

	s.writeData(w, http.StatusOK, toAddressResponses(list))
}
