package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/contacthub/internal/common"
	"github.com/dmitrijs2005/contacthub/internal/server/models"
	"github.com/dmitrijs2005/contacthub/internal/validation"
	"github.com/dmitrijs2005/contacthub/pkg/api"
)

// writeData renders the success envelope {"data": ...}.
func (s *Server) writeData(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(api.DataResponse{Data: v})
}

// writePage renders a paginated success envelope {"data": ..., "paging": ...}.
func (s *Server) writePage(w http.ResponseWriter, v any, paging api.Paging) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(api.PageResponse{Data: v, Paging: paging})
}

// writeError maps an error to the failure envelope {"errors": ...} and the
// taxonomy status code. Anything outside the taxonomy is a 500 with a
// generic body; the cause goes to the log only.
func (s *Server) writeError(ctx context.Context, w http.ResponseWriter, err error) {
	status, msg := http.StatusInternalServerError, "internal server error"

	var vErr *validation.Error
	switch {
	case errors.As(err, &vErr):
		status, msg = http.StatusBadRequest, vErr.Error()
	case errors.Is(err, common.ErrorConflict):
		status, msg = http.StatusBadRequest, "username already registered"
	case errors.Is(err, common.ErrorUnauthorized):
		status, msg = http.StatusUnauthorized, "unauthorized"
	case errors.Is(err, common.ErrorNotFound):
		status, msg = http.StatusNotFound, "not found"
	default:
		s.logger.Error(ctx, "request failed", "request_id", requestIDFromContext(ctx), "error", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(api.ErrorResponse{Errors: msg})
}

// decodeJSON parses a request body, turning malformed JSON into a
// validation failure instead of a bare 400.
func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return &validation.Error{Violations: []string{"request body must be valid JSON"}}
	}
	return nil
}

func toUserResponse(u *models.User) api.UserResponse {
	return api.UserResponse{Username: u.Username, Name: u.Name}
}

func toContactResponse(c *models.Contact) api.ContactResponse {
	return api.ContactResponse{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Phone:     c.Phone,
	}
}

func toContactResponses(list []*models.Contact) []api.ContactResponse {
	result := make([]api.ContactResponse, 0, len(list))
	for _, c := range list {
		result = append(result, toContactResponse(c))
	}
	return result
}

func toAddressResponse(a *models.Address) api.AddressResponse {
	return api.AddressResponse{
		ID:         a.ID,
		Street:     a.Street,
		City:       a.City,
		Province:   a.Province,
		Country:    a.Country,
		PostalCode: a.PostalCode,
	}
}

func toAddressResponses(list []*models.Address) []api.AddressResponse {
	result := make([]api.AddressResponse, 0, len(list))
	for _, a := range list {
		result = append(result, toAddressResponse(a))
	}
	return result
}
