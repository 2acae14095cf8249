// Package api defines the JSON request and response types of the ContactHub
// REST API. Every response body is wrapped in an envelope: {"data": ...} on
// success, {"errors": "..."} on failure.
package api

// RegisterRequest is the body of POST /api/users.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// LoginRequest is the body of POST /api/users/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UpdateUserRequest is the body of PATCH /api/users/current. Both fields are
// optional; an empty field leaves the stored value untouched.
type UpdateUserRequest struct {
	Name     string `json:"name,omitempty"`
	Password string `json:"password,omitempty"`
}

// ContactRequest is the body of contact create and update calls.
type ContactRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// AddressRequest is the body of address create and update calls.
type AddressRequest struct {
	Street     string `json:"street,omitempty"`
	City       string `json:"city,omitempty"`
	Province   string `json:"province,omitempty"`
	Country    string `json:"country"`
	PostalCode string `json:"postal_code"`
}

// UserResponse is the public projection of a user. The password hash is
// never exposed.
type UserResponse struct {
	Username string `json:"username"`
	Name     string `json:"name"`
}

// TokenResponse carries the opaque session token issued at login.
type TokenResponse struct {
	Token string `json:"token"`
}

// ContactResponse is the public projection of a contact.
type ContactResponse struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// AddressResponse is the public projection of an address.
type AddressResponse struct {
	ID         int64  `json:"id"`
	Street     string `json:"street,omitempty"`
	City       string `json:"city,omitempty"`
	Province   string `json:"province,omitempty"`
	Country    string `json:"country"`
	PostalCode string `json:"postal_code"`
}

// Paging describes the page returned by the contact search endpoint.
// TotalPage is ceil(TotalItem/size); zero items means zero pages.
type Paging struct {
	Page      int `json:"page"`
	TotalItem int `json:"total_item"`
	TotalPage int `json:"total_page"`
}

// DataResponse is the success envelope.
type DataResponse struct {
	Data any `json:"data"`
}

// PageResponse is the success envelope for paginated listings.
type PageResponse struct {
	Data   any    `json:"data"`
	Paging Paging `json:"paging"`
}

// ErrorResponse is the failure envelope.
type ErrorResponse struct {
	Errors string `json:"errors"`
}
