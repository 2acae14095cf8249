// Package validation checks the shape of incoming API payloads before any
// store access. Functions are pure: they inspect a request value and return
// either nil or an *Error listing every offending field.
package validation

import (
	"fmt"
	"net/mail"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/contacthub/pkg/api"
)

// Field length caps, mirroring the database column sizes.
const (
	MaxUsernameLen   = 100
	MaxPasswordLen   = 100
	MaxNameLen       = 100
	MaxEmailLen      = 200
	MaxPhoneLen      = 20
	MaxStreetLen     = 255
	MaxCityLen       = 100
	MaxProvinceLen   = 100
	MaxCountryLen    = 100
	MaxPostalCodeLen = 10
)

// Paging defaults and bounds for the contact search endpoint.
const (
	DefaultPage = 1
	DefaultSize = 10
	MaxSize     = 100
)

// Error reports every field that failed validation.
type Error struct {
	Violations []string
}

func (e *Error) Error() string {
	return "validation error: " + strings.Join(e.Violations, "; ")
}

// checker accumulates violations across a request's fields.
type checker struct {
	violations []string
}

func (c *checker) addf(format string, args ...any) {
	c.violations = append(c.violations, fmt.Sprintf(format, args...))
}

func (c *checker) required(field, value string) {
	if value == "" {
		c.addf("%s is required", field)
	}
}

func (c *checker) maxLen(field, value string, max int) {
	if len(value) > max {
		c.addf("%s must not exceed %d characters", field, max)
	}
}

func (c *checker) email(field, value string) {
	if value == "" {
		return
	}
	if _, err := mail.ParseAddress(value); err != nil {
		c.addf("%s must be a valid email address", field)
	}
}

func (c *checker) err() error {
	if len(c.violations) == 0 {
		return nil
	}
	return &Error{Violations: c.violations}
}

// Register validates the registration payload.
func Register(req api.RegisterRequest) error {
	c := &checker{}
	c.required("username", req.Username)
	c.maxLen("username", req.Username, MaxUsernameLen)
	c.required("password", req.Password)
	c.maxLen("password", req.Password, MaxPasswordLen)
	c.required("name", req.Name)
	c.maxLen("name", req.Name, MaxNameLen)
	return c.err()
}

// Login validates the login payload.
func Login(req api.LoginRequest) error {
	c := &checker{}
	c.required("username", req.Username)
	c.maxLen("username", req.Username, MaxUsernameLen)
	c.required("password", req.Password)
	c.maxLen("password", req.Password, MaxPasswordLen)
	return c.err()
}

// UpdateUser validates the partial profile update. Both fields are optional;
// empty means "leave unchanged".
func UpdateUser(req api.UpdateUserRequest) error {
	c := &checker{}
	c.maxLen("name", req.Name, MaxNameLen)
	c.maxLen("password", req.Password, MaxPasswordLen)
	return c.err()
}

// Contact validates a contact create/update payload.
func Contact(req api.ContactRequest) error {
	c := &checker{}
	c.required("first_name", req.FirstName)
	c.maxLen("first_name", req.FirstName, MaxNameLen)
	c.maxLen("last_name", req.LastName, MaxNameLen)
	c.maxLen("email", req.Email, MaxEmailLen)
	c.email("email", req.Email)
	c.maxLen("phone", req.Phone, MaxPhoneLen)
	return c.err()
}

// Address validates an address create/update payload.
func Address(req api.AddressRequest) error {
	c := &checker{}
	c.maxLen("street", req.Street, MaxStreetLen)
	c.maxLen("city", req.City, MaxCityLen)
	c.maxLen("province", req.Province, MaxProvinceLen)
	c.required("country", req.Country)
	c.maxLen("country", req.Country, MaxCountryLen)
	c.required("postal_code", req.PostalCode)
	c.maxLen("postal_code", req.PostalCode, MaxPostalCodeLen)
	return c.err()
}

// ParsePaging turns the raw page/size query values into validated numbers.
// Absent values take the defaults; values that are present but not positive
// integers within bounds are rejected, never clamped.
func ParsePaging(pageRaw, sizeRaw string) (page, size int, err error) {
	c := &checker{}
	page, size = DefaultPage, DefaultSize

	if pageRaw != "" {
		v, convErr := strconv.Atoi(pageRaw)
		if convErr != nil || v < 1 {
			c.addf("page must be a positive integer")
		} else {
			page = v
		}
	}

	if sizeRaw != "" {
		v, convErr := strconv.Atoi(sizeRaw)
		switch {
		case convErr != nil || v < 1:
			c.addf("size must be a positive integer")
		case v > MaxSize:
			c.addf("size must not exceed %d", MaxSize)
		default:
			size = v
		}
	}

	if vErr := c.err(); vErr != nil {
		return 0, 0, vErr
	}
	return page, size, nil
}

// ID parses a positive integer path parameter such as a contact or address id.
func ID(field, raw string) (int64, error) {
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v < 1 {
		return 0, &Error{Violations: []string{field + " must be a positive integer"}}
	}
	return v, nil
}
