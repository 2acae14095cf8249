// Package models defines server-side data models persisted in the database.
package models

// User is an account row. Username is the immutable primary key; Password
// holds the bcrypt hash, never the plaintext. Token is the opaque session
// token, nil while the user is logged out.
type User struct {
	Username string
	Password string
	Name     string
	Token    *string
}
