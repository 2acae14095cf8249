package models

// Contact is owned exclusively by one user; Username is the owner key and is
// immutable after creation. Only FirstName is mandatory.
type Contact struct {
	ID        int64
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Username  string
}
