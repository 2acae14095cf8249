package models

// Address belongs to exactly one contact and is owned transitively through
// that contact's owner.
type Address struct {
	ID         int64
	ContactID  int64
	Street     string
	City       string
	Province   string
	Country    string
	PostalCode string
}
