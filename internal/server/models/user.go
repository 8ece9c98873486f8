// Package models holds the plain data records passed between the stores,
// services, and the GraphQL layer.
package models

import "time"

// User is the stored account record. Password is kept and compared
// verbatim; hashing is intentionally out of scope for this service.
type User struct {
	ID        string
	Name      string
	Email     string
	Password  string
	CreatedAt time.Time
}

// Principal is the password-free projection of a User. It is what session
// tokens encode and what every response exposes; it is derived, never stored.
type Principal struct {
	ID    string
	Name  string
	Email string
}

// Public returns the user's principal projection.
func (u *User) Public() *Principal {
	return &Principal{ID: u.ID, Name: u.Name, Email: u.Email}
}
