// Package common defines the sentinel errors shared across the service
// layers. Callers should use errors.Is to match these values; the GraphQL
// layer surfaces Kind as a machine-readable error extension.
package common

// Error is a sentinel error with a stable machine-readable kind.
type Error struct {
	Kind    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Extensions exposes the error kind to the GraphQL error formatter.
func (e *Error) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": e.Kind}
}

var (
	// ErrNotAuthenticated: no principal (missing, malformed, or expired token).
	ErrNotAuthenticated = &Error{Kind: "UNAUTHENTICATED", Message: "you must be logged in"}

	// ErrNotAuthorized: valid principal, but the record belongs to someone else.
	ErrNotAuthorized = &Error{Kind: "FORBIDDEN", Message: "not authorized"}

	// ErrNotFound: no record with the given id.
	ErrNotFound = &Error{Kind: "NOT_FOUND", Message: "not found"}

	// ErrEmailTaken: signup collision on the unique email.
	ErrEmailTaken = &Error{Kind: "EMAIL_TAKEN", Message: "email already in use"}

	// ErrInvalidCredentials covers both "no such email" and "wrong password".
	// Deliberately undifferentiated so login does not leak which one failed.
	ErrInvalidCredentials = &Error{Kind: "INVALID_CREDENTIALS", Message: "invalid credentials"}
)
