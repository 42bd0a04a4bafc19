package entity

import "errors"

// Error kinds surfaced by the mutation layer. Handlers map them to HTTP
// status codes; the client SDK maps the codes back to the same values so
// optimistic rollback can key off the kind.
var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("not found")
	ErrValidation      = errors.New("validation failed")
	ErrServer          = errors.New("server error")
)
