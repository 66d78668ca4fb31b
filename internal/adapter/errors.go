package adapter

import "errors"

// Errors returned by HTTP integrations for non-2xx responses.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
)

var (
	// ErrInvalidMailURL is returned when the mail API address cannot be parsed.
	ErrInvalidMailURL = errors.New("invalid mail api url")

	// ErrNoRecipient is returned when a notice has no destination address.
	ErrNoRecipient = errors.New("notice has no recipient")

	// ErrObjectStorage wraps failures of the object storage backend.
	ErrObjectStorage = errors.New("object storage error")
)
