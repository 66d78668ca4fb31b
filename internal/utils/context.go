// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, hashing,
// HTTP response writing, HTTP client initialization, JWT token generation
// and validation, identifiers and slugs.
package utils

import (
	"context"
	"time"

	"github.com/MKhiriev/go-fundraiser/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

var (
	// IdentityCtxKey holds the authenticated caller ([models.Identity]).
	IdentityCtxKey = contextKey("identity")

	// RequestStartCtxKey holds the time the request entered the router.
	RequestStartCtxKey = contextKey("requestStart")
)

// WithIdentity returns a copy of ctx carrying the caller identity.
func WithIdentity(ctx context.Context, identity models.Identity) context.Context {
	return context.WithValue(ctx, IdentityCtxKey, identity)
}

// GetIdentityFromContext retrieves the caller identity from the context.
//
// Returns ok == false when no identity was stored, i.e. the request did not
// pass the authentication middleware.
func GetIdentityFromContext(ctx context.Context) (models.Identity, bool) {
	identity, ok := ctx.Value(IdentityCtxKey).(models.Identity)
	return identity, ok
}

// WithRequestStart returns a copy of ctx carrying the request start time.
func WithRequestStart(ctx context.Context, start time.Time) context.Context {
	return context.WithValue(ctx, RequestStartCtxKey, start)
}

// GetRequestStartFromContext retrieves the request start time from the context.
func GetRequestStartFromContext(ctx context.Context) (time.Time, bool) {
	start, ok := ctx.Value(RequestStartCtxKey).(time.Time)
	return start, ok
}
