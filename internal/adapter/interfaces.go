// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides outbound integrations of the go-fundraiser server.
//
// Two ports are defined here:
//   - [Notifier] sends account notices (registration/activation mail)
//     through an HTTP mail API ([NewMailNotifier]) or discards them
//     ([NewNopNotifier]) when no API is configured.
//   - [ObjectStorage] stores campaign media in an S3-compatible bucket
//     ([NewS3ObjectStorage]).
//
// Non-2xx responses of HTTP integrations are mapped by mapHTTPError to the
// sentinel errors in errors.go so callers can match them with [errors.Is].
package adapter

import (
	"context"
	"io"

	"github.com/MKhiriev/go-fundraiser/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// Notifier delivers account notices to users.
type Notifier interface {
	// NotifyRegistration tells a freshly registered user how to activate the
	// account. The user value must carry its activation code.
	NotifyRegistration(ctx context.Context, user models.User) error
}

// ObjectStorage stores uploaded media objects by key.
type ObjectStorage interface {
	// Put writes body under key and returns the public URL of the object.
	Put(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error)

	// Delete removes the object stored under key. Removing a missing key is
	// not an error.
	Delete(ctx context.Context, key string) error

	// URL returns the public URL of key.
	URL(key string) string
}
