// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"fmt"

	"github.com/MKhiriev/go-fundraiser/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

// credentialCodec is the private implementation of [Codec]: bcrypt for
// passwords, HMAC-SHA256 for activation codes.
type credentialCodec struct {
	cost          int
	activationKey string
}

// NewCodec constructs a [Codec]. cost outside bcrypt's accepted range is
// replaced with bcrypt.DefaultCost.
func NewCodec(cost int, activationKey string) Codec {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	return &credentialCodec{
		cost:          cost,
		activationKey: activationKey,
	}
}

// Transform implements [Codec]. bcrypt rejects inputs longer than 72 bytes,
// which surfaces here as an error.
func (c *credentialCodec) Transform(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), c.cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(digest), nil
}

// Verify implements [Codec]. A malformed digest never matches.
func (c *credentialCodec) Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}

// DeriveActivationCode implements [Codec].
func (c *credentialCodec) DeriveActivationCode(id string) string {
	return utils.HashString(id, c.activationKey)
}
