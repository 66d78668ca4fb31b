package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the claim set of a session token: the standard registered claims
// (sub, iss, iat, exp) plus the role of the subject.
type Claims struct {
	jwt.RegisteredClaims

	Role Role `json:"role"`
}

// Token wraps a signed session token.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`

	// UserID is the owner identifier taken from the "sub" claim.
	UserID string `json:"-"`

	// Role is the role claim of the token.
	Role Role `json:"-"`
}

// Identity returns the caller identity carried by the token.
func (t Token) Identity() Identity {
	return Identity{UserID: t.UserID, Role: t.Role}
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
