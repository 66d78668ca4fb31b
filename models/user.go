package models

import "time"

// Role is an authorization tier attached to a user and embedded in the
// user's session token.
type Role string

const (
	// RoleAdmin manages categories and moderates every campaign.
	RoleAdmin Role = "admin"
	// RoleFundraiser creates and manages own campaigns.
	RoleFundraiser Role = "fundraiser"
)

// DefaultProfilePicture is assigned to accounts that never uploaded a picture.
const DefaultProfilePicture = "user.jpg"

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleFundraiser:
		return true
	default:
		return false
	}
}

// User represents one account of the platform.
//
// PasswordHash and ActivationCode are one-way digests. They are excluded from
// every JSON representation and must never be returned to a client.
type User struct {
	// ID is the system-assigned, immutable identifier (UUIDv7).
	ID string `json:"id"`

	FullName string `json:"fullName"`

	// Username is unique and case-sensitive.
	Username string `json:"username"`

	// Email is unique.
	Email string `json:"email"`

	// PasswordHash is the bcrypt digest of the password.
	PasswordHash string `json:"-"`

	Role Role `json:"role"`

	IsActive bool `json:"isActive"`

	// ActivationCode is the keyed one-way digest of ID.
	ActivationCode string `json:"-"`

	ProfilePicture string `json:"profilePicture"`

	CreatedAt time.Time `json:"createdAt"`
}

// NewUser is a registration candidate handed to the store. Password is the
// plaintext; the store replaces it with a digest before anything is written.
type NewUser struct {
	FullName string
	Username string
	Email    string
	Password string
	Role     Role
	IsActive bool
}
