package models

// RegisterRequest is the payload of POST /auth/register.
type RegisterRequest struct {
	FullName        string `json:"fullName"`
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// LoginRequest is the payload of POST /auth/login.
// Identifier may hold either a username or an email.
type LoginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

// ActivationRequest is the payload of POST /auth/activation.
type ActivationRequest struct {
	Code string `json:"code"`
}

// LoginResponse is returned after a successful login.
type LoginResponse struct {
	Token string `json:"token"`
}

// Identity is the authenticated caller resolved from a session token.
type Identity struct {
	UserID string
	Role   Role
}
