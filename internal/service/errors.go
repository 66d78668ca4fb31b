package service

import "errors"

var (
	// ErrInvalidCredentials is the single answer to a failed login, whether
	// the identifier is unknown or the password does not match.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	// ErrNotCampaignOwner is returned when a fundraiser touches a campaign
	// owned by somebody else.
	ErrNotCampaignOwner = errors.New("campaign belongs to another user")

	ErrNoFileProvided = errors.New("no file provided")
	ErrFileTooLarge   = errors.New("file is too large")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
