package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-fundraiser/internal/adapter"
	"github.com/MKhiriev/go-fundraiser/internal/config"
	"github.com/MKhiriev/go-fundraiser/internal/crypto"
	"github.com/MKhiriev/go-fundraiser/internal/logger"
	"github.com/MKhiriev/go-fundraiser/internal/store"
	"github.com/MKhiriev/go-fundraiser/internal/validators"
	"github.com/MKhiriev/go-fundraiser/models"
)

// authService is the concrete implementation of AuthService.
// It validates requests, delegates persistence to a UserRepository and
// compares passwords through the credential codec.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// codec verifies passwords against stored digests.
	codec crypto.Codec

	validator validators.Validator

	// notifier is told about every new account. Its failures never fail
	// the registration.
	notifier adapter.Notifier

	// requireActivation makes new accounts inactive until activated.
	requireActivation bool

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository, codec and notifier.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(
	userRepository store.UserRepository,
	codec crypto.Codec,
	notifier adapter.Notifier,
	cfg config.App,
	logger *logger.Logger,
) AuthService {
	if notifier == nil {
		notifier = adapter.NewNopNotifier()
	}

	return &authService{
		userRepository:    userRepository,
		codec:             codec,
		validator:         validators.NewRequestValidator(),
		notifier:          notifier,
		requireActivation: cfg.RequireActivation,
		logger:            logger,
	}
}

// RegisterUser creates a new account with the fundraiser role.
//
// Returns the persisted user or:
//   - *validators.ValidationError naming every failed field and password clause.
//   - store.ErrUserAlreadyExists (wrapped) if username or email is taken.
func (a *authService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Str("username", req.Username).Msg("invalid registration request")
		return models.User{}, err
	}

	created, err := a.userRepository.CreateUser(ctx, models.NewUser{
		FullName: req.FullName,
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Role:     models.RoleFundraiser,
		IsActive: !a.requireActivation,
	})
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	if err = a.notifier.NotifyRegistration(ctx, created); err != nil {
		log.Warn().Err(err).Str("user_id", created.ID).Msg("registration notice was not sent")
	}

	return created, nil
}

// Login authenticates an existing user.
//
// Returns the authenticated user or:
//   - *validators.ValidationError if identifier or password is missing.
//   - ErrInvalidCredentials if no account matches or the password is wrong.
//   - A wrapped storage error for any other repository failure.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		return models.User{}, err
	}

	foundUser, err := a.userRepository.FindUserByIdentifier(ctx, req.Identifier)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Info().Str("identifier", req.Identifier).Msg("login for unknown identifier")
			return models.User{}, ErrInvalidCredentials
		}
		log.Err(err).Str("identifier", req.Identifier).Msg("user search by identifier failed")
		return models.User{}, fmt.Errorf("user search by identifier failed: %w", err)
	}

	if !a.codec.Verify(req.Password, foundUser.PasswordHash) {
		log.Info().Str("user_id", foundUser.ID).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

// Activate flips the account owning code to active. An unmatched code is
// store.ErrUserNotFound and changes nothing.
func (a *authService) Activate(ctx context.Context, code string) (models.User, error) {
	if err := a.validator.Validate(ctx, models.ActivationRequest{Code: code}); err != nil {
		return models.User{}, err
	}

	activated, err := a.userRepository.ActivateUser(ctx, code)
	if err != nil {
		return models.User{}, fmt.Errorf("account activation failed: %w", err)
	}

	logger.FromContext(ctx).Info().Str("user_id", activated.ID).Msg("account activated")
	return activated, nil
}

func (a *authService) FindUserByID(ctx context.Context, id string) (models.User, error) {
	return a.userRepository.FindUserByID(ctx, id)
}
