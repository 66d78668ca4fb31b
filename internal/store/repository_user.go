package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-fundraiser/internal/logger"
	"github.com/MKhiriev/go-fundraiser/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation, lookup and activation against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
	codec  CredentialEncoder
	ids    IDGenerator
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection, credential codec and id generator.
func NewUserRepository(db *DB, codec CredentialEncoder, ids IDGenerator, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		codec:  codec,
		ids:    ids,
		logger: logger,
	}
}

// CreateUser persists a new account and returns it as stored.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrUserAlreadyExists], wrapped
//     with the conflicting field.
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, candidate models.NewUser) (models.User, error) {
	log := logger.FromContext(ctx)

	passwordHash, err := r.codec.Transform(candidate.Password)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error transforming password")
		return models.User{}, err
	}

	id := r.ids.Generate()
	row := r.db.QueryRowContext(ctx, createUser,
		id,
		candidate.FullName,
		candidate.Username,
		candidate.Email,
		passwordHash,
		candidate.Role,
		candidate.IsActive,
		r.codec.DeriveActivationCode(id),
		models.DefaultProfilePicture,
	)

	user, err := scanUser(row)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error creating user")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, fmt.Errorf("%w: %s", ErrUserAlreadyExists, conflictingUserField(err))
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return user, nil
}

// FindUserByIdentifier retrieves the account whose username or email equals
// identifier. If one account has it as username and another as email, the
// username owner is returned.
func (r *userRepository) FindUserByIdentifier(ctx context.Context, identifier string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByIdentifier", findUserByIdentifier, identifier)
}

func (r *userRepository) FindUserByID(ctx context.Context, id string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByID", findUserByID, id)
}

// ActivateUser marks the account owning code as active. An unknown code
// changes nothing and yields [ErrUserNotFound].
func (r *userRepository) ActivateUser(ctx context.Context, code string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.ActivateUser", activateUser, code)
}

func (r *userRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func (r *userRepository) findOne(ctx context.Context, funcName, query string, arg any) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := scanUser(r.db.QueryRowContext(ctx, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", funcName).Msg("error querying user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

func scanUser(row *sql.Row) (models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.FullName,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.IsActive,
		&user.ActivationCode,
		&user.ProfilePicture,
		&user.CreatedAt,
	)
	return user, err
}

func conflictingUserField(err error) string {
	switch postgresConstraint(err) {
	case "users_username_key":
		return "username"
	case "users_email_key":
		return "email"
	default:
		return "username or email"
	}
}
