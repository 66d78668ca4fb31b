package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-fundraiser/models"
)

// UserRepository persists accounts. It applies the credential codec at write
// time, so plaintext passwords never reach the database.
type UserRepository interface {
	// CreateUser assigns an id, digests the password, derives the activation
	// code and inserts the account in one statement.
	CreateUser(ctx context.Context, candidate models.NewUser) (models.User, error)
	// FindUserByIdentifier matches username or email. A username match wins
	// over an email match.
	FindUserByIdentifier(ctx context.Context, identifier string) (models.User, error)
	FindUserByID(ctx context.Context, id string) (models.User, error)
	// ActivateUser sets is_active for the account owning code.
	ActivateUser(ctx context.Context, code string) (models.User, error)
	// Ping reports whether the backing database is reachable.
	Ping(ctx context.Context) error
}

type CategoryRepository interface {
	CreateCategory(ctx context.Context, category models.Category) (models.Category, error)
	FindCategoryByID(ctx context.Context, id string) (models.Category, error)
	ListCategories(ctx context.Context, page models.Pagination) ([]models.Category, int64, error)
	UpdateCategory(ctx context.Context, category models.Category) (models.Category, error)
	DeleteCategory(ctx context.Context, id string) error
}

type CampaignRepository interface {
	CreateCampaign(ctx context.Context, campaign models.Campaign) (models.Campaign, error)
	FindCampaignByID(ctx context.Context, id string) (models.Campaign, error)
	FindCampaignBySlug(ctx context.Context, slug string) (models.Campaign, error)
	ListCampaigns(ctx context.Context, filter models.CampaignFilter) ([]models.Campaign, int64, error)
	UpdateCampaign(ctx context.Context, campaign models.Campaign) (models.Campaign, error)
	DeleteCampaign(ctx context.Context, id string) error
}

// IDGenerator issues primary keys.
type IDGenerator interface {
	Generate() string
}

// CredentialEncoder is the part of the credential codec the store applies on write.
type CredentialEncoder interface {
	Transform(plaintext string) (string, error)
	DeriveActivationCode(id string) string
}
