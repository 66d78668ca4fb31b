package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-fundraiser/models"
)

// AuthService registers, authenticates and activates accounts.
type AuthService interface {
	// RegisterUser validates req and creates a fundraiser account.
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error)
	// Login resolves req.Identifier as username or email and checks the
	// password. Every failure other than validation is ErrInvalidCredentials.
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	// Activate redeems an activation code.
	Activate(ctx context.Context, code string) (models.User, error)
	FindUserByID(ctx context.Context, id string) (models.User, error)
}

// TokenService issues and verifies session tokens.
type TokenService interface {
	IssueToken(ctx context.Context, user models.User) (models.Token, error)
	// VerifyToken returns the identity carried by raw or
	// ErrTokenIsExpiredOrInvalid.
	VerifyToken(ctx context.Context, raw string) (models.Identity, error)
}

type CategoryService interface {
	CreateCategory(ctx context.Context, req models.CategoryRequest) (models.Category, error)
	GetCategory(ctx context.Context, id string) (models.Category, error)
	ListCategories(ctx context.Context, page models.Pagination) (models.Page[models.Category], error)
	UpdateCategory(ctx context.Context, id string, req models.CategoryRequest) (models.Category, error)
	DeleteCategory(ctx context.Context, id string) error
}

// CampaignService manages campaigns on behalf of an authenticated caller.
// Fundraisers may only change their own campaigns; admins may change any and
// are the only ones allowed to set the status.
type CampaignService interface {
	CreateCampaign(ctx context.Context, caller models.Identity, req models.CampaignRequest) (models.Campaign, error)
	GetCampaign(ctx context.Context, id string) (models.Campaign, error)
	GetCampaignBySlug(ctx context.Context, slug string) (models.Campaign, error)
	// GetApprovedCampaign hides campaigns that are not approved.
	GetApprovedCampaign(ctx context.Context, id string) (models.Campaign, error)
	ListCampaigns(ctx context.Context, filter models.CampaignFilter) (models.Page[models.Campaign], error)
	ListApprovedCampaigns(ctx context.Context, filter models.CampaignFilter) (models.Page[models.Campaign], error)
	UpdateCampaign(ctx context.Context, caller models.Identity, id string, req models.CampaignRequest) (models.Campaign, error)
	DeleteCampaign(ctx context.Context, caller models.Identity, id string) error
}

type MediaService interface {
	Upload(ctx context.Context, file models.MediaFile) (models.UploadedFile, error)
	UploadMany(ctx context.Context, files []models.MediaFile) ([]models.UploadedFile, error)
	Remove(ctx context.Context, req models.RemoveMediaRequest) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	Status(ctx context.Context) models.ServerStatus
	// Ready reports whether the backing database answers.
	Ready(ctx context.Context) error
}

// CategoryServiceWrapper defines middleware composition for CategoryService.
// Implementations wrap an existing CategoryService to add behavior such as
// validation.
type CategoryServiceWrapper interface {
	Wrap(CategoryService) CategoryService
}

// CampaignServiceWrapper defines middleware composition for CampaignService.
type CampaignServiceWrapper interface {
	Wrap(CampaignService) CampaignService
}

// Pinger reports the health of a backing store.
type Pinger interface {
	Ping(ctx context.Context) error
}
