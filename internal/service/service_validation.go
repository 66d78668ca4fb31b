package service

import (
	"context"

	"github.com/MKhiriev/go-fundraiser/internal/validators"
	"github.com/MKhiriev/go-fundraiser/models"
)

// CategoryValidationService validates category payloads before they reach
// the wrapped CategoryService.
type CategoryValidationService struct {
	inner     CategoryService
	validator validators.Validator
}

func NewCategoryValidationService() CategoryServiceWrapper {
	return &CategoryValidationService{
		validator: validators.NewRequestValidator(),
	}
}

func (v *CategoryValidationService) Wrap(inner CategoryService) CategoryService {
	v.inner = inner
	return v
}

func (v *CategoryValidationService) CreateCategory(ctx context.Context, req models.CategoryRequest) (models.Category, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Category{}, err
	}
	return v.inner.CreateCategory(ctx, req)
}

func (v *CategoryValidationService) GetCategory(ctx context.Context, id string) (models.Category, error) {
	return v.inner.GetCategory(ctx, id)
}

func (v *CategoryValidationService) ListCategories(ctx context.Context, page models.Pagination) (models.Page[models.Category], error) {
	return v.inner.ListCategories(ctx, page)
}

func (v *CategoryValidationService) UpdateCategory(ctx context.Context, id string, req models.CategoryRequest) (models.Category, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Category{}, err
	}
	return v.inner.UpdateCategory(ctx, id, req)
}

func (v *CategoryValidationService) DeleteCategory(ctx context.Context, id string) error {
	return v.inner.DeleteCategory(ctx, id)
}

// CampaignValidationService validates campaign payloads before they reach
// the wrapped CampaignService.
type CampaignValidationService struct {
	inner     CampaignService
	validator validators.Validator
}

func NewCampaignValidationService() CampaignServiceWrapper {
	return &CampaignValidationService{
		validator: validators.NewRequestValidator(),
	}
}

func (v *CampaignValidationService) Wrap(inner CampaignService) CampaignService {
	v.inner = inner
	return v
}

func (v *CampaignValidationService) CreateCampaign(ctx context.Context, caller models.Identity, req models.CampaignRequest) (models.Campaign, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Campaign{}, err
	}
	return v.inner.CreateCampaign(ctx, caller, req)
}

func (v *CampaignValidationService) GetCampaign(ctx context.Context, id string) (models.Campaign, error) {
	return v.inner.GetCampaign(ctx, id)
}

func (v *CampaignValidationService) GetCampaignBySlug(ctx context.Context, slug string) (models.Campaign, error) {
	return v.inner.GetCampaignBySlug(ctx, slug)
}

func (v *CampaignValidationService) GetApprovedCampaign(ctx context.Context, id string) (models.Campaign, error) {
	return v.inner.GetApprovedCampaign(ctx, id)
}

func (v *CampaignValidationService) ListCampaigns(ctx context.Context, filter models.CampaignFilter) (models.Page[models.Campaign], error) {
	return v.inner.ListCampaigns(ctx, filter)
}

func (v *CampaignValidationService) ListApprovedCampaigns(ctx context.Context, filter models.CampaignFilter) (models.Page[models.Campaign], error) {
	return v.inner.ListApprovedCampaigns(ctx, filter)
}

func (v *CampaignValidationService) UpdateCampaign(ctx context.Context, caller models.Identity, id string, req models.CampaignRequest) (models.Campaign, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Campaign{}, err
	}
	return v.inner.UpdateCampaign(ctx, caller, id, req)
}

func (v *CampaignValidationService) DeleteCampaign(ctx context.Context, caller models.Identity, id string) error {
	return v.inner.DeleteCampaign(ctx, caller, id)
}
