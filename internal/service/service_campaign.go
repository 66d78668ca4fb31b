package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-fundraiser/internal/logger"
	"github.com/MKhiriev/go-fundraiser/internal/store"
	"github.com/MKhiriev/go-fundraiser/internal/utils"
	"github.com/MKhiriev/go-fundraiser/models"
)

// maxSlugAttempts bounds how many random suffixes are tried for one title.
const maxSlugAttempts = 3

type campaignService struct {
	campaignRepository store.CampaignRepository

	// newSlug derives a campaign slug from its title.
	newSlug func(title string) string

	logger *logger.Logger
}

func NewCampaignService(campaignRepository store.CampaignRepository, logger *logger.Logger) CampaignService {
	return &campaignService{
		campaignRepository: campaignRepository,
		newSlug:            utils.UniqueSlug,
		logger:             logger,
	}
}

// CreateCampaign stores a campaign owned by caller. The status requested by a
// non-admin is ignored and the campaign starts as pending.
func (s *campaignService) CreateCampaign(ctx context.Context, caller models.Identity, req models.CampaignRequest) (models.Campaign, error) {
	log := logger.FromContext(ctx)

	campaign := models.Campaign{
		Title:       req.Title,
		Description: req.Description,
		GoalAmount:  req.GoalAmount,
		Banner:      req.Banner,
		CategoryID:  req.CategoryID,
		OwnerID:     caller.UserID,
		Status:      models.CampaignPending,
	}
	if caller.Role == models.RoleAdmin && req.Status != "" {
		campaign.Status = req.Status
	}

	var err error
	for attempt := 0; attempt < maxSlugAttempts; attempt++ {
		campaign.Slug = s.newSlug(req.Title)

		var created models.Campaign
		created, err = s.campaignRepository.CreateCampaign(ctx, campaign)
		if err == nil {
			return created, nil
		}
		if !errors.Is(err, store.ErrSlugAlreadyExists) {
			break
		}
		log.Warn().Str("slug", campaign.Slug).Msg("campaign slug collision")
	}

	log.Err(err).Str("owner_id", caller.UserID).Msg("campaign creation ended with error")
	return models.Campaign{}, fmt.Errorf("campaign creation ended with error: %w", err)
}

func (s *campaignService) GetCampaign(ctx context.Context, id string) (models.Campaign, error) {
	return s.campaignRepository.FindCampaignByID(ctx, id)
}

func (s *campaignService) GetCampaignBySlug(ctx context.Context, slug string) (models.Campaign, error) {
	return s.campaignRepository.FindCampaignBySlug(ctx, slug)
}

func (s *campaignService) GetApprovedCampaign(ctx context.Context, id string) (models.Campaign, error) {
	campaign, err := s.campaignRepository.FindCampaignByID(ctx, id)
	if err != nil {
		return models.Campaign{}, err
	}
	if campaign.Status != models.CampaignApproved {
		return models.Campaign{}, store.ErrCampaignNotFound
	}

	return campaign, nil
}

func (s *campaignService) ListCampaigns(ctx context.Context, filter models.CampaignFilter) (models.Page[models.Campaign], error) {
	filter.Pagination = filter.Pagination.Normalize()

	items, total, err := s.campaignRepository.ListCampaigns(ctx, filter)
	if err != nil {
		return models.Page[models.Campaign]{}, err
	}

	return models.NewPage(items, total, filter.Page, filter.Limit), nil
}

func (s *campaignService) ListApprovedCampaigns(ctx context.Context, filter models.CampaignFilter) (models.Page[models.Campaign], error) {
	filter.Status = models.CampaignApproved
	return s.ListCampaigns(ctx, filter)
}

// UpdateCampaign overwrites the editable fields of a campaign. Only admins may
// change the status; a fundraiser's request keeps the current one.
func (s *campaignService) UpdateCampaign(ctx context.Context, caller models.Identity, id string, req models.CampaignRequest) (models.Campaign, error) {
	campaign, err := s.ownedCampaign(ctx, caller, id)
	if err != nil {
		return models.Campaign{}, err
	}

	campaign.Title = req.Title
	campaign.Description = req.Description
	campaign.GoalAmount = req.GoalAmount
	campaign.Banner = req.Banner
	campaign.CategoryID = req.CategoryID
	if caller.Role == models.RoleAdmin && req.Status != "" {
		campaign.Status = req.Status
	}

	return s.campaignRepository.UpdateCampaign(ctx, campaign)
}

func (s *campaignService) DeleteCampaign(ctx context.Context, caller models.Identity, id string) error {
	if _, err := s.ownedCampaign(ctx, caller, id); err != nil {
		return err
	}

	return s.campaignRepository.DeleteCampaign(ctx, id)
}

// ownedCampaign loads the campaign and checks that caller may change it.
func (s *campaignService) ownedCampaign(ctx context.Context, caller models.Identity, id string) (models.Campaign, error) {
	campaign, err := s.campaignRepository.FindCampaignByID(ctx, id)
	if err != nil {
		return models.Campaign{}, err
	}

	if caller.Role != models.RoleAdmin && campaign.OwnerID != caller.UserID {
		logger.FromContext(ctx).Warn().
			Str("campaign_id", id).
			Str("user_id", caller.UserID).
			Msg("campaign change by non-owner refused")
		return models.Campaign{}, ErrNotCampaignOwner
	}

	return campaign, nil
}
