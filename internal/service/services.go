package service

import (
	"github.com/MKhiriev/go-fundraiser/internal/adapter"
	"github.com/MKhiriev/go-fundraiser/internal/config"
	"github.com/MKhiriev/go-fundraiser/internal/crypto"
	"github.com/MKhiriev/go-fundraiser/internal/logger"
	"github.com/MKhiriev/go-fundraiser/internal/store"
)

type Services struct {
	AuthService     AuthService
	TokenService    TokenService
	CategoryService CategoryService
	CampaignService CampaignService
	MediaService    MediaService
	AppInfoService  AppInfoService
}

func NewServices(
	storages *store.Storages,
	adapters *adapter.Adapters,
	codec crypto.Codec,
	cfg config.StructuredConfig,
	logger *logger.Logger,
) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, storages.UserRepository, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, codec, adapters.Notifier, cfg.App, logger),
		TokenService:    NewTokenService(cfg.App, logger),
		CategoryService: NewCategoryValidationService().Wrap(NewCategoryService(storages.CategoryRepository, logger)),
		CampaignService: NewCampaignValidationService().Wrap(NewCampaignService(storages.CampaignRepository, logger)),
		MediaService:    NewMediaService(adapters.ObjectStorage, cfg.Storage.Media, logger),
		AppInfoService:  appInfoService,
	}, nil
}
