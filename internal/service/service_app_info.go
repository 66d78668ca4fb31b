package service

import (
	"context"

	"github.com/MKhiriev/go-fundraiser/internal/config"
	"github.com/MKhiriev/go-fundraiser/internal/logger"
	"github.com/MKhiriev/go-fundraiser/models"
)

type appInfoService struct {
	appName     string
	appVersion  string
	environment string

	pinger Pinger

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, pinger Pinger, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appName:     cfg.Name,
		appVersion:  cfg.Version,
		environment: cfg.Environment,
		pinger:      pinger,
		logger:      logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

func (s *appInfoService) Status(ctx context.Context) models.ServerStatus {
	return models.ServerStatus{
		Name:        s.appName,
		Environment: s.environment,
		Version:     s.appVersion,
	}
}

func (s *appInfoService) Ready(ctx context.Context) error {
	if s.pinger == nil {
		return nil
	}
	return s.pinger.Ping(ctx)
}
