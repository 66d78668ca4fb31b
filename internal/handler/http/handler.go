package http

import (
	"time"

	"github.com/MKhiriev/go-fundraiser/internal/config"
	"github.com/MKhiriev/go-fundraiser/internal/logger"
	"github.com/MKhiriev/go-fundraiser/internal/service"
)

// Handler serves the REST API on top of the service layer.
type Handler struct {
	services *service.Services

	// requestTimeout bounds every request; zero disables the limit.
	requestTimeout time.Duration

	// maxUploadSize is the per-file limit of multipart uploads.
	maxUploadSize int64

	// exposeErrors adds the full error chain to error responses.
	exposeErrors bool

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Debug().Msg("HTTP handler created")
	return &Handler{
		services:       services,
		requestTimeout: cfg.Server.RequestTimeout,
		maxUploadSize:  cfg.Storage.Media.MaxUploadSize,
		exposeErrors:   cfg.App.IsDevelopment(),
		logger:         logger,
	}
}
