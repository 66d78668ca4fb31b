// Package grpc exposes the standard gRPC health service of the server.
package grpc

import (
	"context"
	"time"

	"github.com/MKhiriev/go-fundraiser/internal/logger"
	"github.com/MKhiriev/go-fundraiser/internal/service"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// DefaultReadinessInterval is how often the database readiness is probed.
const DefaultReadinessInterval = 10 * time.Second

// Handler is the root gRPC transport handler.
//
// It reports SERVING through grpc.health.v1.Health only while the
// application is ready to serve requests, i.e. while the database answers
// pings.
type Handler struct {
	services *service.Services
	health   *health.Server
	logger   *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	h := &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}
	h.health.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)

	return h
}

// Register attaches the handler's services to srv.
func (h *Handler) Register(srv *grpc.Server) {
	healthpb.RegisterHealthServer(srv, h.health)
}

// Refresh probes readiness once and publishes the resulting status.
func (h *Handler) Refresh(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	status := healthpb.HealthCheckResponse_SERVING
	if err := h.services.AppInfoService.Ready(ctx); err != nil {
		h.logger.Warn().Err(err).Msg("application is not ready")
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}

	h.health.SetServingStatus("", status)
	return status
}

// WatchReadiness refreshes the health status every interval until ctx is
// done, then marks the server as shutting down.
func (h *Handler) WatchReadiness(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	h.Refresh(ctx)
	for {
		select {
		case <-ctx.Done():
			h.health.Shutdown()
			return
		case <-ticker.C:
			h.Refresh(ctx)
		}
	}
}
