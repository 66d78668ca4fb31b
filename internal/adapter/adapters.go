package adapter

import (
	"context"

	"github.com/MKhiriev/go-fundraiser/internal/config"
	"github.com/MKhiriev/go-fundraiser/internal/logger"
)

// Adapters aggregates the outbound integrations of the server.
type Adapters struct {
	Notifier      Notifier
	ObjectStorage ObjectStorage
}

// NewAdapters builds every integration from cfg.
func NewAdapters(ctx context.Context, cfg config.StructuredConfig, log *logger.Logger) (*Adapters, error) {
	notifier, err := NewNotifier(cfg.Adapter.Mail, cfg.App, log)
	if err != nil {
		return nil, err
	}

	objectStorage, err := NewS3ObjectStorage(ctx, cfg.Storage.Media, log)
	if err != nil {
		return nil, err
	}

	return &Adapters{
		Notifier:      notifier,
		ObjectStorage: objectStorage,
	}, nil
}
