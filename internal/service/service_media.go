package service

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/MKhiriev/go-fundraiser/internal/adapter"
	"github.com/MKhiriev/go-fundraiser/internal/config"
	"github.com/MKhiriev/go-fundraiser/internal/logger"
	"github.com/MKhiriev/go-fundraiser/internal/utils"
	"github.com/MKhiriev/go-fundraiser/internal/validators"
	"github.com/MKhiriev/go-fundraiser/models"
)

const (
	mediaKeyPrefix     = "media/"
	defaultContentType = "application/octet-stream"
)

type mediaService struct {
	storage       adapter.ObjectStorage
	maxUploadSize int64

	ids       *utils.UUIDGenerator
	validator validators.Validator

	logger *logger.Logger
}

func NewMediaService(storage adapter.ObjectStorage, cfg config.Media, logger *logger.Logger) MediaService {
	return &mediaService{
		storage:       storage,
		maxUploadSize: cfg.MaxUploadSize,
		ids:           utils.NewUUIDGenerator(),
		validator:     validators.NewRequestValidator(),
		logger:        logger,
	}
}

// Upload stores one file under a fresh key that keeps the file extension.
func (s *mediaService) Upload(ctx context.Context, file models.MediaFile) (models.UploadedFile, error) {
	if err := s.check(file); err != nil {
		return models.UploadedFile{}, err
	}

	contentType := file.ContentType
	if contentType == "" {
		contentType = defaultContentType
	}
	key := mediaKeyPrefix + s.ids.Generate() + strings.ToLower(path.Ext(file.Name))

	url, err := s.storage.Put(ctx, key, contentType, file.Body, file.Size)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("file", file.Name).Msg("media upload failed")
		return models.UploadedFile{}, fmt.Errorf("media upload failed: %w", err)
	}

	return models.UploadedFile{
		Key:         key,
		URL:         url,
		ContentType: contentType,
		Size:        file.Size,
	}, nil
}

// UploadMany checks every file before storing any of them. If a store fails
// midway, the files already stored are removed again on a best-effort basis.
func (s *mediaService) UploadMany(ctx context.Context, files []models.MediaFile) ([]models.UploadedFile, error) {
	if len(files) == 0 {
		return nil, ErrNoFileProvided
	}
	for _, file := range files {
		if err := s.check(file); err != nil {
			return nil, fmt.Errorf("%s: %w", file.Name, err)
		}
	}

	uploaded := make([]models.UploadedFile, 0, len(files))
	for _, file := range files {
		u, err := s.Upload(ctx, file)
		if err != nil {
			s.discard(ctx, uploaded)
			return nil, err
		}
		uploaded = append(uploaded, u)
	}

	return uploaded, nil
}

func (s *mediaService) Remove(ctx context.Context, req models.RemoveMediaRequest) error {
	if err := s.validator.Validate(ctx, req); err != nil {
		return err
	}

	return s.storage.Delete(ctx, req.Key)
}

func (s *mediaService) discard(ctx context.Context, uploaded []models.UploadedFile) {
	for _, u := range uploaded {
		if err := s.storage.Delete(ctx, u.Key); err != nil {
			logger.FromContext(ctx).Warn().Err(err).Str("key", u.Key).Msg("failed to remove media after batch upload failure")
		}
	}
}

func (s *mediaService) check(file models.MediaFile) error {
	if file.Body == nil || file.Size == 0 {
		return ErrNoFileProvided
	}
	if s.maxUploadSize > 0 && file.Size > s.maxUploadSize {
		return ErrFileTooLarge
	}
	return nil
}
