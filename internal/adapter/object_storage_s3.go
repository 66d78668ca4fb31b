package adapter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-fundraiser/internal/config"
	"github.com/MKhiriev/go-fundraiser/internal/logger"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// s3API is the subset of *s3.Client used by the object storage.
type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

type s3ObjectStorage struct {
	client  s3API
	bucket  string
	baseURL string

	logger *logger.Logger
}

// NewS3ObjectStorage builds an [ObjectStorage] over an S3-compatible bucket.
//
// Static credentials are used when both keys are configured, otherwise the
// default AWS credential chain applies. A non-empty Endpoint (e.g. MinIO)
// switches the client to path-style addressing.
func NewS3ObjectStorage(ctx context.Context, cfg config.Media, log *logger.Logger) (ObjectStorage, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		log.Err(err).Str("func", "NewS3ObjectStorage").Msg("error loading aws config")
		return nil, fmt.Errorf("%w: load config: %w", ErrObjectStorage, err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return newS3ObjectStorage(client, cfg, log), nil
}

func newS3ObjectStorage(client s3API, cfg config.Media, log *logger.Logger) *s3ObjectStorage {
	return &s3ObjectStorage{
		client:  client,
		bucket:  cfg.Bucket,
		baseURL: publicBaseURL(cfg),
		logger:  log,
	}
}

// publicBaseURL falls back to the path-style bucket address of the endpoint,
// or to the virtual-hosted AWS address, when no public URL is configured.
func publicBaseURL(cfg config.Media) string {
	switch {
	case cfg.PublicBaseURL != "":
		return strings.TrimRight(cfg.PublicBaseURL, "/")
	case cfg.Endpoint != "":
		return strings.TrimRight(cfg.Endpoint, "/") + "/" + cfg.Bucket
	default:
		return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
	}
}

func (s *s3ObjectStorage) Put(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(size),
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*s3ObjectStorage.Put").Str("key", key).Msg("error putting object")
		return "", fmt.Errorf("%w: put %s: %w", ErrObjectStorage, key, err)
	}

	return s.URL(key), nil
}

func (s *s3ObjectStorage) Delete(ctx context.Context, key string) error {
	if key == "" {
		return errors.New("empty object key")
	}

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*s3ObjectStorage.Delete").Str("key", key).Msg("error deleting object")
		return fmt.Errorf("%w: delete %s: %w", ErrObjectStorage, key, err)
	}

	return nil
}

func (s *s3ObjectStorage) URL(key string) string {
	segments := strings.Split(key, "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	return s.baseURL + "/" + strings.Join(segments, "/")
}
