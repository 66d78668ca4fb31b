package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/MKhiriev/go-fundraiser/internal/config"
	"github.com/MKhiriev/go-fundraiser/internal/logger"
	"github.com/MKhiriev/go-fundraiser/internal/mock"
	"github.com/MKhiriev/go-fundraiser/internal/validators"
	"github.com/MKhiriev/go-fundraiser/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestMediaSvc(t *testing.T, ctrl *gomock.Controller) (MediaService, *mock.MockObjectStorage) {
	t.Helper()
	storage := mock.NewMockObjectStorage(ctrl)
	return NewMediaService(storage, config.Media{MaxUploadSize: 10}, logger.Nop()), storage
}

func mediaFile(name, content string) models.MediaFile {
	return models.MediaFile{
		Name:        name,
		ContentType: "image/png",
		Size:        int64(len(content)),
		Body:        strings.NewReader(content),
	}
}

func TestMediaService_Upload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, storage := newTestMediaSvc(t, ctrl)
	ctx := context.Background()

	storage.EXPECT().Put(ctx, gomock.Any(), "image/png", gomock.Any(), int64(5)).DoAndReturn(
		func(_ context.Context, key, _ string, body io.Reader, _ int64) (string, error) {
			assert.True(t, strings.HasPrefix(key, mediaKeyPrefix), key)
			assert.True(t, strings.HasSuffix(key, ".png"), key)
			b, err := io.ReadAll(body)
			require.NoError(t, err)
			assert.Equal(t, "hello", string(b))
			return "https://cdn/" + key, nil
		},
	)

	got, err := svc.Upload(ctx, mediaFile("Banner.PNG", "hello"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn/"+got.Key, got.URL)
	assert.Equal(t, int64(5), got.Size)
}

func TestMediaService_Upload_DefaultContentType(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, storage := newTestMediaSvc(t, ctrl)
	file := mediaFile("notes", "abc")
	file.ContentType = ""

	storage.EXPECT().Put(gomock.Any(), gomock.Any(), defaultContentType, gomock.Any(), int64(3)).Return("u", nil)

	got, err := svc.Upload(context.Background(), file)
	require.NoError(t, err)
	assert.Equal(t, defaultContentType, got.ContentType)
}

func TestMediaService_Upload_Rejections(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestMediaSvc(t, ctrl)

	_, err := svc.Upload(context.Background(), models.MediaFile{Name: "empty"})
	assert.ErrorIs(t, err, ErrNoFileProvided)

	_, err = svc.Upload(context.Background(), mediaFile("big.png", "0123456789AB"))
	assert.ErrorIs(t, err, ErrFileTooLarge)
}

func TestMediaService_Upload_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, storage := newTestMediaSvc(t, ctrl)
	storageErr := errors.New("bucket missing")
	storage.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("", storageErr)

	_, err := svc.Upload(context.Background(), mediaFile("a.png", "x"))
	assert.ErrorIs(t, err, storageErr)
}

func TestMediaService_UploadMany(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, storage := newTestMediaSvc(t, ctrl)
	storage.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("u", nil).Times(2)

	got, err := svc.UploadMany(context.Background(), []models.MediaFile{mediaFile("a.png", "a"), mediaFile("b.jpg", "b")})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.NotEqual(t, got[0].Key, got[1].Key)
}

func TestMediaService_UploadMany_RemovesStoredFilesOnFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, storage := newTestMediaSvc(t, ctrl)

	var firstKey string
	gomock.InOrder(
		storage.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, key, _ string, _ io.Reader, _ int64) (string, error) {
				firstKey = key
				return "u1", nil
			}),
		storage.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return("", errors.New("s3 down")),
		storage.EXPECT().Delete(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, key string) error {
				assert.Equal(t, firstKey, key)
				return errors.New("still down")
			}),
	)

	got, err := svc.UploadMany(context.Background(), []models.MediaFile{mediaFile("a.png", "a"), mediaFile("b.png", "b")})
	require.Error(t, err)
	assert.Nil(t, got)
	assert.NotEmpty(t, firstKey)
}

func TestMediaService_UploadMany_ChecksBeforeStoring(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestMediaSvc(t, ctrl)

	_, err := svc.UploadMany(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNoFileProvided)

	// no Put expectation: the oversized second file must stop the batch up front
	_, err = svc.UploadMany(context.Background(), []models.MediaFile{mediaFile("a.png", "a"), mediaFile("b.png", "far too large")})
	assert.ErrorIs(t, err, ErrFileTooLarge)
}

func TestMediaService_Remove(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, storage := newTestMediaSvc(t, ctrl)
	storage.EXPECT().Delete(gomock.Any(), "media/a.png").Return(nil)

	require.NoError(t, svc.Remove(context.Background(), models.RemoveMediaRequest{Key: "media/a.png"}))
	assert.ErrorIs(t, svc.Remove(context.Background(), models.RemoveMediaRequest{}), validators.ErrValidation)
}
