package http

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/MKhiriev/go-fundraiser/internal/app"
	"github.com/MKhiriev/go-fundraiser/internal/service"
	"github.com/MKhiriev/go-fundraiser/models"
)

const (
	multipartMemory    = 32 << 20
	multipartOverhead  = 1 << 20
	maxFilesPerRequest = 10
)

func (h *Handler) uploadSingle(w http.ResponseWriter, r *http.Request) {
	headers, err := h.parseUpload(w, r, "file", 1)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	files, closeAll, err := openFiles(headers[:1])
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	defer closeAll()

	uploaded, err := h.services.MediaService.Upload(r.Context(), files[0])
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeSuccess(w, r, http.StatusCreated, app.MsgFileUploaded, uploaded)
}

func (h *Handler) uploadMultiple(w http.ResponseWriter, r *http.Request) {
	headers, err := h.parseUpload(w, r, "files", maxFilesPerRequest)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	files, closeAll, err := openFiles(headers)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	defer closeAll()

	uploaded, err := h.services.MediaService.UploadMany(r.Context(), files)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeSuccess(w, r, http.StatusCreated, app.MsgFilesUploaded, uploaded)
}

func (h *Handler) removeMedia(w http.ResponseWriter, r *http.Request) {
	var req models.RemoveMediaRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	if err := h.services.MediaService.Remove(r.Context(), req); err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeSuccess(w, r, http.StatusOK, app.MsgFileRemoved, nil)
}

// parseUpload reads the multipart body and returns the headers of the files
// sent under field. The body is capped at maxFiles files of the configured size.
func (h *Handler) parseUpload(w http.ResponseWriter, r *http.Request, field string, maxFiles int) ([]*multipart.FileHeader, error) {
	if h.maxUploadSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize*int64(maxFiles)+multipartOverhead)
	}

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return nil, service.ErrFileTooLarge
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidMultipartForm, err)
	}

	headers := r.MultipartForm.File[field]
	if len(headers) == 0 {
		return nil, service.ErrNoFileProvided
	}
	if len(headers) > maxFiles {
		return nil, fmt.Errorf("%w: at most %d files are accepted", ErrInvalidMultipartForm, maxFiles)
	}

	return headers, nil
}

func openFiles(headers []*multipart.FileHeader) ([]models.MediaFile, func(), error) {
	opened := make([]multipart.File, 0, len(headers))
	closeAll := func() {
		for _, f := range opened {
			_ = f.Close()
		}
	}

	files := make([]models.MediaFile, 0, len(headers))
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			closeAll()
			return nil, nil, fmt.Errorf("open uploaded file %q: %w", fh.Filename, err)
		}
		opened = append(opened, f)

		files = append(files, models.MediaFile{
			Name:        fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Size:        fh.Size,
			Body:        f,
		})
	}

	return files, closeAll, nil
}
