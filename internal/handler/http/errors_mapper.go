package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-fundraiser/internal/app"
	"github.com/MKhiriev/go-fundraiser/internal/service"
	"github.com/MKhiriev/go-fundraiser/internal/store"
	"github.com/MKhiriev/go-fundraiser/internal/utils"
	"github.com/MKhiriev/go-fundraiser/internal/validators"
)

var errorStatusMap = map[error]int{
	validators.ErrValidation: http.StatusBadRequest,
	ErrInvalidJSON:           http.StatusBadRequest,
	ErrInvalidMultipartForm:  http.StatusBadRequest,

	ErrEmptyAuthorizationHeader:         http.StatusUnauthorized,
	ErrNoIdentity:                       http.StatusUnauthorized,
	utils.ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	service.ErrInvalidCredentials:       http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid:  http.StatusUnauthorized,

	ErrForbidden:                http.StatusForbidden,
	service.ErrNotCampaignOwner: http.StatusForbidden,

	ErrRouteNotFound:          http.StatusNotFound,
	store.ErrUserNotFound:     http.StatusNotFound,
	store.ErrCategoryNotFound: http.StatusNotFound,
	store.ErrCampaignNotFound: http.StatusNotFound,

	store.ErrUserAlreadyExists:     http.StatusConflict,
	store.ErrSlugAlreadyExists:     http.StatusConflict,
	store.ErrCategoryAlreadyExists: http.StatusConflict,
	store.ErrCategoryInUse:         http.StatusConflict,

	service.ErrNoFileProvided: http.StatusBadRequest,
	service.ErrFileTooLarge:   http.StatusRequestEntityTooLarge,
}

// statusFromError returns the HTTP status of err and the sentinel it matched.
// Unknown errors yield 500 and a nil sentinel.
func statusFromError(err error) (int, error) {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status, target
		}
	}
	return http.StatusInternalServerError, nil
}

// messageFromError builds the client-facing message. The chain above the
// matched sentinel is cut off so that internal wrapping never leaks, while
// details appended below it (e.g. the conflicting field) are kept.
func messageFromError(err, target error, status int) string {
	if target == nil || status >= http.StatusInternalServerError {
		return app.MsgInternalServerError
	}
	if errors.Is(target, validators.ErrValidation) {
		return validators.ErrValidation.Error()
	}

	full := err.Error()
	if i := strings.Index(full, target.Error()); i >= 0 {
		return full[i:]
	}
	return target.Error()
}

// dataFromError returns the per-field messages of a validation failure.
func dataFromError(err error) any {
	var validationErr *validators.ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Fields
	}
	return nil
}
