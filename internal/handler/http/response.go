package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-fundraiser/internal/logger"
	"github.com/MKhiriev/go-fundraiser/internal/utils"
	"github.com/MKhiriev/go-fundraiser/models"
)

func (h *Handler) writeSuccess(w http.ResponseWriter, r *http.Request, status int, message string, data any) {
	resp := models.Response{
		Message: message,
		Success: true,
		Data:    data,
	}
	if _, err := utils.WriteJSON(w, resp, status); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.writeSuccess").Msg("error writing response")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status, target := statusFromError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", "*Handler.writeError").Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	resp := models.ErrorResponse{
		Message:      messageFromError(err, target, status),
		Success:      false,
		Data:         dataFromError(err),
		ResponseTime: responseTime(r),
	}
	if h.exposeErrors {
		resp.Detail = err.Error()
	}

	if _, err = utils.WriteJSON(w, resp, status); err != nil {
		log.Err(err).Str("func", "*Handler.writeError").Msg("error writing response")
	}
}

// responseTime returns the milliseconds elapsed since the request started.
func responseTime(r *http.Request) int64 {
	start, ok := utils.GetRequestStartFromContext(r.Context())
	if !ok {
		return 0
	}
	return time.Since(start).Milliseconds()
}

func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}
