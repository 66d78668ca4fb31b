package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-fundraiser/internal/utils"
)

// withRequestStart stamps the request context with its arrival time.
func (h *Handler) withRequestStart(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := utils.WithRequestStart(r.Context(), time.Now())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
