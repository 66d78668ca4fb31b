package http

import (
	"net/http"

	"github.com/MKhiriev/go-fundraiser/internal/app"
)

func (h *Handler) status(w http.ResponseWriter, r *http.Request) {
	h.writeSuccess(w, r, http.StatusOK, app.MsgServiceRunning, h.services.AppInfoService.Status(r.Context()))
}
