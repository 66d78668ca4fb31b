package http

import (
	"net/http"

	"github.com/MKhiriev/go-fundraiser/internal/app"
	"github.com/MKhiriev/go-fundraiser/internal/utils"
	"github.com/MKhiriev/go-fundraiser/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createCampaign(w http.ResponseWriter, r *http.Request) {
	caller, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		h.writeError(w, r, ErrNoIdentity)
		return
	}

	var req models.CampaignRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	campaign, err := h.services.CampaignService.CreateCampaign(r.Context(), caller, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeSuccess(w, r, http.StatusCreated, app.MsgCampaignCreated, campaign)
}

func (h *Handler) listCampaigns(w http.ResponseWriter, r *http.Request) {
	page, err := h.services.CampaignService.ListCampaigns(r.Context(), campaignFilterFromQuery(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeSuccess(w, r, http.StatusOK, app.MsgCampaignsFound, page)
}

func (h *Handler) listApprovedCampaigns(w http.ResponseWriter, r *http.Request) {
	page, err := h.services.CampaignService.ListApprovedCampaigns(r.Context(), campaignFilterFromQuery(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeSuccess(w, r, http.StatusOK, app.MsgCampaignsFound, page)
}

func (h *Handler) getCampaign(w http.ResponseWriter, r *http.Request) {
	campaign, err := h.services.CampaignService.GetCampaign(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeSuccess(w, r, http.StatusOK, app.MsgCampaignFound, campaign)
}

func (h *Handler) getApprovedCampaign(w http.ResponseWriter, r *http.Request) {
	campaign, err := h.services.CampaignService.GetApprovedCampaign(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeSuccess(w, r, http.StatusOK, app.MsgCampaignFound, campaign)
}

func (h *Handler) getCampaignBySlug(w http.ResponseWriter, r *http.Request) {
	campaign, err := h.services.CampaignService.GetCampaignBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeSuccess(w, r, http.StatusOK, app.MsgCampaignFound, campaign)
}

func (h *Handler) updateCampaign(w http.ResponseWriter, r *http.Request) {
	caller, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		h.writeError(w, r, ErrNoIdentity)
		return
	}

	var req models.CampaignRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	campaign, err := h.services.CampaignService.UpdateCampaign(r.Context(), caller, chi.URLParam(r, "id"), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeSuccess(w, r, http.StatusOK, app.MsgCampaignUpdated, campaign)
}

func (h *Handler) deleteCampaign(w http.ResponseWriter, r *http.Request) {
	caller, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		h.writeError(w, r, ErrNoIdentity)
		return
	}

	if err := h.services.CampaignService.DeleteCampaign(r.Context(), caller, chi.URLParam(r, "id")); err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeSuccess(w, r, http.StatusOK, app.MsgCampaignDeleted, nil)
}
