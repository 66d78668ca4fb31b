package http

import (
	"net/http"

	"github.com/MKhiriev/go-fundraiser/internal/app"
	"github.com/MKhiriev/go-fundraiser/internal/logger"
	"github.com/MKhiriev/go-fundraiser/internal/utils"
	"github.com/MKhiriev/go-fundraiser/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	user, err := h.services.AuthService.RegisterUser(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("user_id", user.ID).Msg("user registered")
	h.writeSuccess(w, r, http.StatusCreated, app.MsgRegistered, user)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	user, err := h.services.AuthService.Login(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	token, err := h.services.TokenService.IssueToken(r.Context(), user)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	w.Header().Set("Authorization", "Bearer "+token.SignedString)
	h.writeSuccess(w, r, http.StatusOK, app.MsgLoggedIn, models.LoginResponse{Token: token.SignedString})
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		h.writeError(w, r, ErrNoIdentity)
		return
	}

	user, err := h.services.AuthService.FindUserByID(r.Context(), identity.UserID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeSuccess(w, r, http.StatusOK, app.MsgUserFound, user)
}

func (h *Handler) activate(w http.ResponseWriter, r *http.Request) {
	var req models.ActivationRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	user, err := h.services.AuthService.Activate(r.Context(), req.Code)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeSuccess(w, r, http.StatusOK, app.MsgAccountActivated, user)
}
