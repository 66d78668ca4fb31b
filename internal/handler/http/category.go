package http

import (
	"net/http"

	"github.com/MKhiriev/go-fundraiser/internal/app"
	"github.com/MKhiriev/go-fundraiser/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	var req models.CategoryRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	category, err := h.services.CategoryService.CreateCategory(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeSuccess(w, r, http.StatusCreated, app.MsgCategoryCreated, category)
}

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	page, err := h.services.CategoryService.ListCategories(r.Context(), paginationFromQuery(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeSuccess(w, r, http.StatusOK, app.MsgCategoriesFound, page)
}

func (h *Handler) getCategory(w http.ResponseWriter, r *http.Request) {
	category, err := h.services.CategoryService.GetCategory(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeSuccess(w, r, http.StatusOK, app.MsgCategoryFound, category)
}

func (h *Handler) updateCategory(w http.ResponseWriter, r *http.Request) {
	var req models.CategoryRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	category, err := h.services.CategoryService.UpdateCategory(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeSuccess(w, r, http.StatusOK, app.MsgCategoryUpdated, category)
}

func (h *Handler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := h.services.CategoryService.DeleteCategory(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeSuccess(w, r, http.StatusOK, app.MsgCategoryDeleted, nil)
}
