package http

import (
	"net/http"

	"github.com/MKhiriev/go-fundraiser/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	router.Use(middleware.Recoverer, h.withRequestStart, h.withTraceID, h.withLogging)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}
	router.Use(middleware.Compress(5, "application/json"))

	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.notFound)

	creators := h.requireRoles(models.RoleAdmin, models.RoleFundraiser)

	router.Get("/", h.status)

	router.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.register)
			r.Post("/login", h.login)
			r.Group(func(r chi.Router) {
				r.Use(h.auth)
				r.Get("/me", h.me)
				r.Post("/activation", h.activate)
			})
		})

		r.Route("/category", func(r chi.Router) {
			r.Get("/", h.listCategories)
			r.Get("/{id}", h.getCategory)
			r.Group(func(r chi.Router) {
				r.Use(h.auth, h.requireRoles(models.RoleAdmin))
				r.Post("/", h.createCategory)
				r.Put("/{id}", h.updateCategory)
				r.Delete("/{id}", h.deleteCategory)
			})
		})

		r.Route("/campaign", func(r chi.Router) {
			r.Get("/", h.listCampaigns)
			r.Get("/{id}", h.getCampaign)
			r.Get("/{slug}/slug", h.getCampaignBySlug)
			r.Group(func(r chi.Router) {
				r.Use(h.auth, creators)
				r.Post("/", h.createCampaign)
				r.Put("/{id}", h.updateCampaign)
				r.Delete("/{id}", h.deleteCampaign)
			})
		})

		r.Route("/campaign-approved", func(r chi.Router) {
			r.Get("/", h.listApprovedCampaigns)
			r.Get("/{id}", h.getApprovedCampaign)
		})

		r.Route("/media", func(r chi.Router) {
			r.Use(h.auth, creators)
			r.Post("/upload-single", h.uploadSingle)
			r.Post("/upload-multiple", h.uploadMultiple)
			r.Delete("/remove", h.removeMedia)
		})
	})

	return router
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	h.writeError(w, r, ErrRouteNotFound)
}
