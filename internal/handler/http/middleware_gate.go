package http

import (
	"net/http"
	"slices"

	"github.com/MKhiriev/go-fundraiser/internal/logger"
	"github.com/MKhiriev/go-fundraiser/internal/utils"
	"github.com/MKhiriev/go-fundraiser/models"
)

// gateOutcome is the state a request reaches in the access-control gate.
type gateOutcome int

const (
	gateUnauthenticated gateOutcome = iota
	gateAuthenticated
	gateAuthorized
	gateDenied
)

func (o gateOutcome) String() string {
	switch o {
	case gateUnauthenticated:
		return "unauthenticated"
	case gateAuthenticated:
		return "authenticated"
	case gateAuthorized:
		return "authorized"
	case gateDenied:
		return "denied"
	default:
		return "unknown"
	}
}

// authenticate resolves the caller from the Authorization header.
func (h *Handler) authenticate(r *http.Request) (models.Identity, gateOutcome, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return models.Identity{}, gateUnauthenticated, ErrEmptyAuthorizationHeader
	}

	raw, err := utils.ParseBearerToken(header)
	if err != nil {
		return models.Identity{}, gateUnauthenticated, err
	}

	identity, err := h.services.TokenService.VerifyToken(r.Context(), raw)
	if err != nil {
		return models.Identity{}, gateUnauthenticated, err
	}

	return identity, gateAuthenticated, nil
}

func authorize(identity models.Identity, roles []models.Role) gateOutcome {
	if slices.Contains(roles, identity.Role) {
		return gateAuthorized
	}
	return gateDenied
}

// auth admits only requests carrying a valid session token and puts the
// caller's identity into the request context.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, outcome, err := h.authenticate(r)
		if outcome != gateAuthenticated {
			logger.FromRequest(r).Debug().Err(err).Stringer("gate", outcome).Msg("request rejected by gate")
			h.writeError(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithIdentity(r.Context(), identity)))
	})
}

// requireRoles must run after auth. It admits callers whose role is one of roles.
func (h *Handler) requireRoles(roles ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := utils.GetIdentityFromContext(r.Context())
			if !ok {
				h.writeError(w, r, ErrNoIdentity)
				return
			}

			if outcome := authorize(identity, roles); outcome == gateDenied {
				logger.FromRequest(r).Debug().
					Str("user_id", identity.UserID).
					Str("role", string(identity.Role)).
					Stringer("gate", outcome).
					Msg("request rejected by gate")
				h.writeError(w, r, ErrForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
