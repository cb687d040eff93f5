package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-family-tree/internal/logger"
	"github.com/MKhiriev/go-family-tree/internal/service"
	"github.com/MKhiriev/go-family-tree/internal/utils"
	"github.com/MKhiriev/go-family-tree/models"
)

// identity re-resolves the session owner against the user store so that
// handlers see the current name and role. A token of a deleted user is 401.
func (h *Handler) identity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		token := sessionToken(r)
		if token == "" {
			writeError(w, r, service.ErrUnauthenticated)
			return
		}

		user, err := h.services.AuthService.ResolveIdentity(ctx, token)
		if err != nil {
			if !errors.Is(err, service.ErrTokenIsExpiredOrInvalid) {
				logger.FromRequest(r).Err(err).Str("func", "*Handler.identity").Msg("identity resolution failed")
			}
			writeError(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithAuthUser(ctx, user)))
	})
}

// caller returns the identity placed by the identity middleware.
func caller(r *http.Request) (models.AuthUser, bool) {
	return utils.GetAuthUserFromContext(r.Context())
}

// mustCaller writes a 401 when no identity is present.
func mustCaller(w http.ResponseWriter, r *http.Request) (models.AuthUser, bool) {
	user, ok := caller(r)
	if !ok {
		writeError(w, r, service.ErrUnauthenticated)
	}
	return user, ok
}
