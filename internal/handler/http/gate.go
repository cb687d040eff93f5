package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-family-tree/internal/app"
	"github.com/MKhiriev/go-family-tree/internal/logger"
	"github.com/MKhiriev/go-family-tree/internal/utils"
	"github.com/MKhiriev/go-family-tree/models"
)

// Decision is the outcome of the access gate for one request.
type Decision int

const (
	DecisionPass Decision = iota
	DecisionRejectUnauthenticated
	DecisionRejectForbidden
)

func (d Decision) String() string {
	switch d {
	case DecisionPass:
		return "pass"
	case DecisionRejectUnauthenticated:
		return "reject-unauthenticated"
	case DecisionRejectForbidden:
		return "reject-forbidden"
	default:
		return "unknown"
	}
}

// Browser redirect targets of rejected page navigations.
const (
	LoginPath     = "/auth/login"
	DashboardPath = "/dashboard"
)

// publicPaths are matched exactly.
var publicPaths = map[string]struct{}{
	"/":                  {},
	LoginPath:            {},
	"/auth/register":     {},
	"/api/auth/login":    {},
	"/api/auth/register": {},
	"/healthz":           {},
	"/metrics":           {},
}

// IsPublicPath reports whether path is served without a session.
func IsPublicPath(path string) bool {
	_, ok := publicPaths[path]
	return ok
}

// IsAdminPath reports whether path belongs to the admin namespace.
func IsAdminPath(path string) bool {
	return path == "/admin" ||
		strings.HasPrefix(path, "/admin/") ||
		path == "/api/admin" ||
		strings.HasPrefix(path, "/api/admin/")
}

// assetPrefixes are served without consulting the gate so the public
// pages can load their bundles.
var assetPrefixes = []string{"/assets/", "/static/"}

// IsAssetPath reports whether path is a static bundle or the favicon.
func IsAssetPath(path string) bool {
	if path == "/favicon.ico" {
		return true
	}
	for _, prefix := range assetPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

func isAPIPath(path string) bool {
	return path == "/api" || strings.HasPrefix(path, "/api/")
}

// Decide classifies a request by its path and the verified token claims.
// A nil claims means there was no token or it did not verify. The role
// comes from the token alone.
func Decide(path string, claims *models.Claims) Decision {
	if IsPublicPath(path) {
		return DecisionPass
	}
	if claims == nil {
		return DecisionRejectUnauthenticated
	}
	if IsAdminPath(path) && claims.Role != models.RoleAdmin {
		return DecisionRejectForbidden
	}
	return DecisionPass
}

// gate enforces Decide before routing. Verified claims are stored in the
// request context.
func (h *Handler) gate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path
		if IsPublicPath(path) || IsAssetPath(path) {
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		log := logger.FromRequest(r)

		var claims *models.Claims
		if token := sessionToken(r); token != "" {
			parsed, err := h.services.AuthService.ParseToken(ctx, token)
			if err != nil {
				log.Debug().Err(err).Str("path", path).Msg("session token rejected")
			} else {
				claims = &parsed
				ctx = utils.WithClaims(ctx, parsed)
			}
		}

		decision := Decide(path, claims)
		if decision == DecisionPass {
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		log.Info().Str("path", path).Stringer("decision", decision).Msg("request rejected by access gate")
		rejectByGate(w, r, decision)
	})
}

func rejectByGate(w http.ResponseWriter, r *http.Request, decision Decision) {
	if isAPIPath(r.URL.Path) {
		if decision == DecisionRejectForbidden {
			writeFailure(w, r, http.StatusForbidden, app.MsgAccessDenied, "Admin role required", nil)
			return
		}
		writeFailure(w, r, http.StatusUnauthorized, app.MsgAuthenticationRequired, "Sign in to continue", nil)
		return
	}

	target := LoginPath
	if decision == DecisionRejectForbidden {
		target = DashboardPath
	}
	http.Redirect(w, r, target, http.StatusFound)
}
