package http

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"surfjobs-backend/internal/config"
	"surfjobs-backend/internal/domain"
	"surfjobs-backend/internal/security"
)

type AuthMiddleware struct {
	tokenManager security.TokenManager
	log          *slog.Logger
}

func NewAuthMiddleware(tm security.TokenManager, log *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenManager: tm, log: log}
}

// Handler resolves the bearer token into an Identity for every request.
// Public routes accept anonymous callers; a token that is present but invalid
// is rejected everywhere.
func (m *AuthMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		level := config.SecurityAccess
		if route := mux.CurrentRoute(r); route != nil {
			level = config.GetSecurityLevel(route.GetName())
		}

		token := extractToken(r)
		if token == "" {
			if level == config.SecurityPublic {
				next.ServeHTTP(w, r)
				return
			}
			writeError(w, m.log, domain.ErrUnauthenticated)
			return
		}

		identity, err := m.tokenManager.ResolveIdentity(token)
		if err != nil {
			m.log.Debug("rejected bearer token", "error", err, "path", r.URL.Path)
			writeError(w, m.log, domain.NewError(domain.CodeUnauthenticated, "invalid token", err))
			return
		}

		next.ServeHTTP(w, r.WithContext(withIdentity(r.Context(), identity)))
	})
}

func extractToken(r *http.Request) string {
	token := r.Header.Get("Authorization")
	// Remove Bearer prefix if present
	if len(token) > 7 && strings.ToUpper(token[0:7]) == "BEARER " {
		token = token[7:]
	}
	return strings.TrimSpace(token)
}
