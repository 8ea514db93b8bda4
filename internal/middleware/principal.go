package middleware

import (
	"context"
	"net/http"
	"strings"

	"zoo-management/internal/domain/apperr"
	"zoo-management/internal/domain/authz"
	"zoo-management/internal/httpx"
	"zoo-management/internal/platform/logger"
)

// PrincipalResolver carga la identidad completa (rol incluido) desde el storage.
type PrincipalResolver interface {
	Principal(ctx context.Context, userID string) (authz.Principal, error)
}

// ResolvePrincipal convierte claims en authz.Principal. Un usuario que ya no
// existe se trata como anónimo; cualquier otro error corta con 500.
func ResolvePrincipal(resolver PrincipalResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := GetClaims(r.Context())
			if !ok || strings.TrimSpace(claims.UserID) == "" || resolver == nil {
				next.ServeHTTP(w, r)
				return
			}

			p, err := resolver.Principal(r.Context(), claims.UserID)
			if err != nil {
				if e, ok := apperr.As(err); ok && e.Kind == apperr.KindUnauthorized {
					logger.FromContext(r.Context()).Debug("claims for unknown user", map[string]any{"user_id": claims.UserID})
					next.ServeHTTP(w, r)
					return
				}
				httpx.Fail(w, r, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(httpx.WithPrincipal(r.Context(), p)))
		})
	}
}
