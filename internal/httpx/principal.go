package httpx

import (
	"context"
	"net/http"

	"zoo-management/internal/domain/apperr"
	"zoo-management/internal/domain/authz"
)

type principalKey struct{}

func WithPrincipal(ctx context.Context, p authz.Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

func PrincipalFrom(ctx context.Context) (authz.Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(authz.Principal)
	if !ok || !p.Authenticated() {
		return authz.Principal{}, false
	}
	return p, true
}

// Caller devuelve el usuario del request o escribe 401.
func Caller(w http.ResponseWriter, r *http.Request) (authz.Principal, bool) {
	p, ok := PrincipalFrom(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, "unauthorized", apperr.CodeUnauthorized)
		return authz.Principal{}, false
	}
	return p, true
}
