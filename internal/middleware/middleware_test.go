package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"zoo-management/internal/domain/apperr"
	"zoo-management/internal/domain/authz"
	"zoo-management/internal/httpx"
	"zoo-management/internal/ports/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubVerifier struct {
	claims auth.Claims
	err    error
}

func (v stubVerifier) Verify(_ context.Context, token string) (auth.Claims, error) {
	if v.err != nil {
		return auth.Claims{}, v.err
	}
	if token != "good" {
		return auth.Claims{}, auth.ErrInvalidToken
	}
	return v.claims, nil
}

type stubResolver map[string]authz.Principal

func (s stubResolver) Principal(_ context.Context, id string) (authz.Principal, error) {
	if id == "boom" {
		return authz.Principal{}, errors.New("db down")
	}
	p, ok := s[id]
	if !ok {
		return authz.Principal{}, apperr.Unauthorized("unknown user")
	}
	return p, nil
}

// echoClaims responde 200 con el user id de las claims (o 204 sin claims).
func echoClaims() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, ok := GetClaims(r.Context())
		if !ok {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		_, _ = w.Write([]byte(c.UserID))
	})
}

func TestAuthContext(t *testing.T) {
	v := stubVerifier{claims: auth.Claims{UserID: "u-1"}}

	cases := []struct {
		name     string
		devAuth  bool
		header   map[string]string
		wantCode int
		wantBody string
	}{
		{name: "bearer ok", header: map[string]string{"Authorization": "Bearer good"}, wantCode: 200, wantBody: "u-1"},
		{name: "bearer lowercase scheme", header: map[string]string{"Authorization": "bearer good"}, wantCode: 200, wantBody: "u-1"},
		{name: "bad token", header: map[string]string{"Authorization": "Bearer bad"}, wantCode: 204},
		{name: "no header", wantCode: 204},
		{name: "debug header ignored", header: map[string]string{DebugUserHeader: "u-9"}, wantCode: 204},
		{name: "debug header in dev", devAuth: true, header: map[string]string{DebugUserHeader: "u-9"}, wantCode: 200, wantBody: "u-9"},
		{
			name:     "token wins over debug header",
			devAuth:  true,
			header:   map[string]string{"Authorization": "Bearer good", DebugUserHeader: "u-9"},
			wantCode: 200,
			wantBody: "u-1",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := AuthContext(v, tc.devAuth)(echoClaims())
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, val := range tc.header {
				req.Header.Set(k, val)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantCode, rec.Code)
			assert.Equal(t, tc.wantBody, rec.Body.String())
		})
	}
}

func TestResolvePrincipal(t *testing.T) {
	resolver := stubResolver{"u-1": {ID: "u-1", Name: "Ana", Role: authz.RoleAdmin}}
	chain := func(next http.Handler) http.Handler {
		return AuthContext(nil, true)(ResolvePrincipal(resolver)(next))
	}

	var got authz.Principal
	h := chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, ok := httpx.Caller(w, r)
		if !ok {
			return
		}
		got = p
		w.WriteHeader(http.StatusOK)
	}))

	do := func(userID string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if userID != "" {
			req.Header.Set(DebugUserHeader, userID)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	require.Equal(t, http.StatusOK, do("u-1"))
	assert.Equal(t, authz.RoleAdmin, got.Role)
	assert.Equal(t, "Ana", got.Name)

	assert.Equal(t, http.StatusUnauthorized, do("ghost"))
	assert.Equal(t, http.StatusUnauthorized, do(""))
	assert.Equal(t, http.StatusInternalServerError, do("boom"))
}

func TestRecover(t *testing.T) {
	h := Recover(nil)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("kaboom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), httpx.UnexpectedMessage)
}

func TestRequestLogger_PassesThrough(t *testing.T) {
	h := RequestLogger(nil)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)
}
