// Package jwt emite y verifica tokens HS256 para la API.
package jwt

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"zoo-management/internal/ports/auth"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrNotConfigured = errors.New("jwt: secret not configured")

type Config struct {
	Secret   string
	Issuer   string
	Audience string
}

type Issuer struct {
	secret      []byte
	issuer      string
	audience    string
	revocations auth.Revocations
	now         func() time.Time
}

type claims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
	gojwt.RegisteredClaims
}

// New crea el issuer/verifier. revocations es opcional.
func New(cfg Config, revocations auth.Revocations) (*Issuer, error) {
	if strings.TrimSpace(cfg.Secret) == "" {
		return nil, ErrNotConfigured
	}
	return &Issuer{
		secret:      []byte(cfg.Secret),
		issuer:      strings.TrimSpace(cfg.Issuer),
		audience:    strings.TrimSpace(cfg.Audience),
		revocations: revocations,
		now:         time.Now,
	}, nil
}

func (i *Issuer) Issue(_ context.Context, sub auth.Subject, issuedAt time.Time, ttl time.Duration) (string, error) {
	c := claims{
		Email: sub.Email,
		Name:  sub.Name,
		Role:  sub.Role,
		RegisteredClaims: gojwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   sub.UserID,
			Issuer:    i.issuer,
			IssuedAt:  gojwt.NewNumericDate(issuedAt),
			NotBefore: gojwt.NewNumericDate(issuedAt),
			ExpiresAt: gojwt.NewNumericDate(issuedAt.Add(ttl)),
		},
	}
	if i.audience != "" {
		c.Audience = gojwt.ClaimStrings{i.audience}
	}

	signed, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, c).SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("jwt: sign: %w", err)
	}
	return signed, nil
}

func (i *Issuer) Verify(ctx context.Context, token string) (auth.Claims, error) {
	opts := []gojwt.ParserOption{
		gojwt.WithValidMethods([]string{gojwt.SigningMethodHS256.Alg()}),
		gojwt.WithTimeFunc(i.now),
		gojwt.WithExpirationRequired(),
	}
	if i.issuer != "" {
		opts = append(opts, gojwt.WithIssuer(i.issuer))
	}
	if i.audience != "" {
		opts = append(opts, gojwt.WithAudience(i.audience))
	}

	var c claims
	_, err := gojwt.ParseWithClaims(token, &c, func(*gojwt.Token) (any, error) {
		return i.secret, nil
	}, opts...)
	if err != nil {
		return auth.Claims{}, fmt.Errorf("%w: %v", auth.ErrInvalidToken, err)
	}
	if strings.TrimSpace(c.Subject) == "" {
		return auth.Claims{}, auth.ErrInvalidToken
	}

	if i.revocations != nil && c.ID != "" {
		revoked, err := i.revocations.IsRevoked(ctx, c.ID)
		if err != nil {
			return auth.Claims{}, err
		}
		if revoked {
			return auth.Claims{}, auth.ErrTokenRevoked
		}
	}

	out := auth.Claims{
		UserID:  c.Subject,
		Email:   c.Email,
		Name:    c.Name,
		Role:    c.Role,
		TokenID: c.ID,
	}
	if c.ExpiresAt != nil {
		out.ExpiresAt = c.ExpiresAt.Time
	}
	return out, nil
}
