package auth

import (
	"context"
	"errors"
	"time"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenRevoked = errors.New("token revoked")
)

// AuthVerifier verifica un token y devuelve claims o error.
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}

// TokenIssuer emite un token firmado para el usuario.
type TokenIssuer interface {
	Issue(ctx context.Context, sub Subject, issuedAt time.Time, ttl time.Duration) (string, error)
}

// Revocations guarda los jti invalidados por logout hasta que expiran.
type Revocations interface {
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
