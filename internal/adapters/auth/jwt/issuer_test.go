package jwt

import (
	"context"
	"errors"
	"testing"
	"time"

	"zoo-management/internal/adapters/auth/revocation"
	"zoo-management/internal/ports/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssuer_RoundTrip(t *testing.T) {
	iss, err := New(Config{Secret: "s3cr3t", Issuer: "zoo", Audience: "zoo-api"}, nil)
	require.NoError(t, err)

	now := time.Now()
	tok, err := iss.Issue(context.Background(), auth.Subject{
		UserID: "u-1", Email: "a@zoo.test", Name: "Ana", Role: "Admin",
	}, now, time.Hour)
	require.NoError(t, err)

	c, err := iss.Verify(context.Background(), tok)
	require.NoError(t, err)
	assert.Equal(t, "u-1", c.UserID)
	assert.Equal(t, "a@zoo.test", c.Email)
	assert.Equal(t, "Admin", c.Role)
	assert.NotEmpty(t, c.TokenID)
	assert.WithinDuration(t, now.Add(time.Hour), c.ExpiresAt, time.Second)
}

func TestIssuer_Expired(t *testing.T) {
	iss, err := New(Config{Secret: "s3cr3t"}, nil)
	require.NoError(t, err)

	tok, err := iss.Issue(context.Background(), auth.Subject{UserID: "u-1"}, time.Now().Add(-2*time.Hour), time.Hour)
	require.NoError(t, err)

	_, err = iss.Verify(context.Background(), tok)
	assert.True(t, errors.Is(err, auth.ErrInvalidToken))
}

func TestIssuer_WrongSecret(t *testing.T) {
	a, _ := New(Config{Secret: "one"}, nil)
	b, _ := New(Config{Secret: "two"}, nil)

	tok, err := a.Issue(context.Background(), auth.Subject{UserID: "u-1"}, time.Now(), time.Hour)
	require.NoError(t, err)

	_, err = b.Verify(context.Background(), tok)
	assert.True(t, errors.Is(err, auth.ErrInvalidToken))
}

func TestIssuer_Revoked(t *testing.T) {
	rev := revocation.NewMemory()
	iss, err := New(Config{Secret: "s3cr3t"}, rev)
	require.NoError(t, err)

	ctx := context.Background()
	tok, err := iss.Issue(ctx, auth.Subject{UserID: "u-1"}, time.Now(), time.Hour)
	require.NoError(t, err)

	c, err := iss.Verify(ctx, tok)
	require.NoError(t, err)

	require.NoError(t, rev.Revoke(ctx, c.TokenID, c.ExpiresAt))
	_, err = iss.Verify(ctx, tok)
	assert.True(t, errors.Is(err, auth.ErrTokenRevoked))
}

func TestNew_RequiresSecret(t *testing.T) {
	_, err := New(Config{}, nil)
	assert.ErrorIs(t, err, ErrNotConfigured)
}
