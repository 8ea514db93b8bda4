package revocation

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*Redis, *miniredis.Miniredis, *time.Time) {
	t.Helper()
	mr := miniredis.RunT(t)
	r := NewRedis(RedisConfig{Addr: mr.Addr()})
	t.Cleanup(func() { _ = r.Close() })

	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return now }
	return r, mr, &now
}

func TestRedis_RevokeUntilExpiry(t *testing.T) {
	r, mr, now := newTestRedis(t)
	ctx := context.Background()
	require.NoError(t, r.Ping(ctx))

	ok, err := r.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, r.Revoke(ctx, "jti-1", now.Add(time.Hour)))
	ok, err = r.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, time.Hour, mr.TTL("revoked:jti-1"))

	mr.FastForward(2 * time.Hour)
	ok, err = r.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedis_ExpiredTokenIsNotStored(t *testing.T) {
	r, mr, now := newTestRedis(t)
	ctx := context.Background()

	require.NoError(t, r.Revoke(ctx, "jti-2", now.Add(-time.Minute)))
	assert.False(t, mr.Exists("revoked:jti-2"))

	ok, err := r.IsRevoked(ctx, "jti-2")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedis_ServerDownIsError(t *testing.T) {
	r, mr, now := newTestRedis(t)
	ctx := context.Background()
	mr.Close()

	_, err := r.IsRevoked(ctx, "jti-3")
	assert.Error(t, err)
	assert.Error(t, r.Revoke(ctx, "jti-3", now.Add(time.Hour)))
}
