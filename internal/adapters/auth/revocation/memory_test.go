package revocation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_RevokeUntilExpiry(t *testing.T) {
	m := NewMemory()
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }
	ctx := context.Background()

	ok, err := m.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, m.Revoke(ctx, "jti-1", now.Add(time.Hour)))
	ok, _ = m.IsRevoked(ctx, "jti-1")
	assert.True(t, ok)

	now = now.Add(2 * time.Hour)
	ok, _ = m.IsRevoked(ctx, "jti-1")
	assert.False(t, ok)
}
