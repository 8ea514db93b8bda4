// Package revocation guarda los jti invalidados por logout.
package revocation

import (
	"context"
	"sync"
	"time"
)

type Memory struct {
	mu      sync.Mutex
	revoked map[string]time.Time // jti -> expira
	now     func() time.Time
}

func NewMemory() *Memory {
	return &Memory{
		revoked: make(map[string]time.Time),
		now:     time.Now,
	}
}

func (m *Memory) Revoke(_ context.Context, tokenID string, expiresAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.purge()
	m.revoked[tokenID] = expiresAt
	return nil
}

func (m *Memory) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	exp, ok := m.revoked[tokenID]
	if !ok {
		return false, nil
	}
	if !exp.After(m.now()) {
		delete(m.revoked, tokenID)
		return false, nil
	}
	return true, nil
}

// purge descarta entradas vencidas; el token ya no valida por sí solo.
func (m *Memory) purge() {
	now := m.now()
	for id, exp := range m.revoked {
		if !exp.After(now) {
			delete(m.revoked, id)
		}
	}
}
