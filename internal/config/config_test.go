package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "DB_DSN", "TOKEN_TTL", "DEV_AUTH", "MAIL_SENDER", "REDIS_DB"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Empty(t, cfg.DatabaseDSN)
	assert.Equal(t, 168*time.Hour, cfg.TokenTTL)
	assert.Equal(t, "Zoo System", cfg.MailSender)
	assert.False(t, cfg.DevAuth)
	assert.Equal(t, 0, cfg.RedisDB)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("TOKEN_TTL", "2h")
	t.Setenv("DEV_AUTH", "true")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("SERVER_READ_TIMEOUT", "nonsense")

	cfg := Load()
	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, 2*time.Hour, cfg.TokenTTL)
	assert.True(t, cfg.DevAuth)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.Equal(t, 5*time.Second, cfg.ReadTimeout)
}
