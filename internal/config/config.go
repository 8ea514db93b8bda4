// Package config lee la configuración del proceso desde el entorno.
// cmd/api carga antes el .env (si existe) con godotenv.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// DatabaseDSN vacío => storage en memoria.
	DatabaseDSN  string
	MaxOpenConns int

	// RedisAddr vacío => lista de revocación en memoria.
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	JWTSecret   string
	JWTIssuer   string
	JWTAudience string
	TokenTTL    time.Duration

	// MailRelayURL vacío => las notificaciones solo se loguean.
	MailRelayURL    string
	MailRelayAPIKey string
	MailSender      string
	MailFrom        string
	NotifyRecipient string

	SeedAdminName     string
	SeedAdminEmail    string
	SeedAdminPassword string

	// DevAuth habilita el header X-Debug-User-ID.
	DevAuth bool
}

func Load() Config {
	return Config{
		Port:         getEnv("PORT", "8080"),
		ReadTimeout:  getDuration("SERVER_READ_TIMEOUT", 5*time.Second),
		WriteTimeout: getDuration("SERVER_WRITE_TIMEOUT", 10*time.Second),

		DatabaseDSN:  getEnv("DB_DSN", ""),
		MaxOpenConns: getInt("DB_MAX_OPEN_CONNS", 10),

		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getInt("REDIS_DB", 0),

		JWTSecret:   getEnv("JWT_SECRET", ""),
		JWTIssuer:   getEnv("JWT_ISSUER", "zoo-management"),
		JWTAudience: getEnv("JWT_AUDIENCE", ""),
		TokenTTL:    getDuration("TOKEN_TTL", 168*time.Hour),

		MailRelayURL:    getEnv("MAIL_RELAY_URL", ""),
		MailRelayAPIKey: getEnv("MAIL_RELAY_API_KEY", ""),
		MailSender:      getEnv("MAIL_SENDER", "Zoo System"),
		MailFrom:        getEnv("MAIL_FROM", ""),
		NotifyRecipient: getEnv("NOTIFY_RECIPIENT", ""),

		SeedAdminName:     getEnv("SEED_ADMIN_NAME", ""),
		SeedAdminEmail:    getEnv("SEED_ADMIN_EMAIL", ""),
		SeedAdminPassword: getEnv("SEED_ADMIN_PASSWORD", ""),

		DevAuth: getBool("DEV_AUTH", false),
	}
}

// Addr es la dirección de escucha (":8080").
func (c Config) Addr() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	n, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return def
	}
	return n
}

func getBool(key string, def bool) bool {
	b, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return def
	}
	return b
}

func getDuration(key string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(getEnv(key, ""))
	if err != nil || d <= 0 {
		return def
	}
	return d
}
