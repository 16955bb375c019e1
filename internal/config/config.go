package config

import (
	"log/slog"
	"os"
	"time"
)

const (
	devHashKey  = "dev-hash-key-change-in-production-0123456789abcdef0123456789abcd"
	devBlockKey = "dev-block-key-0123456789abcdef01"
)

type Config struct {
	Port        string
	Env         string
	DatabaseDSN string

	// SessionHashKey signs the session and CSRF cookies (HMAC-SHA256,
	// 32 or 64 bytes). SessionBlockKey encrypts them (AES-128/192/256
	// by length). Rotating either invalidates every outstanding session.
	SessionHashKey  string
	SessionBlockKey string
	SessionTTL      time.Duration

	BcryptCost    int
	SecureCookies bool
}

func Load() Config {
	cfg := Config{
		Port:            getEnv("PORT", "3000"),
		Env:             getEnv("ENV", "development"),
		DatabaseDSN:     getEnv("DATABASE_DSN", "root:password@tcp(127.0.0.1:3306)/authgate?parseTime=true"),
		SessionHashKey:  getEnv("SESSION_HASH_KEY", devHashKey),
		SessionBlockKey: getEnv("SESSION_BLOCK_KEY", devBlockKey),
		SessionTTL:      24 * time.Hour,
		BcryptCost:      14,
		SecureCookies:   getEnv("COOKIE_SECURE", "true") == "true",
	}

	if cfg.Env == "production" && (cfg.SessionHashKey == devHashKey || cfg.SessionBlockKey == devBlockKey) {
		slog.Error("SESSION_HASH_KEY and SESSION_BLOCK_KEY must be set in production environment")
		os.Exit(1)
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
