// Package config loads server settings from the environment, with an
// optional .env file for local development.
package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultAddr       = ":8000"
	defaultJWTTTL     = 24 * time.Hour
	defaultCORSOrigin = "http://localhost:3000"
	defaultJWTSecret  = "THIS_IS_A_JWT_SECRET_KEY"
)

// Config holds everything main needs to wire the server together.
type Config struct {
	Addr        string        // HTTP listen address
	DatabaseURL string        // PostgreSQL DSN; empty selects the in-memory store
	ValkeyURL   string        // Valkey host:port; empty selects the in-memory session store
	JWTSecret   string        // HMAC secret for login tokens
	JWTTTL      time.Duration // Login token and session lifetime
	CORSOrigin  string        // Allowed web client origin
}

// Load reads the configuration from the environment. A missing .env file is
// not an error.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("[CONFIG] no .env file loaded: %v", err)
	}

	cfg := Config{
		Addr:        getEnv("ADDR", defaultAddr),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		ValkeyURL:   os.Getenv("VALKEY_URL"),
		JWTSecret:   getEnv("JWT_SECRET", defaultJWTSecret),
		JWTTTL:      defaultJWTTTL,
		CORSOrigin:  getEnv("CORS_ORIGIN", defaultCORSOrigin),
	}

	if raw := os.Getenv("JWT_TTL"); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil {
			log.Printf("[CONFIG] invalid JWT_TTL %q, using default: %v", raw, err)
		} else {
			cfg.JWTTTL = ttl
		}
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
