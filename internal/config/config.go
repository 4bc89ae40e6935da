// Package config loads application configuration from environment
// variables.
package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

// Config holds all runtime configuration values.  Each field maps to an
// environment variable.  The service keeps its state in memory, so the
// only external pieces are the HTTP port, the JWT secret and the
// key-value store (see redis.go).
type Config struct {
	Env          string        // application environment (dev/test/prod)
	Port         string        // HTTP port to listen on
	JWTSecret    string        // secret used to sign JWTs
	AccessTTLMin int           // access token time-to-live in minutes
	BcryptCost   int           // bcrypt cost for the seeded passwords
	SessionTTL   time.Duration // lifetime of session entries in the key-value store
	CacheTTL     time.Duration // lifetime of cached catalog responses; 0 disables caching
}

// Load reads configuration from the environment.  JWT_SECRET is
// required; everything else has a development default.
func Load() Config {
	return Config{
		Env:          getenv("APP_ENV", "dev"),
		Port:         getenv("APP_PORT", "8080"),
		JWTSecret:    must("JWT_SECRET"),
		AccessTTLMin: envInt("ACCESS_TOKEN_TTL_MIN", 60),
		BcryptCost:   envInt("BCRYPT_COST", 10),
		SessionTTL:   envDur("SESSION_TTL", 24*time.Hour),
		CacheTTL:     envDur("CACHE_TTL", 30*time.Second),
	}
}

// must retrieves a required environment variable or exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	return def
}

func envDur(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	return def
}
