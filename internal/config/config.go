// Package config reads runtime configuration from the environment.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds runtime configuration.
type Config struct {
	// DBPath is the SQLite database file path.
	DBPath string
	// Addr is the HTTP listen address. Defaults to loopback only; the API
	// serves a local UI, not the network.
	Addr string
	// LogPath is an optional log file path. Empty means stdout/stderr only.
	LogPath string
}

// Load reads configuration from the environment, after loading an optional
// .env file. Missing variables fall back to defaults.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		DBPath:  getEnv("STASH_DB", "stash.sqlite3"),
		Addr:    getEnv("STASH_ADDR", "127.0.0.1:8080"),
		LogPath: getEnv("STASH_LOG", ""),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
