// Package config resolves server settings from flags, environment variables,
// and an optional .env file, in that order of precedence.
package config

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all server settings.
type Config struct {
	// Addr is the listen address for the web front-end.
	Addr string
	// BackendURL is the base URL of the LostIT REST backend.
	BackendURL string
	// DBPath is the local state database file.
	DBPath string
	// LogPath is an optional log file (stdout/stderr only when empty).
	LogPath string
}

// Defaults, overridable via LOSTIT_* environment variables or flags.
const (
	defaultAddr       = ":3000"
	defaultBackendURL = "http://localhost:8080"
	defaultDBPath     = "lostit.sqlite3"
)

// Load parses the given command-line arguments on top of environment
// defaults. A .env file in the working directory is read first if present.
func Load(args []string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	cfg := &Config{
		Addr:       envOr("LOSTIT_ADDR", defaultAddr),
		BackendURL: envOr("LOSTIT_BACKEND_URL", defaultBackendURL),
		DBPath:     envOr("LOSTIT_DB", defaultDBPath),
		LogPath:    os.Getenv("LOSTIT_LOG"),
	}

	fs := flag.NewFlagSet("lostit", flag.ContinueOnError)
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "listen address")
	fs.StringVar(&cfg.BackendURL, "backend", cfg.BackendURL, "LostIT backend base URL")
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "state database path")
	fs.StringVar(&cfg.LogPath, "log", cfg.LogPath, "log file path")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected argument: %s", fs.Arg(0))
	}

	if cfg.BackendURL == "" {
		return nil, fmt.Errorf("backend base URL must not be empty")
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
