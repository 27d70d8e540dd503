// Package config resolves runtime settings from the environment.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/ranjidha/myHealth/internal/app"
)

// Config carries the settings shared by every command. Values come
// from MYHEALTH_* environment variables, optionally seeded from a
// .env file in the working directory. Command-line flags override
// these downstream, so Load does not validate cross-field choices.
type Config struct {
	DataFile  string
	SheetURL  string
	CacheFile string
	CacheTTL  time.Duration
	Source    string
	Addr      string
}

// Load resolves the configuration. A missing .env file is fine;
// unset variables fall back to per-user defaults.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		DataFile:  getenv("MYHEALTH_DATA_FILE"),
		SheetURL:  getenv("MYHEALTH_SHEET_URL"),
		CacheFile: getenv("MYHEALTH_CACHE_FILE"),
		Source:    getenv("MYHEALTH_SOURCE"),
		Addr:      getenv("MYHEALTH_ADDR"),
	}

	if cfg.DataFile == "" {
		path, err := app.DefaultDataPath()
		if err != nil {
			return Config{}, err
		}
		cfg.DataFile = path
	}
	if cfg.CacheFile == "" {
		path, err := app.DefaultCachePath()
		if err != nil {
			return Config{}, err
		}
		cfg.CacheFile = path
	}
	if raw := getenv("MYHEALTH_CACHE_TTL"); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, fmt.Errorf("parse MYHEALTH_CACHE_TTL: %w", err)
		}
		cfg.CacheTTL = ttl
	}
	if cfg.Source == "" {
		cfg.Source = "local"
	}
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	return cfg, nil
}

func getenv(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}
