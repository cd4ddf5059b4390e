// Package config provides application configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/robalobadob/eldrow/internal/render"
)

// Config holds all application configuration.
type Config struct {
	LogLevel string `envconfig:"LOG_LEVEL" default:"warn"`

	// Language tag of the word list, e.g. "en" or "EN"
	Language string `envconfig:"WORDLE_LANGUAGE" default:"en"`

	// Replaces the remote URL of the configured language's word list
	WordsURL string `envconfig:"WORDLE_WORDS_URL"`

	// Local word list, one word per line; takes precedence over the remote list
	WordsFile string `envconfig:"WORDS_ALLOWED_FILE"`

	// SQLite file caching remote word lists. Unset means DefaultCacheDB,
	// set but empty disables the cache.
	CacheDB  string        `envconfig:"WORDLE_CACHE_DB"`
	CacheTTL time.Duration `envconfig:"WORDLE_CACHE_TTL" default:"168h"`

	FetchTimeout time.Duration `envconfig:"WORDLE_FETCH_TIMEOUT" default:"10s"`

	// Skip the network and use cached or embedded lists only
	Offline bool `envconfig:"WORDLE_OFFLINE" default:"false"`

	Color string `envconfig:"WORDLE_COLOR" default:"auto"`
	Emoji bool   `envconfig:"WORDLE_EMOJI" default:"false"`

	// Key of the daily word stream
	DailySalt string `envconfig:"WORDLE_DAILY_SALT" default:"eldrow"`
}

// Load reads a .env file if present, then the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("processing the config: %w", err)
	}
	if _, set := os.LookupEnv("WORDLE_CACHE_DB"); !set {
		cfg.CacheDB = DefaultCacheDB()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// DefaultCacheDB is eldrow/words.db under the user's cache directory, or ""
// when the platform has none.
func DefaultCacheDB() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "eldrow", "words.db")
}

// Validate checks the values envconfig cannot.
func (c *Config) Validate() error {
	if c.Language == "" {
		return fmt.Errorf("WORDLE_LANGUAGE cannot be empty")
	}
	if _, err := render.ParseColorMode(c.Color); err != nil {
		return fmt.Errorf("WORDLE_COLOR: %w", err)
	}
	if c.CacheTTL <= 0 {
		return fmt.Errorf("WORDLE_CACHE_TTL must be > 0")
	}
	if c.FetchTimeout <= 0 {
		return fmt.Errorf("WORDLE_FETCH_TIMEOUT must be > 0")
	}
	return nil
}

// ColorMode is the parsed Color setting.
func (c *Config) ColorMode() render.ColorMode {
	m, err := render.ParseColorMode(c.Color)
	if err != nil {
		return render.ColorAuto
	}
	return m
}
