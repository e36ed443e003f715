// Package config loads runtime configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/joeshaw/envdecode"
)

const (
	StoreFile     = "file"
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
)

type Config struct {
	// DrawCount is how many cards a draw moves from stock to waste.
	DrawCount int `env:"KLONDIKE_DRAW_COUNT,default=1"`
	// FreeRecycles is how many waste recycles are free of penalty.
	FreeRecycles int `env:"KLONDIKE_FREE_RECYCLES,default=1"`
	// RecyclePenalty is the score deducted per recycle past the free ones.
	RecyclePenalty int `env:"KLONDIKE_RECYCLE_PENALTY,default=100"`
	// HistoryCap bounds the undo stack depth.
	HistoryCap int `env:"KLONDIKE_HISTORY_CAP,default=128"`

	// Store selects the save backend: file, sqlite, or postgres.
	Store       string `env:"KLONDIKE_STORE,default=file"`
	SaveDir     string `env:"KLONDIKE_SAVE_DIR,default=saves"`
	SQLitePath  string `env:"KLONDIKE_SQLITE_PATH,default=klondike.db"`
	DatabaseURL string `env:"KLONDIKE_DATABASE_URL"`

	AutosaveInterval time.Duration `env:"KLONDIKE_AUTOSAVE_INTERVAL,default=30s"`
	CompressSaves    bool          `env:"KLONDIKE_COMPRESS_SAVES,default=false"`

	LogLevel string `env:"KLONDIKE_LOG_LEVEL,default=info"`
}

func Load() (*Config, error) {
	var c Config
	if err := envdecode.Decode(&c); err != nil {
		return nil, fmt.Errorf("failed to decode config from environment: %v", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) validate() error {
	if c.DrawCount != 1 && c.DrawCount != 3 {
		return fmt.Errorf("draw count must be 1 or 3, got %d", c.DrawCount)
	}
	if c.HistoryCap < 1 {
		return fmt.Errorf("history cap must be positive, got %d", c.HistoryCap)
	}
	if c.AutosaveInterval < time.Second {
		return fmt.Errorf("autosave interval must be at least 1s, got %s", c.AutosaveInterval)
	}
	switch c.Store {
	case StoreFile, StoreSQLite:
	case StorePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("KLONDIKE_DATABASE_URL must be set for the postgres store")
		}
	default:
		return fmt.Errorf("unknown store backend: %s", c.Store)
	}
	return nil
}
