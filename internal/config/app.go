package config

import (
	"context"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/notebot/pkg/log"
)

type AppConfig struct {
	RuntimePath  string `env:"NOTEBOT_RUNTIME_PATH" envDefault:".notebot"`
	DatabasePath string `env:"NOTEBOT_DB_PATH"`

	// Offline disables storage entirely: every store operation becomes a
	// silent no-op. Useful for local development without a database.
	Offline bool `env:"NOTEBOT_OFFLINE" envDefault:"false"`
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse App config")
	}
	return c
}

func (c AppConfig) GetRuntimePath() string {
	return c.RuntimePath
}

// GetDatabasePath returns the sqlite file path, or "" when the bot should run
// without storage.
func (c AppConfig) GetDatabasePath() string {
	if c.Offline {
		return ""
	}
	if c.DatabasePath != "" {
		return c.DatabasePath
	}
	return filepath.Join(c.RuntimePath, "notebot.db")
}
