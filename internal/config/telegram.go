package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/notebot/pkg/log"
)

type TelegramConfig struct {
	// APIBaseURL is overridable for tests; the real API lives at
	// https://api.telegram.org.
	APIBaseURL string `env:"TELEGRAM_API_BASE_URL" envDefault:"https://api.telegram.org"`
}

func NewTelegramConfig(ctx context.Context) *TelegramConfig {
	c := &TelegramConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Telegram config")
	}
	return c
}
