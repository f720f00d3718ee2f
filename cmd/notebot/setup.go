package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sandevgo/notebot/internal/config"
	"github.com/sandevgo/notebot/internal/service/interp"
	"github.com/sandevgo/notebot/internal/storage/sqlite"
	"github.com/sandevgo/notebot/internal/transport/telegram"
	"github.com/sandevgo/notebot/internal/transport/web"
	"github.com/sandevgo/notebot/pkg/log"
	"github.com/sandevgo/notebot/pkg/srv"
)

func NewServices(ctx context.Context) []srv.Service {
	logger := log.FromCtx(ctx)
	services := make([]srv.Service, 0)

	// init env
	if err := initEnv(ctx, config.GetRuntimePath()); err != nil {
		logger.Fatal().Err(err).Msg("failed to init env")
	}

	// 1. Configuration
	appCfg := config.NewAppConfig(ctx)
	serverCfg := config.NewServerConfig(ctx)
	tgCfg := config.NewTelegramConfig(ctx)

	// 2. Storage
	db, err := sqlite.NewDB(ctx, appCfg.GetDatabasePath())
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize storage")
	}
	if db != nil {
		services = append(services, srv.NewCleanup(db.Close))
	}

	notesRepo := sqlite.NewNotesRepo(db)
	messagesRepo := sqlite.NewMessagesRepo(db)
	configsRepo := sqlite.NewBotConfigsRepo(db)

	// 3. Command interpreter
	it := interp.New(notesRepo, messagesRepo)

	// 4. Outbound Telegram API client
	tg := telegram.NewClient(tgCfg.APIBaseURL)

	// 5. HTTP transport
	services = append(services, web.NewServer(ctx, serverCfg, it, configsRepo, tg))

	return services
}

func initEnv(ctx context.Context, runtimePath string) error {
	logger := log.FromCtx(ctx)
	envFile := filepath.Join(runtimePath, ".env")

	if _, err := os.Stat(envFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.Warn().Err(err).Str("path", envFile).Msg("failed to load .env file")
		return err
	}

	logger.Debug().Str("path", envFile).Msg("loaded .env file")
	return nil
}
