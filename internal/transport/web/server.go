package web

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/sandevgo/notebot/internal/config"
	"github.com/sandevgo/notebot/internal/core"
	"github.com/sandevgo/notebot/internal/service/interp"
	"github.com/sandevgo/notebot/internal/transport/telegram"
	"github.com/sandevgo/notebot/pkg/log"
)

// Server is the HTTP face of the bot: the Telegram webhook endpoint plus the
// owner configuration API. It implements srv.Service.
type Server struct {
	app     *fiber.App
	cfg     *config.ServerConfig
	interp  *interp.Interpreter
	configs core.BotConfigRepository
	tg      *telegram.Client

	// baseCtx carries the process logger into request handlers, same trick
	// as the middleware in the polling transport this replaced.
	baseCtx context.Context
}

func NewServer(
	ctx context.Context,
	cfg *config.ServerConfig,
	it *interp.Interpreter,
	configs core.BotConfigRepository,
	tg *telegram.Client,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:               core.NotebotName,
		DisableStartupMessage: true,
	})

	s := &Server{
		app:     app,
		cfg:     cfg,
		interp:  it,
		configs: configs,
		tg:      tg,
		baseCtx: ctx,
	}

	app.Get("/health", s.handleHealth)
	app.Post("/webhook/:token", s.handleWebhook)
	app.Get("/api/bot/config", s.handleGetConfig)
	app.Post("/api/bot/config", s.handleSaveConfig)

	return s
}

func (s *Server) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Str("addr", s.cfg.ListenAddr).Msg("starting http server")
	return s.app.Listen(s.cfg.ListenAddr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok", "version": core.NotebotVersion})
}
