package web

import (
	"net/url"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/sandevgo/notebot/internal/core"
	"github.com/sandevgo/notebot/pkg/log"
)

type saveConfigRequest struct {
	OwnerID    int64  `json:"owner_id"`
	BotToken   string `json:"bot_token"`
	WebhookURL string `json:"webhook_url"`
}

type configResponse struct {
	OwnerID    int64  `json:"owner_id"`
	BotToken   string `json:"bot_token"`
	WebhookURL string `json:"webhook_url"`
	Configured bool   `json:"configured"`
}

// GET /api/bot/config?owner_id=N
//
// Session auth is the front-end's concern; this API takes the resolved owner
// id directly.
func (s *Server) handleGetConfig(c *fiber.Ctx) error {
	ownerID, err := strconv.ParseInt(c.Query("owner_id"), 10, 64)
	if err != nil || ownerID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "owner_id is required"})
	}

	cfg, err := s.configs.GetByOwner(s.baseCtx, ownerID)
	if err != nil {
		log.FromCtx(s.baseCtx).Error().Err(err).Msg("bot config lookup failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}
	if cfg == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no config for owner"})
	}

	return c.JSON(toConfigResponse(cfg))
}

// POST /api/bot/config
//
// Saves the owner's bot token and callback URL, then registers the webhook
// with Telegram. Registration is best effort: the config is persisted either
// way and the outcome is reported in the response.
func (s *Server) handleSaveConfig(c *fiber.Ctx) error {
	var req saveConfigRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	if req.OwnerID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "owner_id is required"})
	}
	if req.BotToken == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bot token is required"})
	}
	if u, err := url.Parse(req.WebhookURL); err != nil || u.Scheme == "" || u.Host == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid webhook URL"})
	}

	ctx := s.baseCtx
	if err := s.configs.Upsert(ctx, req.OwnerID, req.BotToken, req.WebhookURL); err != nil {
		log.FromCtx(ctx).Error().Err(err).Msg("failed to save bot config")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}

	registered := true
	if err := s.tg.SetWebhook(ctx, req.BotToken, req.WebhookURL); err != nil {
		log.FromCtx(ctx).Warn().Err(err).Msg("webhook registration failed")
		registered = false
	}

	return c.JSON(fiber.Map{
		"success":            true,
		"webhook_registered": registered,
	})
}

func toConfigResponse(cfg *core.BotConfig) configResponse {
	return configResponse{
		OwnerID:    cfg.OwnerID,
		BotToken:   cfg.BotToken,
		WebhookURL: cfg.WebhookURL,
		Configured: cfg.Configured,
	}
}
