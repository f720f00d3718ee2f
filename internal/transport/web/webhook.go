package web

import (
	"encoding/json"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/sandevgo/notebot/internal/core"
	"github.com/sandevgo/notebot/pkg/log"
	tele "gopkg.in/telebot.v3"
)

// handleWebhook receives one Telegram update. The bot token in the path is
// the identity: it selects which owner's notes the update operates on. The
// reply rides back in the HTTP response using Telegram's webhook-reply
// envelope, so no outbound sendMessage call is needed.
//
// POST /webhook/:token — public, Telegram is the caller
func (s *Server) handleWebhook(c *fiber.Ctx) error {
	ctx := s.baseCtx
	token := c.Params("token")

	cfg, err := s.configs.GetByToken(ctx, token)
	if err != nil {
		log.FromCtx(ctx).Error().Err(err).Msg("bot config lookup failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}
	if cfg == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "unknown bot token"})
	}

	var raw tele.Update
	if err := json.Unmarshal(c.Body(), &raw); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "malformed update"})
	}
	if raw.ID == 0 && raw.Message == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "malformed update"})
	}

	upd, ok := toUpdate(raw)
	if !ok {
		// Update without a message, or a message without a chat: valid
		// traffic (edits, joins), but there is nothing to reply to.
		log.FromCtx(ctx).Debug().Int("update_id", raw.ID).Msg("update without message, ignored")
		return c.SendStatus(fiber.StatusOK)
	}

	identity := core.Identity{
		OwnerID: cfg.OwnerID,
		ChatID:  strconv.FormatInt(upd.ChatID, 10),
	}
	reply := s.interp.Handle(ctx, upd, identity)

	return c.JSON(fiber.Map{
		"method":  "sendMessage",
		"chat_id": upd.ChatID,
		"text":    reply,
	})
}

// toUpdate validates the loose wire payload into the structured update the
// interpreter consumes. Only chat id and text are read downstream.
func toUpdate(u tele.Update) (core.Update, bool) {
	if u.Message == nil || u.Message.Chat == nil {
		return core.Update{}, false
	}
	return core.Update{
		ID:        u.ID,
		MessageID: u.Message.ID,
		ChatID:    u.Message.Chat.ID,
		Text:      u.Message.Text,
	}, true
}
