package controllers

import (
	"log"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/hazzler78/stromsjef-sub000/internal/pkg/env"
	"github.com/hazzler78/stromsjef-sub000/internal/pkg/telegram"
)

// HandleTelegramWebhook receives Bot API updates, runs the dispatcher and
// replies in the same chat. Telegram retries non-200 responses, so the
// handler answers 200 even when dispatching fails.
func HandleTelegramWebhook(c *fiber.Ctx) error {
	if secret := env.GetEnv("TELEGRAM_WEBHOOK_SECRET", ""); secret != "" {
		if c.Get("X-Telegram-Bot-Api-Secret-Token") != secret {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid webhook secret",
			})
		}
	}

	var update telegram.Update
	if err := c.BodyParser(&update); err != nil {
		log.Printf("telegram webhook: bad payload: %v", err)
		return c.JSON(fiber.Map{"ok": true})
	}
	if update.Message == nil || update.Message.From == nil {
		return c.JSON(fiber.Map{"ok": true})
	}

	userID := update.Message.From.ID
	if !operatorAllowed(userID) {
		log.Printf("telegram webhook: ignoring message from unauthorized user %d", userID)
		return c.JSON(fiber.Map{"ok": true})
	}

	reply := dispatcher.Handle(c.Context(), update.Message.Text, userID)
	if err := botClient.SendMessage(update.Message.Chat.ID, reply); err != nil {
		log.Printf("telegram webhook: failed to send reply: %v", err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

// operatorAllowed checks the sender against TELEGRAM_ALLOWED_USERS, a
// comma-separated list of user IDs. An empty list means the bot is open;
// set the allowlist in production.
func operatorAllowed(userID int64) bool {
	raw := env.GetEnv("TELEGRAM_ALLOWED_USERS", "")
	if raw == "" {
		return true
	}
	for _, part := range strings.Split(raw, ",") {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			continue
		}
		if id == userID {
			return true
		}
	}
	return false
}
