package api

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/velmora/aetheria/internal/telegram"
)

type telegramAuthInput struct {
	InitData string `json:"initData"`
}

// TelegramAuth exchanges Mini-App init data for a session token. The init
// data signature is verified server-side; the client-supplied user identity
// is never trusted on its own.
func (handler *Handler) TelegramAuth(c *fiber.Ctx) error {
	var input telegramAuthInput
	if err := c.BodyParser(&input); err != nil || input.InitData == "" {
		return apiError(c, fiber.StatusBadRequest, "initData is required")
	}

	user, err := telegram.ValidateInitData(input.InitData, handler.config.BotToken, initDataMaxAge, time.Now())
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "init data rejected")
	}

	profileKey := profileKeyForTelegramID(user.ID)
	token, err := handler.buildToken(profileKey, user.ID, time.Now())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to issue session token")
	}
	handler.setAuthCookie(c, token)

	return c.JSON(fiber.Map{
		"token":     token,
		"firstName": user.FirstName,
	})
}

func profileKeyForTelegramID(telegramID int64) string {
	return fmt.Sprintf("%s%d", profileKeyPrefix, telegramID)
}
