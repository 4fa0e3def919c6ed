package api

import (
	"log"

	"github.com/gofiber/fiber/v2"
)

// CheckSubscription verifies channel membership via getChatMember and grants
// the daily unlock on success. A Bot API failure degrades to "not
// subscribed" rather than an error, matching the collaborator contract.
func (handler *Handler) CheckSubscription(c *fiber.Ctx) error {
	current, ok := currentViewer(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	if handler.config.ChannelID == "" {
		return apiError(c, fiber.StatusNotFound, "channel unlock is not configured")
	}

	subscribed, err := handler.telegram.IsChannelMember(c.Context(), handler.config.ChannelID, current.TelegramID)
	if err != nil {
		log.Printf("subscription check for %s failed: %v", current.ProfileKey, err)
		return c.JSON(fiber.Map{"subscribed": false})
	}
	if !subscribed {
		return c.JSON(fiber.Map{"subscribed": false})
	}

	profile, err := handler.sessions.GrantDailyUnlock(current.ProfileKey)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to grant unlock")
	}

	return c.JSON(fiber.Map{
		"subscribed":      true,
		"isUnlockedToday": profile.IsUnlockedToday,
	})
}
