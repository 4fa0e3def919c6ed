package api

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/velmora/aetheria/internal/services"
)

// EnrichPrediction asks the generative service for richer horoscope text.
// Failures surface as an empty text with 200: the client already holds the
// deterministic fallback and silently keeps it.
func (handler *Handler) EnrichPrediction(c *fiber.Ctx) error {
	current, ok := currentViewer(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	profile, found, err := handler.sessions.Reconcile(current.ProfileKey, time.Now().In(handler.location))
	if err != nil || !found || profile.User == nil {
		return apiError(c, fiber.StatusNotFound, "profile not found")
	}

	text := handler.oracle.DailyHoroscope(c.Context(), profile.User.ZodiacSign, profile.User.Name)
	return c.JSON(fiber.Map{"text": text})
}

type oracleQuestionInput struct {
	Question string `json:"question"`
}

// AskOracle spends one token and consults the oracle. The token is consumed
// before the external call starts, so a slow or failed generation never
// leaves the balance stale; the canned fallback answer covers that case.
func (handler *Handler) AskOracle(c *fiber.Ctx) error {
	current, ok := currentViewer(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var input oracleQuestionInput
	if err := c.BodyParser(&input); err != nil || strings.TrimSpace(input.Question) == "" {
		return apiError(c, fiber.StatusBadRequest, "question is required")
	}

	profile, consumed, err := handler.sessions.ConsumeToken(current.ProfileKey)
	if errors.Is(err, services.ErrProfileNotFound) {
		return apiError(c, fiber.StatusNotFound, "profile not found")
	}
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to consume token")
	}
	if profile.User == nil {
		return apiError(c, fiber.StatusNotFound, "profile not found")
	}
	if !consumed {
		return c.Status(fiber.StatusPaymentRequired).JSON(fiber.Map{
			"error":        "no oracle tokens left",
			"needsTokens":  true,
			"oracleTokens": profile.Tokens(),
		})
	}

	answer := handler.oracle.Ask(c.Context(), strings.TrimSpace(input.Question), profile.User.ZodiacSign, profile.User.Name)
	return c.JSON(fiber.Map{
		"answer":       answer,
		"oracleTokens": profile.Tokens(),
	})
}
