package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/velmora/aetheria/internal/models"
	"github.com/velmora/aetheria/internal/services"
)

type sessionResponse struct {
	Stage      services.Stage          `json:"stage"`
	Profile    *models.SessionProfile  `json:"profile,omitempty"`
	Prediction *models.DailyPrediction `json:"prediction,omitempty"`
	IsLocked   bool                    `json:"isLocked"`
}

// GetSession runs the load-time reconciliation and reports the current
// stage, profile, lock state and the deterministic prediction for this hour.
func (handler *Handler) GetSession(c *fiber.Ctx) error {
	current, ok := currentViewer(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	now := time.Now().In(handler.location)
	profile, found, err := handler.sessions.Reconcile(current.ProfileKey, now)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load session")
	}
	if !found || profile.User == nil {
		return c.JSON(sessionResponse{Stage: services.StageOnboarding, IsLocked: true})
	}

	stage, err := services.NextStage(services.StageOnboarding, services.EventSessionRestored)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to resolve stage")
	}

	prediction, err := handler.sessions.PredictionFor(&profile, now)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to generate prediction")
	}

	return c.JSON(sessionResponse{
		Stage:      stage,
		Profile:    &profile,
		Prediction: &prediction,
		IsLocked:   services.IsLocked(&profile),
	})
}

type onboardingInput struct {
	Name      string `json:"name"`
	BirthDate string `json:"birthDate"`
}

// CompleteOnboarding creates the persisted profile and moves the flow to the
// ritual stage. The prediction is computed synchronously so the dashboard is
// never empty, however the enrichment call goes.
func (handler *Handler) CompleteOnboarding(c *fiber.Ctx) error {
	current, ok := currentViewer(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var input onboardingInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	now := time.Now().In(handler.location)
	profile, prediction, err := handler.sessions.CompleteOnboarding(current.ProfileKey, input.Name, input.BirthDate, now)
	switch {
	case errors.Is(err, services.ErrNameRequired),
		errors.Is(err, services.ErrBirthDateInvalid),
		errors.Is(err, services.ErrBirthDateInFuture):
		return apiError(c, fiber.StatusBadRequest, err.Error())
	case err != nil:
		return apiError(c, fiber.StatusInternalServerError, "failed to save profile")
	}

	stage, err := services.NextStage(services.StageOnboarding, services.EventProfileCreated)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to resolve stage")
	}

	return c.JSON(sessionResponse{
		Stage:      stage,
		Profile:    &profile,
		Prediction: &prediction,
		IsLocked:   services.IsLocked(&profile),
	})
}

// RitualComplete acknowledges the ritual animation finishing. No profile
// mutation happens here; the transition is unconditional.
func (handler *Handler) RitualComplete(c *fiber.Ctx) error {
	if _, ok := currentViewer(c); !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	stage, err := services.NextStage(services.StageRitual, services.EventRitualFinished)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to resolve stage")
	}
	return c.JSON(fiber.Map{"stage": stage})
}

// ResetSession wipes the persisted document entirely. The client asks the
// user for confirmation; the server treats the call itself as the consent.
func (handler *Handler) ResetSession(c *fiber.Ctx) error {
	current, ok := currentViewer(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	if err := handler.sessions.Reset(current.ProfileKey); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to reset profile")
	}

	stage, err := services.NextStage(services.StageDashboard, services.EventReset)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to resolve stage")
	}
	return c.JSON(fiber.Map{"stage": stage})
}
