package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/telegram", handler.TelegramAuth)

	session := api.Group("/session", handler.AuthRequired)
	session.Get("", handler.GetSession)
	session.Post("/onboarding", handler.CompleteOnboarding)
	session.Post("/ritual-complete", handler.RitualComplete)
	session.Post("/reset", handler.ResetSession)

	prediction := api.Group("/prediction", handler.AuthRequired)
	prediction.Post("/enrich", handler.EnrichPrediction)

	oracle := api.Group("/oracle", handler.AuthRequired)
	oracle.Post("/ask", handler.AskOracle)

	payments := api.Group("/payments", handler.AuthRequired)
	payments.Post("/invoice", handler.CreateInvoice)

	subscription := api.Group("/subscription", handler.AuthRequired)
	subscription.Post("/check", handler.CheckSubscription)

	// Bot webhook authenticates with the secret token header, not a session.
	api.Post("/telegram/webhook", handler.TelegramWebhook)
}
