package api

import (
	"encoding/json"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/velmora/aetheria/internal/services"
	"github.com/velmora/aetheria/internal/telegram"
)

// invoicePayload rides through Telegram inside the invoice and returns in
// successful_payment. It is the only link between a payment and a profile,
// so entitlements are granted purely server-side.
type invoicePayload struct {
	SKU        string `json:"sku"`
	ProfileKey string `json:"key"`
	Nonce      string `json:"nonce"`
}

type createInvoiceInput struct {
	Product string `json:"product"`
}

// CreateInvoice proxies Bot API createInvoiceLink for one product SKU.
func (handler *Handler) CreateInvoice(c *fiber.Ctx) error {
	current, ok := currentViewer(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var input createInvoiceInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	product, err := services.ProductBySKU(input.Product)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "unknown product")
	}

	payload, err := json.Marshal(invoicePayload{
		SKU:        product.SKU,
		ProfileKey: current.ProfileKey,
		Nonce:      uuid.NewString(),
	})
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build invoice payload")
	}

	link, err := handler.telegram.CreateInvoiceLink(
		c.Context(),
		handler.config.ProviderToken,
		product.Title,
		product.Description,
		string(payload),
		product.AmountKopecks,
	)
	if err != nil {
		log.Printf("create invoice for %s failed: %v", product.SKU, err)
		return apiError(c, fiber.StatusBadGateway, "failed to create invoice")
	}

	return c.JSON(fiber.Map{"invoiceLink": link})
}

// TelegramWebhook receives bot updates. Only the payment flow is handled:
// pre_checkout_query gets confirmed (or rejected for unknown payloads) and
// successful_payment grants the purchased entitlement. Entitlements are
// granted here and nowhere else; the client-observed invoice status is
// never trusted.
func (handler *Handler) TelegramWebhook(c *fiber.Ctx) error {
	if handler.config.WebhookSecret == "" ||
		c.Get("X-Telegram-Bot-Api-Secret-Token") != handler.config.WebhookSecret {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var update telegram.Update
	if err := c.BodyParser(&update); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid update")
	}

	if update.PreCheckoutQuery != nil {
		handler.handlePreCheckout(c, update.PreCheckoutQuery)
	}
	if update.Message != nil && update.Message.SuccessfulPayment != nil {
		handler.handleSuccessfulPayment(update.Message.SuccessfulPayment)
	}

	// Telegram only needs a 200; retries are driven by non-2xx statuses.
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) handlePreCheckout(c *fiber.Ctx, query *telegram.PreCheckoutQuery) {
	_, _, err := parseInvoicePayload(query.InvoicePayload)
	if err != nil {
		if answerErr := handler.telegram.AnswerPreCheckoutQuery(c.Context(), query.ID, false, "Товар больше не доступен"); answerErr != nil {
			log.Printf("reject pre-checkout %s failed: %v", query.ID, answerErr)
		}
		return
	}
	if err := handler.telegram.AnswerPreCheckoutQuery(c.Context(), query.ID, true, ""); err != nil {
		log.Printf("confirm pre-checkout %s failed: %v", query.ID, err)
	}
}

func (handler *Handler) handleSuccessfulPayment(payment *telegram.SuccessfulPayment) {
	product, profileKey, err := parseInvoicePayload(payment.InvoicePayload)
	if err != nil {
		log.Printf("successful payment with unusable payload %q: %v", payment.InvoicePayload, err)
		return
	}

	switch {
	case product.GrantsPremium:
		_, err = handler.sessions.GrantPremium(profileKey)
	case product.Tokens > 0:
		_, err = handler.sessions.PurchaseTokens(profileKey, product.Tokens)
	default:
		_, err = handler.sessions.GrantDailyUnlock(profileKey)
	}
	if err != nil {
		// The charge went through but the grant did not; keep the charge id
		// in the log so support can replay it.
		log.Printf("grant for %s (charge %s) failed: %v", product.SKU, payment.TelegramPaymentChargeID, err)
	}
}

func parseInvoicePayload(raw string) (services.Product, string, error) {
	var payload invoicePayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return services.Product{}, "", err
	}
	if payload.ProfileKey == "" {
		return services.Product{}, "", errors.New("payload has no profile key")
	}
	product, err := services.ProductBySKU(payload.SKU)
	if err != nil {
		return services.Product{}, "", err
	}
	return product, payload.ProfileKey, nil
}
