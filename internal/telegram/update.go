package telegram

// Webhook update types, trimmed to the payment flow the service handles.

type Update struct {
	UpdateID         int64             `json:"update_id"`
	Message          *Message          `json:"message"`
	PreCheckoutQuery *PreCheckoutQuery `json:"pre_checkout_query"`
}

type Message struct {
	MessageID         int64              `json:"message_id"`
	From              *WebAppUser        `json:"from"`
	SuccessfulPayment *SuccessfulPayment `json:"successful_payment"`
}

type PreCheckoutQuery struct {
	ID             string      `json:"id"`
	From           *WebAppUser `json:"from"`
	Currency       string      `json:"currency"`
	TotalAmount    int         `json:"total_amount"`
	InvoicePayload string      `json:"invoice_payload"`
}

type SuccessfulPayment struct {
	Currency                string `json:"currency"`
	TotalAmount             int    `json:"total_amount"`
	InvoicePayload          string `json:"invoice_payload"`
	TelegramPaymentChargeID string `json:"telegram_payment_charge_id"`
	ProviderPaymentChargeID string `json:"provider_payment_charge_id"`
}
