// Package telegram is a thin client for the handful of Bot API methods the
// service needs: invoice links, channel membership checks and pre-checkout
// confirmation.
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultAPIEndpoint = "https://api.telegram.org"

type Client struct {
	token      string
	endpoint   string
	httpClient *http.Client
}

func NewClient(token string) *Client {
	return &Client{
		token:      token,
		endpoint:   defaultAPIEndpoint,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// WithEndpoint overrides the API base URL. Used by tests.
func (client *Client) WithEndpoint(endpoint string) *Client {
	client.endpoint = strings.TrimSuffix(endpoint, "/")
	return client
}

type apiResponse struct {
	OK          bool            `json:"ok"`
	Result      json.RawMessage `json:"result"`
	Description string          `json:"description"`
}

func (client *Client) call(ctx context.Context, method string, payload any, result any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode %s payload: %w", method, err)
	}

	url := fmt.Sprintf("%s/bot%s/%s", client.endpoint, client.token, method)
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build %s request: %w", method, err)
	}
	request.Header.Set("Content-Type", "application/json")

	response, err := client.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("call %s: %w", method, scrubToken(err, client.token))
	}
	defer response.Body.Close()

	raw, err := io.ReadAll(response.Body)
	if err != nil {
		return fmt.Errorf("read %s response: %w", method, err)
	}

	var envelope apiResponse
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return fmt.Errorf("decode %s response: %w", method, err)
	}
	if !envelope.OK {
		return fmt.Errorf("%s failed: %s", method, envelope.Description)
	}

	if result == nil {
		return nil
	}
	if err := json.Unmarshal(envelope.Result, result); err != nil {
		return fmt.Errorf("decode %s result: %w", method, err)
	}
	return nil
}

// scrubToken keeps the bot token out of logged transport errors.
func scrubToken(err error, token string) error {
	if token == "" {
		return err
	}
	message := strings.ReplaceAll(err.Error(), token, "[REDACTED]")
	return fmt.Errorf("%s", message)
}

type labeledPrice struct {
	Label  string `json:"label"`
	Amount int    `json:"amount"`
}

type createInvoiceLinkRequest struct {
	Title               string         `json:"title"`
	Description         string         `json:"description"`
	Payload             string         `json:"payload"`
	ProviderToken       string         `json:"provider_token"`
	Currency            string         `json:"currency"`
	Prices              []labeledPrice `json:"prices"`
	NeedName            bool           `json:"need_name"`
	NeedPhoneNumber     bool           `json:"need_phone_number"`
	NeedEmail           bool           `json:"need_email"`
	NeedShippingAddress bool           `json:"need_shipping_address"`
	IsFlexible          bool           `json:"is_flexible"`
}

// CreateInvoiceLink builds a payable invoice URL for one product. The payload
// travels through Telegram unchanged and comes back in successful_payment.
func (client *Client) CreateInvoiceLink(ctx context.Context, providerToken string, title string, description string, payload string, amountKopecks int) (string, error) {
	var link string
	err := client.call(ctx, "createInvoiceLink", createInvoiceLinkRequest{
		Title:         title,
		Description:   description,
		Payload:       payload,
		ProviderToken: providerToken,
		Currency:      "RUB",
		Prices:        []labeledPrice{{Label: title, Amount: amountKopecks}},
	}, &link)
	if err != nil {
		return "", err
	}
	return link, nil
}

type getChatMemberRequest struct {
	ChatID string `json:"chat_id"`
	UserID int64  `json:"user_id"`
}

type chatMemberResult struct {
	Status string `json:"status"`
}

// subscribedStatuses are the getChatMember statuses counted as "subscribed".
var subscribedStatuses = map[string]bool{
	"member":        true,
	"administrator": true,
	"creator":       true,
}

// IsChannelMember reports whether the user is subscribed to the channel.
func (client *Client) IsChannelMember(ctx context.Context, channelID string, userID int64) (bool, error) {
	var member chatMemberResult
	if err := client.call(ctx, "getChatMember", getChatMemberRequest{ChatID: channelID, UserID: userID}, &member); err != nil {
		return false, err
	}
	return subscribedStatuses[member.Status], nil
}

type answerPreCheckoutRequest struct {
	PreCheckoutQueryID string `json:"pre_checkout_query_id"`
	OK                 bool   `json:"ok"`
	ErrorMessage       string `json:"error_message,omitempty"`
}

// AnswerPreCheckoutQuery confirms or rejects a pending checkout. Telegram
// requires an answer within ten seconds of the pre_checkout_query update.
func (client *Client) AnswerPreCheckoutQuery(ctx context.Context, queryID string, ok bool, errorMessage string) error {
	return client.call(ctx, "answerPreCheckoutQuery", answerPreCheckoutRequest{
		PreCheckoutQueryID: queryID,
		OK:                 ok,
		ErrorMessage:       errorMessage,
	}, nil)
}
