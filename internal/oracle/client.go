// Package oracle talks to the generative text API that enriches horoscope
// copy and answers oracle questions. Every call degrades to a canned fallback
// or an empty result; the deterministic prediction text is never at risk.
package oracle

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

const defaultEndpoint = "https://generativelanguage.googleapis.com/v1beta"

// FallbackOracleAnswer is returned when the oracle call fails after a token
// was already spent. Product copy, not an error surface.
const FallbackOracleAnswer = "Связь с астральным планом слаба. Попробуйте позже."

type Client struct {
	apiKey     string
	model      string
	endpoint   string
	httpClient *http.Client
}

func NewClient(apiKey string, model string) *Client {
	if model == "" {
		model = "gemini-2.5-flash"
	}
	return &Client{
		apiKey:     apiKey,
		model:      model,
		endpoint:   defaultEndpoint,
		httpClient: &http.Client{Timeout: 20 * time.Second},
	}
}

// WithEndpoint overrides the API base URL. Used by tests.
func (client *Client) WithEndpoint(endpoint string) *Client {
	client.endpoint = strings.TrimSuffix(endpoint, "/")
	return client
}

type generateContentRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

func (client *Client) generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateContentRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("encode generate request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", client.endpoint, client.model)
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build generate request: %w", err)
	}
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("x-goog-api-key", client.apiKey)

	response, err := client.httpClient.Do(request)
	if err != nil {
		return "", fmt.Errorf("call generate: %w", err)
	}
	defer response.Body.Close()

	raw, err := io.ReadAll(response.Body)
	if err != nil {
		return "", fmt.Errorf("read generate response: %w", err)
	}
	if response.StatusCode != http.StatusOK {
		return "", fmt.Errorf("generate returned status %d", response.StatusCode)
	}

	var decoded generateContentResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return "", fmt.Errorf("decode generate response: %w", err)
	}
	for _, candidate := range decoded.Candidates {
		for _, candidatePart := range candidate.Content.Parts {
			text := strings.TrimSpace(candidatePart.Text)
			if text != "" {
				return text, nil
			}
		}
	}
	return "", nil
}

// DailyHoroscope asks for a richer horoscope text for the viewer. An error
// or empty answer yields ""; the caller keeps the deterministic fallback.
func (client *Client) DailyHoroscope(ctx context.Context, zodiac string, name string) string {
	prompt := fmt.Sprintf(`Generate a daily horoscope for %s (Zodiac: %s).
Language: Russian.
Tone: Mystical, immersive, slightly esoteric but grounded in advice.
Structure: One profound paragraph (approx 30-40 words).
Focus: Personal growth and hidden opportunities.
Do NOT use standard greetings. Start immediately with the prophecy.`, name, zodiac)

	text, err := client.generate(ctx, prompt)
	if err != nil {
		return ""
	}
	return text
}

// Ask answers an oracle question. Never fails from the caller's point of
// view: on any error the canned fallback answer comes back.
func (client *Client) Ask(ctx context.Context, question string, zodiac string, name string) string {
	prompt := fmt.Sprintf(`You are a mystical Oracle.
The user %s (Zodiac sign in Russian: %s) asks: %q.
Provide a cryptic, mystical, yet helpful answer in Russian.
Keep it under 50 words.
Use a tone that is ancient, respectful, and slightly dark but encouraging.`, name, zodiac, question)

	text, err := client.generate(ctx, prompt)
	if err != nil || text == "" {
		return FallbackOracleAnswer
	}
	return text
}
