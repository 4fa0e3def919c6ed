package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/velmora/aetheria/internal/db"
	"github.com/velmora/aetheria/internal/services"
	"github.com/velmora/aetheria/internal/telegram"
)

const (
	testBotToken      = "12345:TEST-TOKEN"
	testWebhookSecret = "hook-secret"
)

type stubOracle struct {
	horoscope string
	answer    string
}

func (stub *stubOracle) DailyHoroscope(context.Context, string, string) string {
	return stub.horoscope
}

func (stub *stubOracle) Ask(context.Context, string, string, string) string {
	if stub.answer == "" {
		return "Звёзды отвечают уклончиво."
	}
	return stub.answer
}

type stubTelegram struct {
	invoiceLink      string
	invoicePayloads  []string
	channelMember    bool
	channelErr       error
	preCheckoutOKs   []bool
	preCheckoutNotes []string
}

func (stub *stubTelegram) CreateInvoiceLink(_ context.Context, _ string, _ string, _ string, payload string, _ int) (string, error) {
	stub.invoicePayloads = append(stub.invoicePayloads, payload)
	if stub.invoiceLink == "" {
		return "https://t.me/invoice/test", nil
	}
	return stub.invoiceLink, nil
}

func (stub *stubTelegram) IsChannelMember(context.Context, string, int64) (bool, error) {
	return stub.channelMember, stub.channelErr
}

func (stub *stubTelegram) AnswerPreCheckoutQuery(_ context.Context, _ string, ok bool, note string) error {
	stub.preCheckoutOKs = append(stub.preCheckoutOKs, ok)
	stub.preCheckoutNotes = append(stub.preCheckoutNotes, note)
	return nil
}

type testApp struct {
	app      *fiber.App
	sessions *services.SessionService
	oracle   *stubOracle
	telegram *stubTelegram
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "aetheria.db"))
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	sessions := services.NewSessionService(db.NewProfileRepository(database), time.UTC, 1)
	oracleStub := &stubOracle{}
	telegramStub := &stubTelegram{}
	handler := NewHandler(sessions, oracleStub, telegramStub, Config{
		SecretKey:     []byte("test-secret"),
		BotToken:      testBotToken,
		ProviderToken: "prov:TEST",
		WebhookSecret: testWebhookSecret,
		ChannelID:     "@aetheria",
	})

	app := fiber.New()
	app.Use(recover.New())
	RegisterRoutes(app, handler)

	return &testApp{app: app, sessions: sessions, oracle: oracleStub, telegram: telegramStub}
}

// authCookie authenticates telegram user 99 through the real init data
// exchange and returns the session cookie header value.
func (ta *testApp) authCookie(t *testing.T) string {
	t.Helper()

	values := url.Values{}
	values.Set("auth_date", strconv.FormatInt(time.Now().Unix(), 10))
	values.Set("user", `{"id":99,"first_name":"Анна"}`)
	initData := telegram.SignInitData(values, testBotToken)

	response := ta.postJSON(t, "/api/auth/telegram", "", map[string]string{"initData": initData})
	defer response.Body.Close()
	if response.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(response.Body)
		t.Fatalf("auth exchange failed with %d: %s", response.StatusCode, string(body))
	}

	for _, cookie := range response.Cookies() {
		if cookie.Name == authCookieName {
			return cookie.Name + "=" + cookie.Value
		}
	}
	t.Fatal("auth exchange did not set a session cookie")
	return ""
}

func (ta *testApp) request(t *testing.T, method string, path string, cookie string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("encode request body: %v", err)
		}
		reader = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, path, reader)
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if cookie != "" {
		request.Header.Set("Cookie", cookie)
	}

	response, err := ta.app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	return response
}

func (ta *testApp) postJSON(t *testing.T, path string, cookie string, body any) *http.Response {
	return ta.request(t, http.MethodPost, path, cookie, body)
}

func (ta *testApp) getJSON(t *testing.T, path string, cookie string) *http.Response {
	return ta.request(t, http.MethodGet, path, cookie, nil)
}

func decodeBody(t *testing.T, response *http.Response, target any) {
	t.Helper()
	defer response.Body.Close()
	raw, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	if err := json.Unmarshal(raw, target); err != nil {
		t.Fatalf("decode response %s: %v", strings.TrimSpace(string(raw)), err)
	}
}

func onboardViewer(t *testing.T, ta *testApp, cookie string) {
	t.Helper()
	response := ta.postJSON(t, "/api/session/onboarding", cookie, map[string]string{
		"name":      "Анна",
		"birthDate": "1995-07-10",
	})
	defer response.Body.Close()
	if response.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(response.Body)
		t.Fatalf("onboarding failed with %d: %s", response.StatusCode, string(body))
	}
}
