package api

import (
	"context"
	"time"

	"github.com/velmora/aetheria/internal/services"
)

const (
	authCookieName   = "aetheria_session"
	authTokenTTL     = 30 * 24 * time.Hour
	initDataMaxAge   = 24 * time.Hour
	profileKeyPrefix = "tg:"
)

// OracleAPI is the generative-text collaborator. Both methods degrade
// internally; handlers never see an error from them.
type OracleAPI interface {
	DailyHoroscope(ctx context.Context, zodiac string, name string) string
	Ask(ctx context.Context, question string, zodiac string, name string) string
}

// TelegramAPI is the Bot API collaborator used for payments and the
// channel-subscription unlock.
type TelegramAPI interface {
	CreateInvoiceLink(ctx context.Context, providerToken string, title string, description string, payload string, amountKopecks int) (string, error)
	IsChannelMember(ctx context.Context, channelID string, userID int64) (bool, error)
	AnswerPreCheckoutQuery(ctx context.Context, queryID string, ok bool, errorMessage string) error
}

type Config struct {
	SecretKey     []byte
	BotToken      string
	ProviderToken string
	WebhookSecret string
	ChannelID     string
	CookieSecure  bool
}

type Handler struct {
	sessions *services.SessionService
	oracle   OracleAPI
	telegram TelegramAPI
	config   Config
	location *time.Location
}

func NewHandler(sessions *services.SessionService, oracleClient OracleAPI, telegramClient TelegramAPI, config Config) *Handler {
	return &Handler{
		sessions: sessions,
		oracle:   oracleClient,
		telegram: telegramClient,
		config:   config,
		location: sessions.Location(),
	}
}
