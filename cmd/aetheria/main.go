package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/velmora/aetheria/internal/api"
	"github.com/velmora/aetheria/internal/db"
	"github.com/velmora/aetheria/internal/oracle"
	"github.com/velmora/aetheria/internal/services"
	"github.com/velmora/aetheria/internal/telegram"
)

func main() {
	location := mustLoadLocation(getEnv("TZ", "UTC"))
	time.Local = location

	secretKey := getEnv("SECRET_KEY", "change_me_in_production")
	botToken := os.Getenv("BOT_TOKEN")
	if botToken == "" {
		log.Fatal("BOT_TOKEN is required")
	}
	providerToken := os.Getenv("PROVIDER_TOKEN")
	webhookSecret := os.Getenv("WEBHOOK_SECRET")
	channelID := os.Getenv("CHANNEL_ID")
	geminiKey := os.Getenv("GEMINI_API_KEY")
	geminiModel := getEnv("GEMINI_MODEL", "gemini-2.5-flash")
	dbPath := getEnv("DB_PATH", filepath.Join("data", "aetheria.db"))
	port := getEnv("PORT", "8080")
	allowedOrigins := getEnv("ALLOWED_ORIGINS", "*")
	initialTokens := getEnvInt("INITIAL_ORACLE_TOKENS", 1)

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	sessions := services.NewSessionService(db.NewProfileRepository(database), location, initialTokens)
	handler := api.NewHandler(
		sessions,
		oracle.NewClient(geminiKey, geminiModel),
		telegram.NewClient(botToken),
		api.Config{
			SecretKey:     []byte(secretKey),
			BotToken:      botToken,
			ProviderToken: providerToken,
			WebhookSecret: webhookSecret,
			ChannelID:     channelID,
			CookieSecure:  getEnv("COOKIE_SECURE", "true") == "true",
		},
	)

	app := fiber.New(fiber.Config{
		AppName:               "Aetheria",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	api.RegisterRoutes(app, handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("Aetheria listening on http://0.0.0.0:%s (db: %s, tz: %s)", port, dbPath, location.String())
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

func mustLoadLocation(name string) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("invalid TZ %q, falling back to UTC", name)
		return time.UTC
	}
	return location
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("invalid %s %q, using %d", key, value, fallback)
		return fallback
	}
	return parsed
}
