package api

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

type authClaims struct {
	ProfileKey string `json:"key"`
	TelegramID int64  `json:"tid"`
	jwt.RegisteredClaims
}

const viewerLocals = "viewer"

type viewer struct {
	ProfileKey string
	TelegramID int64
}

func (handler *Handler) buildToken(profileKey string, telegramID int64, now time.Time) (string, error) {
	claims := authClaims{
		ProfileKey: profileKey,
		TelegramID: telegramID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(telegramID, 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(authTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(handler.config.SecretKey)
}

func (handler *Handler) setAuthCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     authCookieName,
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
		Secure:   handler.config.CookieSecure,
		SameSite: "Lax",
		Expires:  time.Now().Add(authTokenTTL),
	})
}

func (handler *Handler) authenticateRequest(c *fiber.Ctx) (viewer, error) {
	rawToken := strings.TrimSpace(c.Cookies(authCookieName))
	if rawToken == "" {
		rawToken = strings.TrimSpace(strings.TrimPrefix(c.Get(fiber.HeaderAuthorization), "Bearer "))
	}
	if rawToken == "" {
		return viewer{}, errors.New("missing session token")
	}

	claims := &authClaims{}
	token, err := jwt.ParseWithClaims(rawToken, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return handler.config.SecretKey, nil
	})
	if err != nil || !token.Valid {
		return viewer{}, errors.New("invalid session token")
	}
	if claims.ProfileKey == "" {
		return viewer{}, errors.New("invalid session claims")
	}
	return viewer{ProfileKey: claims.ProfileKey, TelegramID: claims.TelegramID}, nil
}

func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	current, err := handler.authenticateRequest(c)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	c.Locals(viewerLocals, current)
	return c.Next()
}

func currentViewer(c *fiber.Ctx) (viewer, bool) {
	current, ok := c.Locals(viewerLocals).(viewer)
	return current, ok
}
