package telegram

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInitDataInvalid = errors.New("init data signature invalid")
	ErrInitDataExpired = errors.New("init data expired")
	ErrInitDataNoUser  = errors.New("init data has no user")
)

// WebAppUser is the viewer identity carried inside Mini-App init data.
type WebAppUser struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
}

// ValidateInitData verifies the HMAC chain Telegram signs Mini-App init data
// with: secret = HMAC-SHA256("WebAppData", botToken), expected hash =
// HMAC-SHA256(secret, sorted key=value lines). Returns the embedded user on
// success. maxAge bounds how stale auth_date may be; zero disables the check.
func ValidateInitData(initData string, botToken string, maxAge time.Duration, now time.Time) (WebAppUser, error) {
	values, err := url.ParseQuery(initData)
	if err != nil {
		return WebAppUser{}, fmt.Errorf("parse init data: %w", err)
	}

	providedHash := values.Get("hash")
	if providedHash == "" {
		return WebAppUser{}, ErrInitDataInvalid
	}
	values.Del("hash")

	lines := make([]string, 0, len(values))
	for key := range values {
		lines = append(lines, key+"="+values.Get(key))
	}
	sort.Strings(lines)
	dataCheckString := strings.Join(lines, "\n")

	secret := hmacSHA256([]byte("WebAppData"), []byte(botToken))
	expected := hex.EncodeToString(hmacSHA256(secret, []byte(dataCheckString)))
	if !hmac.Equal([]byte(expected), []byte(providedHash)) {
		return WebAppUser{}, ErrInitDataInvalid
	}

	if maxAge > 0 {
		authDate, err := strconv.ParseInt(values.Get("auth_date"), 10, 64)
		if err != nil {
			return WebAppUser{}, ErrInitDataInvalid
		}
		if now.Sub(time.Unix(authDate, 0)) > maxAge {
			return WebAppUser{}, ErrInitDataExpired
		}
	}

	rawUser := values.Get("user")
	if rawUser == "" {
		return WebAppUser{}, ErrInitDataNoUser
	}
	var user WebAppUser
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil {
		return WebAppUser{}, fmt.Errorf("parse init data user: %w", err)
	}
	if user.ID == 0 {
		return WebAppUser{}, ErrInitDataNoUser
	}
	return user, nil
}

func hmacSHA256(key []byte, message []byte) []byte {
	mac := hmac.New(sha256.New, key)
	mac.Write(message)
	return mac.Sum(nil)
}

// SignInitData produces a valid init data string for the given bot token.
// Test helper counterpart of ValidateInitData.
func SignInitData(values url.Values, botToken string) string {
	lines := make([]string, 0, len(values))
	for key := range values {
		lines = append(lines, key+"="+values.Get(key))
	}
	sort.Strings(lines)
	secret := hmacSHA256([]byte("WebAppData"), []byte(botToken))
	hash := hex.EncodeToString(hmacSHA256(secret, []byte(strings.Join(lines, "\n"))))
	values.Set("hash", hash)
	return values.Encode()
}
