package telegram

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"
)

var (
	ErrMissingHash  = errors.New("init data has no hash")
	ErrBadSignature = errors.New("init data signature mismatch")
	ErrExpired      = errors.New("init data is too old")
	ErrNoUser       = errors.New("init data has no user")
)

// MaxAge is how long after auth_date init data is still accepted.
const MaxAge = 24 * time.Hour

// WebAppUser is the user object Telegram embeds in WebApp init data.
type WebAppUser struct {
	ID           int64  `json:"id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Username     string `json:"username"`
	LanguageCode string `json:"language_code"`
	IsPremium    bool   `json:"is_premium"`
	PhotoURL     string `json:"photo_url"`
}

// VerifyInitData validates the signature of a Telegram WebApp initData string
// against the bot token and returns the embedded user.
//
// Per the Telegram algorithm: the secret key is HMAC-SHA256("WebAppData",
// botToken); the data-check-string is all key=value pairs except "hash",
// sorted by key and joined with newlines; the signature is the hex HMAC of
// the data-check-string under the secret key.
func VerifyInitData(initData, botToken string, maxAge time.Duration) (*WebAppUser, error) {
	values, err := url.ParseQuery(initData)
	if err != nil {
		return nil, err
	}

	hash := values.Get("hash")
	if hash == "" {
		return nil, ErrMissingHash
	}
	values.Del("hash")

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var check strings.Builder
	for i, k := range keys {
		if i > 0 {
			check.WriteByte('\n')
		}
		check.WriteString(k)
		check.WriteByte('=')
		check.WriteString(values.Get(k))
	}

	secret := hmac.New(sha256.New, []byte("WebAppData"))
	secret.Write([]byte(botToken))
	mac := hmac.New(sha256.New, secret.Sum(nil))
	mac.Write([]byte(check.String()))
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(hash)) {
		return nil, ErrBadSignature
	}

	if maxAge > 0 {
		authDate, err := strconv.ParseInt(values.Get("auth_date"), 10, 64)
		if err != nil || time.Since(time.Unix(authDate, 0)) > maxAge {
			return nil, ErrExpired
		}
	}

	userJSON := values.Get("user")
	if userJSON == "" {
		return nil, ErrNoUser
	}

	var user WebAppUser
	if err := json.Unmarshal([]byte(userJSON), &user); err != nil {
		return nil, err
	}
	if user.ID == 0 {
		return nil, ErrNoUser
	}
	return &user, nil
}
