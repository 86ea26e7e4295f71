package models

import (
	"fmt"
	"strings"
	"time"
)

// Provider identifies a third-party identity provider.
type Provider string

const (
	ProviderGoogle Provider = "GOOGLE"
	ProviderKakao  Provider = "KAKAO"
	ProviderNaver  Provider = "NAVER"
)

// ParseProvider accepts provider names case-insensitively ("google", "GOOGLE").
func ParseProvider(s string) (Provider, error) {
	p := Provider(strings.ToUpper(strings.TrimSpace(s)))
	switch p {
	case ProviderGoogle, ProviderKakao, ProviderNaver:
		return p, nil
	}
	return "", fmt.Errorf("unknown provider %q", s)
}

// OAuthAccountDB links a user to a provider subject.
type OAuthAccountDB struct {
	ID         int64     `db:"id"`
	UserID     int64     `db:"user_id"`
	Provider   Provider  `db:"provider"`
	ProviderID string    `db:"provider_id"`
	Email      *string   `db:"email"`
	CreatedAt  time.Time `db:"created_at"`
}

// OAuthProfile is the normalized profile returned by every provider client.
type OAuthProfile struct {
	ID            string
	Email         string
	EmailVerified bool
	Nickname      string
	Avatar        string
}

// OAuthToken is the provider token pair obtained from a code exchange.
type OAuthToken struct {
	AccessToken  string
	RefreshToken string
}
