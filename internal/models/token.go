package models

import "github.com/google/uuid"

// AccessTokenPayload is carried by access tokens.
type AccessTokenPayload struct {
	UUID uuid.UUID `json:"uuid"`
	Role Role      `json:"role"`
}

// RefreshTokenPayload is carried by refresh tokens.
type RefreshTokenPayload struct {
	UUID uuid.UUID `json:"uuid"`
	Role Role      `json:"role"`
}

// EmailVerificationPayload is carried by email verification tokens.
type EmailVerificationPayload struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

// TokenPair bundles a short-lived access token and a long-lived refresh token.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// VerificationMail is published to the mailer topic.
type VerificationMail struct {
	Email string `json:"email"`
	Link  string `json:"link"`
}
