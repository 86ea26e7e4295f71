package facades

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sbilibin2017/gw-identity/internal/config"
	"github.com/sbilibin2017/gw-identity/internal/models"
)

var googleEndpoints = endpoints{
	auth:    "https://accounts.google.com/o/oauth2/v2/auth",
	token:   "https://oauth2.googleapis.com/token",
	profile: "https://www.googleapis.com/oauth2/v2/userinfo",
}

// GoogleProvider talks to Google OAuth 2.0.
type GoogleProvider struct {
	oauthClient
}

func NewGoogleProvider(cfg config.OAuthProviderConfig, httpClient *http.Client) *GoogleProvider {
	return &GoogleProvider{
		oauthClient: newOAuthClient(models.ProviderGoogle, cfg, googleEndpoints, []string{"email", "profile"}, httpClient),
	}
}

type googleProfile struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

// FetchProfile returns the normalized Google userinfo.
func (p *GoogleProvider) FetchProfile(ctx context.Context, accessToken string) (*models.OAuthProfile, error) {
	var profile googleProfile
	if err := p.getProfile(ctx, accessToken, &profile); err != nil {
		return nil, err
	}
	if profile.ID == "" {
		return nil, fmt.Errorf("%w: google profile without id", ErrProviderResponse)
	}

	return &models.OAuthProfile{
		ID:            profile.ID,
		Email:         profile.Email,
		EmailVerified: profile.Email != "" && profile.VerifiedEmail,
		Nickname:      profile.Name,
		Avatar:        profile.Picture,
	}, nil
}
