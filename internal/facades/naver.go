package facades

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sbilibin2017/gw-identity/internal/config"
	"github.com/sbilibin2017/gw-identity/internal/models"
)

var naverEndpoints = endpoints{
	auth:    "https://nid.naver.com/oauth2.0/authorize",
	token:   "https://nid.naver.com/oauth2.0/token",
	profile: "https://openapi.naver.com/v1/nid/me",
}

const naverResultOK = "00"

// NaverProvider talks to Naver Login.
type NaverProvider struct {
	oauthClient
}

func NewNaverProvider(cfg config.OAuthProviderConfig, httpClient *http.Client) *NaverProvider {
	return &NaverProvider{
		oauthClient: newOAuthClient(models.ProviderNaver, cfg, naverEndpoints, nil, httpClient),
	}
}

type naverProfile struct {
	ResultCode string `json:"resultcode"`
	Message    string `json:"message"`
	Response   struct {
		ID           string `json:"id"`
		Nickname     string `json:"nickname"`
		Email        string `json:"email"`
		ProfileImage string `json:"profile_image"`
	} `json:"response"`
}

// FetchProfile returns the normalized Naver user. Naver only exposes the
// address confirmed on the Naver account, so a returned email counts as verified.
func (p *NaverProvider) FetchProfile(ctx context.Context, accessToken string) (*models.OAuthProfile, error) {
	var profile naverProfile
	if err := p.getProfile(ctx, accessToken, &profile); err != nil {
		return nil, err
	}
	if profile.ResultCode != naverResultOK {
		return nil, fmt.Errorf("%w: naver resultcode %s: %s", ErrProviderRequest, profile.ResultCode, profile.Message)
	}
	if profile.Response.ID == "" {
		return nil, fmt.Errorf("%w: naver profile without id", ErrProviderResponse)
	}

	return &models.OAuthProfile{
		ID:            profile.Response.ID,
		Email:         profile.Response.Email,
		EmailVerified: profile.Response.Email != "",
		Nickname:      profile.Response.Nickname,
		Avatar:        profile.Response.ProfileImage,
	}, nil
}
