package facades

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/sbilibin2017/gw-identity/internal/config"
	"github.com/sbilibin2017/gw-identity/internal/models"
)

var kakaoEndpoints = endpoints{
	auth:    "https://kauth.kakao.com/oauth/authorize",
	token:   "https://kauth.kakao.com/oauth/token",
	profile: "https://kapi.kakao.com/v2/user/me",
}

// KakaoProvider talks to Kakao Login.
type KakaoProvider struct {
	oauthClient
}

func NewKakaoProvider(cfg config.OAuthProviderConfig, httpClient *http.Client) *KakaoProvider {
	return &KakaoProvider{
		oauthClient: newOAuthClient(models.ProviderKakao, cfg, kakaoEndpoints, []string{"account_email", "profile_nickname"}, httpClient),
	}
}

type kakaoProfile struct {
	ID           int64 `json:"id"`
	KakaoAccount struct {
		Email           string `json:"email"`
		IsEmailValid    bool   `json:"is_email_valid"`
		IsEmailVerified bool   `json:"is_email_verified"`
		Profile         struct {
			Nickname        string `json:"nickname"`
			ProfileImageURL string `json:"profile_image_url"`
		} `json:"profile"`
	} `json:"kakao_account"`
}

// FetchProfile returns the normalized Kakao user.
func (p *KakaoProvider) FetchProfile(ctx context.Context, accessToken string) (*models.OAuthProfile, error) {
	var profile kakaoProfile
	if err := p.getProfile(ctx, accessToken, &profile); err != nil {
		return nil, err
	}
	if profile.ID == 0 {
		return nil, fmt.Errorf("%w: kakao profile without id", ErrProviderResponse)
	}

	account := profile.KakaoAccount
	return &models.OAuthProfile{
		ID:            strconv.FormatInt(profile.ID, 10),
		Email:         account.Email,
		EmailVerified: account.Email != "" && account.IsEmailValid && account.IsEmailVerified,
		Nickname:      account.Profile.Nickname,
		Avatar:        account.Profile.ProfileImageURL,
	}, nil
}
