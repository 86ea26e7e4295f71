package facades

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/sbilibin2017/gw-identity/internal/config"
	"github.com/sbilibin2017/gw-identity/internal/logger"
	"github.com/sbilibin2017/gw-identity/internal/models"
	"golang.org/x/oauth2"
)

var (
	// ErrProviderRequest is returned when a provider call fails or answers
	// with a non-success status.
	ErrProviderRequest = errors.New("oauth provider request failed")
	// ErrProviderResponse is returned when a provider answers with an
	// unexpected payload.
	ErrProviderResponse = errors.New("unexpected oauth provider response")
)

// endpoints are the provider URLs used when configuration leaves them empty.
type endpoints struct {
	auth, token, profile string
}

// oauthClient implements the authorization-code half shared by all providers.
type oauthClient struct {
	name       models.Provider
	cfg        *oauth2.Config
	profileURL string
	httpClient *http.Client
}

func newOAuthClient(name models.Provider, cfg config.OAuthProviderConfig, defaults endpoints, scopes []string, httpClient *http.Client) oauthClient {
	pick := func(v, def string) string {
		if v != "" {
			return v
		}
		return def
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return oauthClient{
		name: name,
		cfg: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURI,
			Scopes:       scopes,
			Endpoint: oauth2.Endpoint{
				AuthURL:   pick(cfg.AuthURL, defaults.auth),
				TokenURL:  pick(cfg.TokenURL, defaults.token),
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		profileURL: pick(cfg.ProfileURL, defaults.profile),
		httpClient: httpClient,
	}
}

// AuthorizationURL returns the provider consent page URL carrying state.
func (c *oauthClient) AuthorizationURL(state string) string {
	return c.cfg.AuthCodeURL(state)
}

// ExchangeCode trades an authorization code for provider tokens.
func (c *oauthClient) ExchangeCode(ctx context.Context, code string) (*models.OAuthToken, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)

	token, err := c.cfg.Exchange(ctx, code)
	if err != nil {
		logger.Log.Errorw("failed to exchange oauth code", "provider", c.name, "error", err)
		return nil, fmt.Errorf("%w: %s code exchange: %w", ErrProviderRequest, c.name, err)
	}
	if token.AccessToken == "" {
		return nil, fmt.Errorf("%w: %s returned no access token", ErrProviderResponse, c.name)
	}

	return &models.OAuthToken{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
	}, nil
}

// getProfile fetches the profile endpoint with a bearer token into dst.
func (c *oauthClient) getProfile(ctx context.Context, accessToken string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.profileURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Log.Errorw("failed to fetch oauth profile", "provider", c.name, "error", err)
		return fmt.Errorf("%w: %s profile: %w", ErrProviderRequest, c.name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Log.Errorw("oauth profile request rejected", "provider", c.name, "status", resp.StatusCode)
		return fmt.Errorf("%w: %s profile status %d", ErrProviderRequest, c.name, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %s profile: %w", ErrProviderResponse, c.name, err)
	}
	return nil
}
