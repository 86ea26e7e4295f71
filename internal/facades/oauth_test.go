package facades

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/sbilibin2017/gw-identity/internal/config"
	"github.com/sbilibin2017/gw-identity/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProvider serves a token endpoint and a profile endpoint.
type fakeProvider struct {
	tokenStatus   int
	profileStatus int
	profile       any
	gotCode       string
	gotBearer     string
}

func (f *fakeProvider) server(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		f.gotCode = r.PostForm.Get("code")
		if f.tokenStatus != 0 {
			w.WriteHeader(f.tokenStatus)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token":  "provider-access",
			"refresh_token": "provider-refresh",
			"token_type":    "bearer",
			"expires_in":    3600,
		})
	})
	mux.HandleFunc("/profile", func(w http.ResponseWriter, r *http.Request) {
		f.gotBearer = r.Header.Get("Authorization")
		if f.profileStatus != 0 {
			w.WriteHeader(f.profileStatus)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(f.profile)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func providerConfig(srv *httptest.Server) config.OAuthProviderConfig {
	return config.OAuthProviderConfig{
		ClientID:     "client",
		ClientSecret: "secret",
		RedirectURI:  "https://app/callback",
		AuthURL:      srv.URL + "/authorize",
		TokenURL:     srv.URL + "/token",
		ProfileURL:   srv.URL + "/profile",
	}
}

func TestOAuthClient_AuthorizationURL(t *testing.T) {
	p := NewGoogleProvider(config.OAuthProviderConfig{
		ClientID:     "client",
		ClientSecret: "secret",
		RedirectURI:  "https://app/callback",
	}, nil)

	raw := p.AuthorizationURL("state-1")
	u, err := url.Parse(raw)
	require.NoError(t, err)

	assert.Equal(t, "accounts.google.com", u.Host)
	q := u.Query()
	assert.Equal(t, "client", q.Get("client_id"))
	assert.Equal(t, "https://app/callback", q.Get("redirect_uri"))
	assert.Equal(t, "state-1", q.Get("state"))
	assert.Equal(t, "code", q.Get("response_type"))
}

func TestOAuthClient_ExchangeCode(t *testing.T) {
	fake := &fakeProvider{}
	srv := fake.server(t)
	p := NewKakaoProvider(providerConfig(srv), srv.Client())

	token, err := p.ExchangeCode(context.Background(), "auth-code")
	require.NoError(t, err)
	assert.Equal(t, "auth-code", fake.gotCode)
	assert.Equal(t, &models.OAuthToken{AccessToken: "provider-access", RefreshToken: "provider-refresh"}, token)
}

func TestOAuthClient_ExchangeCodeRejected(t *testing.T) {
	fake := &fakeProvider{tokenStatus: http.StatusBadRequest}
	srv := fake.server(t)
	p := NewNaverProvider(providerConfig(srv), srv.Client())

	token, err := p.ExchangeCode(context.Background(), "bad-code")
	assert.ErrorIs(t, err, ErrProviderRequest)
	assert.Nil(t, token)
}

func TestOAuthClient_ProfileTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	}))
	defer srv.Close()

	client := &http.Client{Timeout: 20 * time.Millisecond}
	p := NewGoogleProvider(providerConfig(srv), client)

	profile, err := p.FetchProfile(context.Background(), "token")
	assert.ErrorIs(t, err, ErrProviderRequest)
	assert.Nil(t, profile)
}

func TestProviders_FetchProfile(t *testing.T) {
	type fetcher interface {
		FetchProfile(ctx context.Context, accessToken string) (*models.OAuthProfile, error)
	}

	tests := []struct {
		name    string
		build   func(config.OAuthProviderConfig, *http.Client) fetcher
		status  int
		body    any
		want    *models.OAuthProfile
		wantErr error
	}{
		{
			name:  "google verified",
			build: func(c config.OAuthProviderConfig, h *http.Client) fetcher { return NewGoogleProvider(c, h) },
			body: map[string]any{
				"id": "g-1", "email": "a@example.com", "verified_email": true,
				"name": "Alice", "picture": "https://img/a.png",
			},
			want: &models.OAuthProfile{
				ID: "g-1", Email: "a@example.com", EmailVerified: true,
				Nickname: "Alice", Avatar: "https://img/a.png",
			},
		},
		{
			name:  "google unverified",
			build: func(c config.OAuthProviderConfig, h *http.Client) fetcher { return NewGoogleProvider(c, h) },
			body:  map[string]any{"id": "g-2", "email": "b@example.com", "verified_email": false},
			want:  &models.OAuthProfile{ID: "g-2", Email: "b@example.com"},
		},
		{
			name:  "google verified flag without email",
			build: func(c config.OAuthProviderConfig, h *http.Client) fetcher { return NewGoogleProvider(c, h) },
			body:  map[string]any{"id": "g-3", "name": "bee", "verified_email": true},
			want:  &models.OAuthProfile{ID: "g-3", Nickname: "bee"},
		},
		{
			name:    "google without id",
			build:   func(c config.OAuthProviderConfig, h *http.Client) fetcher { return NewGoogleProvider(c, h) },
			body:    map[string]any{"email": "c@example.com"},
			wantErr: ErrProviderResponse,
		},
		{
			name:  "kakao",
			build: func(c config.OAuthProviderConfig, h *http.Client) fetcher { return NewKakaoProvider(c, h) },
			body: map[string]any{
				"id": 12345,
				"kakao_account": map[string]any{
					"email": "k@example.com", "is_email_valid": true, "is_email_verified": true,
					"profile": map[string]any{"nickname": "kay", "profile_image_url": "https://img/k.png"},
				},
			},
			want: &models.OAuthProfile{
				ID: "12345", Email: "k@example.com", EmailVerified: true,
				Nickname: "kay", Avatar: "https://img/k.png",
			},
		},
		{
			name:  "kakao without email",
			build: func(c config.OAuthProviderConfig, h *http.Client) fetcher { return NewKakaoProvider(c, h) },
			body:  map[string]any{"id": 7, "kakao_account": map[string]any{"profile": map[string]any{"nickname": "anon"}}},
			want:  &models.OAuthProfile{ID: "7", Nickname: "anon"},
		},
		{
			name:  "kakao verified flags without email",
			build: func(c config.OAuthProviderConfig, h *http.Client) fetcher { return NewKakaoProvider(c, h) },
			body: map[string]any{"id": 8, "kakao_account": map[string]any{
				"is_email_valid": true, "is_email_verified": true,
				"profile": map[string]any{"nickname": "anon"},
			}},
			want: &models.OAuthProfile{ID: "8", Nickname: "anon"},
		},
		{
			name:  "naver",
			build: func(c config.OAuthProviderConfig, h *http.Client) fetcher { return NewNaverProvider(c, h) },
			body: map[string]any{
				"resultcode": "00", "message": "success",
				"response": map[string]any{"id": "n-1", "nickname": "nav", "email": "n@example.com", "profile_image": "https://img/n.png"},
			},
			want: &models.OAuthProfile{
				ID: "n-1", Email: "n@example.com", EmailVerified: true,
				Nickname: "nav", Avatar: "https://img/n.png",
			},
		},
		{
			name:    "naver error result",
			build:   func(c config.OAuthProviderConfig, h *http.Client) fetcher { return NewNaverProvider(c, h) },
			body:    map[string]any{"resultcode": "024", "message": "Authentication failed"},
			wantErr: ErrProviderRequest,
		},
		{
			name:    "profile rejected",
			build:   func(c config.OAuthProviderConfig, h *http.Client) fetcher { return NewKakaoProvider(c, h) },
			status:  http.StatusUnauthorized,
			wantErr: ErrProviderRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeProvider{profile: tt.body, profileStatus: tt.status}
			srv := fake.server(t)
			p := tt.build(providerConfig(srv), srv.Client())

			got, err := p.FetchProfile(context.Background(), "provider-access")
			assert.Equal(t, "Bearer provider-access", fake.gotBearer)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
