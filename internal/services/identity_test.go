package services_test

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-identity/internal/models"
	"github.com/sbilibin2017/gw-identity/internal/repositories"
	"github.com/sbilibin2017/gw-identity/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type identityMocks struct {
	pending    *services.MockPendingManager
	linker     *services.MockAccountLinker
	userReader *services.MockUserReader
	userWriter *services.MockUserWriter
	hasher     *services.MockPasswordHasher
	tokens     *services.MockSessionTokens
	codes      *services.MockIssueCodeStore
	mailer     *services.MockMailDispatcher
	google     *services.MockOAuthProvider
}

func defaultIdentityOptions() services.IdentityOptions {
	return services.IdentityOptions{
		LocalSignup:     true,
		LocalSignin:     true,
		ConfirmEmailURL: "https://app.example.com/auth/confirm",
		ProviderTimeout: time.Second,
	}
}

func newIdentityService(t *testing.T, opts services.IdentityOptions) (*services.IdentityService, *identityMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &identityMocks{
		pending:    services.NewMockPendingManager(ctrl),
		linker:     services.NewMockAccountLinker(ctrl),
		userReader: services.NewMockUserReader(ctrl),
		userWriter: services.NewMockUserWriter(ctrl),
		hasher:     services.NewMockPasswordHasher(ctrl),
		tokens:     services.NewMockSessionTokens(ctrl),
		codes:      services.NewMockIssueCodeStore(ctrl),
		mailer:     services.NewMockMailDispatcher(ctrl),
		google:     services.NewMockOAuthProvider(ctrl),
	}
	svc := services.NewIdentityService(
		m.pending, m.linker, m.userReader, m.userWriter, m.hasher, m.tokens, m.codes, m.mailer,
		map[models.Provider]services.OAuthProvider{models.ProviderGoogle: m.google},
		opts,
	)
	return svc, m
}

func TestIdentityService_Signup(t *testing.T) {
	const (
		email    = "a@x.com"
		password = "Pw1!aaaa"
	)
	mailErr := errors.New("broker down")

	tests := []struct {
		name     string
		opts     func(*services.IdentityOptions)
		nickname string
		setup    func(m *identityMocks)
		wantErr  error
	}{
		{
			name:     "mails the verification link",
			nickname: "nick",
			setup: func(m *identityMocks) {
				m.pending.EXPECT().CreatePending(gomock.Any(), email, email, password, "nick").Return("T1", nil)
				m.mailer.EXPECT().SendVerificationLink(gomock.Any(), email, "https://app.example.com/auth/confirm?token=T1").Return(nil)
			},
		},
		{
			name: "nickname defaults to the local part",
			setup: func(m *identityMocks) {
				m.pending.EXPECT().CreatePending(gomock.Any(), email, email, password, "a").Return("T1", nil)
				m.mailer.EXPECT().SendVerificationLink(gomock.Any(), email, gomock.Any()).Return(nil)
			},
		},
		{
			name:     "long nickname is clamped",
			nickname: strings.Repeat("n", 70),
			setup: func(m *identityMocks) {
				m.pending.EXPECT().CreatePending(gomock.Any(), email, email, password, strings.Repeat("n", 64)).Return("T1", nil)
				m.mailer.EXPECT().SendVerificationLink(gomock.Any(), email, gomock.Any()).Return(nil)
			},
		},
		{
			name:     "failed delivery abandons the registration",
			nickname: "nick",
			setup: func(m *identityMocks) {
				gomock.InOrder(
					m.pending.EXPECT().CreatePending(gomock.Any(), email, email, password, "nick").Return("T1", nil),
					m.mailer.EXPECT().SendVerificationLink(gomock.Any(), email, gomock.Any()).Return(mailErr),
					m.pending.EXPECT().Abandon(gomock.Any(), email).Return(nil),
				)
			},
			wantErr: mailErr,
		},
		{
			name:     "conflict is passed through",
			nickname: "nick",
			setup: func(m *identityMocks) {
				m.pending.EXPECT().CreatePending(gomock.Any(), email, email, password, "nick").Return("", services.ErrRegistrationPending)
			},
			wantErr: services.ErrConflict,
		},
		{
			name:    "local signup disabled",
			opts:    func(o *services.IdentityOptions) { o.LocalSignup = false },
			setup:   func(m *identityMocks) {},
			wantErr: services.ErrFeatureDisabled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := defaultIdentityOptions()
			if tt.opts != nil {
				tt.opts(&opts)
			}
			svc, m := newIdentityService(t, opts)
			tt.setup(m)

			token, err := svc.Signup(context.Background(), email, password, tt.nickname)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "T1", token)
		})
	}
}

func TestIdentityService_Resend(t *testing.T) {
	svc, m := newIdentityService(t, defaultIdentityOptions())

	m.pending.EXPECT().Resend(gomock.Any(), "a@x.com").Return("T2", nil)
	m.mailer.EXPECT().SendVerificationLink(gomock.Any(), "a@x.com", "https://app.example.com/auth/confirm?token=T2").Return(nil)

	token, err := svc.Resend(context.Background(), "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "T2", token)

	mailErr := errors.New("broker down")
	m.pending.EXPECT().Resend(gomock.Any(), "a@x.com").Return("T3", nil)
	m.mailer.EXPECT().SendVerificationLink(gomock.Any(), "a@x.com", gomock.Any()).Return(mailErr)

	_, err = svc.Resend(context.Background(), "a@x.com")
	assert.ErrorIs(t, err, mailErr)

	m.pending.EXPECT().Resend(gomock.Any(), "a@x.com").Return("", services.ErrResendTooSoon)
	_, err = svc.Resend(context.Background(), "a@x.com")
	assert.ErrorIs(t, err, services.ErrRateLimited)
}

func TestIdentityService_Verify(t *testing.T) {
	svc, m := newIdentityService(t, defaultIdentityOptions())
	id := uuid.New()

	m.pending.EXPECT().Verify(gomock.Any(), "T1").Return(id, nil)
	got, err := svc.Verify(context.Background(), "T1")
	require.NoError(t, err)
	assert.Equal(t, id, got)

	m.pending.EXPECT().Verify(gomock.Any(), "T1").Return(uuid.Nil, services.ErrAlreadyVerified)
	_, err = svc.Verify(context.Background(), "T1")
	assert.ErrorIs(t, err, services.ErrAlreadyVerified)
}

func TestIdentityService_VerificationLink(t *testing.T) {
	opts := defaultIdentityOptions()
	opts.ConfirmEmailURL = "https://app.example.com/confirm?lang=en"
	svc, _ := newIdentityService(t, opts)

	link, err := svc.VerificationLink("a.b+c")
	require.NoError(t, err)

	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "en", u.Query().Get("lang"))
	assert.Equal(t, "a.b+c", u.Query().Get("token"))
}

func TestIdentityService_LocalSignIn(t *testing.T) {
	identity := models.Identity{UUID: uuid.New(), Role: models.RoleUser}
	dbErr := errors.New("db error")

	tests := []struct {
		name    string
		opts    func(*services.IdentityOptions)
		setup   func(m *identityMocks)
		want    *models.Identity
		wantErr error
	}{
		{
			name: "correct password",
			setup: func(m *identityMocks) {
				m.userReader.EXPECT().GetLocalAccount(gomock.Any(), "a@x.com").
					Return(&models.LocalAccount{Identity: identity, PasswordHash: "hash"}, nil)
				m.hasher.EXPECT().Compare("hash", "secret").Return(nil)
			},
			want: &identity,
		},
		{
			name: "wrong password",
			setup: func(m *identityMocks) {
				m.userReader.EXPECT().GetLocalAccount(gomock.Any(), "a@x.com").
					Return(&models.LocalAccount{Identity: identity, PasswordHash: "hash"}, nil)
				m.hasher.EXPECT().Compare("hash", "secret").Return(errors.New("mismatch"))
			},
			wantErr: services.ErrInvalidCredentials,
		},
		{
			name: "unknown login id still compares a hash",
			setup: func(m *identityMocks) {
				m.userReader.EXPECT().GetLocalAccount(gomock.Any(), "a@x.com").Return(nil, repositories.ErrNotFound)
				m.hasher.EXPECT().Hash(gomock.Any()).Return("fallback", nil)
				m.hasher.EXPECT().Compare("fallback", "secret").Return(errors.New("mismatch"))
			},
			wantErr: services.ErrInvalidCredentials,
		},
		{
			name: "store error",
			setup: func(m *identityMocks) {
				m.userReader.EXPECT().GetLocalAccount(gomock.Any(), "a@x.com").Return(nil, dbErr)
			},
			wantErr: dbErr,
		},
		{
			name:    "local sign-in disabled",
			opts:    func(o *services.IdentityOptions) { o.LocalSignin = false },
			setup:   func(m *identityMocks) {},
			wantErr: services.ErrFeatureDisabled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := defaultIdentityOptions()
			if tt.opts != nil {
				tt.opts(&opts)
			}
			svc, m := newIdentityService(t, opts)
			tt.setup(m)

			got, err := svc.LocalSignIn(context.Background(), "a@x.com", "secret")
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

func TestIdentityService_UnknownAndWrongPasswordLookAlike(t *testing.T) {
	svc, m := newIdentityService(t, defaultIdentityOptions())

	m.userReader.EXPECT().GetLocalAccount(gomock.Any(), "ghost").Return(nil, repositories.ErrNotFound)
	m.hasher.EXPECT().Hash(gomock.Any()).Return("fallback", nil)
	m.hasher.EXPECT().Compare("fallback", "pw").Return(errors.New("mismatch"))
	_, unknownErr := svc.LocalSignIn(context.Background(), "ghost", "pw")

	m.userReader.EXPECT().GetLocalAccount(gomock.Any(), "real").
		Return(&models.LocalAccount{PasswordHash: "hash"}, nil)
	m.hasher.EXPECT().Compare("hash", "pw").Return(errors.New("mismatch"))
	_, wrongErr := svc.LocalSignIn(context.Background(), "real", "pw")

	assert.Equal(t, unknownErr.Error(), wrongErr.Error())

	// the fallback hash is computed once
	m.userReader.EXPECT().GetLocalAccount(gomock.Any(), "ghost").Return(nil, repositories.ErrNotFound)
	m.hasher.EXPECT().Compare("fallback", "pw").Return(errors.New("mismatch"))
	_, err := svc.LocalSignIn(context.Background(), "ghost", "pw")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
}

func TestIdentityService_OAuthSignIn(t *testing.T) {
	identity := &models.Identity{UUID: uuid.New(), Role: models.RoleUser}
	providerErr := errors.New("provider down")

	tests := []struct {
		name     string
		provider models.Provider
		setup    func(m *identityMocks)
		want     *models.Identity
		wantErr  error
	}{
		{
			name:     "verified profile",
			provider: models.ProviderGoogle,
			setup: func(m *identityMocks) {
				profile := &models.OAuthProfile{ID: "g1", Email: "b@x.com", EmailVerified: true}
				m.google.EXPECT().ExchangeCode(gomock.Any(), "code").Return(&models.OAuthToken{AccessToken: "pat"}, nil)
				m.google.EXPECT().FetchProfile(gomock.Any(), "pat").Return(profile, nil)
				m.linker.EXPECT().FindOrCreate(gomock.Any(), models.ProviderGoogle, profile).Return(identity, nil)
			},
			want: identity,
		},
		{
			name:     "profile without email creates nothing",
			provider: models.ProviderGoogle,
			setup: func(m *identityMocks) {
				m.google.EXPECT().ExchangeCode(gomock.Any(), "code").Return(&models.OAuthToken{AccessToken: "pat"}, nil)
				m.google.EXPECT().FetchProfile(gomock.Any(), "pat").Return(&models.OAuthProfile{ID: "g1", Nickname: "bee"}, nil)
			},
			wantErr: services.ErrUnverifiedEmail,
		},
		{
			name:     "verified flag without email creates nothing",
			provider: models.ProviderGoogle,
			setup: func(m *identityMocks) {
				m.google.EXPECT().ExchangeCode(gomock.Any(), "code").Return(&models.OAuthToken{AccessToken: "pat"}, nil)
				m.google.EXPECT().FetchProfile(gomock.Any(), "pat").Return(&models.OAuthProfile{ID: "g1", EmailVerified: true}, nil)
			},
			wantErr: services.ErrUnverifiedEmail,
		},
		{
			name:     "unverified email creates nothing",
			provider: models.ProviderGoogle,
			setup: func(m *identityMocks) {
				m.google.EXPECT().ExchangeCode(gomock.Any(), "code").Return(&models.OAuthToken{AccessToken: "pat"}, nil)
				m.google.EXPECT().FetchProfile(gomock.Any(), "pat").
					Return(&models.OAuthProfile{ID: "g1", Email: "b@x.com", EmailVerified: false}, nil)
			},
			wantErr: services.ErrUnverifiedEmail,
		},
		{
			name:     "exchange fails",
			provider: models.ProviderGoogle,
			setup: func(m *identityMocks) {
				m.google.EXPECT().ExchangeCode(gomock.Any(), "code").Return(nil, providerErr)
			},
			wantErr: providerErr,
		},
		{
			name:     "provider not configured",
			provider: models.ProviderNaver,
			setup:    func(m *identityMocks) {},
			wantErr:  services.ErrUnsupportedProvider,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newIdentityService(t, defaultIdentityOptions())
			tt.setup(m)

			got, err := svc.OAuthSignIn(context.Background(), tt.provider, "code")
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

func TestIdentityService_OAuthSignInWithToken(t *testing.T) {
	svc, m := newIdentityService(t, defaultIdentityOptions())
	identity := &models.Identity{UUID: uuid.New(), Role: models.RoleUser}
	profile := &models.OAuthProfile{ID: "g1", Email: "b@x.com", EmailVerified: true}

	m.google.EXPECT().FetchProfile(gomock.Any(), "native-token").
		DoAndReturn(func(ctx context.Context, _ string) (*models.OAuthProfile, error) {
			_, ok := ctx.Deadline()
			assert.True(t, ok)
			return profile, nil
		})
	m.linker.EXPECT().FindOrCreate(gomock.Any(), models.ProviderGoogle, profile).Return(identity, nil)

	got, err := svc.OAuthSignInWithToken(context.Background(), models.ProviderGoogle, "native-token")
	require.NoError(t, err)
	assert.Equal(t, identity, got)
}

func TestIdentityService_AuthorizationURL(t *testing.T) {
	svc, m := newIdentityService(t, defaultIdentityOptions())

	m.google.EXPECT().AuthorizationURL("state").Return("https://accounts.google.com/auth?state=state")
	got, err := svc.AuthorizationURL(models.ProviderGoogle, "state")
	require.NoError(t, err)
	assert.Equal(t, "https://accounts.google.com/auth?state=state", got)

	_, err = svc.AuthorizationURL(models.ProviderKakao, "state")
	assert.ErrorIs(t, err, services.ErrUnsupportedProvider)
}

func TestIdentityService_Refresh(t *testing.T) {
	identity := models.Identity{UUID: uuid.New(), Role: models.RoleAdmin}

	t.Run("rotates the pair for the same identity", func(t *testing.T) {
		svc, m := newIdentityService(t, defaultIdentityOptions())
		m.tokens.EXPECT().VerifyRefresh(gomock.Any(), "R0").
			Return(&models.RefreshTokenPayload{UUID: identity.UUID, Role: identity.Role}, nil)
		m.tokens.EXPECT().IssueAccess(gomock.Any(), models.AccessTokenPayload{UUID: identity.UUID, Role: identity.Role}).Return("A1", nil)
		m.tokens.EXPECT().IssueRefresh(gomock.Any(), models.RefreshTokenPayload{UUID: identity.UUID, Role: identity.Role}).Return("R1", nil)

		pair, err := svc.Refresh(context.Background(), "R0")
		require.NoError(t, err)
		assert.Equal(t, &models.TokenPair{AccessToken: "A1", RefreshToken: "R1"}, pair)
	})

	t.Run("expired refresh token", func(t *testing.T) {
		svc, m := newIdentityService(t, defaultIdentityOptions())
		m.tokens.EXPECT().VerifyRefresh(gomock.Any(), "R0").Return(nil, services.ErrExpiredToken)

		pair, err := svc.Refresh(context.Background(), "R0")
		assert.ErrorIs(t, err, services.ErrExpiredToken)
		assert.Nil(t, pair)
	})
}

func TestIdentityService_IssueCode(t *testing.T) {
	svc, m := newIdentityService(t, defaultIdentityOptions())
	id := uuid.New()

	var saved []string
	m.codes.EXPECT().Save(gomock.Any(), gomock.Any(), id).
		DoAndReturn(func(_ context.Context, code string, _ uuid.UUID) error {
			saved = append(saved, code)
			if len(saved) == 1 {
				return repositories.ErrUniqueViolation
			}
			return nil
		}).
		Times(2)

	code, err := svc.IssueCode(context.Background(), id)
	require.NoError(t, err)
	assert.Len(t, code, 32)
	assert.Equal(t, saved[1], code)
}

func TestIdentityService_RedeemIssueCode(t *testing.T) {
	id := uuid.New()
	identity := &models.Identity{UUID: id, Role: models.RoleUser}

	tests := []struct {
		name    string
		setup   func(m *identityMocks)
		want    *models.Identity
		wantErr error
	}{
		{
			name: "redeems",
			setup: func(m *identityMocks) {
				m.codes.EXPECT().Take(gomock.Any(), "code").Return(id, nil)
				m.userReader.EXPECT().GetIdentityByUUID(gomock.Any(), id).Return(identity, nil)
			},
			want: identity,
		},
		{
			name: "unknown or used code",
			setup: func(m *identityMocks) {
				m.codes.EXPECT().Take(gomock.Any(), "code").Return(uuid.Nil, repositories.ErrNotFound)
			},
			wantErr: services.ErrIssueCodeNotFound,
		},
		{
			name: "user deleted meanwhile",
			setup: func(m *identityMocks) {
				m.codes.EXPECT().Take(gomock.Any(), "code").Return(id, nil)
				m.userReader.EXPECT().GetIdentityByUUID(gomock.Any(), id).Return(nil, repositories.ErrNotFound)
			},
			wantErr: services.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newIdentityService(t, defaultIdentityOptions())
			tt.setup(m)

			got, err := svc.RedeemIssueCode(context.Background(), "code")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, services.ErrNotFound)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIdentityService_DeleteUser(t *testing.T) {
	svc, m := newIdentityService(t, defaultIdentityOptions())
	id := uuid.New()

	m.userWriter.EXPECT().DeleteByUUID(gomock.Any(), id).Return(nil)
	assert.NoError(t, svc.DeleteUser(context.Background(), id))

	m.userWriter.EXPECT().DeleteByUUID(gomock.Any(), id).Return(repositories.ErrNotFound)
	assert.ErrorIs(t, svc.DeleteUser(context.Background(), id), services.ErrUserNotFound)
}
