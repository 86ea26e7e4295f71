package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-identity/internal/logger"
	"github.com/sbilibin2017/gw-identity/internal/models"
	"github.com/sbilibin2017/gw-identity/internal/repositories"
)

const issueCodeAttempts = 3

// IdentityOptions configures the identity service.
type IdentityOptions struct {
	LocalSignup     bool
	LocalSignin     bool
	ConfirmEmailURL string
	ProviderTimeout time.Duration
}

// IdentityService orchestrates signup, verification, sign-in and token
// refresh on top of the pending registration manager and the account linker.
type IdentityService struct {
	pending    PendingManager
	linker     AccountLinker
	userReader UserReader
	userWriter UserWriter
	hasher     PasswordHasher
	tokens     SessionTokens
	codes      IssueCodeStore
	mailer     MailDispatcher
	providers  map[models.Provider]OAuthProvider
	opts       IdentityOptions

	dummyOnce sync.Once
	dummyHash string
}

func NewIdentityService(
	pending PendingManager,
	linker AccountLinker,
	userReader UserReader,
	userWriter UserWriter,
	hasher PasswordHasher,
	tokens SessionTokens,
	codes IssueCodeStore,
	mailer MailDispatcher,
	providers map[models.Provider]OAuthProvider,
	opts IdentityOptions,
) *IdentityService {
	return &IdentityService{
		pending:    pending,
		linker:     linker,
		userReader: userReader,
		userWriter: userWriter,
		hasher:     hasher,
		tokens:     tokens,
		codes:      codes,
		mailer:     mailer,
		providers:  providers,
		opts:       opts,
	}
}

// Signup creates a pending registration, mails its verification link and
// returns the verification token. A failed delivery abandons the registration.
func (s *IdentityService) Signup(ctx context.Context, email, password, nickname string) (string, error) {
	if !s.opts.LocalSignup {
		return "", ErrFeatureDisabled
	}
	if nickname == "" {
		nickname = defaultNickname(email)
	}
	nickname = clampNickname(nickname)

	token, err := s.pending.CreatePending(ctx, email, email, password, nickname)
	if err != nil {
		return "", err
	}

	if err := s.sendVerification(ctx, email, token); err != nil {
		if abandonErr := s.pending.Abandon(ctx, email); abandonErr != nil {
			return "", errors.Join(err, abandonErr)
		}
		return "", err
	}
	return token, nil
}

// Resend regenerates and mails a verification link.
func (s *IdentityService) Resend(ctx context.Context, email string) (string, error) {
	if !s.opts.LocalSignup {
		return "", ErrFeatureDisabled
	}

	token, err := s.pending.Resend(ctx, email)
	if err != nil {
		return "", err
	}
	if err := s.sendVerification(ctx, email, token); err != nil {
		return "", err
	}
	return token, nil
}

// Verify completes a registration and returns the new user's uuid.
func (s *IdentityService) Verify(ctx context.Context, token string) (uuid.UUID, error) {
	if !s.opts.LocalSignup {
		return uuid.Nil, ErrFeatureDisabled
	}
	return s.pending.Verify(ctx, token)
}

// VerificationLink appends token to the configured confirmation URL.
func (s *IdentityService) VerificationLink(token string) (string, error) {
	u, err := url.Parse(s.opts.ConfirmEmailURL)
	if err != nil {
		return "", fmt.Errorf("parse confirm email url: %w", err)
	}
	q := u.Query()
	q.Set("token", token)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func (s *IdentityService) sendVerification(ctx context.Context, email, token string) error {
	link, err := s.VerificationLink(token)
	if err != nil {
		return err
	}
	if err := s.mailer.SendVerificationLink(ctx, email, link); err != nil {
		logger.Log.Errorw("failed to dispatch verification mail", "email", email, "error", err)
		return err
	}
	return nil
}

// LocalSignIn checks a login id and password. Unknown login ids cost the same
// hash comparison as wrong passwords and yield the same error.
func (s *IdentityService) LocalSignIn(ctx context.Context, loginID, password string) (*models.Identity, error) {
	if !s.opts.LocalSignin {
		return nil, ErrFeatureDisabled
	}

	account, err := s.userReader.GetLocalAccount(ctx, loginID)
	if errors.Is(err, repositories.ErrNotFound) {
		_ = s.hasher.Compare(s.fallbackHash(), password)
		logger.Log.Warnw("sign in with unknown login id")
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := s.hasher.Compare(account.PasswordHash, password); err != nil {
		logger.Log.Warnw("sign in with wrong password", "uuid", account.UUID)
		return nil, ErrInvalidCredentials
	}

	identity := account.Identity
	return &identity, nil
}

// fallbackHash is compared against when the login id is unknown.
func (s *IdentityService) fallbackHash() string {
	s.dummyOnce.Do(func() {
		secret, err := randomHex(issueCodeBytes)
		if err != nil {
			return
		}
		s.dummyHash, _ = s.hasher.Hash(secret)
	})
	return s.dummyHash
}

func (s *IdentityService) provider(p models.Provider) (OAuthProvider, error) {
	client, ok := s.providers[p]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedProvider, p)
	}
	return client, nil
}

// AuthorizationURL returns the consent page of provider.
func (s *IdentityService) AuthorizationURL(provider models.Provider, state string) (string, error) {
	client, err := s.provider(provider)
	if err != nil {
		return "", err
	}
	return client.AuthorizationURL(state), nil
}

// OAuthSignIn exchanges an authorization code and signs in the profile owner.
func (s *IdentityService) OAuthSignIn(ctx context.Context, provider models.Provider, code string) (*models.Identity, error) {
	client, err := s.provider(provider)
	if err != nil {
		return nil, err
	}

	ctx, cancel := s.providerContext(ctx)
	defer cancel()

	token, err := client.ExchangeCode(ctx, code)
	if err != nil {
		return nil, err
	}
	return s.signInWithProvider(ctx, client, provider, token.AccessToken)
}

// OAuthSignInWithToken signs in with a provider access token obtained by a
// native client, skipping the code exchange.
func (s *IdentityService) OAuthSignInWithToken(ctx context.Context, provider models.Provider, accessToken string) (*models.Identity, error) {
	client, err := s.provider(provider)
	if err != nil {
		return nil, err
	}

	ctx, cancel := s.providerContext(ctx)
	defer cancel()

	return s.signInWithProvider(ctx, client, provider, accessToken)
}

func (s *IdentityService) providerContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.opts.ProviderTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.opts.ProviderTimeout)
}

func (s *IdentityService) signInWithProvider(ctx context.Context, client OAuthProvider, provider models.Provider, accessToken string) (*models.Identity, error) {
	profile, err := client.FetchProfile(ctx, accessToken)
	if err != nil {
		return nil, err
	}
	if profile.Email == "" || !profile.EmailVerified {
		logger.Log.Warnw("oauth profile email not verified", "provider", provider, "provider_id", profile.ID)
		return nil, ErrUnverifiedEmail
	}
	return s.linker.FindOrCreate(ctx, provider, profile)
}

// IssueTokens mints an access and refresh token pair for identity.
func (s *IdentityService) IssueTokens(ctx context.Context, identity *models.Identity) (*models.TokenPair, error) {
	access, err := s.tokens.IssueAccess(ctx, models.AccessTokenPayload{UUID: identity.UUID, Role: identity.Role})
	if err != nil {
		return nil, err
	}
	refresh, err := s.tokens.IssueRefresh(ctx, models.RefreshTokenPayload{UUID: identity.UUID, Role: identity.Role})
	if err != nil {
		return nil, err
	}
	return &models.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// Refresh rotates a refresh token into a new token pair for the same
// identity. The presented token stays valid until it expires.
func (s *IdentityService) Refresh(ctx context.Context, refreshToken string) (*models.TokenPair, error) {
	payload, err := s.tokens.VerifyRefresh(ctx, refreshToken)
	if err != nil {
		logger.Log.Warnw("invalid refresh token", "error", err)
		return nil, err
	}
	return s.IssueTokens(ctx, &models.Identity{UUID: payload.UUID, Role: payload.Role})
}

// IssueCode stores a one-time code redeemable for the tokens of userUUID.
func (s *IdentityService) IssueCode(ctx context.Context, userUUID uuid.UUID) (string, error) {
	for range issueCodeAttempts {
		code, err := randomHex(issueCodeBytes)
		if err != nil {
			return "", err
		}
		err = s.codes.Save(ctx, code, userUUID)
		if errors.Is(err, repositories.ErrUniqueViolation) {
			continue
		}
		if err != nil {
			return "", err
		}
		return code, nil
	}
	return "", fmt.Errorf("issue code: %w", repositories.ErrUniqueViolation)
}

// RedeemIssueCode consumes code and returns the identity it was issued for.
func (s *IdentityService) RedeemIssueCode(ctx context.Context, code string) (*models.Identity, error) {
	userUUID, err := s.codes.Take(ctx, code)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrIssueCodeNotFound
	}
	if err != nil {
		return nil, err
	}

	identity, err := s.userReader.GetIdentityByUUID(ctx, userUUID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	return identity, err
}

// DeleteUser removes a user together with its credential, profile and
// provider links.
func (s *IdentityService) DeleteUser(ctx context.Context, userUUID uuid.UUID) error {
	err := s.userWriter.DeleteByUUID(ctx, userUUID)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrUserNotFound
	}
	if err != nil {
		return err
	}
	logger.Log.Infow("user deleted", "uuid", userUUID)
	return nil
}
