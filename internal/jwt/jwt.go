package jwt

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/mail"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-identity/internal/models"
)

// Kind selects the key and payload schema of a token.
type Kind string

const (
	KindAccess            Kind = "access"
	KindRefresh           Kind = "refresh"
	KindEmailVerification Kind = "email_verification"
)

const minCodeLen = 6

var (
	ErrInvalidToken     = errors.New("invalid token")
	ErrExpiredToken     = errors.New("token expired")
	ErrMalformedPayload = errors.New("malformed token payload")
	ErrUnknownKind      = errors.New("no key configured for token kind")
)

// claims is the wire form shared by all kinds; the audience carries the kind.
type claims struct {
	jwt.RegisteredClaims
	UUID  string `json:"uuid,omitempty"`
	Role  string `json:"role,omitempty"`
	Email string `json:"email,omitempty"`
	Code  string `json:"code,omitempty"`
}

// JWT issues and verifies access, refresh and email verification tokens,
// each kind with its own key and lifetime. It holds no mutable state.
type JWT struct {
	keys   map[Kind]*Key
	issuer string
	now    func() time.Time
}

// Opt configures a JWT.
type Opt func(*JWT)

// WithKey registers the key used to sign and verify tokens of kind.
func WithKey(kind Kind, key *Key) Opt {
	return func(j *JWT) { j.keys[kind] = key }
}

// WithIssuer sets the iss claim.
func WithIssuer(issuer string) Opt {
	return func(j *JWT) { j.issuer = issuer }
}

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Opt {
	return func(j *JWT) { j.now = now }
}

// New creates a JWT.
func New(opts ...Opt) *JWT {
	j := &JWT{
		keys:   make(map[Kind]*Key, 3),
		issuer: "gw-identity",
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Issue signs payload as a token of kind valid for ttl. A zero ttl uses the
// key's default lifetime. payload must match kind:
// models.AccessTokenPayload, models.RefreshTokenPayload or
// models.EmailVerificationPayload.
func (j *JWT) Issue(ctx context.Context, kind Kind, payload any, ttl time.Duration) (string, error) {
	key, ok := j.keys[kind]
	if !ok || key.signKey == nil {
		return "", fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
	if ttl == 0 {
		ttl = key.ttl
	}

	c, err := payloadClaims(kind, payload)
	if err != nil {
		return "", err
	}

	now := j.now()
	c.RegisteredClaims = jwt.RegisteredClaims{
		Issuer:    j.issuer,
		Audience:  jwt.ClaimStrings{string(kind)},
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		ID:        uuid.NewString(),
	}

	return jwt.NewWithClaims(key.method, c).SignedString(key.signKey)
}

// Verify checks signature, algorithm, audience and expiry of token and returns
// its payload typed according to kind.
func (j *JWT) Verify(ctx context.Context, kind Kind, token string) (any, error) {
	key, ok := j.keys[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}

	c := &claims{}
	_, err := jwt.ParseWithClaims(token, c,
		func(t *jwt.Token) (interface{}, error) { return key.verifyKey, nil },
		jwt.WithValidMethods([]string{key.method.Alg()}),
		jwt.WithAudience(string(kind)),
		jwt.WithIssuer(j.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(j.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	return claimsPayload(kind, c)
}

// IssueAccess signs an access token with the configured lifetime.
func (j *JWT) IssueAccess(ctx context.Context, p models.AccessTokenPayload) (string, error) {
	return j.Issue(ctx, KindAccess, p, 0)
}

// IssueRefresh signs a refresh token with the configured lifetime.
func (j *JWT) IssueRefresh(ctx context.Context, p models.RefreshTokenPayload) (string, error) {
	return j.Issue(ctx, KindRefresh, p, 0)
}

// IssueEmailVerification signs an email verification token with the configured lifetime.
func (j *JWT) IssueEmailVerification(ctx context.Context, p models.EmailVerificationPayload) (string, error) {
	return j.Issue(ctx, KindEmailVerification, p, 0)
}

// VerifyAccess verifies an access token.
func (j *JWT) VerifyAccess(ctx context.Context, token string) (*models.AccessTokenPayload, error) {
	p, err := j.Verify(ctx, KindAccess, token)
	if err != nil {
		return nil, err
	}
	access := p.(models.AccessTokenPayload)
	return &access, nil
}

// VerifyRefresh verifies a refresh token.
func (j *JWT) VerifyRefresh(ctx context.Context, token string) (*models.RefreshTokenPayload, error) {
	p, err := j.Verify(ctx, KindRefresh, token)
	if err != nil {
		return nil, err
	}
	refresh := p.(models.RefreshTokenPayload)
	return &refresh, nil
}

// VerifyEmailVerification verifies an email verification token.
func (j *JWT) VerifyEmailVerification(ctx context.Context, token string) (*models.EmailVerificationPayload, error) {
	p, err := j.Verify(ctx, KindEmailVerification, token)
	if err != nil {
		return nil, err
	}
	email := p.(models.EmailVerificationPayload)
	return &email, nil
}

func payloadClaims(kind Kind, payload any) (*claims, error) {
	var c *claims
	switch p := payload.(type) {
	case models.AccessTokenPayload:
		if kind == KindAccess {
			c = &claims{UUID: p.UUID.String(), Role: string(p.Role)}
		}
	case models.RefreshTokenPayload:
		if kind == KindRefresh {
			c = &claims{UUID: p.UUID.String(), Role: string(p.Role)}
		}
	case models.EmailVerificationPayload:
		if kind == KindEmailVerification {
			c = &claims{Email: p.Email, Code: p.Code}
		}
	}
	if c == nil {
		return nil, fmt.Errorf("%w: %T cannot be issued as %s", ErrMalformedPayload, payload, kind)
	}
	if _, err := claimsPayload(kind, c); err != nil {
		return nil, err
	}
	return c, nil
}

func claimsPayload(kind Kind, c *claims) (any, error) {
	switch kind {
	case KindAccess, KindRefresh:
		id, err := uuid.Parse(c.UUID)
		if err != nil || id == uuid.Nil {
			return nil, fmt.Errorf("%w: uuid", ErrMalformedPayload)
		}
		role := models.Role(c.Role)
		if !role.Valid() {
			return nil, fmt.Errorf("%w: role", ErrMalformedPayload)
		}
		if kind == KindAccess {
			return models.AccessTokenPayload{UUID: id, Role: role}, nil
		}
		return models.RefreshTokenPayload{UUID: id, Role: role}, nil
	case KindEmailVerification:
		if _, err := mail.ParseAddress(c.Email); err != nil {
			return nil, fmt.Errorf("%w: email", ErrMalformedPayload)
		}
		if len(c.Code) < minCodeLen {
			return nil, fmt.Errorf("%w: code", ErrMalformedPayload)
		}
		return models.EmailVerificationPayload{Email: c.Email, Code: c.Code}, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
}

// GetTokenFromRequest extracts the token string from the Authorization header
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", errors.New("authorization header missing")
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", errors.New("invalid authorization header format")
	}

	return parts[1], nil
}
