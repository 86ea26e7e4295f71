package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-identity/internal/models"
)

//go:generate mockgen -source=contracts.go -destination=mocks.go -package=services

// TxManager runs fn inside one store transaction.
type TxManager interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// PasswordHasher hashes and checks passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// UserReader reads permanent users.
type UserReader interface {
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByLoginID(ctx context.Context, loginID string) (bool, error)
	GetLocalAccount(ctx context.Context, loginID string) (*models.LocalAccount, error)
	GetIdentityByUUID(ctx context.Context, id uuid.UUID) (*models.Identity, error)
}

// UserWriter creates and deletes permanent users.
type UserWriter interface {
	CreateUser(ctx context.Context, email *string, role models.Role) (*models.UserDB, error)
	CreateCredential(ctx context.Context, userID int64, loginID, passwordHash string) error
	CreateProfile(ctx context.Context, userID int64, nickname string, avatar *string) error
	DeleteByUUID(ctx context.Context, id uuid.UUID) error
}

// PendingReader reads pending registrations.
type PendingReader interface {
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	GetByEmailForUpdate(ctx context.Context, email string) (*models.PendingRegistrationDB, error)
}

// PendingWriter mutates pending registrations.
type PendingWriter interface {
	Create(ctx context.Context, p *models.PendingRegistrationDB) error
	UpdateCode(ctx context.Context, id int64, code string, updatedAt time.Time) error
	DeleteByEmail(ctx context.Context, email string) error
}

// OAuthAccountStore reads and creates provider links.
type OAuthAccountStore interface {
	GetIdentity(ctx context.Context, provider models.Provider, providerID string) (*models.Identity, error)
	Create(ctx context.Context, userID int64, provider models.Provider, providerID string, email *string) error
}

// IssueCodeStore keeps one-time issue codes.
type IssueCodeStore interface {
	Save(ctx context.Context, code string, userUUID uuid.UUID) error
	Take(ctx context.Context, code string) (uuid.UUID, error)
}

// VerificationTokens signs and checks email verification tokens.
type VerificationTokens interface {
	IssueEmailVerification(ctx context.Context, p models.EmailVerificationPayload) (string, error)
	VerifyEmailVerification(ctx context.Context, token string) (*models.EmailVerificationPayload, error)
}

// SessionTokens signs access and refresh tokens and checks refresh tokens.
type SessionTokens interface {
	IssueAccess(ctx context.Context, p models.AccessTokenPayload) (string, error)
	IssueRefresh(ctx context.Context, p models.RefreshTokenPayload) (string, error)
	VerifyRefresh(ctx context.Context, token string) (*models.RefreshTokenPayload, error)
}

// MailDispatcher delivers verification links.
type MailDispatcher interface {
	SendVerificationLink(ctx context.Context, email, link string) error
}

// OAuthProvider is implemented once per identity provider.
type OAuthProvider interface {
	AuthorizationURL(state string) string
	ExchangeCode(ctx context.Context, code string) (*models.OAuthToken, error)
	FetchProfile(ctx context.Context, accessToken string) (*models.OAuthProfile, error)
}

// PendingManager drives the pending registration state machine.
type PendingManager interface {
	CreatePending(ctx context.Context, email, loginID, password, nickname string) (string, error)
	Resend(ctx context.Context, email string) (string, error)
	Verify(ctx context.Context, token string) (uuid.UUID, error)
	Abandon(ctx context.Context, email string) error
}

// AccountLinker resolves a provider profile to a permanent identity.
type AccountLinker interface {
	FindOrCreate(ctx context.Context, provider models.Provider, profile *models.OAuthProfile) (*models.Identity, error)
}
