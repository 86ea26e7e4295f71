package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-identity/internal/models"
)

// OAuthAccountRepository stores provider linkages.
type OAuthAccountRepository struct {
	db *sqlx.DB
}

func NewOAuthAccountRepository(db *sqlx.DB) *OAuthAccountRepository {
	return &OAuthAccountRepository{db: db}
}

// GetIdentity returns the user linked to (provider, providerID).
func (r *OAuthAccountRepository) GetIdentity(ctx context.Context, provider models.Provider, providerID string) (*models.Identity, error) {
	const query = `
		SELECT u.uuid, u.role
		FROM oauth_accounts a
		JOIN users u ON u.id = a.user_id
		WHERE a.provider = $1 AND a.provider_id = $2
	`
	args := []any{provider, providerID}

	var identity models.Identity
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &identity, query, args...)
	logQuery(query, args, identity, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &identity, nil
}

// Create links userID to (provider, providerID). A concurrent link of the
// same pair yields ErrUniqueViolation.
func (r *OAuthAccountRepository) Create(ctx context.Context, userID int64, provider models.Provider, providerID string, email *string) error {
	const query = `
		INSERT INTO oauth_accounts (user_id, provider, provider_id, email, created_at)
		VALUES ($1, $2, $3, $4, NOW())
	`
	args := []any{userID, provider, providerID, email}

	_, err := executor(ctx, r.db).ExecContext(ctx, query, args...)
	logQuery(query, args, nil, err)

	return translate(err)
}
