package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-identity/internal/models"
)

// UserReadRepository reads permanent users and their credentials.
type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// ExistsByEmail reports whether a permanent user owns email.
func (r *UserReadRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`

	var exists bool
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &exists, query, email)
	logQuery(query, []any{email}, exists, err)

	return exists, err
}

// ExistsByLoginID reports whether a credential uses loginID.
func (r *UserReadRepository) ExistsByLoginID(ctx context.Context, loginID string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM credentials WHERE login_id = $1)`

	var exists bool
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &exists, query, loginID)
	logQuery(query, []any{loginID}, exists, err)

	return exists, err
}

// GetLocalAccount returns the identity and password hash bound to loginID.
func (r *UserReadRepository) GetLocalAccount(ctx context.Context, loginID string) (*models.LocalAccount, error) {
	const query = `
		SELECT u.uuid, u.role, c.password_hash
		FROM credentials c
		JOIN users u ON u.id = c.user_id
		WHERE c.login_id = $1
	`

	var account models.LocalAccount
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &account, query, loginID)
	logQuery(query, []any{loginID}, account.Identity, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// GetIdentityByUUID returns the identity of the user with the given public id.
func (r *UserReadRepository) GetIdentityByUUID(ctx context.Context, id uuid.UUID) (*models.Identity, error) {
	const query = `SELECT uuid, role FROM users WHERE uuid = $1`

	var identity models.Identity
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &identity, query, id)
	logQuery(query, []any{id}, identity, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &identity, nil
}

// UserWriteRepository creates and removes permanent users. Multi-row writes
// are expected to run inside TxManager.WithTx.
type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// CreateUser inserts a user with a fresh public UUID.
func (r *UserWriteRepository) CreateUser(ctx context.Context, email *string, role models.Role) (*models.UserDB, error) {
	const query = `
		INSERT INTO users (uuid, email, role, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id, uuid, email, role, created_at
	`
	args := []any{uuid.New(), email, role}

	var user models.UserDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &user, query, args...)
	logQuery(query, args, user.ID, err)

	if err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// CreateCredential attaches local credentials to a user.
func (r *UserWriteRepository) CreateCredential(ctx context.Context, userID int64, loginID, passwordHash string) error {
	const query = `
		INSERT INTO credentials (user_id, login_id, password_hash, created_at)
		VALUES ($1, $2, $3, NOW())
	`

	_, err := executor(ctx, r.db).ExecContext(ctx, query, userID, loginID, passwordHash)
	logQuery(query, []any{userID, loginID, "***"}, nil, err)

	return translate(err)
}

// CreateProfile attaches a profile to a user.
func (r *UserWriteRepository) CreateProfile(ctx context.Context, userID int64, nickname string, avatar *string) error {
	const query = `
		INSERT INTO profiles (user_id, nickname, avatar, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
	`
	args := []any{userID, nickname, avatar}

	_, err := executor(ctx, r.db).ExecContext(ctx, query, args...)
	logQuery(query, args, nil, err)

	return translate(err)
}

// DeleteByUUID removes a user; credentials, profile and OAuth accounts cascade.
func (r *UserWriteRepository) DeleteByUUID(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM users WHERE uuid = $1`

	res, err := executor(ctx, r.db).ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, []any{id}, rowsAffected, err)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
