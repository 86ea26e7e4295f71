package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-identity/internal/models"
)

// PendingReadRepository reads pending registrations.
type PendingReadRepository struct {
	db *sqlx.DB
}

func NewPendingReadRepository(db *sqlx.DB) *PendingReadRepository {
	return &PendingReadRepository{db: db}
}

// ExistsByEmail reports whether a registration for email awaits confirmation.
func (r *PendingReadRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM pending_registrations WHERE email = $1)`

	var exists bool
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &exists, query, email)
	logQuery(query, []any{email}, exists, err)

	return exists, err
}

// GetByEmailForUpdate loads the registration for email and, inside a
// transaction, locks it until commit.
func (r *PendingReadRepository) GetByEmailForUpdate(ctx context.Context, email string) (*models.PendingRegistrationDB, error) {
	query := `
		SELECT id, email, login_id, nickname, password_hash, code, resend_count, created_at, updated_at
		FROM pending_registrations
		WHERE email = $1
	`
	if GetTxFromContext(ctx) != nil {
		query += ` FOR UPDATE`
	}

	var pending models.PendingRegistrationDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &pending, query, email)
	logQuery(query, []any{email}, pending.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &pending, nil
}

// PendingWriteRepository mutates pending registrations.
type PendingWriteRepository struct {
	db *sqlx.DB
}

func NewPendingWriteRepository(db *sqlx.DB) *PendingWriteRepository {
	return &PendingWriteRepository{db: db}
}

// Create inserts a new pending registration. A registration already pending
// for the same email or login id yields ErrUniqueViolation.
func (r *PendingWriteRepository) Create(ctx context.Context, p *models.PendingRegistrationDB) error {
	const query = `
		INSERT INTO pending_registrations
			(email, login_id, nickname, password_hash, code, resend_count, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, 0, $6, $6)
		RETURNING id
	`

	err := sqlx.GetContext(ctx, executor(ctx, r.db), &p.ID, query,
		p.Email, p.LoginID, p.Nickname, p.PasswordHash, p.Code, p.CreatedAt)
	logQuery(query, []any{p.Email, p.LoginID, p.Nickname, "***", "***", p.CreatedAt}, p.ID, err)

	return translate(err)
}

// UpdateCode replaces the verification code, bumps the resend counter and
// stamps updatedAt.
func (r *PendingWriteRepository) UpdateCode(ctx context.Context, id int64, code string, updatedAt time.Time) error {
	const query = `
		UPDATE pending_registrations
		SET code = $2, resend_count = resend_count + 1, updated_at = $3
		WHERE id = $1
	`

	res, err := executor(ctx, r.db).ExecContext(ctx, query, id, code, updatedAt)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, []any{id, "***", updatedAt}, rowsAffected, err)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteByEmail removes the registration for email. Deleting a missing
// registration is not an error.
func (r *PendingWriteRepository) DeleteByEmail(ctx context.Context, email string) error {
	const query = `DELETE FROM pending_registrations WHERE email = $1`

	res, err := executor(ctx, r.db).ExecContext(ctx, query, email)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, []any{email}, rowsAffected, err)

	return err
}
