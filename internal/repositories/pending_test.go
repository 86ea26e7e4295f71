package repositories

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sbilibin2017/gw-identity/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pendingColumns = []string{"id", "email", "login_id", "nickname", "password_hash", "code", "resend_count", "created_at", "updated_at"}

func TestPendingReadRepository_GetByEmailForUpdate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPendingReadRepository(db)
	now := time.Now().UTC()

	t.Run("outside transaction does not lock", func(t *testing.T) {
		mock.ExpectQuery(`FROM pending_registrations\s+WHERE email = \$1\s*$`).
			WithArgs("a@x.com").
			WillReturnRows(sqlmock.NewRows(pendingColumns).
				AddRow(int64(1), "a@x.com", "a@x.com", "a", "hash", "code1234", 2, now, now))

		p, err := repo.GetByEmailForUpdate(context.Background(), "a@x.com")
		require.NoError(t, err)
		assert.Equal(t, int64(1), p.ID)
		assert.Equal(t, "code1234", p.Code)
		assert.Equal(t, 2, p.ResendCount)
	})

	t.Run("inside transaction locks the row", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(`FOR UPDATE`).
			WithArgs("b@x.com").
			WillReturnError(sql.ErrNoRows)
		mock.ExpectRollback()

		err := NewTxManager(db, 0).WithTx(context.Background(), func(ctx context.Context) error {
			_, err := repo.GetByEmailForUpdate(ctx, "b@x.com")
			return err
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPendingReadRepository_ExistsByEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPendingReadRepository(db)

	mock.ExpectQuery("FROM pending_registrations WHERE email").
		WithArgs("a@x.com").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.ExistsByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPendingWriteRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPendingWriteRepository(db)
	now := time.Now().UTC()
	p := &models.PendingRegistrationDB{
		Email: "a@x.com", LoginID: "a@x.com", Nickname: "a",
		PasswordHash: "hash", Code: "code1234", CreatedAt: now,
	}

	mock.ExpectQuery("INSERT INTO pending_registrations").
		WithArgs("a@x.com", "a@x.com", "a", "hash", "code1234", now).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(42)))
	mock.ExpectQuery("INSERT INTO pending_registrations").
		WillReturnError(&pgconn.PgError{Code: "23505"})

	require.NoError(t, repo.Create(context.Background(), p))
	assert.Equal(t, int64(42), p.ID)

	err := repo.Create(context.Background(), &models.PendingRegistrationDB{Email: "a@x.com"})
	assert.ErrorIs(t, err, ErrUniqueViolation)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPendingWriteRepository_UpdateCode(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPendingWriteRepository(db)
	now := time.Now().UTC()

	mock.ExpectExec("UPDATE pending_registrations").
		WithArgs(int64(1), "newcode1", now).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE pending_registrations").
		WithArgs(int64(2), "newcode2", now).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.UpdateCode(context.Background(), 1, "newcode1", now))
	assert.ErrorIs(t, repo.UpdateCode(context.Background(), 2, "newcode2", now), ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPendingWriteRepository_DeleteByEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPendingWriteRepository(db)

	mock.ExpectExec("DELETE FROM pending_registrations").
		WithArgs("gone@x.com").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.DeleteByEmail(context.Background(), "gone@x.com"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
