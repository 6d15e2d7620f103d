package account_test

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-LabReservationService/internal/domain"
	"github.com/m04kA/SMC-LabReservationService/internal/infra/storage/account"
)

func TestAccountRepository(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := account.NewRepository(db)
	now := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	cols := []string{"user_id", "email", "display_name", "email_verified", "is_initialized", "password_changed_at", "updated_at"}

	t.Run("get by user id", func(t *testing.T) {
		dbMock.ExpectQuery(regexp.QuoteMeta("FROM account_activation WHERE user_id = $1")).
			WithArgs("u-1").
			WillReturnRows(sqlmock.NewRows(cols).AddRow("u-1", "kim@lab.edu", "Kim", true, false, nil, now))

		rec, err := repo.GetByUserID(context.Background(), "u-1")
		require.NoError(t, err)
		assert.Equal(t, domain.ActivationEmailVerified, rec.State())
		assert.Nil(t, rec.PasswordChangedAt)
		require.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("get by user id - no rows", func(t *testing.T) {
		dbMock.ExpectQuery(regexp.QuoteMeta("FROM account_activation WHERE user_id = $1")).
			WithArgs("u-404").
			WillReturnError(sql.ErrNoRows)

		_, err := repo.GetByUserID(context.Background(), "u-404")
		assert.ErrorIs(t, err, account.ErrAccountNotFound)
	})

	t.Run("create ignores existing record", func(t *testing.T) {
		dbMock.ExpectExec(regexp.QuoteMeta("INSERT INTO account_activation (user_id,email,display_name,email_verified,is_initialized) VALUES ($1,$2,$3,$4,$5) ON CONFLICT (user_id) DO NOTHING")).
			WithArgs("u-2", "lee@lab.edu", "Lee", false, false).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Create(context.Background(), &domain.ActivationRecord{UserID: "u-2", Email: "lee@lab.edu", DisplayName: "Lee"})
		require.NoError(t, err)
		require.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("mark email verified", func(t *testing.T) {
		dbMock.ExpectExec(regexp.QuoteMeta("UPDATE account_activation SET email_verified = $1, updated_at = NOW() WHERE user_id = $2")).
			WithArgs(true, "u-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.MarkEmailVerified(context.Background(), "u-1"))
	})

	t.Run("mark email verified - unknown user", func(t *testing.T) {
		dbMock.ExpectExec(regexp.QuoteMeta("UPDATE account_activation")).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.MarkEmailVerified(context.Background(), "u-404"), account.ErrAccountNotFound)
	})

	t.Run("mark initialized sets all flags in one statement", func(t *testing.T) {
		updateQuery := "UPDATE account_activation SET is_initialized = $1, email_verified = $2, password_changed_at = NOW(), updated_at = NOW() WHERE user_id = $3 AND is_initialized = $4 RETURNING"
		dbMock.ExpectQuery(regexp.QuoteMeta(updateQuery)).
			WithArgs(true, true, "u-1", false).
			WillReturnRows(sqlmock.NewRows(cols).AddRow("u-1", "kim@lab.edu", "Kim", true, true, now, now))

		rec, err := repo.MarkInitialized(context.Background(), "u-1")
		require.NoError(t, err)
		assert.Equal(t, domain.ActivationInitialized, rec.State())
		require.NotNil(t, rec.PasswordChangedAt)
		require.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("mark initialized twice", func(t *testing.T) {
		dbMock.ExpectQuery(regexp.QuoteMeta("UPDATE account_activation SET is_initialized")).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.MarkInitialized(context.Background(), "u-1")
		assert.ErrorIs(t, err, account.ErrAlreadyInitialized)
	})
}
