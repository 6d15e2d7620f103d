package reservation_test

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-LabReservationService/internal/domain"
	"github.com/m04kA/SMC-LabReservationService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-LabReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-LabReservationService/pkg/types"
)

var reservationColumns = []string{
	"id", "resource_id", "resource_name", "reservation_date", "slot_id",
	"user_id", "user_name", "status", "created_at", "cancelled_at",
}

func setup(t *testing.T) (*reservation.Repository, *sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return reservation.NewRepository(db), db, dbMock
}

func TestReservationRepository(t *testing.T) {
	now := time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC)
	date := types.DateString("2026-10-20")

	t.Run("create", func(t *testing.T) {
		repo, _, dbMock := setup(t)

		insertQuery := `INSERT INTO reservations (id,resource_id,resource_name,reservation_date,slot_id,user_id,user_name,status) VALUES ($1,$2,$3,$4,$5,$6,$7,$8) RETURNING created_at`
		dbMock.ExpectQuery(regexp.QuoteMeta(insertQuery)).
			WithArgs(sqlmock.AnyArg(), "pc-01", "Lab PC 01", "2026-10-20", "morning", "u-1", "Kim", "confirmed").
			WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(now))

		created, err := repo.Create(context.Background(), &domain.Reservation{
			ResourceID:   "pc-01",
			ResourceName: "Lab PC 01",
			Date:         date,
			SlotID:       domain.SlotMorning,
			UserID:       "u-1",
			UserName:     "Kim",
			Status:       domain.ReservationConfirmed,
		})
		require.NoError(t, err)
		_, parseErr := uuid.Parse(created.ID)
		assert.NoError(t, parseErr)
		assert.Equal(t, now, created.CreatedAt)
		require.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("create - unique violation", func(t *testing.T) {
		repo, _, dbMock := setup(t)

		dbMock.ExpectQuery(regexp.QuoteMeta("INSERT INTO reservations")).
			WillReturnError(&pq.Error{Code: "23505", Constraint: "uq_reservations_active_slot"})

		_, err := repo.Create(context.Background(), &domain.Reservation{
			ResourceID: "pc-01",
			Date:       date,
			SlotID:     domain.SlotMorning,
			UserID:     "u-2",
			Status:     domain.ReservationConfirmed,
		})
		assert.ErrorIs(t, err, reservation.ErrSlotTaken)
		require.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("create - other error keeps driver error", func(t *testing.T) {
		repo, _, dbMock := setup(t)
		serialization := &pq.Error{Code: "40001"}

		dbMock.ExpectQuery(regexp.QuoteMeta("INSERT INTO reservations")).WillReturnError(serialization)

		_, err := repo.Create(context.Background(), &domain.Reservation{ResourceID: "pc-01", Date: date, SlotID: domain.SlotMorning})
		assert.ErrorIs(t, err, reservation.ErrExecQuery)

		var pqErr *pq.Error
		require.True(t, errors.As(err, &pqErr))
		assert.Equal(t, pq.ErrorCode("40001"), pqErr.Code)
	})

	t.Run("get by id", func(t *testing.T) {
		repo, _, dbMock := setup(t)
		id := uuid.NewString()
		cancelledAt := now.Add(time.Hour)

		rows := sqlmock.NewRows(reservationColumns).
			AddRow(id, "pc-01", "Lab PC 01", "2026-10-20", "evening", "u-1", "Kim", "cancelled", now, cancelledAt)
		dbMock.ExpectQuery(regexp.QuoteMeta("FROM reservations WHERE id = $1")).
			WithArgs(id).
			WillReturnRows(rows)

		res, err := repo.GetByID(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, id, res.ID)
		assert.Equal(t, date, res.Date)
		assert.Equal(t, domain.SlotEvening, res.SlotID)
		assert.Equal(t, domain.ReservationCancelled, res.Status)
		require.NotNil(t, res.CancelledAt)
		assert.Equal(t, cancelledAt, *res.CancelledAt)
		require.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("get by id - no rows", func(t *testing.T) {
		repo, _, dbMock := setup(t)
		id := uuid.NewString()

		dbMock.ExpectQuery(regexp.QuoteMeta("FROM reservations WHERE id = $1")).
			WithArgs(id).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.GetByID(context.Background(), id)
		assert.ErrorIs(t, err, reservation.ErrReservationNotFound)
		require.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("get by id - malformed id skips query", func(t *testing.T) {
		repo, _, dbMock := setup(t)

		_, err := repo.GetByID(context.Background(), "not-a-uuid")
		assert.ErrorIs(t, err, reservation.ErrReservationNotFound)
		require.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("find active by slot locks rows inside transaction", func(t *testing.T) {
		repo, db, dbMock := setup(t)

		dbMock.ExpectBegin()
		dbMock.ExpectQuery(regexp.QuoteMeta("WHERE resource_id = $1 AND reservation_date = $2 AND slot_id = $3 AND status = $4 FOR UPDATE")).
			WithArgs("pc-01", "2026-10-20", "morning", "confirmed").
			WillReturnRows(sqlmock.NewRows(reservationColumns))
		dbMock.ExpectCommit()

		tx, err := dbmetrics.Wrap(db, nil, "test").BeginTx(context.Background(), nil)
		require.NoError(t, err)
		txCtx := dbmetrics.WithTx(context.Background(), tx)

		list, err := repo.FindActiveBySlot(txCtx, "pc-01", date, domain.SlotMorning)
		require.NoError(t, err)
		assert.Empty(t, list)
		require.NoError(t, tx.Commit())
		require.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("find active by slot without transaction", func(t *testing.T) {
		repo, _, dbMock := setup(t)

		rows := sqlmock.NewRows(reservationColumns).
			AddRow(uuid.NewString(), "pc-01", "Lab PC 01", "2026-10-20", "morning", "u-1", "Kim", "confirmed", now, nil)
		dbMock.ExpectQuery(`AND status = \$4$`).
			WithArgs("pc-01", "2026-10-20", "morning", "confirmed").
			WillReturnRows(rows)

		list, err := repo.FindActiveBySlot(context.Background(), "pc-01", date, domain.SlotMorning)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Nil(t, list[0].CancelledAt)
		require.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("get active by resource in range", func(t *testing.T) {
		repo, _, dbMock := setup(t)

		rows := sqlmock.NewRows(reservationColumns).
			AddRow(uuid.NewString(), "pc-01", "Lab PC 01", "2026-10-19", "morning", "u-1", "Kim", "confirmed", now, nil).
			AddRow(uuid.NewString(), "pc-01", "Lab PC 01", "2026-10-25", "evening", "u-2", "Lee", "confirmed", now, nil)
		dbMock.ExpectQuery(regexp.QuoteMeta("WHERE resource_id = $1 AND reservation_date >= $2 AND reservation_date <= $3 AND status = $4 ORDER BY reservation_date ASC")).
			WithArgs("pc-01", "2026-10-19", "2026-10-25", "confirmed").
			WillReturnRows(rows)

		list, err := repo.GetActiveByResource(context.Background(), "pc-01", "2026-10-19", "2026-10-25")
		require.NoError(t, err)
		assert.Len(t, list, 2)
		require.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("get by user id", func(t *testing.T) {
		repo, _, dbMock := setup(t)

		rows := sqlmock.NewRows(reservationColumns).
			AddRow(uuid.NewString(), "pc-02", "Lab PC 02", "2026-10-21", "afternoon", "u-1", "Kim", "confirmed", now, nil)
		dbMock.ExpectQuery(regexp.QuoteMeta("FROM reservations WHERE user_id = $1 ORDER BY reservation_date ASC, created_at ASC")).
			WithArgs("u-1").
			WillReturnRows(rows)

		list, err := repo.GetByUserID(context.Background(), "u-1")
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "Lab PC 02", list[0].ResourceName)
		require.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("get by user id - query error", func(t *testing.T) {
		repo, _, dbMock := setup(t)

		dbMock.ExpectQuery(regexp.QuoteMeta("FROM reservations WHERE user_id = $1")).
			WillReturnError(errors.New("connection reset"))

		_, err := repo.GetByUserID(context.Background(), "u-1")
		assert.ErrorIs(t, err, reservation.ErrExecQuery)
	})

	t.Run("cancel", func(t *testing.T) {
		repo, _, dbMock := setup(t)
		id := uuid.NewString()

		updateQuery := `UPDATE reservations SET status = $1, cancelled_at = NOW() WHERE id = $2 AND status = $3`
		dbMock.ExpectExec(regexp.QuoteMeta(updateQuery)).
			WithArgs("cancelled", id, "confirmed").
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.Cancel(context.Background(), id))
		require.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("cancel - not active", func(t *testing.T) {
		repo, _, dbMock := setup(t)

		dbMock.ExpectExec(regexp.QuoteMeta("UPDATE reservations")).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Cancel(context.Background(), uuid.NewString())
		assert.ErrorIs(t, err, reservation.ErrNotActive)
	})

	t.Run("count active", func(t *testing.T) {
		repo, _, dbMock := setup(t)

		dbMock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM reservations WHERE status <> $1")).
			WithArgs("cancelled").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))

		count, err := repo.CountActive(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 5, count)
		require.NoError(t, dbMock.ExpectationsWereMet())
	})
}
