package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-LabReservationService/internal/domain"
	"github.com/m04kA/SMC-LabReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-LabReservationService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-LabReservationService/pkg/types"
)

const (
	tableName = "reservations"

	pqUniqueViolation pq.ErrorCode = "23505"
)

var columns = []string{
	"id",
	"resource_id",
	"resource_name",
	"reservation_date",
	"slot_id",
	"user_id",
	"user_name",
	"status",
	"created_at",
	"cancelled_at",
}

// Repository репозиторий для работы с бронями компьютеров
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория броней
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет подтвержденную бронь
// Если в контексте передана активная транзакция, использует её.
// Частичный уникальный индекс по (resource_id, reservation_date, slot_id) WHERE status = 'confirmed'
// закрывает гонку между проверкой и вставкой: проигравший получает ErrSlotTaken.
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if res.ID == "" {
		res.ID = uuid.NewString()
	}

	query, args, err := psqlbuilder.Insert(tableName).
		Columns(
			"id",
			"resource_id",
			"resource_name",
			"reservation_date",
			"slot_id",
			"user_id",
			"user_name",
			"status",
		).
		Values(
			res.ID,
			res.ResourceID,
			res.ResourceName,
			res.Date,
			res.SlotID,
			res.UserID,
			res.UserName,
			res.Status,
		).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&res.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: resource=%s date=%s slot=%s", ErrSlotTaken, res.ResourceID, res.Date, res.SlotID)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return res, nil
}

// GetByID получает бронь по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	// id хранится как UUID, невалидная строка заведомо не найдется
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrReservationNotFound
	}

	query, args, err := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	res, err := scanReservation(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %w", ErrScanRow, err)
	}

	return res, nil
}

// FindActiveBySlot возвращает подтвержденные брони на конкретный слот
// Внутри транзакции строки блокируются (FOR UPDATE)
func (r *Repository) FindActiveBySlot(ctx context.Context, resourceID string, date types.DateString, slotID domain.SlotID) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"resource_id": resourceID}).
		Where(squirrel.Eq{"reservation_date": date}).
		Where(squirrel.Eq{"slot_id": slotID}).
		Where(squirrel.Eq{"status": domain.ReservationConfirmed})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindActiveBySlot - build select query: %v", ErrBuildQuery, err)
	}

	return r.query(ctx, executor, "FindActiveBySlot", query, args)
}

// GetByUserID получает все брони пользователя (включая отмененные)
// Порядок слотов внутри дня выставляет вызывающий код (domain.SortReservations)
func (r *Repository) GetByUserID(ctx context.Context, userID string) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("reservation_date ASC", "created_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	return r.query(ctx, executor, "GetByUserID", query, args)
}

// GetActiveByResource получает подтвержденные брони компьютера в диапазоне дат [from, to]
func (r *Repository) GetActiveByResource(ctx context.Context, resourceID string, from, to types.DateString) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"resource_id": resourceID}).
		Where(squirrel.GtOrEq{"reservation_date": from}).
		Where(squirrel.LtOrEq{"reservation_date": to}).
		Where(squirrel.Eq{"status": domain.ReservationConfirmed}).
		OrderBy("reservation_date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByResource - build select query: %v", ErrBuildQuery, err)
	}

	return r.query(ctx, executor, "GetActiveByResource", query, args)
}

// GetAll получает все брони (для администратора)
func (r *Repository) GetAll(ctx context.Context) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(tableName).
		OrderBy("reservation_date ASC", "created_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	return r.query(ctx, executor, "GetAll", query, args)
}

// Cancel переводит подтвержденную бронь в cancelled
// Возвращает ErrNotActive, если бронь отсутствует или уже отменена
func (r *Repository) Cancel(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableName).
		Set("status", domain.ReservationCancelled).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": domain.ReservationConfirmed}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrNotActive
	}

	return nil
}

// CountActive количество подтвержденных броней
func (r *Repository) CountActive(ctx context.Context) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From(tableName).
		Where(squirrel.NotEq{"status": domain.ReservationCancelled}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountActive - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountActive - scan count: %w", ErrScanRow, err)
	}

	return count, nil
}

func (r *Repository) query(ctx context.Context, executor DBExecutor, op, query string, args []interface{}) ([]*domain.Reservation, error) {
	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %w", ErrExecQuery, op, err)
	}
	defer rows.Close()

	list := make([]*domain.Reservation, 0)
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %w", ErrScanRow, op, err)
		}
		list = append(list, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %w", ErrScanRow, op, err)
	}

	return list, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanReservation(row scanner) (*domain.Reservation, error) {
	var res domain.Reservation
	var cancelledAt sql.NullTime

	err := row.Scan(
		&res.ID,
		&res.ResourceID,
		&res.ResourceName,
		&res.Date,
		&res.SlotID,
		&res.UserID,
		&res.UserName,
		&res.Status,
		&res.CreatedAt,
		&cancelledAt,
	)
	if err != nil {
		return nil, err
	}

	if cancelledAt.Valid {
		t := cancelledAt.Time
		res.CancelledAt = &t
	}

	return &res, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation
}
