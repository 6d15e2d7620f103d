package account

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-LabReservationService/internal/domain"
	"github.com/m04kA/SMC-LabReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-LabReservationService/pkg/psqlbuilder"
)

const tableName = "account_activation"

var columns = []string{
	"user_id",
	"email",
	"display_name",
	"email_verified",
	"is_initialized",
	"password_changed_at",
	"updated_at",
}

// Repository репозиторий флагов активации аккаунтов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория активации
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByUserID получает запись активации пользователя
func (r *Repository) GetByUserID(ctx context.Context, userID string) (*domain.ActivationRecord, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rec, err := scanRecord(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAccountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - scan record: %w", ErrScanRow, err)
	}

	return rec, nil
}

// Create заводит запись активации; существующая запись не перезаписывается
func (r *Repository) Create(ctx context.Context, rec *domain.ActivationRecord) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableName).
		Columns("user_id", "email", "display_name", "email_verified", "is_initialized").
		Values(rec.UserID, rec.Email, rec.DisplayName, rec.EmailVerified, rec.IsInitialized).
		Suffix("ON CONFLICT (user_id) DO NOTHING").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return nil
}

// MarkEmailVerified выставляет email_verified = true (идемпотентно)
func (r *Repository) MarkEmailVerified(ctx context.Context, userID string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableName).
		Set("email_verified", true).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkEmailVerified - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkEmailVerified - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarkEmailVerified - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAccountNotFound
	}

	return nil
}

// MarkInitialized завершает активацию одним UPDATE:
// is_initialized, email_verified и password_changed_at меняются вместе.
// Условие is_initialized = false гарантирует, что переход выполняется ровно один раз.
func (r *Repository) MarkInitialized(ctx context.Context, userID string) (*domain.ActivationRecord, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableName).
		Set("is_initialized", true).
		Set("email_verified", true).
		Set("password_changed_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.Eq{"is_initialized": false}).
		Suffix("RETURNING user_id, email, display_name, email_verified, is_initialized, password_changed_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: MarkInitialized - build update query: %v", ErrBuildQuery, err)
	}

	rec, err := scanRecord(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAlreadyInitialized
	}
	if err != nil {
		return nil, fmt.Errorf("%w: MarkInitialized - execute update: %w", ErrExecQuery, err)
	}

	return rec, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanRecord(row scanner) (*domain.ActivationRecord, error) {
	var rec domain.ActivationRecord
	var passwordChangedAt sql.NullTime

	err := row.Scan(
		&rec.UserID,
		&rec.Email,
		&rec.DisplayName,
		&rec.EmailVerified,
		&rec.IsInitialized,
		&passwordChangedAt,
		&rec.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if passwordChangedAt.Valid {
		t := passwordChangedAt.Time
		rec.PasswordChangedAt = &t
	}

	return &rec, nil
}
