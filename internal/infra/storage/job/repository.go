package job

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/psqlbuilder"
)

var jobColumns = []string{
	"id",
	"business_id",
	"customer_id",
	"scheduled_at",
	"has_time",
	"duration_minutes",
	"status",
	"total_price",
	"notes",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с заказами
// Ошибки драйвера оборачиваются через %w, чтобы менеджер транзакций видел конфликт сериализации
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория заказов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый заказ
// Если в контексте передана активная транзакция, использует её
func (r *Repository) Create(ctx context.Context, job *domain.Job) (*domain.Job, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("jobs").
		Columns(
			"business_id",
			"customer_id",
			"scheduled_at",
			"has_time",
			"duration_minutes",
			"status",
			"total_price",
			"notes",
		).
		Values(
			job.BusinessID,
			job.CustomerID,
			job.ScheduledAt,
			job.HasTime,
			job.DurationMinutes,
			job.Status,
			job.TotalPrice,
			job.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&job.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	job.CreatedAt = createdAt.Time
	job.UpdatedAt = updatedAt.Time

	return job, nil
}

// GetByID получает заказ бизнеса по ID
func (r *Repository) GetByID(ctx context.Context, businessID, id int64) (*domain.Job, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(jobColumns...).
		From("jobs").
		Where(squirrel.Eq{"id": id, "business_id": businessID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	job, err := scanJob(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrJobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan job: %v", ErrScanRow, err)
	}

	return job, nil
}

// ListScheduledInRange возвращает запланированные заказы бизнеса с началом в [from, to)
// Внутри транзакции строки блокируются (FOR UPDATE), чтобы параллельное бронирование ждало
func (r *Repository) ListScheduledInRange(ctx context.Context, businessID int64, from, to time.Time) ([]*domain.Job, error) {
	selectBuilder := psqlbuilder.Select(jobColumns...).
		From("jobs").
		Where(squirrel.Eq{"business_id": businessID, "status": domain.JobStatusScheduled}).
		Where(squirrel.GtOrEq{"scheduled_at": from}).
		Where(squirrel.Lt{"scheduled_at": to}).
		OrderBy("scheduled_at ASC", "id ASC")

	return r.listScheduled(ctx, "ListScheduledInRange", selectBuilder)
}

// ListScheduledOverlapping возвращает запланированные заказы бизнеса, пересекающиеся с окном
// Учитываются и заказы, начавшиеся до окна (например, накануне вечером) и продолжающиеся в нём
// Нижняя граница по scheduled_at ограничена максимальной длительностью услуги
func (r *Repository) ListScheduledOverlapping(ctx context.Context, businessID int64, window domain.Interval) ([]*domain.Job, error) {
	earliest := window.Start.Add(-time.Duration(domain.MaxServiceDurationMinutes) * time.Minute)

	selectBuilder := psqlbuilder.Select(jobColumns...).
		From("jobs").
		Where(squirrel.Eq{"business_id": businessID, "status": domain.JobStatusScheduled}).
		Where(squirrel.Lt{"scheduled_at": window.End}).
		Where(squirrel.GtOrEq{"scheduled_at": earliest}).
		Where(squirrel.Expr("scheduled_at + make_interval(mins => duration_minutes) > ?", window.Start)).
		OrderBy("scheduled_at ASC", "id ASC")

	return r.listScheduled(ctx, "ListScheduledOverlapping", selectBuilder)
}

func (r *Repository) listScheduled(ctx context.Context, op string, selectBuilder squirrel.SelectBuilder) ([]*domain.Job, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %w", ErrExecQuery, op, err)
	}
	defer rows.Close()

	jobs := make([]*domain.Job, 0)
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan job: %v", ErrScanRow, op, err)
		}
		jobs = append(jobs, job)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows iteration: %w", ErrExecQuery, op, err)
	}

	return jobs, nil
}

// Cancel переводит запланированный заказ в статус cancelled, освобождая ёмкость
func (r *Repository) Cancel(ctx context.Context, businessID, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("jobs").
		Set("status", domain.JobStatusCancelled).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "business_id": businessID, "status": domain.JobStatusScheduled}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %w", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrCannotCancel
	}

	return nil
}

// LockBusinessDay берет транзакционную advisory-блокировку на день бизнеса
// Блокировка снимается автоматически при завершении транзакции
func (r *Repository) LockBusinessDay(ctx context.Context, businessID int64, date time.Time) error {
	if !dbmetrics.IsInTransaction(ctx) {
		return fmt.Errorf("%w: LockBusinessDay", ErrTransaction)
	}
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select().
		Column(squirrel.Expr("pg_advisory_xact_lock(?, ?)", businessLockKey(businessID), dayLockKey(date))).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: LockBusinessDay - build query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: LockBusinessDay - execute: %w", ErrExecQuery, err)
	}

	return nil
}

// businessLockKey первая половина ключа advisory-блокировки (int4)
func businessLockKey(businessID int64) int32 {
	return int32(businessID)
}

// dayLockKey вторая половина ключа: номер дня от эпохи по настенной дате
func dayLockKey(date time.Time) int32 {
	y, m, d := date.Date()
	return int32(time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / 86400)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanJob(row rowScanner) (*domain.Job, error) {
	var job domain.Job
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&job.ID,
		&job.BusinessID,
		&job.CustomerID,
		&job.ScheduledAt,
		&job.HasTime,
		&job.DurationMinutes,
		&job.Status,
		&job.TotalPrice,
		&job.Notes,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	job.CreatedAt = createdAt.Time
	job.UpdatedAt = updatedAt.Time

	return &job, nil
}
