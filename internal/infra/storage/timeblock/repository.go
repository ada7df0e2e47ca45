package timeblock

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/psqlbuilder"
)

var blockColumns = []string{
	"id",
	"business_id",
	"title",
	"kind",
	"description",
	"start_at",
	"end_at",
	"recurrence_pattern",
	"recurrence_until",
	"recurrence_count",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с блокировками времени
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория блокировок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет блокировку; ID должен быть сгенерирован вызывающей стороной
func (r *Repository) Create(ctx context.Context, block *domain.TimeBlock) (*domain.TimeBlock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	var pattern, until, count interface{}
	if block.Recurrence != nil {
		pattern = string(block.Recurrence.Pattern)
		if block.Recurrence.Until != nil {
			until = *block.Recurrence.Until
		}
		if block.Recurrence.Count != nil {
			count = *block.Recurrence.Count
		}
	}

	query, args, err := psqlbuilder.Insert("time_blocks").
		Columns(
			"id",
			"business_id",
			"title",
			"kind",
			"description",
			"start_at",
			"end_at",
			"recurrence_pattern",
			"recurrence_until",
			"recurrence_count",
		).
		Values(
			block.ID,
			block.BusinessID,
			block.Title,
			block.Kind,
			block.Description,
			block.Start,
			block.End,
			pattern,
			until,
			count,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	block.CreatedAt = createdAt.Time
	block.UpdatedAt = updatedAt.Time

	return block, nil
}

// ListByBusiness возвращает все блокировки бизнеса
func (r *Repository) ListByBusiness(ctx context.Context, businessID int64) ([]domain.TimeBlock, error) {
	return r.list(ctx, "ListByBusiness", squirrel.Eq{"business_id": businessID})
}

// ListCandidates возвращает блокировки, способные пересечься с окном:
// разовые, пересекающие окно, и все повторяющиеся, начавшиеся до конца окна
func (r *Repository) ListCandidates(ctx context.Context, businessID int64, window domain.Interval) ([]domain.TimeBlock, error) {
	return r.list(ctx, "ListCandidates", squirrel.And{
		squirrel.Eq{"business_id": businessID},
		squirrel.Lt{"start_at": window.End},
		squirrel.Or{
			squirrel.NotEq{"recurrence_pattern": nil},
			squirrel.Gt{"end_at": window.Start},
		},
	})
}

// Delete удаляет блокировку бизнеса
func (r *Repository) Delete(ctx context.Context, businessID int64, id uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("time_blocks").
		Where(squirrel.Eq{"id": id, "business_id": businessID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrTimeBlockNotFound
	}

	return nil
}

func (r *Repository) list(ctx context.Context, op string, where squirrel.Sqlizer) ([]domain.TimeBlock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(blockColumns...).
		From("time_blocks").
		Where(where).
		OrderBy("start_at ASC", "id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %w", ErrExecQuery, op, err)
	}
	defer rows.Close()

	blocks := make([]domain.TimeBlock, 0)
	for rows.Next() {
		block, err := scanBlock(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan time block: %v", ErrScanRow, op, err)
		}
		blocks = append(blocks, block)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows iteration: %w", ErrExecQuery, op, err)
	}

	return blocks, nil
}

func scanBlock(rows *sql.Rows) (domain.TimeBlock, error) {
	var block domain.TimeBlock
	var pattern sql.NullString
	var until sql.NullTime
	var count sql.NullInt64
	var createdAt, updatedAt sql.NullTime

	err := rows.Scan(
		&block.ID,
		&block.BusinessID,
		&block.Title,
		&block.Kind,
		&block.Description,
		&block.Start,
		&block.End,
		&pattern,
		&until,
		&count,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return domain.TimeBlock{}, err
	}

	if pattern.Valid {
		block.Recurrence = &domain.Recurrence{Pattern: domain.RecurrencePattern(pattern.String)}
		if until.Valid {
			u := until.Time
			block.Recurrence.Until = &u
		}
		if count.Valid {
			c := int(count.Int64)
			block.Recurrence.Count = &c
		}
	}

	block.CreatedAt = createdAt.Time
	block.UpdatedAt = updatedAt.Time

	return block, nil
}
