package business

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/psqlbuilder"
)

// rosterSizeColumn размер команды: активные сотрудники без владельца
const rosterSizeColumn = "(SELECT COUNT(*) FROM team_members tm WHERE tm.business_id = b.id AND tm.is_active) AS roster_size"

// Repository репозиторий для работы с бизнесами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бизнесов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает бизнес с расписанием работы и размером команды
// Некорректный JSON расписания не считается ошибкой: OperatingHours остается nil,
// и движок использует расписание по умолчанию
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Business, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"b.id",
		"b.name",
		"b.timezone",
		"b.operating_hours",
		rosterSizeColumn,
		"b.created_at",
		"b.updated_at",
	).
		From("businesses b").
		Where(squirrel.Eq{"b.id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var business domain.Business
	var hours []byte
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&business.ID,
		&business.Name,
		&business.Timezone,
		&hours,
		&business.RosterSize,
		&createdAt,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBusinessNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan business: %w", ErrScanRow, err)
	}

	business.OperatingHours = decodeOperatingHours(hours)
	business.CreatedAt = createdAt.Time
	business.UpdatedAt = updatedAt.Time

	return &business, nil
}

// UpdateOperatingHours сохраняет недельное расписание бизнеса
func (r *Repository) UpdateOperatingHours(ctx context.Context, id int64, hours domain.OperatingHours) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	encoded, err := json.Marshal(hours)
	if err != nil {
		return fmt.Errorf("%w: UpdateOperatingHours: %v", ErrEncodeHours, err)
	}

	query, args, err := psqlbuilder.Update("businesses").
		Set("operating_hours", string(encoded)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateOperatingHours - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateOperatingHours - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateOperatingHours - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrBusinessNotFound
	}

	return nil
}

// decodeOperatingHours разбирает JSON расписания; NULL или мусор дают nil
func decodeOperatingHours(raw []byte) *domain.OperatingHours {
	if len(raw) == 0 {
		return nil
	}

	var hours domain.OperatingHours
	if err := json.Unmarshal(raw, &hours); err != nil {
		return nil
	}

	return &hours
}
