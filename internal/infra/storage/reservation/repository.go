package reservation

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/psqlbuilder"
)

// Repository репозиторий приоритетных резервирований
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория резервирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListEnabled возвращает включенные резервирования бизнеса
// Дни недели хранятся в int[] (1 = понедельник ... 7 = воскресенье)
func (r *Repository) ListEnabled(ctx context.Context, businessID int64) ([]domain.PriorityReservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"business_id",
		"weekdays",
		"start_time",
		"end_time",
		"segment",
		"fallback_hours",
		"enabled",
	).
		From("priority_reservations").
		Where(squirrel.Eq{"business_id": businessID, "enabled": true}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListEnabled - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListEnabled - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	reservations := make([]domain.PriorityReservation, 0)
	for rows.Next() {
		var reservation domain.PriorityReservation
		var weekdays []int64

		err := rows.Scan(
			&reservation.ID,
			&reservation.BusinessID,
			pq.Array(&weekdays),
			&reservation.StartTime,
			&reservation.EndTime,
			&reservation.Segment,
			&reservation.FallbackHours,
			&reservation.Enabled,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListEnabled - scan reservation: %v", ErrScanRow, err)
		}

		reservation.Weekdays = toWeekdays(weekdays)
		reservations = append(reservations, reservation)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListEnabled - rows iteration: %w", ErrExecQuery, err)
	}

	return reservations, nil
}

// toWeekdays отбрасывает значения вне диапазона 1..7
func toWeekdays(raw []int64) []domain.Weekday {
	weekdays := make([]domain.Weekday, 0, len(raw))
	for _, v := range raw {
		day := domain.Weekday(v)
		if day.IsValid() {
			weekdays = append(weekdays, day)
		}
	}
	return weekdays
}
