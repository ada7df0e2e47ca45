package bookings

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// JobRepository интерфейс репозитория заказов
type JobRepository interface {
	GetByID(ctx context.Context, businessID, id int64) (*domain.Job, error)
	ListScheduledInRange(ctx context.Context, businessID int64, from, to time.Time) ([]*domain.Job, error)
	Cancel(ctx context.Context, businessID, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
