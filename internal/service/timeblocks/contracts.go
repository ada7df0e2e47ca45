package timeblocks

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// TimeBlockRepository интерфейс репозитория блокировок времени
type TimeBlockRepository interface {
	Create(ctx context.Context, block *domain.TimeBlock) (*domain.TimeBlock, error)
	ListByBusiness(ctx context.Context, businessID int64) ([]domain.TimeBlock, error)
	ListCandidates(ctx context.Context, businessID int64, window domain.Interval) ([]domain.TimeBlock, error)
	Delete(ctx context.Context, businessID int64, id uuid.UUID) error
}

// BusinessRepository нужен для проверки существования бизнеса и его часового пояса
type BusinessRepository interface {
	GetByID(ctx context.Context, businessID int64) (*domain.Business, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
