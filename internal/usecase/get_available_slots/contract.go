package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// BusinessRepository интерфейс репозитория бизнесов
type BusinessRepository interface {
	// GetByID возвращает бизнес вместе с расписанием и размером команды
	GetByID(ctx context.Context, businessID int64) (*domain.Business, error)
}

// TimeBlockRepository интерфейс репозитория блокировок времени
type TimeBlockRepository interface {
	// ListCandidates возвращает блокировки, которые могут пересечься с окном (включая все повторяющиеся)
	ListCandidates(ctx context.Context, businessID int64, window domain.Interval) ([]domain.TimeBlock, error)
}

// ReservationRepository интерфейс репозитория приоритетных резервирований
type ReservationRepository interface {
	ListEnabled(ctx context.Context, businessID int64) ([]domain.PriorityReservation, error)
}

// JobRepository интерфейс репозитория заказов
type JobRepository interface {
	// ListScheduledOverlapping возвращает запланированные заказы, пересекающиеся с окном,
	// включая начавшиеся накануне
	ListScheduledOverlapping(ctx context.Context, businessID int64, window domain.Interval) ([]*domain.Job, error)
}

// SegmentResolver определяет сегмент клиента
// Ошибка возвращается только внутри транзакции
type SegmentResolver interface {
	Resolve(ctx context.Context, businessID int64, email, phone *string) (domain.CustomerSegment, error)
}

// MetricsRecorder интерфейс метрик движка
type MetricsRecorder interface {
	ObserveSlotsGenerated(count int)
	IncDegradedRead(source string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
