package segments

import (
	"context"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// HistoryRepository источник истории заказов клиента
type HistoryRepository interface {
	GetHistory(ctx context.Context, businessID int64, email, phone *string) (*domain.CustomerHistory, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
