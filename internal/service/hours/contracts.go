package hours

import (
	"context"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// BusinessRepository интерфейс репозитория бизнесов
type BusinessRepository interface {
	GetByID(ctx context.Context, businessID int64) (*domain.Business, error)
	UpdateOperatingHours(ctx context.Context, businessID int64, hours domain.OperatingHours) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
