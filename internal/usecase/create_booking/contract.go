package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_slots"
)

// JobRepository интерфейс репозитория заказов
type JobRepository interface {
	// LockBusinessDay сериализует бронирования одного бизнеса на одну дату
	LockBusinessDay(ctx context.Context, businessID int64, date time.Time) error
	Create(ctx context.Context, job *domain.Job) (*domain.Job, error)
}

// CustomerRepository интерфейс репозитория клиентов
type CustomerRepository interface {
	FindOrCreate(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
}

// SlotsUseCase генератор доступных слотов
type SlotsUseCase interface {
	Execute(ctx context.Context, req *get_available_slots.Request) (*get_available_slots.Response, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
