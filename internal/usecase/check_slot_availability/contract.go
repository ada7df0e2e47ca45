package check_slot_availability

import (
	"context"

	"github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_slots"
)

// SlotsUseCase генератор доступных слотов
type SlotsUseCase interface {
	Execute(ctx context.Context, req *get_available_slots.Request) (*get_available_slots.Response, error)
}

// MetricsRecorder интерфейс метрик проверок
type MetricsRecorder interface {
	IncSlotCheck(available bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
