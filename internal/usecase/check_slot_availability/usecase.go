package check_slot_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/scheduling"
	"github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_slots"
)

// UseCase проверка доступности конкретного времени перед бронированием
// Каждый вызов заново генерирует слоты, кэшированные списки не используются
type UseCase struct {
	slots   SlotsUseCase
	metrics MetricsRecorder
	logger  Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(slots SlotsUseCase, metrics MetricsRecorder, logger Logger) *UseCase {
	return &UseCase{
		slots:   slots,
		metrics: metrics,
		logger:  logger,
	}
}

// Execute возвращает, совпадает ли запрошенное время с одним из доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckSlotAvailability: validation failed: %v", err)
		return nil, err
	}

	slots, err := uc.slots.Execute(ctx, &get_available_slots.Request{
		BusinessID:      req.BusinessID,
		Date:            req.Date,
		DurationMinutes: req.DurationMinutes,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
	})
	if err != nil {
		switch {
		case errors.Is(err, get_available_slots.ErrInvalidInput):
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		case errors.Is(err, get_available_slots.ErrBusinessNotFound):
			return nil, ErrBusinessNotFound
		default:
			uc.logger.Error("CheckSlotAvailability: failed to generate slots for business=%d: %v", req.BusinessID, err)
			return nil, fmt.Errorf("%w: failed to generate slots: %w", ErrInternal, err)
		}
	}

	available := scheduling.ContainsSlot(slots.Slots, req.Time)
	uc.metrics.IncSlotCheck(available)

	uc.logger.Info("CheckSlotAvailability: business=%d, date=%s, time=%s, duration=%d, available=%t",
		req.BusinessID, req.Date.Format(domain.DateFormat), req.Time, req.DurationMinutes, available)

	return &Response{
		Date:            slots.Date,
		Time:            req.Time,
		DurationMinutes: req.DurationMinutes,
		Available:       available,
	}, nil
}
