package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/scheduling"
	"github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_slots"
)

// UseCase use case для создания бронирования
type UseCase struct {
	jobRepo      JobRepository
	customerRepo CustomerRepository
	slots        SlotsUseCase
	txManager    TransactionManager
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	jobRepo JobRepository,
	customerRepo CustomerRepository,
	slots SlotsUseCase,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		jobRepo:      jobRepo,
		customerRepo: customerRepo,
		slots:        slots,
		txManager:    txManager,
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Доступность пересчитывается внутри сериализуемой транзакции под блокировкой дня бизнеса,
// поэтому два параллельных запроса не могут занять последнее место одновременно
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("CreateBooking: business=%d, date=%s, time=%s, duration=%d",
		req.BusinessID, req.Date.Format(domain.DateFormat), req.Time, req.DurationMinutes)

	var result *Response

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		result = nil

		// 1. Блокируем день бизнеса
		if err := uc.jobRepo.LockBusinessDay(txCtx, req.BusinessID, req.Date); err != nil {
			return fmt.Errorf("%w: failed to lock business day: %w", ErrInternal, err)
		}

		// 2. Пересчитываем доступные слоты внутри транзакции
		slots, err := uc.slots.Execute(txCtx, &get_available_slots.Request{
			BusinessID:      req.BusinessID,
			Date:            req.Date,
			DurationMinutes: req.DurationMinutes,
			CustomerEmail:   req.CustomerEmail,
			CustomerPhone:   req.CustomerPhone,
		})
		if err != nil {
			switch {
			case errors.Is(err, get_available_slots.ErrInvalidInput):
				return fmt.Errorf("%w: %v", ErrInvalidInput, err)
			case errors.Is(err, get_available_slots.ErrBusinessNotFound):
				return ErrBusinessNotFound
			default:
				return fmt.Errorf("%w: failed to generate slots: %w", ErrInternal, err)
			}
		}

		// 3. Время должно точно совпадать с одним из слотов
		if !scheduling.ContainsSlot(slots.Slots, req.Time) {
			uc.logger.Warn("CreateBooking: time %s is not available for business=%d on %s",
				req.Time, req.BusinessID, slots.Date.Format(domain.DateFormat))
			return ErrSlotNotAvailable
		}

		scheduledAt, err := req.Time.On(slots.Date)
		if err != nil {
			return fmt.Errorf("%w: failed to build start time: %v", ErrInternal, err)
		}

		// 4. Находим или создаем клиента
		var customerID *int64
		if hasIdentity(req) {
			customer, err := uc.customerRepo.FindOrCreate(txCtx, &domain.Customer{
				BusinessID: req.BusinessID,
				Name:       strings.TrimSpace(req.CustomerName),
				Email:      req.CustomerEmail,
				Phone:      req.CustomerPhone,
			})
			if err != nil {
				return fmt.Errorf("%w: failed to resolve customer: %w", ErrInternal, err)
			}
			customerID = &customer.ID
		}

		// 5. Создаем заказ
		job, err := uc.jobRepo.Create(txCtx, &domain.Job{
			BusinessID:      req.BusinessID,
			CustomerID:      customerID,
			ScheduledAt:     scheduledAt,
			HasTime:         true,
			DurationMinutes: req.DurationMinutes,
			Status:          domain.JobStatusScheduled,
			TotalPrice:      req.TotalPrice,
			Notes:           req.Notes,
		})
		if err != nil {
			return fmt.Errorf("%w: failed to create job: %w", ErrInternal, err)
		}

		result = &Response{
			ID:              job.ID,
			BusinessID:      job.BusinessID,
			CustomerID:      job.CustomerID,
			Date:            slots.Date,
			Time:            req.Time,
			DurationMinutes: job.DurationMinutes,
			Status:          job.Status,
			Segment:         slots.Segment,
			TotalPrice:      job.TotalPrice,
			Notes:           job.Notes,
			CreatedAt:       job.CreatedAt,
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrInternal) {
			uc.logger.Error("CreateBooking: transaction failed for business=%d: %v", req.BusinessID, err)
		}
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created job id=%d for business=%d", result.ID, result.BusinessID)
	return result, nil
}
