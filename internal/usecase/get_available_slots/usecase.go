package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	businessRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/business"
	"github.com/m04kA/SMC-AvailabilityService/internal/scheduling"
)

// UseCase use case для получения доступных слотов для бронирования
type UseCase struct {
	businessRepo    BusinessRepository
	blockRepo       TimeBlockRepository
	reservationRepo ReservationRepository
	jobRepo         JobRepository
	segments        SegmentResolver
	metrics         MetricsRecorder
	timeProvider    TimeProvider
	defaultLocation *time.Location
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
// defaultLocation используется для бизнесов без корректного часового пояса
func NewUseCase(
	businessRepo BusinessRepository,
	blockRepo TimeBlockRepository,
	reservationRepo ReservationRepository,
	jobRepo JobRepository,
	segments SegmentResolver,
	metrics MetricsRecorder,
	defaultLocation *time.Location,
	logger Logger,
) *UseCase {
	if defaultLocation == nil {
		defaultLocation = time.UTC
	}

	return &UseCase{
		businessRepo:    businessRepo,
		blockRepo:       blockRepo,
		reservationRepo: reservationRepo,
		jobRepo:         jobRepo,
		segments:        segments,
		metrics:         metrics,
		timeProvider:    &RealTimeProvider{},
		defaultLocation: defaultLocation,
		logger:          logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("GetAvailableSlots: business=%d, date=%s, duration=%d",
		req.BusinessID, req.Date.Format(domain.DateFormat), req.DurationMinutes)

	// 2. Получаем бизнес
	business, err := uc.businessRepo.GetByID(ctx, req.BusinessID)
	if err != nil {
		if errors.Is(err, businessRepo.ErrBusinessNotFound) {
			uc.logger.Warn("GetAvailableSlots: business id=%d not found", req.BusinessID)
			return nil, ErrBusinessNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get business id=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: failed to get business: %w", ErrInternal, err)
	}

	// 3. Приводим дату и текущее время к настенному времени бизнеса
	loc := business.Location(uc.defaultLocation)
	date := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, loc)
	now := uc.timeProvider.Now().In(loc)

	// 4. Собираем ограничения на день
	constraints, err := uc.collectConstraints(ctx, business, date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to collect constraints for business=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	// 5. Определяем сегмент клиента (best-effort вне транзакции)
	segment := domain.SegmentNone
	if !constraints.Hours.Closed {
		segment, err = uc.segments.Resolve(ctx, req.BusinessID, req.CustomerEmail, req.CustomerPhone)
		if err != nil {
			uc.logger.Error("GetAvailableSlots: failed to resolve segment for business=%d: %v", req.BusinessID, err)
			return nil, fmt.Errorf("%w: failed to resolve segment: %w", ErrInternal, err)
		}
	}

	// 6. Генерируем слоты
	slots := scheduling.GenerateSlots(constraints, scheduling.SlotQuery{
		DurationMinutes: req.DurationMinutes,
		Segment:         segment,
		Now:             now,
	})
	uc.metrics.ObserveSlotsGenerated(len(slots))

	uc.logger.Info("GetAvailableSlots: generated %d slots for business=%d, date=%s, segment=%q",
		len(slots), req.BusinessID, date.Format(domain.DateFormat), segment)

	return &Response{
		Date:            date,
		BusinessID:      req.BusinessID,
		DurationMinutes: req.DurationMinutes,
		Segment:         segment,
		Slots:           slots,
	}, nil
}
