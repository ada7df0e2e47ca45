package get_available_slots

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/scheduling"
	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
)

// dayHours определяет часы работы на день с откатом к расписанию по умолчанию
func (uc *UseCase) dayHours(business *domain.Business, date time.Time) domain.DayHours {
	weekday := domain.WeekdayOf(date)

	hours, fellBack := business.OperatingHours.ResolveDay(weekday, domain.DefaultOperatingHours())
	if fellBack {
		if business.OperatingHours.ForDay(weekday) != nil {
			uc.logger.Warn("GetAvailableSlots: malformed hours for business=%d on %s, using default", business.ID, weekday)
		} else {
			uc.logger.Info("GetAvailableSlots: no hours configured for business=%d on %s, using default", business.ID, weekday)
		}
	}

	return hours
}

// blockedIntervals читает блокировки и разворачивает их в окне дня
// Вне транзакции ошибка чтения не прерывает запрос: блокировки считаются отсутствующими
func (uc *UseCase) blockedIntervals(ctx context.Context, businessID int64, day domain.Interval) ([]domain.Interval, error) {
	blocks, err := uc.blockRepo.ListCandidates(ctx, businessID, day)
	if err != nil {
		if dbmetrics.IsInTransaction(ctx) {
			return nil, fmt.Errorf("failed to read time blocks: %w", err)
		}
		uc.logger.Warn("GetAvailableSlots: failed to read time blocks for business=%d, treating as empty: %v", businessID, err)
		uc.metrics.IncDegradedRead(sourceTimeBlocks)
		return nil, nil
	}

	intervals, skipped := scheduling.BlockedIntervals(blocks, day)
	for _, block := range skipped {
		uc.logger.Warn("GetAvailableSlots: skipping malformed time block id=%s for business=%d", block.ID, businessID)
	}

	return intervals, nil
}

// reservations читает включенные приоритетные резервирования
// Вне транзакции ошибка чтения не прерывает запрос: резервирования считаются отсутствующими
func (uc *UseCase) reservations(ctx context.Context, businessID int64) ([]domain.PriorityReservation, error) {
	all, err := uc.reservationRepo.ListEnabled(ctx, businessID)
	if err != nil {
		if dbmetrics.IsInTransaction(ctx) {
			return nil, fmt.Errorf("failed to read priority reservations: %w", err)
		}
		uc.logger.Warn("GetAvailableSlots: failed to read priority reservations for business=%d, treating as empty: %v", businessID, err)
		uc.metrics.IncDegradedRead(sourceReservations)
		return nil, nil
	}

	active, skipped := scheduling.ActiveReservations(all)
	for _, reservation := range skipped {
		uc.logger.Warn("GetAvailableSlots: skipping malformed priority reservation id=%d for business=%d", reservation.ID, businessID)
	}

	return active, nil
}

// bookings читает запланированные заказы, пересекающиеся с днем
// В отличие от остальных источников ошибка здесь фатальна: без заказов ёмкость будет превышена
func (uc *UseCase) bookings(ctx context.Context, businessID int64, day domain.Interval) ([]domain.Interval, error) {
	jobs, err := uc.jobRepo.ListScheduledOverlapping(ctx, businessID, day)
	if err != nil {
		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}
	return scheduling.BookingIntervals(jobs, day.Start.Location()), nil
}

// collectConstraints собирает все ограничения на день для бизнеса
// Внутри транзакции (создание бронирования) любая ошибка чтения возвращается:
// упавший запрос прерывает транзакцию PostgreSQL, и её нужно повторить целиком
func (uc *UseCase) collectConstraints(ctx context.Context, business *domain.Business, date time.Time) (scheduling.DayConstraints, error) {
	day := scheduling.DayWindow(date)

	constraints := scheduling.DayConstraints{
		Date:     day.Start,
		Hours:    uc.dayHours(business, day.Start),
		Capacity: business.Capacity(),
	}

	// Для закрытого дня остальные источники не нужны
	if constraints.Hours.Closed {
		return constraints, nil
	}

	bookings, err := uc.bookings(ctx, business.ID, day)
	if err != nil {
		return scheduling.DayConstraints{}, err
	}

	blocked, err := uc.blockedIntervals(ctx, business.ID, day)
	if err != nil {
		return scheduling.DayConstraints{}, err
	}

	reservations, err := uc.reservations(ctx, business.ID)
	if err != nil {
		return scheduling.DayConstraints{}, err
	}

	constraints.Bookings = bookings
	constraints.Blocked = blocked
	constraints.Reservations = reservations

	return constraints, nil
}
