package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	jobRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/job"
	"github.com/m04kA/SMC-AvailabilityService/internal/scheduling"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями (заказами)
type Service struct {
	jobRepo JobRepository
	logger  Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(jobRepo JobRepository, logger Logger) *Service {
	return &Service{
		jobRepo: jobRepo,
		logger:  logger,
	}
}

// GetByID получает бронирование бизнеса по ID
func (s *Service) GetByID(ctx context.Context, businessID, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d of business=%d", id, businessID)

	job, err := s.getJob(ctx, businessID, id)
	if err != nil {
		return nil, err
	}

	return models.FromDomainBooking(job), nil
}

// ListForDay возвращает запланированные бронирования бизнеса на дату
func (s *Service) ListForDay(ctx context.Context, businessID int64, date time.Time) (*models.BookingListResponse, error) {
	if date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	day := scheduling.DayWindow(date)
	s.logger.Info("ListForDay: fetching bookings of business=%d for %s", businessID, day.Start.Format(domain.DateFormat))

	jobs, err := s.jobRepo.ListScheduledInRange(ctx, businessID, day.Start, day.End)
	if err != nil {
		s.logger.Error("ListForDay: repository error for business=%d: %v", businessID, err)
		return nil, fmt.Errorf("%w: ListForDay - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListForDay: successfully fetched %d bookings for business=%d", len(jobs), businessID)
	return models.FromDomainBookingList(day.Start, jobs), nil
}

// Cancel отменяет запланированное бронирование, освобождая ёмкость
func (s *Service) Cancel(ctx context.Context, businessID, id int64) error {
	s.logger.Info("Cancel: cancelling booking id=%d of business=%d", id, businessID)

	job, err := s.getJob(ctx, businessID, id)
	if err != nil {
		return err
	}

	if job.Status != domain.JobStatusScheduled {
		s.logger.Warn("Cancel: booking id=%d has status=%s", id, job.Status)
		return ErrCannotCancel
	}

	if err := s.jobRepo.Cancel(ctx, businessID, id); err != nil {
		if errors.Is(err, jobRepo.ErrCannotCancel) {
			s.logger.Warn("Cancel: booking id=%d changed status concurrently", id)
			return ErrCannotCancel
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", id)
	return nil
}

func (s *Service) getJob(ctx context.Context, businessID, id int64) (*domain.Job, error) {
	job, err := s.jobRepo.GetByID(ctx, businessID, id)
	if err != nil {
		if errors.Is(err, jobRepo.ErrJobNotFound) {
			s.logger.Warn("booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return job, nil
}
