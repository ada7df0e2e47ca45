package hours

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	businessRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/business"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/hours/models"
)

// Service сервис расписания работы бизнеса
type Service struct {
	businessRepo BusinessRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(businessRepo BusinessRepository, logger Logger) *Service {
	return &Service{
		businessRepo: businessRepo,
		logger:       logger,
	}
}

// Get возвращает действующее расписание бизнеса на неделю
// Ненастроенные и некорректные дни заменяются расписанием по умолчанию и помечаются isDefault
func (s *Service) Get(ctx context.Context, businessID int64) (*models.OperatingHoursResponse, error) {
	s.logger.Info("Get: fetching operating hours for business=%d", businessID)

	business, err := s.getBusiness(ctx, businessID)
	if err != nil {
		return nil, err
	}

	return models.FromDomainBusiness(business), nil
}

// Update обновляет расписание переданных дней, остальные дни не меняются
func (s *Service) Update(ctx context.Context, req *models.UpdateOperatingHoursRequest) (*models.OperatingHoursResponse, error) {
	s.logger.Info("Update: updating operating hours for business=%d", req.BusinessID)

	days := req.Days()
	if len(days) == 0 {
		s.logger.Warn("Update: no days provided for business=%d", req.BusinessID)
		return nil, fmt.Errorf("%w: at least one day must be provided", ErrInvalidInput)
	}

	for day, value := range days {
		if err := value.ToDomain().Validate(); err != nil {
			s.logger.Warn("Update: invalid hours for %s: %v", day, err)
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidInput, day, err)
		}
	}

	business, err := s.getBusiness(ctx, req.BusinessID)
	if err != nil {
		return nil, err
	}

	var updated domain.OperatingHours
	if business.OperatingHours != nil {
		updated = *business.OperatingHours
	}
	for day, value := range days {
		hours := value.ToDomain()
		setDay(&updated, day, &hours)
	}

	if err := s.businessRepo.UpdateOperatingHours(ctx, req.BusinessID, updated); err != nil {
		if errors.Is(err, businessRepo.ErrBusinessNotFound) {
			return nil, ErrBusinessNotFound
		}
		s.logger.Error("Update: repository error for business=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	business.OperatingHours = &updated

	s.logger.Info("Update: successfully updated %d day(s) for business=%d", len(days), req.BusinessID)
	return models.FromDomainBusiness(business), nil
}

func (s *Service) getBusiness(ctx context.Context, businessID int64) (*domain.Business, error) {
	business, err := s.businessRepo.GetByID(ctx, businessID)
	if err != nil {
		if errors.Is(err, businessRepo.ErrBusinessNotFound) {
			s.logger.Warn("business id=%d not found", businessID)
			return nil, ErrBusinessNotFound
		}
		s.logger.Error("failed to get business id=%d: %v", businessID, err)
		return nil, fmt.Errorf("%w: failed to get business: %v", ErrInternal, err)
	}
	return business, nil
}

func setDay(h *domain.OperatingHours, day domain.Weekday, value *domain.DayHours) {
	switch day {
	case domain.Monday:
		h.Monday = value
	case domain.Tuesday:
		h.Tuesday = value
	case domain.Wednesday:
		h.Wednesday = value
	case domain.Thursday:
		h.Thursday = value
	case domain.Friday:
		h.Friday = value
	case domain.Saturday:
		h.Saturday = value
	case domain.Sunday:
		h.Sunday = value
	}
}
