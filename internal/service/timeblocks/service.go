package timeblocks

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	businessRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/business"
	timeblockRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/timeblock"
	"github.com/m04kA/SMC-AvailabilityService/internal/scheduling"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/timeblocks/models"
)

// Service сервис управления блокировками времени
type Service struct {
	blockRepo    TimeBlockRepository
	businessRepo BusinessRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса блокировок
func NewService(blockRepo TimeBlockRepository, businessRepo BusinessRepository, logger Logger) *Service {
	return &Service{
		blockRepo:    blockRepo,
		businessRepo: businessRepo,
		logger:       logger,
	}
}

// Create создает блокировку времени
func (s *Service) Create(ctx context.Context, req *models.CreateTimeBlockRequest) (*models.TimeBlockResponse, error) {
	s.logger.Info("Create: creating time block for business=%d", req.BusinessID)

	block := req.ToDomainTimeBlock()
	if err := validateTimeBlock(block); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	if err := s.ensureBusiness(ctx, req.BusinessID); err != nil {
		return nil, err
	}

	block.ID = uuid.New()
	created, err := s.blockRepo.Create(ctx, block)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created time block id=%s", created.ID)
	return models.FromDomainTimeBlock(created), nil
}

// List возвращает все блокировки бизнеса
func (s *Service) List(ctx context.Context, businessID int64) (*models.TimeBlockListResponse, error) {
	if err := s.ensureBusiness(ctx, businessID); err != nil {
		return nil, err
	}

	blocks, err := s.blockRepo.ListByBusiness(ctx, businessID)
	if err != nil {
		s.logger.Error("List: repository error for business=%d: %v", businessID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainTimeBlockList(blocks), nil
}

// Delete удаляет блокировку бизнеса
func (s *Service) Delete(ctx context.Context, businessID int64, id uuid.UUID) error {
	s.logger.Info("Delete: deleting time block id=%s of business=%d", id, businessID)

	if err := s.blockRepo.Delete(ctx, businessID, id); err != nil {
		if errors.Is(err, timeblockRepo.ErrTimeBlockNotFound) {
			s.logger.Warn("Delete: time block id=%s not found", id)
			return ErrTimeBlockNotFound
		}
		s.logger.Error("Delete: repository error: %v", err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	return nil
}

// ListOccurrences разворачивает все блокировки бизнеса в окне [from, to) по датам
// Результат отсортирован по началу вхождения
func (s *Service) ListOccurrences(ctx context.Context, businessID int64, from, to time.Time) (*models.OccurrenceListResponse, error) {
	window := domain.Interval{Start: scheduling.StartOfDay(from), End: scheduling.StartOfDay(to)}
	if !window.IsValid() {
		return nil, fmt.Errorf("%w: 'to' must be after 'from'", ErrInvalidInput)
	}
	if window.End.Sub(window.Start) > domain.MaxOccurrenceWindowDays*24*time.Hour {
		return nil, fmt.Errorf("%w: window must not exceed %d days", ErrInvalidInput, domain.MaxOccurrenceWindowDays)
	}

	if err := s.ensureBusiness(ctx, businessID); err != nil {
		return nil, err
	}

	blocks, err := s.blockRepo.ListCandidates(ctx, businessID, window)
	if err != nil {
		s.logger.Error("ListOccurrences: repository error for business=%d: %v", businessID, err)
		return nil, fmt.Errorf("%w: ListOccurrences - repository error: %v", ErrInternal, err)
	}

	occurrences := make([]domain.Occurrence, 0)
	for _, block := range blocks {
		if err := block.Validate(); err != nil {
			s.logger.Warn("ListOccurrences: skipping malformed time block id=%s: %v", block.ID, err)
			continue
		}
		occurrences = append(occurrences, scheduling.ExpandOccurrences(block, window)...)
	}

	sort.SliceStable(occurrences, func(i, j int) bool {
		return occurrences[i].Interval.Start.Before(occurrences[j].Interval.Start)
	})

	return models.FromDomainOccurrences(window, occurrences), nil
}

func (s *Service) ensureBusiness(ctx context.Context, businessID int64) error {
	if _, err := s.businessRepo.GetByID(ctx, businessID); err != nil {
		if errors.Is(err, businessRepo.ErrBusinessNotFound) {
			s.logger.Warn("business id=%d not found", businessID)
			return ErrBusinessNotFound
		}
		s.logger.Error("failed to get business id=%d: %v", businessID, err)
		return fmt.Errorf("%w: failed to get business: %v", ErrInternal, err)
	}
	return nil
}

// validateTimeBlock проверяет блокировку перед сохранением
func validateTimeBlock(block *domain.TimeBlock) error {
	if block.BusinessID <= 0 {
		return fmt.Errorf("%w: businessID must be positive", ErrInvalidInput)
	}

	title := strings.TrimSpace(block.Title)
	if title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if len([]rune(title)) > domain.MaxTimeBlockTitleLength {
		return fmt.Errorf("%w: title must not exceed %d characters", ErrInvalidInput, domain.MaxTimeBlockTitleLength)
	}
	block.Title = title

	if err := block.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if block.Recurrence != nil && block.Recurrence.Until != nil {
		until := scheduling.StartOfDay(*block.Recurrence.Until)
		if until.Before(scheduling.StartOfDay(block.Start)) {
			return fmt.Errorf("%w: recurrence end date is before the first occurrence", ErrInvalidInput)
		}
		block.Recurrence.Until = &until
	}

	return nil
}
