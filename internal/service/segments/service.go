package segments

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	customerRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/customer"
	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/ptr"
)

// Config параметры сервиса сегментов
type Config struct {
	VIPRevenueThreshold float64
	CacheSize           int
	CacheTTL            time.Duration
}

// Service определяет сегмент клиента по истории завершенных заказов
// Успешно определенные сегменты кэшируются не дольше CacheTTL; ошибки не кэшируются
type Service struct {
	history   HistoryRepository
	threshold float64
	cache     *expirable.LRU[string, domain.CustomerSegment]
	logger    Logger
}

// NewService создает новый экземпляр сервиса сегментов
// CacheSize <= 0 отключает кэш
func NewService(history HistoryRepository, cfg Config, logger Logger) *Service {
	s := &Service{
		history:   history,
		threshold: cfg.VIPRevenueThreshold,
		logger:    logger,
	}
	if cfg.CacheSize > 0 {
		s.cache = expirable.NewLRU[string, domain.CustomerSegment](cfg.CacheSize, nil, cfg.CacheTTL)
	}
	return s
}

// Resolve возвращает сегмент клиента
// Нет email и телефона → SegmentNone, клиент не найден → SegmentNew
//
// Вне транзакции ошибка хранилища деградирует до SegmentNone без ошибки.
// Внутри транзакции кэш не читается, а ошибка хранилища возвращается:
// упавший запрос прерывает транзакцию PostgreSQL, и её нужно повторить целиком
func (s *Service) Resolve(ctx context.Context, businessID int64, email, phone *string) (domain.CustomerSegment, error) {
	email, phone = normalize(email), normalize(phone)
	if email == nil && phone == nil {
		return domain.SegmentNone, nil
	}

	inTx := dbmetrics.IsInTransaction(ctx)

	key := cacheKey(businessID, email, phone)
	if s.cache != nil && !inTx {
		if segment, ok := s.cache.Get(key); ok {
			return segment, nil
		}
	}

	history, err := s.history.GetHistory(ctx, businessID, email, phone)
	if err != nil && !errors.Is(err, customerRepo.ErrCustomerNotFound) {
		if inTx {
			return domain.SegmentNone, fmt.Errorf("%w: Resolve - get history: %w", ErrHistoryLookup, err)
		}
		s.logger.Warn("Resolve: segment lookup failed for business=%d, continuing without segment: %v", businessID, err)
		return domain.SegmentNone, nil
	}

	segment := domain.ClassifySegment(history, s.threshold)
	if s.cache != nil {
		s.cache.Add(key, segment)
	}

	return segment, nil
}

func cacheKey(businessID int64, email, phone *string) string {
	return fmt.Sprintf("%d|%s|%s", businessID, ptr.Deref(email, ""), ptr.Deref(phone, ""))
}

func normalize(v *string) *string {
	if v == nil {
		return nil
	}
	s := strings.ToLower(strings.TrimSpace(*v))
	if s == "" {
		return nil
	}
	return ptr.Ptr(s)
}
