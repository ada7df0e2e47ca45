package segments

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	customerRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/customer"
	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
	"github.com/m04kA/SMC-AvailabilityService/pkg/ptr"
	"github.com/m04kA/SMC-AvailabilityService/pkg/txmanager"
)

type fakeHistory struct {
	history *domain.CustomerHistory
	err     error
	calls   int
	email   *string
}

func (f *fakeHistory) GetHistory(_ context.Context, _ int64, email, _ *string) (*domain.CustomerHistory, error) {
	f.calls++
	f.email = email
	return f.history, f.err
}

// openTx заглушка активной транзакции в контексте
type openTx struct {
	dbmetrics.TxExecutor
}

func newService(history *fakeHistory, cacheSize int) *Service {
	return NewService(history, Config{
		VIPRevenueThreshold: domain.DefaultVIPRevenueThreshold,
		CacheSize:           cacheSize,
		CacheTTL:            time.Minute,
	}, logger.NewNop())
}

func resolve(t *testing.T, s *Service, ctx context.Context, businessID int64, email, phone *string) domain.CustomerSegment {
	t.Helper()
	segment, err := s.Resolve(ctx, businessID, email, phone)
	require.NoError(t, err)
	return segment
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		history *domain.CustomerHistory
		err     error
		want    domain.CustomerSegment
	}{
		{name: "vip", history: &domain.CustomerHistory{CompletedJobs: 3, CompletedValue: 4200}, want: domain.SegmentVIP},
		{name: "returning", history: &domain.CustomerHistory{CompletedJobs: 1, CompletedValue: 300}, want: domain.SegmentReturning},
		{name: "known without completed jobs", history: &domain.CustomerHistory{CustomerID: 5}, want: domain.SegmentNew},
		{name: "not found", err: customerRepo.ErrCustomerNotFound, want: domain.SegmentNew},
		{name: "storage failure", err: errors.New("timeout"), want: domain.SegmentNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newService(&fakeHistory{history: tt.history, err: tt.err}, 0)
			assert.Equal(t, tt.want, resolve(t, s, context.Background(), 7, ptr.Ptr("client@example.com"), nil))
		})
	}
}

func TestResolveWithoutIdentity(t *testing.T) {
	history := &fakeHistory{}
	s := newService(history, 16)

	assert.Equal(t, domain.SegmentNone, resolve(t, s, context.Background(), 7, nil, nil))
	assert.Equal(t, domain.SegmentNone, resolve(t, s, context.Background(), 7, ptr.Ptr("  "), ptr.Ptr("")))
	assert.Equal(t, 0, history.calls)
}

func TestResolveCachesSuccess(t *testing.T) {
	history := &fakeHistory{history: &domain.CustomerHistory{CompletedJobs: 2, CompletedValue: 5000}}
	s := newService(history, 16)

	assert.Equal(t, domain.SegmentVIP, resolve(t, s, context.Background(), 7, ptr.Ptr("Client@Example.com "), nil))
	assert.Equal(t, domain.SegmentVIP, resolve(t, s, context.Background(), 7, ptr.Ptr("client@example.com"), nil))
	assert.Equal(t, 1, history.calls)
	assert.Equal(t, "client@example.com", *history.email)

	// Другой бизнес - другой ключ
	resolve(t, s, context.Background(), 8, ptr.Ptr("client@example.com"), nil)
	assert.Equal(t, 2, history.calls)
}

func TestResolveDoesNotCacheFailure(t *testing.T) {
	history := &fakeHistory{err: errors.New("timeout")}
	s := newService(history, 16)

	assert.Equal(t, domain.SegmentNone, resolve(t, s, context.Background(), 7, nil, ptr.Ptr("+79990000000")))

	history.err = nil
	history.history = &domain.CustomerHistory{CompletedJobs: 1, CompletedValue: 10}
	assert.Equal(t, domain.SegmentReturning, resolve(t, s, context.Background(), 7, nil, ptr.Ptr("+79990000000")))
	assert.Equal(t, 2, history.calls)
}

func TestResolveInTransactionReadsFreshHistory(t *testing.T) {
	history := &fakeHistory{history: &domain.CustomerHistory{CompletedJobs: 1, CompletedValue: 300}}
	s := newService(history, 16)
	email := ptr.Ptr("client@example.com")

	assert.Equal(t, domain.SegmentReturning, resolve(t, s, context.Background(), 7, email, nil))

	// Клиент стал VIP: кэш еще хранит returning, но бронирование видит свежую историю
	history.history = &domain.CustomerHistory{CompletedJobs: 4, CompletedValue: 5000}
	assert.Equal(t, domain.SegmentReturning, resolve(t, s, context.Background(), 7, email, nil))

	txCtx := dbmetrics.WithTx(context.Background(), openTx{})
	assert.Equal(t, domain.SegmentVIP, resolve(t, s, txCtx, 7, email, nil))
	assert.Equal(t, 2, history.calls)

	// Свежий результат обновляет кэш для последующих запросов
	assert.Equal(t, domain.SegmentVIP, resolve(t, s, context.Background(), 7, email, nil))
	assert.Equal(t, 2, history.calls)
}

func TestResolveInTransactionReturnsStorageError(t *testing.T) {
	history := &fakeHistory{err: &pq.Error{Code: "40001"}}
	s := newService(history, 16)

	txCtx := dbmetrics.WithTx(context.Background(), openTx{})
	segment, err := s.Resolve(txCtx, 7, ptr.Ptr("client@example.com"), nil)

	require.ErrorIs(t, err, ErrHistoryLookup)
	assert.True(t, txmanager.IsSerializationFailure(err))
	assert.Equal(t, domain.SegmentNone, segment)
}
