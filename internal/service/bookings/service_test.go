package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	jobRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/job"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
)

type fakeJobRepo struct {
	job       *domain.Job
	jobs      []*domain.Job
	getErr    error
	listErr   error
	cancelErr error
	from, to  time.Time
	cancelled bool
}

func (f *fakeJobRepo) GetByID(_ context.Context, _, _ int64) (*domain.Job, error) {
	return f.job, f.getErr
}

func (f *fakeJobRepo) ListScheduledInRange(_ context.Context, _ int64, from, to time.Time) ([]*domain.Job, error) {
	f.from, f.to = from, to
	return f.jobs, f.listErr
}

func (f *fakeJobRepo) Cancel(_ context.Context, _, _ int64) error {
	if f.cancelErr != nil {
		return f.cancelErr
	}
	f.cancelled = true
	return nil
}

func scheduledJob() *domain.Job {
	return &domain.Job{
		ID:              11,
		BusinessID:      7,
		ScheduledAt:     time.Date(2025, time.March, 10, 10, 30, 0, 0, time.UTC),
		HasTime:         true,
		DurationMinutes: 90,
		Status:          domain.JobStatusScheduled,
		TotalPrice:      2500,
	}
}

func TestGetByID(t *testing.T) {
	t.Run("with time", func(t *testing.T) {
		s := NewService(&fakeJobRepo{job: scheduledJob()}, logger.NewNop())

		resp, err := s.GetByID(context.Background(), 7, 11)
		require.NoError(t, err)
		assert.Equal(t, "2025-03-10", resp.Date)
		require.NotNil(t, resp.StartTime)
		assert.Equal(t, "10:30", *resp.StartTime)
		assert.Equal(t, "scheduled", resp.Status)
	})

	t.Run("date only", func(t *testing.T) {
		job := scheduledJob()
		job.HasTime = false
		s := NewService(&fakeJobRepo{job: job}, logger.NewNop())

		resp, err := s.GetByID(context.Background(), 7, 11)
		require.NoError(t, err)
		assert.Nil(t, resp.StartTime)
	})

	t.Run("not found", func(t *testing.T) {
		s := NewService(&fakeJobRepo{getErr: jobRepo.ErrJobNotFound}, logger.NewNop())

		_, err := s.GetByID(context.Background(), 7, 11)
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})

	t.Run("repository failure", func(t *testing.T) {
		s := NewService(&fakeJobRepo{getErr: errors.New("timeout")}, logger.NewNop())

		_, err := s.GetByID(context.Background(), 7, 11)
		assert.ErrorIs(t, err, ErrInternal)
	})
}

func TestListForDay(t *testing.T) {
	repo := &fakeJobRepo{jobs: []*domain.Job{scheduledJob()}}
	s := NewService(repo, logger.NewNop())

	resp, err := s.ListForDay(context.Background(), 7, time.Date(2025, time.March, 10, 15, 45, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC), repo.from)
	assert.Equal(t, time.Date(2025, time.March, 11, 0, 0, 0, 0, time.UTC), repo.to)
	assert.Equal(t, "2025-03-10", resp.Date)
	assert.Len(t, resp.Bookings, 1)

	_, err = s.ListForDay(context.Background(), 7, time.Time{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCancel(t *testing.T) {
	t.Run("scheduled", func(t *testing.T) {
		repo := &fakeJobRepo{job: scheduledJob()}
		s := NewService(repo, logger.NewNop())

		require.NoError(t, s.Cancel(context.Background(), 7, 11))
		assert.True(t, repo.cancelled)
	})

	t.Run("already completed", func(t *testing.T) {
		job := scheduledJob()
		job.Status = domain.JobStatusCompleted
		repo := &fakeJobRepo{job: job}
		s := NewService(repo, logger.NewNop())

		assert.ErrorIs(t, s.Cancel(context.Background(), 7, 11), ErrCannotCancel)
		assert.False(t, repo.cancelled)
	})

	t.Run("concurrent status change", func(t *testing.T) {
		s := NewService(&fakeJobRepo{job: scheduledJob(), cancelErr: jobRepo.ErrCannotCancel}, logger.NewNop())
		assert.ErrorIs(t, s.Cancel(context.Background(), 7, 11), ErrCannotCancel)
	})

	t.Run("not found", func(t *testing.T) {
		s := NewService(&fakeJobRepo{getErr: jobRepo.ErrJobNotFound}, logger.NewNop())
		assert.ErrorIs(t, s.Cancel(context.Background(), 7, 11), ErrBookingNotFound)
	})
}
