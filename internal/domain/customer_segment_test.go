package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifySegment(t *testing.T) {
	tests := []struct {
		name    string
		history *CustomerHistory
		want    CustomerSegment
	}{
		{name: "no history", history: nil, want: SegmentNew},
		{name: "no completed jobs", history: &CustomerHistory{CustomerID: 1}, want: SegmentNew},
		{name: "returning", history: &CustomerHistory{CompletedJobs: 2, CompletedValue: 400}, want: SegmentReturning},
		{name: "exactly threshold", history: &CustomerHistory{CompletedJobs: 5, CompletedValue: 1000}, want: SegmentReturning},
		{name: "vip", history: &CustomerHistory{CompletedJobs: 3, CompletedValue: 1000.01}, want: SegmentVIP},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifySegment(tt.history, DefaultVIPRevenueThreshold))
		})
	}
}

func TestWorkerCapacity(t *testing.T) {
	assert.Equal(t, 1, WorkerCapacity(0))
	assert.Equal(t, 4, WorkerCapacity(3))
	assert.Equal(t, 1, WorkerCapacity(-5))
	assert.Equal(t, 1, FloorCapacity(0))
	assert.Equal(t, 2, FloorCapacity(2))

	b := Business{RosterSize: 2}
	assert.Equal(t, 3, b.Capacity())
}

func TestJobCountsAgainstCapacity(t *testing.T) {
	job := Job{Status: JobStatusScheduled, HasTime: true, DurationMinutes: 60}
	assert.True(t, job.CountsAgainstCapacity())

	dateOnly := job
	dateOnly.HasTime = false
	assert.False(t, dateOnly.CountsAgainstCapacity())

	completed := job
	completed.Status = JobStatusCompleted
	assert.False(t, completed.CountsAgainstCapacity())
}
