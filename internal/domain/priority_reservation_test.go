package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPriorityReservationInForceFor(t *testing.T) {
	r := PriorityReservation{
		Weekdays:      []Weekday{Tuesday},
		StartTime:     "09:00",
		EndTime:       "11:00",
		Segment:       SegmentVIP,
		FallbackHours: 24,
		Enabled:       true,
	}
	slotStart := time.Date(2025, 3, 11, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		segment CustomerSegment
		now     time.Time
		want    bool
	}{
		{name: "other segment before release", segment: SegmentNew, now: slotStart.Add(-25 * time.Hour), want: true},
		{name: "other segment at release", segment: SegmentNew, now: slotStart.Add(-24 * time.Hour), want: false},
		{name: "other segment after release", segment: SegmentReturning, now: slotStart.Add(-23 * time.Hour), want: false},
		{name: "matching segment", segment: SegmentVIP, now: slotStart.Add(-48 * time.Hour), want: false},
		{name: "unknown segment", segment: SegmentNone, now: slotStart.Add(-48 * time.Hour), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.InForceFor(tt.segment, slotStart, tt.now))
		})
	}
}

func TestPriorityReservationCovers(t *testing.T) {
	r := PriorityReservation{StartTime: "09:00", EndTime: "11:00"}
	date := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)

	assert.True(t, r.Covers(date, date.Add(9*time.Hour)))
	assert.True(t, r.Covers(date, date.Add(10*time.Hour+30*time.Minute)))
	assert.False(t, r.Covers(date, date.Add(11*time.Hour)))
	assert.False(t, r.Covers(date, date.Add(8*time.Hour+30*time.Minute)))
}

func TestPriorityReservationValidate(t *testing.T) {
	valid := PriorityReservation{StartTime: "09:00", EndTime: "11:00", Segment: SegmentReturning}
	assert.NoError(t, valid.Validate())

	inverted := valid
	inverted.StartTime, inverted.EndTime = "11:00", "09:00"
	assert.Error(t, inverted.Validate())

	noSegment := valid
	noSegment.Segment = SegmentNone
	assert.Error(t, noSegment.Validate())

	negative := valid
	negative.FallbackHours = -1
	assert.Error(t, negative.Validate())
}
