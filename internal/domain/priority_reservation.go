package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// PriorityReservation еженедельное окно, зарезервированное за сегментом клиентов
// до момента fallback-освобождения (FallbackHours часов до начала слота)
type PriorityReservation struct {
	ID            int64
	BusinessID    int64
	Weekdays      []Weekday
	StartTime     types.TimeString
	EndTime       types.TimeString
	Segment       CustomerSegment
	FallbackHours int
	Enabled       bool
}

// Validate проверяет инварианты резервирования
func (r *PriorityReservation) Validate() error {
	startMin, err := r.StartTime.Minutes()
	if err != nil {
		return fmt.Errorf("start: %w", err)
	}
	endMin, err := r.EndTime.Minutes()
	if err != nil {
		return fmt.Errorf("end: %w", err)
	}
	if startMin >= endMin {
		return fmt.Errorf("start %s must be before end %s", r.StartTime, r.EndTime)
	}
	if r.FallbackHours < 0 || r.FallbackHours > MaxFallbackHours {
		return fmt.Errorf("fallback hours must be between 0 and %d", MaxFallbackHours)
	}
	if !r.Segment.IsValid() {
		return fmt.Errorf("unknown segment %q", r.Segment)
	}
	return nil
}

// AppliesOn возвращает true, если резервирование действует в этот день недели
func (r *PriorityReservation) AppliesOn(day Weekday) bool {
	for _, w := range r.Weekdays {
		if w == day {
			return true
		}
	}
	return false
}

// Covers возвращает true, если окно резервирования на дату date содержит момент start
func (r *PriorityReservation) Covers(date time.Time, start time.Time) bool {
	from, err := r.StartTime.On(date)
	if err != nil {
		return false
	}
	to, err := r.EndTime.On(date)
	if err != nil {
		return false
	}
	return Interval{Start: from, End: to}.Contains(start)
}

// ReleaseAt момент, начиная с которого слот открыт для всех клиентов
func (r *PriorityReservation) ReleaseAt(slotStart time.Time) time.Time {
	return slotStart.Add(-time.Duration(r.FallbackHours) * time.Hour)
}

// InForceFor возвращает true, если резервирование все еще закрывает слот для клиента сегмента segment
func (r *PriorityReservation) InForceFor(segment CustomerSegment, slotStart, now time.Time) bool {
	if segment != SegmentNone && segment == r.Segment {
		return false
	}
	return now.Before(r.ReleaseAt(slotStart))
}
