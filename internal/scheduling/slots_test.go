package scheduling

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

var (
	monday  = at(2025, time.March, 10, 0, 0)
	tuesday = at(2025, time.March, 11, 0, 0)
	sunday  = at(2025, time.March, 16, 0, 0)
)

func workday(date time.Time) DayConstraints {
	return DayConstraints{
		Date:     date,
		Hours:    domain.DayHours{Open: "09:00", Close: "17:00"},
		Capacity: 1,
	}
}

func booking(date time.Time, start types.TimeString, minutes int) domain.Interval {
	begin, _ := start.On(date)
	return domain.NewInterval(begin, time.Duration(minutes)*time.Minute)
}

func TestGenerateSlots_OpenDay(t *testing.T) {
	slots := GenerateSlots(workday(monday), SlotQuery{DurationMinutes: 60})

	require.Len(t, slots, 15)
	assert.Equal(t, types.TimeString("09:00"), slots[0])
	assert.Equal(t, types.TimeString("16:00"), slots[len(slots)-1])

	for i := 1; i < len(slots); i++ {
		assert.True(t, slots[i-1].IsBefore(slots[i]), "slots must be ascending")
	}
}

func TestGenerateSlots_LongServiceFitsBeforeClose(t *testing.T) {
	slots := GenerateSlots(workday(monday), SlotQuery{DurationMinutes: 90})

	require.NotEmpty(t, slots)
	assert.Equal(t, types.TimeString("15:30"), slots[len(slots)-1])
}

func newYorkDay(t *testing.T, y int, m time.Month, d int) time.Time {
	t.Helper()
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

func TestGenerateSlots_FallBackDoesNotRepeatLabels(t *testing.T) {
	date := newYorkDay(t, 2025, time.November, 2)
	c := DayConstraints{
		Date:     date,
		Hours:    domain.DayHours{Open: "00:00", Close: "03:00"},
		Capacity: 1,
	}

	slots := GenerateSlots(c, SlotQuery{DurationMinutes: 30})

	assert.Equal(t, []types.TimeString{"00:00", "00:30", "01:00", "01:30", "02:00", "02:30"}, slots)
	for i := 1; i < len(slots); i++ {
		assert.True(t, slots[i-1].IsBefore(slots[i]), "slots must be strictly ascending")
	}
}

func TestGenerateSlots_SpringForwardSkipsMissingHour(t *testing.T) {
	date := newYorkDay(t, 2025, time.March, 9)
	c := DayConstraints{
		Date:     date,
		Hours:    domain.DayHours{Open: "00:00", Close: "04:00"},
		Capacity: 1,
	}

	slots := GenerateSlots(c, SlotQuery{DurationMinutes: 30})

	assert.Equal(t, []types.TimeString{"00:00", "00:30", "01:00", "01:30", "03:00", "03:30"}, slots)
}

func TestGenerateSlots_ClosedDay(t *testing.T) {
	c := workday(sunday)
	c.Hours = domain.DayHours{Closed: true}

	assert.Empty(t, GenerateSlots(c, SlotQuery{DurationMinutes: 60}))
}

func TestGenerateSlots_InvalidDuration(t *testing.T) {
	assert.Empty(t, GenerateSlots(workday(monday), SlotQuery{DurationMinutes: 0}))
	assert.Empty(t, GenerateSlots(workday(monday), SlotQuery{DurationMinutes: -30}))
}

func TestGenerateSlots_ServiceLongerThanDay(t *testing.T) {
	assert.Empty(t, GenerateSlots(workday(monday), SlotQuery{DurationMinutes: 9 * 60}))
}

func TestGenerateSlots_BlockedTime(t *testing.T) {
	c := workday(monday)
	c.Blocked = []domain.Interval{booking(monday, "12:00", 60)}

	slots := GenerateSlots(c, SlotQuery{DurationMinutes: 60})

	assert.Contains(t, slots, types.TimeString("11:00"))
	assert.NotContains(t, slots, types.TimeString("11:30"))
	assert.NotContains(t, slots, types.TimeString("12:00"))
	assert.NotContains(t, slots, types.TimeString("12:30"))
	assert.Contains(t, slots, types.TimeString("13:00"))

	for _, slot := range slots {
		candidate := booking(monday, slot, 60)
		for _, blocked := range c.Blocked {
			assert.False(t, candidate.Overlaps(blocked), "slot %s overlaps block", slot)
		}
	}
}

func TestGenerateSlots_RecurringBlockViaExpansion(t *testing.T) {
	block := domain.TimeBlock{
		ID:         uuid.New(),
		Start:      at(2025, time.March, 3, 13, 0),
		End:        at(2025, time.March, 3, 14, 0),
		Recurrence: &domain.Recurrence{Pattern: domain.RecurrenceWeekly},
	}
	blocked, skipped := BlockedIntervals([]domain.TimeBlock{block}, DayWindow(monday))
	require.Empty(t, skipped)
	require.Len(t, blocked, 1)

	c := workday(monday)
	c.Blocked = blocked

	slots := GenerateSlots(c, SlotQuery{DurationMinutes: 30})
	assert.Contains(t, slots, types.TimeString("12:30"))
	assert.NotContains(t, slots, types.TimeString("13:00"))
	assert.NotContains(t, slots, types.TimeString("13:30"))
	assert.Contains(t, slots, types.TimeString("14:00"))
}

func TestGenerateSlots_Capacity(t *testing.T) {
	t.Run("capacity two, one booking", func(t *testing.T) {
		c := workday(monday)
		c.Capacity = 2
		c.Bookings = []domain.Interval{booking(monday, "10:00", 60)}

		slots := GenerateSlots(c, SlotQuery{DurationMinutes: 60})
		assert.Contains(t, slots, types.TimeString("09:30"))
		assert.Contains(t, slots, types.TimeString("10:00"))
		assert.Contains(t, slots, types.TimeString("10:30"))
	})

	t.Run("capacity two, two bookings", func(t *testing.T) {
		c := workday(monday)
		c.Capacity = 2
		c.Bookings = []domain.Interval{
			booking(monday, "10:00", 60),
			booking(monday, "10:00", 60),
		}

		slots := GenerateSlots(c, SlotQuery{DurationMinutes: 60})
		assert.Contains(t, slots, types.TimeString("09:00"))
		assert.NotContains(t, slots, types.TimeString("09:30"))
		assert.NotContains(t, slots, types.TimeString("10:00"))
		assert.NotContains(t, slots, types.TimeString("10:30"))
		assert.Contains(t, slots, types.TimeString("11:00"))
	})

	t.Run("zero capacity is floored to one", func(t *testing.T) {
		c := workday(monday)
		c.Capacity = 0

		slots := GenerateSlots(c, SlotQuery{DurationMinutes: 60})
		assert.Len(t, slots, 15)
	})
}

func TestGenerateSlots_CapacityBound(t *testing.T) {
	c := workday(monday)
	c.Capacity = 3
	c.Bookings = []domain.Interval{
		booking(monday, "09:00", 120),
		booking(monday, "10:00", 60),
		booking(monday, "10:30", 90),
		booking(monday, "14:00", 30),
	}

	for _, slot := range GenerateSlots(c, SlotQuery{DurationMinutes: 60}) {
		candidate := booking(monday, slot, 60)
		assert.Less(t, CountOverlapping(candidate, c.Bookings), c.Capacity, "slot %s", slot)
	}
}

func TestGenerateSlots_PriorityReservation(t *testing.T) {
	c := workday(tuesday)
	c.Reservations = []domain.PriorityReservation{{
		ID:            1,
		Weekdays:      []domain.Weekday{domain.Tuesday},
		StartTime:     "09:00",
		EndTime:       "11:00",
		Segment:       domain.SegmentVIP,
		FallbackHours: 24,
		Enabled:       true,
	}}

	t.Run("before release", func(t *testing.T) {
		slots := GenerateSlots(c, SlotQuery{
			DurationMinutes: 60,
			Segment:         domain.SegmentNew,
			Now:             at(2025, time.March, 10, 8, 0),
		})
		assert.NotContains(t, slots, types.TimeString("09:00"))
		assert.NotContains(t, slots, types.TimeString("10:30"))
		assert.Contains(t, slots, types.TimeString("11:00"))
	})

	t.Run("after release", func(t *testing.T) {
		slots := GenerateSlots(c, SlotQuery{
			DurationMinutes: 60,
			Segment:         domain.SegmentNew,
			Now:             at(2025, time.March, 10, 10, 0),
		})
		assert.Contains(t, slots, types.TimeString("09:00"))
		assert.Contains(t, slots, types.TimeString("09:30"))
		assert.Contains(t, slots, types.TimeString("10:00"))
		assert.NotContains(t, slots, types.TimeString("10:30"))
	})

	t.Run("reserved segment", func(t *testing.T) {
		slots := GenerateSlots(c, SlotQuery{
			DurationMinutes: 60,
			Segment:         domain.SegmentVIP,
			Now:             at(2025, time.March, 10, 8, 0),
		})
		assert.Contains(t, slots, types.TimeString("09:00"))
		assert.Contains(t, slots, types.TimeString("10:30"))
	})

	t.Run("unknown customer", func(t *testing.T) {
		slots := GenerateSlots(c, SlotQuery{
			DurationMinutes: 60,
			Segment:         domain.SegmentNone,
			Now:             at(2025, time.March, 10, 8, 0),
		})
		assert.NotContains(t, slots, types.TimeString("09:00"))
	})

	t.Run("disabled reservation", func(t *testing.T) {
		disabled := c
		disabled.Reservations = []domain.PriorityReservation{c.Reservations[0]}
		disabled.Reservations[0].Enabled = false

		slots := GenerateSlots(disabled, SlotQuery{
			DurationMinutes: 60,
			Segment:         domain.SegmentNew,
			Now:             at(2025, time.March, 10, 8, 0),
		})
		assert.Contains(t, slots, types.TimeString("09:00"))
	})

	t.Run("other weekday", func(t *testing.T) {
		other := c
		other.Date = monday

		slots := GenerateSlots(other, SlotQuery{
			DurationMinutes: 60,
			Segment:         domain.SegmentNew,
			Now:             at(2025, time.March, 9, 8, 0),
		})
		assert.Contains(t, slots, types.TimeString("09:00"))
	})
}

func TestGenerateSlots_MultipleReservations(t *testing.T) {
	c := workday(tuesday)
	c.Reservations = []domain.PriorityReservation{
		{Weekdays: []domain.Weekday{domain.Tuesday}, StartTime: "09:00", EndTime: "10:00", Segment: domain.SegmentVIP, FallbackHours: 48, Enabled: true},
		{Weekdays: []domain.Weekday{domain.Tuesday}, StartTime: "09:00", EndTime: "10:00", Segment: domain.SegmentReturning, FallbackHours: 2, Enabled: true},
	}

	// VIP-окно клиента не ограничивает, но окно для returning еще действует
	slots := GenerateSlots(c, SlotQuery{
		DurationMinutes: 30,
		Segment:         domain.SegmentVIP,
		Now:             at(2025, time.March, 10, 12, 0),
	})
	assert.NotContains(t, slots, types.TimeString("09:00"))
	assert.Contains(t, slots, types.TimeString("10:00"))
}

func TestGenerateSlots_SkipsPastStarts(t *testing.T) {
	slots := GenerateSlots(workday(monday), SlotQuery{
		DurationMinutes: 60,
		Now:             at(2025, time.March, 10, 12, 10),
	})

	require.NotEmpty(t, slots)
	assert.Equal(t, types.TimeString("12:30"), slots[0])
}

func TestGenerateSlots_Deterministic(t *testing.T) {
	c := workday(monday)
	c.Capacity = 2
	c.Bookings = []domain.Interval{booking(monday, "10:00", 60)}
	c.Blocked = []domain.Interval{booking(monday, "15:00", 30)}
	q := SlotQuery{DurationMinutes: 45, Segment: domain.SegmentReturning}

	assert.Equal(t, GenerateSlots(c, q), GenerateSlots(c, q))
}

func TestContainsSlot(t *testing.T) {
	slots := []types.TimeString{"09:00", "09:30", "10:00"}

	assert.True(t, ContainsSlot(slots, "09:30"))
	assert.False(t, ContainsSlot(slots, "09:15"))
	assert.False(t, ContainsSlot(slots, "9:30"))
	assert.False(t, ContainsSlot(nil, "09:00"))
}

func TestBookingIntervals(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	jobs := []*domain.Job{
		{ScheduledAt: at(2025, time.March, 10, 10, 0), HasTime: true, DurationMinutes: 60, Status: domain.JobStatusScheduled},
		{ScheduledAt: at(2025, time.March, 10, 0, 0), HasTime: false, DurationMinutes: 60, Status: domain.JobStatusScheduled},
		{ScheduledAt: at(2025, time.March, 10, 12, 0), HasTime: true, DurationMinutes: 60, Status: domain.JobStatusCancelled},
		{ScheduledAt: at(2025, time.March, 10, 14, 0), HasTime: true, DurationMinutes: 0, Status: domain.JobStatusScheduled},
	}

	got := BookingIntervals(jobs, loc)
	require.Len(t, got, 1)
	assert.Equal(t, time.Date(2025, time.March, 10, 10, 0, 0, 0, loc), got[0].Start)
	assert.Equal(t, time.Hour, got[0].Duration())
	assert.Equal(t, time.UTC, jobs[0].ScheduledAt.Location(), "source job must stay untouched")
}

func TestActiveReservations(t *testing.T) {
	valid := domain.PriorityReservation{ID: 1, StartTime: "09:00", EndTime: "10:00", Segment: domain.SegmentVIP, Enabled: true}
	disabled := domain.PriorityReservation{ID: 2, StartTime: "09:00", EndTime: "10:00", Segment: domain.SegmentVIP}
	inverted := domain.PriorityReservation{ID: 3, StartTime: "11:00", EndTime: "10:00", Segment: domain.SegmentVIP, Enabled: true}

	active, skipped := ActiveReservations([]domain.PriorityReservation{valid, disabled, inverted})
	require.Len(t, active, 1)
	assert.Equal(t, int64(1), active[0].ID)
	require.Len(t, skipped, 1)
	assert.Equal(t, int64(3), skipped[0].ID)
}

func TestBlockedIntervals_SkipsInvalid(t *testing.T) {
	blocks := []domain.TimeBlock{
		{ID: uuid.New(), Start: at(2025, time.March, 10, 12, 0), End: at(2025, time.March, 10, 11, 0)},
		{ID: uuid.New(), Start: at(2025, time.March, 10, 12, 0), End: at(2025, time.March, 10, 13, 0)},
	}

	blocked, skipped := BlockedIntervals(blocks, DayWindow(monday))
	assert.Len(t, blocked, 1)
	assert.Len(t, skipped, 1)
}
