package scheduling

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// DayWindow возвращает окно [полночь date, полночь следующего дня)
func DayWindow(date time.Time) domain.Interval {
	start := StartOfDay(date)
	return domain.Interval{Start: start, End: start.AddDate(0, 0, 1)}
}

// StartOfDay обнуляет время, сохраняя локацию
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// WallClock переносит настенное время t (год, месяц, день, часы, минуты) в локацию loc без пересчета пояса
// Движок сравнивает только настенное время бизнеса; хранилище может вернуть момент в другой локации
func WallClock(t time.Time, loc *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, loc)
}

// BlockedIntervals разворачивает все блокировки в окне дня и возвращает пересекающиеся с днем интервалы
// Некорректные блокировки пропускаются и возвращаются во втором значении для логирования
func BlockedIntervals(blocks []domain.TimeBlock, day domain.Interval) ([]domain.Interval, []domain.TimeBlock) {
	intervals := make([]domain.Interval, 0)
	skipped := make([]domain.TimeBlock, 0)

	loc := day.Start.Location()
	for _, block := range blocks {
		if err := block.Validate(); err != nil {
			skipped = append(skipped, block)
			continue
		}

		anchored := block
		anchored.Start = WallClock(block.Start, loc)
		anchored.End = WallClock(block.End, loc)

		for _, occurrence := range ExpandOccurrences(anchored, day) {
			if occurrence.Interval.Overlaps(day) {
				intervals = append(intervals, occurrence.Interval)
			}
		}
	}

	return intervals, skipped
}

// BookingIntervals возвращает интервалы заказов, занимающих исполнителей
// Заказы без явно заданного времени и не в статусе scheduled не учитываются
func BookingIntervals(jobs []*domain.Job, loc *time.Location) []domain.Interval {
	intervals := make([]domain.Interval, 0, len(jobs))
	for _, job := range jobs {
		if !job.CountsAgainstCapacity() {
			continue
		}
		anchored := *job
		anchored.ScheduledAt = WallClock(job.ScheduledAt, loc)
		intervals = append(intervals, anchored.Interval())
	}
	return intervals
}

// ActiveReservations оставляет включенные и корректные резервирования
func ActiveReservations(reservations []domain.PriorityReservation) ([]domain.PriorityReservation, []domain.PriorityReservation) {
	active := make([]domain.PriorityReservation, 0, len(reservations))
	skipped := make([]domain.PriorityReservation, 0)

	for _, reservation := range reservations {
		if !reservation.Enabled {
			continue
		}
		if err := reservation.Validate(); err != nil {
			skipped = append(skipped, reservation)
			continue
		}
		active = append(active, reservation)
	}

	return active, skipped
}
