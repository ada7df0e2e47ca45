package scheduling

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// DayConstraints собранные ограничения на один день для одного бизнеса
// Все моменты времени выражены в настенном времени бизнеса в локации Date
type DayConstraints struct {
	Date         time.Time // Полночь целевого дня
	Hours        domain.DayHours
	Blocked      []domain.Interval
	Reservations []domain.PriorityReservation
	Bookings     []domain.Interval
	Capacity     int
}

// SlotQuery параметры генерации слотов
type SlotQuery struct {
	DurationMinutes int
	Segment         domain.CustomerSegment
	Now             time.Time // Текущее настенное время бизнеса
}

// GenerateSlots возвращает доступные времена начала по возрастанию с шагом domain.SlotStepMinutes
// Закрытый день, полностью занятый день или некорректная длительность дают пустой список
func GenerateSlots(c DayConstraints, q SlotQuery) []types.TimeString {
	slots := make([]types.TimeString, 0)

	if c.Hours.Closed || q.DurationMinutes <= 0 {
		return slots
	}

	duration := time.Duration(q.DurationMinutes) * time.Minute
	capacity := domain.FloorCapacity(c.Capacity)
	weekday := domain.WeekdayOf(c.Date)

	// Сетка строится в настенных минутах: при переводе часов метки не повторяются
	for slot := c.Hours.Open; slot.IsBefore(c.Hours.Close); {
		start, err := slot.On(c.Date)
		if err != nil {
			break
		}

		// Несуществующее настенное время (переход на летнее время) пропускается
		if types.NewTimeString(start) == slot {
			candidate := domain.NewInterval(start, duration)
			if isSlotAvailable(c, candidate, capacity, weekday, q) {
				slots = append(slots, slot)
			}
		}

		next, err := slot.AddMinutes(domain.SlotStepMinutes)
		if err != nil {
			break
		}
		slot = next
	}

	return slots
}

// isSlotAvailable проверяет один кандидат против всех ограничений
func isSlotAvailable(c DayConstraints, candidate domain.Interval, capacity int, weekday domain.Weekday, q SlotQuery) bool {
	closing, _ := c.Hours.Close.On(c.Date)

	// a. Слот не должен выходить за время закрытия
	if candidate.End.After(closing) {
		return false
	}

	// Слот в прошлом забронировать нельзя
	if !q.Now.IsZero() && candidate.Start.Before(q.Now) {
		return false
	}

	// b. Любое пересечение с блокировкой исключает слот
	if overlapsAny(candidate, c.Blocked) {
		return false
	}

	// c. Количество пересекающихся заказов должно быть строго меньше ёмкости
	if CountOverlapping(candidate, c.Bookings) >= capacity {
		return false
	}

	// d. Приоритетное резервирование закрывает слот для чужого сегмента до момента освобождения
	for i := range c.Reservations {
		reservation := &c.Reservations[i]
		if !reservation.Enabled || !reservation.AppliesOn(weekday) {
			continue
		}
		if !reservation.Covers(c.Date, candidate.Start) {
			continue
		}
		if reservation.InForceFor(q.Segment, candidate.Start, q.Now) {
			return false
		}
	}

	return true
}

// CountOverlapping подсчитывает интервалы, пересекающиеся с candidate
func CountOverlapping(candidate domain.Interval, intervals []domain.Interval) int {
	count := 0
	for _, interval := range intervals {
		if domain.Overlaps(candidate, interval) {
			count++
		}
	}
	return count
}

func overlapsAny(candidate domain.Interval, intervals []domain.Interval) bool {
	for _, interval := range intervals {
		if domain.Overlaps(candidate, interval) {
			return true
		}
	}
	return false
}

// ContainsSlot проверяет точное совпадение строки времени с одним из слотов
func ContainsSlot(slots []types.TimeString, requested types.TimeString) bool {
	for _, slot := range slots {
		if slot == requested {
			return true
		}
	}
	return false
}
