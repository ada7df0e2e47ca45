package domain

import "time"

// Interval полуоткрытый интервал [Start, End)
type Interval struct {
	Start time.Time
	End   time.Time
}

// NewInterval создает интервал от start длительностью duration
func NewInterval(start time.Time, duration time.Duration) Interval {
	return Interval{Start: start, End: start.Add(duration)}
}

// IsValid возвращает true, если конец строго позже начала
func (i Interval) IsValid() bool {
	return i.End.After(i.Start)
}

// Duration длительность интервала
func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

// Overlaps проверяет РЕАЛЬНОЕ пересечение интервалов
// Интервалы, которые только соприкасаются границами, не пересекаются:
// - [11:30, 12:00) и [11:00, 11:30) → НЕТ пересечения
// - [11:30, 12:00) и [11:20, 11:40) → ЕСТЬ пересечение
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.Before(other.End) && other.Start.Before(i.End)
}

// Contains возвращает true, если момент t лежит внутри [Start, End)
func (i Interval) Contains(t time.Time) bool {
	return !t.Before(i.Start) && t.Before(i.End)
}

// Overlaps свободная функция для пары интервалов
func Overlaps(a, b Interval) bool {
	return a.Overlaps(b)
}
