package scheduling

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// ExpandOccurrences возвращает вхождения блокировки, пересекающиеся с окном window, по возрастанию
// Функция чистая: одинаковые входные данные дают одинаковый результат (включая ID вхождений)
// Некорректная блокировка или правило повторения дают пустой результат
func ExpandOccurrences(block domain.TimeBlock, window domain.Interval) []domain.Occurrence {
	if block.Validate() != nil || !window.IsValid() {
		return nil
	}

	if !block.IsRecurring() {
		first := block.FirstOccurrence()
		if !first.Overlaps(window) {
			return nil
		}
		return []domain.Occurrence{newOccurrence(block, 0, first)}
	}

	rule := block.Recurrence
	limit := rule.Limit()
	duration := block.End.Sub(block.Start)

	var stopAt *time.Time
	if rule.Until != nil {
		y, m, d := rule.Until.Date()
		// Until включительно: останавливаемся на начале следующего дня
		next := time.Date(y, m, d, 0, 0, 0, 0, block.Start.Location()).AddDate(0, 0, 1)
		stopAt = &next
	}

	// Перемотка: начинаем с оценки номера вхождения около начала окна,
	// затем шагаем назад, пока предыдущее вхождение ещё задевает окно.
	// Так вхождение, начавшееся до окна, но пересекающее его, не теряется.
	seq := estimateSequence(rule.Pattern, block.Start, window.Start)
	if seq > limit-1 {
		seq = limit - 1
	}
	for seq > 0 && occurrenceStart(rule.Pattern, block.Start, seq-1).Add(duration).After(window.Start) {
		seq--
	}

	occurrences := make([]domain.Occurrence, 0)
	for ; seq < limit; seq++ {
		start := occurrenceStart(rule.Pattern, block.Start, seq)
		if !start.Before(window.End) {
			break
		}
		if stopAt != nil && !start.Before(*stopAt) {
			break
		}

		interval := domain.NewInterval(start, duration)
		if !interval.Overlaps(window) {
			continue
		}
		occurrences = append(occurrences, newOccurrence(block, seq, interval))
	}

	return occurrences
}

// occurrenceStart вычисляет начало вхождения с номером seq от первого вхождения
// Время суток первого вхождения переносится на все повторения
func occurrenceStart(pattern domain.RecurrencePattern, first time.Time, seq int) time.Time {
	switch pattern {
	case domain.RecurrenceDaily:
		return first.AddDate(0, 0, seq)
	case domain.RecurrenceWeekly:
		return first.AddDate(0, 0, 7*seq)
	case domain.RecurrenceMonthly:
		return addMonthsClamped(first, seq)
	case domain.RecurrenceYearly:
		return addMonthsClamped(first, 12*seq)
	default:
		return first
	}
}

// addMonthsClamped сдвигает дату на months месяцев
// Если в целевом месяце нет такого числа, берется его последний день (31 января -> 28 февраля)
func addMonthsClamped(first time.Time, months int) time.Time {
	y, m, d := first.Date()
	hour, minute, sec := first.Clock()

	// Нулевой день следующего месяца = последний день целевого
	lastDay := time.Date(y, m+time.Month(months)+1, 0, 0, 0, 0, 0, first.Location()).Day()
	if d > lastDay {
		d = lastDay
	}

	return time.Date(y, m+time.Month(months), d, hour, minute, sec, first.Nanosecond(), first.Location())
}

// estimateSequence грубая оценка номера вхождения, ближайшего к моменту at
// Может ошибаться на одно-два вхождения, это исправляет перемотка и пропуск непересекающихся
func estimateSequence(pattern domain.RecurrencePattern, first, at time.Time) int {
	if !at.After(first) {
		return 0
	}

	var seq int
	switch pattern {
	case domain.RecurrenceDaily:
		seq = int(at.Sub(first).Hours() / 24)
	case domain.RecurrenceWeekly:
		seq = int(at.Sub(first).Hours() / (24 * 7))
	case domain.RecurrenceMonthly:
		seq = (at.Year()-first.Year())*12 + int(at.Month()) - int(first.Month())
	case domain.RecurrenceYearly:
		seq = at.Year() - first.Year()
	}

	if seq < 0 {
		return 0
	}
	return seq
}

func newOccurrence(block domain.TimeBlock, seq int, interval domain.Interval) domain.Occurrence {
	return domain.Occurrence{
		ID:       domain.OccurrenceID(block.ID, seq),
		BlockID:  block.ID,
		Sequence: seq,
		Title:    block.Title,
		Kind:     block.Kind,
		Interval: interval,
	}
}
