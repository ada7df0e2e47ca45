package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// BlockKind тип блокировки времени
type BlockKind string

const (
	BlockKindPersonal    BlockKind = "personal"
	BlockKindHoliday     BlockKind = "holiday"
	BlockKindUnavailable BlockKind = "unavailable"
)

// IsValid проверяет тип блокировки
func (k BlockKind) IsValid() bool {
	switch k {
	case BlockKindPersonal, BlockKindHoliday, BlockKindUnavailable:
		return true
	default:
		return false
	}
}

// RecurrencePattern шаблон повторения блокировки
type RecurrencePattern string

const (
	RecurrenceDaily   RecurrencePattern = "daily"
	RecurrenceWeekly  RecurrencePattern = "weekly"
	RecurrenceMonthly RecurrencePattern = "monthly"
	RecurrenceYearly  RecurrencePattern = "yearly"
)

// IsValid проверяет шаблон повторения
func (p RecurrencePattern) IsValid() bool {
	switch p {
	case RecurrenceDaily, RecurrenceWeekly, RecurrenceMonthly, RecurrenceYearly:
		return true
	default:
		return false
	}
}

var (
	// ErrInvalidTimeBlock возвращается при некорректной блокировке
	ErrInvalidTimeBlock = errors.New("domain: invalid time block")

	// ErrInvalidRecurrence возвращается при некорректном правиле повторения
	ErrInvalidRecurrence = errors.New("domain: invalid recurrence rule")
)

// Recurrence правило повторения
// Блокировка без повторения хранит Recurrence == nil, поэтому "повторяется, но без шаблона" невыразимо
type Recurrence struct {
	Pattern RecurrencePattern
	Until   *time.Time // Дата окончания (включительно), только дата
	Count   *int       // Общее количество повторений, включая первое
}

// Limit возвращает лимит повторений
func (r *Recurrence) Limit() int {
	if r.Count == nil {
		return DefaultOccurrenceLimit
	}
	return *r.Count
}

// Validate проверяет правило повторения
func (r *Recurrence) Validate() error {
	if !r.Pattern.IsValid() {
		return fmt.Errorf("%w: unknown pattern %q", ErrInvalidRecurrence, r.Pattern)
	}
	if r.Count != nil && *r.Count < 1 {
		return fmt.Errorf("%w: count must be positive", ErrInvalidRecurrence)
	}
	return nil
}

// TimeBlock период недоступности бизнеса (личное время, праздник, блокировка)
// Для повторяющейся блокировки Start/End задают первое вхождение и его длительность
type TimeBlock struct {
	ID          uuid.UUID
	BusinessID  int64
	Title       string
	Kind        BlockKind
	Description *string
	Start       time.Time
	End         time.Time
	Recurrence  *Recurrence
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsRecurring возвращает true, если блокировка повторяется
func (b *TimeBlock) IsRecurring() bool {
	return b.Recurrence != nil
}

// FirstOccurrence интервал первого вхождения
func (b *TimeBlock) FirstOccurrence() Interval {
	return Interval{Start: b.Start, End: b.End}
}

// Validate проверяет инварианты блокировки
func (b *TimeBlock) Validate() error {
	if !b.End.After(b.Start) {
		return fmt.Errorf("%w: end must be after start", ErrInvalidTimeBlock)
	}
	if b.Kind != "" && !b.Kind.IsValid() {
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidTimeBlock, b.Kind)
	}
	if b.Recurrence != nil {
		if err := b.Recurrence.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Occurrence конкретное вхождение блокировки
type Occurrence struct {
	ID       uuid.UUID // Детерминированный ID: производный от ID блокировки и номера
	BlockID  uuid.UUID
	Sequence int // 0 = первое вхождение
	Title    string
	Kind     BlockKind
	Interval Interval
}

// OccurrenceID вычисляет ID вхождения по ID блокировки и порядковому номеру
func OccurrenceID(blockID uuid.UUID, sequence int) uuid.UUID {
	return uuid.NewSHA1(blockID, []byte(fmt.Sprintf("occurrence-%d", sequence)))
}
