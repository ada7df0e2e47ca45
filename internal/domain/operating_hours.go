package domain

import (
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// DayHours расписание работы на один день
type DayHours struct {
	Closed bool             `json:"closed"`
	Open   types.TimeString `json:"open,omitempty"`
	Close  types.TimeString `json:"close,omitempty"`
}

// Validate проверяет, что для открытого дня заданы корректные часы и open < close
func (d DayHours) Validate() error {
	if d.Closed {
		return nil
	}
	openMin, err := d.Open.Minutes()
	if err != nil {
		return fmt.Errorf("open: %w", err)
	}
	closeMin, err := d.Close.Minutes()
	if err != nil {
		return fmt.Errorf("close: %w", err)
	}
	if openMin >= closeMin {
		return fmt.Errorf("open %s must be before close %s", d.Open, d.Close)
	}
	return nil
}

// OperatingHours недельное расписание работы бизнеса
// nil-значение дня означает "не настроено" и заменяется расписанием по умолчанию
type OperatingHours struct {
	Monday    *DayHours `json:"monday,omitempty"`
	Tuesday   *DayHours `json:"tuesday,omitempty"`
	Wednesday *DayHours `json:"wednesday,omitempty"`
	Thursday  *DayHours `json:"thursday,omitempty"`
	Friday    *DayHours `json:"friday,omitempty"`
	Saturday  *DayHours `json:"saturday,omitempty"`
	Sunday    *DayHours `json:"sunday,omitempty"`
}

// DefaultOperatingHours расписание по умолчанию: пн-пт 09:00-17:00, сб-вс выходные
func DefaultOperatingHours() OperatingHours {
	workday := func() *DayHours {
		return &DayHours{Open: "09:00", Close: "17:00"}
	}
	dayOff := func() *DayHours {
		return &DayHours{Closed: true}
	}

	return OperatingHours{
		Monday:    workday(),
		Tuesday:   workday(),
		Wednesday: workday(),
		Thursday:  workday(),
		Friday:    workday(),
		Saturday:  dayOff(),
		Sunday:    dayOff(),
	}
}

// ForDay возвращает расписание на день недели; nil, если день не настроен
func (h *OperatingHours) ForDay(day Weekday) *DayHours {
	if h == nil {
		return nil
	}

	switch day {
	case Monday:
		return h.Monday
	case Tuesday:
		return h.Tuesday
	case Wednesday:
		return h.Wednesday
	case Thursday:
		return h.Thursday
	case Friday:
		return h.Friday
	case Saturday:
		return h.Saturday
	case Sunday:
		return h.Sunday
	default:
		return nil
	}
}

// ResolveDay возвращает расписание на день с откатом к fallback,
// если день не настроен или настроен некорректно. Второе значение - был ли откат.
func (h *OperatingHours) ResolveDay(day Weekday, fallback OperatingHours) (DayHours, bool) {
	if configured := h.ForDay(day); configured != nil && configured.Validate() == nil {
		return *configured, false
	}

	if def := fallback.ForDay(day); def != nil && def.Validate() == nil {
		return *def, true
	}

	return DayHours{Closed: true}, true
}
