package domain

import (
	"fmt"
	"time"
)

// Weekday день недели (понедельник = 1 ... воскресенье = 7, ISO-8601)
type Weekday int

const (
	Monday Weekday = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// AllWeekdays все дни недели по порядку
var AllWeekdays = [...]Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// WeekdayOf возвращает день недели даты
func WeekdayOf(date time.Time) Weekday {
	switch date.Weekday() {
	case time.Monday:
		return Monday
	case time.Tuesday:
		return Tuesday
	case time.Wednesday:
		return Wednesday
	case time.Thursday:
		return Thursday
	case time.Friday:
		return Friday
	case time.Saturday:
		return Saturday
	default:
		return Sunday
	}
}

// IsValid проверяет, что значение является днем недели
func (w Weekday) IsValid() bool {
	return w >= Monday && w <= Sunday
}

// String возвращает название дня недели в нижнем регистре
func (w Weekday) String() string {
	switch w {
	case Monday:
		return "monday"
	case Tuesday:
		return "tuesday"
	case Wednesday:
		return "wednesday"
	case Thursday:
		return "thursday"
	case Friday:
		return "friday"
	case Saturday:
		return "saturday"
	case Sunday:
		return "sunday"
	default:
		return fmt.Sprintf("weekday(%d)", int(w))
	}
}
