package check_slot_availability

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// Request модель запроса на проверку слота
type Request struct {
	BusinessID      int64
	Date            time.Time
	Time            types.TimeString // Строго HH:MM
	DurationMinutes int
	CustomerEmail   *string
	CustomerPhone   *string
}

// Response результат проверки
type Response struct {
	Date            time.Time
	Time            types.TimeString
	DurationMinutes int
	Available       bool
}
