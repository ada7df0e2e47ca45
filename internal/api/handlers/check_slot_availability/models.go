package check_slot_availability

import (
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	checkSlotAvailability "github.com/m04kA/SMC-AvailabilityService/internal/usecase/check_slot_availability"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// SlotAvailabilityResponse HTTP response model
type SlotAvailabilityResponse struct {
	Date            string `json:"date"`
	Time            string `json:"time"`
	DurationMinutes int    `json:"durationMinutes"`
	Available       bool   `json:"available"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkSlotAvailability.Response) *SlotAvailabilityResponse {
	return &SlotAvailabilityResponse{
		Date:            resp.Date.Format(domain.DateFormat),
		Time:            resp.Time.String(),
		DurationMinutes: resp.DurationMinutes,
		Available:       resp.Available,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
// Формат времени проверяет use case
func ToUseCaseRequest(businessID int64, dateStr, timeStr, durationStr, email, phone string) (*checkSlotAvailability.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, errInvalidDate
	}

	duration, err := strconv.Atoi(durationStr)
	if err != nil {
		return nil, errInvalidDuration
	}

	return &checkSlotAvailability.Request{
		BusinessID:      businessID,
		Date:            date,
		Time:            types.TimeString(timeStr),
		DurationMinutes: duration,
		CustomerEmail:   optional(email),
		CustomerPhone:   optional(phone),
	}, nil
}

func optional(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return &value
}
