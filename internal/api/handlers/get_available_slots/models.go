package get_available_slots

import (
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date            string   `json:"date"`
	BusinessID      int64    `json:"businessId"`
	DurationMinutes int      `json:"durationMinutes"`
	Segment         string   `json:"segment,omitempty"`
	Slots           []string `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]string, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = slot.String()
	}

	return &AvailableSlotsResponse{
		Date:            resp.Date.Format(domain.DateFormat),
		BusinessID:      resp.BusinessID,
		DurationMinutes: resp.DurationMinutes,
		Segment:         string(resp.Segment),
		Slots:           slots,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(businessID int64, dateStr, durationStr, email, phone string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, errInvalidDate
	}

	duration, err := strconv.Atoi(durationStr)
	if err != nil {
		return nil, errInvalidDuration
	}

	return &getAvailableSlots.Request{
		BusinessID:      businessID,
		Date:            date,
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
