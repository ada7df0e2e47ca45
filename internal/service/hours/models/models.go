package models

import (
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// Request модели

// DayHoursRequest расписание одного дня
type DayHoursRequest struct {
	Closed bool   `json:"closed"`
	Open   string `json:"open,omitempty"`  // HH:MM
	Close  string `json:"close,omitempty"` // HH:MM
}

// UpdateOperatingHoursRequest запрос на обновление расписания
// Все дни опциональны - обновляются только переданные
type UpdateOperatingHoursRequest struct {
	BusinessID int64            `json:"-"`
	Monday     *DayHoursRequest `json:"monday,omitempty"`
	Tuesday    *DayHoursRequest `json:"tuesday,omitempty"`
	Wednesday  *DayHoursRequest `json:"wednesday,omitempty"`
	Thursday   *DayHoursRequest `json:"thursday,omitempty"`
	Friday     *DayHoursRequest `json:"friday,omitempty"`
	Saturday   *DayHoursRequest `json:"saturday,omitempty"`
	Sunday     *DayHoursRequest `json:"sunday,omitempty"`
}

// Days возвращает переданные дни по дням недели
func (r *UpdateOperatingHoursRequest) Days() map[domain.Weekday]*DayHoursRequest {
	days := make(map[domain.Weekday]*DayHoursRequest)
	add := func(day domain.Weekday, value *DayHoursRequest) {
		if value != nil {
			days[day] = value
		}
	}

	add(domain.Monday, r.Monday)
	add(domain.Tuesday, r.Tuesday)
	add(domain.Wednesday, r.Wednesday)
	add(domain.Thursday, r.Thursday)
	add(domain.Friday, r.Friday)
	add(domain.Saturday, r.Saturday)
	add(domain.Sunday, r.Sunday)

	return days
}

// ToDomain конвертирует расписание дня в domain модель
func (d *DayHoursRequest) ToDomain() domain.DayHours {
	if d.Closed {
		return domain.DayHours{Closed: true}
	}
	return domain.DayHours{
		Open:  types.TimeString(d.Open),
		Close: types.TimeString(d.Close),
	}
}

// Response модели

// DayScheduleResponse действующее расписание дня
type DayScheduleResponse struct {
	Day       string  `json:"day"`
	Closed    bool    `json:"closed"`
	Open      *string `json:"open,omitempty"`
	Close     *string `json:"close,omitempty"`
	IsDefault bool    `json:"isDefault"` // true = используется расписание по умолчанию
}

// OperatingHoursResponse действующее недельное расписание бизнеса
type OperatingHoursResponse struct {
	BusinessID int64                 `json:"businessId"`
	Timezone   string                `json:"timezone"`
	Days       []DayScheduleResponse `json:"days"`
}

// Методы конвертации

// FromDomainBusiness собирает действующее расписание с откатом к расписанию по умолчанию
func FromDomainBusiness(b *domain.Business) *OperatingHoursResponse {
	if b == nil {
		return nil
	}

	resp := &OperatingHoursResponse{
		BusinessID: b.ID,
		Timezone:   b.Timezone,
		Days:       make([]DayScheduleResponse, 0, len(domain.AllWeekdays)),
	}
	if resp.Timezone == "" {
		resp.Timezone = domain.DefaultTimezone
	}

	fallback := domain.DefaultOperatingHours()
	for _, day := range domain.AllWeekdays {
		resolved, isDefault := b.OperatingHours.ResolveDay(day, fallback)

		schedule := DayScheduleResponse{
			Day:       day.String(),
			Closed:    resolved.Closed,
			IsDefault: isDefault,
		}
		if !resolved.Closed {
			open, closing := resolved.Open.String(), resolved.Close.String()
			schedule.Open = &open
			schedule.Close = &closing
		}
		resp.Days = append(resp.Days, schedule)
	}

	return resp
}
