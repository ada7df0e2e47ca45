package models

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID              int64     `json:"id"`
	BusinessID      int64     `json:"businessId"`
	CustomerID      *int64    `json:"customerId,omitempty"`
	Date            string    `json:"date"`                // "2025-10-15"
	StartTime       *string   `json:"startTime,omitempty"` // "10:00", nil для заказа без времени
	DurationMinutes int       `json:"durationMinutes"`
	Status          string    `json:"status"`
	TotalPrice      float64   `json:"totalPrice"`
	Notes           *string   `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Date     string            `json:"date"`
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(j *domain.Job) *BookingResponse {
	if j == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:              j.ID,
		BusinessID:      j.BusinessID,
		CustomerID:      j.CustomerID,
		Date:            j.ScheduledAt.Format(domain.DateFormat),
		DurationMinutes: j.DurationMinutes,
		Status:          string(j.Status),
		TotalPrice:      j.TotalPrice,
		Notes:           j.Notes,
		CreatedAt:       j.CreatedAt,
		UpdatedAt:       j.UpdatedAt,
	}

	if j.HasTime {
		startTime := j.ScheduledAt.Format(domain.TimeFormat)
		resp.StartTime = &startTime
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(date time.Time, jobs []*domain.Job) *BookingListResponse {
	resp := &BookingListResponse{
		Date:     date.Format(domain.DateFormat),
		Bookings: make([]BookingResponse, 0, len(jobs)),
	}

	for _, j := range jobs {
		resp.Bookings = append(resp.Bookings, *FromDomainBooking(j))
	}

	return resp
}
