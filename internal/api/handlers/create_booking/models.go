package create_booking

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	createBooking "github.com/m04kA/SMC-AvailabilityService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Date            string  `json:"date" validate:"required,datetime=2006-01-02"`
	Time            string  `json:"time" validate:"required,hhmm"`
	DurationMinutes int     `json:"durationMinutes" validate:"min=1,max=1440"`
	CustomerName    string  `json:"customerName" validate:"max=200"`
	CustomerEmail   *string `json:"customerEmail,omitempty" validate:"omitempty,email"`
	CustomerPhone   *string `json:"customerPhone,omitempty" validate:"omitempty,max=32"`
	TotalPrice      float64 `json:"totalPrice" validate:"gte=0"`
	Notes           *string `json:"notes,omitempty" validate:"omitempty,max=2000"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64   `json:"id"`
	BusinessID      int64   `json:"businessId"`
	CustomerID      *int64  `json:"customerId,omitempty"`
	Date            string  `json:"date"`
	Time            string  `json:"time"`
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	Segment         string  `json:"segment,omitempty"`
	TotalPrice      float64 `json:"totalPrice"`
	Notes           *string `json:"notes,omitempty"`
	CreatedAt       string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Вызывается после валидации, поэтому формат даты и времени уже проверен
func (r *CreateBookingRequest) ToUseCaseRequest(businessID int64) (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		BusinessID:      businessID,
		Date:            date,
		Time:            types.TimeString(r.Time),
		DurationMinutes: r.DurationMinutes,
		CustomerName:    r.CustomerName,
		CustomerEmail:   r.CustomerEmail,
		CustomerPhone:   r.CustomerPhone,
		TotalPrice:      r.TotalPrice,
		Notes:           r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		BusinessID:      resp.BusinessID,
		CustomerID:      resp.CustomerID,
		Date:            resp.Date.Format(domain.DateFormat),
		Time:            resp.Time.String(),
		DurationMinutes: resp.DurationMinutes,
		Status:          string(resp.Status),
		Segment:         string(resp.Segment),
		TotalPrice:      resp.TotalPrice,
		Notes:           resp.Notes,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
	}
}
