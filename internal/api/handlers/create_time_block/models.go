package create_time_block

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/timeblocks/models"
)

// RecurrenceRequest HTTP модель правила повторения
type RecurrenceRequest struct {
	Pattern string  `json:"pattern" validate:"required,oneof=daily weekly monthly yearly"`
	Until   *string `json:"until,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Count   *int    `json:"count,omitempty" validate:"omitempty,min=1"`
}

// CreateTimeBlockRequest HTTP request model
// start/end в настенном времени бизнеса: YYYY-MM-DDTHH:MM
type CreateTimeBlockRequest struct {
	Title       string             `json:"title" validate:"required,max=200"`
	Kind        string             `json:"kind,omitempty" validate:"omitempty,oneof=personal holiday unavailable"`
	Description *string            `json:"description,omitempty" validate:"omitempty,max=2000"`
	Start       string             `json:"start" validate:"required,datetime=2006-01-02T15:04"`
	End         string             `json:"end" validate:"required,datetime=2006-01-02T15:04"`
	Recurrence  *RecurrenceRequest `json:"recurrence,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
// Вызывается после валидации, поэтому форматы дат уже проверены
func (r *CreateTimeBlockRequest) ToServiceRequest(businessID int64) (*models.CreateTimeBlockRequest, error) {
	start, err := time.Parse(domain.DateTimeFormat, r.Start)
	if err != nil {
		return nil, err
	}
	end, err := time.Parse(domain.DateTimeFormat, r.End)
	if err != nil {
		return nil, err
	}

	req := &models.CreateTimeBlockRequest{
		BusinessID:  businessID,
		Title:       r.Title,
		Kind:        r.Kind,
		Description: r.Description,
		Start:       start,
		End:         end,
	}

	if r.Recurrence != nil {
		req.Recurrence = &models.RecurrenceRequest{
			Pattern: r.Recurrence.Pattern,
			Count:   r.Recurrence.Count,
		}
		if r.Recurrence.Until != nil {
			until, err := time.Parse(domain.DateFormat, *r.Recurrence.Until)
			if err != nil {
				return nil, err
			}
			req.Recurrence.Until = &until
		}
	}

	return req, nil
}
