package update_operating_hours

import (
	"github.com/m04kA/SMC-AvailabilityService/internal/service/hours/models"
)

// DayHours HTTP модель расписания дня
// Для открытого дня обязательны open и close
type DayHours struct {
	Closed bool   `json:"closed"`
	Open   string `json:"open,omitempty" validate:"required_if=Closed false,omitempty,hhmm"`
	Close  string `json:"close,omitempty" validate:"required_if=Closed false,omitempty,hhmm"`
}

// UpdateOperatingHoursRequest HTTP request model
// Переданные дни заменяются целиком, непереданные не меняются
type UpdateOperatingHoursRequest struct {
	Monday    *DayHours `json:"monday,omitempty"`
	Tuesday   *DayHours `json:"tuesday,omitempty"`
	Wednesday *DayHours `json:"wednesday,omitempty"`
	Thursday  *DayHours `json:"thursday,omitempty"`
	Friday    *DayHours `json:"friday,omitempty"`
	Saturday  *DayHours `json:"saturday,omitempty"`
	Sunday    *DayHours `json:"sunday,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateOperatingHoursRequest) ToServiceRequest(businessID int64) *models.UpdateOperatingHoursRequest {
	return &models.UpdateOperatingHoursRequest{
		BusinessID: businessID,
		Monday:     r.Monday.toService(),
		Tuesday:    r.Tuesday.toService(),
		Wednesday:  r.Wednesday.toService(),
		Thursday:   r.Thursday.toService(),
		Friday:     r.Friday.toService(),
		Saturday:   r.Saturday.toService(),
		Sunday:     r.Sunday.toService(),
	}
}

func (d *DayHours) toService() *models.DayHoursRequest {
	if d == nil {
		return nil
	}
	return &models.DayHoursRequest{
		Closed: d.Closed,
		Open:   d.Open,
		Close:  d.Close,
	}
}
