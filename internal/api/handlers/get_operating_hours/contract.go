package get_operating_hours

import (
	"context"

	"github.com/m04kA/SMC-AvailabilityService/internal/service/hours/models"
)

type HoursService interface {
	Get(ctx context.Context, businessID int64) (*models.OperatingHoursResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
