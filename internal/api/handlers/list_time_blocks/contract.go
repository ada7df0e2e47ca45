package list_time_blocks

import (
	"context"

	"github.com/m04kA/SMC-AvailabilityService/internal/service/timeblocks/models"
)

type TimeBlockService interface {
	List(ctx context.Context, businessID int64) (*models.TimeBlockListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
