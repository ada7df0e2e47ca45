package list_block_occurrences

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/service/timeblocks/models"
)

type TimeBlockService interface {
	ListOccurrences(ctx context.Context, businessID int64, from, to time.Time) (*models.OccurrenceListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
