package delete_time_block

import (
	"context"

	"github.com/google/uuid"
)

type TimeBlockService interface {
	Delete(ctx context.Context, businessID int64, id uuid.UUID) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
