package get_field_blocks

import (
	"context"

	"github.com/m04kA/SMC-FieldBookingService/internal/service/scheduleblocks/models"
)

type ScheduleBlockService interface {
	List(ctx context.Context, req *models.ListBlocksRequest) (*models.BlockListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
