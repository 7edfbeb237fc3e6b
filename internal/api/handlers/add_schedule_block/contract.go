package add_schedule_block

import (
	"context"

	addScheduleBlock "github.com/m04kA/SMC-FieldBookingService/internal/usecase/add_schedule_block"
)

type AddScheduleBlockUseCase interface {
	Execute(ctx context.Context, req *addScheduleBlock.Request) (*addScheduleBlock.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
