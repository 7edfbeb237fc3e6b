package delete_schedule_block

import "context"

type ScheduleBlockService interface {
	Delete(ctx context.Context, fieldID, blockID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
