package create_booking

import (
	"context"

	"github.com/m04kA/SMC-FieldBookingService/internal/usecase/reserve"
)

type ReserveUseCase interface {
	Execute(ctx context.Context, req *reserve.Request) (*reserve.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
