package check_availability

import (
	"context"

	"github.com/m04kA/SMC-FieldBookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetOverlapping(ctx context.Context, fieldID int64, interval domain.Interval) ([]*domain.Booking, error)
}

// BlockRepository интерфейс репозитория блокировок расписания
type BlockRepository interface {
	GetOverlapping(ctx context.Context, fieldID int64, interval domain.Interval) ([]*domain.ScheduleBlock, error)
}

// FieldRepository интерфейс репозитория полей
type FieldRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Field, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
