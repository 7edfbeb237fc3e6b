package reserve

import (
	"context"

	"github.com/m04kA/SMC-FieldBookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
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

// PromotionRepository интерфейс репозитория промоакций
type PromotionRepository interface {
	GetActiveOverlapping(ctx context.Context, fieldID int64, interval domain.Interval) ([]*domain.Promotion, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventPublisher интерфейс публикации доменных событий
type EventPublisher interface {
	PublishBookingCreated(ctx context.Context, booking *domain.Booking) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
