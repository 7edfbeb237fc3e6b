package bookings

import (
	"context"

	"github.com/m04kA/SMC-FieldBookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByFieldWithFilter(ctx context.Context, filter domain.FieldBookingsFilter) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, from, to domain.BookingStatus) error
	Cancel(ctx context.Context, id int64) error
}

// FieldRepository интерфейс репозитория полей
type FieldRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Field, error)
}

// EventPublisher интерфейс публикации доменных событий
type EventPublisher interface {
	PublishBookingConfirmed(ctx context.Context, booking *domain.Booking) error
	PublishBookingCancelled(ctx context.Context, booking *domain.Booking) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
