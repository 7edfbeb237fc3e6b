package scheduleblocks

import (
	"context"
	"time"

	"github.com/m04kA/SMC-FieldBookingService/internal/domain"
)

// BlockRepository интерфейс репозитория блокировок расписания
type BlockRepository interface {
	GetByFieldID(ctx context.Context, fieldID int64, from, to *time.Time) ([]*domain.ScheduleBlock, error)
	Delete(ctx context.Context, id, fieldID int64) error
}

// FieldRepository интерфейс репозитория полей
type FieldRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Field, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
