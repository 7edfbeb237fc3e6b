package quote_price

import (
	"context"

	"github.com/m04kA/SMC-FieldBookingService/internal/domain"
)

// FieldRepository интерфейс репозитория полей
type FieldRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Field, error)
}

// PromotionRepository интерфейс репозитория промоакций
type PromotionRepository interface {
	GetActiveByField(ctx context.Context, fieldID int64) ([]*domain.Promotion, error)
}

// PromotionCache кэш активных промоакций поля.
// Допускает nil-реализацию с постоянными промахами.
type PromotionCache interface {
	Get(ctx context.Context, fieldID int64) ([]*domain.Promotion, bool)
	Set(ctx context.Context, fieldID int64, promotions []*domain.Promotion)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
