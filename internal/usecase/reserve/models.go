package reserve

import (
	"time"

	"github.com/shopspring/decimal"
)

// Request модель запроса на бронирование поля
type Request struct {
	FieldID int64     // ID поля
	OwnerID int64     // ID владельца бронирования
	Start   time.Time // Начало интервала (включительно)
	End     time.Time // Конец интервала (не включительно)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID                 int64
	FieldID            int64
	OwnerID            int64
	Start              time.Time
	End                time.Time
	Status             string
	TotalPrice         decimal.Decimal
	AppliedPromotionID *int64
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
