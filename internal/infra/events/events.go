package events

import (
	"time"

	"github.com/shopspring/decimal"
)

// Имена очередей доменных событий
const (
	QueueBookingCreated   = "booking.created"
	QueueBookingConfirmed = "booking.confirmed"
	QueueBookingCancelled = "booking.cancelled"
	QueueBlockCreated     = "block.created"
)

// BookingEvent событие жизненного цикла бронирования.
// Содержит достаточно данных для уведомлений и аналитики
// без обращения к основной БД.
type BookingEvent struct {
	EventID    string          `json:"eventId"`
	BookingID  int64           `json:"bookingId"`
	FieldID    int64           `json:"fieldId"`
	OwnerID    int64           `json:"ownerId"`
	StartTime  time.Time       `json:"startTime"`
	EndTime    time.Time       `json:"endTime"`
	Status     string          `json:"status"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
	OccurredAt time.Time       `json:"occurredAt"`
}

// BlockEvent событие создания блокировки расписания
type BlockEvent struct {
	EventID    string    `json:"eventId"`
	BlockID    int64     `json:"blockId"`
	FieldID    int64     `json:"fieldId"`
	StartTime  time.Time `json:"startTime"`
	EndTime    time.Time `json:"endTime"`
	Reason     string    `json:"reason"`
	OccurredAt time.Time `json:"occurredAt"`
}
