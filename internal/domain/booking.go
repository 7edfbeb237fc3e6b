package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BookingStatus represents the lifecycle status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a paid reservation of a field for a time slot.
// Bookings are never deleted, only status-transitioned; a cancelled
// booking's interval is immediately eligible for re-reservation.
type Booking struct {
	ID        int64
	FieldID   int64
	OwnerID   int64
	StartTime time.Time
	EndTime   time.Time
	Status    BookingStatus

	TotalPrice         decimal.Decimal
	AppliedPromotionID *int64

	CancelledAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Interval returns the booked time range
func (b *Booking) Interval() Interval {
	return Interval{Start: b.StartTime, End: b.EndTime}
}

// IsActive returns true if the booking occupies the field's timeline
func (b *Booking) IsActive() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// CanBeConfirmed returns true if a confirm transition is valid
func (b *Booking) CanBeConfirmed() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanBeCancelled returns true if a cancel transition is valid
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed || b.Status == StatusCancelled
}

// FieldBookingsFilter фильтр для получения бронирований поля
type FieldBookingsFilter struct {
	FieldID          int64          // Обязательный параметр
	StartDate        *time.Time     // Начало периода (опционально)
	EndDate          *time.Time     // Конец периода (опционально)
	Status           *BookingStatus // Фильтр по статусу (опционально)
	IncludeCancelled bool           // Включать ли отмененные бронирования
}
