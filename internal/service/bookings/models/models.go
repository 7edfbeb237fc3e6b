package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-FieldBookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// GetFieldBookingsRequest запрос на получение бронирований поля
type GetFieldBookingsRequest struct {
	FieldID          int64
	StartDate        *time.Time
	EndDate          *time.Time
	Status           *string
	IncludeCancelled bool
}

// ToDomainFilter конвертирует запрос в domain-фильтр
func (r *GetFieldBookingsRequest) ToDomainFilter() (domain.FieldBookingsFilter, error) {
	filter := domain.FieldBookingsFilter{
		FieldID:          r.FieldID,
		StartDate:        r.StartDate,
		EndDate:          r.EndDate,
		IncludeCancelled: r.IncludeCancelled,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return domain.FieldBookingsFilter{}, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// BookingResponse модель бронирования для вызывающего слоя
type BookingResponse struct {
	ID                 int64
	FieldID            int64
	OwnerID            int64
	StartTime          time.Time
	EndTime            time.Time
	Status             string
	TotalPrice         decimal.Decimal
	AppliedPromotionID *int64
	CancelledAt        *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []*BookingResponse
}

// FromDomainBooking конвертирует domain-бронирование в response
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:                 b.ID,
		FieldID:            b.FieldID,
		OwnerID:            b.OwnerID,
		StartTime:          b.StartTime,
		EndTime:            b.EndTime,
		Status:             string(b.Status),
		TotalPrice:         b.TotalPrice,
		AppliedPromotionID: b.AppliedPromotionID,
		CancelledAt:        b.CancelledAt,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain-бронирований в response
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	out := make([]*BookingResponse, len(bookings))
	for i, b := range bookings {
		out[i] = FromDomainBooking(b)
	}
	return &BookingListResponse{Bookings: out}
}

// ToDomainBookingStatus валидирует и конвертирует строковый статус
func ToDomainBookingStatus(s string) (domain.BookingStatus, error) {
	switch domain.BookingStatus(s) {
	case domain.StatusPending, domain.StatusConfirmed, domain.StatusCancelled:
		return domain.BookingStatus(s), nil
	default:
		return "", ErrInvalidStatus
	}
}
