package cancel_booking

import (
	"time"

	"github.com/m04kA/SMC-FieldBookingService/internal/domain"
	"github.com/m04kA/SMC-FieldBookingService/internal/service/bookings/models"
)

// BookingResponse HTTP response model
type BookingResponse struct {
	ID                 int64   `json:"id"`
	FieldID            int64   `json:"fieldId"`
	OwnerID            int64   `json:"ownerId"`
	StartTime          string  `json:"startTime"`
	EndTime            string  `json:"endTime"`
	Status             string  `json:"status"`
	TotalPrice         string  `json:"totalPrice"`
	AppliedPromotionID *int64  `json:"appliedPromotionId,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"`
	CreatedAt          string  `json:"createdAt"`
	UpdatedAt          string  `json:"updatedAt"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.BookingResponse) *BookingResponse {
	var cancelledAt *string
	if resp.CancelledAt != nil {
		s := resp.CancelledAt.Format(time.RFC3339)
		cancelledAt = &s
	}

	return &BookingResponse{
		ID:                 resp.ID,
		FieldID:            resp.FieldID,
		OwnerID:            resp.OwnerID,
		StartTime:          resp.StartTime.Format(time.RFC3339),
		EndTime:            resp.EndTime.Format(time.RFC3339),
		Status:             resp.Status,
		TotalPrice:         resp.TotalPrice.StringFixed(domain.MoneyScale),
		AppliedPromotionID: resp.AppliedPromotionID,
		CancelledAt:        cancelledAt,
		CreatedAt:          resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          resp.UpdatedAt.Format(time.RFC3339),
	}
}
