package get_field_bookings

import (
	"strconv"
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

// ToServiceRequest формирует запрос к сервису из query параметров.
// from/to — даты YYYY-MM-DD; to включается целиком (до конца дня).
func ToServiceRequest(
	fieldID int64,
	fromStr string,
	toStr string,
	statusStr string,
	includeCancelledStr string,
) (*models.GetFieldBookingsRequest, error) {
	req := &models.GetFieldBookingsRequest{
		FieldID:          fieldID,
		IncludeCancelled: false, // По умолчанию только активные
	}

	if fromStr != "" {
		from, err := time.Parse(domain.DateFormat, fromStr)
		if err != nil {
			return nil, err
		}
		req.StartDate = &from
	}

	if toStr != "" {
		to, err := time.Parse(domain.DateFormat, toStr)
		if err != nil {
			return nil, err
		}
		endOfDay := to.AddDate(0, 0, 1)
		req.EndDate = &endOfDay
	}

	if statusStr != "" {
		req.Status = &statusStr
	}

	if includeCancelledStr != "" {
		includeCancelled, err := strconv.ParseBool(includeCancelledStr)
		if err != nil {
			return nil, err
		}
		req.IncludeCancelled = includeCancelled
	}

	return req, nil
}

// FromServiceResponse конвертирует список бронирований сервиса в HTTP модель
func FromServiceResponse(resp *models.BookingListResponse) []*BookingResponse {
	out := make([]*BookingResponse, len(resp.Bookings))
	for i, b := range resp.Bookings {
		var cancelledAt *string
		if b.CancelledAt != nil {
			s := b.CancelledAt.Format(time.RFC3339)
			cancelledAt = &s
		}

		out[i] = &BookingResponse{
			ID:                 b.ID,
			FieldID:            b.FieldID,
			OwnerID:            b.OwnerID,
			StartTime:          b.StartTime.Format(time.RFC3339),
			EndTime:            b.EndTime.Format(time.RFC3339),
			Status:             b.Status,
			TotalPrice:         b.TotalPrice.StringFixed(domain.MoneyScale),
			AppliedPromotionID: b.AppliedPromotionID,
			CancelledAt:        cancelledAt,
			CreatedAt:          b.CreatedAt.Format(time.RFC3339),
			UpdatedAt:          b.UpdatedAt.Format(time.RFC3339),
		}
	}
	return out
}
