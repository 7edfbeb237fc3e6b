package create_booking

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-FieldBookingService/internal/domain"
	"github.com/m04kA/SMC-FieldBookingService/internal/usecase/reserve"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	FieldID   int64  `json:"fieldId"`
	StartTime string `json:"startTime"` // RFC3339, например "2026-06-01T10:00:00Z"
	EndTime   string `json:"endTime"`   // RFC3339, конец не включается
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID                 int64  `json:"id"`
	FieldID            int64  `json:"fieldId"`
	OwnerID            int64  `json:"ownerId"`
	StartTime          string `json:"startTime"`
	EndTime            string `json:"endTime"`
	Status             string `json:"status"`
	TotalPrice         string `json:"totalPrice"`
	AppliedPromotionID *int64 `json:"appliedPromotionId,omitempty"`
	CreatedAt          string `json:"createdAt"`
	UpdatedAt          string `json:"updatedAt"`
}

// ConflictResponse тело ответа 409 со списком занятых окон
type ConflictResponse struct {
	Error     string             `json:"error"`
	Conflicts []IntervalResponse `json:"conflicts,omitempty"`
}

// IntervalResponse занятое окно в ответе о конфликте
type IntervalResponse struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(ownerID int64) (*reserve.Request, error) {
	start, err := time.Parse(time.RFC3339, r.StartTime)
	if err != nil {
		return nil, errors.New("invalid startTime format")
	}

	end, err := time.Parse(time.RFC3339, r.EndTime)
	if err != nil {
		return nil, errors.New("invalid endTime format")
	}

	return &reserve.Request{
		FieldID: r.FieldID,
		OwnerID: ownerID,
		Start:   start,
		End:     end,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *reserve.Response) *BookingResponse {
	return &BookingResponse{
		ID:                 resp.ID,
		FieldID:            resp.FieldID,
		OwnerID:            resp.OwnerID,
		StartTime:          resp.Start.Format(time.RFC3339),
		EndTime:            resp.End.Format(time.RFC3339),
		Status:             resp.Status,
		TotalPrice:         resp.TotalPrice.StringFixed(domain.MoneyScale),
		AppliedPromotionID: resp.AppliedPromotionID,
		CreatedAt:          resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          resp.UpdatedAt.Format(time.RFC3339),
	}
}

// ToIntervalResponses конвертирует занятые окна в HTTP модель
func ToIntervalResponses(conflicts []domain.Interval) []IntervalResponse {
	out := make([]IntervalResponse, len(conflicts))
	for i, iv := range conflicts {
		out[i] = IntervalResponse{
			StartTime: iv.Start.Format(time.RFC3339),
			EndTime:   iv.End.Format(time.RFC3339),
		}
	}
	return out
}
