package quote_price

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-FieldBookingService/internal/domain"
	quotePrice "github.com/m04kA/SMC-FieldBookingService/internal/usecase/quote_price"
)

// QuoteResponse HTTP response model
type QuoteResponse struct {
	TotalPrice         string `json:"totalPrice"`
	AppliedPromotionID *int64 `json:"appliedPromotionId,omitempty"`
}

// ToUseCaseRequest парсит query параметры в модель use case
func ToUseCaseRequest(fieldID int64, startStr, endStr string) (*quotePrice.Request, error) {
	if startStr == "" || endStr == "" {
		return nil, errors.New("start and end are required")
	}

	start, err := time.Parse(time.RFC3339, startStr)
	if err != nil {
		return nil, err
	}

	end, err := time.Parse(time.RFC3339, endStr)
	if err != nil {
		return nil, err
	}

	return &quotePrice.Request{
		FieldID: fieldID,
		Start:   start,
		End:     end,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *quotePrice.Response) *QuoteResponse {
	return &QuoteResponse{
		TotalPrice:         resp.TotalPrice.StringFixed(domain.MoneyScale),
		AppliedPromotionID: resp.AppliedPromotionID,
	}
}
