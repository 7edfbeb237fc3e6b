package check_availability

import (
	"errors"
	"time"

	checkAvailability "github.com/m04kA/SMC-FieldBookingService/internal/usecase/check_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Available bool               `json:"available"`
	Conflicts []IntervalResponse `json:"conflicts"`
}

// IntervalResponse занятое окно
type IntervalResponse struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// ToUseCaseRequest парсит query параметры в модель use case
func ToUseCaseRequest(fieldID int64, startStr, endStr string) (*checkAvailability.Request, error) {
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

	return &checkAvailability.Request{
		FieldID: fieldID,
		Start:   start,
		End:     end,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response.
// Conflicts всегда присутствует в JSON, для свободного интервала — пустой список.
func FromUseCaseResponse(resp *checkAvailability.Response) *AvailabilityResponse {
	conflicts := make([]IntervalResponse, len(resp.Conflicts))
	for i, iv := range resp.Conflicts {
		conflicts[i] = IntervalResponse{
			StartTime: iv.Start.Format(time.RFC3339),
			EndTime:   iv.End.Format(time.RFC3339),
		}
	}

	return &AvailabilityResponse{
		Available: resp.Available,
		Conflicts: conflicts,
	}
}
