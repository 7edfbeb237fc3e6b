package add_schedule_block

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-FieldBookingService/internal/domain"
	addScheduleBlock "github.com/m04kA/SMC-FieldBookingService/internal/usecase/add_schedule_block"
)

// AddScheduleBlockRequest HTTP request model
type AddScheduleBlockRequest struct {
	StartTime string `json:"startTime"` // RFC3339
	EndTime   string `json:"endTime"`   // RFC3339, конец не включается
	Reason    string `json:"reason"`    // Свободный текст, например "maintenance"
}

// ScheduleBlockResponse HTTP response model
type ScheduleBlockResponse struct {
	ID        int64  `json:"id"`
	FieldID   int64  `json:"fieldId"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Reason    string `json:"reason"`
	CreatedAt string `json:"createdAt"`
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
func (r *AddScheduleBlockRequest) ToUseCaseRequest(fieldID int64) (*addScheduleBlock.Request, error) {
	start, err := time.Parse(time.RFC3339, r.StartTime)
	if err != nil {
		return nil, errors.New("invalid startTime format")
	}

	end, err := time.Parse(time.RFC3339, r.EndTime)
	if err != nil {
		return nil, errors.New("invalid endTime format")
	}

	return &addScheduleBlock.Request{
		FieldID: fieldID,
		Start:   start,
		End:     end,
		Reason:  r.Reason,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *addScheduleBlock.Response) *ScheduleBlockResponse {
	return &ScheduleBlockResponse{
		ID:        resp.ID,
		FieldID:   resp.FieldID,
		StartTime: resp.Start.Format(time.RFC3339),
		EndTime:   resp.End.Format(time.RFC3339),
		Reason:    resp.Reason,
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
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
