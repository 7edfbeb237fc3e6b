package get_field_blocks

import (
	"time"

	"github.com/m04kA/SMC-FieldBookingService/internal/domain"
	"github.com/m04kA/SMC-FieldBookingService/internal/service/scheduleblocks/models"
)

// ScheduleBlockResponse HTTP response model
type ScheduleBlockResponse struct {
	ID        int64  `json:"id"`
	FieldID   int64  `json:"fieldId"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Reason    string `json:"reason"`
	CreatedAt string `json:"createdAt"`
}

// ToServiceRequest формирует запрос к сервису из query параметров.
// from/to — даты YYYY-MM-DD; to включается целиком (до конца дня).
func ToServiceRequest(fieldID int64, fromStr, toStr string) (*models.ListBlocksRequest, error) {
	req := &models.ListBlocksRequest{FieldID: fieldID}

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

	return req, nil
}

// FromServiceResponse конвертирует список блокировок сервиса в HTTP модель
func FromServiceResponse(resp *models.BlockListResponse) []*ScheduleBlockResponse {
	out := make([]*ScheduleBlockResponse, len(resp.Blocks))
	for i, b := range resp.Blocks {
		out[i] = &ScheduleBlockResponse{
			ID:        b.ID,
			FieldID:   b.FieldID,
			StartTime: b.StartTime.Format(time.RFC3339),
			EndTime:   b.EndTime.Format(time.RFC3339),
			Reason:    b.Reason,
			CreatedAt: b.CreatedAt.Format(time.RFC3339),
		}
	}
	return out
}
