package models

import (
	"time"

	"github.com/m04kA/SMC-FieldBookingService/internal/domain"
)

// ListBlocksRequest запрос на получение блокировок поля
type ListBlocksRequest struct {
	FieldID   int64
	StartDate *time.Time
	EndDate   *time.Time
}

// BlockResponse модель блокировки для вызывающего слоя
type BlockResponse struct {
	ID        int64
	FieldID   int64
	StartTime time.Time
	EndTime   time.Time
	Reason    string
	CreatedAt time.Time
}

// BlockListResponse список блокировок
type BlockListResponse struct {
	Blocks []*BlockResponse
}

// FromDomainBlock конвертирует domain-блокировку в response
func FromDomainBlock(b *domain.ScheduleBlock) *BlockResponse {
	return &BlockResponse{
		ID:        b.ID,
		FieldID:   b.FieldID,
		StartTime: b.StartTime,
		EndTime:   b.EndTime,
		Reason:    b.Reason,
		CreatedAt: b.CreatedAt,
	}
}

// FromDomainBlockList конвертирует список domain-блокировок в response
func FromDomainBlockList(blocks []*domain.ScheduleBlock) *BlockListResponse {
	out := make([]*BlockResponse, len(blocks))
	for i, b := range blocks {
		out[i] = FromDomainBlock(b)
	}
	return &BlockListResponse{Blocks: out}
}
