package scheduleblocks

import (
	"context"
	"errors"
	"fmt"

	fieldRepo "github.com/m04kA/SMC-FieldBookingService/internal/infra/storage/field"
	blockRepo "github.com/m04kA/SMC-FieldBookingService/internal/infra/storage/scheduleblock"
	"github.com/m04kA/SMC-FieldBookingService/internal/service/scheduleblocks/models"
)

// Service сервис для работы с существующими блокировками расписания.
// Создание блокировок живет в usecase/add_schedule_block; здесь —
// чтение менеджерской поверхности и снятие блокировок.
type Service struct {
	blockRepo BlockRepository
	fieldRepo FieldRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса блокировок
func NewService(
	blockRepo BlockRepository,
	fieldRepo FieldRepository,
	logger Logger,
) *Service {
	return &Service{
		blockRepo: blockRepo,
		fieldRepo: fieldRepo,
		logger:    logger,
	}
}

// List получает блокировки поля, опционально ограниченные периодом
func (s *Service) List(ctx context.Context, req *models.ListBlocksRequest) (*models.BlockListResponse, error) {
	s.logger.Info("List: fetching schedule blocks for field=%d", req.FieldID)

	if _, err := s.fieldRepo.GetByID(ctx, req.FieldID); err != nil {
		if errors.Is(err, fieldRepo.ErrFieldNotFound) {
			s.logger.Warn("List: field id=%d not found", req.FieldID)
			return nil, ErrFieldNotFound
		}
		s.logger.Error("List: failed to get field id=%d: %v", req.FieldID, err)
		return nil, fmt.Errorf("%w: List - failed to get field: %v", ErrInternal, err)
	}

	blocks, err := s.blockRepo.GetByFieldID(ctx, req.FieldID, req.StartDate, req.EndDate)
	if err != nil {
		s.logger.Error("List: repository error for field=%d: %v", req.FieldID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d blocks for field=%d", len(blocks), req.FieldID)
	return models.FromDomainBlockList(blocks), nil
}

// Delete снимает блокировку расписания поля. Интервал немедленно
// освобождается для бронирований.
func (s *Service) Delete(ctx context.Context, fieldID, blockID int64) error {
	s.logger.Info("Delete: removing schedule block id=%d for field=%d", blockID, fieldID)

	if _, err := s.fieldRepo.GetByID(ctx, fieldID); err != nil {
		if errors.Is(err, fieldRepo.ErrFieldNotFound) {
			s.logger.Warn("Delete: field id=%d not found", fieldID)
			return ErrFieldNotFound
		}
		s.logger.Error("Delete: failed to get field id=%d: %v", fieldID, err)
		return fmt.Errorf("%w: Delete - failed to get field: %v", ErrInternal, err)
	}

	if err := s.blockRepo.Delete(ctx, blockID, fieldID); err != nil {
		if errors.Is(err, blockRepo.ErrBlockNotFound) {
			s.logger.Warn("Delete: block id=%d not found for field=%d", blockID, fieldID)
			return ErrBlockNotFound
		}
		s.logger.Error("Delete: repository error for block id=%d: %v", blockID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully removed block id=%d for field=%d", blockID, fieldID)
	return nil
}
