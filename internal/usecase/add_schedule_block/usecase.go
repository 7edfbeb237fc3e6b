package add_schedule_block

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/m04kA/SMC-FieldBookingService/internal/conflict"
	"github.com/m04kA/SMC-FieldBookingService/internal/domain"
	fieldRepo "github.com/m04kA/SMC-FieldBookingService/internal/infra/storage/field"
	blockRepo "github.com/m04kA/SMC-FieldBookingService/internal/infra/storage/scheduleblock"
	"github.com/m04kA/SMC-FieldBookingService/pkg/txmanager"
)

// maxAttempts: первая попытка + один повтор при проигранной гонке на коммите
const maxAttempts = 2

// UseCase use case создания блокировки расписания.
// Путь тот же, что у reserve: блокировка не должна пересекаться ни с активными
// бронированиями, ни с другими блокировками (бронирования и блокировки вместе
// попарно не пересекаются на таймлайне поля).
type UseCase struct {
	bookingRepo BookingRepository
	blockRepo   BlockRepository
	fieldRepo   FieldRepository
	txManager   TransactionManager
	publisher   EventPublisher
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	blockRepo BlockRepository,
	fieldRepo FieldRepository,
	txManager TransactionManager,
	publisher EventPublisher,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		blockRepo:   blockRepo,
		fieldRepo:   fieldRepo,
		txManager:   txManager,
		publisher:   publisher,
		logger:      logger,
	}
}

// Execute создает блокировку расписания для поля
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("AddScheduleBlock: field=%d, interval=[%s, %s), reason=%q",
		req.FieldID, req.Start, req.End, req.Reason)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("AddScheduleBlock: validation failed: %v", err)
		return nil, err
	}

	interval := domain.Interval{Start: req.Start, End: req.End}

	var created *domain.ScheduleBlock
	var lastErr error

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		created, lastErr = uc.addOnce(ctx, req, interval)
		if lastErr == nil {
			break
		}

		if errors.Is(lastErr, blockRepo.ErrSlotTaken) && attempt < maxAttempts {
			uc.logger.Warn("AddScheduleBlock: lost commit-time race for field=%d, retrying once", req.FieldID)
			continue
		}

		return nil, uc.mapError(req, lastErr)
	}

	uc.logger.Info("AddScheduleBlock: successfully created block id=%d", created.ID)

	if err := uc.publisher.PublishBlockCreated(ctx, created); err != nil {
		uc.logger.Warn("AddScheduleBlock: failed to publish block.created for id=%d: %v", created.ID, err)
	}

	return toResponse(created), nil
}

func (uc *UseCase) addOnce(ctx context.Context, req *Request, interval domain.Interval) (*domain.ScheduleBlock, error) {
	var created *domain.ScheduleBlock

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if _, err := uc.fieldRepo.GetByID(txCtx, req.FieldID); err != nil {
			if errors.Is(err, fieldRepo.ErrFieldNotFound) {
				return ErrFieldNotFound
			}
			return fmt.Errorf("%w: failed to get field: %v", ErrInternal, err)
		}

		bookings, err := uc.bookingRepo.GetOverlapping(txCtx, req.FieldID, interval)
		if err != nil {
			return fmt.Errorf("%w: failed to get overlapping bookings: %v", ErrInternal, err)
		}

		blocks, err := uc.blockRepo.GetOverlapping(txCtx, req.FieldID, interval)
		if err != nil {
			return fmt.Errorf("%w: failed to get overlapping blocks: %v", ErrInternal, err)
		}

		if result := conflict.Detect(interval, bookings, blocks); result.Conflict {
			return &SlotUnavailableError{Conflicts: result.ConflictingIntervals}
		}

		block := &domain.ScheduleBlock{
			FieldID:   req.FieldID,
			StartTime: req.Start,
			EndTime:   req.End,
			Reason:    req.Reason,
		}

		created, err = uc.blockRepo.Create(txCtx, block)
		return err
	})

	if err != nil {
		return nil, err
	}
	return created, nil
}

func (uc *UseCase) mapError(req *Request, err error) error {
	switch {
	case errors.Is(err, ErrInvalidInterval),
		errors.Is(err, ErrFieldNotFound),
		errors.Is(err, ErrSlotUnavailable):
		uc.logger.Warn("AddScheduleBlock: field=%d: %v", req.FieldID, err)
		return err

	case errors.Is(err, blockRepo.ErrSlotTaken):
		uc.logger.Warn("AddScheduleBlock: lost commit-time race twice for field=%d", req.FieldID)
		return &SlotUnavailableError{}

	case errors.Is(err, txmanager.ErrSerialization), errors.Is(err, context.DeadlineExceeded):
		uc.logger.Warn("AddScheduleBlock: transient store failure for field=%d: %v", req.FieldID, err)
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)

	default:
		uc.logger.Error("AddScheduleBlock: internal error for field=%d: %v", req.FieldID, err)
		if errors.Is(err, ErrInternal) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.FieldID <= 0 {
		return fmt.Errorf("%w: fieldID must be positive", ErrInvalidInput)
	}

	if req.Start.IsZero() || req.End.IsZero() {
		return fmt.Errorf("%w: start and end are required", ErrInvalidInput)
	}

	if !req.Start.Before(req.End) {
		return fmt.Errorf("%w: start must be before end", ErrInvalidInterval)
	}

	if utf8.RuneCountInString(req.Reason) > domain.MaxReasonLength {
		return fmt.Errorf("%w: reason exceeds %d characters", ErrInvalidInput, domain.MaxReasonLength)
	}

	return nil
}

func toResponse(b *domain.ScheduleBlock) *Response {
	return &Response{
		ID:        b.ID,
		FieldID:   b.FieldID,
		Start:     b.StartTime,
		End:       b.EndTime,
		Reason:    b.Reason,
		CreatedAt: b.CreatedAt,
	}
}
