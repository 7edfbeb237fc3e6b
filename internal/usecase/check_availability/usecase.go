package check_availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-FieldBookingService/internal/conflict"
	"github.com/m04kA/SMC-FieldBookingService/internal/domain"
	fieldRepo "github.com/m04kA/SMC-FieldBookingService/internal/infra/storage/field"
)

// Request модель запроса проверки доступности интервала
type Request struct {
	FieldID int64
	Start   time.Time
	End     time.Time
}

// Response результат проверки доступности
type Response struct {
	Available bool
	Conflicts []domain.Interval
}

// UseCase use case проверки доступности интервала.
// Оба чтения выполняются в одной read-only транзакции — консистентный
// снимок без блокировок строк. Ответ носит информационный характер:
// гарантию отсутствия гонок дает только транзакция внутри reserve.
type UseCase struct {
	bookingRepo BookingRepository
	blockRepo   BlockRepository
	fieldRepo   FieldRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	blockRepo BlockRepository,
	fieldRepo FieldRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		blockRepo:   blockRepo,
		fieldRepo:   fieldRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute проверяет интервал на пересечения с бронированиями и блокировками
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.FieldID <= 0 {
		return nil, fmt.Errorf("%w: fieldID must be positive", ErrInvalidInput)
	}
	if req.Start.IsZero() || req.End.IsZero() {
		return nil, fmt.Errorf("%w: start and end are required", ErrInvalidInput)
	}
	if !req.Start.Before(req.End) {
		return nil, fmt.Errorf("%w: start must be before end", ErrInvalidInterval)
	}

	interval := domain.Interval{Start: req.Start, End: req.End}

	if _, err := uc.fieldRepo.GetByID(ctx, req.FieldID); err != nil {
		if errors.Is(err, fieldRepo.ErrFieldNotFound) {
			uc.logger.Warn("CheckAvailability: field id=%d not found", req.FieldID)
			return nil, ErrFieldNotFound
		}
		uc.logger.Error("CheckAvailability: failed to get field id=%d: %v", req.FieldID, err)
		return nil, fmt.Errorf("%w: failed to get field: %v", ErrInternal, err)
	}

	var (
		bookings []*domain.Booking
		blocks   []*domain.ScheduleBlock
	)

	err := uc.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		var txErr error

		bookings, txErr = uc.bookingRepo.GetOverlapping(txCtx, req.FieldID, interval)
		if txErr != nil {
			return fmt.Errorf("failed to get bookings: %w", txErr)
		}

		blocks, txErr = uc.blockRepo.GetOverlapping(txCtx, req.FieldID, interval)
		if txErr != nil {
			return fmt.Errorf("failed to get blocks: %w", txErr)
		}

		return nil
	})
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to read schedule for field=%d: %v", req.FieldID, err)
		return nil, fmt.Errorf("%w: failed to read schedule: %v", ErrInternal, err)
	}

	result := conflict.Detect(interval, bookings, blocks)

	uc.logger.Info("CheckAvailability: field=%d interval=%s available=%t conflicts=%d",
		req.FieldID, interval, !result.Conflict, len(result.ConflictingIntervals))

	return &Response{
		Available: !result.Conflict,
		Conflicts: result.ConflictingIntervals,
	}, nil
}
