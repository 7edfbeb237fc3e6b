package reserve

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-FieldBookingService/internal/conflict"
	"github.com/m04kA/SMC-FieldBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-FieldBookingService/internal/infra/storage/booking"
	fieldRepo "github.com/m04kA/SMC-FieldBookingService/internal/infra/storage/field"
	"github.com/m04kA/SMC-FieldBookingService/internal/pricing"
	"github.com/m04kA/SMC-FieldBookingService/pkg/txmanager"
)

// maxAttempts: первая попытка + ровно один повтор при проигранной гонке
// на коммите. Больше не повторяем, чтобы не маскировать реальные
// двойные бронирования под успех и не раздувать латентность.
const maxAttempts = 2

// UseCase use case бронирования поля (путь записи координатора)
type UseCase struct {
	bookingRepo BookingRepository
	blockRepo   BlockRepository
	fieldRepo   FieldRepository
	promoRepo   PromotionRepository
	txManager   TransactionManager
	publisher   EventPublisher
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	blockRepo BlockRepository,
	fieldRepo FieldRepository,
	promoRepo PromotionRepository,
	txManager TransactionManager,
	publisher EventPublisher,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		blockRepo:   blockRepo,
		fieldRepo:   fieldRepo,
		promoRepo:   promoRepo,
		txManager:   txManager,
		publisher:   publisher,
		logger:      logger,
	}
}

// Execute бронирует интервал поля.
//
// Вся проверка пересечений и вставка выполняются в одной сериализуемой
// транзакции: из двух конкурентных пересекающихся reserve зафиксируется
// максимум один, второй детерминированно получит ErrSlotUnavailable.
// Проверка-перед-вставкой вне транзакции — известная гонка, поэтому
// никакого состояния между вызовами usecase не держит.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("Reserve: field=%d, owner=%d, interval=[%s, %s)",
		req.FieldID, req.OwnerID, req.Start, req.End)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("Reserve: validation failed: %v", err)
		return nil, err
	}

	interval := domain.Interval{Start: req.Start, End: req.End}

	var created *domain.Booking
	var lastErr error

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		created, lastErr = uc.reserveOnce(ctx, req, interval)
		if lastErr == nil {
			break
		}

		// Повторяем ровно один раз и только проигранную гонку на вставке:
		// конкурентная транзакция успела зафиксировать пересекающийся интервал
		// после нашей проверки. Повторная попытка увидит победителя и вернет
		// ErrSlotUnavailable уже со списком занятых окон.
		if errors.Is(lastErr, bookingRepo.ErrSlotTaken) && attempt < maxAttempts {
			uc.logger.Warn("Reserve: lost commit-time race for field=%d, retrying once", req.FieldID)
			continue
		}

		return nil, uc.mapError(req, lastErr)
	}

	uc.logger.Info("Reserve: successfully created booking id=%d, price=%s",
		created.ID, created.TotalPrice)

	// Публикация события best-effort: сбой брокера не откатывает бронирование
	if err := uc.publisher.PublishBookingCreated(ctx, created); err != nil {
		uc.logger.Warn("Reserve: failed to publish booking.created for id=%d: %v", created.ID, err)
	}

	return toResponse(created), nil
}

// reserveOnce одна попытка: валидация по полю, проверка пересечений,
// расчет цены и вставка — все внутри сериализуемой транзакции
func (uc *UseCase) reserveOnce(ctx context.Context, req *Request, interval domain.Interval) (*domain.Booking, error) {
	var created *domain.Booking

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		field, err := uc.fieldRepo.GetByID(txCtx, req.FieldID)
		if err != nil {
			if errors.Is(err, fieldRepo.ErrFieldNotFound) {
				return ErrFieldNotFound
			}
			return fmt.Errorf("%w: failed to get field: %v", ErrInternal, err)
		}

		if !field.WithinOperatingHours(interval) {
			return fmt.Errorf("%w: interval is outside field operating hours", ErrInvalidInterval)
		}

		// Выборки с блокировкой строк (FOR UPDATE внутри транзакции)
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

		promotions, err := uc.promoRepo.GetActiveOverlapping(txCtx, req.FieldID, interval)
		if err != nil {
			return fmt.Errorf("%w: failed to get promotions: %v", ErrInternal, err)
		}

		quote := pricing.Resolve(field, interval, promotions)

		booking := &domain.Booking{
			FieldID:            req.FieldID,
			OwnerID:            req.OwnerID,
			StartTime:          req.Start,
			EndTime:            req.End,
			Status:             domain.StatusPending,
			TotalPrice:         quote.TotalPrice,
			AppliedPromotionID: quote.AppliedPromotionID,
		}

		created, err = uc.bookingRepo.Create(txCtx, booking)
		return err
	})

	if err != nil {
		return nil, err
	}
	return created, nil
}

// mapError переводит ошибки нижних слоев в типизированные ошибки usecase.
// Сырые ошибки хранилища наружу не просачиваются.
func (uc *UseCase) mapError(req *Request, err error) error {
	switch {
	case errors.Is(err, ErrInvalidInterval),
		errors.Is(err, ErrFieldNotFound),
		errors.Is(err, ErrSlotUnavailable):
		uc.logger.Warn("Reserve: field=%d: %v", req.FieldID, err)
		return err

	case errors.Is(err, bookingRepo.ErrSlotTaken):
		// Вторая проигранная гонка подряд: интервал занят
		uc.logger.Warn("Reserve: lost commit-time race twice for field=%d", req.FieldID)
		return &SlotUnavailableError{}

	case errors.Is(err, txmanager.ErrSerialization), errors.Is(err, context.DeadlineExceeded):
		uc.logger.Warn("Reserve: transient store failure for field=%d: %v", req.FieldID, err)
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)

	default:
		uc.logger.Error("Reserve: internal error for field=%d: %v", req.FieldID, err)
		if errors.Is(err, ErrInternal) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}

func toResponse(b *domain.Booking) *Response {
	return &Response{
		ID:                 b.ID,
		FieldID:            b.FieldID,
		OwnerID:            b.OwnerID,
		Start:              b.StartTime,
		End:                b.EndTime,
		Status:             string(b.Status),
		TotalPrice:         b.TotalPrice,
		AppliedPromotionID: b.AppliedPromotionID,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
}
