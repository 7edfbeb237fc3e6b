package quote_price

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-FieldBookingService/internal/domain"
	fieldRepo "github.com/m04kA/SMC-FieldBookingService/internal/infra/storage/field"
	"github.com/m04kA/SMC-FieldBookingService/internal/pricing"
)

// Request модель запроса котировки цены
type Request struct {
	FieldID int64
	Start   time.Time
	End     time.Time
}

// Response результат расчета цены
type Response struct {
	TotalPrice         decimal.Decimal
	AppliedPromotionID *int64
}

// UseCase use case котировки цены интервала.
// Котировка информационная: фактическая цена фиксируется заново внутри
// транзакции reserve, поэтому здесь допустим кэш промоакций.
type UseCase struct {
	fieldRepo  FieldRepository
	promoRepo  PromotionRepository
	promoCache PromotionCache
	logger     Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	fieldRepo FieldRepository,
	promoRepo PromotionRepository,
	promoCache PromotionCache,
	logger Logger,
) *UseCase {
	return &UseCase{
		fieldRepo:  fieldRepo,
		promoRepo:  promoRepo,
		promoCache: promoCache,
		logger:     logger,
	}
}

// Execute вычисляет цену интервала для поля
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

	field, err := uc.fieldRepo.GetByID(ctx, req.FieldID)
	if err != nil {
		if errors.Is(err, fieldRepo.ErrFieldNotFound) {
			uc.logger.Warn("QuotePrice: field id=%d not found", req.FieldID)
			return nil, ErrFieldNotFound
		}
		uc.logger.Error("QuotePrice: failed to get field id=%d: %v", req.FieldID, err)
		return nil, fmt.Errorf("%w: failed to get field: %v", ErrInternal, err)
	}

	promotions, err := uc.activePromotions(ctx, req.FieldID)
	if err != nil {
		uc.logger.Error("QuotePrice: failed to get promotions for field=%d: %v", req.FieldID, err)
		return nil, fmt.Errorf("%w: failed to get promotions: %v", ErrInternal, err)
	}

	quote := pricing.Resolve(field, interval, promotions)

	uc.logger.Info("QuotePrice: field=%d interval=%s price=%s promotion=%v",
		req.FieldID, interval, quote.TotalPrice, quote.AppliedPromotionID)

	return &Response{
		TotalPrice:         quote.TotalPrice,
		AppliedPromotionID: quote.AppliedPromotionID,
	}, nil
}

// activePromotions читает промоакции из кэша, при промахе — из БД с прогревом кэша
func (uc *UseCase) activePromotions(ctx context.Context, fieldID int64) ([]*domain.Promotion, error) {
	if promotions, ok := uc.promoCache.Get(ctx, fieldID); ok {
		return promotions, nil
	}

	promotions, err := uc.promoRepo.GetActiveByField(ctx, fieldID)
	if err != nil {
		return nil, err
	}

	uc.promoCache.Set(ctx, fieldID, promotions)
	return promotions, nil
}
