package quote_price

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FieldBookingService/internal/domain"
	fieldRepo "github.com/m04kA/SMC-FieldBookingService/internal/infra/storage/field"
)

var (
	slotStart = time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
	slotEnd   = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
)

type fakeFieldRepo struct {
	fields map[int64]*domain.Field
}

func (r *fakeFieldRepo) GetByID(_ context.Context, id int64) (*domain.Field, error) {
	f, ok := r.fields[id]
	if !ok {
		return nil, fieldRepo.ErrFieldNotFound
	}
	return f, nil
}

type fakePromoRepo struct {
	promos []*domain.Promotion
	calls  int
}

func (r *fakePromoRepo) GetActiveByField(_ context.Context, fieldID int64) ([]*domain.Promotion, error) {
	r.calls++
	var out []*domain.Promotion
	for _, p := range r.promos {
		if p.FieldID == fieldID {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeCache struct {
	data map[int64][]*domain.Promotion
	hits int
	sets int
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: map[int64][]*domain.Promotion{}}
}

func (c *fakeCache) Get(_ context.Context, fieldID int64) ([]*domain.Promotion, bool) {
	promos, ok := c.data[fieldID]
	if ok {
		c.hits++
	}
	return promos, ok
}

func (c *fakeCache) Set(_ context.Context, fieldID int64, promotions []*domain.Promotion) {
	c.sets++
	c.data[fieldID] = promotions
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(promos []*domain.Promotion) (*UseCase, *fakePromoRepo, *fakeCache) {
	fields := &fakeFieldRepo{fields: map[int64]*domain.Field{
		1: {ID: 1, BasePricePerHour: decimal.NewFromInt(20), Timezone: "UTC"},
	}}
	promoRepo := &fakePromoRepo{promos: promos}
	cache := newFakeCache()
	return NewUseCase(fields, promoRepo, cache, nopLogger{}), promoRepo, cache
}

func TestExecute_QuotesBasePrice(t *testing.T) {
	uc, _, _ := newTestUseCase(nil)

	resp, err := uc.Execute(context.Background(), &Request{FieldID: 1, Start: slotStart, End: slotEnd})

	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(40).Equal(resp.TotalPrice), "got %s", resp.TotalPrice)
	assert.Nil(t, resp.AppliedPromotionID)
}

func TestExecute_AppliesBestPromotion(t *testing.T) {
	uc, _, _ := newTestUseCase([]*domain.Promotion{
		{
			ID:            7,
			FieldID:       1,
			DiscountType:  domain.DiscountPercentage,
			DiscountValue: decimal.NewFromInt(20),
			StartDate:     slotStart.Add(-time.Hour),
			EndDate:       slotEnd.Add(time.Hour),
			IsActive:      true,
		},
	})

	resp, err := uc.Execute(context.Background(), &Request{FieldID: 1, Start: slotStart, End: slotEnd})

	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(32).Equal(resp.TotalPrice), "got %s", resp.TotalPrice)
	require.NotNil(t, resp.AppliedPromotionID)
	assert.Equal(t, int64(7), *resp.AppliedPromotionID)
}

func TestExecute_WarmsAndUsesCache(t *testing.T) {
	uc, promoRepo, cache := newTestUseCase(nil)
	req := &Request{FieldID: 1, Start: slotStart, End: slotEnd}

	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 1, promoRepo.calls, "first quote goes to the database")
	assert.Equal(t, 1, cache.sets)

	_, err = uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 1, promoRepo.calls, "second quote is served from cache")
	assert.Equal(t, 1, cache.hits)
}

func TestExecute_Validation(t *testing.T) {
	uc, _, _ := newTestUseCase(nil)

	_, err := uc.Execute(context.Background(), &Request{FieldID: 0, Start: slotStart, End: slotEnd})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{FieldID: 1, Start: slotEnd, End: slotStart})
	assert.ErrorIs(t, err, ErrInvalidInterval)

	_, err = uc.Execute(context.Background(), &Request{FieldID: 404, Start: slotStart, End: slotEnd})
	assert.ErrorIs(t, err, ErrFieldNotFound)
}
