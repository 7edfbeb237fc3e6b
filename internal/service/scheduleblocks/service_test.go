package scheduleblocks

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FieldBookingService/internal/domain"
	fieldRepo "github.com/m04kA/SMC-FieldBookingService/internal/infra/storage/field"
	blockRepo "github.com/m04kA/SMC-FieldBookingService/internal/infra/storage/scheduleblock"
	"github.com/m04kA/SMC-FieldBookingService/internal/service/scheduleblocks/models"
)

type fakeBlockRepo struct {
	blocks map[int64]*domain.ScheduleBlock
}

func (r *fakeBlockRepo) GetByFieldID(_ context.Context, fieldID int64, from, to *time.Time) ([]*domain.ScheduleBlock, error) {
	out := make([]*domain.ScheduleBlock, 0)
	for _, b := range r.blocks {
		if b.FieldID != fieldID {
			continue
		}
		if to != nil && !b.StartTime.Before(*to) {
			continue
		}
		if from != nil && !b.EndTime.After(*from) {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (r *fakeBlockRepo) Delete(_ context.Context, id, fieldID int64) error {
	b, ok := r.blocks[id]
	if !ok || b.FieldID != fieldID {
		return blockRepo.ErrBlockNotFound
	}
	delete(r.blocks, id)
	return nil
}

type fakeFieldRepo struct{}

func (fakeFieldRepo) GetByID(_ context.Context, id int64) (*domain.Field, error) {
	if id != 1 && id != 2 {
		return nil, fieldRepo.ErrFieldNotFound
	}
	return &domain.Field{ID: id, BasePricePerHour: decimal.NewFromInt(20), Timezone: "UTC"}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService() (*Service, *fakeBlockRepo) {
	start := time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)
	repo := &fakeBlockRepo{blocks: map[int64]*domain.ScheduleBlock{
		1: {ID: 1, FieldID: 1, StartTime: start, EndTime: start.Add(2 * time.Hour), Reason: "maintenance"},
		2: {ID: 2, FieldID: 1, StartTime: start.AddDate(0, 0, 7), EndTime: start.AddDate(0, 0, 7).Add(time.Hour), Reason: "tournament"},
		3: {ID: 3, FieldID: 2, StartTime: start, EndTime: start.Add(time.Hour), Reason: "maintenance"},
	}}
	return NewService(repo, fakeFieldRepo{}, nopLogger{}), repo
}

func TestList(t *testing.T) {
	svc, _ := newTestService()

	t.Run("all blocks of a field", func(t *testing.T) {
		resp, err := svc.List(context.Background(), &models.ListBlocksRequest{FieldID: 1})
		require.NoError(t, err)
		assert.Len(t, resp.Blocks, 2)
	})

	t.Run("period filter", func(t *testing.T) {
		from := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2026, 6, 2, 0, 0, 0, 0, time.UTC)
		resp, err := svc.List(context.Background(), &models.ListBlocksRequest{
			FieldID:   1,
			StartDate: &from,
			EndDate:   &to,
		})
		require.NoError(t, err)
		require.Len(t, resp.Blocks, 1)
		assert.Equal(t, "maintenance", resp.Blocks[0].Reason)
	})

	t.Run("unknown field", func(t *testing.T) {
		_, err := svc.List(context.Background(), &models.ListBlocksRequest{FieldID: 404})
		assert.ErrorIs(t, err, ErrFieldNotFound)
	})
}

func TestDelete(t *testing.T) {
	t.Run("removes the block", func(t *testing.T) {
		svc, repo := newTestService()

		err := svc.Delete(context.Background(), 1, 1)

		require.NoError(t, err)
		assert.NotContains(t, repo.blocks, int64(1))
	})

	t.Run("unknown block", func(t *testing.T) {
		svc, _ := newTestService()

		err := svc.Delete(context.Background(), 1, 404)

		assert.ErrorIs(t, err, ErrBlockNotFound)
	})

	t.Run("block belongs to another field", func(t *testing.T) {
		svc, repo := newTestService()

		err := svc.Delete(context.Background(), 2, 1)

		assert.ErrorIs(t, err, ErrBlockNotFound, "a block is only reachable through its own field")
		assert.Contains(t, repo.blocks, int64(1))
	})

	t.Run("unknown field", func(t *testing.T) {
		svc, _ := newTestService()

		err := svc.Delete(context.Background(), 404, 1)

		assert.ErrorIs(t, err, ErrFieldNotFound)
	})
}
