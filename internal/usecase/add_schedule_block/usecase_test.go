package add_schedule_block

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FieldBookingService/internal/domain"
	fieldRepo "github.com/m04kA/SMC-FieldBookingService/internal/infra/storage/field"
	blockRepo "github.com/m04kA/SMC-FieldBookingService/internal/infra/storage/scheduleblock"
)

var (
	slotStart = time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
	slotEnd   = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
)

type fakeStore struct {
	mu sync.Mutex

	fields   map[int64]*domain.Field
	bookings []*domain.Booking
	blocks   []*domain.ScheduleBlock

	nextID         int64
	createFailures int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		fields: map[int64]*domain.Field{
			1: {ID: 1, BasePricePerHour: decimal.NewFromInt(20), Timezone: "UTC"},
		},
	}
}

func (s *fakeStore) GetOverlapping(_ context.Context, fieldID int64, iv domain.Interval) ([]*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*domain.Booking
	for _, b := range s.bookings {
		if b.FieldID == fieldID && b.IsActive() && b.Interval().Overlaps(iv) {
			out = append(out, b)
		}
	}
	return out, nil
}

type fakeBlockRepo struct {
	store *fakeStore
}

func (r *fakeBlockRepo) Create(_ context.Context, block *domain.ScheduleBlock) (*domain.ScheduleBlock, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if r.store.createFailures > 0 {
		r.store.createFailures--
		return nil, blockRepo.ErrSlotTaken
	}

	iv := block.Interval()
	for _, existing := range r.store.blocks {
		if existing.Interval().Overlaps(iv) {
			return nil, blockRepo.ErrSlotTaken
		}
	}

	r.store.nextID++
	created := *block
	created.ID = r.store.nextID
	created.CreatedAt = time.Now()
	r.store.blocks = append(r.store.blocks, &created)

	result := created
	return &result, nil
}

func (r *fakeBlockRepo) GetOverlapping(_ context.Context, fieldID int64, iv domain.Interval) ([]*domain.ScheduleBlock, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var out []*domain.ScheduleBlock
	for _, b := range r.store.blocks {
		if b.FieldID == fieldID && b.Interval().Overlaps(iv) {
			out = append(out, b)
		}
	}
	return out, nil
}

type fakeFieldRepo struct {
	store *fakeStore
}

func (r *fakeFieldRepo) GetByID(_ context.Context, id int64) (*domain.Field, error) {
	field, ok := r.store.fields[id]
	if !ok {
		return nil, fieldRepo.ErrFieldNotFound
	}
	return field, nil
}

type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakePublisher struct {
	events []*domain.ScheduleBlock
}

func (p *fakePublisher) PublishBlockCreated(_ context.Context, block *domain.ScheduleBlock) error {
	p.events = append(p.events, block)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(store *fakeStore) (*UseCase, *fakePublisher) {
	publisher := &fakePublisher{}
	uc := NewUseCase(
		store,
		&fakeBlockRepo{store: store},
		&fakeFieldRepo{store: store},
		passthroughTxManager{},
		publisher,
		nopLogger{},
	)
	return uc, publisher
}

func TestExecute_CreatesBlock(t *testing.T) {
	store := newFakeStore()
	uc, publisher := newTestUseCase(store)

	resp, err := uc.Execute(context.Background(), &Request{
		FieldID: 1, Start: slotStart, End: slotEnd, Reason: "maintenance",
	})

	require.NoError(t, err)
	assert.Equal(t, "maintenance", resp.Reason)
	assert.Len(t, store.blocks, 1)
	assert.Len(t, publisher.events, 1)
}

func TestExecute_RejectsBlockOverActiveBooking(t *testing.T) {
	store := newFakeStore()
	store.bookings = []*domain.Booking{
		{ID: 1, FieldID: 1, OwnerID: 5, StartTime: slotStart, EndTime: slotEnd, Status: domain.StatusConfirmed},
	}
	uc, _ := newTestUseCase(store)

	_, err := uc.Execute(context.Background(), &Request{
		FieldID: 1, Start: slotStart.Add(time.Hour), End: slotEnd.Add(time.Hour), Reason: "maintenance",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSlotUnavailable)

	var slotErr *SlotUnavailableError
	require.ErrorAs(t, err, &slotErr)
	assert.Len(t, slotErr.Conflicts, 1)
	assert.Empty(t, store.blocks)
}

func TestExecute_RejectsBlockOverExistingBlock(t *testing.T) {
	store := newFakeStore()
	store.blocks = []*domain.ScheduleBlock{
		{ID: 1, FieldID: 1, StartTime: slotStart, EndTime: slotEnd, Reason: "repair"},
	}
	uc, _ := newTestUseCase(store)

	_, err := uc.Execute(context.Background(), &Request{
		FieldID: 1, Start: slotStart, End: slotEnd, Reason: "maintenance",
	})

	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestExecute_AllowsBlockOverCancelledBooking(t *testing.T) {
	store := newFakeStore()
	store.bookings = []*domain.Booking{
		{ID: 1, FieldID: 1, OwnerID: 5, StartTime: slotStart, EndTime: slotEnd, Status: domain.StatusCancelled},
	}
	uc, _ := newTestUseCase(store)

	_, err := uc.Execute(context.Background(), &Request{
		FieldID: 1, Start: slotStart, End: slotEnd, Reason: "maintenance",
	})

	require.NoError(t, err)
}

func TestExecute_Validation(t *testing.T) {
	uc, _ := newTestUseCase(newFakeStore())

	tests := []struct {
		name    string
		req     *Request
		wantErr error
	}{
		{
			name:    "start equals end",
			req:     &Request{FieldID: 1, Start: slotStart, End: slotStart},
			wantErr: ErrInvalidInterval,
		},
		{
			name:    "non-positive field id",
			req:     &Request{FieldID: 0, Start: slotStart, End: slotEnd},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "reason too long",
			req:     &Request{FieldID: 1, Start: slotStart, End: slotEnd, Reason: strings.Repeat("x", domain.MaxReasonLength+1)},
			wantErr: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExecute_UnknownFieldFails(t *testing.T) {
	uc, _ := newTestUseCase(newFakeStore())

	_, err := uc.Execute(context.Background(), &Request{
		FieldID: 404, Start: slotStart, End: slotEnd, Reason: "maintenance",
	})

	assert.ErrorIs(t, err, ErrFieldNotFound)
}

func TestExecute_RetriesOnceAfterLostCommitRace(t *testing.T) {
	store := newFakeStore()
	store.createFailures = 1
	uc, _ := newTestUseCase(store)

	resp, err := uc.Execute(context.Background(), &Request{
		FieldID: 1, Start: slotStart, End: slotEnd, Reason: "maintenance",
	})

	require.NoError(t, err)
	assert.NotZero(t, resp.ID)
	assert.Len(t, store.blocks, 1)
}

func TestExecute_SecondLostRaceReturnsSlotUnavailable(t *testing.T) {
	store := newFakeStore()
	store.createFailures = 2
	uc, _ := newTestUseCase(store)

	_, err := uc.Execute(context.Background(), &Request{
		FieldID: 1, Start: slotStart, End: slotEnd, Reason: "maintenance",
	})

	assert.ErrorIs(t, err, ErrSlotUnavailable)
	assert.Empty(t, store.blocks)
}
