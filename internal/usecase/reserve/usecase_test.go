package reserve

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FieldBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-FieldBookingService/internal/infra/storage/booking"
	fieldRepo "github.com/m04kA/SMC-FieldBookingService/internal/infra/storage/field"
	"github.com/m04kA/SMC-FieldBookingService/pkg/txmanager"
)

var (
	slotStart = time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
	slotEnd   = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
)

// fakeStore моделирует хранилище в памяти. Create проверяет пересечения
// под мьютексом, как это делает exclusion constraint в Postgres.
type fakeStore struct {
	mu sync.Mutex

	fields   map[int64]*domain.Field
	bookings []*domain.Booking
	blocks   []*domain.ScheduleBlock
	promos   []*domain.Promotion

	nextID int64

	// createFailures инжектирует проигранные гонки: столько первых Create
	// завершатся ErrSlotTaken
	createFailures int
}

func newFakeStore() *fakeStore {
	price := decimal.NewFromInt(20)
	return &fakeStore{
		fields: map[int64]*domain.Field{
			1: {ID: 1, BasePricePerHour: price, Timezone: "UTC"},
		},
	}
}

func (s *fakeStore) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.createFailures > 0 {
		s.createFailures--
		return nil, bookingRepo.ErrSlotTaken
	}

	iv := b.Interval()
	for _, existing := range s.bookings {
		if existing.IsActive() && existing.Interval().Overlaps(iv) {
			return nil, bookingRepo.ErrSlotTaken
		}
	}

	s.nextID++
	created := *b
	created.ID = s.nextID
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	s.bookings = append(s.bookings, &created)

	result := created
	return &result, nil
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

func (s *fakeStore) addBooking(status domain.BookingStatus, start, end time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	s.bookings = append(s.bookings, &domain.Booking{
		ID:        s.nextID,
		FieldID:   1,
		OwnerID:   99,
		StartTime: start,
		EndTime:   end,
		Status:    status,
	})
}

type fakeBlockRepo struct {
	store *fakeStore
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
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	field, ok := r.store.fields[id]
	if !ok {
		return nil, fieldRepo.ErrFieldNotFound
	}
	return field, nil
}

type fakePromoRepo struct {
	store *fakeStore
}

func (r *fakePromoRepo) GetActiveOverlapping(_ context.Context, fieldID int64, iv domain.Interval) ([]*domain.Promotion, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var out []*domain.Promotion
	for _, p := range r.store.promos {
		if p.FieldID == fieldID && p.AppliesTo(iv) {
			out = append(out, p)
		}
	}
	return out, nil
}

type passthroughTxManager struct {
	err error // если задана, транзакция сразу падает с этой ошибкой
}

func (m *passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.err != nil {
		return m.err
	}
	return fn(ctx)
}

type fakePublisher struct {
	mu     sync.Mutex
	events []*domain.Booking
}

func (p *fakePublisher) PublishBookingCreated(_ context.Context, b *domain.Booking) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, b)
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
		&fakePromoRepo{store: store},
		&passthroughTxManager{},
		publisher,
		nopLogger{},
	)
	return uc, publisher
}

func TestExecute_CreatesBookingWithPromotion(t *testing.T) {
	store := newFakeStore()
	store.promos = []*domain.Promotion{
		{
			ID:            7,
			FieldID:       1,
			DiscountType:  domain.DiscountPercentage,
			DiscountValue: decimal.NewFromInt(20),
			StartDate:     slotStart.Add(-24 * time.Hour),
			EndDate:       slotEnd.Add(24 * time.Hour),
			IsActive:      true,
		},
	}
	uc, publisher := newTestUseCase(store)

	resp, err := uc.Execute(context.Background(), &Request{
		FieldID: 1, OwnerID: 42, Start: slotStart, End: slotEnd,
	})

	require.NoError(t, err)
	assert.Equal(t, "pending", resp.Status)
	assert.True(t, decimal.NewFromInt(32).Equal(resp.TotalPrice), "20/hr * 2h with 20%% off, got %s", resp.TotalPrice)
	require.NotNil(t, resp.AppliedPromotionID)
	assert.Equal(t, int64(7), *resp.AppliedPromotionID)

	require.Len(t, store.bookings, 1)
	assert.Len(t, publisher.events, 1)
}

func TestExecute_RejectsOverlappingInterval(t *testing.T) {
	store := newFakeStore()
	store.addBooking(domain.StatusConfirmed, slotStart, slotEnd)
	uc, _ := newTestUseCase(store)

	// Запрошенный интервал целиком внутри занятого
	_, err := uc.Execute(context.Background(), &Request{
		FieldID: 1, OwnerID: 42,
		Start: slotStart.Add(30 * time.Minute),
		End:   slotEnd.Add(-30 * time.Minute),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSlotUnavailable)

	var slotErr *SlotUnavailableError
	require.ErrorAs(t, err, &slotErr)
	require.Len(t, slotErr.Conflicts, 1)
	assert.Equal(t, slotStart, slotErr.Conflicts[0].Start)
	assert.Equal(t, slotEnd, slotErr.Conflicts[0].End)

	assert.Len(t, store.bookings, 1, "no new booking must be created")
}

func TestExecute_AllowsAbuttingInterval(t *testing.T) {
	store := newFakeStore()
	store.addBooking(domain.StatusConfirmed, slotStart, slotEnd)
	uc, _ := newTestUseCase(store)

	resp, err := uc.Execute(context.Background(), &Request{
		FieldID: 1, OwnerID: 42, Start: slotEnd, End: slotEnd.Add(time.Hour),
	})

	require.NoError(t, err)
	assert.Equal(t, "pending", resp.Status)
	assert.Len(t, store.bookings, 2)
}

func TestExecute_CancelledBookingFreesInterval(t *testing.T) {
	store := newFakeStore()
	store.addBooking(domain.StatusCancelled, slotStart, slotEnd)
	uc, _ := newTestUseCase(store)

	_, err := uc.Execute(context.Background(), &Request{
		FieldID: 1, OwnerID: 42, Start: slotStart, End: slotEnd,
	})

	require.NoError(t, err)
}

func TestExecute_RejectsIntervalOverScheduleBlock(t *testing.T) {
	store := newFakeStore()
	store.blocks = []*domain.ScheduleBlock{
		{ID: 1, FieldID: 1, StartTime: slotStart, EndTime: slotEnd, Reason: "maintenance"},
	}
	uc, _ := newTestUseCase(store)

	_, err := uc.Execute(context.Background(), &Request{
		FieldID: 1, OwnerID: 42, Start: slotStart.Add(time.Hour), End: slotEnd.Add(time.Hour),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSlotUnavailable)
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
			req:     &Request{FieldID: 1, OwnerID: 42, Start: slotStart, End: slotStart},
			wantErr: ErrInvalidInterval,
		},
		{
			name:    "start after end",
			req:     &Request{FieldID: 1, OwnerID: 42, Start: slotEnd, End: slotStart},
			wantErr: ErrInvalidInterval,
		},
		{
			name:    "interval too long",
			req:     &Request{FieldID: 1, OwnerID: 42, Start: slotStart, End: slotStart.Add(25 * time.Hour)},
			wantErr: ErrInvalidInterval,
		},
		{
			name:    "non-positive field id",
			req:     &Request{FieldID: 0, OwnerID: 42, Start: slotStart, End: slotEnd},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "non-positive owner id",
			req:     &Request{FieldID: 1, OwnerID: -1, Start: slotStart, End: slotEnd},
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
		FieldID: 404, OwnerID: 42, Start: slotStart, End: slotEnd,
	})

	assert.ErrorIs(t, err, ErrFieldNotFound)
}

func TestExecute_RejectsIntervalOutsideOperatingHours(t *testing.T) {
	store := newFakeStore()
	openAt, closeAt := 8*60, 20*60
	store.fields[1].OpenMinutes = &openAt
	store.fields[1].CloseMinutes = &closeAt
	uc, _ := newTestUseCase(store)

	_, err := uc.Execute(context.Background(), &Request{
		FieldID: 1, OwnerID: 42,
		Start: time.Date(2026, 6, 1, 19, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 6, 1, 21, 0, 0, 0, time.UTC),
	})

	assert.ErrorIs(t, err, ErrInvalidInterval)
}

func TestExecute_RetriesOnceAfterLostCommitRace(t *testing.T) {
	store := newFakeStore()
	store.createFailures = 1
	uc, _ := newTestUseCase(store)

	resp, err := uc.Execute(context.Background(), &Request{
		FieldID: 1, OwnerID: 42, Start: slotStart, End: slotEnd,
	})

	require.NoError(t, err, "single lost race must be retried transparently")
	assert.Equal(t, "pending", resp.Status)
	assert.Len(t, store.bookings, 1)
}

func TestExecute_SecondLostRaceReturnsSlotUnavailable(t *testing.T) {
	store := newFakeStore()
	store.createFailures = 2
	uc, _ := newTestUseCase(store)

	_, err := uc.Execute(context.Background(), &Request{
		FieldID: 1, OwnerID: 42, Start: slotStart, End: slotEnd,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSlotUnavailable)
	assert.Empty(t, store.bookings)
}

func TestExecute_SerializationFailureIsTransient(t *testing.T) {
	store := newFakeStore()
	publisher := &fakePublisher{}
	uc := NewUseCase(
		store,
		&fakeBlockRepo{store: store},
		&fakeFieldRepo{store: store},
		&fakePromoRepo{store: store},
		&passthroughTxManager{err: txmanager.ErrSerialization},
		publisher,
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{
		FieldID: 1, OwnerID: 42, Start: slotStart, End: slotEnd,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.Empty(t, publisher.events)
}

// TestExecute_ConcurrentReservations гоняет конкурентные reserve на одном поле
// и проверяет главный инвариант: в хранилище не остается пересекающихся
// активных бронирований, что бы ни вернули отдельные вызовы.
func TestExecute_ConcurrentReservations(t *testing.T) {
	store := newFakeStore()
	uc, _ := newTestUseCase(store)

	const goroutines = 16
	var wg sync.WaitGroup
	successes := make(chan int64, goroutines)

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()

			// Слоты частично пересекаются между собой
			start := slotStart.Add(time.Duration(n%4) * time.Hour)
			end := start.Add(2 * time.Hour)

			resp, err := uc.Execute(context.Background(), &Request{
				FieldID: 1, OwnerID: int64(n + 1), Start: start, End: end,
			})
			if err == nil {
				successes <- resp.ID
			}
		}(i)
	}

	wg.Wait()
	close(successes)

	count := 0
	for range successes {
		count++
	}
	require.Greater(t, count, 0, "at least one reservation must win")
	require.Len(t, store.bookings, count)

	for i := 0; i < len(store.bookings); i++ {
		for j := i + 1; j < len(store.bookings); j++ {
			a, b := store.bookings[i], store.bookings[j]
			assert.False(t, a.Interval().Overlaps(b.Interval()),
				"bookings %d and %d overlap: %s vs %s", a.ID, b.ID, a.Interval(), b.Interval())
		}
	}
}
