package create_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FieldBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-FieldBookingService/internal/domain"
	"github.com/m04kA/SMC-FieldBookingService/internal/usecase/reserve"
)

type fakeUseCase struct {
	resp *reserve.Response
	err  error

	gotReq *reserve.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *reserve.Request) (*reserve.Response, error) {
	f.gotReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestRouter(uc ReserveUseCase) *mux.Router {
	handler := NewHandler(uc, nopLogger{})
	r := mux.NewRouter()
	protected := r.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)
	protected.HandleFunc("/bookings", handler.Handle).Methods(http.MethodPost)
	return r
}

func TestHandle_CreatesBooking(t *testing.T) {
	promoID := int64(7)
	start := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
	uc := &fakeUseCase{resp: &reserve.Response{
		ID:                 1,
		FieldID:            2,
		OwnerID:            42,
		Start:              start,
		End:                start.Add(2 * time.Hour),
		Status:             string(domain.StatusPending),
		TotalPrice:         decimal.RequireFromString("32"),
		AppliedPromotionID: &promoID,
	}}
	router := newTestRouter(uc)

	body := `{"fieldId":2,"startTime":"2026-06-01T10:00:00Z","endTime":"2026-06-01T12:00:00Z"}`
	req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(body))
	req.Header.Set("X-User-ID", "42")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "32.00", resp.TotalPrice)
	require.NotNil(t, resp.AppliedPromotionID)
	assert.Equal(t, int64(7), *resp.AppliedPromotionID)

	require.NotNil(t, uc.gotReq)
	assert.Equal(t, int64(42), uc.gotReq.OwnerID, "owner comes from X-User-ID header")
}

func TestHandle_ConflictCarriesBusyWindows(t *testing.T) {
	start := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
	uc := &fakeUseCase{err: &reserve.SlotUnavailableError{Conflicts: []domain.Interval{
		{Start: start, End: start.Add(2 * time.Hour)},
	}}}
	router := newTestRouter(uc)

	body := `{"fieldId":2,"startTime":"2026-06-01T10:30:00Z","endTime":"2026-06-01T11:30:00Z"}`
	req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(body))
	req.Header.Set("X-User-ID", "42")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusConflict, rec.Code)

	var resp ConflictResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Conflicts, 1)
	assert.Equal(t, "2026-06-01T10:00:00Z", resp.Conflicts[0].StartTime)
	assert.Equal(t, "2026-06-01T12:00:00Z", resp.Conflicts[0].EndTime)
}

func TestHandle_BadRequests(t *testing.T) {
	router := newTestRouter(&fakeUseCase{})

	t.Run("missing user header", func(t *testing.T) {
		body := `{"fieldId":2,"startTime":"2026-06-01T10:00:00Z","endTime":"2026-06-01T12:00:00Z"}`
		req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(body))
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader("{"))
		req.Header.Set("X-User-ID", "42")
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("bad time format", func(t *testing.T) {
		body := `{"fieldId":2,"startTime":"2026-06-01 10:00","endTime":"2026-06-01T12:00:00Z"}`
		req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(body))
		req.Header.Set("X-User-ID", "42")
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"field not found", reserve.ErrFieldNotFound, http.StatusNotFound},
		{"invalid interval", reserve.ErrInvalidInterval, http.StatusBadRequest},
		{"store unavailable", reserve.ErrStoreUnavailable, http.StatusServiceUnavailable},
		{"internal error", reserve.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(&fakeUseCase{err: tt.err})

			body := `{"fieldId":2,"startTime":"2026-06-01T10:00:00Z","endTime":"2026-06-01T12:00:00Z"}`
			req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(body))
			req.Header.Set("X-User-ID", "42")
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
