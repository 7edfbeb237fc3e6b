package get_field_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-FieldBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-FieldBookingService/internal/service/bookings"
)

const (
	msgInvalidFieldID = "некорректный ID поля"
	msgInvalidParams  = "некорректные параметры запроса"
	msgFieldNotFound  = "поле не найдено"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/fields/{fieldId}/bookings
// Query params: from, to, status, includeCancelled (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	fieldIDStr := vars["fieldId"]

	fieldID, err := strconv.ParseInt(fieldIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /fields/{id}/bookings - Invalid field ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFieldID)
		return
	}

	query := r.URL.Query()
	serviceReq, err := ToServiceRequest(
		fieldID,
		query.Get("from"),
		query.Get("to"),
		query.Get("status"),
		query.Get("includeCancelled"),
	)
	if err != nil {
		h.logger.Warn("GET /fields/{id}/bookings - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.GetFieldBookings(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrFieldNotFound):
			h.logger.Warn("GET /fields/{id}/bookings - Field not found: field_id=%d", fieldID)
			handlers.RespondNotFound(w, msgFieldNotFound)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /fields/{id}/bookings - Invalid parameters: field_id=%d, error=%v", fieldID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /fields/{id}/bookings - Failed to get bookings: field_id=%d, error=%v",
				fieldID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /fields/{id}/bookings - Bookings retrieved successfully: field_id=%d, count=%d",
		fieldID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
