package check_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-FieldBookingService/internal/api/handlers"
	checkAvailability "github.com/m04kA/SMC-FieldBookingService/internal/usecase/check_availability"
)

const (
	msgInvalidFieldID  = "некорректный ID поля"
	msgInvalidParams   = "некорректные параметры запроса, ожидается start и end в формате RFC3339"
	msgInvalidInterval = "некорректный интервал"
	msgFieldNotFound   = "поле не найдено"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/fields/{fieldId}/availability
// Query params: start, end (RFC3339, обязательные)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	fieldIDStr := vars["fieldId"]

	fieldID, err := strconv.ParseInt(fieldIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /fields/{id}/availability - Invalid field ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFieldID)
		return
	}

	query := r.URL.Query()
	useCaseReq, err := ToUseCaseRequest(fieldID, query.Get("start"), query.Get("end"))
	if err != nil {
		h.logger.Warn("GET /fields/{id}/availability - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrFieldNotFound):
			h.logger.Warn("GET /fields/{id}/availability - Field not found: field_id=%d", fieldID)
			handlers.RespondNotFound(w, msgFieldNotFound)

		case errors.Is(err, checkAvailability.ErrInvalidInterval), errors.Is(err, checkAvailability.ErrInvalidInput):
			h.logger.Warn("GET /fields/{id}/availability - Invalid interval: field_id=%d, error=%v", fieldID, err)
			handlers.RespondBadRequest(w, msgInvalidInterval)

		default:
			h.logger.Error("GET /fields/{id}/availability - Failed to check availability: field_id=%d, error=%v",
				fieldID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /fields/{id}/availability - Availability checked: field_id=%d, available=%t, conflicts=%d",
		fieldID, result.Available, len(result.Conflicts))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
