package get_field_blocks

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-FieldBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-FieldBookingService/internal/service/scheduleblocks"
)

const (
	msgInvalidFieldID = "некорректный ID поля"
	msgInvalidParams  = "некорректные параметры запроса"
	msgFieldNotFound  = "поле не найдено"
)

type Handler struct {
	service ScheduleBlockService
	logger  Logger
}

func NewHandler(service ScheduleBlockService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/fields/{fieldId}/blocks
// Query params: from, to (опционально, даты YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	fieldIDStr := vars["fieldId"]

	fieldID, err := strconv.ParseInt(fieldIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /fields/{id}/blocks - Invalid field ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFieldID)
		return
	}

	query := r.URL.Query()
	serviceReq, err := ToServiceRequest(fieldID, query.Get("from"), query.Get("to"))
	if err != nil {
		h.logger.Warn("GET /fields/{id}/blocks - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.List(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, scheduleblocks.ErrFieldNotFound):
			h.logger.Warn("GET /fields/{id}/blocks - Field not found: field_id=%d", fieldID)
			handlers.RespondNotFound(w, msgFieldNotFound)

		default:
			h.logger.Error("GET /fields/{id}/blocks - Failed to get blocks: field_id=%d, error=%v",
				fieldID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /fields/{id}/blocks - Blocks retrieved successfully: field_id=%d, count=%d",
		fieldID, len(result.Blocks))
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
