package delete_schedule_block

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
	msgInvalidBlockID = "некорректный ID блокировки"
	msgFieldNotFound  = "поле не найдено"
	msgBlockNotFound  = "блокировка не найдена"
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

// Handle DELETE /api/v1/fields/{fieldId}/blocks/{blockId}
//
// Снимает блокировку расписания; интервал сразу доступен для бронирований.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	fieldID, err := strconv.ParseInt(vars["fieldId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /fields/{id}/blocks/{blockId} - Invalid field ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFieldID)
		return
	}

	blockID, err := strconv.ParseInt(vars["blockId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /fields/{id}/blocks/{blockId} - Invalid block ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBlockID)
		return
	}

	if err := h.service.Delete(r.Context(), fieldID, blockID); err != nil {
		switch {
		case errors.Is(err, scheduleblocks.ErrFieldNotFound):
			h.logger.Warn("DELETE /fields/{id}/blocks/{blockId} - Field not found: field_id=%d", fieldID)
			handlers.RespondNotFound(w, msgFieldNotFound)

		case errors.Is(err, scheduleblocks.ErrBlockNotFound):
			h.logger.Warn("DELETE /fields/{id}/blocks/{blockId} - Block not found: field_id=%d, block_id=%d",
				fieldID, blockID)
			handlers.RespondNotFound(w, msgBlockNotFound)

		default:
			h.logger.Error("DELETE /fields/{id}/blocks/{blockId} - Failed to delete block: block_id=%d, error=%v",
				blockID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /fields/{id}/blocks/{blockId} - Block deleted successfully: field_id=%d, block_id=%d",
		fieldID, blockID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
