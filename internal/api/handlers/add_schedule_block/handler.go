package add_schedule_block

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-FieldBookingService/internal/api/handlers"
	addScheduleBlock "github.com/m04kA/SMC-FieldBookingService/internal/usecase/add_schedule_block"
)

const (
	msgInvalidFieldID     = "некорректный ID поля"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTime        = "некорректный формат времени, ожидается RFC3339"
	msgInvalidInterval    = "некорректный интервал блокировки"
	msgFieldNotFound      = "поле не найдено"
	msgSlotUnavailable    = "выбранный интервал пересекается с бронированиями или блокировками"
	msgStoreUnavailable   = "сервис временно недоступен, повторите попытку"
)

type Handler struct {
	useCase AddScheduleBlockUseCase
	logger  Logger
}

func NewHandler(useCase AddScheduleBlockUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/fields/{fieldId}/blocks
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	fieldIDStr := vars["fieldId"]

	fieldID, err := strconv.ParseInt(fieldIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("POST /fields/{id}/blocks - Invalid field ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFieldID)
		return
	}

	var req AddScheduleBlockRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /fields/{id}/blocks - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(fieldID)
	if err != nil {
		h.logger.Warn("POST /fields/{id}/blocks - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var slotErr *addScheduleBlock.SlotUnavailableError

		switch {
		case errors.As(err, &slotErr):
			h.logger.Warn("POST /fields/{id}/blocks - Slot unavailable: field_id=%d, conflicts=%d",
				fieldID, len(slotErr.Conflicts))
			handlers.RespondJSON(w, http.StatusConflict, ConflictResponse{
				Error:     msgSlotUnavailable,
				Conflicts: ToIntervalResponses(slotErr.Conflicts),
			})

		case errors.Is(err, addScheduleBlock.ErrSlotUnavailable):
			h.logger.Warn("POST /fields/{id}/blocks - Slot unavailable: field_id=%d", fieldID)
			handlers.RespondError(w, http.StatusConflict, msgSlotUnavailable)

		case errors.Is(err, addScheduleBlock.ErrFieldNotFound):
			h.logger.Warn("POST /fields/{id}/blocks - Field not found: field_id=%d", fieldID)
			handlers.RespondNotFound(w, msgFieldNotFound)

		case errors.Is(err, addScheduleBlock.ErrInvalidInterval), errors.Is(err, addScheduleBlock.ErrInvalidInput):
			h.logger.Warn("POST /fields/{id}/blocks - Invalid interval: field_id=%d, error=%v", fieldID, err)
			handlers.RespondBadRequest(w, msgInvalidInterval)

		case errors.Is(err, addScheduleBlock.ErrStoreUnavailable):
			h.logger.Warn("POST /fields/{id}/blocks - Store unavailable: field_id=%d, error=%v", fieldID, err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgStoreUnavailable)

		default:
			h.logger.Error("POST /fields/{id}/blocks - Failed to create block: field_id=%d, error=%v",
				fieldID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /fields/{id}/blocks - Block created successfully: block_id=%d, field_id=%d",
		result.ID, fieldID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
