package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FieldBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-FieldBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-FieldBookingService/internal/usecase/reserve"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTime        = "некорректный формат времени, ожидается RFC3339"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidInterval    = "некорректный интервал бронирования"
	msgFieldNotFound      = "поле не найдено"
	msgSlotUnavailable    = "выбранный интервал недоступен"
	msgStoreUnavailable   = "сервис временно недоступен, повторите попытку"
)

type Handler struct {
	useCase ReserveUseCase
	logger  Logger
}

func NewHandler(useCase ReserveUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Получаем ownerID из контекста (через middleware Auth)
	ownerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(ownerID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var slotErr *reserve.SlotUnavailableError

		switch {
		case errors.As(err, &slotErr):
			h.logger.Warn("POST /bookings - Slot unavailable: field_id=%d, owner_id=%d, conflicts=%d",
				req.FieldID, ownerID, len(slotErr.Conflicts))
			handlers.RespondJSON(w, http.StatusConflict, ConflictResponse{
				Error:     msgSlotUnavailable,
				Conflicts: ToIntervalResponses(slotErr.Conflicts),
			})

		case errors.Is(err, reserve.ErrSlotUnavailable):
			h.logger.Warn("POST /bookings - Slot unavailable: field_id=%d, owner_id=%d", req.FieldID, ownerID)
			handlers.RespondError(w, http.StatusConflict, msgSlotUnavailable)

		case errors.Is(err, reserve.ErrFieldNotFound):
			h.logger.Warn("POST /bookings - Field not found: field_id=%d", req.FieldID)
			handlers.RespondNotFound(w, msgFieldNotFound)

		case errors.Is(err, reserve.ErrInvalidInterval), errors.Is(err, reserve.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid interval: field_id=%d, error=%v", req.FieldID, err)
			handlers.RespondBadRequest(w, msgInvalidInterval)

		case errors.Is(err, reserve.ErrStoreUnavailable):
			h.logger.Warn("POST /bookings - Store unavailable: field_id=%d, error=%v", req.FieldID, err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgStoreUnavailable)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: field_id=%d, owner_id=%d, error=%v",
				req.FieldID, ownerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, field_id=%d, owner_id=%d",
		result.ID, req.FieldID, ownerID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
