package quote_price

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-FieldBookingService/internal/api/handlers"
	quotePrice "github.com/m04kA/SMC-FieldBookingService/internal/usecase/quote_price"
)

const (
	msgInvalidFieldID  = "некорректный ID поля"
	msgInvalidParams   = "некорректные параметры запроса, ожидается start и end в формате RFC3339"
	msgInvalidInterval = "некорректный интервал"
	msgFieldNotFound   = "поле не найдено"
)

type Handler struct {
	useCase QuotePriceUseCase
	logger  Logger
}

func NewHandler(useCase QuotePriceUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/fields/{fieldId}/quote
// Query params: start, end (RFC3339, обязательные)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	fieldIDStr := vars["fieldId"]

	fieldID, err := strconv.ParseInt(fieldIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /fields/{id}/quote - Invalid field ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFieldID)
		return
	}

	query := r.URL.Query()
	useCaseReq, err := ToUseCaseRequest(fieldID, query.Get("start"), query.Get("end"))
	if err != nil {
		h.logger.Warn("GET /fields/{id}/quote - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, quotePrice.ErrFieldNotFound):
			h.logger.Warn("GET /fields/{id}/quote - Field not found: field_id=%d", fieldID)
			handlers.RespondNotFound(w, msgFieldNotFound)

		case errors.Is(err, quotePrice.ErrInvalidInterval), errors.Is(err, quotePrice.ErrInvalidInput):
			h.logger.Warn("GET /fields/{id}/quote - Invalid interval: field_id=%d, error=%v", fieldID, err)
			handlers.RespondBadRequest(w, msgInvalidInterval)

		default:
			h.logger.Error("GET /fields/{id}/quote - Failed to quote price: field_id=%d, error=%v", fieldID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /fields/{id}/quote - Price quoted: field_id=%d, price=%s", fieldID, result.TotalPrice)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
