package reserve

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-FieldBookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса.
// Выполняется до любого обращения к хранилищу.
func validateRequest(req *Request) error {
	if req.FieldID <= 0 {
		return fmt.Errorf("%w: fieldID must be positive", ErrInvalidInput)
	}

	if req.OwnerID <= 0 {
		return fmt.Errorf("%w: ownerID must be positive", ErrInvalidInput)
	}

	if req.Start.IsZero() || req.End.IsZero() {
		return fmt.Errorf("%w: start and end are required", ErrInvalidInput)
	}

	if !req.Start.Before(req.End) {
		return fmt.Errorf("%w: start must be before end", ErrInvalidInterval)
	}

	if req.End.Sub(req.Start) > domain.MaxBookingHours*time.Hour {
		return fmt.Errorf("%w: booking cannot exceed %d hours", ErrInvalidInterval, domain.MaxBookingHours)
	}

	return nil
}
