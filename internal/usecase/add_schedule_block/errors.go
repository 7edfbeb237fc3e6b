package add_schedule_block

import (
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-FieldBookingService/internal/domain"
)

var (
	// ErrInvalidInterval возвращается при некорректном интервале блокировки
	ErrInvalidInterval = errors.New("add_schedule_block: invalid block interval")

	// ErrFieldNotFound возвращается, когда поле не найдено
	ErrFieldNotFound = errors.New("add_schedule_block: field not found")

	// ErrSlotUnavailable возвращается, когда блокировка пересекается
	// с активным бронированием или существующей блокировкой
	ErrSlotUnavailable = errors.New("add_schedule_block: slot is not available")

	// ErrStoreUnavailable возвращается при сбое сериализации или таймауте транзакции
	ErrStoreUnavailable = errors.New("add_schedule_block: transient store error")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("add_schedule_block: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("add_schedule_block: internal error")
)

// SlotUnavailableError несет пересекающиеся интервалы для отображения пользователю
type SlotUnavailableError struct {
	Conflicts []domain.Interval
}

func (e *SlotUnavailableError) Error() string {
	if len(e.Conflicts) == 0 {
		return ErrSlotUnavailable.Error()
	}
	parts := make([]string, len(e.Conflicts))
	for i, iv := range e.Conflicts {
		parts[i] = iv.String()
	}
	return fmt.Sprintf("%s: conflicts with %s", ErrSlotUnavailable.Error(), strings.Join(parts, ", "))
}

func (e *SlotUnavailableError) Unwrap() error {
	return ErrSlotUnavailable
}
