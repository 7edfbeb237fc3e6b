package reserve

import (
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-FieldBookingService/internal/domain"
)

var (
	// ErrInvalidInterval возвращается при некорректном интервале
	// (start >= end, превышение максимальной длительности, вне рабочих часов).
	// Проверяется до любого обращения к хранилищу.
	ErrInvalidInterval = errors.New("reserve: invalid booking interval")

	// ErrFieldNotFound возвращается, когда поле не найдено
	ErrFieldNotFound = errors.New("reserve: field not found")

	// ErrSlotUnavailable возвращается, когда интервал пересекается с существующим
	// бронированием или блокировкой, либо проиграна гонка на коммите
	ErrSlotUnavailable = errors.New("reserve: slot is not available")

	// ErrStoreUnavailable возвращается при сбое сериализации или таймауте
	// транзакции. Состояние не изменено; вызывающий может повторить операцию целиком.
	ErrStoreUnavailable = errors.New("reserve: transient store error")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reserve: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reserve: internal error")
)

// SlotUnavailableError несет пересекающиеся интервалы, чтобы вызывающий
// мог показать пользователю все занятые окна. Раскрывается через errors.As;
// errors.Is(err, ErrSlotUnavailable) тоже работает.
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
