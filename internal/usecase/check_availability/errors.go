package check_availability

import "errors"

var (
	// ErrInvalidInterval возвращается при некорректном интервале
	ErrInvalidInterval = errors.New("check_availability: invalid interval")

	// ErrFieldNotFound возвращается, когда поле не найдено
	ErrFieldNotFound = errors.New("check_availability: field not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("check_availability: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("check_availability: internal error")
)
