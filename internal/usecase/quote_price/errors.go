package quote_price

import "errors"

var (
	// ErrInvalidInterval возвращается при некорректном интервале
	ErrInvalidInterval = errors.New("quote_price: invalid interval")

	// ErrFieldNotFound возвращается, когда поле не найдено
	ErrFieldNotFound = errors.New("quote_price: field not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("quote_price: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("quote_price: internal error")
)
