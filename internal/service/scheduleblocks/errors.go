package scheduleblocks

import "errors"

var (
	// ErrBlockNotFound возвращается, когда блокировка не найдена у поля
	ErrBlockNotFound = errors.New("schedule block not found")

	// ErrFieldNotFound возвращается, когда поле не найдено
	ErrFieldNotFound = errors.New("field not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
