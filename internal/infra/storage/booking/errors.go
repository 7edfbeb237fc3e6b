package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrSlotTaken возвращается, когда exclusion constraint отклонил вставку
	// пересекающегося интервала (проигранная гонка за слот)
	ErrSlotTaken = errors.New("booking.repository: slot already taken")

	// ErrStatusChanged возвращается, когда условный переход статуса не
	// выполнен: строка отсутствует или статус уже не тот, из которого
	// запрошен переход (конкурентное изменение между чтением и записью)
	ErrStatusChanged = errors.New("booking.repository: booking status changed")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
