package scheduleblock

import "errors"

var (
	// ErrBlockNotFound возвращается, когда блокировка не найдена
	ErrBlockNotFound = errors.New("scheduleblock.repository: schedule block not found")

	// ErrSlotTaken возвращается, когда exclusion constraint отклонил вставку
	// пересекающейся блокировки
	ErrSlotTaken = errors.New("scheduleblock.repository: overlapping block already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("scheduleblock.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("scheduleblock.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("scheduleblock.repository: failed to scan row")
)
