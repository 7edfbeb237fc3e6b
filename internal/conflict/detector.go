// Package conflict проверяет предлагаемый интервал на пересечение
// с существующими бронированиями и блокировками расписания поля.
//
// Детектор — чистая функция над переданными данными: он не ходит в
// хранилище сам, чтобы вызывающий код был обязан получить консистентный
// снимок внутри транзакции.
package conflict

import (
	"github.com/m04kA/SMC-FieldBookingService/internal/domain"
)

// Result результат проверки пересечений
type Result struct {
	Conflict             bool
	ConflictingIntervals []domain.Interval
}

// Detect проверяет proposed на пересечение с активными бронированиями и
// блокировками. Возвращает ВСЕ пересекающиеся интервалы, а не только первый,
// чтобы вызывающий мог показать пользователю все занятые окна.
//
// Интервалы полуоткрытые: [a1,a2) и [b1,b2) пересекаются, только если
// a1 < b2 && b1 < a2. Граничащие интервалы (a2 == b1) пересечением не считаются —
// бронирования "впритык" допустимы.
//
// Отмененные бронирования таймлайн не занимают и пропускаются.
func Detect(proposed domain.Interval, bookings []*domain.Booking, blocks []*domain.ScheduleBlock) Result {
	conflicting := make([]domain.Interval, 0)

	for _, booking := range bookings {
		if !booking.IsActive() {
			continue
		}
		if iv := booking.Interval(); proposed.Overlaps(iv) {
			conflicting = append(conflicting, iv)
		}
	}

	for _, block := range blocks {
		if iv := block.Interval(); proposed.Overlaps(iv) {
			conflicting = append(conflicting, iv)
		}
	}

	return Result{
		Conflict:             len(conflicting) > 0,
		ConflictingIntervals: conflicting,
	}
}
