package domain

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MaxReasonLength = 500
	// MaxBookingHours ограничивает длительность одного бронирования
	MaxBookingHours = 24
)

// ActiveStatuses список статусов, занимающих таймлайн поля.
// Используется при выборке пересечений.
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}

// MoneyScale число знаков после запятой в итоговых ценах
const MoneyScale = 2
