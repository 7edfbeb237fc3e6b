package add_schedule_block

import "time"

// Request модель запроса на создание блокировки расписания
type Request struct {
	FieldID int64     // ID поля
	Start   time.Time // Начало окна недоступности (включительно)
	End     time.Time // Конец окна недоступности (не включительно)
	Reason  string    // Причина (свободный текст, например "maintenance")
}

// Response модель ответа с созданной блокировкой
type Response struct {
	ID        int64
	FieldID   int64
	Start     time.Time
	End       time.Time
	Reason    string
	CreatedAt time.Time
}
