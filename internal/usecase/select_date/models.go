package select_date

import "github.com/m04kA/SMC-CalendarGateway/internal/domain"

// Outcome результат обработки клика по дате
type Outcome string

const (
	// OutcomeSlotCreationRequested бэкенд попросили начать создание слота
	OutcomeSlotCreationRequested Outcome = "slot_creation_requested"
	// OutcomeBookingRequested бэкенд попросили начать бронирование
	OutcomeBookingRequested Outcome = "booking_requested"
	// OutcomeNoAvailableSlots на дату нет слотов, пользователю показывается уведомление
	OutcomeNoAvailableSlots Outcome = "no_available_slots"
	// OutcomeNone ничего не произошло: роль не распознана или бэкенд недоступен
	OutcomeNone Outcome = "none"
)

// Request модель запроса на обработку клика по дате
type Request struct {
	Session domain.Session
	Date    string // Строка даты из календаря, как есть
}

// Response модель ответа
type Response struct {
	Outcome    Outcome
	Message    string // Текст уведомления для пользователя (только для OutcomeNoAvailableSlots)
	SlotsCount int    // Сколько слотов ушло в запрос бронирования
	Shared     bool   // Результат получен от параллельного клика (single-flight)
}
