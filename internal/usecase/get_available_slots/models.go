package get_available_slots

import "github.com/m04kA/SMC-CalendarGateway/internal/domain"

// Request модель запроса на получение слотов за дату
type Request struct {
	Session       domain.Session
	Date          string // YYYY-MM-DD
	OnlyAvailable bool   // true - только свободные слоты
}

// Response модель ответа со слотами за дату
type Response struct {
	Date           string
	Slots          []domain.Slot // в порядке бэкенда
	AvailableCount int           // по всем слотам даты, независимо от OnlyAvailable
	BookedCount    int
}
