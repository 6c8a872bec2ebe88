package get_calendar_feed

import "github.com/m04kA/SMC-CalendarGateway/internal/domain"

// Request модель запроса на получение ленты календаря
type Request struct {
	Session domain.Session
	// Видимый диапазон календаря, только для логов: лента строится по всем слотам
	RangeStart string
	RangeEnd   string
}

// Response модель ответа с событиями календаря
type Response struct {
	Entries    []domain.CalendarEntry // По одному событию на дату
	SlotsCount int                    // Сколько слотов вернул бэкенд
}

// Palette оформление событий: Available - есть свободные слоты, Booked - все заняты
type Palette struct {
	Available domain.EntryStyle
	Booked    domain.EntryStyle
}

// DefaultPalette палитра по умолчанию
func DefaultPalette() Palette {
	return Palette{
		Available: domain.EntryStyle{
			BackgroundColor: domain.DefaultAvailableColor,
			BorderColor:     domain.DefaultAvailableColor,
			TextColor:       domain.DefaultTextColor,
		},
		Booked: domain.EntryStyle{
			BackgroundColor: domain.DefaultBookedColor,
			BorderColor:     domain.DefaultBookedColor,
			TextColor:       domain.DefaultTextColor,
		},
	}
}
