package get_calendar_feed

import (
	"github.com/m04kA/SMC-CalendarGateway/internal/domain"
	getCalendarFeed "github.com/m04kA/SMC-CalendarGateway/internal/usecase/get_calendar_feed"
)

// EventResponse событие в формате источника событий виджета календаря
type EventResponse struct {
	Title           string        `json:"title"`
	Start           string        `json:"start"`
	AllDay          bool          `json:"allDay"`
	BackgroundColor string        `json:"backgroundColor,omitempty"`
	BorderColor     string        `json:"borderColor,omitempty"`
	TextColor       string        `json:"textColor,omitempty"`
	ExtendedProps   ExtendedProps `json:"extendedProps"`
}

// ExtendedProps счётчики слотов за дату
type ExtendedProps struct {
	Available int `json:"available"`
	Booked    int `json:"booked"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getCalendarFeed.Response) []EventResponse {
	events := make([]EventResponse, len(resp.Entries))
	for i, entry := range resp.Entries {
		events[i] = fromEntry(entry)
	}
	return events
}

func fromEntry(entry domain.CalendarEntry) EventResponse {
	return EventResponse{
		Title:           entry.Label,
		Start:           entry.Date,
		AllDay:          true,
		BackgroundColor: entry.Style.BackgroundColor,
		BorderColor:     entry.Style.BorderColor,
		TextColor:       entry.Style.TextColor,
		ExtendedProps: ExtendedProps{
			Available: entry.AvailableCount,
			Booked:    entry.BookedCount,
		},
	}
}
