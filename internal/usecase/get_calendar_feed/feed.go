package get_calendar_feed

import "github.com/m04kA/SMC-CalendarGateway/internal/domain"

// buildEntries превращает агрегаты по датам в события календаря
func buildEntries(aggregates []domain.DateAggregate, palette Palette) []domain.CalendarEntry {
	entries := make([]domain.CalendarEntry, len(aggregates))

	for i := range aggregates {
		agg := &aggregates[i]

		style := palette.Booked
		if agg.HasAvailable() {
			style = palette.Available
		}

		entries[i] = domain.CalendarEntry{
			Date:           agg.Date,
			Label:          agg.Label(),
			Style:          style,
			AvailableCount: agg.AvailableCount,
			BookedCount:    agg.BookedCount,
		}
	}

	return entries
}
