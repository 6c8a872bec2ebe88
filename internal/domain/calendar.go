package domain

import (
	"fmt"
	"sort"
)

// DateAggregate количество свободных и занятых слотов на одну дату
type DateAggregate struct {
	Date           string
	AvailableCount int
	BookedCount    int
}

// Total возвращает общее количество слотов на дату
func (a *DateAggregate) Total() int {
	return a.AvailableCount + a.BookedCount
}

// Label подпись события в календаре, например "1 Available / 1 Booked"
func (a *DateAggregate) Label() string {
	return fmt.Sprintf("%d Available / %d Booked", a.AvailableCount, a.BookedCount)
}

// HasAvailable returns true if at least one slot on the date is free
func (a *DateAggregate) HasAvailable() bool {
	return a.AvailableCount > 0
}

// EntryStyle оформление события календаря (косметика, контрактом не фиксируется)
type EntryStyle struct {
	BackgroundColor string
	BorderColor     string
	TextColor       string
}

// CalendarEntry событие календаря, сводка слотов за дату
type CalendarEntry struct {
	Date           string
	Label          string
	Style          EntryStyle
	AvailableCount int
	BookedCount    int
}

// AggregateByDate группирует слоты по дате start_time и считает свободные и занятые
// Каждый слот учитывается ровно один раз. Результат отсортирован по дате
func AggregateByDate(slots []Slot) []DateAggregate {
	byDate := make(map[string]*DateAggregate)
	for i := range slots {
		date := slots[i].Date()

		agg, ok := byDate[date]
		if !ok {
			agg = &DateAggregate{Date: date}
			byDate[date] = agg
		}

		if slots[i].IsBooked {
			agg.BookedCount++
		} else {
			agg.AvailableCount++
		}
	}

	result := make([]DateAggregate, 0, len(byDate))
	for _, agg := range byDate {
		result = append(result, *agg)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Date < result[j].Date
	})

	return result
}
