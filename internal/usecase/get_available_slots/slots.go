package get_available_slots

import "github.com/m04kA/SMC-CalendarGateway/internal/domain"

// countByState считает свободные и занятые слоты
func countByState(slots []domain.Slot) (available, booked int) {
	for _, slot := range slots {
		if slot.IsBooked {
			booked++
		} else {
			available++
		}
	}
	return available, booked
}

// availableOnly возвращает свободные слоты, сохраняя порядок
func availableOnly(slots []domain.Slot) []domain.Slot {
	result := make([]domain.Slot, 0, len(slots))
	for _, slot := range slots {
		if !slot.IsBooked {
			result = append(result, slot)
		}
	}
	return result
}
