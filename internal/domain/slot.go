package domain

import (
	"encoding/json"
	"strings"
)

// Slot временной слот профессора, как его отдаёт бэкенд слотов
// Помимо известных полей хранит исходный JSON-объект, чтобы при запуске бронирования
// переслать бэкенду ровно то, что он вернул
type Slot struct {
	ID          *int64
	StartTime   string // "2025-02-23T09:00:00"
	EndTime     string
	ProfessorID *int64
	IsBooked    bool

	Raw json.RawMessage
}

// Date возвращает дату слота - часть start_time до разделителя "T"
func (s *Slot) Date() string {
	date, _, _ := strings.Cut(s.StartTime, "T")
	return date
}

// FallsOn проверяет, что start_time слота начинается со строки даты
func (s *Slot) FallsOn(date string) bool {
	return strings.HasPrefix(s.StartTime, date)
}

// MarshalJSON отдаёт исходный объект, если он есть
func (s Slot) MarshalJSON() ([]byte, error) {
	if len(s.Raw) > 0 {
		return s.Raw, nil
	}

	return json.Marshal(slotFields{
		ID:          s.ID,
		StartTime:   s.StartTime,
		EndTime:     s.EndTime,
		ProfessorID: s.ProfessorID,
		IsBooked:    s.IsBooked,
	})
}

// UnmarshalJSON разбирает известные поля и запоминает исходный объект
func (s *Slot) UnmarshalJSON(data []byte) error {
	var fields slotFields
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	s.ID = fields.ID
	s.StartTime = fields.StartTime
	s.EndTime = fields.EndTime
	s.ProfessorID = fields.ProfessorID
	s.IsBooked = fields.IsBooked
	s.Raw = append(json.RawMessage(nil), data...)

	return nil
}

type slotFields struct {
	ID          *int64 `json:"id,omitempty"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time,omitempty"`
	ProfessorID *int64 `json:"professor_id,omitempty"`
	IsBooked    bool   `json:"is_booked"`
}

// FilterByDate оставляет слоты, у которых start_time начинается с даты
// Порядок слотов сохраняется
func FilterByDate(slots []Slot, date string) []Slot {
	result := make([]Slot, 0)
	for _, slot := range slots {
		if slot.FallsOn(date) {
			result = append(result, slot)
		}
	}
	return result
}
