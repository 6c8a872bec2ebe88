package get_available_slots

import (
	"strconv"

	"github.com/m04kA/SMC-CalendarGateway/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-CalendarGateway/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
// Slots отдаются в том виде, в котором их вернул бэкенд
type AvailableSlotsResponse struct {
	Date      string        `json:"date"`
	Available int           `json:"available"`
	Booked    int           `json:"booked"`
	Slots     []domain.Slot `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := resp.Slots
	if slots == nil {
		slots = []domain.Slot{}
	}

	return &AvailableSlotsResponse{
		Date:      resp.Date,
		Available: resp.AvailableCount,
		Booked:    resp.BookedCount,
		Slots:     slots,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
// available - необязательный флаг, по умолчанию false
func ToUseCaseRequest(sess domain.Session, date, available string) (*getAvailableSlots.Request, error) {
	onlyAvailable := false
	if available != "" {
		v, err := strconv.ParseBool(available)
		if err != nil {
			return nil, err
		}
		onlyAvailable = v
	}

	return &getAvailableSlots.Request{
		Session:       sess,
		Date:          date,
		OnlyAvailable: onlyAvailable,
	}, nil
}
