package slotservice

import "github.com/m04kA/SMC-CalendarGateway/internal/domain"

// Пути бэкенда слотов
const (
	pathGetSlots               = "/api/auth/get_slots"
	pathOpenCreateSlotModal    = "/open_create_slot_modal"
	pathOpenCreateMeetingModal = "/open_create_meeting_model"
)

// Метки эндпоинтов для метрик
const (
	EndpointGetSlots           = "get_slots"
	EndpointCreateSlotModal    = "open_create_slot_modal"
	EndpointCreateMeetingModal = "open_create_meeting_model"
)

// CreateSlotModalRequest тело запроса на открытие модалки создания слота
type CreateSlotModalRequest struct {
	Date string `json:"date"`
}

// CreateMeetingModalRequest тело запроса на открытие модалки бронирования
type CreateMeetingModalRequest struct {
	Slots []domain.Slot `json:"slots"`
}
