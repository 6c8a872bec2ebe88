package get_available_slots

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInvalidDate возвращается, когда дата не в формате YYYY-MM-DD
	ErrInvalidDate = errors.New("get_available_slots: invalid date")

	// ErrUnauthorized возвращается, когда бэкенд отклонил токен сессии
	ErrUnauthorized = errors.New("get_available_slots: unauthorized")

	// ErrBackendUnavailable возвращается, когда слоты получить не удалось
	ErrBackendUnavailable = errors.New("get_available_slots: slot backend unavailable")
)
