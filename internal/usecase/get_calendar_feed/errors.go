package get_calendar_feed

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_calendar_feed: invalid input data")

	// ErrUnauthorized возвращается, когда бэкенд не принял токен сессии
	ErrUnauthorized = errors.New("get_calendar_feed: unauthorized")

	// ErrBackendUnavailable возвращается при сетевой ошибке или некорректном ответе бэкенда
	ErrBackendUnavailable = errors.New("get_calendar_feed: slot backend unavailable")
)
