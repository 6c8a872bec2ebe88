package select_date

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("select_date: invalid input data")

	// ErrBackendUnavailable возвращается, когда запрос к бэкенду не удался
	ErrBackendUnavailable = errors.New("select_date: slot backend unavailable")
)
