package slotservice

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента (сборка запроса, транспорт, таймаут)
	ErrInternal = errors.New("slotservice client: internal error")

	// ErrUnauthorized возвращается, когда бэкенд отклонил токен (401/403)
	ErrUnauthorized = errors.New("slotservice client: unauthorized")

	// ErrInvalidResponse возвращается при некорректном ответе от бэкенда
	ErrInvalidResponse = errors.New("slotservice client: invalid response")
)
