package select_date

import "fmt"

// validateRequest валидирует входные данные запроса
// Дата только должна присутствовать, формат не проверяется: бэкенд получает её как есть
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is required", ErrInvalidInput)
	}

	if req.Date == "" {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if !req.Session.IsAuthenticated() {
		return fmt.Errorf("%w: session token is required", ErrInvalidInput)
	}

	return nil
}
