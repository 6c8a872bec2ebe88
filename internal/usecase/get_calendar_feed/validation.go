package get_calendar_feed

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is required", ErrInvalidInput)
	}

	if !req.Session.IsAuthenticated() {
		return fmt.Errorf("%w: session token is required", ErrInvalidInput)
	}

	return nil
}
