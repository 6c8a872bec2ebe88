package get_available_slots

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-CalendarGateway/internal/domain"
)

// validateRequest проверяет запрос на получение слотов
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}

	if !req.Session.IsAuthenticated() {
		return fmt.Errorf("%w: session token is required", ErrInvalidInput)
	}

	if _, err := time.Parse(domain.DateFormat, req.Date); err != nil {
		return fmt.Errorf("%w: %q: %v", ErrInvalidDate, req.Date, err)
	}

	return nil
}
