package select_date

import (
	"github.com/m04kA/SMC-CalendarGateway/internal/domain"
	selectDate "github.com/m04kA/SMC-CalendarGateway/internal/usecase/select_date"
)

// DateClickRequest HTTP request model, date - строка даты из dateClick виджета
type DateClickRequest struct {
	Date string `json:"date" validate:"required"`
}

// DateClickResponse HTTP response model
type DateClickResponse struct {
	Outcome string `json:"outcome"`
	Message string `json:"message,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *DateClickRequest) ToUseCaseRequest(sess domain.Session) *selectDate.Request {
	return &selectDate.Request{
		Session: sess,
		Date:    r.Date,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *selectDate.Response) *DateClickResponse {
	return &DateClickResponse{
		Outcome: string(resp.Outcome),
		Message: resp.Message,
	}
}

// noneResponse ответ, когда клик ни к чему не привёл
func noneResponse() *DateClickResponse {
	return &DateClickResponse{Outcome: string(selectDate.OutcomeNone)}
}
