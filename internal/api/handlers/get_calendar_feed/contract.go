package get_calendar_feed

import (
	"context"

	getCalendarFeed "github.com/m04kA/SMC-CalendarGateway/internal/usecase/get_calendar_feed"
)

type GetCalendarFeedUseCase interface {
	Execute(ctx context.Context, req *getCalendarFeed.Request) (*getCalendarFeed.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
