package get_calendar_config

// Settings настройки виджета, которые отдаёт gateway
type Settings struct {
	InitialView   string
	Height        string
	ToolbarLeft   string
	ToolbarCenter string
	ToolbarRight  string
	EventsURL     string
	DateClickURL  string
}

// CalendarConfigResponse HTTP response model
type CalendarConfigResponse struct {
	InitialView   string        `json:"initialView"`
	Height        string        `json:"height"`
	HeaderToolbar HeaderToolbar `json:"headerToolbar"`
	EventsURL     string        `json:"eventsUrl"`
	DateClickURL  string        `json:"dateClickUrl"`
}

type HeaderToolbar struct {
	Left   string `json:"left"`
	Center string `json:"center"`
	Right  string `json:"right"`
}

func fromSettings(s Settings) *CalendarConfigResponse {
	return &CalendarConfigResponse{
		InitialView: s.InitialView,
		Height:      s.Height,
		HeaderToolbar: HeaderToolbar{
			Left:   s.ToolbarLeft,
			Center: s.ToolbarCenter,
			Right:  s.ToolbarRight,
		},
		EventsURL:    s.EventsURL,
		DateClickURL: s.DateClickURL,
	}
}
