package domain

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// User-facing messages
const (
	NoAvailableSlotsMessage = "No available slots on this date."
)

// Calendar defaults
const (
	DefaultInitialView    = "dayGridMonth"
	DefaultHeight         = "100%"
	DefaultToolbarLeft    = "prev,next today"
	DefaultToolbarCenter  = "title"
	DefaultToolbarRight   = "dayGridMonth,timeGridWeek,timeGridDay"
	DefaultAvailableColor = "green"
	DefaultBookedColor    = "#dc3545"
	DefaultTextColor      = "white"
)
