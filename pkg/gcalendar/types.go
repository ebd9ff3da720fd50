package gcalendar

import "time"

// ListEventsRequest is the input for listing Google Calendar events.
// Recurring events are always expanded into single instances ordered by start time.
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	Query      string // free text filter, passed through as q
	MaxResults int64
}

// EventTime carries either a Date (all-day) or a DateTime (timed) value, never both.
type EventTime struct {
	Date     string // YYYY-MM-DD
	DateTime string // RFC 3339
}

// Event is a simplified representation of a Google Calendar event.
// Fields the provider omitted are left at their zero value.
type Event struct {
	ID           string
	Summary      string
	Description  string
	Location     string
	Start        EventTime
	End          EventTime
	CreatorEmail string
	Attendees    []string
	Status       string
	HtmlLink     string
	ColorID      string
}

// Calendar is a simplified calendar list entry.
type Calendar struct {
	ID              string
	Summary         string
	Description     string
	Primary         bool
	AccessRole      string
	BackgroundColor string
	ForegroundColor string
}
