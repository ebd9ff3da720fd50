package calendar

import "time"

// Event is the flattened, default-filled event record returned to callers.
// Every field is always present; upstream absence is replaced with a default.
type Event struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Location     string   `json:"location"`
	StartTime    string   `json:"startTime"`
	EndTime      string   `json:"endTime"`
	AllDay       bool     `json:"allDay"`
	Creator      string   `json:"creator"`
	Attendees    []string `json:"attendees"`
	Status       string   `json:"status"`
	HtmlLink     string   `json:"htmlLink"`
	CalendarID   string   `json:"calendarId"`
	CalendarName string   `json:"calendarName"`
	ColorID      string   `json:"colorId"`
}

// Calendar is the normalized calendar list entry.
type Calendar struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	Primary         bool   `json:"primary"`
	AccessRole      string `json:"accessRole"`
	BackgroundColor string `json:"backgroundColor"`
	ForegroundColor string `json:"foregroundColor"`
}

// Defaults holds the request defaults and labels used by the dispatcher and use case.
type Defaults struct {
	Action        string // "events" or "calendars"
	CalendarID    string // id queried when calendarId is absent
	PrimaryID     string // id answered with PrimaryLabel without a provider call
	Days          int
	MaxDays       int
	MaxResults    int64
	PrimaryLabel  string
	UntitledLabel string
	NoQueryLabel  string
}

// DefaultDefaults returns the documented defaults.
func DefaultDefaults() Defaults {
	return Defaults{
		Action:        ActionEvents,
		CalendarID:    PrimaryCalendarID,
		PrimaryID:     PrimaryCalendarID,
		Days:          7,
		MaxDays:       366,
		MaxResults:    2500,
		PrimaryLabel:  "Primary calendar",
		UntitledLabel: "(no title)",
		NoQueryLabel:  "none",
	}
}

const (
	ActionEvents    = "events"
	ActionCalendars = "calendars"
	ActionDay       = "day"

	PrimaryCalendarID = "primary"

	StatusConfirmed = "confirmed"
)

// --- UseCase Inputs ---

// ListEventsInput drives the multi-calendar events pipeline.
type ListEventsInput struct {
	CalendarIDs []string
	Days        int
	StartDate   string // YYYY-MM-DD or relative keyword; empty means today
	Query       string
}

// DayEventsInput drives the single-day lookup.
type DayEventsInput struct {
	CalendarID string
	Date       string // YYYY-MM-DD or relative keyword; empty means today
}

// --- UseCase Outputs ---

type ListEventsOutput struct {
	Events      []Event
	Query       string
	PeriodStart time.Time // zero when the start date was invalid
	PeriodEnd   time.Time
	CalendarIDs []string
}

type ListCalendarsOutput struct {
	Calendars []Calendar
}

type DayEventsOutput struct {
	Events     []Event
	TargetDate time.Time // zero when the date was invalid
	CalendarID string
}
