package http

import (
	"calendar-feed/internal/calendar"
	"calendar-feed/pkg/response"
)

// --- Response DTOs ---

type eventsResp struct {
	Events      []calendar.Event `json:"events"`
	Count       int              `json:"count"`
	Query       string           `json:"query"`
	PeriodStart response.ISOTime `json:"periodStart" swaggertype:"string" example:"2024-05-31T15:00:00.000Z"`
	PeriodEnd   response.ISOTime `json:"periodEnd" swaggertype:"string" example:"2024-06-07T15:00:00.000Z"`
	Calendars   []string         `json:"calendars"`
}

func (h *handler) newEventsResp(out calendar.ListEventsOutput) eventsResp {
	query := out.Query
	if query == "" {
		query = h.defaults.NoQueryLabel
	}

	events := out.Events
	if events == nil {
		events = []calendar.Event{}
	}
	ids := out.CalendarIDs
	if ids == nil {
		ids = []string{}
	}

	return eventsResp{
		Events:      events,
		Count:       len(events),
		Query:       query,
		PeriodStart: response.ISOTime(out.PeriodStart),
		PeriodEnd:   response.ISOTime(out.PeriodEnd),
		Calendars:   ids,
	}
}

type calendarsResp struct {
	Calendars []calendar.Calendar `json:"calendars"`
	Count     int                 `json:"count"`
}

func (h *handler) newCalendarsResp(out calendar.ListCalendarsOutput) calendarsResp {
	cals := out.Calendars
	if cals == nil {
		cals = []calendar.Calendar{}
	}
	return calendarsResp{
		Calendars: cals,
		Count:     len(cals),
	}
}

type dayResp struct {
	Events     []calendar.Event `json:"events"`
	Count      int              `json:"count"`
	TargetDate response.Date    `json:"targetDate" swaggertype:"string" example:"2024-06-01"`
	CalendarID string           `json:"calendarId"`
}

func (h *handler) newDayResp(out calendar.DayEventsOutput) dayResp {
	events := out.Events
	if events == nil {
		events = []calendar.Event{}
	}
	return dayResp{
		Events:     events,
		Count:      len(events),
		TargetDate: response.Date(out.TargetDate),
		CalendarID: out.CalendarID,
	}
}
