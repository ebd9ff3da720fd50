package usecase

import (
	"context"

	"calendar-feed/pkg/gcalendar"
)

// Provider abstracts the Google Calendar API for mocking.
type Provider interface {
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
	ListCalendars(ctx context.Context) ([]gcalendar.Calendar, error)
	GetCalendar(ctx context.Context, calendarID string) (gcalendar.Calendar, error)
}

var _ Provider = (*gcalendar.Client)(nil)
