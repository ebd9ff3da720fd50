package calendar

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// ListEvents fans out over every requested calendar and returns the merged, start-ordered events.
	ListEvents(ctx context.Context, input ListEventsInput) (ListEventsOutput, error)

	// ListCalendars enumerates the calendars visible to the configured account.
	ListCalendars(ctx context.Context) (ListCalendarsOutput, error)

	// DayEvents returns the events starting on a single local day of one calendar.
	DayEvents(ctx context.Context, input DayEventsInput) (DayEventsOutput, error)
}
