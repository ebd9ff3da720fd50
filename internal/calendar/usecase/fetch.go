package usecase

import (
	"context"

	"calendar-feed/internal/calendar"
	"calendar-feed/pkg/datemath"
	"calendar-feed/pkg/gcalendar"
	"calendar-feed/pkg/metrics"
)

// fetch queries one calendar over window and maps the result.
// Provider failures are logged and yield an empty list so one bad calendar
// never fails a multi-calendar request.
func (uc *implUseCase) fetch(ctx context.Context, calendarID string, window datemath.Window, query string) []calendar.Event {
	items, err := uc.provider.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: calendarID,
		TimeMin:    window.Start,
		TimeMax:    window.End,
		Query:      query,
		MaxResults: uc.defaults.MaxResults,
	})
	uc.metrics.ObserveProviderCall(metrics.OpListEvents, err)
	if err != nil {
		uc.l.Errorf(ctx, "calendar.usecase.fetch: calendar=%s status=%d: %v", calendarID, gcalendar.StatusCode(err), err)
		return []calendar.Event{}
	}

	name := uc.resolveName(ctx, calendarID)

	events := make([]calendar.Event, 0, len(items))
	for _, item := range items {
		events = append(events, uc.toEvent(item, calendarID, name))
	}
	return events
}

// resolveName returns the display name of a calendar, falling back to the id itself.
func (uc *implUseCase) resolveName(ctx context.Context, calendarID string) string {
	if calendarID == uc.defaults.PrimaryID {
		return uc.defaults.PrimaryLabel
	}

	cal, err := uc.provider.GetCalendar(ctx, calendarID)
	uc.metrics.ObserveProviderCall(metrics.OpGetCalendar, err)
	if err != nil {
		uc.l.Warnf(ctx, "calendar.usecase.resolveName: calendar=%s: %v", calendarID, err)
		return calendarID
	}
	return coalesce(cal.Summary, calendarID)
}
