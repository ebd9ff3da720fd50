package usecase

import (
	"context"

	"calendar-feed/internal/calendar"
	"calendar-feed/pkg/metrics"
)

// ListCalendars maps the account's calendar list. Provider failures yield an empty list.
func (uc *implUseCase) ListCalendars(ctx context.Context) (calendar.ListCalendarsOutput, error) {
	if uc.provider == nil {
		return calendar.ListCalendarsOutput{}, calendar.ErrProviderUnavailable
	}

	output := calendar.ListCalendarsOutput{Calendars: []calendar.Calendar{}}

	items, err := uc.provider.ListCalendars(ctx)
	uc.metrics.ObserveProviderCall(metrics.OpListCalendars, err)
	if err != nil {
		uc.l.Errorf(ctx, "calendar.usecase.ListCalendars: %v", err)
		uc.metrics.ObserveEvents(calendar.ActionCalendars, 0)
		return output, nil
	}

	for _, item := range items {
		output.Calendars = append(output.Calendars, toCalendar(item))
	}
	uc.metrics.ObserveEvents(calendar.ActionCalendars, len(output.Calendars))
	return output, nil
}
