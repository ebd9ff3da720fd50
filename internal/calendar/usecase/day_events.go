package usecase

import (
	"context"

	"calendar-feed/internal/calendar"
	"calendar-feed/pkg/datemath"
)

// DayEvents queries one local day and keeps only events whose start falls on that day.
// The second filter drops boundary events the instant-based query window lets through.
func (uc *implUseCase) DayEvents(ctx context.Context, input calendar.DayEventsInput) (calendar.DayEventsOutput, error) {
	if uc.provider == nil {
		return calendar.DayEventsOutput{}, calendar.ErrProviderUnavailable
	}

	output := calendar.DayEventsOutput{
		Events:     []calendar.Event{},
		CalendarID: coalesce(input.CalendarID, uc.defaults.CalendarID),
	}

	day, err := uc.dateMath.Normalize(input.Date, uc.now())
	if err != nil {
		uc.l.Warnf(ctx, "calendar.usecase.DayEvents: %v", err)
		return output, nil
	}

	window := uc.dateMath.DayWindow(day)
	output.TargetDate = window.Start

	for _, ev := range uc.fetch(ctx, output.CalendarID, window, "") {
		if uc.startsOn(ev, window.Start) {
			output.Events = append(output.Events, ev)
		}
	}

	uc.l.Debugf(ctx, "calendar.usecase.DayEvents: calendar=%s day=%s events=%d",
		output.CalendarID, window.Start.Format(datemath.DateFormat), len(output.Events))
	uc.metrics.ObserveEvents(calendar.ActionDay, len(output.Events))
	return output, nil
}
