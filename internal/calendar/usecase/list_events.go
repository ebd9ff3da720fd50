package usecase

import (
	"context"

	"calendar-feed/internal/calendar"
	"calendar-feed/pkg/datemath"
)

// ListEvents fetches every requested calendar in order, merges and sorts the result.
// An unparseable start date yields an empty result, not an error.
func (uc *implUseCase) ListEvents(ctx context.Context, input calendar.ListEventsInput) (calendar.ListEventsOutput, error) {
	if uc.provider == nil {
		return calendar.ListEventsOutput{}, calendar.ErrProviderUnavailable
	}

	ids := input.CalendarIDs
	if len(ids) == 0 {
		ids = []string{uc.defaults.CalendarID}
	}

	output := calendar.ListEventsOutput{
		Events:      []calendar.Event{},
		Query:       input.Query,
		CalendarIDs: ids,
	}

	start, err := uc.dateMath.Normalize(input.StartDate, uc.now())
	if err != nil {
		uc.l.Warnf(ctx, "calendar.usecase.ListEvents: %v", err)
		uc.metrics.ObserveEvents(calendar.ActionEvents, 0)
		return output, nil
	}

	window := datemath.Window{
		Start: start,
		End:   uc.dateMath.AddDays(start, uc.clampDays(input.Days)),
	}
	output.PeriodStart, output.PeriodEnd = window.Start, window.End

	for _, id := range ids {
		output.Events = append(output.Events, uc.fetch(ctx, id, window, input.Query)...)
	}
	uc.sortByStart(output.Events)

	uc.l.Debugf(ctx, "calendar.usecase.ListEvents: calendars=%d events=%d window=[%s, %s)",
		len(ids), len(output.Events), window.Start.Format(datemath.DateFormat), window.End.Format(datemath.DateFormat))
	uc.metrics.ObserveEvents(calendar.ActionEvents, len(output.Events))
	return output, nil
}
