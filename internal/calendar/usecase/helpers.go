package usecase

import (
	"slices"
	"time"

	"calendar-feed/internal/calendar"
)

// coalesce returns val unless it is empty.
func coalesce(val, fallback string) string {
	if val != "" {
		return val
	}
	return fallback
}

// clampDays applies the default for non-positive values and caps at MaxDays.
func (uc *implUseCase) clampDays(days int) int {
	if days < 1 {
		days = uc.defaults.Days
	}
	if uc.defaults.MaxDays > 0 && days > uc.defaults.MaxDays {
		days = uc.defaults.MaxDays
	}
	return days
}

// sortByStart orders events by start instant. The sort is stable so events
// sharing a start keep their fetch order; unparseable starts go last.
func (uc *implUseCase) sortByStart(events []calendar.Event) {
	type keyed struct {
		ev calendar.Event
		at time.Time
		ok bool
	}

	ks := make([]keyed, len(events))
	for i, ev := range events {
		at, err := uc.dateMath.ParseEventTime(ev.StartTime)
		ks[i] = keyed{ev: ev, at: at.Truncate(time.Millisecond), ok: err == nil}
	}

	slices.SortStableFunc(ks, func(a, b keyed) int {
		switch {
		case a.ok && b.ok:
			return a.at.Compare(b.at)
		case a.ok:
			return -1
		case b.ok:
			return 1
		default:
			return 0
		}
	})

	for i := range ks {
		events[i] = ks[i].ev
	}
}

// startsOn reports whether ev starts on the local calendar day of day.
func (uc *implUseCase) startsOn(ev calendar.Event, day time.Time) bool {
	at, err := uc.dateMath.ParseEventTime(ev.StartTime)
	if err != nil {
		return false
	}
	return uc.dateMath.SameDay(at, day)
}
