package usecase

import (
	"calendar-feed/internal/calendar"
	"calendar-feed/pkg/gcalendar"
)

// toEvent maps a provider event. A start carrying a date (not a dateTime) marks an all-day event.
func (uc *implUseCase) toEvent(item gcalendar.Event, calendarID, calendarName string) calendar.Event {
	startTime, endTime, allDay := item.Start.DateTime, item.End.DateTime, false
	if item.Start.Date != "" {
		startTime, endTime, allDay = item.Start.Date, item.End.Date, true
	}

	attendees := make([]string, 0, len(item.Attendees))
	attendees = append(attendees, item.Attendees...)

	return calendar.Event{
		ID:           item.ID,
		Title:        coalesce(item.Summary, uc.defaults.UntitledLabel),
		Description:  item.Description,
		Location:     item.Location,
		StartTime:    startTime,
		EndTime:      endTime,
		AllDay:       allDay,
		Creator:      item.CreatorEmail,
		Attendees:    attendees,
		Status:       coalesce(item.Status, calendar.StatusConfirmed),
		HtmlLink:     item.HtmlLink,
		CalendarID:   calendarID,
		CalendarName: calendarName,
		ColorID:      item.ColorID,
	}
}

func toCalendar(item gcalendar.Calendar) calendar.Calendar {
	return calendar.Calendar{
		ID:              item.ID,
		Name:            item.Summary,
		Description:     item.Description,
		Primary:         item.Primary,
		AccessRole:      item.AccessRole,
		BackgroundColor: item.BackgroundColor,
		ForegroundColor: item.ForegroundColor,
	}
}
