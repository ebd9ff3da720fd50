package http

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"calendar-feed/internal/calendar"
)

// --- Request DTOs ---

type dispatchReq struct {
	Action     string `form:"action"`
	CalendarID string `form:"calendarId"`
	Days       string `form:"days"`
	StartDate  string `form:"startDate"`
	Query      string `form:"q"`
}

// action resolves the requested action. Anything other than calendars runs the events pipeline.
func (r dispatchReq) action() string {
	if strings.TrimSpace(r.Action) == calendar.ActionCalendars {
		return calendar.ActionCalendars
	}
	return calendar.ActionEvents
}

func (r dispatchReq) toInput() calendar.ListEventsInput {
	return calendar.ListEventsInput{
		CalendarIDs: splitCalendarIDs(r.CalendarID),
		Days:        parseDays(r.Days),
		StartDate:   strings.TrimSpace(r.StartDate),
		Query:       r.Query,
	}
}

// ---

type dayReq struct {
	CalendarID string `form:"calendarId"`
	Date       string `form:"date"`
}

func (r dayReq) toInput() calendar.DayEventsInput {
	return calendar.DayEventsInput{
		CalendarID: strings.TrimSpace(r.CalendarID),
		Date:       strings.TrimSpace(r.Date),
	}
}

// splitCalendarIDs splits a comma list, trimming each entry. Order and
// duplicates are kept; empty entries are dropped.
func splitCalendarIDs(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	ids := make([]string, 0, strings.Count(raw, ",")+1)
	for _, part := range strings.Split(raw, ",") {
		if id := strings.TrimSpace(part); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// parseDays returns 0 for anything that is not an integer; the use case
// replaces non-positive values with the configured default.
func parseDays(raw string) int {
	days, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return days
}

// processDispatchReq binds the dispatcher query parameters.
func (h *handler) processDispatchReq(c *gin.Context) (dispatchReq, error) {
	var req dispatchReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processDayReq binds the single-day lookup query parameters.
func (h *handler) processDayReq(c *gin.Context) (dayReq, error) {
	var req dayReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}
