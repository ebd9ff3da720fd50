package http

import (
	"github.com/gin-gonic/gin"

	"calendar-feed/internal/calendar"
	"calendar-feed/pkg/response"
)

// Dispatch godoc
// @Summary     Query calendar events or list calendars
// @Description Runs the events pipeline over one or more calendars, or lists calendars when action=calendars.
// @Description Failures are reported as {"error": "..."} with status 200.
// @Tags        Calendar
// @Produce     json
// @Param       action     query string false "events (default) or calendars"
// @Param       calendarId query string false "Comma separated calendar ids (default: primary)"
// @Param       days       query int    false "Window length in days (default: 7)"
// @Param       startDate  query string false "YYYY-MM-DD or relative keyword (default: today)"
// @Param       q          query string false "Free text filter"
// @Success     200 {object} eventsResp
// @Success     200 {object} calendarsResp "action=calendars"
// @Failure     429 {object} response.ErrorResp "Too Many Requests"
// @Router      /api/v1/calendar [GET]
// @Router      /exec [GET]
func (h *handler) Dispatch(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processDispatchReq(c)
	if err != nil {
		h.l.Warnf(ctx, "calendar.http.Dispatch: %v", err)
		response.Error(c, err)
		return
	}

	if req.action() == calendar.ActionCalendars {
		output, err := h.uc.ListCalendars(ctx)
		if err != nil {
			h.l.Errorf(ctx, "uc.ListCalendars: %v", err)
			response.Error(c, h.mapError(err))
			return
		}
		response.JSON(c, h.newCalendarsResp(output))
		return
	}

	output, err := h.uc.ListEvents(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ListEvents: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.JSON(c, h.newEventsResp(output))
}

// Day godoc
// @Summary     Events of a single day
// @Description Returns the events of one calendar that start on the given local day.
// @Tags        Calendar
// @Produce     json
// @Param       calendarId query string false "Calendar id (default: primary)"
// @Param       date       query string false "YYYY-MM-DD or relative keyword such as tomorrow (default: today)"
// @Success     200 {object} dayResp
// @Failure     429 {object} response.ErrorResp "Too Many Requests"
// @Router      /api/v1/calendar/day [GET]
func (h *handler) Day(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processDayReq(c)
	if err != nil {
		h.l.Warnf(ctx, "calendar.http.Day: %v", err)
		response.Error(c, err)
		return
	}

	output, err := h.uc.DayEvents(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.DayEvents: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.JSON(c, h.newDayResp(output))
}
