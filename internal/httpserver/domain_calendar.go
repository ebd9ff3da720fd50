package httpserver

import (
	"context"

	calendarHTTP "calendar-feed/internal/calendar/delivery/http"
)

// setupCalendarDomain builds the calendar HTTP handler and registers
// /exec, /api/v1/calendar and /api/v1/calendar/day.
func (srv HTTPServer) setupCalendarDomain(ctx context.Context) error {
	h := calendarHTTP.New(srv.l, srv.calendarUC, srv.calendarDefaults)
	calendarHTTP.RegisterRoutes(srv.gin, h, srv.middleware)

	srv.l.Infof(ctx, "Calendar domain registered")
	return nil
}
