package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"calendar-feed/internal/middleware"
	"calendar-feed/pkg/response"
)

// RegisterRoutes maps the calendar endpoints. /exec is kept for callers of the
// original single-endpoint deployment and shares the dispatcher with /api/v1/calendar.
func RegisterRoutes(r gin.IRouter, h *handler, mw middleware.Middleware) {
	r.GET("/exec", h.recovery(), mw.RateLimit(), h.Dispatch)

	cal := r.Group("/api/v1/calendar", h.recovery(), mw.RateLimit())
	{
		cal.GET("", h.Dispatch)
		cal.GET("/day", h.Day)
	}
}

// recovery turns a panic inside the calendar routes into an error body with status 200.
func (h *handler) recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, rec any) {
		h.l.Errorf(c.Request.Context(), "calendar.http.recovery: %v", rec)
		c.AbortWithStatusJSON(http.StatusOK, response.ErrorResp{Error: fmt.Sprint(rec)})
	})
}
