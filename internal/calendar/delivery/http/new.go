package http

import (
	"github.com/gin-gonic/gin"

	"calendar-feed/internal/calendar"
	"calendar-feed/pkg/log"
)

// Handler is the public interface for the calendar HTTP delivery layer.
type Handler interface {
	Dispatch(c *gin.Context)
	Day(c *gin.Context)
}

type handler struct {
	l        log.Logger
	uc       calendar.UseCase
	defaults calendar.Defaults
}

// New creates a new HTTP handler for the calendar domain.
func New(l log.Logger, uc calendar.UseCase, defaults calendar.Defaults) *handler {
	return &handler{
		l:        l,
		uc:       uc,
		defaults: defaults,
	}
}
