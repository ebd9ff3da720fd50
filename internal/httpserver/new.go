package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"calendar-feed/internal/calendar"
	"calendar-feed/internal/middleware"
	"calendar-feed/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	middleware  middleware.Middleware

	// Calendar domain
	calendarUC       calendar.UseCase
	calendarDefaults calendar.Defaults
	providerReady    bool

	// Operations
	metricsHandler http.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	Middleware  middleware.Middleware

	// Calendar domain
	CalendarUseCase  calendar.UseCase
	CalendarDefaults calendar.Defaults
	ProviderReady    bool // false when no Google credentials could be loaded

	// Operations; /metrics is not mounted when nil
	MetricsHandler http.Handler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                logger,
		gin:              gin.New(),
		port:             cfg.Port,
		mode:             cfg.Mode,
		environment:      cfg.Environment,
		middleware:       cfg.Middleware,
		calendarUC:       cfg.CalendarUseCase,
		calendarDefaults: cfg.CalendarDefaults,
		providerReady:    cfg.ProviderReady,
		metricsHandler:   cfg.MetricsHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.calendarUC == nil {
		return errors.New("calendar use case is required")
	}
	return nil
}
