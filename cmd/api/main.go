package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"calendar-feed/config"
	_ "calendar-feed/docs" // Swagger docs
	"calendar-feed/internal/calendar/usecase"
	"calendar-feed/internal/httpserver"
	"calendar-feed/internal/middleware"
	"calendar-feed/pkg/datemath"
	"calendar-feed/pkg/gcalendar"
	"calendar-feed/pkg/log"
	"calendar-feed/pkg/metrics"
)

// @title       Calendar Feed API
// @description Read-only Google Calendar adapter returning normalized, start-ordered events.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting calendar feed...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. DateMath parser
	dateMathParser, err := datemath.NewParser(cfg.GoogleCalendar.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to local time: %v", cfg.GoogleCalendar.Timezone, err)
		dateMathParser, _ = datemath.NewParser("Local")
	}

	// 4. Google Calendar client. Without it the service still starts and
	// answers every calendar request with an error body.
	var provider usecase.Provider
	calendarClient, err := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.TokenPath)
	if err != nil {
		logger.Warnf(ctx, "Google Calendar not available: %v", err)
		logger.Warn(ctx, "→ Run `go run scripts/gcal-auth/main.go` to generate token.json")
	} else {
		provider = calendarClient
		logger.Info(ctx, "✅ Google Calendar initialized")
	}

	// 5. Metrics
	var (
		recorder     metrics.Recorder = metrics.NewNop()
		promRecorder  *metrics.Prometheus
	)
	if cfg.Metrics.Enabled {
		promRecorder = metrics.NewPrometheus()
		recorder = promRecorder
	}

	// 6. Calendar UseCase
	defaults := cfg.CalendarDefaults()
	calendarUC := usecase.New(logger, provider, dateMathParser, defaults, recorder)

	// 7. HTTP Server
	httpCfg := httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware: middleware.New(logger, middleware.Config{
			RateLimitEnabled: cfg.RateLimit.Enabled,
			RequestsPerMin:   cfg.RateLimit.RequestsPerMin,
		}),
		CalendarUseCase:  calendarUC,
		CalendarDefaults: defaults,
		ProviderReady:    provider != nil,
	}
	if promRecorder != nil {
		httpCfg.MetricsHandler = promRecorder.Handler()
	}

	httpServer, err := httpserver.New(logger, httpCfg)
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.RunContext(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
