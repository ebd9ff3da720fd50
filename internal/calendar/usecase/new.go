package usecase

import (
	"time"

	"calendar-feed/internal/calendar"
	"calendar-feed/pkg/datemath"
	pkgLog "calendar-feed/pkg/log"
	"calendar-feed/pkg/metrics"
)

type implUseCase struct {
	l        pkgLog.Logger
	provider Provider
	dateMath *datemath.Parser
	defaults calendar.Defaults
	metrics  metrics.Recorder
	now      func() time.Time
}

// New creates a new calendar UseCase. provider may be nil, in which case every
// operation fails with calendar.ErrProviderUnavailable.
func New(
	l pkgLog.Logger,
	provider Provider,
	dateMath *datemath.Parser,
	defaults calendar.Defaults,
	recorder metrics.Recorder,
) calendar.UseCase {
	if recorder == nil {
		recorder = metrics.NewNop()
	}
	return &implUseCase{
		l:        l,
		provider: provider,
		dateMath: dateMath,
		defaults: defaults,
		metrics:  recorder,
		now:      time.Now,
	}
}
