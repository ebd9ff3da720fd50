package http

import (
	"errors"
	"fmt"

	"calendar-feed/internal/calendar"
)

var errInternal = errors.New("internal error")

// mapError translates use-case errors into the message carried by the error body.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, calendar.ErrProviderUnavailable):
		return calendar.ErrProviderUnavailable
	default:
		return fmt.Errorf("%w: %v", errInternal, err)
	}
}
