package datemath

import (
	"errors"
	"time"
)

// DateFormat is the calendar-day layout accepted by ParseDay.
const DateFormat = "2006-01-02"

// ErrInvalidDate is returned when an input cannot be turned into a real calendar day.
var ErrInvalidDate = errors.New("invalid date: expected YYYY-MM-DD")

// Window bounds a provider query.
type Window struct {
	Start time.Time
	End   time.Time
}
