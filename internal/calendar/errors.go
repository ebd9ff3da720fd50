package calendar

import "errors"

var (
	ErrProviderUnavailable = errors.New("calendar provider is not configured")
)
