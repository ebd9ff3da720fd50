package response

import (
	"encoding/json"
	"time"
)

const (
	MessageSuccess          = "Success"
	DefaultErrorMessage     = "Something went wrong"
	InternalServerErrorCode = 500

	DateFormat    = "2006-01-02"
	ISOTimeFormat = "2006-01-02T15:04:05.000Z"
)

// Resp is the standard JSON envelope used by the system routes.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

// ErrorResp is the bare error body of the calendar routes.
type ErrorResp struct {
	Error string `json:"error"`
}

// Date marshals as DateFormat in its own location. The zero value marshals as "".
type Date time.Time

// MarshalJSON implements json.Marshaler for Date.
func (d Date) MarshalJSON() ([]byte, error) {
	t := time.Time(d)
	if t.IsZero() {
		return json.Marshal("")
	}
	return json.Marshal(t.Format(DateFormat))
}

// ISOTime marshals as ISOTimeFormat in UTC. The zero value marshals as "".
type ISOTime time.Time

// MarshalJSON implements json.Marshaler for ISOTime.
func (t ISOTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t ISOTime) String() string {
	tt := time.Time(t)
	if tt.IsZero() {
		return ""
	}
	return tt.UTC().Format(ISOTimeFormat)
}
