package response_test

import (
	"encoding/json"
	"testing"
	"time"

	"calendar-feed/pkg/response"
)

func TestDateMarshalJSON(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)

	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{"keeps own location", time.Date(2024, 6, 1, 0, 0, 0, 0, tokyo), `"2024-06-01"`},
		{"zero", time.Time{}, `""`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := json.Marshal(response.Date(tt.in))
			if err != nil {
				t.Fatalf("unexpected error marshaling Date: %v", err)
			}
			if string(b) != tt.want {
				t.Errorf("got %s, want %s", b, tt.want)
			}
		})
	}
}

func TestISOTimeMarshalJSON(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)

	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{"converts to UTC", time.Date(2024, 6, 1, 0, 0, 0, 0, tokyo), `"2024-05-31T15:00:00.000Z"`},
		{"keeps milliseconds", time.Date(2024, 6, 1, 23, 59, 59, 999000000, time.UTC), `"2024-06-01T23:59:59.999Z"`},
		{"zero", time.Time{}, `""`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := json.Marshal(response.ISOTime(tt.in))
			if err != nil {
				t.Fatalf("unexpected error marshaling ISOTime: %v", err)
			}
			if string(b) != tt.want {
				t.Errorf("got %s, want %s", b, tt.want)
			}
		})
	}
}
