package datemath_test

import (
	"errors"
	"testing"
	"time"

	"calendar-feed/pkg/datemath"
)

func TestNewParser(t *testing.T) {
	_, err := datemath.NewParser("Asia/Tokyo")
	if err != nil {
		t.Fatalf("unexpected error creating valid parser: %v", err)
	}

	p, err := datemath.NewParser("")
	if err != nil {
		t.Fatalf("unexpected error for empty timezone: %v", err)
	}
	if p.Location() != time.Local {
		t.Errorf("empty timezone should select time.Local, got %v", p.Location())
	}

	_, err = datemath.NewParser("Invalid/Timezone")
	if err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestParseDay(t *testing.T) {
	parser, _ := datemath.NewParser("Asia/Tokyo")

	inputs := []struct {
		in      string
		y       int
		m       time.Month
		d       int
		wantErr bool
	}{
		{in: "2024-06-01", y: 2024, m: time.June, d: 1},
		{in: "2024-02-29", y: 2024, m: time.February, d: 29},
		{in: "1999-12-31", y: 1999, m: time.December, d: 31},
		{in: "not-a-date", wantErr: true},
		{in: "2024-02-30", wantErr: true},
		{in: "2024-13-01", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range inputs {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parser.ParseDay(tt.in)
			if tt.wantErr {
				if !errors.Is(err, datemath.ErrInvalidDate) {
					t.Fatalf("ParseDay(%q) error = %v, want ErrInvalidDate", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDay(%q) unexpected error: %v", tt.in, err)
			}
			if got.Year() != tt.y || got.Month() != tt.m || got.Day() != tt.d {
				t.Errorf("ParseDay(%q) = %v, want %d-%02d-%02d", tt.in, got, tt.y, tt.m, tt.d)
			}
			if got.Hour() != 0 || got.Minute() != 0 || got.Second() != 0 || got.Nanosecond() != 0 {
				t.Errorf("ParseDay(%q) = %v, want local midnight", tt.in, got)
			}
			if got.Location().String() != "Asia/Tokyo" {
				t.Errorf("ParseDay(%q) location = %v, want Asia/Tokyo", tt.in, got.Location())
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	baseTime := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) // Wednesday, May 1, 2024
	startOfBase := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{name: "Empty means today", input: "", want: startOfBase},
		{name: "Today", input: "today", want: startOfBase},
		{name: "Tomorrow", input: "Tomorrow", want: startOfBase.AddDate(0, 0, 1)},
		{name: "Yesterday", input: "yesterday", want: startOfBase.AddDate(0, 0, -1)},
		{name: "In 3 days", input: "in 3 days", want: startOfBase.AddDate(0, 0, 3)},
		{name: "In 2 weeks", input: "in 2 weeks", want: startOfBase.AddDate(0, 0, 14)},
		{name: "In 1 month", input: "in 1 month", want: startOfBase.AddDate(0, 1, 0)},
		{name: "Next Monday (from Wed)", input: "next monday", want: startOfBase.AddDate(0, 0, 5)},
		{name: "Next Wednesday (from Wed)", input: "next wednesday", want: startOfBase.AddDate(0, 0, 7)},
		{name: "Explicit day", input: "2024-06-01", want: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)},
		{name: "Invalid duration pattern", input: "in a few days", wantErr: true},
		{name: "Invalid next weekday", input: "next funday", wantErr: true},
		{name: "Garbage", input: "not-a-date", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.Normalize(tt.input, baseTime)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Normalize() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, datemath.ErrInvalidDate) {
					t.Errorf("Normalize() error = %v, want ErrInvalidDate", err)
				}
				return
			}
			if !got.Equal(tt.want) {
				t.Errorf("Normalize() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStartOfDay(t *testing.T) {
	loc, _ := time.LoadLocation("Asia/Tokyo")
	parser, _ := datemath.NewParser("Asia/Tokyo")

	// 2024-06-01T20:00Z is already 2024-06-02 05:00 in Tokyo.
	got := parser.StartOfDay(time.Date(2024, 6, 1, 20, 0, 0, 0, time.UTC))
	want := time.Date(2024, 6, 2, 0, 0, 0, 0, loc)
	if !got.Equal(want) {
		t.Errorf("StartOfDay() got = %v, want %v", got, want)
	}
}

func TestEndOfDay(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	want := time.Date(2024, 5, 1, 23, 59, 59, 999000000, time.UTC)

	got := parser.EndOfDay(base)
	if !got.Equal(want) {
		t.Errorf("EndOfDay() got = %v, want %v", got, want)
	}

	w := parser.DayWindow(time.Date(2024, 5, 1, 13, 0, 0, 0, time.UTC))
	if !w.Start.Equal(base) || !w.End.Equal(want) {
		t.Errorf("DayWindow() got = %v, want [%v, %v]", w, base, want)
	}
}

func TestSameDayAndParseEventTime(t *testing.T) {
	parser, _ := datemath.NewParser("Asia/Tokyo")
	target, _ := parser.ParseDay("2024-06-01")

	tests := []struct {
		value string
		same  bool
	}{
		{value: "2024-06-01", same: true},
		{value: "2024-06-01T10:00:00+09:00", same: true},
		{value: "2024-05-31T23:59:00+09:00", same: false},
		{value: "2024-05-31T15:00:00Z", same: true}, // 00:00 in Tokyo
		{value: "2024-06-02", same: false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			ts, err := parser.ParseEventTime(tt.value)
			if err != nil {
				t.Fatalf("ParseEventTime(%q) unexpected error: %v", tt.value, err)
			}
			if got := parser.SameDay(ts, target); got != tt.same {
				t.Errorf("SameDay(%q) = %v, want %v", tt.value, got, tt.same)
			}
		})
	}

	if _, err := parser.ParseEventTime("garbage"); err == nil {
		t.Errorf("expected error for garbage event time")
	}
}
