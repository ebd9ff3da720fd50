package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var inDurationRe = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)

// Parser normalizes day inputs to midnight in a fixed location.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// "" and "Local" select the host's local zone.
func NewParser(timezone string) (*Parser, error) {
	if timezone == "" || timezone == "Local" {
		return &Parser{location: time.Local}, nil
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the zone all results are expressed in.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Normalize converts a day input to local midnight.
// An empty input means today. Besides YYYY-MM-DD it understands
// today, tomorrow, yesterday, "in N days|weeks|months" and "next <weekday>".
func (p *Parser) Normalize(input string, now time.Time) (time.Time, error) {
	relative := strings.ToLower(strings.TrimSpace(input))

	switch relative {
	case "", "today":
		return p.StartOfDay(now), nil
	case "tomorrow":
		return p.AddDays(p.StartOfDay(now), 1), nil
	case "yesterday":
		return p.AddDays(p.StartOfDay(now), -1), nil
	}

	if strings.HasPrefix(relative, "in ") {
		return p.parseInDuration(relative, now)
	}
	if strings.HasPrefix(relative, "next ") {
		return p.parseNextWeekday(relative, now)
	}

	return p.ParseDay(relative)
}

// ParseDay parses a YYYY-MM-DD string as midnight in the parser location.
// The string is never interpreted as UTC.
func (p *Parser) ParseDay(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateFormat, strings.TrimSpace(s), p.location)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

// parseInDuration handles patterns like "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) parseInDuration(relative string, now time.Time) (time.Time, error) {
	matches := inDurationRe.FindStringSubmatch(relative)
	if len(matches) != 3 {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, relative)
	}

	amount, err := strconv.Atoi(matches[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, relative)
	}
	start := p.StartOfDay(now)

	switch unit := matches[2]; {
	case strings.HasPrefix(unit, "day"):
		return p.AddDays(start, amount), nil
	case strings.HasPrefix(unit, "week"):
		return p.AddDays(start, amount*7), nil
	default:
		return start.AddDate(0, amount, 0), nil
	}
}

// parseNextWeekday handles patterns like "next monday", "next friday".
func (p *Parser) parseNextWeekday(relative string, now time.Time) (time.Time, error) {
	weekdays := map[string]time.Weekday{
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
		"sunday":    time.Sunday,
	}

	dayName := strings.TrimPrefix(relative, "next ")
	target, ok := weekdays[dayName]
	if !ok {
		return time.Time{}, fmt.Errorf("%w: unknown weekday %q", ErrInvalidDate, dayName)
	}

	start := p.StartOfDay(now)
	daysUntil := int(target - start.Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}
	return p.AddDays(start, daysUntil), nil
}

// StartOfDay returns midnight at the start of t's calendar day in the parser's timezone.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// EndOfDay returns 23:59:59.999 of the day that starts at startOfDay.
func (p *Parser) EndOfDay(startOfDay time.Time) time.Time {
	t := startOfDay.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), p.location)
}

// AddDays moves t by n calendar days, keeping the wall clock across DST changes.
func (p *Parser) AddDays(t time.Time, n int) time.Time {
	return t.In(p.location).AddDate(0, 0, n)
}

// DayWindow returns the single-day lookup window [midnight, 23:59:59.999].
func (p *Parser) DayWindow(day time.Time) Window {
	start := p.StartOfDay(day)
	return Window{Start: start, End: p.EndOfDay(start)}
}

// SameDay reports whether a and b fall on the same calendar day in the parser's timezone.
func (p *Parser) SameDay(a, b time.Time) bool {
	a, b = a.In(p.location), b.In(p.location)
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// ParseEventTime parses an event start or end value: a YYYY-MM-DD day
// (midnight in the parser location) or an RFC 3339 timestamp.
func (p *Parser) ParseEventTime(s string) (time.Time, error) {
	if len(s) == len(DateFormat) {
		return p.ParseDay(s)
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse event time %q: %w", s, err)
	}
	return t, nil
}
