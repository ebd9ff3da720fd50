package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calendar-feed/internal/calendar"
)

type fakeUseCase struct {
	eventsInput calendar.ListEventsInput
	dayInput    calendar.DayEventsInput
	err         error
}

func (f *fakeUseCase) ListEvents(ctx context.Context, input calendar.ListEventsInput) (calendar.ListEventsOutput, error) {
	f.eventsInput = input
	return calendar.ListEventsOutput{
		Events:      []calendar.Event{{ID: "e1", Attendees: []string{}}},
		PeriodStart: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:   time.Date(2024, 6, 8, 0, 0, 0, 0, time.UTC),
		CalendarIDs: input.CalendarIDs,
	}, f.err
}

func (f *fakeUseCase) ListCalendars(ctx context.Context) (calendar.ListCalendarsOutput, error) {
	return calendar.ListCalendarsOutput{Calendars: []calendar.Calendar{{ID: "primary", Primary: true}}}, f.err
}

func (f *fakeUseCase) DayEvents(ctx context.Context, input calendar.DayEventsInput) (calendar.DayEventsOutput, error) {
	f.dayInput = input
	return calendar.DayEventsOutput{
		Events:     []calendar.Event{},
		TargetDate: time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC),
		CalendarID: "primary",
	}, f.err
}

func run(t *testing.T, uc *fakeUseCase, args ...string) (map[string]any, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(func(ctx context.Context) (calendar.UseCase, calendar.Defaults, error) {
		return uc, calendar.DefaultDefaults(), nil
	}, &out)
	cmd.SetArgs(args)
	cmd.SetErr(&bytes.Buffer{})

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		return nil, err
	}

	var body map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &body))
	return body, nil
}

func TestEventsCmd(t *testing.T) {
	uc := &fakeUseCase{}

	body, err := run(t, uc, "events", "--calendar", "primary, team", "--days", "7", "--start", "2024-06-01")
	require.NoError(t, err)

	assert.Equal(t, calendar.ListEventsInput{
		CalendarIDs: []string{"primary", "team"},
		Days:        7,
		StartDate:   "2024-06-01",
	}, uc.eventsInput)
	assert.EqualValues(t, 1, body["count"])
	assert.Equal(t, "none", body["query"])
	assert.Equal(t, "2024-06-01T00:00:00.000Z", body["periodStart"])
}

func TestDayCmd(t *testing.T) {
	uc := &fakeUseCase{}

	body, err := run(t, uc, "day", "--date", "tomorrow")
	require.NoError(t, err)

	assert.Equal(t, calendar.DayEventsInput{Date: "tomorrow"}, uc.dayInput)
	assert.Equal(t, "2024-06-02", body["targetDate"])
	assert.Equal(t, []any{}, body["events"])
}

func TestCalendarsCmd(t *testing.T) {
	body, err := run(t, &fakeUseCase{}, "calendars")
	require.NoError(t, err)
	assert.EqualValues(t, 1, body["count"])
}

func TestCmdError(t *testing.T) {
	_, err := run(t, &fakeUseCase{err: calendar.ErrProviderUnavailable}, "calendars")
	assert.ErrorIs(t, err, calendar.ErrProviderUnavailable)

	_, err = run(t, &fakeUseCase{}, "events", "extra-arg")
	assert.Error(t, err)
}

func TestFactoryError(t *testing.T) {
	cmd := newRootCmd(func(ctx context.Context) (calendar.UseCase, calendar.Defaults, error) {
		return nil, calendar.Defaults{}, errors.New("no token")
	}, &bytes.Buffer{})
	cmd.SetArgs([]string{"day"})
	cmd.SetErr(&bytes.Buffer{})

	assert.EqualError(t, cmd.Execute(), "no token")
}
