package gcalendar_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"calendar-feed/pkg/gcalendar"
)

type rewriteTransport struct {
	Transport http.RoundTripper
	Host      string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.Host
	return t.Transport.RoundTrip(req)
}

func newTestClient(t *testing.T, h http.HandlerFunc) *gcalendar.Client {
	t.Helper()
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)

	tsClient := ts.Client()
	tsClient.Transport = &rewriteTransport{
		Transport: tsClient.Transport,
		Host:      strings.TrimPrefix(ts.URL, "http://"),
	}

	client, err := gcalendar.NewClientFromHTTP(context.Background(), tsClient)
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}
	return client
}

func TestCalendarClient(t *testing.T) {
	// Constructing fake credentials for local parsing flows
	mockCreds := `{
		"installed": {
			"client_id": "test-client-id.apps.googleusercontent.com",
			"project_id": "test-project",
			"auth_uri": "https://accounts.google.com/o/oauth2/auth",
			"token_uri": "https://oauth2.googleapis.com/token",
			"client_secret": "test-secret",
			"redirect_uris": ["http://localhost"]
		}
	}`

	t.Run("Initialize with broken JWT/OAuth config", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(`{"broken":true}`), "")
		if err == nil {
			t.Errorf("expected decoding failure")
		}
	})

	t.Run("Initialize from installed app config", func(t *testing.T) {
		tokenPath := filepath.Join(t.TempDir(), "token.json")
		os.WriteFile(tokenPath, []byte(`{"access_token": "dummy", "token_type": "Bearer", "expiry": "2030-01-01T00:00:00Z"}`), 0o600)

		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(mockCreds), tokenPath)
		if err != nil {
			t.Fatalf("expected parsing to succeed: %v", err)
		}
	})

	t.Run("Initialize from installed app config bad token", func(t *testing.T) {
		tokenPath := filepath.Join(t.TempDir(), "token.json")
		os.WriteFile(tokenPath, []byte(`{"broken": true`), 0o600)

		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(mockCreds), tokenPath)
		if err == nil {
			t.Fatalf("expected parsing to fail on bad token")
		}
	})

	t.Run("Initialize from installed app config missing token", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(mockCreds), filepath.Join(t.TempDir(), "missing.json"))
		if err == nil {
			t.Fatalf("expected failure without token file")
		}
	})

	t.Run("Initialize from File", func(t *testing.T) {
		tmpFile, _ := os.CreateTemp(t.TempDir(), "creds.json")
		tmpFile.WriteString(`{"broken":true}`)
		tmpFile.Close()

		_, err := gcalendar.NewClientFromCredentialsFile(context.Background(), tmpFile.Name(), "")
		if err == nil {
			t.Errorf("expected failure loading broken file")
		}

		_, err = gcalendar.NewClientFromCredentialsFile(context.Background(), "non-existent-file-path-12345.json", "")
		if err == nil {
			t.Errorf("expected reading file error")
		}
	})
}

func TestListEvents(t *testing.T) {
	var gotQuery map[string]string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/calendar/v3/calendars/test-fail/events" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		if r.URL.Path == "/calendar/v3/calendars/primary/events" && r.Method == http.MethodGet {
			q := r.URL.Query()
			gotQuery = map[string]string{
				"singleEvents": q.Get("singleEvents"),
				"orderBy":      q.Get("orderBy"),
				"maxResults":   q.Get("maxResults"),
				"q":            q.Get("q"),
				"timeMin":      q.Get("timeMin"),
			}
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{
				"items": [
					{
						"id": "event-123",
						"summary": "Existing Event",
						"start": { "date": "2024-05-01" },
						"end": { "date": "2024-05-02" }
					},
					{
						"id": "event-456",
						"summary": "Standup",
						"status": "tentative",
						"colorId": "5",
						"htmlLink": "https://calendar.google.com/event?eid=456",
						"creator": { "email": "owner@example.com" },
						"attendees": [ { "email": "a@example.com" }, { "email": "b@example.com" } ],
						"start": { "dateTime": "2024-05-01T10:00:00+09:00" },
						"end": { "dateTime": "2024-05-01T10:30:00+09:00" }
					}
				]
			}`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	})

	timeMin := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	events, err := client.ListEvents(context.Background(), gcalendar.ListEventsRequest{
		CalendarID: "primary",
		TimeMin:    timeMin,
		TimeMax:    timeMin.Add(24 * time.Hour),
		Query:      "standup",
	})
	if err != nil {
		t.Fatalf("failed to list events: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}

	if gotQuery["singleEvents"] != "true" || gotQuery["orderBy"] != "startTime" {
		t.Errorf("expected expanded, start ordered query, got %v", gotQuery)
	}
	if gotQuery["maxResults"] != "2500" {
		t.Errorf("expected maxResults=2500, got %q", gotQuery["maxResults"])
	}
	if gotQuery["q"] != "standup" {
		t.Errorf("expected q=standup, got %q", gotQuery["q"])
	}
	if gotQuery["timeMin"] != "2024-05-01T00:00:00Z" {
		t.Errorf("unexpected timeMin %q", gotQuery["timeMin"])
	}

	if events[0].Start.Date != "2024-05-01" || events[0].Start.DateTime != "" {
		t.Errorf("unexpected all-day start: %+v", events[0].Start)
	}
	timed := events[1]
	if timed.Start.DateTime != "2024-05-01T10:00:00+09:00" || timed.CreatorEmail != "owner@example.com" {
		t.Errorf("unexpected timed event: %+v", timed)
	}
	if len(timed.Attendees) != 2 || timed.Attendees[1] != "b@example.com" {
		t.Errorf("unexpected attendees: %v", timed.Attendees)
	}

	_, err = client.ListEvents(context.Background(), gcalendar.ListEventsRequest{
		CalendarID: "test-fail",
		TimeMin:    timeMin,
		TimeMax:    timeMin.Add(24 * time.Hour),
	})
	if err == nil {
		t.Fatalf("expected api error on test-fail")
	}
	if code := gcalendar.StatusCode(err); code != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", code)
	}
}

func TestListAndGetCalendars(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/calendar/v3/users/me/calendarList":
			w.Write([]byte(`{
				"items": [
					{ "id": "me@example.com", "summary": "Me", "primary": true, "accessRole": "owner",
					  "backgroundColor": "#9fe1e7", "foregroundColor": "#000000" },
					{ "id": "team", "summary": "Team" }
				]
			}`))
		case "/calendar/v3/calendars/team":
			w.Write([]byte(`{ "id": "team", "summary": "Team Calendar" }`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	calendars, err := client.ListCalendars(context.Background())
	if err != nil {
		t.Fatalf("failed to list calendars: %v", err)
	}
	if len(calendars) != 2 || !calendars[0].Primary || calendars[0].AccessRole != "owner" {
		t.Fatalf("unexpected calendars: %+v", calendars)
	}

	cal, err := client.GetCalendar(context.Background(), "team")
	if err != nil {
		t.Fatalf("failed to get calendar: %v", err)
	}
	if cal.Summary != "Team Calendar" {
		t.Errorf("unexpected summary %q", cal.Summary)
	}

	_, err = client.GetCalendar(context.Background(), "missing")
	if gcalendar.StatusCode(err) != http.StatusNotFound {
		t.Errorf("expected 404, got %v", err)
	}
}
