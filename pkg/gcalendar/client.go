package gcalendar

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// DefaultMaxResults is the per-call cap the provider allows for Events.List.
const DefaultMaxResults int64 = 2500

// DefaultTokenPath is where scripts/gcal-auth writes the OAuth token.
const DefaultTokenPath = "token.json"

// Client wraps the Google Calendar API service.
type Client struct {
	service *calendar.Service
}

// NewClientFromCredentialsFile creates a Calendar client from a credentials JSON file path.
// tokenPath is only read for OAuth Desktop credentials.
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath, tokenPath string) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewClientFromCredentialsJSON(ctx, data, tokenPath)
}

// NewClientFromCredentialsJSON creates a Calendar client from raw credentials JSON bytes.
// Service Account keys are tried first, then OAuth Desktop app credentials paired with a token file.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte, tokenPath string) (*Client, error) {
	config, err := google.JWTConfigFromJSON(credentialsJSON, calendar.CalendarReadonlyScope)
	if err == nil {
		svc, svcErr := calendar.NewService(ctx, option.WithTokenSource(config.TokenSource(ctx)))
		if svcErr != nil {
			return nil, fmt.Errorf("failed to create calendar service: %w", svcErr)
		}
		return &Client{service: svc}, nil
	}

	var oauthCreds struct {
		Installed struct {
			ClientID     string   `json:"client_id"`
			ClientSecret string   `json:"client_secret"`
			RedirectURIs []string `json:"redirect_uris"`
		} `json:"installed"`
	}
	if jsonErr := json.Unmarshal(credentialsJSON, &oauthCreds); jsonErr != nil || oauthCreds.Installed.ClientID == "" {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}

	oauthConfig := &oauth2.Config{
		ClientID:     oauthCreds.Installed.ClientID,
		ClientSecret: oauthCreds.Installed.ClientSecret,
		Scopes:       []string{calendar.CalendarReadonlyScope},
		Endpoint:     google.Endpoint,
	}

	if tokenPath == "" {
		tokenPath = DefaultTokenPath
	}
	tokenData, tokenErr := os.ReadFile(tokenPath)
	if tokenErr != nil {
		return nil, fmt.Errorf("google credentials are OAuth Desktop type but no token found at %s: run scripts/gcal-auth first", tokenPath)
	}

	var tok oauth2.Token
	if jsonErr := json.Unmarshal(tokenData, &tok); jsonErr != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", tokenPath, jsonErr)
	}

	svc, svcErr := calendar.NewService(ctx, option.WithTokenSource(oauthConfig.TokenSource(ctx, &tok)))
	if svcErr != nil {
		return nil, fmt.Errorf("failed to create calendar service from OAuth token: %w", svcErr)
	}

	return &Client{service: svc}, nil
}

// NewClientFromHTTP creates a Calendar client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	svc, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

// ListEvents lists single event instances overlapping [TimeMin, TimeMax], ordered by start time.
func (c *Client) ListEvents(ctx context.Context, req ListEventsRequest) ([]Event, error) {
	maxResults := req.MaxResults
	if maxResults <= 0 || maxResults > DefaultMaxResults {
		maxResults = DefaultMaxResults
	}

	call := c.service.Events.List(req.CalendarID).
		TimeMin(req.TimeMin.Format(time.RFC3339)).
		TimeMax(req.TimeMax.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		MaxResults(maxResults)
	if req.Query != "" {
		call = call.Q(req.Query)
	}

	res, err := call.Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list events for %s: %w", req.CalendarID, err)
	}

	events := make([]Event, 0, len(res.Items))
	for _, item := range res.Items {
		if item == nil {
			continue
		}
		events = append(events, toEvent(item))
	}
	return events, nil
}

// ListCalendars returns every calendar on the authenticated account's calendar list.
func (c *Client) ListCalendars(ctx context.Context) ([]Calendar, error) {
	res, err := c.service.CalendarList.List().Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list calendars: %w", err)
	}

	calendars := make([]Calendar, 0, len(res.Items))
	for _, entry := range res.Items {
		if entry == nil {
			continue
		}
		calendars = append(calendars, Calendar{
			ID:              entry.Id,
			Summary:         entry.Summary,
			Description:     entry.Description,
			Primary:         entry.Primary,
			AccessRole:      entry.AccessRole,
			BackgroundColor: entry.BackgroundColor,
			ForegroundColor: entry.ForegroundColor,
		})
	}
	return calendars, nil
}

// GetCalendar fetches calendar metadata by id.
func (c *Client) GetCalendar(ctx context.Context, calendarID string) (Calendar, error) {
	cal, err := c.service.Calendars.Get(calendarID).Context(ctx).Do()
	if err != nil {
		return Calendar{}, fmt.Errorf("failed to get calendar %s: %w", calendarID, err)
	}
	return Calendar{
		ID:          cal.Id,
		Summary:     cal.Summary,
		Description: cal.Description,
	}, nil
}

// StatusCode extracts the provider HTTP status from err, or 0 when err is not an API error.
func StatusCode(err error) int {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return apiErr.Code
	}
	return 0
}

func toEvent(item *calendar.Event) Event {
	ev := Event{
		ID:          item.Id,
		Summary:     item.Summary,
		Description: item.Description,
		Location:    item.Location,
		Status:      item.Status,
		HtmlLink:    item.HtmlLink,
		ColorID:     item.ColorId,
	}
	if item.Start != nil {
		ev.Start = EventTime{Date: item.Start.Date, DateTime: item.Start.DateTime}
	}
	if item.End != nil {
		ev.End = EventTime{Date: item.End.Date, DateTime: item.End.DateTime}
	}
	if item.Creator != nil {
		ev.CreatorEmail = item.Creator.Email
	}
	for _, a := range item.Attendees {
		if a != nil {
			ev.Attendees = append(ev.Attendees, a.Email)
		}
	}
	return ev
}
