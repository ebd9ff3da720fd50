package main

import (
	"strings"

	"github.com/spf13/cobra"

	"calendar-feed/internal/calendar"
	"calendar-feed/pkg/response"
)

type eventsOutput struct {
	Events      []calendar.Event `json:"events"`
	Count       int              `json:"count"`
	Query       string           `json:"query"`
	PeriodStart response.ISOTime `json:"periodStart"`
	PeriodEnd   response.ISOTime `json:"periodEnd"`
	Calendars   []string         `json:"calendars"`
}

func newEventsCmd(build useCaseFactory) *cobra.Command {
	var (
		calendarIDs []string
		days        int
		startDate   string
		query       string
	)

	cmd := &cobra.Command{
		Use:   "events",
		Short: "List events of one or more calendars",
		Long: `List events from every given calendar over a window of days,
merged and ordered by start time.`,
		Example: `  calctl events
  calctl events --calendar primary,team@example.com --days 14
  calctl events --start 2024-06-01 --query standup`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			uc, defaults, err := build(ctx)
			if err != nil {
				return err
			}

			ids := make([]string, 0, len(calendarIDs))
			for _, id := range calendarIDs {
				if id = strings.TrimSpace(id); id != "" {
					ids = append(ids, id)
				}
			}

			out, err := uc.ListEvents(ctx, calendar.ListEventsInput{
				CalendarIDs: ids,
				Days:        days,
				StartDate:   startDate,
				Query:       query,
			})
			if err != nil {
				return err
			}

			label := out.Query
			if label == "" {
				label = defaults.NoQueryLabel
			}
			return printJSON(cmd, eventsOutput{
				Events:      out.Events,
				Count:       len(out.Events),
				Query:       label,
				PeriodStart: response.ISOTime(out.PeriodStart),
				PeriodEnd:   response.ISOTime(out.PeriodEnd),
				Calendars:   out.CalendarIDs,
			})
		},
	}

	cmd.Flags().StringSliceVarP(&calendarIDs, "calendar", "c", nil, "Calendar ids, comma separated (default: configured calendar)")
	cmd.Flags().IntVarP(&days, "days", "d", 0, "Window length in days (default: configured days)")
	cmd.Flags().StringVarP(&startDate, "start", "s", "", "Start day as YYYY-MM-DD or a keyword such as tomorrow (default: today)")
	cmd.Flags().StringVarP(&query, "query", "q", "", "Free text filter")

	return cmd
}
