package main

import (
	"github.com/spf13/cobra"

	"calendar-feed/internal/calendar"
	"calendar-feed/pkg/response"
)

type dayOutput struct {
	Events     []calendar.Event `json:"events"`
	Count      int              `json:"count"`
	TargetDate response.Date    `json:"targetDate"`
	CalendarID string           `json:"calendarId"`
}

func newDayCmd(build useCaseFactory) *cobra.Command {
	var calendarID, date string

	cmd := &cobra.Command{
		Use:   "day",
		Short: "List events starting on a single day",
		Example: `  calctl day --date tomorrow
  calctl day --date 2024-06-01 --calendar team@example.com`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			uc, _, err := build(ctx)
			if err != nil {
				return err
			}

			out, err := uc.DayEvents(ctx, calendar.DayEventsInput{
				CalendarID: calendarID,
				Date:       date,
			})
			if err != nil {
				return err
			}

			return printJSON(cmd, dayOutput{
				Events:     out.Events,
				Count:      len(out.Events),
				TargetDate: response.Date(out.TargetDate),
				CalendarID: out.CalendarID,
			})
		},
	}

	cmd.Flags().StringVarP(&calendarID, "calendar", "c", "", "Calendar id (default: configured calendar)")
	cmd.Flags().StringVar(&date, "date", "", "Day as YYYY-MM-DD or a keyword such as tomorrow (default: today)")

	return cmd
}
