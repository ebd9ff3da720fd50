package main

import (
	"github.com/spf13/cobra"

	"calendar-feed/internal/calendar"
)

type calendarsOutput struct {
	Calendars []calendar.Calendar `json:"calendars"`
	Count     int                 `json:"count"`
}

func newCalendarsCmd(build useCaseFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "calendars",
		Short: "List calendars visible to the configured account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			uc, _, err := build(ctx)
			if err != nil {
				return err
			}

			out, err := uc.ListCalendars(ctx)
			if err != nil {
				return err
			}
			return printJSON(cmd, calendarsOutput{Calendars: out.Calendars, Count: len(out.Calendars)})
		},
	}
}
