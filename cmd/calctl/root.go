package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"calendar-feed/config"
	"calendar-feed/internal/calendar"
	"calendar-feed/internal/calendar/usecase"
	"calendar-feed/pkg/datemath"
	"calendar-feed/pkg/gcalendar"
	"calendar-feed/pkg/log"
)

// useCaseFactory builds the calendar use case and its defaults for one command run.
type useCaseFactory func(ctx context.Context) (calendar.UseCase, calendar.Defaults, error)

func newRootCmd(build useCaseFactory, out io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "calctl",
		Short: "Query Google Calendar from the command line",
		Long: `calctl runs the calendar feed pipeline once and prints the JSON result.

It reads the same config.yaml, .env and environment variables as the API
server and needs a token created by scripts/gcal-auth.`,
		Version:      version,
		SilenceUsage: true,
	}
	rootCmd.SetOut(out)
	rootCmd.SetVersionTemplate(`{{printf "calctl version %s\n" .Version}}`)

	rootCmd.AddCommand(newEventsCmd(build))
	rootCmd.AddCommand(newDayCmd(build))
	rootCmd.AddCommand(newCalendarsCmd(build))
	return rootCmd
}

// newUseCase wires the use case from configuration. Logs go to stderr so stdout stays valid JSON.
func newUseCase(ctx context.Context) (calendar.UseCase, calendar.Defaults, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, calendar.Defaults{}, fmt.Errorf("load config: %w", err)
	}

	logger := log.Init(log.ZapConfig{
		Level:    cfg.Logger.Level,
		Mode:     cfg.Logger.Mode,
		Encoding: cfg.Logger.Encoding,
		Stderr:   true,
	})

	parser, err := datemath.NewParser(cfg.GoogleCalendar.Timezone)
	if err != nil {
		return nil, calendar.Defaults{}, err
	}

	client, err := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.TokenPath)
	if err != nil {
		return nil, calendar.Defaults{}, fmt.Errorf("google calendar: %w", err)
	}

	defaults := cfg.CalendarDefaults()
	return usecase.New(logger, client, parser, defaults, nil), defaults, nil
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
