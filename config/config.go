package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"calendar-feed/internal/calendar"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Calendar feed specifics
	GoogleCalendar GoogleCalendarConfig
	Calendar       CalendarConfig

	// Operations
	RateLimit RateLimitConfig
	Metrics   MetricsConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	TokenPath       string
	Timezone        string // IANA name, or "Local"
}

// CalendarConfig holds request defaults and display labels.
type CalendarConfig struct {
	DefaultCalendarID string
	DefaultDays       int
	MaxDays           int
	MaxResults        int64
	PrimaryLabel      string
	UntitledLabel     string
	NoQueryLabel      string
}

type RateLimitConfig struct {
	Enabled        bool
	RequestsPerMin int
}

type MetricsConfig struct {
	Enabled bool
}

// Load loads configuration using Viper, after importing a .env file when present.
// Config file name: config.yaml, searched in ./config, ., /etc/calendar-feed/
func Load() (*Config, error) {
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/calendar-feed/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Google Calendar
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.TokenPath = viper.GetString("google_calendar.token_path")
	cfg.GoogleCalendar.Timezone = viper.GetString("google_calendar.timezone")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	// Calendar defaults
	cfg.Calendar.DefaultCalendarID = viper.GetString("calendar.default_calendar_id")
	cfg.Calendar.DefaultDays = viper.GetInt("calendar.default_days")
	cfg.Calendar.MaxDays = viper.GetInt("calendar.max_days")
	cfg.Calendar.MaxResults = viper.GetInt64("calendar.max_results")
	cfg.Calendar.PrimaryLabel = viper.GetString("calendar.primary_label")
	cfg.Calendar.UntitledLabel = viper.GetString("calendar.untitled_label")
	cfg.Calendar.NoQueryLabel = viper.GetString("calendar.no_query_label")

	// Operations
	cfg.RateLimit.Enabled = viper.GetBool("rate_limit.enabled")
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")
	cfg.Metrics.Enabled = viper.GetBool("metrics.enabled")

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) validate() error {
	if cfg.Calendar.DefaultDays < 1 {
		return fmt.Errorf("calendar.default_days must be positive, got %d", cfg.Calendar.DefaultDays)
	}
	if cfg.Calendar.MaxDays < cfg.Calendar.DefaultDays {
		return fmt.Errorf("calendar.max_days (%d) must not be lower than calendar.default_days (%d)",
			cfg.Calendar.MaxDays, cfg.Calendar.DefaultDays)
	}
	if cfg.Calendar.MaxResults < 1 {
		return fmt.Errorf("calendar.max_results must be positive, got %d", cfg.Calendar.MaxResults)
	}
	return nil
}

// CalendarDefaults converts the calendar section into use-case defaults.
func (cfg *Config) CalendarDefaults() calendar.Defaults {
	d := calendar.DefaultDefaults()
	d.CalendarID = cfg.Calendar.DefaultCalendarID
	d.Days = cfg.Calendar.DefaultDays
	d.MaxDays = cfg.Calendar.MaxDays
	d.MaxResults = cfg.Calendar.MaxResults
	d.PrimaryLabel = cfg.Calendar.PrimaryLabel
	d.UntitledLabel = cfg.Calendar.UntitledLabel
	d.NoQueryLabel = cfg.Calendar.NoQueryLabel
	return d
}

func setDefaults() {
	defaults := calendar.DefaultDefaults()

	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("google_calendar.credentials_path", "credentials.json")
	viper.SetDefault("google_calendar.token_path", "token.json")
	viper.SetDefault("google_calendar.timezone", "Local")

	viper.SetDefault("calendar.default_calendar_id", defaults.CalendarID)
	viper.SetDefault("calendar.default_days", defaults.Days)
	viper.SetDefault("calendar.max_days", defaults.MaxDays)
	viper.SetDefault("calendar.max_results", defaults.MaxResults)
	viper.SetDefault("calendar.primary_label", defaults.PrimaryLabel)
	viper.SetDefault("calendar.untitled_label", defaults.UntitledLabel)
	viper.SetDefault("calendar.no_query_label", defaults.NoQueryLabel)

	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.requests_per_min", 120)
	viper.SetDefault("metrics.enabled", true)
}
