package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/diegoclair/slack-reminder-bot/internal/domain"
	"github.com/joho/godotenv"
)

type Config struct {
	SlackBotToken      string
	SlackSigningSecret string
	DatabasePath       string
	Port               string
	LogLevel           string
	LogPretty          bool
	Timezone           string
	AdminUserIDs       []string
	ConfigFile         string

	Limits          LimitsConfig
	Scheduling      SchedulingConfig
	Acknowledgement AcknowledgementConfig
	Features        FeaturesConfig
}

type LimitsConfig struct {
	MaxRemindersPerUser int
	MaxMessageLength    int
	// SlackRateLimit is Slack API calls per second shared by all outgoing calls.
	SlackRateLimit float64
}

type SchedulingConfig struct {
	TickInterval    time.Duration
	CleanupSchedule string
}

type AcknowledgementConfig struct {
	Timeout   time.Duration
	Emoji     string
	Retention time.Duration
}

type FeaturesConfig struct {
	AutoKickEnabled bool
}

func defaults() *Config {
	return &Config{
		DatabasePath: "./reminders.db",
		Port:         "3000",
		LogLevel:     "info",
		Timezone:     domain.DefaultTimezone,
		ConfigFile:   "./config.yaml",
		Limits: LimitsConfig{
			MaxRemindersPerUser: domain.DefaultMaxRemindersPerUser,
			MaxMessageLength:    domain.DefaultMaxMessageLength,
			SlackRateLimit:      domain.DefaultSlackRateLimit,
		},
		Scheduling: SchedulingConfig{
			TickInterval:    domain.DefaultTickInterval,
			CleanupSchedule: domain.DefaultCleanupSchedule,
		},
		Acknowledgement: AcknowledgementConfig{
			Timeout:   domain.DefaultAckTimeout,
			Emoji:     domain.DefaultAckEmoji,
			Retention: domain.DefaultAckRetention,
		},
		Features: FeaturesConfig{
			AutoKickEnabled: true,
		},
	}
}

// Load reads .env (if present), the optional YAML file and then the
// environment. Later sources win.
func Load() (*Config, error) {
	// Missing .env is fine in production
	_ = godotenv.Load()

	cfg := defaults()
	cfg.ConfigFile = getEnv("CONFIG_FILE", cfg.ConfigFile)

	if err := cfg.loadFile(cfg.ConfigFile); err != nil {
		return nil, err
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	var errs []error

	c.SlackBotToken = getEnv("SLACK_BOT_TOKEN", c.SlackBotToken)
	c.SlackSigningSecret = getEnv("SLACK_SIGNING_SECRET", c.SlackSigningSecret)
	c.DatabasePath = getEnv("DATABASE_PATH", c.DatabasePath)
	c.Port = getEnv("PORT", c.Port)
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)
	c.Timezone = getEnv("TIMEZONE", c.Timezone)
	c.Acknowledgement.Emoji = getEnv("ACK_EMOJI", c.Acknowledgement.Emoji)

	if v := getEnv("LOG_PRETTY", ""); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("LOG_PRETTY: invalid bool %q", v))
		}
		c.LogPretty = b
	}

	if v := getEnv("SLACK_RATE_LIMIT", ""); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("SLACK_RATE_LIMIT: invalid number %q", v))
		} else {
			c.Limits.SlackRateLimit = f
		}
	}

	if v := getEnv("ADMIN_USER_IDS", ""); v != "" {
		c.AdminUserIDs = splitList(v)
	}

	durations := []struct {
		key string
		dst *time.Duration
	}{
		{"ACK_TIMEOUT", &c.Acknowledgement.Timeout},
		{"TICK_INTERVAL", &c.Scheduling.TickInterval},
		{"ACK_RETENTION", &c.Acknowledgement.Retention},
	}
	for _, d := range durations {
		v, err := ParseDurationOrDefault(d.key, getEnv(d.key, ""), *d.dst)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		*d.dst = v
	}

	return errors.Join(errs...)
}

// Validate reports every invalid field at once.
func (c *Config) Validate() error {
	var errs []error

	if c.SlackBotToken == "" {
		errs = append(errs, errors.New("SLACK_BOT_TOKEN is required"))
	}
	if c.SlackSigningSecret == "" {
		errs = append(errs, errors.New("SLACK_SIGNING_SECRET is required"))
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		errs = append(errs, fmt.Errorf("TIMEZONE: %w", err))
	}
	if t := c.Acknowledgement.Timeout; t < domain.MinAckTimeout || t > domain.MaxAckTimeout {
		errs = append(errs, fmt.Errorf("acknowledgement timeout %s must be between %s and %s",
			t, domain.MinAckTimeout, domain.MaxAckTimeout))
	}
	if strings.Trim(c.Acknowledgement.Emoji, ": ") == "" {
		errs = append(errs, errors.New("acknowledgement emoji is required"))
	}
	if c.Scheduling.TickInterval < domain.MinTickInterval {
		errs = append(errs, fmt.Errorf("tick interval %s must be at least %s",
			c.Scheduling.TickInterval, domain.MinTickInterval))
	}
	if c.Limits.MaxRemindersPerUser <= 0 {
		errs = append(errs, errors.New("limits.max_reminders_per_user must be positive"))
	}
	if c.Limits.MaxMessageLength <= 0 {
		errs = append(errs, errors.New("limits.max_message_length must be positive"))
	}
	if c.Limits.SlackRateLimit <= 0 {
		errs = append(errs, errors.New("limits.slack_rate_limit must be positive"))
	}

	return errors.Join(errs...)
}

// Location returns the configured time zone, falling back to UTC.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
