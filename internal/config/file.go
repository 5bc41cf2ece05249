package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	yaml "go.yaml.in/yaml/v3"
)

// fileConfig mirrors the optional YAML file. Pointer fields distinguish
// "absent" from zero values.
type fileConfig struct {
	Limits struct {
		MaxRemindersPerUser *int     `yaml:"max_reminders_per_user"`
		MaxMessageLength    *int     `yaml:"max_message_length"`
		SlackRateLimit      *float64 `yaml:"slack_rate_limit"`
	} `yaml:"limits"`

	Scheduling struct {
		TickInterval    string `yaml:"tick_interval"`
		CleanupSchedule string `yaml:"cleanup_schedule"`
	} `yaml:"scheduling"`

	Acknowledgement struct {
		Timeout   string `yaml:"timeout"`
		Emoji     string `yaml:"emoji"`
		Retention string `yaml:"retention"`
	} `yaml:"acknowledgement"`

	Features struct {
		AutoKickEnabled *bool `yaml:"auto_kick_enabled"`
	} `yaml:"features"`

	AdminUserIDs []string `yaml:"admin_user_ids"`
	Timezone     string   `yaml:"timezone"`
}

// loadFile overlays the YAML file at path. A missing file is not an error.
func (c *Config) loadFile(path string) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	return c.applyYAML(data)
}

func (c *Config) applyYAML(data []byte) error {
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("yaml unmarshal: %w", err)
	}

	if fc.Limits.MaxRemindersPerUser != nil {
		c.Limits.MaxRemindersPerUser = *fc.Limits.MaxRemindersPerUser
	}
	if fc.Limits.MaxMessageLength != nil {
		c.Limits.MaxMessageLength = *fc.Limits.MaxMessageLength
	}
	if fc.Limits.SlackRateLimit != nil {
		c.Limits.SlackRateLimit = *fc.Limits.SlackRateLimit
	}
	if fc.Scheduling.CleanupSchedule != "" {
		c.Scheduling.CleanupSchedule = fc.Scheduling.CleanupSchedule
	}
	if fc.Acknowledgement.Emoji != "" {
		c.Acknowledgement.Emoji = fc.Acknowledgement.Emoji
	}
	if fc.Features.AutoKickEnabled != nil {
		c.Features.AutoKickEnabled = *fc.Features.AutoKickEnabled
	}
	if len(fc.AdminUserIDs) > 0 {
		c.AdminUserIDs = fc.AdminUserIDs
	}
	if fc.Timezone != "" {
		c.Timezone = fc.Timezone
	}

	var errs []error
	durations := []struct {
		path string
		raw  string
		dst  *time.Duration
	}{
		{"scheduling.tick_interval", fc.Scheduling.TickInterval, &c.Scheduling.TickInterval},
		{"acknowledgement.timeout", fc.Acknowledgement.Timeout, &c.Acknowledgement.Timeout},
		{"acknowledgement.retention", fc.Acknowledgement.Retention, &c.Acknowledgement.Retention},
	}
	for _, d := range durations {
		v, err := ParseDurationOrDefault(d.path, d.raw, *d.dst)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		*d.dst = v
	}

	return errors.Join(errs...)
}
