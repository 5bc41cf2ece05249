package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("SLACK_BOT_TOKEN", "xoxb-test")
	t.Setenv("SLACK_SIGNING_SECRET", "secret")
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("should apply defaults", func(t *testing.T) {
		setRequiredEnv(t)

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, "./reminders.db", cfg.DatabasePath)
		assert.Equal(t, "3000", cfg.Port)
		assert.Equal(t, "UTC", cfg.Timezone)
		assert.Equal(t, 48*time.Hour, cfg.Acknowledgement.Timeout)
		assert.Equal(t, "white_check_mark", cfg.Acknowledgement.Emoji)
		assert.Equal(t, 168*time.Hour, cfg.Acknowledgement.Retention)
		assert.Equal(t, time.Minute, cfg.Scheduling.TickInterval)
		assert.Equal(t, "@daily", cfg.Scheduling.CleanupSchedule)
		assert.Equal(t, 10, cfg.Limits.MaxRemindersPerUser)
		assert.Equal(t, 2000, cfg.Limits.MaxMessageLength)
		assert.Equal(t, 1.0, cfg.Limits.SlackRateLimit)
		assert.True(t, cfg.Features.AutoKickEnabled)
		assert.Empty(t, cfg.AdminUserIDs)
	})

	t.Run("should read environment overrides", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("ACK_TIMEOUT", "24h")
		t.Setenv("TICK_INTERVAL", "30s")
		t.Setenv("ADMIN_USER_IDS", "U1, U2,,")
		t.Setenv("TIMEZONE", "America/New_York")
		t.Setenv("LOG_PRETTY", "true")
		t.Setenv("SLACK_RATE_LIMIT", "2.5")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 24*time.Hour, cfg.Acknowledgement.Timeout)
		assert.Equal(t, 30*time.Second, cfg.Scheduling.TickInterval)
		assert.Equal(t, []string{"U1", "U2"}, cfg.AdminUserIDs)
		assert.Equal(t, "America/New_York", cfg.Location().String())
		assert.True(t, cfg.LogPretty)
		assert.Equal(t, 2.5, cfg.Limits.SlackRateLimit)
	})

	t.Run("should overlay yaml below environment", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("CONFIG_FILE", writeConfigFile(t, `
limits:
  max_reminders_per_user: 3
  max_message_length: 500
  slack_rate_limit: 0.5
scheduling:
  tick_interval: 10s
acknowledgement:
  timeout: 2h
  emoji: ":eyes:"
features:
  auto_kick_enabled: false
`))
		t.Setenv("ACK_TIMEOUT", "3h")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 3, cfg.Limits.MaxRemindersPerUser)
		assert.Equal(t, 500, cfg.Limits.MaxMessageLength)
		assert.Equal(t, 0.5, cfg.Limits.SlackRateLimit)
		assert.Equal(t, 10*time.Second, cfg.Scheduling.TickInterval)
		assert.Equal(t, 3*time.Hour, cfg.Acknowledgement.Timeout)
		assert.Equal(t, ":eyes:", cfg.Acknowledgement.Emoji)
		assert.False(t, cfg.Features.AutoKickEnabled)
	})

	t.Run("should reject malformed yaml", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("CONFIG_FILE", writeConfigFile(t, "limits: [1, 2"))

		_, err := Load()

		assert.Error(t, err)
	})

	t.Run("should report every invalid field", func(t *testing.T) {
		t.Setenv("SLACK_BOT_TOKEN", "")
		t.Setenv("SLACK_SIGNING_SECRET", "")
		t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))
		t.Setenv("ACK_TIMEOUT", "200h")

		_, err := Load()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "SLACK_BOT_TOKEN")
		assert.Contains(t, err.Error(), "SLACK_SIGNING_SECRET")
		assert.Contains(t, err.Error(), "acknowledgement timeout")
	})

	t.Run("should reject invalid rate limit", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("SLACK_RATE_LIMIT", "fast")

		_, err := Load()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "SLACK_RATE_LIMIT")
	})

	t.Run("should reject invalid duration", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("TICK_INTERVAL", "soon")

		_, err := Load()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "TICK_INTERVAL")
	})
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{
			name:   "Should accept defaults with credentials",
			mutate: func(c *Config) {},
		},
		{
			name:    "Should reject timeout below one hour",
			mutate:  func(c *Config) { c.Acknowledgement.Timeout = 59 * time.Minute },
			wantErr: "acknowledgement timeout",
		},
		{
			name:   "Should accept timeout at upper bound",
			mutate: func(c *Config) { c.Acknowledgement.Timeout = 168 * time.Hour },
		},
		{
			name:    "Should reject unknown timezone",
			mutate:  func(c *Config) { c.Timezone = "Mars/Olympus" },
			wantErr: "TIMEZONE",
		},
		{
			name:    "Should reject empty emoji",
			mutate:  func(c *Config) { c.Acknowledgement.Emoji = "::" },
			wantErr: "emoji",
		},
		{
			name:    "Should reject sub-second tick",
			mutate:  func(c *Config) { c.Scheduling.TickInterval = 100 * time.Millisecond },
			wantErr: "tick interval",
		},
		{
			name:    "Should reject zero limit",
			mutate:  func(c *Config) { c.Limits.MaxRemindersPerUser = 0 },
			wantErr: "max_reminders_per_user",
		},
		{
			name:    "Should reject non-positive rate limit",
			mutate:  func(c *Config) { c.Limits.SlackRateLimit = 0 },
			wantErr: "slack_rate_limit",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaults()
			cfg.SlackBotToken = "xoxb"
			cfg.SlackSigningSecret = "secret"
			tt.mutate(cfg)

			err := cfg.Validate()

			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParseDurationOrDefault(t *testing.T) {
	d, err := ParseDurationOrDefault("x", "", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, time.Minute, d)

	d, err = ParseDurationOrDefault("x", "90m", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 90*time.Minute, d)

	_, err = ParseDurationOrDefault("x", "-1h", time.Minute)
	assert.Error(t, err)
}
