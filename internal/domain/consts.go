package domain

import "time"

// Acknowledgement defaults
const (
	DefaultAckEmoji     = "white_check_mark"
	DefaultAckTimeout   = 48 * time.Hour
	MinAckTimeout       = time.Hour
	MaxAckTimeout       = 7 * 24 * time.Hour
	DefaultAckRetention = 7 * 24 * time.Hour
)

// Scheduling defaults
const (
	DefaultTickInterval    = time.Minute
	MinTickInterval        = time.Second
	DefaultCleanupSchedule = "@daily"
)

// Limits
const (
	DefaultMaxRemindersPerUser = 10
	DefaultMaxMessageLength    = 2000

	// DefaultSlackRateLimit is Slack API calls per second (chat.postMessage tier)
	DefaultSlackRateLimit = 1.0
)

// DefaultTimezone is used for wall-clock recurrence when none is configured
const DefaultTimezone = "UTC"

// CommandName is the slash command the bot is registered under
const CommandName = "/remind"
