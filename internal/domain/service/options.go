package service

import (
	"time"

	"github.com/diegoclair/slack-reminder-bot/internal/domain"
)

// Options carries the runtime settings the services need from config.
type Options struct {
	Location            *time.Location
	AdminUserIDs        []string
	MaxRemindersPerUser int
	MaxMessageLength    int

	AckTimeout      time.Duration
	AckEmoji        string
	AckRetention    time.Duration
	AutoKickEnabled bool

	TickInterval    time.Duration
	CleanupSchedule string

	// SlackRateLimit is the sustained number of Slack API calls per second.
	SlackRateLimit float64
}

func (o Options) withDefaults() Options {
	if o.Location == nil {
		o.Location = time.UTC
	}
	if o.MaxRemindersPerUser <= 0 {
		o.MaxRemindersPerUser = domain.DefaultMaxRemindersPerUser
	}
	if o.MaxMessageLength <= 0 {
		o.MaxMessageLength = domain.DefaultMaxMessageLength
	}
	if o.AckTimeout <= 0 {
		o.AckTimeout = domain.DefaultAckTimeout
	}
	if o.AckEmoji == "" {
		o.AckEmoji = domain.DefaultAckEmoji
	}
	if o.AckRetention <= 0 {
		o.AckRetention = domain.DefaultAckRetention
	}
	if o.TickInterval <= 0 {
		o.TickInterval = domain.DefaultTickInterval
	}
	if o.CleanupSchedule == "" {
		o.CleanupSchedule = domain.DefaultCleanupSchedule
	}
	if o.SlackRateLimit <= 0 {
		o.SlackRateLimit = domain.DefaultSlackRateLimit
	}
	return o
}
