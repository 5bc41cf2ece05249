package contract

import (
	"context"
	"time"

	"github.com/diegoclair/slack-reminder-bot/internal/domain/entity"
)

// CreateReminderInput carries an administrator's request for a new reminder.
type CreateReminderInput struct {
	UserID         string
	ChannelID      string
	TeamID         string
	CreatedBy      string
	Message        string
	Frequency      entity.Frequency
	AckRequired    bool
	MaxOccurrences int

	// StartAt is the first occurrence. Zero means one interval from now.
	StartAt time.Time
}

type ReminderService interface {
	Create(ctx context.Context, input CreateReminderInput) (*entity.Reminder, error)
	Get(ctx context.Context, id int64) (*entity.Reminder, error)
	ListByChannel(ctx context.Context, channelID string) ([]*entity.Reminder, error)
	Pause(ctx context.Context, id int64) (*entity.Reminder, error)
	Resume(ctx context.Context, id int64) (*entity.Reminder, error)
	Delete(ctx context.Context, id int64) error
	Stats(ctx context.Context) (entity.Stats, error)
	IsAdmin(ctx context.Context, userID string) (bool, error)
	Location() *time.Location
}

type AcknowledgementService interface {
	HandleReaction(ctx context.Context, event entity.ReactionEvent) (bool, error)
	ListByReminder(ctx context.Context, reminderID int64) ([]*entity.Acknowledgement, error)
	Cleanup(ctx context.Context, now time.Time) (int64, error)
}

// Gateway performs every outbound side effect of the scan loop.
type Gateway interface {
	// Deliver posts the reminder and returns a reference to the posted message
	// together with the instant its acknowledgement deadline was computed from.
	Deliver(ctx context.Context, reminder *entity.Reminder) (entity.Delivery, error)

	// RequestAcknowledgement attaches the tracked reaction to a delivered message.
	RequestAcknowledgement(ctx context.Context, ref entity.MessageRef) error

	// Enforce removes the reminder's user from the reminder's channel.
	Enforce(ctx context.Context, reminder *entity.Reminder) error
}
