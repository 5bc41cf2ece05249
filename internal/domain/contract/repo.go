package contract

import (
	"context"
	"time"

	"github.com/diegoclair/slack-reminder-bot/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Reminder() ReminderRepo
	Acknowledgement() AcknowledgementRepo
}

// ReminderRepo defines the contract for reminder repository.
// Methods returning a bool report whether the guarded write matched a row.
type ReminderRepo interface {
	Create(ctx context.Context, reminder *entity.Reminder) error
	GetByID(ctx context.Context, id int64) (*entity.Reminder, error)
	ListByChannel(ctx context.Context, channelID string) ([]*entity.Reminder, error)
	CountOpenByUser(ctx context.Context, userID string) (int, error)
	GetDue(ctx context.Context, now time.Time) ([]*entity.Reminder, error)
	Advance(ctx context.Context, reminder *entity.Reminder, expectedNextDue time.Time) (bool, error)
	UpdateStatus(ctx context.Context, id int64, from, to entity.ReminderStatus) (bool, error)
	MarkDeleted(ctx context.Context, id int64) (bool, error)
	CountByStatus(ctx context.Context) (map[entity.ReminderStatus]int, error)
}

// AcknowledgementRepo defines the contract for acknowledgement repository
type AcknowledgementRepo interface {
	Create(ctx context.Context, ack *entity.Acknowledgement) error
	GetByID(ctx context.Context, id int64) (*entity.Acknowledgement, error)
	GetByMessage(ctx context.Context, ref entity.MessageRef) (*entity.Acknowledgement, error)
	GetExpired(ctx context.Context, now time.Time) ([]*entity.Acknowledgement, error)
	ListByReminder(ctx context.Context, reminderID int64) ([]*entity.Acknowledgement, error)
	Transition(ctx context.Context, ack *entity.Acknowledgement, from entity.AckStatus) (bool, error)
	DeletePendingByReminder(ctx context.Context, reminderID int64) (int64, error)
	DeleteResolvedBefore(ctx context.Context, cutoff time.Time) (int64, error)
	CountByStatus(ctx context.Context) (map[entity.AckStatus]int, error)
}
