package service

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/diegoclair/slack-reminder-bot/internal/domain/contract"
	"github.com/diegoclair/slack-reminder-bot/internal/domain/entity"
	"github.com/rs/zerolog"
)

type reminderService struct {
	dm          contract.DataManager
	slackClient contract.SlackClient
	opts        Options
	log         zerolog.Logger
	now         func() time.Time
}

func newReminder(dm contract.DataManager, slackClient contract.SlackClient, opts Options, log zerolog.Logger) *reminderService {
	return &reminderService{
		dm:          dm,
		slackClient: slackClient,
		opts:        opts.withDefaults(),
		log:         log.With().Str("component", "reminder").Logger(),
		now:         time.Now,
	}
}

func (s *reminderService) Location() *time.Location {
	return s.opts.Location
}

func (s *reminderService) Create(ctx context.Context, input contract.CreateReminderInput) (*entity.Reminder, error) {
	reminder := &entity.Reminder{
		UserID:         input.UserID,
		ChannelID:      input.ChannelID,
		TeamID:         input.TeamID,
		CreatedBy:      input.CreatedBy,
		Message:        input.Message,
		Frequency:      input.Frequency,
		Status:         entity.ReminderActive,
		AckRequired:    input.AckRequired,
		MaxOccurrences: input.MaxOccurrences,
	}

	if err := reminder.Validate(s.opts.MaxMessageLength); err != nil {
		return nil, err
	}

	count, err := s.dm.Reminder().CountOpenByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to count reminders: %w", err)
	}
	if count >= s.opts.MaxRemindersPerUser {
		return nil, fmt.Errorf("%w: <@%s> already has %d", entity.ErrReminderLimit, input.UserID, count)
	}

	if input.StartAt.IsZero() {
		// Anchor on the creation instant, not the first due time: a monthly
		// reminder made on the 31st must keep returning to the 31st.
		now := s.now().In(s.opts.Location).Truncate(time.Second)
		reminder.Anchor = now
		reminder.NextDue = input.Frequency.Next(now, now)
	} else {
		reminder.Anchor = input.StartAt.In(s.opts.Location)
		reminder.NextDue = reminder.Anchor
	}

	if err := s.dm.Reminder().Create(ctx, reminder); err != nil {
		return nil, fmt.Errorf("failed to create reminder: %w", err)
	}

	s.log.Info().
		Int64("reminder_id", reminder.ID).
		Str("user_id", reminder.UserID).
		Str("channel_id", reminder.ChannelID).
		Str("frequency", string(reminder.Frequency)).
		Time("next_due", reminder.NextDue).
		Msg("reminder created")

	return reminder, nil
}

// Get returns the reminder, or ErrReminderNotFound if it does not exist or was deleted.
func (s *reminderService) Get(ctx context.Context, id int64) (*entity.Reminder, error) {
	reminder, err := s.dm.Reminder().GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get reminder: %w", err)
	}
	if reminder == nil || reminder.Status == entity.ReminderDeleted {
		return nil, entity.ErrReminderNotFound
	}
	return reminder, nil
}

func (s *reminderService) ListByChannel(ctx context.Context, channelID string) ([]*entity.Reminder, error) {
	reminders, err := s.dm.Reminder().ListByChannel(ctx, channelID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reminders: %w", err)
	}
	return reminders, nil
}

func (s *reminderService) Pause(ctx context.Context, id int64) (*entity.Reminder, error) {
	return s.transition(ctx, id, (*entity.Reminder).Pause)
}

func (s *reminderService) Resume(ctx context.Context, id int64) (*entity.Reminder, error) {
	return s.transition(ctx, id, (*entity.Reminder).Resume)
}

// transition applies a pause or resume and persists it guarded on the status
// that was read. Losing the race to another writer reports a conflict.
func (s *reminderService) transition(ctx context.Context, id int64, apply func(*entity.Reminder) error) (*entity.Reminder, error) {
	reminder, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	from := reminder.Status
	if err := apply(reminder); err != nil {
		return nil, err
	}

	ok, err := s.dm.Reminder().UpdateStatus(ctx, id, from, reminder.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to update reminder: %w", err)
	}
	if !ok {
		return nil, entity.ErrConflict
	}

	s.log.Info().
		Int64("reminder_id", id).
		Str("from", string(from)).
		Str("to", string(reminder.Status)).
		Msg("reminder status changed")

	return reminder, nil
}

// Delete marks the reminder deleted and withdraws its pending acknowledgements
// so nobody is removed for a reminder that no longer exists. Deleting twice is a no-op.
func (s *reminderService) Delete(ctx context.Context, id int64) error {
	var withdrawn int64

	err := s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		reminder, err := tx.Reminder().GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to get reminder: %w", err)
		}
		if reminder == nil {
			return entity.ErrReminderNotFound
		}
		if !reminder.Delete() {
			return nil
		}

		if _, err := tx.Reminder().MarkDeleted(ctx, id); err != nil {
			return err
		}

		withdrawn, err = tx.Acknowledgement().DeletePendingByReminder(ctx, id)
		return err
	})
	if err != nil {
		return err
	}

	s.log.Info().Int64("reminder_id", id).Int64("withdrawn_acks", withdrawn).Msg("reminder deleted")
	return nil
}

func (s *reminderService) Stats(ctx context.Context) (entity.Stats, error) {
	reminders, err := s.dm.Reminder().CountByStatus(ctx)
	if err != nil {
		return entity.Stats{}, fmt.Errorf("failed to count reminders: %w", err)
	}

	acks, err := s.dm.Acknowledgement().CountByStatus(ctx)
	if err != nil {
		return entity.Stats{}, fmt.Errorf("failed to count acknowledgements: %w", err)
	}

	return entity.Stats{Reminders: reminders, Acknowledgements: acks}, nil
}

// IsAdmin reports whether userID may manage reminders: configured admins
// and Slack workspace admins or owners.
func (s *reminderService) IsAdmin(ctx context.Context, userID string) (bool, error) {
	if slices.Contains(s.opts.AdminUserIDs, userID) {
		return true, nil
	}

	user, err := s.slackClient.GetUserInfoContext(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("failed to get user info: %w", err)
	}

	return user.IsAdmin || user.IsOwner || user.IsPrimaryOwner, nil
}
