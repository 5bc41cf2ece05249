package service

import (
	"context"
	"fmt"
	"time"

	"github.com/diegoclair/slack-reminder-bot/internal/domain/contract"
	"github.com/diegoclair/slack-reminder-bot/internal/domain/entity"
	"github.com/rs/zerolog"
)

type acknowledgementService struct {
	dm   contract.DataManager
	opts Options
	log  zerolog.Logger
}

func newAcknowledgement(dm contract.DataManager, opts Options, log zerolog.Logger) *acknowledgementService {
	return &acknowledgementService{
		dm:   dm,
		opts: opts.withDefaults(),
		log:  log.With().Str("component", "acknowledgement").Logger(),
	}
}

// HandleReaction resolves the acknowledgement tracking the reacted message.
// Reactions that do not match (other emoji, other user, untracked message,
// closed window) are ignored and report false.
func (s *acknowledgementService) HandleReaction(ctx context.Context, event entity.ReactionEvent) (bool, error) {
	ack, err := s.dm.Acknowledgement().GetByMessage(ctx, event.Message)
	if err != nil {
		return false, fmt.Errorf("failed to get acknowledgement: %w", err)
	}
	if ack == nil {
		return false, nil
	}

	reminder, err := s.dm.Reminder().GetByID(ctx, ack.ReminderID)
	if err != nil {
		return false, fmt.Errorf("failed to get reminder: %w", err)
	}
	if reminder == nil {
		return false, nil
	}

	if !entity.MatchReaction(event, ack, reminder.UserID, s.opts.AckEmoji) {
		s.log.Debug().
			Int64("ack_id", ack.ID).
			Str("user_id", event.UserID).
			Str("emoji", event.Emoji).
			Msg("reaction ignored")
		return false, nil
	}

	if err := ack.Acknowledge(event.Timestamp); err != nil {
		return false, nil
	}

	ok, err := s.dm.Acknowledgement().Transition(ctx, ack, entity.AckPending)
	if err != nil {
		return false, fmt.Errorf("failed to acknowledge: %w", err)
	}
	if !ok {
		// expired by the scan loop first
		return false, nil
	}

	s.log.Info().
		Int64("ack_id", ack.ID).
		Int64("reminder_id", ack.ReminderID).
		Str("user_id", event.UserID).
		Msg("reminder acknowledged")

	return true, nil
}

func (s *acknowledgementService) ListByReminder(ctx context.Context, reminderID int64) ([]*entity.Acknowledgement, error) {
	acks, err := s.dm.Acknowledgement().ListByReminder(ctx, reminderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list acknowledgements: %w", err)
	}
	return acks, nil
}

// Cleanup purges resolved acknowledgements older than the retention period.
func (s *acknowledgementService) Cleanup(ctx context.Context, now time.Time) (int64, error) {
	cutoff := now.Add(-s.opts.AckRetention)

	n, err := s.dm.Acknowledgement().DeleteResolvedBefore(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to clean up acknowledgements: %w", err)
	}

	s.log.Info().Int64("deleted", n).Time("cutoff", cutoff).Msg("acknowledgement cleanup finished")
	return n, nil
}
