package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/diegoclair/slack-reminder-bot/internal/domain/contract"
	"github.com/diegoclair/slack-reminder-bot/internal/domain/entity"
	"github.com/diegoclair/slack-reminder-bot/internal/logger"
	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// ScanResult counts what one tick did.
type ScanResult struct {
	Delivered         int
	DeliveryFailed    int
	Skipped           int
	AcksCreated       int
	Expired           int
	Enforced          int
	EnforcementFailed int
}

type scheduler struct {
	dm         contract.DataManager
	gateway    contract.Gateway
	ackService contract.AcknowledgementService
	opts       Options
	log        zerolog.Logger
	now        func() time.Time

	// tickMu serialises Tick between cron and manual callers
	tickMu sync.Mutex

	mu      sync.Mutex
	cron    *cron.Cron
	running bool
	catchUp sync.WaitGroup
}

func newScheduler(dm contract.DataManager, gateway contract.Gateway, ackService contract.AcknowledgementService, opts Options, log zerolog.Logger) *scheduler {
	return &scheduler{
		dm:         dm,
		gateway:    gateway,
		ackService: ackService,
		opts:       opts.withDefaults(),
		log:        log.With().Str("component", "scheduler").Logger(),
		now:        time.Now,
	}
}

// Start schedules the scan loop and the acknowledgement cleanup, and runs one
// catch-up tick in the background so a backlog does not hold up the caller.
func (s *scheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return nil
	}

	cl := logger.NewCronLogger(s.log)
	c := cron.New(
		cron.WithLocation(s.opts.Location),
		cron.WithLogger(cl),
		cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
	)

	c.Schedule(cron.Every(s.opts.TickInterval), cron.FuncJob(s.runTick))
	if _, err := c.AddFunc(s.opts.CleanupSchedule, s.runCleanup); err != nil {
		return fmt.Errorf("invalid cleanup schedule %q: %w", s.opts.CleanupSchedule, err)
	}

	s.log.Info().
		Dur("tick_interval", s.opts.TickInterval).
		Str("cleanup_schedule", s.opts.CleanupSchedule).
		Msg("scheduler starting")

	s.catchUp.Add(1)
	go func() {
		defer s.catchUp.Done()
		s.runTick()
	}()

	c.Start()
	s.cron = c
	s.running = true
	return nil
}

// Stop stops scheduling new ticks and waits for running ones, the catch-up
// tick included, to finish.
func (s *scheduler) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	c := s.cron
	s.running = false
	s.mu.Unlock()

	s.log.Info().Msg("scheduler stopping")
	<-c.Stop().Done()
	s.catchUp.Wait()
	s.log.Info().Msg("scheduler stopped")
}

func (s *scheduler) runTick() {
	s.Tick(context.Background(), s.now())
}

func (s *scheduler) runCleanup() {
	if _, err := s.ackService.Cleanup(context.Background(), s.now()); err != nil {
		s.log.Error().Err(err).Msg("acknowledgement cleanup failed")
	}
}

// Tick delivers every due reminder and then expires every overdue
// acknowledgement, in ascending id order. A failing item is logged and
// counted; it never stops the rest of the tick.
func (s *scheduler) Tick(ctx context.Context, now time.Time) ScanResult {
	s.tickMu.Lock()
	defer s.tickMu.Unlock()

	now = now.In(s.opts.Location)
	log := s.log.With().Str("scan_id", uuid.NewString()).Logger()
	start := time.Now()

	var res ScanResult
	s.deliverDue(ctx, log, now, &res)
	s.expireOverdue(ctx, log, now, &res)

	event := log.Debug()
	if res != (ScanResult{}) {
		event = log.Info()
	}
	event.
		Int("delivered", res.Delivered).
		Int("delivery_failed", res.DeliveryFailed).
		Int("skipped", res.Skipped).
		Int("acks_created", res.AcksCreated).
		Int("expired", res.Expired).
		Int("enforced", res.Enforced).
		Int("enforcement_failed", res.EnforcementFailed).
		Dur("took", time.Since(start)).
		Msg("scan finished")

	return res
}

func (s *scheduler) deliverDue(ctx context.Context, log zerolog.Logger, now time.Time, res *ScanResult) {
	reminders, err := s.dm.Reminder().GetDue(ctx, now)
	if err != nil {
		log.Error().Err(err).Msg("failed to load due reminders")
		return
	}

	for _, reminder := range reminders {
		s.deliver(ctx, log.With().Int64("reminder_id", reminder.ID).Logger(), reminder, now, res)
	}
}

// deliver claims the occurrence by advancing the stored schedule first and
// only then posts the message. A crash or a failed post loses that occurrence
// instead of repeating it.
func (s *scheduler) deliver(ctx context.Context, log zerolog.Logger, reminder *entity.Reminder, now time.Time, res *ScanResult) {
	expected := reminder.NextDue
	if err := reminder.Advance(now); err != nil {
		res.Skipped++
		return
	}

	claimed, err := s.dm.Reminder().Advance(ctx, reminder, expected)
	if err != nil {
		log.Error().Err(err).Msg("failed to advance reminder")
		res.DeliveryFailed++
		return
	}
	if !claimed {
		log.Debug().Msg("reminder changed since it was selected")
		res.Skipped++
		return
	}

	delivery, err := s.gateway.Deliver(ctx, reminder)
	if err != nil {
		log.Error().Err(err).Time("next_due", reminder.NextDue).Msg("failed to deliver reminder")
		res.DeliveryFailed++
		return
	}
	res.Delivered++

	ref := delivery.Message
	log.Info().
		Str("message", ref.String()).
		Time("next_due", reminder.NextDue).
		Str("status", string(reminder.Status)).
		Msg("reminder delivered")

	if !reminder.AckRequired {
		return
	}
	if ref.IsZero() {
		log.Warn().Msg("delivered message has no reference, acknowledgement not tracked")
		return
	}

	// the stored deadline must match the one shown in the message
	sentAt := delivery.SentAt
	if sentAt.IsZero() {
		sentAt = now
	}
	ack := entity.NewAcknowledgement(reminder.ID, ref, sentAt, s.opts.AckTimeout)
	if err := s.dm.Acknowledgement().Create(ctx, ack); err != nil {
		log.Error().Err(err).Str("message", ref.String()).Msg("failed to track acknowledgement")
		return
	}
	res.AcksCreated++

	if err := s.gateway.RequestAcknowledgement(ctx, ref); err != nil {
		// the user can still add the reaction themselves
		log.Warn().Err(err).Int64("ack_id", ack.ID).Msg("failed to add acknowledgement reaction")
	}
}

func (s *scheduler) expireOverdue(ctx context.Context, log zerolog.Logger, now time.Time, res *ScanResult) {
	acks, err := s.dm.Acknowledgement().GetExpired(ctx, now)
	if err != nil {
		log.Error().Err(err).Msg("failed to load expired acknowledgements")
		return
	}

	for _, ack := range acks {
		s.expire(ctx, log.With().Int64("ack_id", ack.ID).Int64("reminder_id", ack.ReminderID).Logger(), ack, now, res)
	}
}

// expire closes one overdue acknowledgement and removes the user exactly once.
func (s *scheduler) expire(ctx context.Context, log zerolog.Logger, ack *entity.Acknowledgement, now time.Time, res *ScanResult) {
	reminder, err := s.dm.Reminder().GetByID(ctx, ack.ReminderID)
	if err != nil {
		log.Error().Err(err).Msg("failed to load reminder for acknowledgement")
		return
	}

	if reminder == nil || reminder.Status == entity.ReminderDeleted {
		if _, err := s.dm.Acknowledgement().DeletePendingByReminder(ctx, ack.ReminderID); err != nil {
			log.Error().Err(err).Msg("failed to withdraw acknowledgement of deleted reminder")
		}
		res.Skipped++
		return
	}

	if err := ack.Expire(now); err != nil {
		res.Skipped++
		return
	}

	ok, err := s.dm.Acknowledgement().Transition(ctx, ack, entity.AckPending)
	if err != nil {
		log.Error().Err(err).Msg("failed to expire acknowledgement")
		return
	}
	if !ok {
		log.Debug().Msg("acknowledgement resolved concurrently")
		res.Skipped++
		return
	}
	res.Expired++

	enforceErr := s.gateway.Enforce(ctx, reminder)
	if enforceErr == nil {
		res.Enforced++
		return
	}

	res.EnforcementFailed++
	if errors.Is(enforceErr, entity.ErrEnforcementDisabled) {
		log.Info().Str("user_id", reminder.UserID).Msg("acknowledgement expired, removal disabled")
	} else {
		log.Error().Err(enforceErr).Str("user_id", reminder.UserID).Msg("failed to remove user")
	}

	if err := ack.FailEnforcement(enforceErr.Error()); err != nil {
		return
	}
	if _, err := s.dm.Acknowledgement().Transition(ctx, ack, entity.AckExpired); err != nil {
		log.Error().Err(err).Msg("failed to record enforcement failure")
	}
}
