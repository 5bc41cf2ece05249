package entity

import (
	"strings"
	"time"

	"github.com/teambition/rrule-go"
)

type ReminderStatus string

const (
	ReminderActive    ReminderStatus = "active"
	ReminderPaused    ReminderStatus = "paused"
	ReminderCompleted ReminderStatus = "completed"
	ReminderDeleted   ReminderStatus = "deleted"
)

// ReminderStatuses lists every reminder status.
var ReminderStatuses = []ReminderStatus{ReminderActive, ReminderPaused, ReminderCompleted, ReminderDeleted}

type Reminder struct {
	ID        int64
	UserID    string // Slack user the reminder is addressed to
	ChannelID string // Slack channel it is posted in
	TeamID    string
	CreatedBy string
	Message   string
	Frequency Frequency

	// Anchor fixes the schedule: the time of day and day of month are
	// re-derived from it on every advance. It is the creation time, or the
	// explicit first occurrence when one was given.
	Anchor  time.Time
	NextDue time.Time

	Status      ReminderStatus
	AckRequired bool

	// MaxOccurrences of 0 means the reminder recurs until deleted.
	MaxOccurrences int
	Occurrences    int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks the fields required to persist a new reminder.
func (r *Reminder) Validate(maxMessageLength int) error {
	if strings.TrimSpace(r.UserID) == "" || strings.TrimSpace(r.ChannelID) == "" {
		return ErrMissingTarget
	}
	if strings.TrimSpace(r.Message) == "" {
		return ErrEmptyMessage
	}
	if maxMessageLength > 0 && len([]rune(r.Message)) > maxMessageLength {
		return ErrMessageTooLong
	}
	if !r.Frequency.IsValid() {
		return ErrInvalidFrequency
	}
	if r.MaxOccurrences < 0 {
		return ErrInvalidOccurrences
	}
	return nil
}

// IsDue reports whether the reminder should fire at now.
func (r *Reminder) IsDue(now time.Time) bool {
	return r.Status == ReminderActive && !r.NextDue.After(now)
}

// Advance records one delivery and moves NextDue to the first occurrence
// strictly after now. Occurrences missed while the bot was offline are
// skipped rather than replayed. Calendar math runs in now's location.
func (r *Reminder) Advance(now time.Time) error {
	if !r.IsDue(now) {
		return ErrNotDue
	}

	next := r.NextDue.In(now.Location())
	for !next.After(now) {
		next = r.Frequency.Next(next, r.Anchor)
	}

	r.NextDue = next
	r.Occurrences++
	if r.MaxOccurrences > 0 && r.Occurrences >= r.MaxOccurrences {
		r.Status = ReminderCompleted
	}
	return nil
}

func (r *Reminder) Pause() error {
	if r.Status != ReminderActive {
		return ErrConflict
	}
	r.Status = ReminderPaused
	return nil
}

func (r *Reminder) Resume() error {
	if r.Status != ReminderPaused {
		return ErrConflict
	}
	r.Status = ReminderActive
	return nil
}

// Delete marks the reminder deleted. It reports false if it already was.
func (r *Reminder) Delete() bool {
	if r.Status == ReminderDeleted {
		return false
	}
	r.Status = ReminderDeleted
	return true
}

// RRule describes the schedule as an RFC 5545 recurrence rule, with the
// anchor expressed in loc. Monthly anchors past the 28th use BYSETPOS=-1 so
// short months land on their last day.
func (r *Reminder) RRule(loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	opt := rrule.ROption{
		Dtstart: r.Anchor.In(loc),
		Count:   r.MaxOccurrences,
	}

	switch r.Frequency {
	case FrequencyHourly:
		opt.Freq = rrule.HOURLY
	case FrequencyDaily:
		opt.Freq = rrule.DAILY
	case FrequencyWeekly:
		opt.Freq = rrule.WEEKLY
	case FrequencyMonthly:
		opt.Freq = rrule.MONTHLY
		if day := opt.Dtstart.Day(); day > 28 {
			for d := 28; d <= day; d++ {
				opt.Bymonthday = append(opt.Bymonthday, d)
			}
			opt.Bysetpos = []int{-1}
		}
	}

	return opt.RRuleString()
}
