package entity

import (
	"strings"
	"time"
)

type AckStatus string

const (
	AckPending           AckStatus = "pending"
	AckAcknowledged      AckStatus = "acknowledged"
	AckExpired           AckStatus = "expired"
	AckEnforcementFailed AckStatus = "enforcement_failed"
)

// AckStatuses lists every acknowledgement status.
var AckStatuses = []AckStatus{AckPending, AckAcknowledged, AckExpired, AckEnforcementFailed}

// MessageRef identifies one delivered Slack message.
type MessageRef struct {
	Channel   string
	Timestamp string
}

func (m MessageRef) IsZero() bool {
	return m.Channel == "" || m.Timestamp == ""
}

func (m MessageRef) String() string {
	return m.Channel + "/" + m.Timestamp
}

// Acknowledgement tracks whether the reminder's user reacted to one delivered
// message before ExpiresAt.
type Acknowledgement struct {
	ID            int64
	ReminderID    int64
	Message       MessageRef
	Status        AckStatus
	CreatedAt     time.Time
	ExpiresAt     time.Time // fixed at creation
	ResolvedAt    *time.Time
	FailureReason string
}

// Delivery is the result of posting one reminder. SentAt is when the
// acknowledgement window, if any, opened.
type Delivery struct {
	Message MessageRef
	SentAt  time.Time
}

func NewAcknowledgement(reminderID int64, ref MessageRef, createdAt time.Time, timeout time.Duration) *Acknowledgement {
	return &Acknowledgement{
		ReminderID: reminderID,
		Message:    ref,
		Status:     AckPending,
		CreatedAt:  createdAt,
		ExpiresAt:  AckDeadline(createdAt, timeout),
	}
}

// AckDeadline returns when an acknowledgement opened at sentAt closes. It is
// rounded up to a whole second so storing it never shortens the window.
func AckDeadline(sentAt time.Time, timeout time.Duration) time.Time {
	deadline := sentAt.Add(timeout)
	if whole := deadline.Truncate(time.Second); !whole.Equal(deadline) {
		return whole.Add(time.Second)
	}
	return deadline
}

// IsExpired reports whether the acknowledgement is still pending at or past its expiry.
func (a *Acknowledgement) IsExpired(now time.Time) bool {
	return a.Status == AckPending && !now.Before(a.ExpiresAt)
}

func (a *Acknowledgement) Acknowledge(now time.Time) error {
	if a.Status != AckPending {
		return ErrConflict
	}
	if !now.Before(a.ExpiresAt) {
		return ErrAckExpired
	}
	a.Status = AckAcknowledged
	a.ResolvedAt = &now
	return nil
}

func (a *Acknowledgement) Expire(now time.Time) error {
	if !a.IsExpired(now) {
		return ErrConflict
	}
	a.Status = AckExpired
	a.ResolvedAt = &now
	return nil
}

// FailEnforcement records that removing the user did not succeed. Only an
// expired acknowledgement can fail enforcement, and only once.
func (a *Acknowledgement) FailEnforcement(reason string) error {
	if a.Status != AckExpired {
		return ErrConflict
	}
	a.Status = AckEnforcementFailed
	a.FailureReason = reason
	return nil
}

// ReactionEvent is an inbound reaction on a Slack message.
type ReactionEvent struct {
	Message   MessageRef
	UserID    string
	Emoji     string
	Timestamp time.Time
}

// MatchReaction reports whether ev acknowledges ack: the tracked emoji, on the
// tracked message, from the reminder's user, while the window is still open.
// Anything else is ignored.
func MatchReaction(ev ReactionEvent, ack *Acknowledgement, targetUser, emoji string) bool {
	if ack == nil || ack.Status != AckPending {
		return false
	}
	if NormalizeEmoji(ev.Emoji) != NormalizeEmoji(emoji) {
		return false
	}
	if ev.Message != ack.Message || ev.UserID == "" || ev.UserID != targetUser {
		return false
	}
	return ev.Timestamp.Before(ack.ExpiresAt)
}

// NormalizeEmoji strips surrounding colons and skin-tone modifiers, so
// ":thumbsup::skin-tone-2:" and "thumbsup" compare equal.
func NormalizeEmoji(name string) string {
	name = strings.Trim(strings.TrimSpace(name), ":")
	if i := strings.Index(name, "::"); i >= 0 {
		name = name[:i]
	}
	return strings.ToLower(name)
}
