package entity

import "errors"

var (
	// ErrConflict is returned when a lifecycle transition is not allowed from the current status.
	ErrConflict = errors.New("status conflict")

	ErrNotDue              = errors.New("reminder is not due")
	ErrInvalidFrequency    = errors.New("invalid frequency")
	ErrEmptyMessage        = errors.New("message cannot be empty")
	ErrMessageTooLong      = errors.New("message is too long")
	ErrMissingTarget       = errors.New("reminder needs a user and a channel")
	ErrInvalidOccurrences  = errors.New("occurrence count cannot be negative")
	ErrAckExpired          = errors.New("acknowledgement window has closed")
	ErrReminderNotFound    = errors.New("reminder not found")
	ErrReminderLimit       = errors.New("reminder limit reached")
	ErrForbidden           = errors.New("not allowed to manage reminders")
	ErrEnforcementDisabled = errors.New("automatic removal is disabled")
)
