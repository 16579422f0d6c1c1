package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationLogEntry is an append-only record of one notification attempt.
type NotificationLogEntry struct {
	ID               uuid.UUID        `json:"id"`
	ReminderID       uuid.UUID        `json:"reminder_id"`
	NotificationDate time.Time        `json:"notification_date"`
	NotificationType NotificationType `json:"notification_type"`
	Status           Outcome          `json:"status"`
	ErrorMessage     *string          `json:"error_message,omitempty"`
}

// NewLogEntry builds a log entry for an attempt that finished with err (nil on success).
func NewLogEntry(reminderID uuid.UUID, at time.Time, typ NotificationType, err error) NotificationLogEntry {
	entry := NotificationLogEntry{
		ReminderID:       reminderID,
		NotificationDate: at,
		NotificationType: typ,
		Status:           OutcomeSuccess,
	}

	if err != nil {
		msg := err.Error()
		entry.Status = OutcomeFailed
		entry.ErrorMessage = &msg
	}

	return entry
}

// RunResult summarizes one invocation of the recurrence engine.
type RunResult struct {
	Processed int `json:"processed"` // due reminders handled, including ones with failed dispatch
	Failed    int `json:"failed"`    // reminders with a failed dispatch or write
	Skipped   int `json:"skipped"`   // reminders changed by someone else since the due-set fetch
}
