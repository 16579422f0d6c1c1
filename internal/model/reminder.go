package model

import (
	"time"

	"github.com/google/uuid"
)

// Reminder represents a user-owned scheduled reminder.
type Reminder struct {
	ID               uuid.UUID  `json:"id"`                 // unique identifier of the reminder
	UserID           uuid.UUID  `json:"user_id"`            // owning user
	Title            string     `json:"title"`              // short title shown in notifications
	Description      string     `json:"description"`        // free text
	Category         Category   `json:"reminder_type"`      // what the reminder is about
	Frequency        Frequency  `json:"frequency"`          // recurrence unit
	StartDate        time.Time  `json:"start_date"`         // first occurrence
	EndDate          *time.Time `json:"end_date,omitempty"` // last allowed occurrence, if any
	NextReminderDate time.Time  `json:"next_reminder_date"` // next due occurrence
	Status           Status     `json:"status"`             // lifecycle state
	NotifyEmail      bool       `json:"notification_email"` // send email when due
	NotifySMS        bool       `json:"notification_sms"`   // send SMS when due
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`

	// Recipient is filled by the due-set query only.
	Recipient Recipient `json:"-"`
}

// Recipient holds the owner's contact addresses.
type Recipient struct {
	Email string
	Phone string
}

// Channels returns the notification channels enabled on the reminder, email first.
func (r Reminder) Channels() []NotificationType {
	var ch []NotificationType
	if r.NotifyEmail {
		ch = append(ch, NotificationEmail)
	}
	if r.NotifySMS {
		ch = append(ch, NotificationSMS)
	}

	return ch
}

// IsDue reports whether the reminder is active and its next occurrence is not after now.
func (r Reminder) IsDue(now time.Time) bool {
	return r.Status == StatusActive && !r.NextReminderDate.After(now)
}
