package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownFrequency        = errors.New("unknown frequency")
	ErrUnknownStatus           = errors.New("unknown status")
	ErrUnknownCategory         = errors.New("unknown category")
	ErrUnknownNotificationType = errors.New("unknown notification type")
	ErrUnknownOutcome          = errors.New("unknown outcome")
)

// Frequency is the recurrence unit of a reminder.
type Frequency string

const (
	FrequencyOnce      Frequency = "Once"
	FrequencyDaily     Frequency = "Daily"
	FrequencyWeekly    Frequency = "Weekly"
	FrequencyMonthly   Frequency = "Monthly"
	FrequencyQuarterly Frequency = "Quarterly"
	FrequencyYearly    Frequency = "Yearly"
)

var frequencies = []Frequency{
	FrequencyOnce, FrequencyDaily, FrequencyWeekly,
	FrequencyMonthly, FrequencyQuarterly, FrequencyYearly,
}

// ParseFrequency returns the canonical Frequency for s.
func ParseFrequency(s string) (Frequency, error) {
	for _, f := range frequencies {
		if strings.EqualFold(strings.TrimSpace(s), string(f)) {
			return f, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFrequency, s)
}

// Status is the lifecycle state of a reminder.
type Status string

const (
	StatusActive    Status = "Active"
	StatusCompleted Status = "Completed"
	StatusSnoozed   Status = "Snoozed"
	StatusCancelled Status = "Cancelled"
)

var statuses = []Status{StatusActive, StatusCompleted, StatusSnoozed, StatusCancelled}

// ParseStatus returns the canonical Status for s.
func ParseStatus(s string) (Status, error) {
	for _, st := range statuses {
		if strings.EqualFold(strings.TrimSpace(s), string(st)) {
			return st, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
}

// Terminal reports whether the status can never become active again.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Category is what a reminder is about.
type Category string

const (
	CategoryInsurancePremium Category = "Insurance Premium"
	CategoryLoanPayment      Category = "Loan Payment"
	CategoryInvestment       Category = "Investment"
	CategoryDocumentRenewal  Category = "Document Renewal"
	CategoryHealthCheckup    Category = "Health Checkup"
	CategoryBirthday         Category = "Birthday"
	CategoryAnniversary      Category = "Anniversary"
	CategoryCustom           Category = "Custom"
)

var categories = []Category{
	CategoryInsurancePremium, CategoryLoanPayment, CategoryInvestment,
	CategoryDocumentRenewal, CategoryHealthCheckup, CategoryBirthday,
	CategoryAnniversary, CategoryCustom,
}

// ParseCategory returns the canonical Category for s.
// Underscores and dashes are accepted in place of spaces ("loan_payment").
func ParseCategory(s string) (Category, error) {
	norm := strings.NewReplacer("_", " ", "-", " ").Replace(strings.TrimSpace(s))
	for _, c := range categories {
		if strings.EqualFold(norm, string(c)) {
			return c, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// NotificationType is the channel of a notification attempt.
type NotificationType string

const (
	NotificationEmail NotificationType = "email"
	NotificationSMS   NotificationType = "sms"
	// NotificationSystem records a failed schedule write, not a delivery.
	NotificationSystem NotificationType = "system"
)

// ParseNotificationType returns the canonical NotificationType for s.
func ParseNotificationType(s string) (NotificationType, error) {
	for _, t := range []NotificationType{NotificationEmail, NotificationSMS, NotificationSystem} {
		if strings.EqualFold(strings.TrimSpace(s), string(t)) {
			return t, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownNotificationType, s)
}

// Outcome is the result of one notification attempt.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeFailed  Outcome = "failed"
)

// ParseOutcome returns the canonical Outcome for s.
func ParseOutcome(s string) (Outcome, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(OutcomeSuccess):
		return OutcomeSuccess, nil
	case string(OutcomeFailed):
		return OutcomeFailed, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownOutcome, s)
}
