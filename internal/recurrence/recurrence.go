// Package recurrence computes reminder occurrences.
//
// Month-based frequencies keep the day of month and clamp it to the last day of
// the target month, so Jan 31 + 1 month is Feb 29 in a leap year and Feb 28
// otherwise. It never rolls over into the following month the way time.AddDate does.
package recurrence

import (
	"errors"
	"fmt"
	"time"

	"github.com/aliskhannn/legacy-reminder/internal/model"
)

var (
	ErrNoRecurrence = errors.New("frequency has no next occurrence")
	ErrNotActive    = errors.New("reminder is not active")
)

// Step is the schedule change for one due cycle.
type Step struct {
	Next     time.Time    // next occurrence; equals the current one when Complete is set
	Status   model.Status // status after the cycle
	Complete bool         // reminder reached its terminal state
}

// AddMonthsClamped adds n calendar months to t, clamping the day of month
// to the last valid day of the target month. Clock time and location are kept.
func AddMonthsClamped(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	hh, mm, ss := t.Clock()

	first := time.Date(y, m+time.Month(n), 1, 0, 0, 0, 0, t.Location())
	ty, tm, _ := first.Date()

	if last := daysIn(ty, tm, t.Location()); d > last {
		d = last
	}

	return time.Date(ty, tm, d, hh, mm, ss, t.Nanosecond(), t.Location())
}

func daysIn(year int, month time.Month, loc *time.Location) int {
	// day 0 of the next month is the last day of this one
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
}

// NextOccurrence returns from advanced by one unit of freq.
func NextOccurrence(freq model.Frequency, from time.Time) (time.Time, error) {
	switch freq {
	case model.FrequencyDaily:
		return from.AddDate(0, 0, 1), nil
	case model.FrequencyWeekly:
		return from.AddDate(0, 0, 7), nil
	case model.FrequencyMonthly:
		return AddMonthsClamped(from, 1), nil
	case model.FrequencyQuarterly:
		return AddMonthsClamped(from, 3), nil
	case model.FrequencyYearly:
		return AddMonthsClamped(from, 12), nil
	case model.FrequencyOnce:
		return time.Time{}, ErrNoRecurrence
	}

	return time.Time{}, fmt.Errorf("%w: %q", model.ErrUnknownFrequency, freq)
}

// Advance computes the schedule step for a reminder whose occurrence just fired.
func Advance(r model.Reminder) (Step, error) {
	if r.Status != model.StatusActive {
		return Step{}, fmt.Errorf("%w: %s", ErrNotActive, r.Status)
	}

	done := Step{Next: r.NextReminderDate, Status: model.StatusCompleted, Complete: true}

	if r.Frequency == model.FrequencyOnce {
		return done, nil
	}

	candidate, err := NextOccurrence(r.Frequency, r.NextReminderDate)
	if err != nil {
		return Step{}, err
	}

	if r.EndDate != nil && candidate.After(*r.EndDate) {
		return done, nil
	}

	return Step{Next: candidate, Status: model.StatusActive}, nil
}
