package recurrence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/legacy-reminder/internal/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAddMonthsClamped(t *testing.T) {
	tests := []struct {
		name string
		from time.Time
		n    int
		want time.Time
	}{
		{"plain", date(2024, time.March, 15), 1, date(2024, time.April, 15)},
		{"jan 31 leap", date(2024, time.January, 31), 1, date(2024, time.February, 29)},
		{"jan 31 non-leap", date(2023, time.January, 31), 1, date(2023, time.February, 28)},
		{"mar 31 to apr", date(2024, time.March, 31), 1, date(2024, time.April, 30)},
		{"quarter from nov 30", date(2024, time.November, 30), 3, date(2025, time.February, 28)},
		{"year from feb 29", date(2024, time.February, 29), 12, date(2025, time.February, 28)},
		{"four years from feb 29", date(2024, time.February, 29), 48, date(2028, time.February, 29)},
		{"december rolls year", date(2024, time.December, 31), 1, date(2025, time.January, 31)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, AddMonthsClamped(tc.from, tc.n))
		})
	}
}

func TestAddMonthsClamped_KeepsClock(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	from := time.Date(2024, time.January, 31, 9, 30, 0, 0, loc)

	got := AddMonthsClamped(from, 1)

	assert.Equal(t, time.Date(2024, time.February, 29, 9, 30, 0, 0, loc), got)
}

func TestNextOccurrence(t *testing.T) {
	from := date(2024, time.January, 31)

	tests := []struct {
		freq model.Frequency
		want time.Time
	}{
		{model.FrequencyDaily, date(2024, time.February, 1)},
		{model.FrequencyWeekly, date(2024, time.February, 7)},
		{model.FrequencyMonthly, date(2024, time.February, 29)},
		{model.FrequencyQuarterly, date(2024, time.April, 30)},
		{model.FrequencyYearly, date(2025, time.January, 31)},
	}

	for _, tc := range tests {
		t.Run(string(tc.freq), func(t *testing.T) {
			got, err := NextOccurrence(tc.freq, from)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNextOccurrence_Once(t *testing.T) {
	_, err := NextOccurrence(model.FrequencyOnce, date(2024, time.January, 1))
	assert.ErrorIs(t, err, ErrNoRecurrence)
}

func TestNextOccurrence_Unknown(t *testing.T) {
	_, err := NextOccurrence(model.Frequency("Hourly"), date(2024, time.January, 1))
	assert.ErrorIs(t, err, model.ErrUnknownFrequency)
}

func TestAdvance_Once(t *testing.T) {
	r := model.Reminder{
		Frequency:        model.FrequencyOnce,
		Status:           model.StatusActive,
		StartDate:        date(2024, time.May, 1),
		NextReminderDate: date(2024, time.May, 1),
	}

	step, err := Advance(r)
	require.NoError(t, err)

	assert.True(t, step.Complete)
	assert.Equal(t, model.StatusCompleted, step.Status)
	assert.Equal(t, r.NextReminderDate, step.Next)
}

func TestAdvance_MonthlyLeapYear(t *testing.T) {
	r := model.Reminder{
		Frequency:        model.FrequencyMonthly,
		Status:           model.StatusActive,
		StartDate:        date(2024, time.January, 31),
		NextReminderDate: date(2024, time.January, 31),
	}

	step, err := Advance(r)
	require.NoError(t, err)

	assert.False(t, step.Complete)
	assert.Equal(t, model.StatusActive, step.Status)
	assert.Equal(t, date(2024, time.February, 29), step.Next)
}

func TestAdvance_YearlyPastEndDate(t *testing.T) {
	end := date(2025, time.January, 1)
	r := model.Reminder{
		Frequency:        model.FrequencyYearly,
		Status:           model.StatusActive,
		StartDate:        date(2024, time.February, 29),
		NextReminderDate: date(2024, time.February, 29),
		EndDate:          &end,
	}

	step, err := Advance(r)
	require.NoError(t, err)

	assert.True(t, step.Complete)
	assert.Equal(t, model.StatusCompleted, step.Status)
	assert.Equal(t, date(2024, time.February, 29), step.Next)
}

func TestAdvance_CandidateOnEndDateStaysActive(t *testing.T) {
	end := date(2024, time.June, 8)
	r := model.Reminder{
		Frequency:        model.FrequencyWeekly,
		Status:           model.StatusActive,
		StartDate:        date(2024, time.June, 1),
		NextReminderDate: date(2024, time.June, 1),
		EndDate:          &end,
	}

	step, err := Advance(r)
	require.NoError(t, err)

	assert.False(t, step.Complete)
	assert.Equal(t, end, step.Next)
}

func TestAdvance_NotActive(t *testing.T) {
	for _, st := range []model.Status{model.StatusCompleted, model.StatusCancelled, model.StatusSnoozed} {
		_, err := Advance(model.Reminder{Frequency: model.FrequencyDaily, Status: st})
		assert.ErrorIs(t, err, ErrNotActive, st)
	}
}

func TestAdvance_NeverBeforeStart(t *testing.T) {
	start := date(2023, time.August, 31)
	r := model.Reminder{
		Frequency:        model.FrequencyMonthly,
		Status:           model.StatusActive,
		StartDate:        start,
		NextReminderDate: start,
	}

	for i := 0; i < 24; i++ {
		step, err := Advance(r)
		require.NoError(t, err)
		require.True(t, step.Next.After(r.NextReminderDate))
		require.False(t, step.Next.Before(r.StartDate))
		r.NextReminderDate = step.Next
	}
}
