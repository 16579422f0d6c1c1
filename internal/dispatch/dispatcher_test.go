package dispatch

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/legacy-reminder/internal/model"
)

type recordingEmail struct {
	to, subject, body string
	err               error
}

func (r *recordingEmail) Send(_ context.Context, to, subject, body string) error {
	r.to, r.subject, r.body = to, subject, body
	return r.err
}

type recordingSMS struct {
	to, msg string
	err     error
}

func (r *recordingSMS) Send(_ context.Context, to, msg string) error {
	r.to, r.msg = to, msg
	return r.err
}

func testReminder() model.Reminder {
	return model.Reminder{
		Title:            "Car insurance",
		Description:      "Policy 42-A",
		Category:         model.CategoryInsurancePremium,
		NextReminderDate: time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
		Recipient:        model.Recipient{Email: "owner@example.com", Phone: "+15550100"},
	}
}

func TestRender(t *testing.T) {
	msg := Render(testReminder())

	assert.Equal(t, "Reminder: Car insurance", msg.Subject)
	assert.Equal(t, "Car insurance (Insurance Premium) is due on 2025-03-01.\n\nPolicy 42-A", msg.Body)

	r := testReminder()
	r.Description = "  "
	assert.Equal(t, "Car insurance (Insurance Premium) is due on 2025-03-01.", Render(r).Body)
}

func TestDispatcher_Dispatch(t *testing.T) {
	email := &recordingEmail{}
	sms := &recordingSMS{}

	d := NewDispatcher(map[model.NotificationType]Sender{
		model.NotificationEmail: NewEmailSender(email),
		model.NotificationSMS:   NewSMSSender(sms),
	})

	require.NoError(t, d.Dispatch(context.Background(), model.NotificationEmail, testReminder()))
	assert.Equal(t, "owner@example.com", email.to)
	assert.Equal(t, "Reminder: Car insurance", email.subject)

	require.NoError(t, d.Dispatch(context.Background(), model.NotificationSMS, testReminder()))
	assert.Equal(t, "+15550100", sms.to)
	assert.Contains(t, sms.msg, "is due on 2025-03-01")
}

func TestDispatcher_Errors(t *testing.T) {
	sms := &recordingSMS{err: errors.New("gateway down")}
	d := NewDispatcher(map[model.NotificationType]Sender{
		model.NotificationSMS: NewSMSSender(sms),
	})

	err := d.Dispatch(context.Background(), model.NotificationEmail, testReminder())
	assert.ErrorIs(t, err, ErrUnknownChannel)

	r := testReminder()
	r.Recipient.Phone = ""
	err = d.Dispatch(context.Background(), model.NotificationSMS, r)
	assert.ErrorIs(t, err, ErrNoRecipient)

	err = d.Dispatch(context.Background(), model.NotificationSMS, testReminder())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gateway down")
}
