// Package dispatch delivers reminder notifications over the configured channels.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aliskhannn/legacy-reminder/internal/model"
)

var (
	ErrNoRecipient    = errors.New("recipient has no address for channel")
	ErrUnknownChannel = errors.New("unknown notification channel")
)

const dateLayout = "2006-01-02"

// Sender delivers a rendered notification to a single address.
type Sender interface {
	Send(ctx context.Context, to string, msg Message) error
}

// Message is a rendered reminder notification.
type Message struct {
	Subject string
	Body    string
}

// Dispatcher routes reminders to the sender registered for a channel.
type Dispatcher struct {
	senders map[model.NotificationType]Sender
}

// NewDispatcher creates a dispatcher with the given channel senders.
// Channels without a sender are rejected with ErrUnknownChannel.
func NewDispatcher(senders map[model.NotificationType]Sender) *Dispatcher {
	return &Dispatcher{senders: senders}
}

// Dispatch sends the reminder notification over the given channel.
func (d *Dispatcher) Dispatch(ctx context.Context, channel model.NotificationType, r model.Reminder) error {
	sender, ok := d.senders[channel]
	if !ok || sender == nil {
		return fmt.Errorf("%w: %s", ErrUnknownChannel, channel)
	}

	to := address(channel, r.Recipient)
	if to == "" {
		return fmt.Errorf("%w: %s", ErrNoRecipient, channel)
	}

	if err := sender.Send(ctx, to, Render(r)); err != nil {
		return fmt.Errorf("send %s notification: %w", channel, err)
	}

	return nil
}

func address(channel model.NotificationType, rcpt model.Recipient) string {
	switch channel {
	case model.NotificationEmail:
		return strings.TrimSpace(rcpt.Email)
	case model.NotificationSMS:
		return strings.TrimSpace(rcpt.Phone)
	default:
		return ""
	}
}

// Render builds the notification text for a reminder.
func Render(r model.Reminder) Message {
	var b strings.Builder

	fmt.Fprintf(&b, "%s (%s) is due on %s.", r.Title, r.Category, r.NextReminderDate.Format(dateLayout))
	if d := strings.TrimSpace(r.Description); d != "" {
		b.WriteString("\n\n")
		b.WriteString(d)
	}

	return Message{
		Subject: "Reminder: " + r.Title,
		Body:    b.String(),
	}
}
