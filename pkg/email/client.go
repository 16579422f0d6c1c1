// Package email sends plain-text notifications over SMTP.
package email

import (
	"context"
	"fmt"
	"time"

	"gopkg.in/mail.v2"
)

// dialer is the part of mail.Dialer the client uses.
type dialer interface {
	DialAndSend(m ...*mail.Message) error
}

// Client sends emails through a single SMTP relay.
type Client struct {
	smtpHost string
	smtpPort int
	username string
	password string
	from     string

	newDialer func(host string, port int, username, password string, timeout time.Duration) dialer
}

// NewClient creates a new SMTP client.
func NewClient(smtpHost string, smtpPort int, username, password, from string) *Client {
	return &Client{
		smtpHost:  smtpHost,
		smtpPort:  smtpPort,
		username:  username,
		password:  password,
		from:      from,
		newDialer: newMailDialer,
	}
}

func newMailDialer(host string, port int, username, password string, timeout time.Duration) dialer {
	d := mail.NewDialer(host, port, username, password)
	if timeout > 0 {
		d.Timeout = timeout
	}

	return d
}

// Send delivers a plain-text message to the given address.
//
// The SMTP dial timeout is taken from the context deadline when one is set.
func (c *Client) Send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	message := mail.NewMessage()

	message.SetHeader("From", c.from)
	message.SetHeader("To", to)
	message.SetHeader("Subject", subject)

	message.SetBody("text/plain", body)

	var timeout time.Duration
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
	}

	if err := c.newDialer(c.smtpHost, c.smtpPort, c.username, c.password, timeout).DialAndSend(message); err != nil {
		return fmt.Errorf("send email: %w", err)
	}

	return nil
}
