package dispatch

import "context"

type emailClient interface {
	Send(ctx context.Context, to, subject, body string) error
}

type smsClient interface {
	Send(ctx context.Context, to, msg string) error
}

// EmailSender adapts an SMTP client to Sender.
type EmailSender struct {
	client emailClient
}

func NewEmailSender(c emailClient) *EmailSender {
	return &EmailSender{client: c}
}

func (s *EmailSender) Send(ctx context.Context, to string, msg Message) error {
	return s.client.Send(ctx, to, msg.Subject, msg.Body)
}

// SMSSender adapts an SMS gateway client to Sender. Only the body is sent.
type SMSSender struct {
	client smsClient
}

func NewSMSSender(c smsClient) *SMSSender {
	return &SMSSender{client: c}
}

func (s *SMSSender) Send(ctx context.Context, to string, msg Message) error {
	return s.client.Send(ctx, to, msg.Body)
}
