package email

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/mail.v2"
)

type fakeDialer struct {
	sent []*mail.Message
	err  error
}

func (d *fakeDialer) DialAndSend(m ...*mail.Message) error {
	d.sent = append(d.sent, m...)
	return d.err
}

func TestClient_Send(t *testing.T) {
	fd := &fakeDialer{}
	c := NewClient("smtp.example.com", 587, "user", "pass", "noreply@example.com")

	var gotTimeout time.Duration
	c.newDialer = func(host string, port int, _, _ string, timeout time.Duration) dialer {
		assert.Equal(t, "smtp.example.com", host)
		assert.Equal(t, 587, port)
		gotTimeout = timeout
		return fd
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	err := c.Send(ctx, "owner@example.com", "Reminder", "Pay the premium")
	require.NoError(t, err)
	require.Len(t, fd.sent, 1)

	assert.Equal(t, []string{"owner@example.com"}, fd.sent[0].GetHeader("To"))
	assert.Equal(t, []string{"Reminder"}, fd.sent[0].GetHeader("Subject"))
	assert.Greater(t, gotTimeout, time.Duration(0))
}

func TestClient_Send_DialError(t *testing.T) {
	c := NewClient("smtp.example.com", 587, "", "", "noreply@example.com")
	c.newDialer = func(string, int, string, string, time.Duration) dialer {
		return &fakeDialer{err: errors.New("connection refused")}
	}

	err := c.Send(context.Background(), "owner@example.com", "s", "b")
	assert.ErrorContains(t, err, "connection refused")
}

func TestClient_Send_CancelledContext(t *testing.T) {
	c := NewClient("smtp.example.com", 587, "", "", "noreply@example.com")
	c.newDialer = func(string, int, string, string, time.Duration) dialer {
		t.Fatal("dialer must not be used with a cancelled context")
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, c.Send(ctx, "owner@example.com", "s", "b"), context.Canceled)
}
