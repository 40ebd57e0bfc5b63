package mail

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"eventPlanner/internal/notifier"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

type fakeSender struct {
	sent []*gomail.Message
	err  error
}

func (f *fakeSender) DialAndSend(m ...*gomail.Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, m...)
	return nil
}

func TestNotify(t *testing.T) {
	t.Parallel()

	sender := &fakeSender{}
	sink := New(sender, "planner@example.com", "me@example.com")

	r := notifier.Reminder{
		EventID:   "evt1",
		Title:     "Meetup",
		Location:  "Main Hall",
		LeadHours: 1,
		StartsAt:  time.Date(2025, 6, 10, 13, 0, 0, 0, time.UTC),
	}

	require.NoError(t, sink.Notify(context.Background(), r))
	require.Len(t, sender.sent, 1)

	m := sender.sent[0]
	assert.Equal(t, []string{"Upcoming Event: Meetup"}, m.GetHeader("Subject"))
	assert.Equal(t, []string{"me@example.com"}, m.GetHeader("To"))

	var buf bytes.Buffer
	_, err := m.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Starting in 1 hour at Main Hall")
}

func TestNotifyErrors(t *testing.T) {
	t.Parallel()

	sender := &fakeSender{err: errors.New("smtp down")}
	sink := New(sender, "a@example.com", "b@example.com")

	err := sink.Notify(context.Background(), notifier.Reminder{Title: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "smtp down")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, sink.Notify(ctx, notifier.Reminder{}), context.Canceled)
}
