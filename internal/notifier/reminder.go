package notifier

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

type Reminder struct {
	EventID   string    `json:"eventId"`
	Title     string    `json:"title"`
	Location  string    `json:"location,omitempty"`
	LeadHours int       `json:"leadHours"`
	StartsAt  time.Time `json:"startsAt"`
	FiredAt   time.Time `json:"firedAt"`
}

func (r Reminder) Headline() string {
	return "Upcoming Event: " + r.Title
}

func (r Reminder) Body() string {
	lead := fmt.Sprintf("%d hours", r.LeadHours)
	if r.LeadHours == 1 {
		lead = "1 hour"
	}

	if r.Location != "" {
		return fmt.Sprintf("Starting in %s at %s", lead, r.Location)
	}

	return "Starting in " + lead
}

// Sink delivers a reminder to the user.
type Sink interface {
	Notify(ctx context.Context, r Reminder) error
}

type LogSink struct {
	log *slog.Logger
}

func NewLogSink(log *slog.Logger) *LogSink {
	return &LogSink{log: log.With(slog.String("component", "reminders"))}
}

func (s *LogSink) Notify(_ context.Context, r Reminder) error {
	s.log.Info(r.Headline(),
		slog.String("event_id", r.EventID),
		slog.String("body", r.Body()),
		slog.Int("lead_hours", r.LeadHours),
	)

	return nil
}

// Feed keeps the most recent reminders for clients that poll for them.
type Feed struct {
	mu    sync.RWMutex
	size  int
	items []Reminder
}

func NewFeed(size int) *Feed {
	if size <= 0 {
		size = 50
	}

	return &Feed{size: size}
}

func (f *Feed) Notify(_ context.Context, r Reminder) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.items = append(f.items, r)
	if len(f.items) > f.size {
		f.items = f.items[len(f.items)-f.size:]
	}

	return nil
}

// Recent returns the kept reminders, newest first.
func (f *Feed) Recent() []Reminder {
	f.mu.RLock()
	defer f.mu.RUnlock()

	out := make([]Reminder, len(f.items))
	for i, r := range f.items {
		out[len(f.items)-1-i] = r
	}

	return out
}
