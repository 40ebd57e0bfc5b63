// Package notifier reminds the current user of events they said yes to.
package notifier

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"eventPlanner/internal/lib/logger/sl"
	"eventPlanner/internal/models"

	"github.com/robfig/cron/v3"
)

// Source answers the two questions a tick asks.
type Source interface {
	UserRSVPs(ctx context.Context, pubkey string, status models.RSVPStatus) ([]models.RSVPRecord, error)
	FetchEvent(ctx context.Context, id string) (*models.Event, error)
}

// Gate tells whether polling makes sense right now.
type Gate interface {
	CurrentUser() (pubkey string, ok bool)
	Connected() bool
}

type Options struct {
	Schedule  string
	LeadHours []int
	Tolerance time.Duration
	Cooldown  time.Duration
}

func (o Options) withDefaults() Options {
	if o.Schedule == "" {
		o.Schedule = "@every 1m"
	}
	if len(o.LeadHours) == 0 {
		o.LeadHours = []int{24, 1}
	}
	if o.Tolerance <= 0 {
		o.Tolerance = 5 * time.Minute
	}
	if o.Cooldown <= 0 {
		o.Cooldown = time.Hour
	}

	return o
}

// Poller is idle until a user is logged in and the relay is connected, then
// runs a tick on Schedule.
type Poller struct {
	log    *slog.Logger
	source Source
	gate   Gate
	state  *State
	sinks  []Sink
	opts   Options
	now    func() time.Time

	mu     sync.Mutex
	cron   *cron.Cron
	cancel context.CancelFunc

	tickMu sync.Mutex
}

func New(log *slog.Logger, source Source, gate Gate, state *State, opts Options, sinks ...Sink) *Poller {
	return &Poller{
		log:    log.With(slog.String("component", "notifier")),
		source: source,
		gate:   gate,
		state:  state,
		sinks:  sinks,
		opts:   opts.withDefaults(),
		now:    time.Now,
	}
}

func (p *Poller) Polling() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.cron != nil
}

// Refresh starts or stops polling to match the gate.
func (p *Poller) Refresh(ctx context.Context) error {
	_, loggedIn := p.gate.CurrentUser()
	want := loggedIn && p.gate.Connected()

	switch {
	case want && !p.Polling():
		return p.start(ctx)
	case !want && p.Polling():
		p.log.Info("stopping reminder polling", slog.Bool("logged_in", loggedIn))
		p.Stop()
	}

	return nil
}

func (p *Poller) start(ctx context.Context) error {
	const op = "notifier.start"

	runCtx, cancel := context.WithCancel(ctx)

	c := cron.New()
	if _, err := c.AddFunc(p.opts.Schedule, func() { p.runTick(runCtx) }); err != nil {
		cancel()
		return fmt.Errorf("%s: bad schedule %q: %w", op, p.opts.Schedule, err)
	}

	p.mu.Lock()
	if p.cron != nil {
		p.mu.Unlock()
		cancel()
		return nil
	}
	p.cron = c
	p.cancel = cancel
	p.mu.Unlock()

	c.Start()
	go p.runTick(runCtx)

	p.log.Info("reminder polling started", slog.String("schedule", p.opts.Schedule))

	return nil
}

// Stop disarms the schedule and waits for a running tick to finish.
func (p *Poller) Stop() {
	p.mu.Lock()
	c, cancel := p.cron, p.cancel
	p.cron, p.cancel = nil, nil
	p.mu.Unlock()

	if c == nil {
		return
	}

	cancel()
	<-c.Stop().Done()
}

// Watch re-evaluates the gate every interval until ctx is done.
func (p *Poller) Watch(ctx context.Context, interval time.Duration) {
	if err := p.Refresh(ctx); err != nil {
		p.log.Error("failed to start reminder polling", sl.Err(err))
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := p.Refresh(ctx); err != nil {
				p.log.Error("failed to start reminder polling", sl.Err(err))
			}
		case <-ctx.Done():
			p.Stop()
			return
		}
	}
}

func (p *Poller) runTick(ctx context.Context) {
	if !p.tickMu.TryLock() {
		p.log.Debug("previous tick still running, skipping")
		return
	}
	defer p.tickMu.Unlock()

	fired, err := p.Tick(ctx)
	if err != nil {
		p.log.Error("failed to check reminders", sl.Err(err))
		return
	}
	if fired > 0 {
		p.log.Debug("reminders fired", slog.Int("count", fired))
	}
}

// Tick checks every event the user said yes to and fires the reminders that
// are due. It returns how many fired.
func (p *Poller) Tick(ctx context.Context) (int, error) {
	const op = "notifier.Tick"

	pubkey, ok := p.gate.CurrentUser()
	if !ok {
		return 0, nil
	}

	rsvps, err := p.source.UserRSVPs(ctx, pubkey, models.StatusYes)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	fired := 0
	for _, rsvp := range rsvps {
		if err := ctx.Err(); err != nil {
			return fired, err
		}

		event, err := p.source.FetchEvent(ctx, rsvp.EventID)
		if err != nil {
			p.log.Debug("skipping event", slog.String("event_id", rsvp.EventID), sl.Err(err))
			continue
		}

		if p.check(ctx, event) {
			fired++
		}
	}

	return fired, nil
}

// check fires at most one reminder for event.
func (p *Poller) check(ctx context.Context, event *models.Event) bool {
	now := p.now()

	start, ok := event.Start()
	if !ok || !start.After(now) {
		return false
	}

	hoursUntil := start.Sub(now).Hours()

	for _, lead := range p.opts.LeadHours {
		if math.Abs(hoursUntil-float64(lead)) >= p.opts.Tolerance.Hours() {
			continue
		}

		key := MarkKey(event.ID, lead)
		if last, seen := p.state.Get(key); seen && now.Sub(last) <= p.opts.Cooldown {
			continue
		}

		if err := p.state.Mark(ctx, key, now); err != nil {
			p.log.Error("failed to persist reminder mark", slog.String("key", key), sl.Err(err))
		}

		r := Reminder{
			EventID:   event.ID,
			Title:     event.Title,
			LeadHours: lead,
			StartsAt:  start,
			FiredAt:   now,
		}
		if event.Location != nil {
			r.Location = event.Location.Name
		}

		p.deliver(ctx, r)

		return true
	}

	return false
}

func (p *Poller) deliver(ctx context.Context, r Reminder) {
	for _, s := range p.sinks {
		if err := s.Notify(ctx, r); err != nil {
			p.log.Error("failed to deliver reminder", slog.String("event_id", r.EventID), sl.Err(err))
		}
	}
}
