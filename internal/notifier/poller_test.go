package notifier

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"eventPlanner/internal/lib/logger/handlers/slogdiscard"
	"eventPlanner/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	rsvps    []models.RSVPRecord
	events   map[string]*models.Event
	rsvpErr  error
	statuses []models.RSVPStatus
}

func (s *stubSource) UserRSVPs(_ context.Context, _ string, status models.RSVPStatus) ([]models.RSVPRecord, error) {
	s.statuses = append(s.statuses, status)
	if s.rsvpErr != nil {
		return nil, s.rsvpErr
	}
	return s.rsvps, nil
}

func (s *stubSource) FetchEvent(_ context.Context, id string) (*models.Event, error) {
	ev, ok := s.events[id]
	if !ok {
		return nil, errors.New("event not found")
	}
	return ev, nil
}

type stubGate struct {
	mu        sync.Mutex
	user      string
	connected bool
}

func (g *stubGate) CurrentUser() (string, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.user, g.user != ""
}

func (g *stubGate) set(user string, connected bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.user, g.connected = user, connected
}

func (g *stubGate) Connected() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.connected
}

type memBackend struct {
	marks map[string]int64
	saves int
}

func (b *memBackend) LoadMarks(context.Context) (map[string]int64, error) {
	out := make(map[string]int64, len(b.marks))
	for k, v := range b.marks {
		out[k] = v
	}
	return out, nil
}

func (b *memBackend) SaveMark(_ context.Context, key string, ms int64) error {
	if b.marks == nil {
		b.marks = map[string]int64{}
	}
	b.marks[key] = ms
	b.saves++
	return nil
}

var baseNow = time.Date(2025, 6, 10, 12, 0, 0, 0, time.Local)

func eventAt(id, title string, start time.Time) *models.Event {
	return &models.Event{
		ID: id,
		EventData: models.EventData{
			Title:     title,
			StartDate: start.Format(time.RFC3339),
			Location:  &models.Location{Name: "Main Hall"},
		},
	}
}

type harness struct {
	poller  *Poller
	source  *stubSource
	feed    *Feed
	backend *memBackend
	clock   *time.Time
}

func newHarness(t *testing.T, events ...*models.Event) *harness {
	t.Helper()

	source := &stubSource{events: map[string]*models.Event{}}
	for _, ev := range events {
		source.events[ev.ID] = ev
		source.rsvps = append(source.rsvps, models.RSVPRecord{EventID: ev.ID, RSVP: models.RSVP{Status: models.StatusYes}})
	}

	backend := &memBackend{}
	state := NewState(backend)
	require.NoError(t, state.Load(context.Background()))

	feed := NewFeed(10)
	gate := &stubGate{user: "pk-user", connected: true}

	p := New(slogdiscard.NewDiscardLogger(), source, gate, state, Options{}, feed)
	clock := baseNow
	p.now = func() time.Time { return clock }

	return &harness{poller: p, source: source, feed: feed, backend: backend, clock: &clock}
}

func TestTickFiresInsideTolerance(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		until     time.Duration
		wantFired int
		wantLead  int
	}{
		{name: "just under a day", until: 23*time.Hour + 58*time.Minute, wantFired: 1, wantLead: 24},
		{name: "just over an hour", until: time.Hour + 3*time.Minute, wantFired: 1, wantLead: 1},
		{name: "ten minutes off", until: 24*time.Hour + 10*time.Minute, wantFired: 0},
		{name: "between leads", until: 6 * time.Hour, wantFired: 0},
		{name: "already started", until: -time.Minute, wantFired: 0},
		{name: "starting now", until: 0, wantFired: 0},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			h := newHarness(t, eventAt("evt1", "Meetup", baseNow.Add(tc.until)))

			fired, err := h.poller.Tick(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tc.wantFired, fired)

			recent := h.feed.Recent()
			require.Len(t, recent, tc.wantFired)
			if tc.wantFired > 0 {
				assert.Equal(t, tc.wantLead, recent[0].LeadHours)
				assert.Equal(t, "Upcoming Event: Meetup", recent[0].Headline())
			}
		})
	}
}

func TestTickDoesNotRefireWithinCooldown(t *testing.T) {
	t.Parallel()

	h := newHarness(t, eventAt("evt1", "Meetup", baseNow.Add(23*time.Hour+58*time.Minute)))

	fired, err := h.poller.Tick(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, fired)

	*h.clock = h.clock.Add(time.Minute)

	fired, err = h.poller.Tick(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, fired)

	assert.Len(t, h.feed.Recent(), 1)
	assert.Equal(t, baseNow.UnixMilli(), h.backend.marks["evt1_24"])
	assert.Equal(t, 1, h.backend.saves)
}

func TestTickRefiresAfterCooldown(t *testing.T) {
	t.Parallel()

	h := newHarness(t, eventAt("evt1", "Meetup", baseNow.Add(time.Hour)))
	h.poller.opts.Cooldown = time.Minute
	h.poller.opts.Tolerance = time.Hour

	_, err := h.poller.Tick(context.Background())
	require.NoError(t, err)

	*h.clock = h.clock.Add(2 * time.Minute)

	fired, err := h.poller.Tick(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, fired)
}

func TestTickUsesLoadedMarks(t *testing.T) {
	t.Parallel()

	backend := &memBackend{marks: map[string]int64{"evt1_24": baseNow.Add(-10 * time.Minute).UnixMilli()}}
	state := NewState(backend)
	require.NoError(t, state.Load(context.Background()))

	source := &stubSource{
		events: map[string]*models.Event{"evt1": eventAt("evt1", "Meetup", baseNow.Add(24*time.Hour))},
		rsvps:  []models.RSVPRecord{{EventID: "evt1"}},
	}
	feed := NewFeed(5)
	p := New(slogdiscard.NewDiscardLogger(), source, &stubGate{user: "pk", connected: true}, state, Options{}, feed)
	p.now = func() time.Time { return baseNow }

	fired, err := p.Tick(context.Background())
	require.NoError(t, err)
	assert.Zero(t, fired)
	assert.Empty(t, feed.Recent())
}

func TestTickAsksOnlyForYes(t *testing.T) {
	t.Parallel()

	h := newHarness(t)

	_, err := h.poller.Tick(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.RSVPStatus{models.StatusYes}, h.source.statuses)
}

func TestTickSkipsMissingEvents(t *testing.T) {
	t.Parallel()

	h := newHarness(t, eventAt("evt1", "Meetup", baseNow.Add(time.Hour)))
	h.source.rsvps = append(h.source.rsvps, models.RSVPRecord{EventID: "gone"})

	fired, err := h.poller.Tick(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, fired)
}

func TestTickUnauthenticated(t *testing.T) {
	t.Parallel()

	h := newHarness(t, eventAt("evt1", "Meetup", baseNow.Add(time.Hour)))
	h.poller.gate = &stubGate{connected: true}

	fired, err := h.poller.Tick(context.Background())
	require.NoError(t, err)
	assert.Zero(t, fired)
	assert.Empty(t, h.source.statuses)
}

func TestTickSourceError(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.source.rsvpErr = errors.New("relay down")

	_, err := h.poller.Tick(context.Background())
	require.Error(t, err)
}

func TestRefreshFollowsGate(t *testing.T) {
	t.Parallel()

	gate := &stubGate{}
	p := New(slogdiscard.NewDiscardLogger(), &stubSource{}, gate, NewState(nil), Options{})
	ctx := context.Background()

	require.NoError(t, p.Refresh(ctx))
	assert.False(t, p.Polling())

	gate.set("pk", false)
	require.NoError(t, p.Refresh(ctx))
	assert.False(t, p.Polling(), "not connected")

	gate.set("pk", true)
	require.NoError(t, p.Refresh(ctx))
	assert.True(t, p.Polling())

	gate.set("", true)
	require.NoError(t, p.Refresh(ctx))
	assert.False(t, p.Polling())
}

func TestRefreshRejectsBadSchedule(t *testing.T) {
	t.Parallel()

	gate := &stubGate{user: "pk", connected: true}
	p := New(slogdiscard.NewDiscardLogger(), &stubSource{}, gate, NewState(nil), Options{Schedule: "not a schedule"})

	require.Error(t, p.Refresh(context.Background()))
	assert.False(t, p.Polling())
}

func TestReminderBody(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Starting in 1 hour", Reminder{LeadHours: 1}.Body())
	assert.Equal(t, "Starting in 24 hours at Main Hall", Reminder{LeadHours: 24, Location: "Main Hall"}.Body())
}

func TestFeedKeepsNewestFirst(t *testing.T) {
	t.Parallel()

	f := NewFeed(2)
	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, f.Notify(context.Background(), Reminder{EventID: id}))
	}

	recent := f.Recent()
	require.Len(t, recent, 2)
	assert.Equal(t, "c", recent[0].EventID)
	assert.Equal(t, "b", recent[1].EventID)
}

func TestMarkKey(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "evt1_24", MarkKey("evt1", 24))
}
