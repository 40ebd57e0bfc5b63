package planner

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"eventPlanner/internal/cache"
	"eventPlanner/internal/codec"
	"eventPlanner/internal/lib/logger/sl"
	"eventPlanner/internal/models"

	"github.com/nbd-wtf/go-nostr"
)

type RSVPSummary struct {
	RSVPs  []models.RSVPRecord `json:"rsvps"`
	Counts models.RSVPCounts   `json:"counts"`
}

// GetEvent returns the event with identifier id, from cache when fresh.
func (s *Service) GetEvent(ctx context.Context, id string) (*models.Event, error) {
	return cache.Fetch(ctx, s.cache, cache.Key{Scope: scopeEvent, Subject: id}, func(ctx context.Context) (*models.Event, error) {
		return s.FetchEvent(ctx, id)
	})
}

// FetchEvent is GetEvent without the cache.
func (s *Service) FetchEvent(ctx context.Context, id string) (*models.Event, error) {
	const op = "planner.FetchEvent"

	events, err := s.relay.Query(ctx, eventByIDFilter(id))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if len(events) == 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrEventNotFound)
	}

	// Identifiers are matched across authors and the newest version wins,
	// whoever signed it. Ownership checks compare against that pubkey.
	event, err := codec.ParseEvent(newest(events))
	if err != nil {
		s.log.Error("failed to parse event", slog.String("op", op), slog.String("event_id", id), sl.Err(err))
		return nil, fmt.Errorf("%s: %w: %v", op, ErrParseFailed, err)
	}

	return event, nil
}

// ListEvents returns the decodable events matching opts ordered by start
// time, earliest first.
func (s *Service) ListEvents(ctx context.Context, opts ListOptions) ([]models.Event, error) {
	key := cache.Key{Scope: scopeEvents, Variant: opts.variant(s.defaultLimit)}

	return cache.Fetch(ctx, s.cache, key, func(ctx context.Context) ([]models.Event, error) {
		const op = "planner.ListEvents"

		raw, err := s.relay.Query(ctx, opts.filter(s.defaultLimit))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		events := make([]models.Event, 0, len(raw))
		for _, ev := range raw {
			parsed, err := codec.ParseEvent(ev)
			if err != nil {
				s.log.Debug("dropping undecodable event", slog.String("op", op), slog.String("wire_id", ev.ID), sl.Err(err))
				continue
			}
			events = append(events, *parsed)
		}

		SortByStart(events)

		return events, nil
	})
}

// ViewOptions narrows the upcoming and past views.
type ViewOptions struct {
	Limit   int
	Authors []string
	Tags    []string
}

func (v ViewOptions) listOptions() ListOptions {
	opts := ListOptions{Limit: v.Limit, Authors: v.Authors}
	if len(v.Tags) > 0 {
		opts.Tags = map[string][]string{codec.TagCategory: v.Tags}
	}

	return opts
}

// StartOfDay returns local midnight of t's day.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// UpcomingEvents lists events published since local midnight.
func (s *Service) UpcomingEvents(ctx context.Context, v ViewOptions) ([]models.Event, error) {
	opts := v.listOptions()
	opts.Since = StartOfDay(s.now()).Unix()

	return s.ListEvents(ctx, opts)
}

// PastEvents lists events published before local midnight.
func (s *Service) PastEvents(ctx context.Context, v ViewOptions) ([]models.Event, error) {
	opts := v.listOptions()
	opts.Until = StartOfDay(s.now()).Unix()

	return s.ListEvents(ctx, opts)
}

// EventUpdates lists the updates referencing eventID, newest first.
func (s *Service) EventUpdates(ctx context.Context, eventID string) ([]models.Update, error) {
	key := cache.Key{Scope: scopeEventUpdates, Subject: eventID}

	return cache.Fetch(ctx, s.cache, key, func(ctx context.Context) ([]models.Update, error) {
		const op = "planner.EventUpdates"

		raw, err := s.relay.Query(ctx, updatesFilter(eventID))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		updates := make([]models.Update, 0, len(raw))
		for _, ev := range raw {
			u, err := codec.ParseUpdate(ev)
			if err != nil {
				s.log.Debug("dropping undecodable update", slog.String("op", op), sl.Err(err))
				continue
			}
			updates = append(updates, *u)
		}

		slices.SortStableFunc(updates, func(a, b models.Update) int {
			return compareInt64(b.CreatedAt, a.CreatedAt)
		})

		return updates, nil
	})
}

// EventRSVPs lists the current RSVP of every responder to an event and
// totals attendees per status.
func (s *Service) EventRSVPs(ctx context.Context, eventID, creatorID string) (*RSVPSummary, error) {
	key := cache.Key{Scope: scopeEventRSVPs, Subject: eventID, Variant: creatorID}

	return cache.Fetch(ctx, s.cache, key, func(ctx context.Context) (*RSVPSummary, error) {
		const op = "planner.EventRSVPs"

		raw, err := s.relay.Query(ctx, eventRSVPsFilter(eventID, creatorID))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		rsvps := latestPerKey(s.decodeRSVPs(op, raw), func(r models.RSVPRecord) string { return r.UserID })

		return Summarize(rsvps), nil
	})
}

// Summarize totals attendees per status.
func Summarize(rsvps []models.RSVPRecord) *RSVPSummary {
	summary := &RSVPSummary{RSVPs: rsvps}
	if summary.RSVPs == nil {
		summary.RSVPs = []models.RSVPRecord{}
	}

	for _, r := range rsvps {
		attendees := r.Attendees
		if attendees <= 0 {
			attendees = 1
		}
		summary.Counts.Add(r.Status, attendees)
	}

	return summary
}

// UserRSVP returns the current user's RSVP to an event, or nil when there is
// none or nobody is logged in.
func (s *Service) UserRSVP(ctx context.Context, eventID, creatorID string) (*models.RSVPRecord, error) {
	pk, ok := s.relay.CurrentUser()
	if !ok {
		return nil, nil
	}

	key := cache.Key{Scope: scopeUserRSVP, Subject: eventID, Variant: pk + "/" + creatorID}

	return cache.Fetch(ctx, s.cache, key, func(ctx context.Context) (*models.RSVPRecord, error) {
		const op = "planner.UserRSVP"

		filter := eventRSVPsFilter(eventID, creatorID)
		filter.Authors = []string{pk}

		raw, err := s.relay.Query(ctx, filter)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		rsvps := s.decodeRSVPs(op, raw)
		if len(rsvps) == 0 {
			return nil, nil
		}

		best := rsvps[0]
		for _, r := range rsvps[1:] {
			if r.CreatedAt > best.CreatedAt {
				best = r
			}
		}

		return &best, nil
	})
}

// UserRSVPs returns pubkey's current RSVP per event, optionally restricted to
// one status. It bypasses the cache.
func (s *Service) UserRSVPs(ctx context.Context, pubkey string, status models.RSVPStatus) ([]models.RSVPRecord, error) {
	const op = "planner.UserRSVPs"

	raw, err := s.relay.Query(ctx, userRSVPsFilter(pubkey))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rsvps := latestPerKey(s.decodeRSVPs(op, raw), func(r models.RSVPRecord) string { return r.EventID })
	if status == "" {
		return rsvps, nil
	}

	out := rsvps[:0]
	for _, r := range rsvps {
		if r.Status == status {
			out = append(out, r)
		}
	}

	return out, nil
}

func (s *Service) decodeRSVPs(op string, raw []*nostr.Event) []models.RSVPRecord {
	rsvps := make([]models.RSVPRecord, 0, len(raw))
	for _, ev := range raw {
		r, err := codec.ParseRSVP(ev)
		if err != nil {
			s.log.Debug("dropping undecodable rsvp", slog.String("op", op), sl.Err(err))
			continue
		}
		rsvps = append(rsvps, *r)
	}

	return rsvps
}

// latestPerKey keeps the newest record per key, in first-seen order.
func latestPerKey(rsvps []models.RSVPRecord, key func(models.RSVPRecord) string) []models.RSVPRecord {
	index := make(map[string]int, len(rsvps))
	out := make([]models.RSVPRecord, 0, len(rsvps))

	for _, r := range rsvps {
		k := key(r)
		if i, ok := index[k]; ok {
			if r.CreatedAt >= out[i].CreatedAt {
				out[i] = r
			}
			continue
		}
		index[k] = len(out)
		out = append(out, r)
	}

	return out
}

func newest(events []*nostr.Event) *nostr.Event {
	best := events[0]
	for _, ev := range events[1:] {
		if ev.CreatedAt > best.CreatedAt {
			best = ev
		}
	}

	return best
}

// SortByStart orders events by start time, earliest first. Events whose
// start cannot be parsed go last.
func SortByStart(events []models.Event) {
	slices.SortStableFunc(events, func(a, b models.Event) int {
		ta, okA := a.Start()
		tb, okB := b.Start()

		switch {
		case okA && okB:
			return ta.Compare(tb)
		case okA:
			return -1
		case okB:
			return 1
		}

		return 0
	})
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}

	return 0
}
