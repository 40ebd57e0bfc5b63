// Package planner reads and writes events, RSVPs and event updates through a
// relay, caching reads by query shape.
package planner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"eventPlanner/internal/cache"

	"github.com/google/uuid"
	"github.com/nbd-wtf/go-nostr"
)

var (
	ErrEventNotFound   = errors.New("event not found")
	ErrParseFailed     = errors.New("failed to parse event data")
	ErrUnauthenticated = errors.New("user not logged in")
	ErrForbidden       = errors.New("only the event creator can post updates")
	ErrInvalidRSVP     = errors.New("invalid rsvp")
)

const defaultLimit = 20

// Cache scopes.
const (
	scopeEvent        = "event"
	scopeEvents       = "events"
	scopeEventRSVPs   = "event-rsvps"
	scopeUserRSVP     = "user-rsvp"
	scopeEventUpdates = "event-updates"
)

// Relay is the query/publish collaborator. Publish signs the draft as the
// current user.
type Relay interface {
	Query(ctx context.Context, filter nostr.Filter) ([]*nostr.Event, error)
	Publish(ctx context.Context, draft nostr.Event) error
	CurrentUser() (pubkey string, ok bool)
}

type Service struct {
	log          *slog.Logger
	relay        Relay
	cache        *cache.Cache
	defaultLimit int
	now          func() time.Time
}

// New builds a Service. A nil cache disables caching.
func New(log *slog.Logger, relay Relay, c *cache.Cache, limit int) *Service {
	if limit <= 0 {
		limit = defaultLimit
	}

	return &Service{
		log:          log.With(slog.String("component", "planner")),
		relay:        relay,
		cache:        c,
		defaultLimit: limit,
		now:          time.Now,
	}
}

// CurrentUser returns the acting user's public key.
func (s *Service) CurrentUser() (string, bool) {
	return s.relay.CurrentUser()
}

func (s *Service) requireUser(op string) (string, error) {
	pk, ok := s.relay.CurrentUser()
	if !ok || pk == "" {
		return "", fmt.Errorf("%s: %w", op, ErrUnauthenticated)
	}

	return pk, nil
}

// newIdentifier derives a record identifier from the wall clock. The random
// suffix keeps two submissions within the same millisecond apart.
func (s *Service) newIdentifier(prefix string) string {
	return fmt.Sprintf("%s_%d_%s", prefix, s.now().UnixMilli(), uuid.NewString()[:8])
}
