package relay

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/nbd-wtf/go-nostr"
)

// Memory is an in-process relay. It keeps one event per addressable
// coordinate (kind, pubkey, d tag) for kinds 30000-39999, as relays do.
type Memory struct {
	signer *Signer

	mu     sync.RWMutex
	events []*nostr.Event
}

func NewMemory(signer *Signer) *Memory {
	return &Memory{signer: signer}
}

func isAddressable(kind int) bool {
	return kind >= 30000 && kind < 40000
}

func identifier(ev *nostr.Event) string {
	for _, tag := range ev.Tags {
		if len(tag) >= 2 && tag[0] == "d" {
			return tag[1]
		}
	}

	return ""
}

func sameCoordinate(a, b *nostr.Event) bool {
	return a.Kind == b.Kind && a.PubKey == b.PubKey && identifier(a) == identifier(b)
}

// Store saves a signed event, replacing an older one at the same coordinate.
// It reports whether the event was kept.
func (m *Memory) Store(ev *nostr.Event) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if isAddressable(ev.Kind) {
		for i, existing := range m.events {
			if !sameCoordinate(existing, ev) {
				continue
			}
			if ev.CreatedAt < existing.CreatedAt {
				return false
			}
			m.events[i] = ev
			return true
		}
	}

	m.events = append(m.events, ev)

	return true
}

// Query returns matching events newest first, honoring filter.Limit.
func (m *Memory) Query(ctx context.Context, filter nostr.Filter) ([]*nostr.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	var out []*nostr.Event
	for _, ev := range m.events {
		if filter.Matches(ev) {
			out = append(out, ev)
		}
	}
	m.mu.RUnlock()

	slices.SortStableFunc(out, func(a, b *nostr.Event) int {
		return int(b.CreatedAt - a.CreatedAt)
	})

	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}

	return out, nil
}

func (m *Memory) Publish(ctx context.Context, draft nostr.Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	ev, err := m.signer.Finalize(draft)
	if err != nil {
		return err
	}

	m.Store(&ev)

	return nil
}

func (m *Memory) CurrentUser() (string, bool) {
	pk := m.signer.Pubkey()
	return pk, pk != ""
}

func (m *Memory) Connected() bool {
	return true
}

// MemoryURL is what a Memory relay reports as its address.
const MemoryURL = "memory://local"

func (m *Memory) URL() string {
	return MemoryURL
}

func (m *Memory) Presets() []Preset {
	return nil
}

// Switch always fails: a Memory relay has nowhere to go.
func (m *Memory) Switch(_ context.Context, url string) error {
	return fmt.Errorf("relay.Memory.Switch: %w: %s", ErrUnknownRelay, url)
}

func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.events)
}
