// Package relay talks to Nostr relays on behalf of the planner.
package relay

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"eventPlanner/internal/lib/logger/sl"

	"github.com/nbd-wtf/go-nostr"
)

var (
	ErrUnknownRelay = errors.New("relay is not one of the configured presets")
	ErrNotConnected = errors.New("relay not connected")
)

type Preset struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Client is a websocket connection to a single relay, switchable among a
// fixed set of presets.
type Client struct {
	log     *slog.Logger
	signer  *Signer
	presets []Preset
	timeout time.Duration

	mu       sync.RWMutex
	url      string
	conn     *nostr.Relay
	onSwitch []func(url string)
}

func Connect(ctx context.Context, log *slog.Logger, url string, presets []Preset, signer *Signer, timeout time.Duration) (*Client, error) {
	const op = "relay.Connect"

	c := &Client{
		log:     log.With(slog.String("component", "relay")),
		signer:  signer,
		presets: presets,
		timeout: timeout,
		url:     url,
	}

	conn, err := c.dial(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	c.conn = conn

	c.log.Info("connected to relay", slog.String("url", url))

	return c, nil
}

func (c *Client) dial(ctx context.Context, url string) (*nostr.Relay, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	return nostr.RelayConnect(ctx, url)
}

// current returns a live connection, redialing once if the old one dropped.
func (c *Client) current(ctx context.Context) (*nostr.Relay, error) {
	c.mu.RLock()
	conn, url := c.conn, c.url
	c.mu.RUnlock()

	if conn != nil && conn.IsConnected() {
		return conn, nil
	}

	c.log.Warn("relay connection lost, redialing", slog.String("url", url))

	fresh, err := c.dial(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotConnected, err)
	}

	c.mu.Lock()
	if c.url != url {
		// switched meanwhile
		c.mu.Unlock()
		_ = fresh.Close()
		return c.current(ctx)
	}
	c.conn = fresh
	c.mu.Unlock()

	return fresh, nil
}

func (c *Client) Query(ctx context.Context, filter nostr.Filter) ([]*nostr.Event, error) {
	conn, err := c.current(ctx)
	if err != nil {
		return nil, err
	}

	events, err := conn.QuerySync(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("relay query: %w", err)
	}

	return events, nil
}

func (c *Client) Publish(ctx context.Context, draft nostr.Event) error {
	ev, err := c.signer.Finalize(draft)
	if err != nil {
		return err
	}

	conn, err := c.current(ctx)
	if err != nil {
		return err
	}

	if err := conn.Publish(ctx, ev); err != nil {
		return fmt.Errorf("relay publish: %w", err)
	}

	c.log.Debug("event published", slog.Int("kind", ev.Kind), slog.String("id", ev.ID))

	return nil
}

func (c *Client) CurrentUser() (string, bool) {
	pk := c.signer.Pubkey()
	return pk, pk != ""
}

func (c *Client) Connected() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.conn != nil && c.conn.IsConnected()
}

func (c *Client) URL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.url
}

func (c *Client) Presets() []Preset {
	return c.presets
}

// OnSwitch registers fn to run after the client moved to another relay.
func (c *Client) OnSwitch(fn func(url string)) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.onSwitch = append(c.onSwitch, fn)
}

// Switch connects to url, which must be a configured preset, and drops the
// previous connection.
func (c *Client) Switch(ctx context.Context, url string) error {
	const op = "relay.Switch"

	if !isPreset(c.presets, url) {
		return fmt.Errorf("%s: %w: %s", op, ErrUnknownRelay, url)
	}

	if url == c.URL() {
		return nil
	}

	conn, err := c.dial(ctx, url)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	c.mu.Lock()
	old := c.conn
	c.conn = conn
	c.url = url
	hooks := append([]func(string){}, c.onSwitch...)
	c.mu.Unlock()

	if old != nil {
		if err := old.Close(); err != nil {
			c.log.Warn("failed to close previous relay", sl.Err(err))
		}
	}

	c.log.Info("switched relay", slog.String("url", url))

	for _, fn := range hooks {
		fn(url)
	}

	return nil
}

func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		return nil
	}

	err := c.conn.Close()
	c.conn = nil

	return err
}

func isPreset(presets []Preset, url string) bool {
	for _, p := range presets {
		if p.URL == url {
			return true
		}
	}

	return false
}
