package relay

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/nbd-wtf/go-nostr"
	"github.com/nbd-wtf/go-nostr/nip19"
)

var ErrNoSigner = errors.New("no signing key configured")

// Signer holds the acting user's key. A nil *Signer means nobody is logged in.
type Signer struct {
	secretKey string
	pubkey    string
	now       func() time.Time
}

// NewSigner accepts a hex secret key or an nsec string.
func NewSigner(secretKey string) (*Signer, error) {
	const op = "relay.NewSigner"

	sk := strings.TrimSpace(secretKey)
	if sk == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrNoSigner)
	}

	if strings.HasPrefix(sk, "nsec") {
		prefix, value, err := nip19.Decode(sk)
		if err != nil {
			return nil, fmt.Errorf("%s: decode nsec: %w", op, err)
		}
		hex, ok := value.(string)
		if prefix != "nsec" || !ok {
			return nil, fmt.Errorf("%s: not an nsec key", op)
		}
		sk = hex
	}

	pk, err := nostr.GetPublicKey(sk)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Signer{secretKey: sk, pubkey: pk, now: time.Now}, nil
}

// GenerateSigner creates a signer with a fresh random key.
func GenerateSigner() (*Signer, error) {
	return NewSigner(nostr.GeneratePrivateKey())
}

func (s *Signer) Pubkey() string {
	if s == nil {
		return ""
	}

	return s.pubkey
}

// SetClock replaces the clock used for created_at.
func (s *Signer) SetClock(now func() time.Time) {
	s.now = now
}

// Finalize stamps draft with the signer's pubkey and the current time and
// signs it.
func (s *Signer) Finalize(draft nostr.Event) (nostr.Event, error) {
	if s == nil {
		return nostr.Event{}, ErrNoSigner
	}

	ev := draft
	ev.PubKey = s.pubkey
	ev.CreatedAt = nostr.Timestamp(s.now().Unix())
	if ev.Tags == nil {
		ev.Tags = nostr.Tags{}
	}

	if err := ev.Sign(s.secretKey); err != nil {
		return nostr.Event{}, fmt.Errorf("relay.Finalize: sign: %w", err)
	}

	return ev, nil
}
