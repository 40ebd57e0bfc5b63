// Package codec maps tagged Nostr events to planner records and back.
//
// Fields promoted to tags exist for relay-side queryability. When a field is
// present both as a tag and in the JSON content, the tag wins.
package codec

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/nbd-wtf/go-nostr"
)

const (
	KindEvent  = 31000
	KindRSVP   = 31001
	KindUpdate = 31002
)

const (
	TagIdentifier = "d"
	TagSubject    = "subject"
	TagStart      = "start"
	TagEnd        = "end"
	TagLocation   = "location"
	TagImage      = "image"
	TagCategory   = "t"
	TagPubkey     = "p"
	TagRelay      = "r"
	TagEvent      = "e"
	TagType       = "type"
	TagStatus     = "status"
)

var (
	ErrInvalidKind       = errors.New("unexpected event kind")
	ErrInvalidPayload    = errors.New("invalid content payload")
	ErrMissingIdentifier = errors.New("missing identifier tag")
	ErrMissingStart      = errors.New("missing start date")
	ErrMissingEventRef   = errors.New("missing event reference tag")
	ErrInvalidStatus     = errors.New("invalid rsvp status")
)

// tagValue returns the value of the first tag called name that carries a
// non-empty value.
func tagValue(tags nostr.Tags, name string) string {
	for _, tag := range tags {
		if len(tag) >= 2 && tag[0] == name && tag[1] != "" {
			return tag[1]
		}
	}

	return ""
}

func tagValues(tags nostr.Tags, name string) []string {
	var out []string
	for _, tag := range tags {
		if len(tag) >= 2 && tag[0] == name {
			out = append(out, tag[1])
		}
	}

	return out
}

// resolve returns the first non-empty candidate, in priority order.
func resolve(candidates ...string) string {
	for _, c := range candidates {
		if c != "" {
			return c
		}
	}

	return ""
}

func decodePayload(content string, v any) error {
	if err := json.Unmarshal([]byte(content), v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	return nil
}

func checkKind(ev *nostr.Event, kind int) error {
	if ev.Kind != kind {
		return fmt.Errorf("%w: got %d, want %d", ErrInvalidKind, ev.Kind, kind)
	}

	return nil
}
