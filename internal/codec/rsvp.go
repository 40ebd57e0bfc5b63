package codec

import (
	"encoding/json"
	"fmt"

	"eventPlanner/internal/models"

	"github.com/nbd-wtf/go-nostr"
)

const rsvpPrefixLen = 8

// RSVPIdentifier derives the identifier of userPubkey's RSVP to eventID.
// Every submission by the same user for the same event shares it, so relays
// keep only the newest one.
func RSVPIdentifier(userPubkey, eventID string) string {
	prefix := userPubkey
	if len(prefix) > rsvpPrefixLen {
		prefix = prefix[:rsvpPrefixLen]
	}

	return prefix + "_" + eventID
}

func ParseRSVP(ev *nostr.Event) (*models.RSVPRecord, error) {
	if err := checkKind(ev, KindRSVP); err != nil {
		return nil, err
	}

	var rsvp models.RSVP
	if err := decodePayload(ev.Content, &rsvp); err != nil {
		return nil, err
	}

	eventID := tagValue(ev.Tags, TagEvent)
	if eventID == "" {
		return nil, ErrMissingEventRef
	}

	rsvp.Status = models.RSVPStatus(resolve(string(rsvp.Status), tagValue(ev.Tags, TagStatus)))
	if !rsvp.Status.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, rsvp.Status)
	}

	if rsvp.Attendees <= 0 {
		rsvp.Attendees = 1
	}

	return &models.RSVPRecord{
		RSVP:      rsvp,
		EventID:   eventID,
		UserID:    ev.PubKey,
		CreatedAt: int64(ev.CreatedAt),
	}, nil
}

func BuildRSVP(rsvp models.RSVP, eventID, creatorPubkey, userPubkey string) (nostr.Event, error) {
	content, err := json.Marshal(rsvp)
	if err != nil {
		return nostr.Event{}, fmt.Errorf("codec: encode rsvp: %w", err)
	}

	return nostr.Event{
		Kind: KindRSVP,
		Tags: nostr.Tags{
			{TagIdentifier, RSVPIdentifier(userPubkey, eventID)},
			{TagEvent, eventID},
			{TagPubkey, creatorPubkey},
			{TagStatus, string(rsvp.Status)},
		},
		Content: string(content),
	}, nil
}
