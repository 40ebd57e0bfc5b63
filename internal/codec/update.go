package codec

import (
	"eventPlanner/internal/models"

	"github.com/nbd-wtf/go-nostr"
)

// ParseUpdate decodes an event update. Its content is plain text.
func ParseUpdate(ev *nostr.Event) (*models.Update, error) {
	if err := checkKind(ev, KindUpdate); err != nil {
		return nil, err
	}

	id := tagValue(ev.Tags, TagIdentifier)
	if id == "" {
		return nil, ErrMissingIdentifier
	}

	eventID := tagValue(ev.Tags, TagEvent)
	if eventID == "" {
		return nil, ErrMissingEventRef
	}

	return &models.Update{
		ID:        id,
		EventID:   eventID,
		CreatorID: ev.PubKey,
		Content:   ev.Content,
		Type:      models.NormalizeUpdateType(tagValue(ev.Tags, TagType)),
		CreatedAt: int64(ev.CreatedAt),
	}, nil
}

func BuildUpdate(updateID, content, eventID, creatorPubkey string, typ models.UpdateType) nostr.Event {
	return nostr.Event{
		Kind: KindUpdate,
		Tags: nostr.Tags{
			{TagIdentifier, updateID},
			{TagEvent, eventID},
			{TagPubkey, creatorPubkey},
			{TagType, string(models.NormalizeUpdateType(string(typ)))},
		},
		Content: content,
	}
}
