package codec

import (
	"encoding/json"
	"fmt"

	"eventPlanner/internal/models"

	"github.com/nbd-wtf/go-nostr"
)

func ParseEvent(ev *nostr.Event) (*models.Event, error) {
	if err := checkKind(ev, KindEvent); err != nil {
		return nil, err
	}

	var data models.EventData
	if err := decodePayload(ev.Content, &data); err != nil {
		return nil, err
	}

	id := tagValue(ev.Tags, TagIdentifier)
	if id == "" {
		return nil, ErrMissingIdentifier
	}

	data.Title = resolve(tagValue(ev.Tags, TagSubject), data.Title)
	data.StartDate = resolve(tagValue(ev.Tags, TagStart), data.StartDate)
	data.EndDate = resolve(tagValue(ev.Tags, TagEnd), data.EndDate)
	data.Image = resolve(tagValue(ev.Tags, TagImage), data.Image)

	if data.StartDate == "" {
		return nil, ErrMissingStart
	}

	if name := tagValue(ev.Tags, TagLocation); name != "" {
		if data.Location == nil {
			data.Location = &models.Location{}
		}
		data.Location.Name = name
	}

	if categories := tagValues(ev.Tags, TagCategory); len(categories) > 0 {
		data.Tags = categories
	}

	return &models.Event{
		EventData: data,
		ID:        id,
		Pubkey:    ev.PubKey,
		CreatedAt: int64(ev.CreatedAt),
		CoHosts:   tagValues(ev.Tags, TagPubkey),
		RelayHint: tagValue(ev.Tags, TagRelay),
	}, nil
}

// BuildEvent returns an unsigned event carrying data under identifier id.
func BuildEvent(data models.EventData, id string, coHosts []string, relayHint string) (nostr.Event, error) {
	tags := nostr.Tags{
		{TagIdentifier, id},
		{TagSubject, data.Title},
		{TagStart, data.StartDate},
	}

	if data.EndDate != "" {
		tags = append(tags, nostr.Tag{TagEnd, data.EndDate})
	}
	if data.Location != nil && data.Location.Name != "" {
		tags = append(tags, nostr.Tag{TagLocation, data.Location.Name})
	}
	if data.Image != "" {
		tags = append(tags, nostr.Tag{TagImage, data.Image})
	}
	for _, t := range data.Tags {
		tags = append(tags, nostr.Tag{TagCategory, t})
	}
	for _, host := range coHosts {
		tags = append(tags, nostr.Tag{TagPubkey, host})
	}
	if relayHint != "" {
		tags = append(tags, nostr.Tag{TagRelay, relayHint})
	}

	content, err := json.Marshal(data)
	if err != nil {
		return nostr.Event{}, fmt.Errorf("codec: encode event: %w", err)
	}

	return nostr.Event{
		Kind:    KindEvent,
		Tags:    tags,
		Content: string(content),
	}, nil
}
