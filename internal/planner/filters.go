package planner

import (
	"fmt"
	"sort"
	"strings"

	"eventPlanner/internal/codec"

	"github.com/nbd-wtf/go-nostr"
)

// ListOptions narrows an event listing. Since and Until are unix seconds
// compared against the publication time; zero leaves them open.
type ListOptions struct {
	Limit   int
	Since   int64
	Until   int64
	Authors []string
	Tags    map[string][]string
}

func (o ListOptions) filter(fallbackLimit int) nostr.Filter {
	limit := o.Limit
	if limit <= 0 {
		limit = fallbackLimit
	}

	f := nostr.Filter{
		Kinds: []int{codec.KindEvent},
		Limit: limit,
	}

	if o.Since > 0 {
		since := nostr.Timestamp(o.Since)
		f.Since = &since
	}
	if o.Until > 0 {
		until := nostr.Timestamp(o.Until)
		f.Until = &until
	}
	if len(o.Authors) > 0 {
		f.Authors = o.Authors
	}

	for key, values := range o.Tags {
		if len(values) == 0 {
			continue
		}
		if f.Tags == nil {
			f.Tags = nostr.TagMap{}
		}
		f.Tags[key] = values
	}

	return f
}

// variant renders the options as a stable cache key.
func (o ListOptions) variant(fallbackLimit int) string {
	limit := o.Limit
	if limit <= 0 {
		limit = fallbackLimit
	}

	var b strings.Builder
	fmt.Fprintf(&b, "limit=%d;since=%d;until=%d;authors=%s", limit, o.Since, o.Until, strings.Join(o.Authors, ","))

	keys := make([]string, 0, len(o.Tags))
	for k, v := range o.Tags {
		if len(v) > 0 {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	for _, k := range keys {
		fmt.Fprintf(&b, ";#%s=%s", k, strings.Join(o.Tags[k], ","))
	}

	return b.String()
}

func eventByIDFilter(id string) nostr.Filter {
	return nostr.Filter{
		Kinds: []int{codec.KindEvent},
		Tags:  nostr.TagMap{codec.TagIdentifier: {id}},
	}
}

func updatesFilter(eventID string) nostr.Filter {
	return nostr.Filter{
		Kinds: []int{codec.KindUpdate},
		Tags:  nostr.TagMap{codec.TagEvent: {eventID}},
	}
}

func eventRSVPsFilter(eventID, creatorID string) nostr.Filter {
	return nostr.Filter{
		Kinds: []int{codec.KindRSVP},
		Tags: nostr.TagMap{
			codec.TagEvent:  {eventID},
			codec.TagPubkey: {creatorID},
		},
	}
}

func userRSVPsFilter(pubkey string) nostr.Filter {
	return nostr.Filter{
		Kinds:   []int{codec.KindRSVP},
		Authors: []string{pubkey},
	}
}
