package planner

import (
	"slices"
	"strings"

	"eventPlanner/internal/models"
)

// SearchEvents keeps events matching query and any of the selected tags.
// Query matching is a case-insensitive substring test over title,
// description, location and category tags.
func SearchEvents(events []models.Event, query string, selected []string) []models.Event {
	q := strings.ToLower(strings.TrimSpace(query))

	out := make([]models.Event, 0, len(events))
	for _, ev := range events {
		if matchesQuery(ev, q) && matchesTags(ev, selected) {
			out = append(out, ev)
		}
	}

	return out
}

func matchesQuery(ev models.Event, q string) bool {
	if q == "" {
		return true
	}

	fields := []string{ev.Title, ev.Description}
	if ev.Location != nil {
		fields = append(fields, ev.Location.Name, ev.Location.Address)
	}
	fields = append(fields, ev.Tags...)

	for _, f := range fields {
		if f != "" && strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}

	return false
}

func matchesTags(ev models.Event, selected []string) bool {
	if len(selected) == 0 {
		return true
	}

	for _, t := range ev.Tags {
		if slices.Contains(selected, t) {
			return true
		}
	}

	return false
}

// AllTags returns every category tag used by the given listings, sorted.
func AllTags(lists ...[]models.Event) []string {
	seen := make(map[string]struct{})
	for _, events := range lists {
		for _, ev := range events {
			for _, t := range ev.Tags {
				seen[t] = struct{}{}
			}
		}
	}

	tags := make([]string, 0, len(seen))
	for t := range seen {
		tags = append(tags, t)
	}
	slices.Sort(tags)

	return tags
}

// DefaultCenter is used when no event has coordinates (San Francisco).
var DefaultCenter = [2]float64{37.7749, -122.4194}

type MapView struct {
	Center [2]float64     `json:"center"`
	Events []models.Event `json:"events"`
}

// BuildMapView keeps the events that have coordinates and centers the map
// on their average position.
func BuildMapView(events []models.Event) MapView {
	view := MapView{Center: DefaultCenter, Events: []models.Event{}}

	var latSum, lngSum float64
	for _, ev := range events {
		if !ev.Location.HasCoordinates() {
			continue
		}
		latSum += *ev.Location.Latitude
		lngSum += *ev.Location.Longitude
		view.Events = append(view.Events, ev)
	}

	if n := float64(len(view.Events)); n > 0 {
		view.Center = [2]float64{latSum / n, lngSum / n}
	}

	return view
}
