package models

import (
	"strings"
	"time"
)

type Location struct {
	Name      string   `json:"name,omitempty"`
	Address   string   `json:"address,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude *float64 `json:"longitude,omitempty" validate:"omitempty,longitude"`
}

// HasCoordinates reports whether both coordinates are set and non-zero.
func (l *Location) HasCoordinates() bool {
	if l == nil || l.Latitude == nil || l.Longitude == nil {
		return false
	}

	return *l.Latitude != 0 && *l.Longitude != 0
}

// EventData is the free-form payload of an event as published on the wire.
type EventData struct {
	Title        string    `json:"title" validate:"required"`
	Description  string    `json:"description"`
	StartDate    string    `json:"startDate" validate:"required"`
	EndDate      string    `json:"endDate,omitempty"`
	Location     *Location `json:"location,omitempty" validate:"omitempty"`
	Virtual      bool      `json:"virtual,omitempty"`
	VirtualURL   string    `json:"virtualUrl,omitempty" validate:"omitempty,url"`
	Image        string    `json:"image,omitempty" validate:"omitempty,url"`
	Tags         []string  `json:"tags,omitempty"`
	Cost         string    `json:"cost,omitempty"`
	Capacity     int       `json:"capacity,omitempty" validate:"omitempty,gt=0"`
	Requirements string    `json:"requirements,omitempty"`
	Contact      string    `json:"contact,omitempty"`
}

type Event struct {
	EventData
	ID        string      `json:"id"`
	Pubkey    string      `json:"pubkey"`
	CreatedAt int64       `json:"createdAt"`
	CoHosts   []string    `json:"coHosts,omitempty"`
	RelayHint string      `json:"relayHint,omitempty"`
	RSVPCount *RSVPCounts `json:"rsvpCount,omitempty"`
}

// Start parses StartDate. The second result is false when it cannot be parsed.
func (e *Event) Start() (time.Time, bool) {
	return ParseTime(e.StartDate)
}

// StartsAfter reports whether the event starts strictly after now.
func (e *Event) StartsAfter(now time.Time) bool {
	start, ok := e.Start()
	if !ok {
		return false
	}

	return start.After(now)
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseTime accepts ISO-8601 timestamps with or without zone, seconds or time
// part. Zone-less values are read in local time.
func ParseTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	for i, layout := range timeLayouts {
		var (
			t   time.Time
			err error
		)
		if i == 0 {
			t, err = time.Parse(layout, s)
		} else {
			t, err = time.ParseInLocation(layout, s, time.Local)
		}
		if err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}
