package models

type RSVPStatus string

const (
	StatusYes   RSVPStatus = "yes"
	StatusNo    RSVPStatus = "no"
	StatusMaybe RSVPStatus = "maybe"
)

func (s RSVPStatus) Valid() bool {
	switch s {
	case StatusYes, StatusNo, StatusMaybe:
		return true
	}

	return false
}

type RSVP struct {
	Status    RSVPStatus `json:"status" validate:"required,oneof=yes no maybe"`
	Comment   string     `json:"comment,omitempty"`
	Attendees int        `json:"attendees,omitempty" validate:"omitempty,min=1"`
}

// RSVPRecord is a decoded RSVP together with the event it answers and its author.
type RSVPRecord struct {
	RSVP
	EventID   string `json:"eventId"`
	UserID    string `json:"userId"`
	CreatedAt int64  `json:"createdAt"`
}

type RSVPCounts struct {
	Yes   int `json:"yes"`
	No    int `json:"no"`
	Maybe int `json:"maybe"`
}

// Add credits attendees to the bucket of status.
func (c *RSVPCounts) Add(status RSVPStatus, attendees int) {
	switch status {
	case StatusYes:
		c.Yes += attendees
	case StatusNo:
		c.No += attendees
	case StatusMaybe:
		c.Maybe += attendees
	}
}

func (c RSVPCounts) Total() int {
	return c.Yes + c.No + c.Maybe
}
