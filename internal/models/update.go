package models

type UpdateType string

const (
	UpdateAnnouncement UpdateType = "announcement"
	UpdateChange       UpdateType = "change"
	UpdateCancellation UpdateType = "cancellation"
)

// NormalizeUpdateType maps unknown or empty values to an announcement.
func NormalizeUpdateType(s string) UpdateType {
	switch t := UpdateType(s); t {
	case UpdateChange, UpdateCancellation, UpdateAnnouncement:
		return t
	}

	return UpdateAnnouncement
}

type Update struct {
	ID        string     `json:"id"`
	EventID   string     `json:"eventId"`
	CreatorID string     `json:"creatorId"`
	Content   string     `json:"content"`
	Type      UpdateType `json:"type"`
	CreatedAt int64      `json:"createdAt"`
}
