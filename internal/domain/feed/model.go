package feed

import "time"

type MessageType string

const (
	TypeAnnouncement    MessageType = "ANNOUNCEMENT"
	TypeSimplePoll      MessageType = "SIMPLE_POLL"
	TypeInscriptionForm MessageType = "INSCRIPTION_FORM"
)

type Reply struct {
	ID        string    `json:"id"`
	AuthorID  string    `json:"authorId"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
	IsPrivate bool      `json:"isPrivate"`
}

// Message belongs to exactly one group. Timestamp is the immutable creation
// time; ScheduledAt, when set, is the effective publish time and gates
// visibility for non-admins until it passes. A user id appears in at most one
// of Attendees/Absentees.
type Message struct {
	ID             string      `json:"id"`
	GroupID        string      `json:"groupId"`
	AuthorID       string      `json:"authorId"`
	Type           MessageType `json:"type"`
	Title          string      `json:"title"`
	Content        string      `json:"content"`
	ImageURL       string      `json:"imageUrl,omitempty"`
	LinkURL        string      `json:"linkUrl,omitempty"`
	AttachmentName string      `json:"attachmentName,omitempty"`
	AttachmentURL  string      `json:"attachmentUrl,omitempty"`

	Timestamp time.Time `json:"timestamp"`
	Replies   []Reply   `json:"replies"`

	// SIMPLE_POLL only.
	Attendees []string `json:"attendees,omitempty"`
	Absentees []string `json:"absentees,omitempty"`

	// INSCRIPTION_FORM only.
	InscriptionTableID string `json:"inscriptionTableId,omitempty"`

	ScheduledAt   *time.Time `json:"scheduledAt,omitempty"`
	EventDate     *time.Time `json:"eventDate,omitempty"`
	AutoReminders bool       `json:"autoReminders,omitempty"`
}

// EffectiveTime orders the feed: the scheduled publish time when present,
// otherwise the creation time.
func (m Message) EffectiveTime() time.Time {
	if m.ScheduledAt != nil {
		return *m.ScheduledAt
	}
	return m.Timestamp
}
