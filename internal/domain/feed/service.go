package feed

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewMessage is the tagged creation payload: Type selects the variant, and
// only the variant's fields are honored (InscriptionTableID for inscription
// forms; polls get their attendee/absentee sets initialized).
type NewMessage struct {
	GroupID        string
	AuthorID       string
	Type           MessageType
	Title          string
	Content        string
	ImageURL       string
	LinkURL        string
	AttachmentName string
	AttachmentURL  string

	ScheduledAt   *time.Time
	EventDate     *time.Time
	AutoReminders bool

	InscriptionTableID string
}

// Compose builds a Message from a creation payload, assigning a unique id and
// the creation timestamp.
func Compose(input NewMessage, now time.Time) (Message, error) {
	input.Title = strings.TrimSpace(input.Title)
	if input.GroupID == "" {
		return Message{}, ErrGroupRequired
	}
	if input.Title == "" {
		return Message{}, ErrTitleRequired
	}

	msg := Message{
		ID:             "msg-" + uuid.NewString(),
		GroupID:        input.GroupID,
		AuthorID:       input.AuthorID,
		Type:           input.Type,
		Title:          input.Title,
		Content:        input.Content,
		ImageURL:       input.ImageURL,
		LinkURL:        input.LinkURL,
		AttachmentName: input.AttachmentName,
		AttachmentURL:  input.AttachmentURL,
		Timestamp:      now,
		Replies:        []Reply{},
		ScheduledAt:    input.ScheduledAt,
		EventDate:      input.EventDate,
		AutoReminders:  input.AutoReminders,
	}

	switch input.Type {
	case TypeAnnouncement:
	case TypeSimplePoll:
		msg.Attendees = []string{}
		msg.Absentees = []string{}
	case TypeInscriptionForm:
		if input.InscriptionTableID == "" {
			return Message{}, ErrTableIDRequired
		}
		msg.InscriptionTableID = input.InscriptionTableID
	default:
		return Message{}, ErrUnknownMessageType
	}

	return msg, nil
}

// Prepend inserts a freshly created message at the head of the collection,
// matching the feed's newest-first storage order.
func Prepend(messages []Message, msg Message) []Message {
	updated := make([]Message, 0, len(messages)+1)
	updated = append(updated, msg)
	updated = append(updated, messages...)
	return updated
}

func MessageByID(messages []Message, id string) (Message, bool) {
	for _, m := range messages {
		if m.ID == id {
			return m, true
		}
	}
	return Message{}, false
}

// AddReply appends a reply to the message with the given id and returns the
// new collection. Unknown message ids leave the collection untouched.
func AddReply(messages []Message, messageID, authorID, content string, isPrivate bool, now time.Time) ([]Message, error) {
	reply := Reply{
		ID:        "reply-" + uuid.NewString(),
		AuthorID:  authorID,
		Content:   content,
		Timestamp: now,
		IsPrivate: isPrivate,
	}

	updated := make([]Message, len(messages))
	found := false
	for i, msg := range messages {
		if msg.ID == messageID {
			replies := make([]Reply, 0, len(msg.Replies)+1)
			replies = append(replies, msg.Replies...)
			replies = append(replies, reply)
			msg.Replies = replies
			found = true
		}
		updated[i] = msg
	}
	if !found {
		return messages, ErrMessageNotFound
	}
	return updated, nil
}

// RespondToPoll records a user's attendance on a poll message. The user ends
// up in exactly one of attendees/absentees; repeating the same response is a
// no-op.
func RespondToPoll(msg Message, userID string, attending bool) Message {
	if attending {
		msg.Attendees = appendUnique(msg.Attendees, userID)
		msg.Absentees = remove(msg.Absentees, userID)
	} else {
		msg.Absentees = appendUnique(msg.Absentees, userID)
		msg.Attendees = remove(msg.Attendees, userID)
	}
	return msg
}

// UpdateMessage replaces the message with the same id in the collection.
// Unknown ids are silent no-ops.
func UpdateMessage(messages []Message, updated Message) []Message {
	result := make([]Message, len(messages))
	for i, msg := range messages {
		if msg.ID == updated.ID {
			result[i] = updated
			continue
		}
		result[i] = msg
	}
	return result
}

func appendUnique(ids []string, id string) []string {
	for _, existing := range ids {
		if existing == id {
			return ids
		}
	}
	updated := make([]string, 0, len(ids)+1)
	updated = append(updated, ids...)
	updated = append(updated, id)
	return updated
}

func remove(ids []string, id string) []string {
	updated := make([]string, 0, len(ids))
	for _, existing := range ids {
		if existing != id {
			updated = append(updated, existing)
		}
	}
	return updated
}
