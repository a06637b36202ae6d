package feed

import (
	"sort"
	"time"

	"school-link-go/internal/domain/directory"
)

// VisibleMessages computes the feed a viewer may currently see for a set of
// selected groups. Pipeline: selected-group filter, premium opt-out filter,
// scheduled-publish gate (future-scheduled messages are admin-only), then a
// stable sort descending by effective time. An empty selection is a valid
// "nothing selected" state and yields an empty feed.
func VisibleMessages(viewer directory.User, groups []directory.Group, messages []Message, selectedGroupIDs []string, now time.Time) []Message {
	if len(selectedGroupIDs) == 0 {
		return []Message{}
	}

	selected := make(map[string]struct{}, len(selectedGroupIDs))
	for _, id := range selectedGroupIDs {
		selected[id] = struct{}{}
	}

	hideActivities := viewer.IsPremium && viewer.OptOutOfActivities

	result := make([]Message, 0, len(messages))
	for _, msg := range messages {
		if _, ok := selected[msg.GroupID]; !ok {
			continue
		}
		if hideActivities && (msg.Type == TypeSimplePoll || msg.Type == TypeInscriptionForm) {
			continue
		}
		if msg.ScheduledAt != nil && msg.ScheduledAt.After(now) {
			if !directory.IsEffectiveAdmin(viewer, msg.GroupID, groups) {
				continue
			}
		}
		result = append(result, msg)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].EffectiveTime().After(result[j].EffectiveTime())
	})

	return result
}

// VisibleReplies filters a message's replies for a viewer: private replies are
// shown only to the group's admins and to their own author.
func VisibleReplies(replies []Reply, viewerID string, viewerIsGroupAdmin bool) []Reply {
	result := make([]Reply, 0, len(replies))
	for _, reply := range replies {
		if !reply.IsPrivate || viewerIsGroupAdmin || reply.AuthorID == viewerID {
			result = append(result, reply)
		}
	}
	return result
}
