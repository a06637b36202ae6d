// Package export renders poll and inscription state to the plain-text reports
// surfaced in the admin export dialog. The output layout is a user-facing
// contract; do not reformat it.
package export

import (
	"strings"

	"school-link-go/internal/domain/directory"
	"school-link-go/internal/domain/feed"
	"school-link-go/internal/domain/inscription"
)

const (
	unknownName      = "Inconnu"
	emptySection     = " - Aucun"
	emptyInscription = "Aucun inscrit pour le moment."
)

// FormatPollExport renders a poll's attendee and absentee lists as two labeled
// sections, one resolved name per line.
func FormatPollExport(msg feed.Message, users []directory.User) string {
	var b strings.Builder
	b.WriteString("PRÉSENTS:\n")
	b.WriteString(nameLines(msg.Attendees, users))
	b.WriteString("\n\nABSENTS:\n")
	b.WriteString(nameLines(msg.Absentees, users))
	return b.String()
}

// FormatInscriptionExport renders one block per occupied slot, in the table's
// slot order; slots without registrants are omitted.
func FormatInscriptionExport(table inscription.Table, users []directory.User) string {
	blocks := make([]string, 0, len(table.Slots))
	for _, slot := range table.Slots {
		if len(slot.RegisteredUserIDs) == 0 {
			continue
		}
		activity, _ := table.ActivityByID(slot.ActivityID)
		timeSlot, _ := table.TimeSlotByID(slot.TimeSlotID)

		names := make([]string, 0, len(slot.RegisteredUserIDs))
		for _, id := range slot.RegisteredUserIDs {
			names = append(names, displayName(id, users))
		}

		blocks = append(blocks, "["+timeSlot.Label+" - "+activity.Name+"]:\n  "+strings.Join(names, ", "))
	}

	if len(blocks) == 0 {
		return emptyInscription
	}
	return strings.Join(blocks, "\n\n")
}

func nameLines(ids []string, users []directory.User) string {
	if len(ids) == 0 {
		return emptySection
	}
	lines := make([]string, 0, len(ids))
	for _, id := range ids {
		lines = append(lines, " - "+displayName(id, users))
	}
	return strings.Join(lines, "\n")
}

func displayName(id string, users []directory.User) string {
	if user, ok := directory.UserByID(users, id); ok {
		return user.Name
	}
	return unknownName
}
