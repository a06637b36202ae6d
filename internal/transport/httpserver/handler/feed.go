package handler

import (
	"net/http"

	"school-link-go/internal/domain/directory"
	"school-link-go/internal/domain/feed"
)

type feedResponse struct {
	Messages []feed.Message `json:"messages"`
}

// Feed renders the visible message list for a viewer and a set of selected
// groups. Replies are filtered per message before they leave the server.
func (h *Handlers) Feed(w http.ResponseWriter, r *http.Request) {
	viewerID := r.URL.Query().Get("user_id")
	if viewerID == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "user_id is required")
		return
	}
	selected := parseCSV(r.URL.Query().Get("group_ids"))

	snap := h.state.View()
	viewer, ok := directory.UserByID(snap.Users, viewerID)
	if !ok {
		h.log.BusinessError("feed: viewer not found", directory.ErrUserNotFound, "user_id", viewerID)
		writeError(w, http.StatusNotFound, "user_not_found", "user not found")
		return
	}

	visible := feed.VisibleMessages(viewer, snap.Groups, snap.Messages, selected, h.now())
	for i, msg := range visible {
		isAdmin := directory.IsEffectiveAdmin(viewer, msg.GroupID, snap.Groups)
		visible[i].Replies = feed.VisibleReplies(msg.Replies, viewer.ID, isAdmin)
	}

	writeJSON(w, http.StatusOK, feedResponse{Messages: visible})
}
