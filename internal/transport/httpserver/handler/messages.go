package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"school-link-go/internal/domain/directory"
	"school-link-go/internal/domain/export"
	"school-link-go/internal/domain/feed"
	"school-link-go/internal/domain/inscription"
	"school-link-go/internal/state"
)

type createMessageRequest struct {
	UserID             string     `json:"user_id"`
	GroupID            string     `json:"group_id"`
	Type               string     `json:"type"`
	Title              string     `json:"title"`
	Content            string     `json:"content"`
	ImageURL           string     `json:"image_url"`
	LinkURL            string     `json:"link_url"`
	AttachmentName     string     `json:"attachment_name"`
	AttachmentURL      string     `json:"attachment_url"`
	ScheduledAt        *time.Time `json:"scheduled_at"`
	EventDate          *time.Time `json:"event_date"`
	AutoReminders      bool       `json:"auto_reminders"`
	InscriptionTableID string     `json:"inscription_table_id"`
	SendEmail          bool       `json:"send_email"`
}

func (h *Handlers) CreateMessage(w http.ResponseWriter, r *http.Request) {
	var req createMessageRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if req.UserID == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "user_id is required")
		return
	}

	var created feed.Message
	var recipients []directory.User
	err := h.state.Update(r.Context(), func(snap state.Snapshot) (state.Snapshot, error) {
		if _, ok := directory.UserByID(snap.Users, req.UserID); !ok {
			return snap, directory.ErrUserNotFound
		}
		if _, ok := directory.GroupByID(snap.Groups, req.GroupID); !ok {
			return snap, directory.ErrGroupNotFound
		}

		msg, err := feed.Compose(feed.NewMessage{
			GroupID:            req.GroupID,
			AuthorID:           req.UserID,
			Type:               feed.MessageType(req.Type),
			Title:              req.Title,
			Content:            req.Content,
			ImageURL:           req.ImageURL,
			LinkURL:            req.LinkURL,
			AttachmentName:     req.AttachmentName,
			AttachmentURL:      req.AttachmentURL,
			ScheduledAt:        req.ScheduledAt,
			EventDate:          req.EventDate,
			AutoReminders:      req.AutoReminders,
			InscriptionTableID: req.InscriptionTableID,
		}, h.now())
		if err != nil {
			return snap, err
		}

		created = msg
		if req.SendEmail {
			recipients = directory.EmailRecipients(req.GroupID, snap.Users)
		}
		snap.Messages = feed.Prepend(snap.Messages, msg)
		return snap, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, directory.ErrUserNotFound):
			writeError(w, http.StatusNotFound, "user_not_found", "user not found")
		case errors.Is(err, directory.ErrGroupNotFound):
			writeError(w, http.StatusNotFound, "group_not_found", "group not found")
		case errors.Is(err, feed.ErrGroupRequired),
			errors.Is(err, feed.ErrTitleRequired),
			errors.Is(err, feed.ErrTableIDRequired),
			errors.Is(err, feed.ErrUnknownMessageType):
			h.log.BusinessError("messages.create: invalid payload", err, "user_id", req.UserID)
			writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		default:
			h.log.InternalError("messages.create: commit failed", err, "user_id", req.UserID)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	if req.SendEmail && len(recipients) > 0 {
		if err := h.mailer.SendGroupMessage(r.Context(), req.GroupID, created.Title, recipients); err != nil {
			h.log.InternalError("messages.create: mail send failed", err, "group_id", req.GroupID)
		}
	}

	writeJSON(w, http.StatusCreated, created)
}

type replyRequest struct {
	UserID    string `json:"user_id"`
	Content   string `json:"content"`
	IsPrivate bool   `json:"is_private"`
}

func (h *Handlers) AddReply(w http.ResponseWriter, r *http.Request) {
	messageID := chi.URLParam(r, "message_id")

	var req replyRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	req.Content = strings.TrimSpace(req.Content)
	if req.UserID == "" || req.Content == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "user_id and content are required")
		return
	}

	var updated feed.Message
	err := h.state.Update(r.Context(), func(snap state.Snapshot) (state.Snapshot, error) {
		if _, ok := directory.UserByID(snap.Users, req.UserID); !ok {
			return snap, directory.ErrUserNotFound
		}
		messages, err := feed.AddReply(snap.Messages, messageID, req.UserID, req.Content, req.IsPrivate, h.now())
		if err != nil {
			return snap, err
		}
		snap.Messages = messages
		updated, _ = feed.MessageByID(messages, messageID)
		return snap, nil
	})
	if err != nil {
		h.respondMessageMutationError(w, "messages.reply", err, req.UserID, messageID)
		return
	}

	writeJSON(w, http.StatusCreated, h.viewForUser(updated, req.UserID))
}

type pollRequest struct {
	UserID    string `json:"user_id"`
	Attending bool   `json:"attending"`
}

func (h *Handlers) RespondToPoll(w http.ResponseWriter, r *http.Request) {
	messageID := chi.URLParam(r, "message_id")

	var req pollRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if req.UserID == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "user_id is required")
		return
	}

	var updated feed.Message
	err := h.state.Update(r.Context(), func(snap state.Snapshot) (state.Snapshot, error) {
		if _, ok := directory.UserByID(snap.Users, req.UserID); !ok {
			return snap, directory.ErrUserNotFound
		}
		msg, ok := feed.MessageByID(snap.Messages, messageID)
		if !ok {
			return snap, feed.ErrMessageNotFound
		}
		if msg.Type != feed.TypeSimplePoll {
			return snap, feed.ErrUnknownMessageType
		}
		updated = feed.RespondToPoll(msg, req.UserID, req.Attending)
		snap.Messages = feed.UpdateMessage(snap.Messages, updated)
		return snap, nil
	})
	if err != nil {
		if errors.Is(err, feed.ErrUnknownMessageType) {
			writeError(w, http.StatusBadRequest, "not_a_poll", "message is not a poll")
			return
		}
		h.respondMessageMutationError(w, "messages.poll", err, req.UserID, messageID)
		return
	}

	writeJSON(w, http.StatusOK, h.viewForUser(updated, req.UserID))
}

type exportResponse struct {
	Title string `json:"title"`
	Data  string `json:"data"`
}

// Export renders the admin text report for a poll or an inscription-form
// message. Only effective admins of the message's group may export.
func (h *Handlers) Export(w http.ResponseWriter, r *http.Request) {
	messageID := chi.URLParam(r, "message_id")
	userID := r.URL.Query().Get("user_id")

	snap := h.state.View()
	user, ok := directory.UserByID(snap.Users, userID)
	if !ok {
		writeError(w, http.StatusNotFound, "user_not_found", "user not found")
		return
	}
	msg, ok := feed.MessageByID(snap.Messages, messageID)
	if !ok {
		writeError(w, http.StatusNotFound, "message_not_found", "message not found")
		return
	}
	if !directory.IsEffectiveAdmin(user, msg.GroupID, snap.Groups) {
		h.log.Warn("messages.export: not a group admin", "user_id", userID, "message_id", messageID)
		writeError(w, http.StatusForbidden, "forbidden", "group admin required")
		return
	}

	switch msg.Type {
	case feed.TypeSimplePoll:
		writeJSON(w, http.StatusOK, exportResponse{
			Title: `Export des réponses - "` + msg.Title + `"`,
			Data:  export.FormatPollExport(msg, snap.Users),
		})
	case feed.TypeInscriptionForm:
		table, ok := inscription.TableByID(snap.Tables, msg.InscriptionTableID)
		if !ok {
			writeError(w, http.StatusNotFound, "table_not_found", "inscription table not found")
			return
		}
		writeJSON(w, http.StatusOK, exportResponse{
			Title: `Export des inscrits - "` + table.Title + `"`,
			Data:  export.FormatInscriptionExport(table, snap.Users),
		})
	default:
		writeError(w, http.StatusBadRequest, "not_exportable", "message has no exportable responses")
	}
}

func (h *Handlers) respondMessageMutationError(w http.ResponseWriter, op string, err error, userID, messageID string) {
	switch {
	case errors.Is(err, directory.ErrUserNotFound):
		writeError(w, http.StatusNotFound, "user_not_found", "user not found")
	case errors.Is(err, feed.ErrMessageNotFound):
		h.log.BusinessError(op+": message not found", err, "user_id", userID, "message_id", messageID)
		writeError(w, http.StatusNotFound, "message_not_found", "message not found")
	default:
		h.log.InternalError(op+": commit failed", err, "user_id", userID, "message_id", messageID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
	}
}

// viewForUser applies the render-time reply filter before a single message
// leaves the server.
func (h *Handlers) viewForUser(msg feed.Message, userID string) feed.Message {
	snap := h.state.View()
	viewer, ok := directory.UserByID(snap.Users, userID)
	if !ok {
		msg.Replies = feed.VisibleReplies(msg.Replies, userID, false)
		return msg
	}
	isAdmin := directory.IsEffectiveAdmin(viewer, msg.GroupID, snap.Groups)
	msg.Replies = feed.VisibleReplies(msg.Replies, userID, isAdmin)
	return msg
}
