package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"school-link-go/internal/domain/directory"
	"school-link-go/internal/domain/inscription"
	"school-link-go/internal/state"
)

var errTableNotFound = errors.New("inscription table not found")

func (h *Handlers) GetTable(w http.ResponseWriter, r *http.Request) {
	tableID := chi.URLParam(r, "table_id")

	snap := h.state.View()
	table, ok := inscription.TableByID(snap.Tables, tableID)
	if !ok {
		writeError(w, http.StatusNotFound, "table_not_found", "inscription table not found")
		return
	}
	writeJSON(w, http.StatusOK, table)
}

type registerRequest struct {
	UserID string                `json:"user_id"`
	Slots  []inscription.SlotKey `json:"slots"`
}

// Register applies a best-effort batch of slot selections. Full, unknown, or
// already-held cells are skipped without error; the caller observes the
// outcome in the returned table.
func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	tableID := chi.URLParam(r, "table_id")

	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if req.UserID == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "user_id is required")
		return
	}

	var updated inscription.Table
	err := h.state.Update(r.Context(), func(snap state.Snapshot) (state.Snapshot, error) {
		if _, ok := directory.UserByID(snap.Users, req.UserID); !ok {
			return snap, directory.ErrUserNotFound
		}
		table, ok := inscription.TableByID(snap.Tables, tableID)
		if !ok {
			return snap, errTableNotFound
		}
		updated = inscription.Register(table, req.UserID, req.Slots)
		snap.Tables = inscription.UpdateTable(snap.Tables, updated)
		return snap, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, directory.ErrUserNotFound):
			writeError(w, http.StatusNotFound, "user_not_found", "user not found")
		case errors.Is(err, errTableNotFound):
			h.log.BusinessError("inscriptions.register: table not found", err, "table_id", tableID)
			writeError(w, http.StatusNotFound, "table_not_found", "inscription table not found")
		default:
			h.log.InternalError("inscriptions.register: commit failed", err, "table_id", tableID, "user_id", req.UserID)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusOK, updated)
}
