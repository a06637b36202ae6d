package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"school-link-go/internal/domain/directory"
	"school-link-go/internal/state"
)

// Admin CRUD for users and groups. The acting user is identified by the
// user_id query parameter and must be a global admin.

func (h *Handlers) requireGlobalAdmin(w http.ResponseWriter, r *http.Request) bool {
	actorID := r.URL.Query().Get("user_id")
	actor, ok := directory.UserByID(h.state.View().Users, actorID)
	if !ok || actor.Role != directory.RoleGlobalAdmin {
		h.log.Warn("admin: global admin required", "user_id", actorID, "path", r.URL.Path)
		writeError(w, http.StatusForbidden, "forbidden", "global admin required")
		return false
	}
	return true
}

func (h *Handlers) ListUsers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.state.View().Users)
}

func (h *Handlers) CreateUser(w http.ResponseWriter, r *http.Request) {
	if !h.requireGlobalAdmin(w, r) {
		return
	}
	var input directory.User
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	var created directory.User
	err := h.state.Update(r.Context(), func(snap state.Snapshot) (state.Snapshot, error) {
		users, user, err := directory.CreateUser(snap.Users, input)
		if err != nil {
			return snap, err
		}
		snap.Users = users
		created = user
		return snap, nil
	})
	if err != nil {
		h.respondAdminError(w, "admin.users.create", err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handlers) UpdateUser(w http.ResponseWriter, r *http.Request) {
	if !h.requireGlobalAdmin(w, r) {
		return
	}
	var input directory.User
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	input.ID = chi.URLParam(r, "target_id")

	err := h.state.Update(r.Context(), func(snap state.Snapshot) (state.Snapshot, error) {
		users, err := directory.UpdateUser(snap.Users, input)
		if err != nil {
			return snap, err
		}
		snap.Users = users
		return snap, nil
	})
	if err != nil {
		h.respondAdminError(w, "admin.users.update", err)
		return
	}
	writeJSON(w, http.StatusOK, input)
}

func (h *Handlers) DeleteUser(w http.ResponseWriter, r *http.Request) {
	if !h.requireGlobalAdmin(w, r) {
		return
	}
	targetID := chi.URLParam(r, "target_id")

	err := h.state.Update(r.Context(), func(snap state.Snapshot) (state.Snapshot, error) {
		users, err := directory.DeleteUser(snap.Users, targetID)
		if err != nil {
			return snap, err
		}
		snap.Users = users
		return snap, nil
	})
	if err != nil {
		h.respondAdminError(w, "admin.users.delete", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) ListGroups(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.state.View().Groups)
}

func (h *Handlers) CreateGroup(w http.ResponseWriter, r *http.Request) {
	if !h.requireGlobalAdmin(w, r) {
		return
	}
	var input directory.Group
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	var created directory.Group
	err := h.state.Update(r.Context(), func(snap state.Snapshot) (state.Snapshot, error) {
		groups, group, err := directory.CreateGroup(snap.Groups, input)
		if err != nil {
			return snap, err
		}
		snap.Groups = groups
		created = group
		return snap, nil
	})
	if err != nil {
		h.respondAdminError(w, "admin.groups.create", err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handlers) UpdateGroup(w http.ResponseWriter, r *http.Request) {
	if !h.requireGlobalAdmin(w, r) {
		return
	}
	var input directory.Group
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	input.ID = chi.URLParam(r, "group_id")

	err := h.state.Update(r.Context(), func(snap state.Snapshot) (state.Snapshot, error) {
		groups, err := directory.UpdateGroup(snap.Groups, input)
		if err != nil {
			return snap, err
		}
		snap.Groups = groups
		return snap, nil
	})
	if err != nil {
		h.respondAdminError(w, "admin.groups.update", err)
		return
	}
	writeJSON(w, http.StatusOK, input)
}

// DeleteGroup cascades: memberships are stripped from every user. Messages and
// inscription tables keep their (now orphaned) group reference.
func (h *Handlers) DeleteGroup(w http.ResponseWriter, r *http.Request) {
	if !h.requireGlobalAdmin(w, r) {
		return
	}
	groupID := chi.URLParam(r, "group_id")

	err := h.state.Update(r.Context(), func(snap state.Snapshot) (state.Snapshot, error) {
		groups, users, _, err := directory.DeleteGroup(snap.Groups, snap.Users, nil, groupID)
		if err != nil {
			return snap, err
		}
		snap.Groups = groups
		snap.Users = users
		return snap, nil
	})
	if err != nil {
		h.respondAdminError(w, "admin.groups.delete", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) respondAdminError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, directory.ErrNameRequired):
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, directory.ErrUserNotFound):
		h.log.BusinessError(op+": user not found", err)
		writeError(w, http.StatusNotFound, "user_not_found", "user not found")
	case errors.Is(err, directory.ErrGroupNotFound):
		h.log.BusinessError(op+": group not found", err)
		writeError(w, http.StatusNotFound, "group_not_found", "group not found")
	default:
		h.log.InternalError(op+": commit failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
	}
}
