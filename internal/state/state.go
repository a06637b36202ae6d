// Package state holds the application snapshot the core engines operate on.
// Every engine is a pure function over a snapshot; the holder serializes
// mutations so capacity and poll checks are always re-evaluated against the
// latest committed state, and persists the result as an explicit commit step.
package state

import (
	"context"
	"sync"

	"school-link-go/internal/domain/directory"
	"school-link-go/internal/domain/feed"
	"school-link-go/internal/domain/inscription"
)

// Snapshot is the full application state. Treat a snapshot obtained from a
// holder as read-only; mutations must go through Update and return a fresh
// snapshot.
type Snapshot struct {
	Users    []directory.User
	Groups   []directory.Group
	Messages []feed.Message
	Tables   []inscription.Table
}

// Persister saves the durable collections after a committed mutation.
// Inscription tables are in-memory only, matching the persistence contract.
type Persister interface {
	SaveUsers(ctx context.Context, users []directory.User) error
	SaveGroups(ctx context.Context, groups []directory.Group) error
	SaveMessages(ctx context.Context, messages []feed.Message) error
}

type Holder struct {
	mu      sync.RWMutex
	current Snapshot
	store   Persister
}

func NewHolder(initial Snapshot, store Persister) *Holder {
	return &Holder{current: initial, store: store}
}

func (h *Holder) View() Snapshot {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.current
}

// Update applies fn to the committed snapshot under the write lock. If fn
// succeeds the new snapshot is committed and persisted; if persistence fails
// the in-memory commit stands and the error is returned to the caller.
func (h *Holder) Update(ctx context.Context, fn func(Snapshot) (Snapshot, error)) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	next, err := fn(h.current)
	if err != nil {
		return err
	}
	h.current = next

	return h.persist(ctx)
}

func (h *Holder) persist(ctx context.Context) error {
	if h.store == nil {
		return nil
	}
	if err := h.store.SaveUsers(ctx, h.current.Users); err != nil {
		return err
	}
	if err := h.store.SaveGroups(ctx, h.current.Groups); err != nil {
		return err
	}
	return h.store.SaveMessages(ctx, h.current.Messages)
}
