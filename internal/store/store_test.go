package store

import (
	"context"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"school-link-go/internal/domain/feed"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	gormDB, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	s, err := New(gormDB, nil)
	if err != nil {
		t.Fatalf("init store: %v", err)
	}
	return s
}

func TestMessagesRoundTripPreservesDates(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	timestamp := time.Date(2023, 9, 1, 9, 0, 0, 0, time.UTC)
	scheduled := time.Date(2024, 1, 15, 20, 30, 0, 0, time.UTC)
	event := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	replyAt := time.Date(2023, 9, 1, 10, 0, 0, 0, time.UTC)

	messages := []feed.Message{{
		ID:          "msg-1",
		GroupID:     "group-a",
		AuthorID:    "user-1",
		Type:        feed.TypeAnnouncement,
		Title:       "Réunion",
		Timestamp:   timestamp,
		ScheduledAt: &scheduled,
		EventDate:   &event,
		Replies: []feed.Reply{
			{ID: "r1", AuthorID: "user-2", Content: "ok", Timestamp: replyAt, IsPrivate: true},
		},
	}}

	if err := s.SaveMessages(ctx, messages); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded := s.LoadMessages(ctx, time.Now())
	if len(loaded) != 1 {
		t.Fatalf("expected 1 message, got %d", len(loaded))
	}
	msg := loaded[0]
	if !msg.Timestamp.Equal(timestamp) {
		t.Fatalf("timestamp mismatch: %v != %v", msg.Timestamp, timestamp)
	}
	if msg.ScheduledAt == nil || !msg.ScheduledAt.Equal(scheduled) {
		t.Fatalf("scheduledAt mismatch: %v", msg.ScheduledAt)
	}
	if msg.EventDate == nil || !msg.EventDate.Equal(event) {
		t.Fatalf("eventDate mismatch: %v", msg.EventDate)
	}
	if len(msg.Replies) != 1 || !msg.Replies[0].Timestamp.Equal(replyAt) {
		t.Fatalf("reply timestamp mismatch: %+v", msg.Replies)
	}
}

func TestLoadMissingBlobFallsBackToSeed(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	users := s.LoadUsers(ctx)
	if len(users) != len(SeedUsers()) {
		t.Fatalf("expected seed users, got %d", len(users))
	}
	groups := s.LoadGroups(ctx)
	if len(groups) != len(SeedGroups()) {
		t.Fatalf("expected seed groups, got %d", len(groups))
	}
}

func TestLoadCorruptBlobFallsBackToSeed(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.db.Create(&Blob{Key: KeyUsers, Value: []byte("{not json")}).Error; err != nil {
		t.Fatalf("seed corrupt blob: %v", err)
	}

	users := s.LoadUsers(ctx)
	if len(users) != len(SeedUsers()) {
		t.Fatalf("expected fallback to seed on corrupt blob, got %d users", len(users))
	}
}

func TestSaveOverwritesExistingBlob(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first := SeedUsers()
	if err := s.SaveUsers(ctx, first); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.SaveUsers(ctx, first[:2]); err != nil {
		t.Fatalf("second save: %v", err)
	}

	users := s.LoadUsers(ctx)
	if len(users) != 2 {
		t.Fatalf("expected 2 users after overwrite, got %d", len(users))
	}
}

func TestSeedMessagesScheduledInFuture(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	for _, msg := range SeedMessages(now) {
		if msg.ID == "msg-5" {
			if msg.ScheduledAt == nil || !msg.ScheduledAt.After(now) {
				t.Fatalf("expected msg-5 scheduled in the future, got %v", msg.ScheduledAt)
			}
			return
		}
	}
	t.Fatalf("msg-5 not found in seed data")
}
