// Package store is the persistence gateway: the three root collections are
// kept as independent JSON blobs in a local sqlite store. Dates round-trip
// through RFC 3339 text; a missing or corrupt blob falls back to the built-in
// seed dataset instead of failing.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"school-link-go/internal/domain/directory"
	"school-link-go/internal/domain/feed"
	"school-link-go/pkg/logger"
)

const (
	KeyUsers    = "sl_users"
	KeyGroups   = "sl_groups"
	KeyMessages = "sl_messages"
)

type Blob struct {
	Key       string    `gorm:"primaryKey"`
	Value     []byte    `gorm:"not null"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Blob) TableName() string {
	return "blobs"
}

type Store struct {
	db  *gorm.DB
	log logger.Logger
}

func New(db *gorm.DB, log logger.Logger) (*Store, error) {
	if err := db.AutoMigrate(&Blob{}); err != nil {
		return nil, err
	}
	return &Store{db: db, log: log}, nil
}

func (s *Store) LoadUsers(ctx context.Context) []directory.User {
	return load(ctx, s, KeyUsers, SeedUsers)
}

func (s *Store) LoadGroups(ctx context.Context) []directory.Group {
	return load(ctx, s, KeyGroups, SeedGroups)
}

func (s *Store) LoadMessages(ctx context.Context, now time.Time) []feed.Message {
	return load(ctx, s, KeyMessages, func() []feed.Message { return SeedMessages(now) })
}

func (s *Store) SaveUsers(ctx context.Context, users []directory.User) error {
	return save(ctx, s, KeyUsers, users)
}

func (s *Store) SaveGroups(ctx context.Context, groups []directory.Group) error {
	return save(ctx, s, KeyGroups, groups)
}

func (s *Store) SaveMessages(ctx context.Context, messages []feed.Message) error {
	return save(ctx, s, KeyMessages, messages)
}

func load[T any](ctx context.Context, s *Store, key string, fallback func() []T) []T {
	var blob Blob
	err := s.db.WithContext(ctx).First(&blob, "key = ?", key).Error
	if err != nil {
		if s.log != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			s.log.Warn("store: load failed, using seed data", "key", key, "err", err)
		}
		return fallback()
	}

	var value []T
	if err := json.Unmarshal(blob.Value, &value); err != nil {
		if s.log != nil {
			s.log.Warn("store: corrupt blob, using seed data", "key", key, "err", err)
		}
		return fallback()
	}
	return value
}

func save[T any](ctx context.Context, s *Store, key string, value []T) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	blob := Blob{Key: key, Value: data}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&blob).Error
}
