package storage

import (
	"context"
	"errors"
)

// Storage keys. The reminder collection is versioned: RemindersV2Key holds the
// current schema (with tag_ids), RemindersLegacyKey holds the pre-tagging
// schema and is only ever read, never written.
const (
	RemindersV2Key     = "reminders_v2"
	RemindersLegacyKey = "reminders"
	TagsV1Key          = "tags_v1"
	LocaleKey          = "remind-me-locale"
)

var (
	// ErrUnavailable indicates the backing store cannot be reached at all.
	ErrUnavailable = errors.New("storage unavailable")
	// ErrSerializationFailed indicates a value could not be encoded for storage.
	ErrSerializationFailed = errors.New("serialization failed")
	// ErrSaveFailed indicates the backing store rejected a write.
	ErrSaveFailed = errors.New("save failed")
)

// Store is the key-value port every persistence consumer depends on. Concrete
// backends are selected at composition time; core logic never branches on the
// backend in use.
//
// Get reports absence, not failure: a backend that cannot read a key returns
// ok == false and surfaces the underlying problem through its own logger.
// Set returns one of the sentinel errors above, wrapped with context.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool)
	Set(ctx context.Context, key, value string) error
}
