// Package persistence loads and saves the reminder and tag collections
// through the storage port, including the one-time migration from the
// pre-tagging reminder schema.
package persistence

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/wchklaus97/remind-me/internal/models"
	"github.com/wchklaus97/remind-me/internal/storage"
)

// MigrationOutcome reports what LoadReminders found in storage. The legacy
// re-save is best-effort, so callers that care (startup logging, health
// reporting) can observe whether the forward-persist happened.
type MigrationOutcome int

const (
	// MigrationNone means current-version data (or nothing) was found; no
	// migration ran.
	MigrationNone MigrationOutcome = iota
	// MigrationApplied means legacy data was migrated and re-saved under the
	// current key.
	MigrationApplied
	// MigrationResaveFailed means legacy data was migrated and returned, but
	// the forward persist failed; the migration will run again on next load.
	MigrationResaveFailed
)

// legacyReminder is the pre-tagging persisted shape. It lacks tag_ids.
type legacyReminder struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"due_date"`
	Completed   bool   `json:"completed"`
	CreatedAt   string `json:"created_at"`
}

// Engine persists reminders and tags through a storage.Store. Write failures
// are logged and returned but never fatal: the caller's in-memory collection
// stays authoritative for the session and the write is simply retried on the
// next mutation.
type Engine struct {
	store  storage.Store
	logger *zap.Logger
}

// NewEngine creates a persistence engine over the given store.
func NewEngine(store storage.Store, logger *zap.Logger) *Engine {
	return &Engine{store: store, logger: logger}
}

// LoadReminders returns the stored reminder collection.
//
// The current-version key is tried first; if it holds parseable data it is
// returned as-is. Otherwise the legacy key is tried, each legacy record is
// mapped into the current shape with an empty tag set, and the migrated
// collection is re-saved under the current key so subsequent loads
// short-circuit. Corrupt data at either version is treated as absent, and a
// failed re-save still returns the migrated data.
func (e *Engine) LoadReminders(ctx context.Context) ([]models.Reminder, MigrationOutcome) {
	if raw, ok := e.store.Get(ctx, storage.RemindersV2Key); ok {
		var reminders []models.Reminder
		if err := json.Unmarshal([]byte(raw), &reminders); err == nil {
			return normalize(reminders), MigrationNone
		}
		e.logger.Warn("reminders_corrupt",
			zap.String("key", storage.RemindersV2Key),
		)
	}

	if raw, ok := e.store.Get(ctx, storage.RemindersLegacyKey); ok {
		var legacy []legacyReminder
		if err := json.Unmarshal([]byte(raw), &legacy); err == nil {
			migrated := make([]models.Reminder, 0, len(legacy))
			for _, l := range legacy {
				migrated = append(migrated, models.Reminder{
					ID:          l.ID,
					Title:       l.Title,
					Description: l.Description,
					DueDate:     l.DueDate,
					Completed:   l.Completed,
					CreatedAt:   l.CreatedAt,
					TagIDs:      []string{},
				})
			}

			outcome := MigrationApplied
			if err := e.SaveReminders(ctx, migrated); err != nil {
				// Not fatal: the migrated data is still handed to the
				// caller and the migration reruns on the next load.
				outcome = MigrationResaveFailed
			} else {
				e.logger.Info("reminders_migrated",
					zap.Int("count", len(migrated)),
					zap.String("from", storage.RemindersLegacyKey),
					zap.String("to", storage.RemindersV2Key),
				)
			}
			return migrated, outcome
		}
		e.logger.Warn("reminders_corrupt",
			zap.String("key", storage.RemindersLegacyKey),
		)
	}

	return []models.Reminder{}, MigrationNone
}

// SaveReminders writes the collection under the current-version key.
func (e *Engine) SaveReminders(ctx context.Context, reminders []models.Reminder) error {
	return e.save(ctx, storage.RemindersV2Key, normalize(reminders))
}

// LoadTags returns the stored tag collection. Tags have no legacy schema;
// absent or corrupt data yields an empty collection.
func (e *Engine) LoadTags(ctx context.Context) []models.Tag {
	raw, ok := e.store.Get(ctx, storage.TagsV1Key)
	if !ok {
		return []models.Tag{}
	}
	var tags []models.Tag
	if err := json.Unmarshal([]byte(raw), &tags); err != nil {
		e.logger.Warn("tags_corrupt",
			zap.String("key", storage.TagsV1Key),
		)
		return []models.Tag{}
	}
	return tags
}

// SaveTags writes the tag collection under its versioned key.
func (e *Engine) SaveTags(ctx context.Context, tags []models.Tag) error {
	if tags == nil {
		tags = []models.Tag{}
	}
	return e.save(ctx, storage.TagsV1Key, tags)
}

func (e *Engine) save(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		e.logger.Error("save_serialization_failed",
			zap.String("key", key),
			zap.Error(err),
		)
		return fmt.Errorf("%w: %v", storage.ErrSerializationFailed, err)
	}
	if err := e.store.Set(ctx, key, string(data)); err != nil {
		e.logger.Error("save_failed",
			zap.String("key", key),
			zap.Error(err),
		)
		return err
	}
	return nil
}

// normalize ensures every reminder carries a non-nil tag set, so records
// decoded from older data and records serialized back out always agree on
// `"tag_ids": []`.
func normalize(reminders []models.Reminder) []models.Reminder {
	if reminders == nil {
		return []models.Reminder{}
	}
	for i := range reminders {
		if reminders[i].TagIDs == nil {
			reminders[i].TagIDs = []string{}
		}
	}
	return reminders
}
