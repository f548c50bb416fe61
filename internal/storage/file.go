package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// FileStore persists each key as <dir>/<key>.json. It is the durable backend
// for single-machine deployments and matches the original mobile storage
// layout, so an existing data directory is picked up as-is.
type FileStore struct {
	dir    string
	logger *zap.Logger
}

// NewFileStore creates a file-backed store rooted at dir. The directory is
// created lazily on the first write.
func NewFileStore(dir string, logger *zap.Logger) *FileStore {
	return &FileStore{dir: dir, logger: logger}
}

// Get reads the file for key. A missing or unreadable file is reported as
// absence; read failures other than non-existence are logged.
func (s *FileStore) Get(_ context.Context, key string) (string, bool) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("storage_read_failed",
				zap.String("key", key),
				zap.Error(err),
			)
		}
		return "", false
	}
	return string(data), true
}

// Set writes value to the file for key. The write goes through a temp file
// and rename so a crash mid-write never leaves a half-written record behind.
func (s *FileStore) Set(_ context.Context, key, value string) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("%w: create data dir: %v", ErrUnavailable, err)
	}

	path := s.path(key)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(value), 0o644); err != nil {
		return fmt.Errorf("%w: write %s: %v", ErrSaveFailed, key, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("%w: rename %s: %v", ErrSaveFailed, key, err)
	}
	return nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

var _ Store = (*FileStore)(nil)
