package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// FileStore persists each key as a standalone JSON document under a data
// directory. Writes go through a temp file and rename so a crash mid-write
// never leaves a truncated document behind. The mutex serializes access
// within this process only; two processes sharing a data directory race
// last-write-wins.
type FileStore struct {
	dir string
	log *zap.SugaredLogger
	mu  sync.Mutex
}

// NewFileStore creates the data directory if needed.
func NewFileStore(dir string, log *zap.SugaredLogger) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &FileStore{dir: dir, log: log}, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *FileStore) Save(key string, value any) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	if err := os.Rename(tmp, s.path(key)); err != nil {
		return fmt.Errorf("commit %s: %w", key, err)
	}
	return nil
}

func (s *FileStore) Load(key string, out any) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := os.ReadFile(s.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read %s: %w", key, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		s.quarantine(key)
		return false, nil
	}
	return true, nil
}

// quarantine moves a malformed document aside so the caller can fall back to
// defaults without destroying evidence of what was stored.
func (s *FileStore) quarantine(key string) {
	bad := s.path(key) + ".corrupt-" + uuid.NewString()
	if err := os.Rename(s.path(key), bad); err != nil {
		s.log.Warnf("failed to quarantine corrupt document %q: %v", key, err)
		return
	}
	s.log.Warnf("quarantined corrupt document %q to %s", key, bad)
}

func (s *FileStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := os.Remove(s.path(key))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}
