// Package store reads the flat JSON codes file maintained by the external
// scraper. The file is read wholesale on every call; lists are small and
// freshness matters more than speed, so there is no caching layer. The
// scraper may replace the file at any time and no locking is attempted.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/Deaquay/shiftcodes/models"
)

// ErrNotFound is returned when the backing codes file does not exist
var ErrNotFound = errors.New("codes file not found")

// ErrEmpty is returned when the backing codes file exists but is empty
var ErrEmpty = errors.New("codes file is empty")

// SnapshotStore abstracts access to the backing codes file
type SnapshotStore interface {
	Load() (*models.Snapshot, error)
	Exists() bool
}

// FileStore is the flat-file SnapshotStore used in production
type FileStore struct {
	Path string
}

// NewFileStore returns a FileStore backed by the given path
func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

// Load reads and decodes the full codes file
func (f *FileStore) Load() (*models.Snapshot, error) {
	b, err := os.ReadFile(f.Path)
	if err != nil {
		if os.IsNotExist(err) {
			zap.S().Warnw("codes file not found", "path", f.Path)
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read codes file: %w", err)
	}

	if strings.TrimSpace(string(b)) == "" {
		zap.S().Warnw("codes file is empty", "path", f.Path)
		return nil, ErrEmpty
	}

	var snapshot models.Snapshot
	if err := json.Unmarshal(b, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to decode codes file: %w", err)
	}

	zap.S().Infow("loaded codes from local file",
		"path", f.Path,
		"count", len(snapshot.Codes),
	)
	return &snapshot, nil
}

// Exists reports whether the backing codes file is present on disk
func (f *FileStore) Exists() bool {
	_, err := os.Stat(f.Path)
	return err == nil
}
