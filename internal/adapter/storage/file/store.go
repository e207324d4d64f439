// Package file persists the favorites list as a single JSON-encoded slot on
// disk.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Store reads and writes the favorites list to a single JSON file.
// Each Save fully replaces the stored value; a temp-file rename keeps
// partial writes from ever being observable by Load.
type Store struct {
	path string
	log  *slog.Logger
}

// New creates a Store persisting to the given file path.
func New(path string, logger *slog.Logger) *Store {
	return &Store{
		path: path,
		log:  logger.With("adapter", "filestore"),
	}
}

// Load returns the stored favorites list in insertion order.
// A missing file or a value that does not parse as a JSON string array
// yields an empty list, never an error: stale or corrupt state must not
// take the application down.
func (s *Store) Load(ctx context.Context) ([]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("filestore: read %s: %w", s.path, err)
	}

	var words []string
	if err := json.Unmarshal(data, &words); err != nil {
		s.log.WarnContext(ctx, "malformed favorites slot, treating as empty",
			slog.String("path", s.path),
			slog.String("error", err.Error()),
		)
		return []string{}, nil
	}
	if words == nil {
		words = []string{}
	}

	return words, nil
}

// Save replaces the stored favorites list with the given one.
// The value is written to a temp file in the same directory and renamed
// over the slot, so readers see either the old or the new list in full.
func (s *Store) Save(ctx context.Context, words []string) error {
	if words == nil {
		words = []string{}
	}

	data, err := json.Marshal(words)
	if err != nil {
		return fmt.Errorf("filestore: encode: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("filestore: create dir %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("filestore: create temp: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("filestore: write temp: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("filestore: close temp: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("filestore: rename: %w", err)
	}

	s.log.DebugContext(ctx, "favorites saved", slog.Int("count", len(words)))
	return nil
}
