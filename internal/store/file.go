package store

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// stateFileName is the file within the state directory holding all entries.
const stateFileName = "kysmet-state.json"

// File is a Store backed by a single JSON object file mapping keys to
// string values. The whole map is rewritten on every Set/Delete using a
// write-then-rename, so a crash mid-write never leaves a torn file: readers
// see either the old state or the new one.
type File struct {
	path string
	mu   sync.Mutex
	data map[string]string
}

var _ Store = (*File)(nil)

// OpenFile opens (or creates) the state file in dir. dir is created if it
// does not exist. A missing state file reads as empty; a malformed one is
// treated as empty too, with a warning, so a corrupted file degrades to
// first-run behavior instead of wedging the app.
func OpenFile(dir string) (*File, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("store: mkdir %q: %w", dir, err)
	}
	path := filepath.Join(dir, stateFileName)

	data := make(map[string]string)
	raw, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// first run
	case err != nil:
		return nil, fmt.Errorf("store: read %q: %w", path, err)
	default:
		if jsonErr := json.Unmarshal(raw, &data); jsonErr != nil {
			slog.Warn("store: state file malformed, starting empty", "path", path, "err", jsonErr)
			data = make(map[string]string)
		}
	}

	return &File{path: path, data: data}, nil
}

// Get returns the value for key and whether it was present.
func (f *File) Get(key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.data[key]
	return v, ok, nil
}

// Set writes the value for key and persists the whole map atomically.
func (f *File) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[key] = value
	return f.flush()
}

// Delete removes key and persists. Absent keys are a no-op.
func (f *File) Delete(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.data[key]; !ok {
		return nil
	}
	delete(f.data, key)
	return f.flush()
}

// Close is a no-op: every mutation is already flushed.
func (f *File) Close() error {
	return nil
}

// flush writes the map to a temp file and renames it over the state file.
// Callers must hold f.mu.
func (f *File) flush() error {
	data, err := json.MarshalIndent(f.data, "", "  ")
	if err != nil {
		return fmt.Errorf("store: marshal state: %w", err)
	}

	dir := filepath.Dir(f.path)
	tmp, err := os.CreateTemp(dir, ".kysmet-state-*.tmp")
	if err != nil {
		return fmt.Errorf("store: create temp state: %w", err)
	}
	if _, writeErr := tmp.Write(data); writeErr != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("store: write state: %w", writeErr)
	}
	if closeErr := tmp.Close(); closeErr != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("store: close state: %w", closeErr)
	}
	if renameErr := os.Rename(tmp.Name(), f.path); renameErr != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("store: finalize state: %w", renameErr)
	}
	return nil
}
