package kv

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"

	"github.com/jsamuelsen11/go-board-service/internal/domain"
)

// File stores each key as one file in a directory. Writes go to a temporary
// file that is renamed over the target, so readers never see a partial blob.
type File struct {
	dir string
}

// NewFile returns a store rooted at dir, creating the directory if needed.
func NewFile(dir string) (*File, error) {
	if dir == "" {
		return nil, errors.New("file backend requires a path")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating kv directory: %w", err)
	}
	return &File{dir: dir}, nil
}

// Name implements ports.HealthChecker.
func (f *File) Name() string { return "kv-file" }

// HealthCheck reports whether the directory is still present.
func (f *File) HealthCheck(context.Context) error {
	info, err := os.Stat(f.dir)
	if err != nil {
		return fmt.Errorf("kv directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("kv path %q is not a directory", f.dir)
	}
	return nil
}

// Get reads the file for key.
func (f *File) Get(_ context.Context, key string) ([]byte, error) {
	b, err := os.ReadFile(f.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("key %q: %w", key, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("reading key %q: %w", key, err)
	}
	return b, nil
}

// Set replaces the file for key.
func (f *File) Set(_ context.Context, key string, value []byte) error {
	tmp, err := os.CreateTemp(f.dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("writing key %q: %w", key, err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // already renamed on success

	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		return fmt.Errorf("writing key %q: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing key %q: %w", key, err)
	}
	if err := os.Rename(tmp.Name(), f.path(key)); err != nil {
		return fmt.Errorf("writing key %q: %w", key, err)
	}
	return nil
}

// Close implements io.Closer.
func (f *File) Close() error { return nil }

// path escapes key so that it always names a file directly inside dir.
func (f *File) path(key string) string {
	return filepath.Join(f.dir, url.PathEscape(key)+".json")
}
