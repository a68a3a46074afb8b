package cache

import (
	"context"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// ErrNotFound is returned by stores that hold no entry yet.
var ErrNotFound = errors.New("cache entry not found")

const filePerm = 0o644

// FileStore keeps the cache entry in a single local file.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Read(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "read cache file")
	}
	return data, nil
}

// Write replaces the file through a temp file and a rename, so readers
// never see a half-written entry.
func (s *FileStore) Write(_ context.Context, data []byte) error {
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return errors.Wrap(err, "create temp cache file")
	}
	tmpName := tmp.Name()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return errors.Wrap(err, "write temp cache file")
	}
	if err = tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return errors.Wrap(err, "close temp cache file")
	}
	if err = os.Chmod(tmpName, filePerm); err != nil {
		_ = os.Remove(tmpName)
		return errors.Wrap(err, "chmod temp cache file")
	}
	if err = os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return errors.Wrap(err, "replace cache file")
	}
	return nil
}
