package storage

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Store saves and serves uploaded media files. Moderation never calls
// Remove; it exists for out-of-band cleanup of orphaned files.
type Store interface {
	Save(originalName string, r io.Reader) (storedName string, err error)
	Open(name string) (*os.File, error)
	Remove(name string) error
}

// LocalStore keeps media on local disk under a single directory, with
// random names so uploads cannot collide or traverse paths.
type LocalStore struct {
	dir string
}

func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &LocalStore{dir: dir}, nil
}

func (s *LocalStore) Save(originalName string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	if len(ext) > 8 {
		ext = ext[:8]
	}
	name := "media_" + strings.ReplaceAll(uuid.New().String(), "-", "")[:16] + ext

	out, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}
	defer out.Close()

	if _, err := io.Copy(out, r); err != nil {
		_ = os.Remove(out.Name())
		return "", err
	}
	return name, nil
}

// Open returns the stored file. The name is reduced to its base so a
// crafted filename cannot escape the uploads directory.
func (s *LocalStore) Open(name string) (*os.File, error) {
	return os.Open(filepath.Join(s.dir, filepath.Base(name)))
}

func (s *LocalStore) Remove(name string) error {
	return os.Remove(filepath.Join(s.dir, filepath.Base(name)))
}
