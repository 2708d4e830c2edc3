package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ErrUnsupportedExtension is returned for uploads whose filename extension
// is not in the allow-list.
var ErrUnsupportedExtension = errors.New("unsupported file extension")

var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}

// AvatarStore persists uploaded avatar images under a configured root.
// Stored names are generated, never taken from the client, so concurrent
// uploads can not collide.
type AvatarStore struct {
	root string
}

// NewAvatarStore creates the store and its root directory
func NewAvatarStore(root string) (*AvatarStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &AvatarStore{root: root}, nil
}

// Save validates the extension of the original filename and writes the
// content to a freshly generated name, which it returns.
func (s *AvatarStore) Save(src io.Reader, originalName string) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	if !allowedExtensions[ext] {
		return "", ErrUnsupportedExtension
	}

	name := uuid.New().String() + ext
	dst, err := os.Create(filepath.Join(s.root, name))
	if err != nil {
		return "", fmt.Errorf("failed to create avatar file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dst.Name())
		return "", fmt.Errorf("failed to write avatar file: %w", err)
	}

	return name, nil
}

// Remove deletes a stored file. A missing file reports os.ErrNotExist so
// callers can treat it as non-fatal.
func (s *AvatarStore) Remove(name string) error {
	return os.Remove(s.Path(name))
}

// Path returns the on-disk path for a stored name. The name is reduced to
// its base component to keep lookups inside the root.
func (s *AvatarStore) Path(name string) string {
	return filepath.Join(s.root, filepath.Base(name))
}

// Exists reports whether a stored file is present
func (s *AvatarStore) Exists(name string) bool {
	_, err := os.Stat(s.Path(name))
	return err == nil
}
