// Package imagestore keeps product pictures on disk as <dir>/<product id>.jpg.
package imagestore

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
)

type Store struct {
	dir string
}

func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create image dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) Path(productID int64) string {
	return filepath.Join(s.dir, strconv.FormatInt(productID, 10)+".jpg")
}

// Save writes to a temp file first so a failed upload never leaves a truncated picture.
func (s *Store) Save(productID int64, r io.Reader) (string, error) {
	tmp, err := os.CreateTemp(s.dir, "upload-*")
	if err != nil {
		return "", fmt.Errorf("create temp image: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return "", fmt.Errorf("write image: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close image: %w", err)
	}

	path := s.Path(productID)
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("store image: %w", err)
	}
	return path, nil
}

// Remove deletes the picture of a product; a missing file is fine.
func (s *Store) Remove(productID int64) error {
	err := os.Remove(s.Path(productID))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
