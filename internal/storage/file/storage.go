package file

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/mcoot/decklist-exporter/internal/storage"
)

// PinStore keeps the encoded PIN token in a single file on disk
type PinStore struct {
	path string
}

// NewPinStore creates a file-backed pin store at path
func NewPinStore(path string) *PinStore {
	return &PinStore{path: path}
}

var _ storage.PinStore = (*PinStore)(nil)

// Path returns the file the token is stored in
func (s *PinStore) Path() string {
	return s.path
}

func (s *PinStore) LoadPin(ctx context.Context) (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", storage.ErrNotFound
		}
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

func (s *PinStore) SavePin(ctx context.Context, token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path, []byte(token), 0o600)
}
