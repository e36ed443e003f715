package repositories

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore keeps each save as a file under a directory, named by its id.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create save directory: %v", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) Close(ctx context.Context) error {
	return nil
}

func (s *FileStore) Save(ctx context.Context, id string, data []byte) error {
	path := s.pathFor(id)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write save: %v", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to replace save: %v", err)
	}
	return nil
}

func (s *FileStore) Load(ctx context.Context, id string) ([]byte, error) {
	data, err := os.ReadFile(s.pathFor(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &ErrNotFound{}
		}
		return nil, fmt.Errorf("failed to read save: %v", err)
	}
	return data, nil
}

func (s *FileStore) Delete(ctx context.Context, id string) error {
	if err := os.Remove(s.pathFor(id)); err != nil {
		if os.IsNotExist(err) {
			return &ErrNotFound{}
		}
		return fmt.Errorf("failed to delete save: %v", err)
	}
	return nil
}

func (s *FileStore) pathFor(id string) string {
	return filepath.Join(s.dir, id+".save")
}
