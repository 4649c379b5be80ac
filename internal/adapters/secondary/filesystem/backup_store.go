package filesystem

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"todo-list-service/internal/core/ports/output"
)

type backupStore struct {
	fs  afero.Fs
	dir string
}

// NewBackupStore writes backups as files under dir on fs.
func NewBackupStore(fs afero.Fs, dir string) ports.BackupStore {
	return &backupStore{fs: fs, dir: dir}
}

func (s *backupStore) Save(ctx context.Context, name string, payload []byte) (string, error) {
	if err := s.fs.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create backup dir: %w", err)
	}

	path := filepath.Join(s.dir, name)
	tmp := path + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, payload, 0o644); err != nil {
		return "", fmt.Errorf("write backup: %w", err)
	}
	if err := s.fs.Rename(tmp, path); err != nil {
		_ = s.fs.Remove(tmp)
		return "", fmt.Errorf("rename backup: %w", err)
	}
	return path, nil
}
