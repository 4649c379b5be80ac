package ports

import "context"

// BackupStore persists rendered backup documents.
type BackupStore interface {
	// Save stores payload under name and returns where it ended up.
	Save(ctx context.Context, name string, payload []byte) (string, error)
}
