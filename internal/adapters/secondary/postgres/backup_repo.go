package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"todo-list-service/internal/core/ports/output"
)

const backupSchema = `
	CREATE TABLE IF NOT EXISTS todo_backup (
		id         UUID PRIMARY KEY,
		created_at TIMESTAMPTZ NOT NULL,
		name       TEXT NOT NULL,
		payload    JSONB NOT NULL
	)
`

type backupRepo struct {
	pool *pgxpool.Pool
}

func NewBackupRepository(pool *pgxpool.Pool) ports.BackupStore {
	return &backupRepo{pool: pool}
}

// EnsureSchema creates the backup table when it is missing.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, backupSchema); err != nil {
		return fmt.Errorf("create todo_backup table: %w", err)
	}
	return nil
}

func (r *backupRepo) Save(ctx context.Context, name string, payload []byte) (string, error) {
	id := uuid.New()

	query := `INSERT INTO todo_backup (id, created_at, name, payload) VALUES ($1, $2, $3, $4)`
	if _, err := r.pool.Exec(ctx, query, id, time.Now().UTC(), name, payload); err != nil {
		return "", fmt.Errorf("insert backup: %w", err)
	}
	return backupLocation(id), nil
}

func backupLocation(id uuid.UUID) string {
	return "postgres://todo_backup/" + id.String()
}
