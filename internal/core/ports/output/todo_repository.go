package ports

import (
	"context"

	"todo-list-service/internal/core/domain"
)

type TaskListRepository interface {
	// Create stores a new list and fails with domain.ErrTaskListConflict if the id is taken.
	Create(ctx context.Context, list *domain.TaskList) error
	Get(ctx context.Context, listID string) (*domain.TaskList, error)
	Update(ctx context.Context, list *domain.TaskList) error
	Delete(ctx context.Context, listID string) error
	// Mutate applies fn to the stored list under the repository lock and writes it back.
	Mutate(ctx context.Context, listID string, fn func(list *domain.TaskList) error) (*domain.TaskList, error)
	ListIDs(ctx context.Context) ([]string, error)
	Ping(ctx context.Context) error
}

type TaskRepository interface {
	// Create stores a new task and fails with domain.ErrTaskConflict if the id is taken.
	Create(ctx context.Context, task *domain.Task) error
	Get(ctx context.Context, listID, taskID string) (*domain.Task, error)
	Update(ctx context.Context, task *domain.Task) error
	Delete(ctx context.Context, listID, taskID string) error
	// DeleteMany removes every given task of a list, ignoring ones already gone.
	DeleteMany(ctx context.Context, listID string, taskIDs []string) error
}
