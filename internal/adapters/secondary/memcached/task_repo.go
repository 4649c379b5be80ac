package memcached

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/bradfitz/gomemcache/memcache"
	log "github.com/sirupsen/logrus"

	"todo-list-service/internal/core/domain"
	"todo-list-service/internal/core/ports/output"
)

type taskRepo struct {
	client Client
}

func NewTaskRepository(client Client) ports.TaskRepository {
	return &taskRepo{client: client}
}

func (r *taskRepo) Create(ctx context.Context, task *domain.Task) error {
	value, err := json.Marshal(task)
	if err != nil {
		return fmt.Errorf("marshal task: %w", err)
	}

	err = r.client.Add(&memcache.Item{Key: taskKey(task.AssignedList, task.TaskID), Value: value})
	if errors.Is(err, memcache.ErrNotStored) {
		return fmt.Errorf("%w: task %s on list %s", domain.ErrTaskConflict, task.TaskID, task.AssignedList)
	}
	if err != nil {
		return mapError("create task", err)
	}
	return nil
}

func (r *taskRepo) Get(ctx context.Context, listID, taskID string) (*domain.Task, error) {
	item, err := r.client.Get(taskKey(listID, taskID))
	if errors.Is(err, memcache.ErrCacheMiss) {
		return nil, fmt.Errorf("%w: task %s on list %s", domain.ErrTaskNotFound, taskID, listID)
	}
	if err != nil {
		return nil, mapError("get task", err)
	}

	var task domain.Task
	if err := json.Unmarshal(item.Value, &task); err != nil {
		return nil, fmt.Errorf("decode task %s: %w", taskID, err)
	}
	return &task, nil
}

func (r *taskRepo) Update(ctx context.Context, task *domain.Task) error {
	value, err := json.Marshal(task)
	if err != nil {
		return fmt.Errorf("marshal task: %w", err)
	}
	if err := r.client.Set(&memcache.Item{Key: taskKey(task.AssignedList, task.TaskID), Value: value}); err != nil {
		return mapError("update task", err)
	}
	return nil
}

func (r *taskRepo) Delete(ctx context.Context, listID, taskID string) error {
	err := r.client.Delete(taskKey(listID, taskID))
	if errors.Is(err, memcache.ErrCacheMiss) {
		return fmt.Errorf("%w: task %s on list %s", domain.ErrTaskNotFound, taskID, listID)
	}
	if err != nil {
		return mapError("delete task", err)
	}
	return nil
}

func (r *taskRepo) DeleteMany(ctx context.Context, listID string, taskIDs []string) error {
	for _, taskID := range taskIDs {
		err := r.client.Delete(taskKey(listID, taskID))
		if errors.Is(err, memcache.ErrCacheMiss) {
			log.WithFields(log.Fields{"list_id": listID, "task_id": taskID}).Debug("task already gone")
			continue
		}
		if err != nil {
			return mapError("delete task", err)
		}
	}
	return nil
}
