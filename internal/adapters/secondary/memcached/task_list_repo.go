package memcached

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/bradfitz/gomemcache/memcache"

	"todo-list-service/internal/core/domain"
	"todo-list-service/internal/core/ports/output"
)

type taskListRepo struct {
	client Client

	// mu serializes read-modify-write cycles on list documents.
	mu sync.Mutex

	indexMu sync.RWMutex
	index   map[string]struct{}
}

func NewTaskListRepository(client Client) ports.TaskListRepository {
	return &taskListRepo{client: client, index: make(map[string]struct{})}
}

func (r *taskListRepo) Create(ctx context.Context, list *domain.TaskList) error {
	value, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("marshal task list: %w", err)
	}

	err = r.client.Add(&memcache.Item{Key: taskListKey(list.ListID), Value: value})
	if errors.Is(err, memcache.ErrNotStored) {
		return fmt.Errorf("%w: %s", domain.ErrTaskListConflict, list.ListID)
	}
	if err != nil {
		return mapError("create task list", err)
	}

	r.indexMu.Lock()
	r.index[list.ListID] = struct{}{}
	r.indexMu.Unlock()
	return nil
}

func (r *taskListRepo) Get(ctx context.Context, listID string) (*domain.TaskList, error) {
	item, err := r.client.Get(taskListKey(listID))
	if errors.Is(err, memcache.ErrCacheMiss) {
		return nil, fmt.Errorf("%w: %s", domain.ErrTaskListNotFound, listID)
	}
	if err != nil {
		return nil, mapError("get task list", err)
	}

	var list domain.TaskList
	if err := json.Unmarshal(item.Value, &list); err != nil {
		return nil, fmt.Errorf("decode task list %s: %w", listID, err)
	}
	if list.Tasks == nil {
		list.Tasks = []string{}
	}
	return &list, nil
}

func (r *taskListRepo) Update(ctx context.Context, list *domain.TaskList) error {
	value, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("marshal task list: %w", err)
	}
	if err := r.client.Set(&memcache.Item{Key: taskListKey(list.ListID), Value: value}); err != nil {
		return mapError("update task list", err)
	}
	return nil
}

func (r *taskListRepo) Delete(ctx context.Context, listID string) error {
	err := r.client.Delete(taskListKey(listID))
	if errors.Is(err, memcache.ErrCacheMiss) {
		r.forget(listID)
		return fmt.Errorf("%w: %s", domain.ErrTaskListNotFound, listID)
	}
	if err != nil {
		return mapError("delete task list", err)
	}
	r.forget(listID)
	return nil
}

func (r *taskListRepo) Mutate(ctx context.Context, listID string, fn func(list *domain.TaskList) error) (*domain.TaskList, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list, err := r.Get(ctx, listID)
	if err != nil {
		return nil, err
	}
	if err := fn(list); err != nil {
		return nil, err
	}
	if err := r.Update(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

// ListIDs returns the ids of lists created through this process, sorted.
func (r *taskListRepo) ListIDs(ctx context.Context) ([]string, error) {
	r.indexMu.RLock()
	ids := make([]string, 0, len(r.index))
	for id := range r.index {
		ids = append(ids, id)
	}
	r.indexMu.RUnlock()

	sort.Strings(ids)
	return ids, nil
}

func (r *taskListRepo) Ping(ctx context.Context) error {
	if err := r.client.Ping(); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrCacheUnavailable, err)
	}
	return nil
}

func (r *taskListRepo) forget(listID string) {
	r.indexMu.Lock()
	delete(r.index, listID)
	r.indexMu.Unlock()
}
