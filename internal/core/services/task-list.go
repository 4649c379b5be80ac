package services

import (
	"context"
	"errors"
	"time"

	"todo-list-service/internal/core/domain"
	"todo-list-service/internal/core/ports/output"
)

type TaskListService struct {
	lists ports.TaskListRepository
	tasks ports.TaskRepository
	now   func() time.Time
}

func NewTaskListService(lists ports.TaskListRepository, tasks ports.TaskRepository) *TaskListService {
	return &TaskListService{lists: lists, tasks: tasks, now: time.Now}
}

func (s *TaskListService) Create(ctx context.Context, name string, description *string) (*domain.TaskList, error) {
	if name == "" {
		return nil, domain.ErrInvalidListName
	}

	listID := domain.MakeID(name)
	if err := domain.ValidateID(listID); err != nil {
		return nil, err
	}

	list := &domain.TaskList{
		ListID:       listID,
		Name:         name,
		Description:  description,
		CreationDate: domain.FormatCreationDate(s.now()),
		Tasks:        []string{},
	}

	if err := s.lists.Create(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

// Get loads a list. With withTaskData set, the task documents still present in
// the cache are resolved as well.
func (s *TaskListService) Get(ctx context.Context, listID string, withTaskData bool) (*domain.ExpandedTaskList, error) {
	if err := domain.ValidateID(listID); err != nil {
		return nil, err
	}

	list, err := s.lists.Get(ctx, listID)
	if err != nil {
		return nil, err
	}

	expanded := &domain.ExpandedTaskList{TaskList: list, Data: map[string]*domain.Task{}}
	if !withTaskData {
		return expanded, nil
	}

	for _, taskID := range list.Tasks {
		task, err := s.tasks.Get(ctx, listID, taskID)
		if errors.Is(err, domain.ErrTaskNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		expanded.Data[taskID] = task
	}
	return expanded, nil
}

// Delete removes a list and every task assigned to it, returning the task ids.
func (s *TaskListService) Delete(ctx context.Context, listID string) ([]string, error) {
	if err := domain.ValidateID(listID); err != nil {
		return nil, err
	}

	list, err := s.lists.Get(ctx, listID)
	if err != nil {
		return nil, err
	}

	if err := s.tasks.DeleteMany(ctx, listID, list.Tasks); err != nil {
		return nil, err
	}
	if err := s.lists.Delete(ctx, listID); err != nil {
		return nil, err
	}
	return list.Tasks, nil
}
