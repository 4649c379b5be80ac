package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"todo-list-service/internal/core/domain"
	"todo-list-service/internal/core/ports/output"
)

type TaskService struct {
	lists ports.TaskListRepository
	tasks ports.TaskRepository
	now   func() time.Time
}

func NewTaskService(lists ports.TaskListRepository, tasks ports.TaskRepository) *TaskService {
	return &TaskService{lists: lists, tasks: tasks, now: time.Now}
}

// Add creates a task on an existing list and appends it to the list's tasks.
func (s *TaskService) Add(ctx context.Context, listID, name, description, status string, dueDate *string) (*domain.Task, error) {
	if err := domain.ValidateID(listID); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, domain.ErrInvalidTaskName
	}

	st, err := domain.ParseTaskStatus(status)
	if err != nil {
		return nil, err
	}

	if _, err := s.lists.Get(ctx, listID); err != nil {
		return nil, err
	}

	taskID := domain.MakeID(name)
	if err := domain.ValidateID(taskID); err != nil {
		return nil, err
	}

	task := &domain.Task{
		TaskID:       taskID,
		Name:         name,
		Description:  description,
		Status:       st,
		DueDate:      dueDate,
		AssignedList: listID,
		CreationDate: domain.FormatCreationDate(s.now()),
	}

	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, err
	}

	_, err = s.lists.Mutate(ctx, listID, func(list *domain.TaskList) error {
		if !list.HasTask(taskID) {
			list.Tasks = append(list.Tasks, taskID)
		}
		return nil
	})
	if err != nil {
		// The list vanished after the task was stored; do not leave an orphan behind.
		if delErr := s.tasks.Delete(ctx, listID, taskID); delErr != nil && !errors.Is(delErr, domain.ErrTaskNotFound) {
			log.WithError(delErr).WithField("task_id", taskID).Warn("remove orphaned task failed")
		}
		return nil, err
	}

	return task, nil
}

func (s *TaskService) Edit(ctx context.Context, listID, taskID string, update domain.TaskUpdate) (*domain.Task, error) {
	if err := validateIDs(listID, taskID); err != nil {
		return nil, err
	}

	task, err := s.tasks.Get(ctx, listID, taskID)
	if err != nil {
		return nil, err
	}

	update.Apply(task)

	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) Get(ctx context.Context, listID, taskID string) (*domain.Task, error) {
	if err := validateIDs(listID, taskID); err != nil {
		return nil, err
	}
	return s.tasks.Get(ctx, listID, taskID)
}

// Delete removes a task and unassigns it from its list.
func (s *TaskService) Delete(ctx context.Context, listID, taskID string) error {
	if err := validateIDs(listID, taskID); err != nil {
		return err
	}

	if _, err := s.lists.Get(ctx, listID); err != nil {
		return err
	}

	if err := s.tasks.Delete(ctx, listID, taskID); err != nil {
		return err
	}

	_, err := s.lists.Mutate(ctx, listID, func(list *domain.TaskList) error {
		list.RemoveTask(taskID)
		return nil
	})
	if errors.Is(err, domain.ErrTaskListNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("unassign task %s: %w", taskID, err)
	}
	return nil
}

func validateIDs(ids ...string) error {
	for _, id := range ids {
		if err := domain.ValidateID(id); err != nil {
			return err
		}
	}
	return nil
}
