package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	"todo-list-service/internal/core/domain"
)

// MockTaskListRepo is a mock of TaskListRepository.
type MockTaskListRepo struct {
	mock.Mock
}

func (m *MockTaskListRepo) Create(ctx context.Context, list *domain.TaskList) error {
	args := m.Called(ctx, list)
	return args.Error(0)
}

func (m *MockTaskListRepo) Get(ctx context.Context, listID string) (*domain.TaskList, error) {
	args := m.Called(ctx, listID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TaskList), args.Error(1)
}

func (m *MockTaskListRepo) Update(ctx context.Context, list *domain.TaskList) error {
	args := m.Called(ctx, list)
	return args.Error(0)
}

func (m *MockTaskListRepo) Delete(ctx context.Context, listID string) error {
	args := m.Called(ctx, listID)
	return args.Error(0)
}

// Mutate runs fn against the list returned by the mocked call, so tests can
// assert on the mutation through the returned list.
func (m *MockTaskListRepo) Mutate(ctx context.Context, listID string, fn func(list *domain.TaskList) error) (*domain.TaskList, error) {
	args := m.Called(ctx, listID, fn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	list := args.Get(0).(*domain.TaskList)
	if err := fn(list); err != nil {
		return nil, err
	}
	return list, args.Error(1)
}

func (m *MockTaskListRepo) ListIDs(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockTaskListRepo) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockTaskRepo is a mock of TaskRepository.
type MockTaskRepo struct {
	mock.Mock
}

func (m *MockTaskRepo) Create(ctx context.Context, task *domain.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepo) Get(ctx context.Context, listID, taskID string) (*domain.Task, error) {
	args := m.Called(ctx, listID, taskID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Task), args.Error(1)
}

func (m *MockTaskRepo) Update(ctx context.Context, task *domain.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepo) Delete(ctx context.Context, listID, taskID string) error {
	args := m.Called(ctx, listID, taskID)
	return args.Error(0)
}

func (m *MockTaskRepo) DeleteMany(ctx context.Context, listID string, taskIDs []string) error {
	args := m.Called(ctx, listID, taskIDs)
	return args.Error(0)
}

// MockBackupStore is a mock of BackupStore.
type MockBackupStore struct {
	mock.Mock
}

func (m *MockBackupStore) Save(ctx context.Context, name string, payload []byte) (string, error) {
	args := m.Called(ctx, name, payload)
	return args.String(0), args.Error(1)
}
