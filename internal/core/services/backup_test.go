package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"todo-list-service/internal/core/domain"
	"todo-list-service/internal/testutil"
)

func newBackupService() (*BackupService, *testutil.MockTaskListRepo, *testutil.MockTaskRepo, *testutil.MockBackupStore) {
	lists := new(testutil.MockTaskListRepo)
	tasks := new(testutil.MockTaskRepo)
	store := new(testutil.MockBackupStore)
	svc := NewBackupService(lists, NewTaskListService(lists, tasks), store)
	svc.now = fixedClock
	return svc, lists, tasks, store
}

func TestBackupService_Create(t *testing.T) {
	svc, lists, tasks, store := newBackupService()

	dishes := &domain.Task{TaskID: "dishes", Name: "dishes", Status: domain.TaskStatusAssigned, AssignedList: "chores"}
	lists.On("ListIDs", mock.Anything).Return([]string{"chores", "evicted"}, nil)
	lists.On("Get", mock.Anything, "chores").Return(&domain.TaskList{ListID: "chores", Name: "chores", Tasks: []string{"dishes", "gone"}}, nil)
	lists.On("Get", mock.Anything, "evicted").Return(nil, domain.ErrTaskListNotFound)
	tasks.On("Get", mock.Anything, "chores", "dishes").Return(dishes, nil)
	tasks.On("Get", mock.Anything, "chores", "gone").Return(nil, domain.ErrTaskNotFound)

	var saved []byte
	store.On("Save", mock.Anything, "backup_data_19-10-2026_100000.json", mock.Anything).
		Run(func(args mock.Arguments) { saved = args.Get(2).([]byte) }).
		Return("backup/backup_data_19-10-2026_100000.json", nil)

	backup, err := svc.Create(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, backup.Lists)
	assert.Equal(t, "backup/backup_data_19-10-2026_100000.json", backup.Location)

	var doc []map[string]any
	require.NoError(t, json.Unmarshal(saved, &doc))
	require.Len(t, doc, 1)
	assert.Equal(t, "chores", doc[0]["list_id"])
	entries := doc[0]["tasks"].([]any)
	require.Len(t, entries, 2)
	assert.Equal(t, "dishes", entries[0].(map[string]any)["task_id"])
	assert.Equal(t, "gone", entries[1])
	assert.Contains(t, string(saved), "\n  {")
}

func TestBackupService_Create_Empty(t *testing.T) {
	svc, lists, _, store := newBackupService()

	lists.On("ListIDs", mock.Anything).Return([]string{}, nil)
	store.On("Save", mock.Anything, mock.Anything, []byte("[]")).Return("backup/x.json", nil)

	backup, err := svc.Create(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, backup.Lists)
}

func TestBackupService_Create_CacheDown(t *testing.T) {
	svc, lists, _, store := newBackupService()

	lists.On("ListIDs", mock.Anything).Return([]string{"chores"}, nil)
	lists.On("Get", mock.Anything, "chores").Return(nil, domain.ErrCacheUnavailable)

	_, err := svc.Create(context.Background())
	assert.ErrorIs(t, err, domain.ErrBackupFailed)
	assert.ErrorIs(t, err, domain.ErrCacheUnavailable)
	store.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
}

func TestBackupService_Create_StoreFails(t *testing.T) {
	svc, lists, _, store := newBackupService()

	lists.On("ListIDs", mock.Anything).Return([]string{}, nil)
	store.On("Save", mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("disk full"))

	_, err := svc.Create(context.Background())
	assert.ErrorIs(t, err, domain.ErrBackupFailed)
}
