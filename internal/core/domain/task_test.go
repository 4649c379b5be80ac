package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseTaskStatus(t *testing.T) {
	st, err := ParseTaskStatus("")
	assert.NoError(t, err)
	assert.Equal(t, TaskStatusAssigned, st)

	st, err = ParseTaskStatus("In Process")
	assert.NoError(t, err)
	assert.Equal(t, TaskStatusInProcess, st)

	_, err = ParseTaskStatus("Done")
	assert.ErrorIs(t, err, ErrInvalidTaskStatus)
}

func TestMakeID(t *testing.T) {
	assert.Equal(t, "weekly_groceries", MakeID("weekly groceries"))
	assert.Equal(t, "chores", MakeID("chores"))
}

func TestValidateID(t *testing.T) {
	assert.NoError(t, ValidateID("weekly_groceries"))
	assert.ErrorIs(t, ValidateID(""), ErrInvalidID)
	assert.ErrorIs(t, ValidateID("has space"), ErrInvalidID)
	assert.ErrorIs(t, ValidateID("tab\there"), ErrInvalidID)
	assert.ErrorIs(t, ValidateID(strings.Repeat("a", maxIDLength+1)), ErrInvalidID)
}

func TestTaskUpdate_Apply(t *testing.T) {
	due := "2026-11-01"
	task := &Task{Name: "milk", Description: "2 liters", Status: TaskStatusAssigned}

	closed := TaskStatusClosed
	TaskUpdate{Status: &closed, DueDate: &due}.Apply(task)

	assert.Equal(t, "2 liters", task.Description)
	assert.Equal(t, TaskStatusClosed, task.Status)
	assert.Equal(t, "2026-11-01", *task.DueDate)
}

func TestTaskList_RemoveTask(t *testing.T) {
	l := &TaskList{Tasks: []string{"a", "b", "c"}}

	assert.True(t, l.RemoveTask("b"))
	assert.Equal(t, []string{"a", "c"}, l.Tasks)
	assert.False(t, l.RemoveTask("b"))
	assert.True(t, l.HasTask("c"))
}

func TestFormatCreationDate(t *testing.T) {
	ts := time.Date(2026, time.October, 19, 10, 4, 5, 0, time.UTC)
	assert.Equal(t, "19-Oct-2026 (10:04:05)", FormatCreationDate(ts))
}
