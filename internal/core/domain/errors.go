package domain

import "errors"

// ============================================================================
// Task List Errors
// ============================================================================

// Not found errors
var (
	ErrTaskListNotFound = errors.New("task list not found")
	ErrTaskNotFound     = errors.New("task not found")
)

// Conflict errors
var (
	ErrTaskListConflict = errors.New("there's already a list with this id")
	ErrTaskConflict     = errors.New("there's already a task with this id on the list, use PUT to edit it")
)

// Validation errors
var (
	ErrInvalidListName   = errors.New("list name is required")
	ErrInvalidTaskName   = errors.New("task name is required")
	ErrInvalidTaskStatus = errors.New("invalid task status")
	ErrInvalidID         = errors.New("invalid id")
)

// ============================================================================
// Infrastructure Errors
// ============================================================================

var (
	ErrCacheUnavailable = errors.New("cache is not available")
	ErrBackupFailed     = errors.New("backup failed")
)
