package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// CreationDateLayout renders creation dates as "19-Oct-2026 (10:00:00)".
const CreationDateLayout = "02-Jan-2006 (15:04:05)"

// maxIDLength leaves room for the key prefixes inside memcached's 250 byte limit.
const maxIDLength = 100

type TaskStatus string

const (
	TaskStatusAssigned  TaskStatus = "Assigned"
	TaskStatusInProcess TaskStatus = "In Process"
	TaskStatusPending   TaskStatus = "Pending"
	TaskStatusClosed    TaskStatus = "Closed"
	TaskStatusCanceled  TaskStatus = "Canceled"
)

// ParseTaskStatus validates s. The empty string yields the default status.
func ParseTaskStatus(s string) (TaskStatus, error) {
	switch st := TaskStatus(s); st {
	case "":
		return TaskStatusAssigned, nil
	case TaskStatusAssigned, TaskStatusInProcess, TaskStatusPending, TaskStatusClosed, TaskStatusCanceled:
		return st, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidTaskStatus, s)
	}
}

type Task struct {
	TaskID       string     `json:"task_id"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	Status       TaskStatus `json:"status"`
	DueDate      *string    `json:"due_date"`
	AssignedList string     `json:"assigned_list"`
	CreationDate string     `json:"creation_date"`
}

// TaskUpdate carries the editable task fields. Nil fields are left untouched.
type TaskUpdate struct {
	Description *string
	Status      *TaskStatus
	DueDate     *string
}

// Apply copies the set fields of u onto t.
func (u TaskUpdate) Apply(t *Task) {
	if u.Description != nil {
		t.Description = *u.Description
	}
	if u.Status != nil {
		t.Status = *u.Status
	}
	if u.DueDate != nil {
		due := *u.DueDate
		t.DueDate = &due
	}
}

// MakeID derives a list or task id from its display name.
func MakeID(name string) string {
	return strings.ReplaceAll(name, " ", "_")
}

// ValidateID reports whether id can be used as part of a cache key.
func ValidateID(id string) error {
	if id == "" || len(id) > maxIDLength {
		return fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	for _, r := range id {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return fmt.Errorf("%w: %q", ErrInvalidID, id)
		}
	}
	return nil
}

// FormatCreationDate stamps t the way stored documents expect.
func FormatCreationDate(t time.Time) string {
	return t.Format(CreationDateLayout)
}
