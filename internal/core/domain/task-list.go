package domain

type TaskList struct {
	ListID       string   `json:"list_id"`
	Name         string   `json:"name"`
	Description  *string  `json:"description"`
	CreationDate string   `json:"creation_date"`
	Tasks        []string `json:"tasks"`
}

// RemoveTask drops taskID from the list and reports whether it was present.
func (l *TaskList) RemoveTask(taskID string) bool {
	for i, id := range l.Tasks {
		if id == taskID {
			l.Tasks = append(l.Tasks[:i], l.Tasks[i+1:]...)
			return true
		}
	}
	return false
}

// HasTask reports whether taskID is assigned to the list.
func (l *TaskList) HasTask(taskID string) bool {
	for _, id := range l.Tasks {
		if id == taskID {
			return true
		}
	}
	return false
}

// ExpandedTaskList is a list whose task ids were resolved against the cache.
// Ids whose task documents are gone have no entry in Data.
type ExpandedTaskList struct {
	*TaskList
	Data map[string]*Task
}

// Backup is a point-in-time snapshot of every known list.
type Backup struct {
	Name     string
	Location string
	Lists    int
}

// TaskEntries returns the list's tasks in order, each one either the resolved
// *Task or, when the task document is gone, its bare id.
func (e *ExpandedTaskList) TaskEntries() []any {
	entries := make([]any, 0, len(e.Tasks))
	for _, id := range e.Tasks {
		if t, ok := e.Data[id]; ok {
			entries = append(entries, t)
			continue
		}
		entries = append(entries, id)
	}
	return entries
}
