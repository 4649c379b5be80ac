package dto

import "todo-list-service/internal/core/domain"

type CreateTaskListRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
}

type TaskListResponse struct {
	ListID       string  `json:"list_id"`
	Name         string  `json:"name"`
	Description  *string `json:"description"`
	CreationDate string  `json:"creation_date"`
	// Tasks holds task ids, or task documents when task data was requested.
	Tasks []any `json:"tasks"`
}

type DeleteTaskListResponse struct {
	Message      string   `json:"message"`
	ListID       string   `json:"list_id"`
	DeletedTasks []string `json:"deleted_tasks"`
}

func ToTaskListResponse(l *domain.TaskList) TaskListResponse {
	tasks := make([]any, 0, len(l.Tasks))
	for _, id := range l.Tasks {
		tasks = append(tasks, id)
	}
	return TaskListResponse{
		ListID:       l.ListID,
		Name:         l.Name,
		Description:  l.Description,
		CreationDate: l.CreationDate,
		Tasks:        tasks,
	}
}

func ToExpandedTaskListResponse(l *domain.ExpandedTaskList) TaskListResponse {
	entries := l.TaskEntries()
	for i, e := range entries {
		if t, ok := e.(*domain.Task); ok {
			entries[i] = ToTaskResponse(t)
		}
	}
	resp := ToTaskListResponse(l.TaskList)
	resp.Tasks = entries
	return resp
}
