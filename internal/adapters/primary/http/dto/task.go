package dto

import "todo-list-service/internal/core/domain"

type CreateTaskRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description" binding:"required"`
	Status      string  `json:"status"`
	DueDate     *string `json:"due_date"`
}

type UpdateTaskRequest struct {
	Description *string `json:"description"`
	Status      *string `json:"status"`
	DueDate     *string `json:"due_date"`
}

type TaskResponse struct {
	TaskID       string  `json:"task_id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Status       string  `json:"status"`
	DueDate      *string `json:"due_date"`
	AssignedList string  `json:"assigned_list"`
	CreationDate string  `json:"creation_date"`
}

type DeleteTaskResponse struct {
	Message string `json:"message"`
	TaskID  string `json:"task_id"`
	ListID  string `json:"list_id"`
}

func ToTaskResponse(t *domain.Task) TaskResponse {
	return TaskResponse{
		TaskID:       t.TaskID,
		Name:         t.Name,
		Description:  t.Description,
		Status:       string(t.Status),
		DueDate:      t.DueDate,
		AssignedList: t.AssignedList,
		CreationDate: t.CreationDate,
	}
}

// ToTaskUpdate validates the optional status and converts the request.
func (r UpdateTaskRequest) ToTaskUpdate() (domain.TaskUpdate, error) {
	update := domain.TaskUpdate{
		Description: r.Description,
		DueDate:     r.DueDate,
	}
	if r.Status != nil {
		st, err := domain.ParseTaskStatus(*r.Status)
		if err != nil {
			return domain.TaskUpdate{}, err
		}
		update.Status = &st
	}
	return update, nil
}
