package handlers

import (
	"context"

	"todo-list-service/internal/core/services"

	"github.com/gin-gonic/gin"
)

// Pinger reports whether the backing cache answers.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	listSvc   *services.TaskListService
	taskSvc   *services.TaskService
	backupSvc *services.BackupService
	cache     Pinger
}

func New(
	listSvc *services.TaskListService,
	taskSvc *services.TaskService,
	backupSvc *services.BackupService,
	cache Pinger,
) *Handler {
	return &Handler{
		listSvc:   listSvc,
		taskSvc:   taskSvc,
		backupSvc: backupSvc,
		cache:     cache,
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	// System
	r.GET("/", h.Root)
	r.GET("/docs", h.Docs)
	r.GET("/healthz", h.Healthz)

	// Lists
	r.POST("/todo_lists/", h.CreateTaskList)
	r.GET("/todo_lists/:list_id", h.GetTaskList)
	r.DELETE("/todo_lists/:list_id", h.DeleteTaskList)

	// Tasks
	r.POST("/todo_lists/:list_id", h.AddTask)
	r.GET("/todo_lists/:list_id/:task_id", h.GetTask)
	r.PUT("/todo_lists/:list_id/:task_id", h.EditTask)
	r.DELETE("/todo_lists/:list_id/:task_id", h.DeleteTask)

	// Backup
	r.POST("/backup", h.CreateBackup)
}
