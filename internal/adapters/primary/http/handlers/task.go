package handlers

import (
	"fmt"
	"net/http"

	"todo-list-service/internal/adapters/primary/http/dto"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func (h *Handler) AddTask(c *gin.Context) {
	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.taskSvc.Add(c.Request.Context(), c.Param("list_id"), req.Name, *req.Description, req.Status, req.DueDate)
	if err != nil {
		log.WithError(err).Error("add task failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTaskResponse(task))
}

func (h *Handler) EditTask(c *gin.Context) {
	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	update, err := req.ToTaskUpdate()
	if err != nil {
		mapDomainError(c, err)
		return
	}

	task, err := h.taskSvc.Edit(c.Request.Context(), c.Param("list_id"), c.Param("task_id"), update)
	if err != nil {
		log.WithError(err).Error("edit task failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskResponse(task))
}

func (h *Handler) GetTask(c *gin.Context) {
	task, err := h.taskSvc.Get(c.Request.Context(), c.Param("list_id"), c.Param("task_id"))
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskResponse(task))
}

func (h *Handler) DeleteTask(c *gin.Context) {
	listID := c.Param("list_id")
	taskID := c.Param("task_id")

	if err := h.taskSvc.Delete(c.Request.Context(), listID, taskID); err != nil {
		log.WithError(err).Error("delete task failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DeleteTaskResponse{
		Message: fmt.Sprintf("Task %s on list %s deleted successfully.", taskID, listID),
		TaskID:  taskID,
		ListID:  listID,
	})
}
