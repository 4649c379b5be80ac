package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"todo-list-service/internal/adapters/primary/http/dto"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func (h *Handler) CreateTaskList(c *gin.Context) {
	var req dto.CreateTaskListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	list, err := h.listSvc.Create(c.Request.Context(), req.Name, req.Description)
	if err != nil {
		log.WithError(err).Error("create task list failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTaskListResponse(list))
}

func (h *Handler) GetTaskList(c *gin.Context) {
	withTaskData, err := strconv.ParseBool(c.DefaultQuery("get_task_data", "false"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid get_task_data"})
		return
	}

	list, err := h.listSvc.Get(c.Request.Context(), c.Param("list_id"), withTaskData)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, dto.ToExpandedTaskListResponse(list))
}

func (h *Handler) DeleteTaskList(c *gin.Context) {
	listID := c.Param("list_id")

	deleted, err := h.listSvc.Delete(c.Request.Context(), listID)
	if err != nil {
		log.WithError(err).Error("delete task list failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DeleteTaskListResponse{
		Message:      fmt.Sprintf("%s deleted successfully.", listID),
		ListID:       listID,
		DeletedTasks: deleted,
	})
}
