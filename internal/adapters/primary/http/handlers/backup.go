package handlers

import (
	"net/http"

	"todo-list-service/internal/adapters/primary/http/dto"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func (h *Handler) CreateBackup(c *gin.Context) {
	backup, err := h.backupSvc.Create(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("create backup failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.BackupResponse{
		Name:     backup.Name,
		Location: backup.Location,
		Lists:    backup.Lists,
	})
}
