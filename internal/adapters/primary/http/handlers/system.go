package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	apiTitle   = "Ephemeral TODO List"
	apiVersion = "2.3.0"
)

const apiDescription = `Ephemeral TODO List, save your todo tasks as long as the cache lives.

Lists: create a list with a unique name and an optional description; its id is the name with blanks replaced by '_'. Get a list with task ids or full task data. Deleting a list deletes its tasks.

Tasks: create a task on an existing list with a name, description, status and due date. Get, edit (description, status, due date) and delete tasks.

Backup: save every known list with its tasks. Items evicted by memcached are not included.`

type route struct {
	Method string `json:"method"`
	Path   string `json:"path"`
	Tag    string `json:"tag"`
}

var routes = []route{
	{http.MethodPost, "/todo_lists/", "Lists"},
	{http.MethodGet, "/todo_lists/{list_id}?get_task_data=bool", "Lists"},
	{http.MethodDelete, "/todo_lists/{list_id}", "Lists"},
	{http.MethodPost, "/todo_lists/{list_id}", "Tasks"},
	{http.MethodGet, "/todo_lists/{list_id}/{task_id}", "Tasks"},
	{http.MethodPut, "/todo_lists/{list_id}/{task_id}", "Tasks"},
	{http.MethodDelete, "/todo_lists/{list_id}/{task_id}", "Tasks"},
	{http.MethodPost, "/backup", "Backup"},
}

func (h *Handler) Root(c *gin.Context) {
	c.Redirect(http.StatusTemporaryRedirect, "/docs")
}

func (h *Handler) Docs(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"title":       apiTitle,
		"version":     apiVersion,
		"description": apiDescription,
		"license": gin.H{
			"name": "Apache 2.0",
			"url":  "https://www.apache.org/licenses/LICENSE-2.0.html",
		},
		"routes": routes,
	})
}

func (h *Handler) Healthz(c *gin.Context) {
	if err := h.cache.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
