package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"todo-list-service/internal/core/services"
	"todo-list-service/internal/testutil"

	"github.com/gin-gonic/gin"
)

type testEnv struct {
	lists  *testutil.MockTaskListRepo
	tasks  *testutil.MockTaskRepo
	store  *testutil.MockBackupStore
	router *gin.Engine
}

func setupRouter() *testEnv {
	gin.SetMode(gin.TestMode)
	lists := new(testutil.MockTaskListRepo)
	tasks := new(testutil.MockTaskRepo)
	store := new(testutil.MockBackupStore)

	listSvc := services.NewTaskListService(lists, tasks)
	taskSvc := services.NewTaskService(lists, tasks)
	backupSvc := services.NewBackupService(lists, listSvc, store)

	h := New(listSvc, taskSvc, backupSvc, lists)
	r := gin.New()
	h.RegisterRoutes(r.Group("/"))

	return &testEnv{lists: lists, tasks: tasks, store: store, router: r}
}

func (e *testEnv) do(method, path string, body any) *httptest.ResponseRecorder {
	var payload []byte
	if body != nil {
		payload, _ = json.Marshal(body)
	}
	req, _ := http.NewRequest(method, path, bytes.NewReader(payload))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode(w *httptest.ResponseRecorder) map[string]any {
	var resp map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return resp
}
