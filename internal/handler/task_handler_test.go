package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"project-task-api/internal/dto"
	"project-task-api/internal/response"
)

func jsonReader(t *testing.T, body interface{}) io.Reader {
	t.Helper()
	jsonBody, err := json.Marshal(body)
	require.NoError(t, err)
	return bytes.NewReader(jsonBody)
}

func setupTaskRouter(svc *mockTaskService, userID uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewTaskHandler(svc)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	})
	router.POST("/tasks", handler.CreateTask)
	router.GET("/tasks/:taskId", handler.GetTask)
	router.PATCH("/tasks/:taskId", handler.UpdateTask)
	router.DELETE("/tasks/:taskId", handler.DeleteTask)
	return router
}

func TestCreateTask_Endpoint(t *testing.T) {
	projectID := uuid.New()
	var gotReq *dto.CreateTaskRequest
	svc := &mockTaskService{
		createTaskFunc: func(ctx context.Context, req *dto.CreateTaskRequest, userID uuid.UUID) (*dto.TaskResponse, error) {
			gotReq = req
			return &dto.TaskResponse{ID: uuid.New(), ProjectID: req.ProjectID, Name: "새로운 업무"}, nil
		},
	}
	router := setupTaskRouter(svc, uuid.New())

	w := postJSON(router, "/tasks", dto.CreateTaskRequest{
		ProjectID: projectID,
		Level:     1,
		Group:     "할 일",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, gotReq)
	assert.Equal(t, projectID, gotReq.ProjectID)
	assert.Contains(t, w.Body.String(), "새로운 업무")
}

func TestCreateTask_RejectsLevelOutOfRange(t *testing.T) {
	router := setupTaskRouter(&mockTaskService{}, uuid.New())

	w := postJSON(router, "/tasks", dto.CreateTaskRequest{
		ProjectID: uuid.New(),
		Level:     4,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateTask_ForbiddenForNonMember(t *testing.T) {
	svc := &mockTaskService{
		createTaskFunc: func(ctx context.Context, req *dto.CreateTaskRequest, userID uuid.UUID) (*dto.TaskResponse, error) {
			return nil, response.NewForbiddenError("Not a member of this project", "")
		},
	}
	router := setupTaskRouter(svc, uuid.New())

	w := postJSON(router, "/tasks", dto.CreateTaskRequest{ProjectID: uuid.New(), Level: 1})

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestUpdateTask_Endpoint(t *testing.T) {
	taskID := uuid.New()
	var gotReq *dto.UpdateTaskRequest
	svc := &mockTaskService{
		updateTaskFunc: func(ctx context.Context, tid, uid uuid.UUID, req *dto.UpdateTaskRequest) (*dto.TaskResponse, error) {
			gotReq = req
			return &dto.TaskResponse{ID: tid}, nil
		},
	}
	router := setupTaskRouter(svc, uuid.New())

	name := "이름 변경"
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/tasks/"+taskID.String(),
		jsonReader(t, dto.UpdateTaskRequest{Name: &name}))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, gotReq)
	require.NotNil(t, gotReq.Name)
	assert.Equal(t, "이름 변경", *gotReq.Name)
	assert.Nil(t, gotReq.Status, "absent fields stay nil so the merge skips them")
}

func TestUpdateTask_NotFound(t *testing.T) {
	svc := &mockTaskService{
		updateTaskFunc: func(ctx context.Context, tid, uid uuid.UUID, req *dto.UpdateTaskRequest) (*dto.TaskResponse, error) {
			return nil, response.NewNotFoundError("Task not found", "")
		},
	}
	router := setupTaskRouter(svc, uuid.New())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/tasks/"+uuid.New().String(),
		jsonReader(t, dto.UpdateTaskRequest{}))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteTask_Endpoint(t *testing.T) {
	taskID := uuid.New()
	svc := &mockTaskService{}
	router := setupTaskRouter(svc, uuid.New())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/tasks/"+taskID.String(), nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), taskID.String())
}

func TestGetTask_InvalidID(t *testing.T) {
	router := setupTaskRouter(&mockTaskService{}, uuid.New())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/tasks/not-a-uuid", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
