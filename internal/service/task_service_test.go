package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"project-task-api/internal/domain"
	"project-task-api/internal/dto"
	"project-task-api/internal/response"
)

func memberProjectRepo() *MockProjectRepository {
	return &MockProjectRepository{
		IsProjectMemberFunc: func(ctx context.Context, projectID, userID uuid.UUID) (bool, error) {
			return true, nil
		},
	}
}

func assertAppErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	appErr, ok := err.(*response.AppError)
	require.True(t, ok, "expected *response.AppError, got %T", err)
	assert.Equal(t, code, appErr.Code)
}

func TestCreateTask_AppliesDefaults(t *testing.T) {
	projectID := uuid.New()
	var created *domain.Task

	taskRepo := &MockTaskRepository{
		CreateFunc: func(ctx context.Context, task *domain.Task) error {
			task.ID = uuid.New()
			created = task
			return nil
		},
	}
	groupRepo := &MockGroupRepository{
		FindByProjectIDFunc: func(ctx context.Context, pid uuid.UUID) ([]*domain.TaskGroup, error) {
			return []*domain.TaskGroup{
				{BaseModel: domain.BaseModel{ID: uuid.New()}, ProjectID: pid, Name: "할 일", DisplayOrder: 0},
				{BaseModel: domain.BaseModel{ID: uuid.New()}, ProjectID: pid, Name: "완료됨", DisplayOrder: 1},
			}, nil
		},
	}

	svc := NewTaskService(taskRepo, groupRepo, memberProjectRepo(), nil, nil, zap.NewNop())

	resp, err := svc.CreateTask(context.Background(), &dto.CreateTaskRequest{
		ProjectID: projectID,
		Level:     1,
	}, uuid.New())

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, domain.DefaultTaskName, created.Name)
	assert.Equal(t, domain.TaskStatusEmpty, created.Status)
	assert.Equal(t, domain.TaskPriorityEmpty, created.Priority)
	assert.Equal(t, "할 일", created.GroupName, "defaults to the project's first group")
	assert.Equal(t, 0.0, created.Budget)
	assert.Equal(t, created.Name, resp.Name)
}

func TestCreateTask_FallbackGroupWhenProjectHasNone(t *testing.T) {
	taskRepo := &MockTaskRepository{
		CreateFunc: func(ctx context.Context, task *domain.Task) error { return nil },
	}
	groupRepo := &MockGroupRepository{
		FindByProjectIDFunc: func(ctx context.Context, pid uuid.UUID) ([]*domain.TaskGroup, error) {
			return nil, nil
		},
	}

	svc := NewTaskService(taskRepo, groupRepo, memberProjectRepo(), nil, nil, zap.NewNop())

	resp, err := svc.CreateTask(context.Background(), &dto.CreateTaskRequest{
		ProjectID: uuid.New(),
		Level:     1,
	}, uuid.New())

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultGroupTodo, resp.Group)
}

func TestCreateTask_LevelParentRules(t *testing.T) {
	svc := NewTaskService(&MockTaskRepository{}, &MockGroupRepository{}, memberProjectRepo(), nil, nil, zap.NewNop())
	parentID := uuid.New()

	t.Run("level 2 without parent rejected", func(t *testing.T) {
		_, err := svc.CreateTask(context.Background(), &dto.CreateTaskRequest{
			ProjectID: uuid.New(),
			Level:     2,
		}, uuid.New())
		assertAppErrorCode(t, err, response.ErrCodeValidation)
	})

	t.Run("level 1 with parent rejected", func(t *testing.T) {
		_, err := svc.CreateTask(context.Background(), &dto.CreateTaskRequest{
			ProjectID: uuid.New(),
			Level:     1,
			ParentID:  &parentID,
		}, uuid.New())
		assertAppErrorCode(t, err, response.ErrCodeValidation)
	})

	t.Run("level 3 with parent accepted", func(t *testing.T) {
		_, err := svc.CreateTask(context.Background(), &dto.CreateTaskRequest{
			ProjectID: uuid.New(),
			Level:     3,
			ParentID:  &parentID,
			Group:     "할 일",
		}, uuid.New())
		assert.NoError(t, err)
	})
}

func TestCreateTask_DateRangeValidation(t *testing.T) {
	svc := NewTaskService(&MockTaskRepository{}, &MockGroupRepository{}, memberProjectRepo(), nil, nil, zap.NewNop())

	_, err := svc.CreateTask(context.Background(), &dto.CreateTaskRequest{
		ProjectID: uuid.New(),
		Level:     1,
		StartDate: "2024-07-01",
		EndDate:   "2024-06-01",
		Group:     "할 일",
	}, uuid.New())

	assertAppErrorCode(t, err, response.ErrCodeValidation)
}

func TestCreateTask_NonMemberForbidden(t *testing.T) {
	projectRepo := &MockProjectRepository{
		IsProjectMemberFunc: func(ctx context.Context, projectID, userID uuid.UUID) (bool, error) {
			return false, nil
		},
	}
	svc := NewTaskService(&MockTaskRepository{}, &MockGroupRepository{}, projectRepo, nil, nil, zap.NewNop())

	_, err := svc.CreateTask(context.Background(), &dto.CreateTaskRequest{
		ProjectID: uuid.New(),
		Level:     1,
	}, uuid.New())

	assertAppErrorCode(t, err, response.ErrCodeForbidden)
}

func TestUpdateTask_MergesOnlyPresentFields(t *testing.T) {
	taskID := uuid.New()
	projectID := uuid.New()
	var gotFields map[string]interface{}

	task := &domain.Task{
		BaseModel: domain.BaseModel{ID: taskID},
		ProjectID: projectID,
		Level:     1,
		Name:      "old",
		Status:    domain.TaskStatusEmpty,
	}

	taskRepo := &MockTaskRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
			return task, nil
		},
		UpdateFieldsFunc: func(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
			gotFields = fields
			return nil
		},
	}

	svc := NewTaskService(taskRepo, &MockGroupRepository{}, memberProjectRepo(), nil, nil, zap.NewNop())

	name := "new name"
	status := domain.TaskStatusDone
	collapsed := true
	_, err := svc.UpdateTask(context.Background(), taskID, uuid.New(), &dto.UpdateTaskRequest{
		Name:      &name,
		Status:    &status,
		Collapsed: &collapsed,
	})

	require.NoError(t, err)
	require.NotNil(t, gotFields)
	assert.Equal(t, "new name", gotFields["name"])
	assert.Equal(t, domain.TaskStatusDone, gotFields["status"])
	assert.Equal(t, true, gotFields["collapsed"])
	assert.NotContains(t, gotFields, "assignee")
	assert.NotContains(t, gotFields, "group_name")
	assert.NotContains(t, gotFields, "budget")
}

func TestUpdateTask_NotFound(t *testing.T) {
	taskRepo := &MockTaskRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := NewTaskService(taskRepo, &MockGroupRepository{}, memberProjectRepo(), nil, nil, zap.NewNop())

	_, err := svc.UpdateTask(context.Background(), uuid.New(), uuid.New(), &dto.UpdateTaskRequest{})
	assertAppErrorCode(t, err, response.ErrCodeNotFound)
}

func TestDeleteTask_NoCascade(t *testing.T) {
	taskID := uuid.New()
	var deletedIDs []uuid.UUID

	taskRepo := &MockTaskRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
			return &domain.Task{BaseModel: domain.BaseModel{ID: id}, ProjectID: uuid.New()}, nil
		},
		DeleteFunc: func(ctx context.Context, id uuid.UUID) error {
			deletedIDs = append(deletedIDs, id)
			return nil
		},
	}

	svc := NewTaskService(taskRepo, &MockGroupRepository{}, memberProjectRepo(), nil, nil, zap.NewNop())

	err := svc.DeleteTask(context.Background(), taskID, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{taskID}, deletedIDs, "only the target is deleted, children stay behind")
}

func TestCreateTask_ConfirmsAttachments(t *testing.T) {
	attachmentID := uuid.New()
	var gotEntityType domain.EntityType
	var gotEntityID uuid.UUID

	attachmentRepo := &MockAttachmentRepository{
		FindByIDsFunc: tempAttachmentsOf(domain.EntityTypeTask),
		ConfirmAttachmentsFunc: func(ctx context.Context, attachmentIDs []uuid.UUID, entityType domain.EntityType, entityID uuid.UUID) error {
			gotEntityType = entityType
			gotEntityID = entityID
			return nil
		},
	}
	var created *domain.Task
	taskRepo := &MockTaskRepository{
		CreateFunc: func(ctx context.Context, task *domain.Task) error {
			task.ID = uuid.New()
			created = task
			return nil
		},
	}

	svc := NewTaskService(taskRepo, &MockGroupRepository{}, memberProjectRepo(), attachmentSvcOver(attachmentRepo), nil, zap.NewNop())

	_, err := svc.CreateTask(context.Background(), &dto.CreateTaskRequest{
		ProjectID:     uuid.New(),
		Level:         1,
		Name:          "기획",
		AttachmentIDs: []uuid.UUID{attachmentID},
	}, uuid.New())

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, domain.EntityTypeTask, gotEntityType)
	assert.Equal(t, created.ID, gotEntityID)
}

func TestCreateTask_AttachmentFailureRollsBack(t *testing.T) {
	attachmentRepo := &MockAttachmentRepository{
		// A MEETING upload cannot be confirmed against a task
		FindByIDsFunc: tempAttachmentsOf(domain.EntityTypeMeeting),
	}
	var deletedID uuid.UUID
	taskRepo := &MockTaskRepository{
		CreateFunc: func(ctx context.Context, task *domain.Task) error {
			task.ID = uuid.New()
			return nil
		},
		DeleteFunc: func(ctx context.Context, id uuid.UUID) error {
			deletedID = id
			return nil
		},
	}

	svc := NewTaskService(taskRepo, &MockGroupRepository{}, memberProjectRepo(), attachmentSvcOver(attachmentRepo), nil, zap.NewNop())

	_, err := svc.CreateTask(context.Background(), &dto.CreateTaskRequest{
		ProjectID:     uuid.New(),
		Level:         1,
		Name:          "기획",
		AttachmentIDs: []uuid.UUID{uuid.New()},
	}, uuid.New())

	assertAppErrorCode(t, err, response.ErrCodeValidation)
	assert.NotEqual(t, uuid.Nil, deletedID)
}
