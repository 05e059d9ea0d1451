package service

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"project-task-api/internal/domain"
	"project-task-api/internal/dto"
	"project-task-api/internal/metrics"
	"project-task-api/internal/repository"
	"project-task-api/internal/response"
)

// TaskService is the mutation gateway for board tasks
type TaskService interface {
	CreateTask(ctx context.Context, req *dto.CreateTaskRequest, userID uuid.UUID) (*dto.TaskResponse, error)
	GetTask(ctx context.Context, taskID, userID uuid.UUID) (*dto.TaskResponse, error)
	GetTasksByProject(ctx context.Context, projectID, userID uuid.UUID) ([]dto.TaskResponse, error)
	UpdateTask(ctx context.Context, taskID, userID uuid.UUID, req *dto.UpdateTaskRequest) (*dto.TaskResponse, error)
	DeleteTask(ctx context.Context, taskID, userID uuid.UUID) error
}

// taskServiceImpl is the implementation of TaskService
type taskServiceImpl struct {
	taskRepo      repository.TaskRepository
	groupRepo     repository.GroupRepository
	projectRepo   repository.ProjectRepository
	attachmentSvc AttachmentService
	metrics       *metrics.Metrics
	logger        *zap.Logger
}

// NewTaskService creates a new instance of TaskService
func NewTaskService(taskRepo repository.TaskRepository, groupRepo repository.GroupRepository, projectRepo repository.ProjectRepository, attachmentSvc AttachmentService, m *metrics.Metrics, logger *zap.Logger) TaskService {
	return &taskServiceImpl{
		taskRepo:      taskRepo,
		groupRepo:     groupRepo,
		projectRepo:   projectRepo,
		attachmentSvc: attachmentSvc,
		metrics:       m,
		logger:        logger,
	}
}

// CreateTask adds a node to the board. Omitted fields get the board's
// defaults: the placeholder name, Empty status and priority, zero budget,
// and the project's first group.
func (s *taskServiceImpl) CreateTask(ctx context.Context, req *dto.CreateTaskRequest, userID uuid.UUID) (*dto.TaskResponse, error) {
	if err := s.requireMembership(ctx, req.ProjectID, userID); err != nil {
		return nil, err
	}

	if req.Level > 1 && req.ParentID == nil {
		return nil, response.NewValidationError("Tasks below level 1 require a parent", "")
	}
	if req.Level == 1 && req.ParentID != nil {
		return nil, response.NewValidationError("Level-1 tasks cannot have a parent", "")
	}
	if err := validateDateRange(req.StartDate, req.EndDate); err != nil {
		return nil, err
	}

	task := &domain.Task{
		ProjectID:       req.ProjectID,
		Level:           req.Level,
		ParentID:        req.ParentID,
		Name:            req.Name,
		Assignee:        req.Assignee,
		RoleDescription: req.RoleDescription,
		Scope:           req.Scope,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		GroupName:       req.Group,
		Status:          req.Status,
		Priority:        req.Priority,
		Budget:          req.Budget,
		Memo:            req.Memo,
	}
	if task.Name == "" {
		task.Name = domain.DefaultTaskName
	}
	if task.Status == "" {
		task.Status = domain.TaskStatusEmpty
	}
	if task.Priority == "" {
		task.Priority = domain.TaskPriorityEmpty
	}
	if task.GroupName == "" {
		groups, err := s.groupRepo.FindByProjectID(ctx, req.ProjectID)
		if err != nil || len(groups) == 0 {
			task.GroupName = domain.DefaultGroupTodo
		} else {
			task.GroupName = groups[0].Name
		}
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create task", err.Error())
	}

	if len(req.AttachmentIDs) > 0 {
		if err := s.attachmentSvc.ConfirmAttachments(ctx, req.AttachmentIDs, domain.EntityTypeTask, task.ID); err != nil {
			// Roll the task back so it never references unconfirmed uploads
			if deleteErr := s.taskRepo.Delete(ctx, task.ID); deleteErr != nil {
				s.logger.Error("Failed to rollback task after attachment confirmation failure",
					zap.String("task_id", task.ID.String()),
					zap.Error(deleteErr))
			}
			return nil, err
		}
	}

	if s.metrics != nil {
		s.metrics.IncrementTaskCreated()
	}

	resp := dto.NewTaskResponse(task)
	return &resp, nil
}

// GetTask retrieves a single task
func (s *taskServiceImpl) GetTask(ctx context.Context, taskID, userID uuid.UUID) (*dto.TaskResponse, error) {
	task, err := s.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Task not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch task", err.Error())
	}
	if err := s.requireMembership(ctx, task.ProjectID, userID); err != nil {
		return nil, err
	}
	resp := dto.NewTaskResponse(task)
	return &resp, nil
}

// GetTasksByProject lists every task of a project in creation order
func (s *taskServiceImpl) GetTasksByProject(ctx context.Context, projectID, userID uuid.UUID) ([]dto.TaskResponse, error) {
	if err := s.requireMembership(ctx, projectID, userID); err != nil {
		return nil, err
	}

	tasks, err := s.taskRepo.FindByProjectID(ctx, projectID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch tasks", err.Error())
	}

	responses := make([]dto.TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		responses = append(responses, dto.NewTaskResponse(t))
	}
	return responses, nil
}

// UpdateTask merges the fields present in the request. Level and parent
// consistency is deliberately not re-checked here; the board tolerates any
// stored combination.
func (s *taskServiceImpl) UpdateTask(ctx context.Context, taskID, userID uuid.UUID, req *dto.UpdateTaskRequest) (*dto.TaskResponse, error) {
	task, err := s.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Task not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch task", err.Error())
	}
	if err := s.requireMembership(ctx, task.ProjectID, userID); err != nil {
		return nil, err
	}

	if len(req.AttachmentIDs) > 0 {
		if err := s.attachmentSvc.ConfirmAttachments(ctx, req.AttachmentIDs, domain.EntityTypeTask, taskID); err != nil {
			return nil, err
		}
	}

	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Assignee != nil {
		fields["assignee"] = *req.Assignee
	}
	if req.RoleDescription != nil {
		fields["role_description"] = *req.RoleDescription
	}
	if req.Scope != nil {
		fields["scope"] = *req.Scope
	}
	if req.StartDate != nil {
		fields["start_date"] = *req.StartDate
	}
	if req.EndDate != nil {
		fields["end_date"] = *req.EndDate
	}
	if req.Group != nil {
		fields["group_name"] = *req.Group
	}
	if req.Status != nil {
		fields["status"] = *req.Status
	}
	if req.Priority != nil {
		fields["priority"] = *req.Priority
	}
	if req.Budget != nil {
		fields["budget"] = *req.Budget
	}
	if req.Memo != nil {
		fields["memo"] = *req.Memo
	}
	if req.Collapsed != nil {
		fields["collapsed"] = *req.Collapsed
	}
	if req.Files != nil {
		raw, err := json.Marshal(req.Files)
		if err != nil {
			return nil, response.NewValidationError("Invalid files list", err.Error())
		}
		fields["files"] = datatypes.JSON(raw)
	}

	if len(fields) > 0 {
		if err := s.taskRepo.UpdateFields(ctx, taskID, fields); err != nil {
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update task", err.Error())
		}
	}

	updated, err := s.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch updated task", err.Error())
	}
	resp := dto.NewTaskResponse(updated)
	return &resp, nil
}

// DeleteTask removes a node. Children are not cascaded; they become
// orphans the board simply never reaches.
func (s *taskServiceImpl) DeleteTask(ctx context.Context, taskID, userID uuid.UUID) error {
	task, err := s.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Task not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to fetch task", err.Error())
	}
	if err := s.requireMembership(ctx, task.ProjectID, userID); err != nil {
		return err
	}

	if err := s.taskRepo.Delete(ctx, taskID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete task", err.Error())
	}
	return nil
}

func (s *taskServiceImpl) requireMembership(ctx context.Context, projectID, userID uuid.UUID) error {
	isMember, err := s.projectRepo.IsProjectMember(ctx, projectID, userID)
	if err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to check membership", err.Error())
	}
	if !isMember {
		return response.NewForbiddenError("You are not a member of this project", "")
	}
	return nil
}
