package service

import (
	"context"
	"errors"
	"math/rand"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"project-task-api/internal/domain"
	"project-task-api/internal/dto"
	"project-task-api/internal/repository"
	"project-task-api/internal/response"
)

// groupColors is the palette a new group's badge color is drawn from.
var groupColors = []string{
	"#579BFC", "#00C875", "#FDAB3D", "#E2445C",
	"#A25DDC", "#037F4C", "#66CCFF", "#FF642E",
}

// GroupService defines the interface for task group business logic
type GroupService interface {
	GetGroups(ctx context.Context, projectID, userID uuid.UUID) ([]dto.GroupResponse, error)
	CreateGroup(ctx context.Context, projectID, userID uuid.UUID, req *dto.CreateGroupRequest) (*dto.GroupResponse, error)
	DeleteGroup(ctx context.Context, projectID, groupID, userID uuid.UUID) error
}

// groupServiceImpl is the implementation of GroupService
type groupServiceImpl struct {
	groupRepo   repository.GroupRepository
	taskRepo    repository.TaskRepository
	projectRepo repository.ProjectRepository
	logger      *zap.Logger
}

// NewGroupService creates a new instance of GroupService
func NewGroupService(groupRepo repository.GroupRepository, taskRepo repository.TaskRepository, projectRepo repository.ProjectRepository, logger *zap.Logger) GroupService {
	return &groupServiceImpl{
		groupRepo:   groupRepo,
		taskRepo:    taskRepo,
		projectRepo: projectRepo,
		logger:      logger,
	}
}

// GetGroups lists a project's groups in display order
func (s *groupServiceImpl) GetGroups(ctx context.Context, projectID, userID uuid.UUID) ([]dto.GroupResponse, error) {
	if err := s.requireMembership(ctx, projectID, userID); err != nil {
		return nil, err
	}

	groups, err := s.groupRepo.FindByProjectID(ctx, projectID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch groups", err.Error())
	}

	responses := make([]dto.GroupResponse, 0, len(groups))
	for _, g := range groups {
		responses = append(responses, dto.NewGroupResponse(g))
	}
	return responses, nil
}

// CreateGroup adds a swimlane to the project's board. Names are unique per
// project; a zero display order places the group after the existing ones.
func (s *groupServiceImpl) CreateGroup(ctx context.Context, projectID, userID uuid.UUID, req *dto.CreateGroupRequest) (*dto.GroupResponse, error) {
	if err := s.requireMembership(ctx, projectID, userID); err != nil {
		return nil, err
	}

	existing, err := s.groupRepo.FindByProjectAndName(ctx, projectID, req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to check group name", err.Error())
	}
	if existing != nil {
		return nil, response.NewAppError(response.ErrCodeAlreadyExists, "Group already exists in this project", "")
	}

	displayOrder := req.DisplayOrder
	if displayOrder == 0 {
		groups, err := s.groupRepo.FindByProjectID(ctx, projectID)
		if err != nil {
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch groups", err.Error())
		}
		for _, g := range groups {
			if g.DisplayOrder >= displayOrder {
				displayOrder = g.DisplayOrder + 1
			}
		}
	}

	group := &domain.TaskGroup{
		ProjectID:    projectID,
		Name:         req.Name,
		DisplayOrder: displayOrder,
		Color:        groupColors[rand.Intn(len(groupColors))],
	}
	if err := s.groupRepo.Create(ctx, group); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create group", err.Error())
	}

	resp := dto.NewGroupResponse(group)
	return &resp, nil
}

// DeleteGroup removes a swimlane. Its tasks are re-pointed to the remaining
// group with the lowest display order, so they never become invisible. The
// last group of a project cannot be deleted.
func (s *groupServiceImpl) DeleteGroup(ctx context.Context, projectID, groupID, userID uuid.UUID) error {
	if err := s.requireMembership(ctx, projectID, userID); err != nil {
		return err
	}

	groups, err := s.groupRepo.FindByProjectID(ctx, projectID)
	if err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to fetch groups", err.Error())
	}

	var target *domain.TaskGroup
	var fallback *domain.TaskGroup
	for _, g := range groups {
		if g.ID == groupID {
			target = g
			continue
		}
		// FindByProjectID returns groups in display order, so the first
		// non-target group is the fallback.
		if fallback == nil {
			fallback = g
		}
	}
	if target == nil {
		return response.NewNotFoundError("Group not found", "")
	}
	if fallback == nil {
		return response.NewValidationError("Cannot delete the last group of a project", "")
	}

	if err := s.taskRepo.RepointGroup(ctx, projectID, target.Name, fallback.Name); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to move tasks out of group", err.Error())
	}
	if err := s.groupRepo.Delete(ctx, groupID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete group", err.Error())
	}

	s.logger.Info("Group deleted, tasks re-pointed",
		zap.String("project_id", projectID.String()),
		zap.String("deleted_group", target.Name),
		zap.String("fallback_group", fallback.Name))
	return nil
}

func (s *groupServiceImpl) requireMembership(ctx context.Context, projectID, userID uuid.UUID) error {
	isMember, err := s.projectRepo.IsProjectMember(ctx, projectID, userID)
	if err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to check membership", err.Error())
	}
	if !isMember {
		return response.NewForbiddenError("You are not a member of this project", "")
	}
	return nil
}
