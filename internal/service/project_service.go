package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"project-task-api/internal/domain"
	"project-task-api/internal/dto"
	"project-task-api/internal/metrics"
	"project-task-api/internal/repository"
	"project-task-api/internal/response"
)

// Badge colors for the seeded default groups.
const (
	defaultGroupTodoColor = "#579BFC"
	defaultGroupDoneColor = "#00C875"
)

// ProjectService defines the interface for project business logic
type ProjectService interface {
	CreateProject(ctx context.Context, req *dto.CreateProjectRequest, userID uuid.UUID) (*dto.ProjectResponse, error)
	GetProjects(ctx context.Context, userID uuid.UUID) ([]*dto.ProjectResponse, error)
	GetProject(ctx context.Context, projectID, userID uuid.UUID) (*dto.ProjectResponse, error)
	UpdateProject(ctx context.Context, projectID, userID uuid.UUID, req *dto.UpdateProjectRequest) (*dto.ProjectResponse, error)
	DeleteProject(ctx context.Context, projectID, userID uuid.UUID) error

	AddMember(ctx context.Context, projectID, userID uuid.UUID, req *dto.AddProjectMemberRequest) (*dto.ProjectMemberResponse, error)
	GetMembers(ctx context.Context, projectID, userID uuid.UUID) ([]dto.ProjectMemberResponse, error)
	UpdateMemberRole(ctx context.Context, projectID, memberID, userID uuid.UUID, req *dto.UpdateProjectMemberRoleRequest) (*dto.ProjectMemberResponse, error)
	RemoveMember(ctx context.Context, projectID, memberID, userID uuid.UUID) error
}

// projectServiceImpl is the implementation of ProjectService
type projectServiceImpl struct {
	projectRepo   repository.ProjectRepository
	groupRepo     repository.GroupRepository
	userRepo      repository.UserRepository
	attachmentSvc AttachmentService
	metrics       *metrics.Metrics
	logger        *zap.Logger
}

// NewProjectService creates a new instance of ProjectService
func NewProjectService(projectRepo repository.ProjectRepository, groupRepo repository.GroupRepository, userRepo repository.UserRepository, attachmentSvc AttachmentService, m *metrics.Metrics, logger *zap.Logger) ProjectService {
	return &projectServiceImpl{
		projectRepo:   projectRepo,
		groupRepo:     groupRepo,
		userRepo:      userRepo,
		attachmentSvc: attachmentSvc,
		metrics:       m,
		logger:        logger,
	}
}

// CreateProject creates a project, seeds its default task groups, and adds
// the creator as manager
func (s *projectServiceImpl) CreateProject(ctx context.Context, req *dto.CreateProjectRequest, userID uuid.UUID) (*dto.ProjectResponse, error) {
	if err := validateDateRange(req.StartDate, req.EndDate); err != nil {
		return nil, err
	}

	project := &domain.Project{
		Name:       req.Name,
		Department: req.Department,
		Category:   req.Category,
		Status:     domain.ProjectStatusPlanning,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
	}
	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create project", err.Error())
	}

	if len(req.AttachmentIDs) > 0 {
		if err := s.attachmentSvc.ConfirmAttachments(ctx, req.AttachmentIDs, domain.EntityTypeProject, project.ID); err != nil {
			if deleteErr := s.projectRepo.Delete(ctx, project.ID); deleteErr != nil {
				s.logger.Error("Failed to rollback project after attachment confirmation failure",
					zap.String("project_id", project.ID.String()),
					zap.Error(deleteErr))
			}
			return nil, err
		}
	}

	groups := []*domain.TaskGroup{
		{ProjectID: project.ID, Name: domain.DefaultGroupTodo, DisplayOrder: 0, Color: defaultGroupTodoColor},
		{ProjectID: project.ID, Name: domain.DefaultGroupDone, DisplayOrder: 1, Color: defaultGroupDoneColor},
	}
	if err := s.groupRepo.CreateBatch(ctx, groups); err != nil {
		// Roll the project back so a half-seeded board never surfaces
		if deleteErr := s.projectRepo.Delete(ctx, project.ID); deleteErr != nil {
			s.logger.Error("Failed to rollback project after group seeding failure",
				zap.String("project_id", project.ID.String()),
				zap.Error(deleteErr))
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create default groups", err.Error())
	}

	member := &domain.ProjectMember{
		ProjectID: project.ID,
		UserID:    userID,
		Role:      domain.ProjectRoleManager,
	}
	if err := s.projectRepo.AddMember(ctx, member); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to add project manager", err.Error())
	}

	if s.metrics != nil {
		s.metrics.IncrementProjectCreated()
	}

	created, err := s.projectRepo.FindByID(ctx, project.ID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch created project", err.Error())
	}
	return dto.NewProjectResponse(created), nil
}

// GetProjects lists the projects the user is a member of
func (s *projectServiceImpl) GetProjects(ctx context.Context, userID uuid.UUID) ([]*dto.ProjectResponse, error) {
	projects, err := s.projectRepo.FindByMemberUserID(ctx, userID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch projects", err.Error())
	}

	responses := make([]*dto.ProjectResponse, 0, len(projects))
	for _, project := range projects {
		responses = append(responses, dto.NewProjectResponse(project))
	}
	return responses, nil
}

// GetProject retrieves a project with its groups, tasks, meetings and members
func (s *projectServiceImpl) GetProject(ctx context.Context, projectID, userID uuid.UUID) (*dto.ProjectResponse, error) {
	project, err := s.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Project not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch project", err.Error())
	}

	if err := s.requireMembership(ctx, projectID, userID); err != nil {
		return nil, err
	}
	return dto.NewProjectResponse(project), nil
}

// UpdateProject merges the given fields. Managers and sub-managers may edit.
func (s *projectServiceImpl) UpdateProject(ctx context.Context, projectID, userID uuid.UUID, req *dto.UpdateProjectRequest) (*dto.ProjectResponse, error) {
	project, err := s.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Project not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch project", err.Error())
	}

	member, err := s.requireMember(ctx, projectID, userID)
	if err != nil {
		return nil, err
	}
	if member.Role == domain.ProjectRoleMember {
		return nil, response.NewForbiddenError("Only managers can update the project", "")
	}

	effectiveStart := project.StartDate
	effectiveEnd := project.EndDate
	if req.StartDate != nil {
		effectiveStart = *req.StartDate
	}
	if req.EndDate != nil {
		effectiveEnd = *req.EndDate
	}
	if err := validateDateRange(effectiveStart, effectiveEnd); err != nil {
		return nil, err
	}

	if len(req.AttachmentIDs) > 0 {
		if err := s.attachmentSvc.ConfirmAttachments(ctx, req.AttachmentIDs, domain.EntityTypeProject, projectID); err != nil {
			return nil, err
		}
	}

	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Department != nil {
		fields["department"] = *req.Department
	}
	if req.Status != nil {
		fields["status"] = *req.Status
	}
	if req.Category != nil {
		fields["category"] = *req.Category
	}
	if req.StartDate != nil {
		fields["start_date"] = *req.StartDate
	}
	if req.EndDate != nil {
		fields["end_date"] = *req.EndDate
	}
	if len(fields) > 0 {
		if err := s.projectRepo.UpdateFields(ctx, projectID, fields); err != nil {
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update project", err.Error())
		}
	}

	updated, err := s.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch updated project", err.Error())
	}
	return dto.NewProjectResponse(updated), nil
}

// DeleteProject soft deletes a project and its associations (manager only)
func (s *projectServiceImpl) DeleteProject(ctx context.Context, projectID, userID uuid.UUID) error {
	if _, err := s.projectRepo.FindByID(ctx, projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Project not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to fetch project", err.Error())
	}

	member, err := s.requireMember(ctx, projectID, userID)
	if err != nil {
		return err
	}
	if member.Role != domain.ProjectRoleManager {
		return response.NewForbiddenError("Only the project manager can delete the project", "")
	}

	if err := s.projectRepo.Delete(ctx, projectID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete project", err.Error())
	}
	return nil
}

// AddMember adds a user to the project. Managers and sub-managers may add
// members; the sub-manager slots are capped.
func (s *projectServiceImpl) AddMember(ctx context.Context, projectID, userID uuid.UUID, req *dto.AddProjectMemberRequest) (*dto.ProjectMemberResponse, error) {
	actor, err := s.requireMember(ctx, projectID, userID)
	if err != nil {
		return nil, err
	}
	if actor.Role == domain.ProjectRoleMember {
		return nil, response.NewForbiddenError("Only managers can add members", "")
	}

	if _, err := s.userRepo.FindByID(ctx, req.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("User not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch user", err.Error())
	}

	existing, err := s.projectRepo.FindMemberByProjectAndUser(ctx, projectID, req.UserID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to check membership", err.Error())
	}
	if existing != nil {
		return nil, response.NewAppError(response.ErrCodeAlreadyExists, "User is already a project member", "")
	}

	role := req.ProjectRole
	if role == "" {
		role = domain.ProjectRoleMember
	}
	if role == domain.ProjectRoleSubManager {
		if err := s.checkSubManagerCap(ctx, projectID); err != nil {
			return nil, err
		}
	}
	// A second manager is never added directly; promote via role change
	if role == domain.ProjectRoleManager {
		return nil, response.NewValidationError("Manager role is assigned by promotion, not when adding", "")
	}

	member := &domain.ProjectMember{
		ProjectID: projectID,
		UserID:    req.UserID,
		Role:      role,
	}
	if err := s.projectRepo.AddMember(ctx, member); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to add member", err.Error())
	}

	created, err := s.projectRepo.FindMemberByID(ctx, member.ID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch member", err.Error())
	}
	resp := dto.NewProjectMemberResponse(created)
	return &resp, nil
}

// GetMembers lists the project's members with user info
func (s *projectServiceImpl) GetMembers(ctx context.Context, projectID, userID uuid.UUID) ([]dto.ProjectMemberResponse, error) {
	if err := s.requireMembership(ctx, projectID, userID); err != nil {
		return nil, err
	}

	members, err := s.projectRepo.FindMembersByProjectID(ctx, projectID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch members", err.Error())
	}

	responses := make([]dto.ProjectMemberResponse, 0, len(members))
	for _, m := range members {
		responses = append(responses, dto.NewProjectMemberResponse(m))
	}
	return responses, nil
}

// UpdateMemberRole changes a member's project role (manager only). The
// sub-manager cap and the last-manager rule are both enforced here.
func (s *projectServiceImpl) UpdateMemberRole(ctx context.Context, projectID, memberID, userID uuid.UUID, req *dto.UpdateProjectMemberRoleRequest) (*dto.ProjectMemberResponse, error) {
	actor, err := s.requireMember(ctx, projectID, userID)
	if err != nil {
		return nil, err
	}
	if actor.Role != domain.ProjectRoleManager {
		return nil, response.NewForbiddenError("Only the project manager can change roles", "")
	}

	target, err := s.projectRepo.FindMemberByID(ctx, memberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Member not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch member", err.Error())
	}
	if target.ProjectID != projectID {
		return nil, response.NewNotFoundError("Member not found in this project", "")
	}

	if req.ProjectRole == domain.ProjectRoleSubManager && target.Role != domain.ProjectRoleSubManager {
		if err := s.checkSubManagerCap(ctx, projectID); err != nil {
			return nil, err
		}
	}
	if target.Role == domain.ProjectRoleManager && req.ProjectRole != domain.ProjectRoleManager {
		if err := s.checkLastManager(ctx, projectID); err != nil {
			return nil, err
		}
	}

	if err := s.projectRepo.UpdateMemberRole(ctx, memberID, req.ProjectRole); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update member role", err.Error())
	}

	updated, err := s.projectRepo.FindMemberByID(ctx, memberID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch member", err.Error())
	}
	resp := dto.NewProjectMemberResponse(updated)
	return &resp, nil
}

// RemoveMember removes a member from the project. Managers may remove
// anyone but themselves while they are the last manager; members may
// remove themselves (leave).
func (s *projectServiceImpl) RemoveMember(ctx context.Context, projectID, memberID, userID uuid.UUID) error {
	actor, err := s.requireMember(ctx, projectID, userID)
	if err != nil {
		return err
	}

	target, err := s.projectRepo.FindMemberByID(ctx, memberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Member not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to fetch member", err.Error())
	}
	if target.ProjectID != projectID {
		return response.NewNotFoundError("Member not found in this project", "")
	}

	isSelf := target.UserID == userID
	if !isSelf && actor.Role != domain.ProjectRoleManager {
		return response.NewForbiddenError("Only the project manager can remove other members", "")
	}
	if target.Role == domain.ProjectRoleManager {
		if err := s.checkLastManager(ctx, projectID); err != nil {
			return err
		}
	}

	if err := s.projectRepo.RemoveMember(ctx, memberID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to remove member", err.Error())
	}
	return nil
}

// requireMember returns the caller's membership row or a forbidden error
func (s *projectServiceImpl) requireMember(ctx context.Context, projectID, userID uuid.UUID) (*domain.ProjectMember, error) {
	member, err := s.projectRepo.FindMemberByProjectAndUser(ctx, projectID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewForbiddenError("You are not a member of this project", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to check membership", err.Error())
	}
	return member, nil
}

func (s *projectServiceImpl) requireMembership(ctx context.Context, projectID, userID uuid.UUID) error {
	isMember, err := s.projectRepo.IsProjectMember(ctx, projectID, userID)
	if err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to check membership", err.Error())
	}
	if !isMember {
		return response.NewForbiddenError("You are not a member of this project", "")
	}
	return nil
}

func (s *projectServiceImpl) checkSubManagerCap(ctx context.Context, projectID uuid.UUID) error {
	count, err := s.projectRepo.CountMembersByRole(ctx, projectID, domain.ProjectRoleSubManager)
	if err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to count sub-managers", err.Error())
	}
	if count >= domain.MaxSubManagers {
		return response.NewValidationError("Sub-manager limit reached", "")
	}
	return nil
}

func (s *projectServiceImpl) checkLastManager(ctx context.Context, projectID uuid.UUID) error {
	count, err := s.projectRepo.CountMembersByRole(ctx, projectID, domain.ProjectRoleManager)
	if err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to count managers", err.Error())
	}
	if count <= 1 {
		return response.NewValidationError("A project must keep at least one manager", "")
	}
	return nil
}

// validateDateRange rejects a start date after the end date. The stored
// format sorts lexically in date order, so string comparison is enough.
func validateDateRange(startDate, endDate string) error {
	if startDate != "" && endDate != "" && startDate > endDate {
		return response.NewValidationError("Start date cannot be after end date", "")
	}
	return nil
}
