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
	"project-task-api/internal/repository"
	"project-task-api/internal/response"
)

// SeedService provisions demo data for a fresh environment
type SeedService interface {
	SeedDemoData(ctx context.Context, userID uuid.UUID) (*dto.SeedResponse, error)
}

// seedServiceImpl is the implementation of SeedService
type seedServiceImpl struct {
	departmentRepo repository.DepartmentRepository
	projectRepo    repository.ProjectRepository
	groupRepo      repository.GroupRepository
	taskRepo       repository.TaskRepository
	meetingRepo    repository.MeetingRepository
	logger         *zap.Logger
}

// NewSeedService creates a new instance of SeedService
func NewSeedService(
	departmentRepo repository.DepartmentRepository,
	projectRepo repository.ProjectRepository,
	groupRepo repository.GroupRepository,
	taskRepo repository.TaskRepository,
	meetingRepo repository.MeetingRepository,
	logger *zap.Logger,
) SeedService {
	return &seedServiceImpl{
		departmentRepo: departmentRepo,
		projectRepo:    projectRepo,
		groupRepo:      groupRepo,
		taskRepo:       taskRepo,
		meetingRepo:    meetingRepo,
		logger:         logger,
	}
}

// demoDepartments are seeded once; existing names are left untouched.
var demoDepartments = []string{"제품 디자인팀", "플랫폼개발팀", "마케팅팀"}

// SeedDemoData creates demo departments, a demo project owned by the
// caller with its default groups, a small task tree, and a meeting. Meant
// for fresh environments; it always creates a new project.
func (s *seedServiceImpl) SeedDemoData(ctx context.Context, userID uuid.UUID) (*dto.SeedResponse, error) {
	departmentCount := 0
	for _, name := range demoDepartments {
		existing, err := s.departmentRepo.FindByName(ctx, name)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to check department", err.Error())
		}
		if existing != nil {
			continue
		}
		department := &domain.Department{Name: name, Color: departmentColors[departmentCount%len(departmentColors)]}
		if err := s.departmentRepo.Create(ctx, department); err != nil {
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to seed department", err.Error())
		}
		departmentCount++
	}

	project := &domain.Project{
		Name:       "신제품 런칭",
		Department: "제품 디자인팀",
		Category:   "신규 사업",
		Status:     domain.ProjectStatusPlanning,
		StartDate:  "2024-06-01",
		EndDate:    "2024-08-31",
	}
	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to seed project", err.Error())
	}

	groups := []*domain.TaskGroup{
		{ProjectID: project.ID, Name: domain.DefaultGroupTodo, DisplayOrder: 0, Color: defaultGroupTodoColor},
		{ProjectID: project.ID, Name: domain.DefaultGroupDone, DisplayOrder: 1, Color: defaultGroupDoneColor},
	}
	if err := s.groupRepo.CreateBatch(ctx, groups); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to seed groups", err.Error())
	}

	member := &domain.ProjectMember{
		ProjectID: project.ID,
		UserID:    userID,
		Role:      domain.ProjectRoleManager,
	}
	if err := s.projectRepo.AddMember(ctx, member); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to seed project manager", err.Error())
	}

	taskCount, err := s.seedTasks(ctx, project.ID)
	if err != nil {
		return nil, err
	}

	attendees, _ := json.Marshal([]string{"홍길동", "김철수"})
	meeting := &domain.Meeting{
		ProjectID:        project.ID,
		Date:             "2024-06-10",
		Attendees:        datatypes.JSON(attendees),
		Agenda:           "킥오프: 범위와 일정 합의",
		Decisions:        "6월 내 기획 확정, 8월 말 출시 목표",
		ActionItems:      "요구사항 문서 초안 작성",
		ProcessingStatus: domain.ProcessingStatusNone,
	}
	if err := s.meetingRepo.Create(ctx, meeting); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to seed meeting", err.Error())
	}

	s.logger.Info("Demo data seeded",
		zap.String("project_id", project.ID.String()),
		zap.Int("departments", departmentCount),
		zap.Int("tasks", taskCount))

	return &dto.SeedResponse{
		ProjectID:   project.ID,
		Departments: departmentCount,
		Groups:      len(groups),
		Tasks:       taskCount,
		Meetings:    1,
	}, nil
}

// seedTasks builds a small three-level tree in the default groups
func (s *seedServiceImpl) seedTasks(ctx context.Context, projectID uuid.UUID) (int, error) {
	planning := &domain.Task{
		ProjectID: projectID,
		Level:     1,
		Name:      "기획",
		Assignee:  "홍길동",
		StartDate: "2024-06-01",
		EndDate:   "2024-06-30",
		GroupName: domain.DefaultGroupTodo,
		Status:    domain.TaskStatusWorkingOnIt,
		Priority:  domain.TaskPriorityHigh,
		Budget:    3000000,
	}
	if err := s.taskRepo.Create(ctx, planning); err != nil {
		return 0, response.NewAppError(response.ErrCodeInternal, "Failed to seed task", err.Error())
	}
	count := 1

	requirements := &domain.Task{
		ProjectID: projectID,
		Level:     2,
		ParentID:  &planning.ID,
		Name:      "요구사항 정리",
		Assignee:  "김철수",
		StartDate: "2024-06-03",
		EndDate:   "2024-06-14",
		GroupName: domain.DefaultGroupTodo,
		Status:    domain.TaskStatusWorkingOnIt,
		Priority:  domain.TaskPriorityMedium,
		Budget:    500000,
	}
	if err := s.taskRepo.Create(ctx, requirements); err != nil {
		return count, response.NewAppError(response.ErrCodeInternal, "Failed to seed task", err.Error())
	}
	count++

	interviews := &domain.Task{
		ProjectID: projectID,
		Level:     3,
		ParentID:  &requirements.ID,
		Name:      "사용자 인터뷰",
		Assignee:  "김철수",
		StartDate: "2024-06-03",
		EndDate:   "2024-06-07",
		GroupName: domain.DefaultGroupTodo,
		Status:    domain.TaskStatusStuck,
		Priority:  domain.TaskPriorityLow,
		Budget:    200000,
	}
	if err := s.taskRepo.Create(ctx, interviews); err != nil {
		return count, response.NewAppError(response.ErrCodeInternal, "Failed to seed task", err.Error())
	}
	count++

	kickoff := &domain.Task{
		ProjectID: projectID,
		Level:     1,
		Name:      "킥오프 미팅",
		Assignee:  "홍길동",
		StartDate: "2024-06-01",
		EndDate:   "2024-06-01",
		GroupName: domain.DefaultGroupDone,
		Status:    domain.TaskStatusDone,
		Priority:  domain.TaskPriorityMedium,
	}
	if err := s.taskRepo.Create(ctx, kickoff); err != nil {
		return count, response.NewAppError(response.ErrCodeInternal, "Failed to seed task", err.Error())
	}
	count++

	return count, nil
}
