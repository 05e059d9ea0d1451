package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"project-task-api/internal/dto"
	"project-task-api/internal/repository"
	"project-task-api/internal/response"
)

// BoardService renders the board views over a project's task list
type BoardService interface {
	GetBoardView(ctx context.Context, projectID, userID uuid.UUID, groupName string, filter BoardFilter, sortBy BoardSort, sortDir BoardSortDir) (*dto.BoardViewResponse, error)
	GetGroupSummaries(ctx context.Context, projectID, userID uuid.UUID) ([]dto.GroupSummaryResponse, error)
}

// boardServiceImpl is the implementation of BoardService
type boardServiceImpl struct {
	taskRepo    repository.TaskRepository
	groupRepo   repository.GroupRepository
	projectRepo repository.ProjectRepository
	logger      *zap.Logger
}

// NewBoardService creates a new instance of BoardService
func NewBoardService(taskRepo repository.TaskRepository, groupRepo repository.GroupRepository, projectRepo repository.ProjectRepository, logger *zap.Logger) BoardService {
	return &boardServiceImpl{
		taskRepo:    taskRepo,
		groupRepo:   groupRepo,
		projectRepo: projectRepo,
		logger:      logger,
	}
}

// GetBoardView renders one group's rows: a tree of indented rows normally,
// or a flat sorted list when a filter or sort is active.
func (s *boardServiceImpl) GetBoardView(ctx context.Context, projectID, userID uuid.UUID, groupName string, filter BoardFilter, sortBy BoardSort, sortDir BoardSortDir) (*dto.BoardViewResponse, error) {
	if err := s.requireMembership(ctx, projectID, userID); err != nil {
		return nil, err
	}

	tasks, err := s.taskRepo.FindByProjectID(ctx, projectID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch tasks", err.Error())
	}

	rows := BuildBoardRows(tasks, groupName, filter, sortBy, sortDir)
	resp := &dto.BoardViewResponse{
		Group: groupName,
		Flat:  filter.Active() || sortBy != BoardSortNone,
		Rows:  make([]dto.BoardRowResponse, 0, len(rows)),
	}
	for _, row := range rows {
		resp.Rows = append(resp.Rows, dto.BoardRowResponse{
			Depth: row.Depth,
			Task:  dto.NewTaskResponse(row.Task),
		})
	}
	return resp, nil
}

// GetGroupSummaries partitions the project's tasks by its declared groups,
// in display order, with per-group counts and budget sums. Tasks whose
// group name matches no declared group appear in no summary.
func (s *boardServiceImpl) GetGroupSummaries(ctx context.Context, projectID, userID uuid.UUID) ([]dto.GroupSummaryResponse, error) {
	if err := s.requireMembership(ctx, projectID, userID); err != nil {
		return nil, err
	}

	groups, err := s.groupRepo.FindByProjectID(ctx, projectID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch groups", err.Error())
	}
	tasks, err := s.taskRepo.FindByProjectID(ctx, projectID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch tasks", err.Error())
	}

	buckets := GroupTasks(tasks)
	summaries := make([]dto.GroupSummaryResponse, 0, len(groups))
	for _, g := range groups {
		bucket := buckets[g.Name]
		summary := dto.GroupSummaryResponse{
			Group:     g.Name,
			Count:     len(bucket),
			BudgetSum: GroupBudgetSum(bucket),
			Tasks:     make([]dto.TaskResponse, 0, len(bucket)),
		}
		for _, t := range bucket {
			summary.Tasks = append(summary.Tasks, dto.NewTaskResponse(t))
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func (s *boardServiceImpl) requireMembership(ctx context.Context, projectID, userID uuid.UUID) error {
	isMember, err := s.projectRepo.IsProjectMember(ctx, projectID, userID)
	if err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to check membership", err.Error())
	}
	if !isMember {
		return response.NewForbiddenError("You are not a member of this project", "")
	}
	return nil
}
