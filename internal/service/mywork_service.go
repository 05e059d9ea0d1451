package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"project-task-api/internal/domain"
	"project-task-api/internal/dto"
	"project-task-api/internal/repository"
	"project-task-api/internal/response"
)

// My-work bucket keys, in display order.
const (
	BucketOverdue  = "overdue"
	BucketToday    = "today"
	BucketThisWeek = "thisWeek"
	BucketNextWeek = "nextWeek"
	BucketLater    = "later"
	BucketNoDate   = "noDate"
)

var bucketOrder = []string{BucketOverdue, BucketToday, BucketThisWeek, BucketNextWeek, BucketLater, BucketNoDate}

// MyWorkService aggregates a user's assigned tasks across projects
type MyWorkService interface {
	GetMyWork(ctx context.Context, userID uuid.UUID) (*dto.MyWorkResponse, error)
}

type myWorkServiceImpl struct {
	projectRepo repository.ProjectRepository
	taskRepo    repository.TaskRepository
	userRepo    repository.UserRepository
	logger      *zap.Logger
	now         func() time.Time
}

// NewMyWorkService creates a new instance of MyWorkService
func NewMyWorkService(projectRepo repository.ProjectRepository, taskRepo repository.TaskRepository, userRepo repository.UserRepository, logger *zap.Logger) MyWorkService {
	return &myWorkServiceImpl{
		projectRepo: projectRepo,
		taskRepo:    taskRepo,
		userRepo:    userRepo,
		logger:      logger,
		now:         time.Now,
	}
}

// GetMyWork scans every project the user belongs to and buckets tasks
// assigned to the user's display name by due-date proximity.
func (s *myWorkServiceImpl) GetMyWork(ctx context.Context, userID uuid.UUID) (*dto.MyWorkResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, response.NewNotFoundError("User not found", "")
	}

	projects, err := s.projectRepo.FindByMemberUserID(ctx, userID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch projects", err.Error())
	}

	today := localMidnight(s.now())
	buckets := make(map[string][]dto.MyWorkItemResponse, len(bucketOrder))
	for _, key := range bucketOrder {
		buckets[key] = []dto.MyWorkItemResponse{}
	}

	// Iteration order is project list order, then task order within the
	// project. Buckets keep that order with no secondary sort.
	for _, project := range projects {
		tasks, err := s.taskRepo.FindByProjectID(ctx, project.ID)
		if err != nil {
			s.logger.Warn("Failed to fetch tasks for my-work view",
				zap.String("project_id", project.ID.String()),
				zap.Error(err))
			continue
		}
		for _, task := range tasks {
			// Assignment is matched by display name, not by user id.
			if task.Assignee != user.Name {
				continue
			}
			key := BucketForTask(task, today)
			buckets[key] = append(buckets[key], dto.MyWorkItemResponse{
				TaskResponse: dto.NewTaskResponse(task),
				ProjectName:  project.Name,
			})
		}
	}

	// Re-filter the overdue bucket to drop Done items. The bucketing rule
	// already routes those to today, but the overdue list stays authoritative.
	filtered := buckets[BucketOverdue][:0]
	for _, item := range buckets[BucketOverdue] {
		if item.Status != domain.TaskStatusDone {
			filtered = append(filtered, item)
		}
	}
	buckets[BucketOverdue] = filtered

	resp := &dto.MyWorkResponse{Buckets: make([]dto.MyWorkBucketResponse, 0, len(bucketOrder))}
	for _, key := range bucketOrder {
		resp.Buckets = append(resp.Buckets, dto.MyWorkBucketResponse{
			Key:   key,
			Count: len(buckets[key]),
			Items: buckets[key],
		})
	}
	return resp, nil
}

// BucketForTask returns the bucket key for a task given today at local
// midnight. Missing or unparseable end dates land in noDate; an overdue
// task already marked Done lands in today.
func BucketForTask(task *domain.Task, today time.Time) string {
	if task.EndDate == "" {
		return BucketNoDate
	}
	end, err := time.ParseInLocation("2006-01-02", task.EndDate, today.Location())
	if err != nil {
		return BucketNoDate
	}

	diff := daysBetween(today, end)
	switch {
	case diff < 0 && task.Status != domain.TaskStatusDone:
		return BucketOverdue
	case diff <= 0:
		return BucketToday
	case diff <= 7:
		return BucketThisWeek
	case diff <= 14:
		return BucketNextWeek
	default:
		return BucketLater
	}
}

// localMidnight truncates a time to midnight in its own location.
func localMidnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// daysBetween counts whole calendar days from a to b. The dates are
// re-anchored in UTC so a DST transition between the two midnights cannot
// shave the gap below a full day.
func daysBetween(a, b time.Time) int {
	au := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bu := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bu.Sub(au).Hours() / 24)
}
