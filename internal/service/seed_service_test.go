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
	"project-task-api/internal/response"
)

func newSeedFixture() (*MockDepartmentRepository, *MockProjectRepository, *MockGroupRepository, *MockTaskRepository, *MockMeetingRepository) {
	departmentRepo := &MockDepartmentRepository{
		FindByNameFunc: func(ctx context.Context, name string) (*domain.Department, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	projectRepo := &MockProjectRepository{
		CreateFunc: func(ctx context.Context, project *domain.Project) error {
			project.ID = uuid.New()
			return nil
		},
	}
	taskRepo := &MockTaskRepository{
		CreateFunc: func(ctx context.Context, task *domain.Task) error {
			task.ID = uuid.New()
			return nil
		},
	}
	return departmentRepo, projectRepo, &MockGroupRepository{}, taskRepo, &MockMeetingRepository{}
}

func TestSeedDemoData_CreatesProjectWithDefaults(t *testing.T) {
	departmentRepo, projectRepo, groupRepo, taskRepo, meetingRepo := newSeedFixture()

	var createdGroups []*domain.TaskGroup
	groupRepo.CreateBatchFunc = func(ctx context.Context, groups []*domain.TaskGroup) error {
		createdGroups = groups
		return nil
	}
	var createdMember *domain.ProjectMember
	projectRepo.AddMemberFunc = func(ctx context.Context, member *domain.ProjectMember) error {
		createdMember = member
		return nil
	}
	var createdTasks []*domain.Task
	taskRepo.CreateFunc = func(ctx context.Context, task *domain.Task) error {
		task.ID = uuid.New()
		createdTasks = append(createdTasks, task)
		return nil
	}
	var createdMeeting *domain.Meeting
	meetingRepo.CreateFunc = func(ctx context.Context, meeting *domain.Meeting) error {
		createdMeeting = meeting
		return nil
	}

	svc := NewSeedService(departmentRepo, projectRepo, groupRepo, taskRepo, meetingRepo, zap.NewNop())
	userID := uuid.New()

	result, err := svc.SeedDemoData(context.Background(), userID)
	require.NoError(t, err)

	assert.Equal(t, len(demoDepartments), result.Departments)
	assert.Equal(t, 2, result.Groups)
	assert.Equal(t, 4, result.Tasks)
	assert.Equal(t, 1, result.Meetings)
	assert.NotEqual(t, uuid.Nil, result.ProjectID)

	require.Len(t, createdGroups, 2)
	assert.Equal(t, domain.DefaultGroupTodo, createdGroups[0].Name)
	assert.Equal(t, domain.DefaultGroupDone, createdGroups[1].Name)

	require.NotNil(t, createdMember)
	assert.Equal(t, userID, createdMember.UserID)
	assert.Equal(t, domain.ProjectRoleManager, createdMember.Role)

	require.Len(t, createdTasks, 4)
	assert.Equal(t, 1, createdTasks[0].Level)
	require.NotNil(t, createdTasks[1].ParentID)
	assert.Equal(t, createdTasks[0].ID, *createdTasks[1].ParentID)
	require.NotNil(t, createdTasks[2].ParentID)
	assert.Equal(t, createdTasks[1].ID, *createdTasks[2].ParentID)
	assert.Equal(t, domain.DefaultGroupDone, createdTasks[3].GroupName)

	require.NotNil(t, createdMeeting)
	assert.Equal(t, result.ProjectID, createdMeeting.ProjectID)
	assert.Equal(t, domain.ProcessingStatusNone, createdMeeting.ProcessingStatus)
}

func TestSeedDemoData_SkipsExistingDepartments(t *testing.T) {
	departmentRepo, projectRepo, groupRepo, taskRepo, meetingRepo := newSeedFixture()

	departmentRepo.FindByNameFunc = func(ctx context.Context, name string) (*domain.Department, error) {
		if name == demoDepartments[0] {
			return &domain.Department{BaseModel: domain.BaseModel{ID: uuid.New()}, Name: name}, nil
		}
		return nil, gorm.ErrRecordNotFound
	}
	var createdNames []string
	departmentRepo.CreateFunc = func(ctx context.Context, department *domain.Department) error {
		createdNames = append(createdNames, department.Name)
		return nil
	}

	svc := NewSeedService(departmentRepo, projectRepo, groupRepo, taskRepo, meetingRepo, zap.NewNop())

	result, err := svc.SeedDemoData(context.Background(), uuid.New())
	require.NoError(t, err)

	assert.Equal(t, len(demoDepartments)-1, result.Departments)
	assert.NotContains(t, createdNames, demoDepartments[0])
}

func TestSeedDemoData_ProjectCreateFailure(t *testing.T) {
	departmentRepo, projectRepo, groupRepo, taskRepo, meetingRepo := newSeedFixture()

	projectRepo.CreateFunc = func(ctx context.Context, project *domain.Project) error {
		return assert.AnError
	}

	svc := NewSeedService(departmentRepo, projectRepo, groupRepo, taskRepo, meetingRepo, zap.NewNop())

	_, err := svc.SeedDemoData(context.Background(), uuid.New())
	assertAppErrorCode(t, err, response.ErrCodeInternal)
}
