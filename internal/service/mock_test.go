package service

import (
	"context"

	"github.com/google/uuid"

	"project-task-api/internal/domain"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	CreateFunc           func(ctx context.Context, user *domain.User) error
	FindByIDFunc         func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	FindByUsernameFunc   func(ctx context.Context, username string) (*domain.User, error)
	FindByStatusFunc     func(ctx context.Context, status domain.UserStatus) ([]*domain.User, error)
	UpdateStatusFunc     func(ctx context.Context, username string, status domain.UserStatus) error
	DeleteByUsernameFunc func(ctx context.Context, username string) error
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	if m.FindByUsernameFunc != nil {
		return m.FindByUsernameFunc(ctx, username)
	}
	return nil, nil
}

func (m *MockUserRepository) FindByStatus(ctx context.Context, status domain.UserStatus) ([]*domain.User, error) {
	if m.FindByStatusFunc != nil {
		return m.FindByStatusFunc(ctx, status)
	}
	return nil, nil
}

func (m *MockUserRepository) UpdateStatus(ctx context.Context, username string, status domain.UserStatus) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, username, status)
	}
	return nil
}

func (m *MockUserRepository) DeleteByUsername(ctx context.Context, username string) error {
	if m.DeleteByUsernameFunc != nil {
		return m.DeleteByUsernameFunc(ctx, username)
	}
	return nil
}

// MockDepartmentRepository is a mock implementation of DepartmentRepository
type MockDepartmentRepository struct {
	CreateFunc     func(ctx context.Context, department *domain.Department) error
	FindAllFunc    func(ctx context.Context) ([]*domain.Department, error)
	FindByNameFunc func(ctx context.Context, name string) (*domain.Department, error)
	DeleteFunc     func(ctx context.Context, id uuid.UUID) error
}

func (m *MockDepartmentRepository) Create(ctx context.Context, department *domain.Department) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, department)
	}
	return nil
}

func (m *MockDepartmentRepository) FindAll(ctx context.Context) ([]*domain.Department, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockDepartmentRepository) FindByName(ctx context.Context, name string) (*domain.Department, error) {
	if m.FindByNameFunc != nil {
		return m.FindByNameFunc(ctx, name)
	}
	return nil, nil
}

func (m *MockDepartmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockProjectRepository is a mock implementation of ProjectRepository
type MockProjectRepository struct {
	CreateFunc                     func(ctx context.Context, project *domain.Project) error
	FindByIDFunc                   func(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	FindAllFunc                    func(ctx context.Context) ([]*domain.Project, error)
	FindByMemberUserIDFunc         func(ctx context.Context, userID uuid.UUID) ([]*domain.Project, error)
	UpdateFunc                     func(ctx context.Context, project *domain.Project) error
	UpdateFieldsFunc               func(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	DeleteFunc                     func(ctx context.Context, id uuid.UUID) error
	AddMemberFunc                  func(ctx context.Context, member *domain.ProjectMember) error
	FindMemberByIDFunc             func(ctx context.Context, memberID uuid.UUID) (*domain.ProjectMember, error)
	FindMemberByProjectAndUserFunc func(ctx context.Context, projectID, userID uuid.UUID) (*domain.ProjectMember, error)
	FindMembersByProjectIDFunc     func(ctx context.Context, projectID uuid.UUID) ([]*domain.ProjectMember, error)
	CountMembersByRoleFunc         func(ctx context.Context, projectID uuid.UUID, role domain.ProjectRole) (int64, error)
	UpdateMemberRoleFunc           func(ctx context.Context, memberID uuid.UUID, role domain.ProjectRole) error
	RemoveMemberFunc               func(ctx context.Context, memberID uuid.UUID) error
	IsProjectMemberFunc            func(ctx context.Context, projectID, userID uuid.UUID) (bool, error)
}

func (m *MockProjectRepository) Create(ctx context.Context, project *domain.Project) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, project)
	}
	return nil
}

func (m *MockProjectRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockProjectRepository) FindAll(ctx context.Context) ([]*domain.Project, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockProjectRepository) FindByMemberUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Project, error) {
	if m.FindByMemberUserIDFunc != nil {
		return m.FindByMemberUserIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockProjectRepository) Update(ctx context.Context, project *domain.Project) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, project)
	}
	return nil
}

func (m *MockProjectRepository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	if m.UpdateFieldsFunc != nil {
		return m.UpdateFieldsFunc(ctx, id, fields)
	}
	return nil
}

func (m *MockProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockProjectRepository) AddMember(ctx context.Context, member *domain.ProjectMember) error {
	if m.AddMemberFunc != nil {
		return m.AddMemberFunc(ctx, member)
	}
	return nil
}

func (m *MockProjectRepository) FindMemberByID(ctx context.Context, memberID uuid.UUID) (*domain.ProjectMember, error) {
	if m.FindMemberByIDFunc != nil {
		return m.FindMemberByIDFunc(ctx, memberID)
	}
	return nil, nil
}

func (m *MockProjectRepository) FindMemberByProjectAndUser(ctx context.Context, projectID, userID uuid.UUID) (*domain.ProjectMember, error) {
	if m.FindMemberByProjectAndUserFunc != nil {
		return m.FindMemberByProjectAndUserFunc(ctx, projectID, userID)
	}
	return nil, nil
}

func (m *MockProjectRepository) FindMembersByProjectID(ctx context.Context, projectID uuid.UUID) ([]*domain.ProjectMember, error) {
	if m.FindMembersByProjectIDFunc != nil {
		return m.FindMembersByProjectIDFunc(ctx, projectID)
	}
	return nil, nil
}

func (m *MockProjectRepository) CountMembersByRole(ctx context.Context, projectID uuid.UUID, role domain.ProjectRole) (int64, error) {
	if m.CountMembersByRoleFunc != nil {
		return m.CountMembersByRoleFunc(ctx, projectID, role)
	}
	return 0, nil
}

func (m *MockProjectRepository) UpdateMemberRole(ctx context.Context, memberID uuid.UUID, role domain.ProjectRole) error {
	if m.UpdateMemberRoleFunc != nil {
		return m.UpdateMemberRoleFunc(ctx, memberID, role)
	}
	return nil
}

func (m *MockProjectRepository) RemoveMember(ctx context.Context, memberID uuid.UUID) error {
	if m.RemoveMemberFunc != nil {
		return m.RemoveMemberFunc(ctx, memberID)
	}
	return nil
}

func (m *MockProjectRepository) IsProjectMember(ctx context.Context, projectID, userID uuid.UUID) (bool, error) {
	if m.IsProjectMemberFunc != nil {
		return m.IsProjectMemberFunc(ctx, projectID, userID)
	}
	return false, nil
}

// MockGroupRepository is a mock implementation of GroupRepository
type MockGroupRepository struct {
	CreateFunc               func(ctx context.Context, group *domain.TaskGroup) error
	CreateBatchFunc          func(ctx context.Context, groups []*domain.TaskGroup) error
	FindByProjectIDFunc      func(ctx context.Context, projectID uuid.UUID) ([]*domain.TaskGroup, error)
	FindByProjectAndNameFunc func(ctx context.Context, projectID uuid.UUID, name string) (*domain.TaskGroup, error)
	DeleteFunc               func(ctx context.Context, id uuid.UUID) error
}

func (m *MockGroupRepository) Create(ctx context.Context, group *domain.TaskGroup) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, group)
	}
	return nil
}

func (m *MockGroupRepository) CreateBatch(ctx context.Context, groups []*domain.TaskGroup) error {
	if m.CreateBatchFunc != nil {
		return m.CreateBatchFunc(ctx, groups)
	}
	return nil
}

func (m *MockGroupRepository) FindByProjectID(ctx context.Context, projectID uuid.UUID) ([]*domain.TaskGroup, error) {
	if m.FindByProjectIDFunc != nil {
		return m.FindByProjectIDFunc(ctx, projectID)
	}
	return nil, nil
}

func (m *MockGroupRepository) FindByProjectAndName(ctx context.Context, projectID uuid.UUID, name string) (*domain.TaskGroup, error) {
	if m.FindByProjectAndNameFunc != nil {
		return m.FindByProjectAndNameFunc(ctx, projectID, name)
	}
	return nil, nil
}

func (m *MockGroupRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockTaskRepository is a mock implementation of TaskRepository
type MockTaskRepository struct {
	CreateFunc          func(ctx context.Context, task *domain.Task) error
	FindByIDFunc        func(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	FindByProjectIDFunc func(ctx context.Context, projectID uuid.UUID) ([]*domain.Task, error)
	UpdateFieldsFunc    func(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	RepointGroupFunc    func(ctx context.Context, projectID uuid.UUID, fromGroup, toGroup string) error
	DeleteFunc          func(ctx context.Context, id uuid.UUID) error
}

func (m *MockTaskRepository) Create(ctx context.Context, task *domain.Task) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, task)
	}
	return nil
}

func (m *MockTaskRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockTaskRepository) FindByProjectID(ctx context.Context, projectID uuid.UUID) ([]*domain.Task, error) {
	if m.FindByProjectIDFunc != nil {
		return m.FindByProjectIDFunc(ctx, projectID)
	}
	return nil, nil
}

func (m *MockTaskRepository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	if m.UpdateFieldsFunc != nil {
		return m.UpdateFieldsFunc(ctx, id, fields)
	}
	return nil
}

func (m *MockTaskRepository) RepointGroup(ctx context.Context, projectID uuid.UUID, fromGroup, toGroup string) error {
	if m.RepointGroupFunc != nil {
		return m.RepointGroupFunc(ctx, projectID, fromGroup, toGroup)
	}
	return nil
}

func (m *MockTaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockMeetingRepository is a mock implementation of MeetingRepository
type MockMeetingRepository struct {
	CreateFunc                 func(ctx context.Context, meeting *domain.Meeting) error
	FindByIDFunc               func(ctx context.Context, id uuid.UUID) (*domain.Meeting, error)
	FindByProjectIDFunc        func(ctx context.Context, projectID uuid.UUID) ([]*domain.Meeting, error)
	UpdateFieldsFunc           func(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	UpdateProcessingStatusFunc func(ctx context.Context, id uuid.UUID, status domain.ProcessingStatus) error
	DeleteFunc                 func(ctx context.Context, id uuid.UUID) error
}

func (m *MockMeetingRepository) Create(ctx context.Context, meeting *domain.Meeting) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, meeting)
	}
	return nil
}

func (m *MockMeetingRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Meeting, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockMeetingRepository) FindByProjectID(ctx context.Context, projectID uuid.UUID) ([]*domain.Meeting, error) {
	if m.FindByProjectIDFunc != nil {
		return m.FindByProjectIDFunc(ctx, projectID)
	}
	return nil, nil
}

func (m *MockMeetingRepository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	if m.UpdateFieldsFunc != nil {
		return m.UpdateFieldsFunc(ctx, id, fields)
	}
	return nil
}

func (m *MockMeetingRepository) UpdateProcessingStatus(ctx context.Context, id uuid.UUID, status domain.ProcessingStatus) error {
	if m.UpdateProcessingStatusFunc != nil {
		return m.UpdateProcessingStatusFunc(ctx, id, status)
	}
	return nil
}

func (m *MockMeetingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockAttachmentRepository is a mock implementation of AttachmentRepository
type MockAttachmentRepository struct {
	CreateFunc                     func(ctx context.Context, attachment *domain.Attachment) error
	FindByIDFunc                   func(ctx context.Context, id uuid.UUID) (*domain.Attachment, error)
	FindByEntityIDFunc             func(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID) ([]*domain.Attachment, error)
	FindByIDsFunc                  func(ctx context.Context, ids []uuid.UUID) ([]*domain.Attachment, error)
	FindExpiredTempAttachmentsFunc func(ctx context.Context) ([]*domain.Attachment, error)
	ConfirmAttachmentsFunc         func(ctx context.Context, attachmentIDs []uuid.UUID, entityType domain.EntityType, entityID uuid.UUID) error
	DeleteFunc                     func(ctx context.Context, id uuid.UUID) error
	DeleteBatchFunc                func(ctx context.Context, attachmentIDs []uuid.UUID) error
}

func (m *MockAttachmentRepository) Create(ctx context.Context, attachment *domain.Attachment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, attachment)
	}
	return nil
}

func (m *MockAttachmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Attachment, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockAttachmentRepository) FindByEntityID(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID) ([]*domain.Attachment, error) {
	if m.FindByEntityIDFunc != nil {
		return m.FindByEntityIDFunc(ctx, entityType, entityID)
	}
	return nil, nil
}

func (m *MockAttachmentRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Attachment, error) {
	if m.FindByIDsFunc != nil {
		return m.FindByIDsFunc(ctx, ids)
	}
	return nil, nil
}

func (m *MockAttachmentRepository) FindExpiredTempAttachments(ctx context.Context) ([]*domain.Attachment, error) {
	if m.FindExpiredTempAttachmentsFunc != nil {
		return m.FindExpiredTempAttachmentsFunc(ctx)
	}
	return nil, nil
}

func (m *MockAttachmentRepository) ConfirmAttachments(ctx context.Context, attachmentIDs []uuid.UUID, entityType domain.EntityType, entityID uuid.UUID) error {
	if m.ConfirmAttachmentsFunc != nil {
		return m.ConfirmAttachmentsFunc(ctx, attachmentIDs, entityType, entityID)
	}
	return nil
}

func (m *MockAttachmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockAttachmentRepository) DeleteBatch(ctx context.Context, attachmentIDs []uuid.UUID) error {
	if m.DeleteBatchFunc != nil {
		return m.DeleteBatchFunc(ctx, attachmentIDs)
	}
	return nil
}
