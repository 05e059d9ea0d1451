package handler

import (
	"context"

	"github.com/google/uuid"

	"project-task-api/internal/domain"
	"project-task-api/internal/dto"
	"project-task-api/internal/service"
)

// Func-field mocks of the service interfaces the handlers depend on.

type mockBoardService struct {
	getBoardViewFunc      func(ctx context.Context, projectID, userID uuid.UUID, groupName string, filter service.BoardFilter, sortBy service.BoardSort, sortDir service.BoardSortDir) (*dto.BoardViewResponse, error)
	getGroupSummariesFunc func(ctx context.Context, projectID, userID uuid.UUID) ([]dto.GroupSummaryResponse, error)
}

func (m *mockBoardService) GetBoardView(ctx context.Context, projectID, userID uuid.UUID, groupName string, filter service.BoardFilter, sortBy service.BoardSort, sortDir service.BoardSortDir) (*dto.BoardViewResponse, error) {
	if m.getBoardViewFunc != nil {
		return m.getBoardViewFunc(ctx, projectID, userID, groupName, filter, sortBy, sortDir)
	}
	return &dto.BoardViewResponse{Group: groupName}, nil
}

func (m *mockBoardService) GetGroupSummaries(ctx context.Context, projectID, userID uuid.UUID) ([]dto.GroupSummaryResponse, error) {
	if m.getGroupSummariesFunc != nil {
		return m.getGroupSummariesFunc(ctx, projectID, userID)
	}
	return []dto.GroupSummaryResponse{}, nil
}

type mockMyWorkService struct {
	getMyWorkFunc func(ctx context.Context, userID uuid.UUID) (*dto.MyWorkResponse, error)
}

func (m *mockMyWorkService) GetMyWork(ctx context.Context, userID uuid.UUID) (*dto.MyWorkResponse, error) {
	if m.getMyWorkFunc != nil {
		return m.getMyWorkFunc(ctx, userID)
	}
	return &dto.MyWorkResponse{}, nil
}

type mockAttachmentService struct {
	generatePresignedURLFunc   func(ctx context.Context, req *dto.PresignedURLRequest, userID uuid.UUID) (*dto.PresignedURLResponse, error)
	saveMetadataFunc           func(ctx context.Context, req *dto.SaveAttachmentMetadataRequest, userID uuid.UUID) (*dto.AttachmentResponse, error)
	confirmAttachmentsFunc     func(ctx context.Context, attachmentIDs []uuid.UUID, entityType domain.EntityType, entityID uuid.UUID) error
	getAttachmentsByEntityFunc func(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID) ([]dto.AttachmentResponse, error)
	getDownloadURLFunc         func(ctx context.Context, attachmentID, userID uuid.UUID) (*dto.DownloadURLResponse, error)
	deleteAttachmentFunc       func(ctx context.Context, attachmentID, userID uuid.UUID) error
}

func (m *mockAttachmentService) GeneratePresignedURL(ctx context.Context, req *dto.PresignedURLRequest, userID uuid.UUID) (*dto.PresignedURLResponse, error) {
	if m.generatePresignedURLFunc != nil {
		return m.generatePresignedURLFunc(ctx, req, userID)
	}
	return &dto.PresignedURLResponse{UploadURL: "https://example.com/upload", FileKey: "uploads/tasks/2024/06/key"}, nil
}

func (m *mockAttachmentService) SaveMetadata(ctx context.Context, req *dto.SaveAttachmentMetadataRequest, userID uuid.UUID) (*dto.AttachmentResponse, error) {
	if m.saveMetadataFunc != nil {
		return m.saveMetadataFunc(ctx, req, userID)
	}
	return &dto.AttachmentResponse{ID: uuid.New(), Status: domain.AttachmentStatusTemp}, nil
}

func (m *mockAttachmentService) ConfirmAttachments(ctx context.Context, attachmentIDs []uuid.UUID, entityType domain.EntityType, entityID uuid.UUID) error {
	if m.confirmAttachmentsFunc != nil {
		return m.confirmAttachmentsFunc(ctx, attachmentIDs, entityType, entityID)
	}
	return nil
}

func (m *mockAttachmentService) GetAttachmentsByEntity(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID) ([]dto.AttachmentResponse, error) {
	if m.getAttachmentsByEntityFunc != nil {
		return m.getAttachmentsByEntityFunc(ctx, entityType, entityID)
	}
	return []dto.AttachmentResponse{}, nil
}

func (m *mockAttachmentService) GetDownloadURL(ctx context.Context, attachmentID, userID uuid.UUID) (*dto.DownloadURLResponse, error) {
	if m.getDownloadURLFunc != nil {
		return m.getDownloadURLFunc(ctx, attachmentID, userID)
	}
	return &dto.DownloadURLResponse{DownloadURL: "https://example.com/download"}, nil
}

func (m *mockAttachmentService) DeleteAttachment(ctx context.Context, attachmentID, userID uuid.UUID) error {
	if m.deleteAttachmentFunc != nil {
		return m.deleteAttachmentFunc(ctx, attachmentID, userID)
	}
	return nil
}

type mockTaskService struct {
	createTaskFunc        func(ctx context.Context, req *dto.CreateTaskRequest, userID uuid.UUID) (*dto.TaskResponse, error)
	getTaskFunc           func(ctx context.Context, taskID, userID uuid.UUID) (*dto.TaskResponse, error)
	getTasksByProjectFunc func(ctx context.Context, projectID, userID uuid.UUID) ([]dto.TaskResponse, error)
	updateTaskFunc        func(ctx context.Context, taskID, userID uuid.UUID, req *dto.UpdateTaskRequest) (*dto.TaskResponse, error)
	deleteTaskFunc        func(ctx context.Context, taskID, userID uuid.UUID) error
}

func (m *mockTaskService) CreateTask(ctx context.Context, req *dto.CreateTaskRequest, userID uuid.UUID) (*dto.TaskResponse, error) {
	if m.createTaskFunc != nil {
		return m.createTaskFunc(ctx, req, userID)
	}
	return &dto.TaskResponse{ID: uuid.New()}, nil
}

func (m *mockTaskService) GetTask(ctx context.Context, taskID, userID uuid.UUID) (*dto.TaskResponse, error) {
	if m.getTaskFunc != nil {
		return m.getTaskFunc(ctx, taskID, userID)
	}
	return &dto.TaskResponse{ID: taskID}, nil
}

func (m *mockTaskService) GetTasksByProject(ctx context.Context, projectID, userID uuid.UUID) ([]dto.TaskResponse, error) {
	if m.getTasksByProjectFunc != nil {
		return m.getTasksByProjectFunc(ctx, projectID, userID)
	}
	return []dto.TaskResponse{}, nil
}

func (m *mockTaskService) UpdateTask(ctx context.Context, taskID, userID uuid.UUID, req *dto.UpdateTaskRequest) (*dto.TaskResponse, error) {
	if m.updateTaskFunc != nil {
		return m.updateTaskFunc(ctx, taskID, userID, req)
	}
	return &dto.TaskResponse{ID: taskID}, nil
}

func (m *mockTaskService) DeleteTask(ctx context.Context, taskID, userID uuid.UUID) error {
	if m.deleteTaskFunc != nil {
		return m.deleteTaskFunc(ctx, taskID, userID)
	}
	return nil
}
