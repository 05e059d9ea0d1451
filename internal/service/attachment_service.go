package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"project-task-api/internal/client"
	"project-task-api/internal/domain"
	"project-task-api/internal/dto"
	"project-task-api/internal/repository"
	"project-task-api/internal/response"
)

// tempAttachmentTTL is how long an unconfirmed upload survives before the
// cleanup job reclaims it.
const tempAttachmentTTL = 24 * time.Hour

// AttachmentService defines the interface for file attachment business logic
type AttachmentService interface {
	GeneratePresignedURL(ctx context.Context, req *dto.PresignedURLRequest, userID uuid.UUID) (*dto.PresignedURLResponse, error)
	SaveMetadata(ctx context.Context, req *dto.SaveAttachmentMetadataRequest, userID uuid.UUID) (*dto.AttachmentResponse, error)
	ConfirmAttachments(ctx context.Context, attachmentIDs []uuid.UUID, entityType domain.EntityType, entityID uuid.UUID) error
	GetAttachmentsByEntity(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID) ([]dto.AttachmentResponse, error)
	GetDownloadURL(ctx context.Context, attachmentID, userID uuid.UUID) (*dto.DownloadURLResponse, error)
	DeleteAttachment(ctx context.Context, attachmentID, userID uuid.UUID) error
}

// attachmentServiceImpl is the implementation of AttachmentService
type attachmentServiceImpl struct {
	attachmentRepo repository.AttachmentRepository
	s3Client       client.S3ClientInterface
	logger         *zap.Logger
}

// NewAttachmentService creates a new instance of AttachmentService
func NewAttachmentService(attachmentRepo repository.AttachmentRepository, s3Client client.S3ClientInterface, logger *zap.Logger) AttachmentService {
	return &attachmentServiceImpl{
		attachmentRepo: attachmentRepo,
		s3Client:       s3Client,
		logger:         logger,
	}
}

// GeneratePresignedURL issues a time-limited upload URL. The client uploads
// straight to object storage and then registers the metadata.
func (s *attachmentServiceImpl) GeneratePresignedURL(ctx context.Context, req *dto.PresignedURLRequest, userID uuid.UUID) (*dto.PresignedURLResponse, error) {
	uploadURL, fileKey, err := s.s3Client.GeneratePresignedUploadURL(ctx, domain.EntityType(req.EntityType), req.FileName, req.ContentType)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to generate upload URL", err.Error())
	}

	return &dto.PresignedURLResponse{
		UploadURL: uploadURL,
		FileKey:   fileKey,
		ExpiresIn: int(client.UploadURLExpiry.Seconds()),
	}, nil
}

// SaveMetadata registers an uploaded object as a TEMP attachment. It stays
// reclaimable until something confirms it against an entity.
func (s *attachmentServiceImpl) SaveMetadata(ctx context.Context, req *dto.SaveAttachmentMetadataRequest, userID uuid.UUID) (*dto.AttachmentResponse, error) {
	expiresAt := time.Now().Add(tempAttachmentTTL)
	attachment := &domain.Attachment{
		EntityType:  domain.EntityType(req.EntityType),
		EntityID:    req.EntityID,
		Status:      domain.AttachmentStatusTemp,
		FileName:    req.FileName,
		FileKey:     req.FileKey,
		FileSize:    req.FileSize,
		ContentType: req.ContentType,
		UploadedBy:  userID,
		ExpiresAt:   &expiresAt,
	}
	if err := s.attachmentRepo.Create(ctx, attachment); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to save attachment metadata", err.Error())
	}

	resp := dto.NewAttachmentResponse(attachment)
	return &resp, nil
}

// ConfirmAttachments links TEMP attachments to an entity and clears their
// expiry. Attachments that are missing, already confirmed, or registered
// for a different entity type make the whole call fail.
func (s *attachmentServiceImpl) ConfirmAttachments(ctx context.Context, attachmentIDs []uuid.UUID, entityType domain.EntityType, entityID uuid.UUID) error {
	if len(attachmentIDs) == 0 {
		return nil
	}

	attachments, err := s.attachmentRepo.FindByIDs(ctx, attachmentIDs)
	if err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to fetch attachments", err.Error())
	}
	if len(attachments) != len(attachmentIDs) {
		return response.NewValidationError("One or more attachments not found", "")
	}
	for _, attachment := range attachments {
		if attachment.Status != domain.AttachmentStatusTemp {
			return response.NewValidationError("Attachment is not in temporary status and cannot be reused", "")
		}
		if attachment.EntityType != entityType {
			return response.NewValidationError("Attachment entity type does not match", "")
		}
	}

	if err := s.attachmentRepo.ConfirmAttachments(ctx, attachmentIDs, entityType, entityID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to confirm attachments", err.Error())
	}
	return nil
}

// GetAttachmentsByEntity lists the confirmed attachments of an entity
func (s *attachmentServiceImpl) GetAttachmentsByEntity(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID) ([]dto.AttachmentResponse, error) {
	attachments, err := s.attachmentRepo.FindByEntityID(ctx, entityType, entityID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch attachments", err.Error())
	}

	responses := make([]dto.AttachmentResponse, 0, len(attachments))
	for _, a := range attachments {
		responses = append(responses, dto.NewAttachmentResponse(a))
	}
	return responses, nil
}

// GetDownloadURL issues a time-limited download URL for an attachment
func (s *attachmentServiceImpl) GetDownloadURL(ctx context.Context, attachmentID, userID uuid.UUID) (*dto.DownloadURLResponse, error) {
	attachment, err := s.attachmentRepo.FindByID(ctx, attachmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Attachment not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch attachment", err.Error())
	}

	downloadURL, err := s.s3Client.GeneratePresignedDownloadURL(ctx, attachment.FileKey)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to generate download URL", err.Error())
	}

	return &dto.DownloadURLResponse{
		DownloadURL: downloadURL,
		ExpiresIn:   int(client.DownloadURLExpiry.Seconds()),
	}, nil
}

// DeleteAttachment removes an attachment. Only the uploader may delete it.
// The stored object is deleted first; a storage failure aborts the call so
// no orphaned object survives with its metadata gone.
func (s *attachmentServiceImpl) DeleteAttachment(ctx context.Context, attachmentID, userID uuid.UUID) error {
	attachment, err := s.attachmentRepo.FindByID(ctx, attachmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Attachment not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to fetch attachment", err.Error())
	}
	if attachment.UploadedBy != userID {
		return response.NewForbiddenError("Only the uploader can delete this attachment", "")
	}

	if err := s.s3Client.DeleteFile(ctx, attachment.FileKey); err != nil {
		s.logger.Error("Failed to delete object from storage",
			zap.String("attachment_id", attachmentID.String()),
			zap.String("file_key", attachment.FileKey),
			zap.Error(err))
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete file from storage", err.Error())
	}
	if err := s.attachmentRepo.Delete(ctx, attachmentID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete attachment", err.Error())
	}
	return nil
}
