package dto

import (
	"time"

	"github.com/google/uuid"

	"project-task-api/internal/domain"
)

// PresignedURLRequest represents the request for an upload URL
type PresignedURLRequest struct {
	EntityType  string `json:"entityType" binding:"required,oneof=TASK MEETING PROJECT" example:"MEETING"`
	FileName    string `json:"fileName" binding:"required,max=255" example:"meeting-recording.mp3"`
	ContentType string `json:"contentType" binding:"required,max=100" example:"audio/mpeg"`
	FileSize    int64  `json:"fileSize" binding:"required,min=1"`
}

// PresignedURLResponse carries the upload URL and the object key the
// client must echo back when saving metadata
type PresignedURLResponse struct {
	UploadURL string `json:"uploadUrl"`
	FileKey   string `json:"fileKey"`
	ExpiresIn int    `json:"expiresIn"` // seconds
}

// SaveAttachmentMetadataRequest registers an uploaded object as a TEMP
// attachment awaiting confirmation
type SaveAttachmentMetadataRequest struct {
	EntityType  string     `json:"entityType" binding:"required,oneof=TASK MEETING PROJECT"`
	EntityID    *uuid.UUID `json:"entityId"`
	FileKey     string     `json:"fileKey" binding:"required"`
	FileName    string     `json:"fileName" binding:"required,max=255"`
	ContentType string     `json:"contentType" binding:"required,max=100"`
	FileSize    int64      `json:"fileSize" binding:"required,min=1"`
}

// AttachmentResponse represents attachment metadata
type AttachmentResponse struct {
	ID          uuid.UUID               `json:"attachmentId"`
	EntityType  domain.EntityType       `json:"entityType"`
	EntityID    *uuid.UUID              `json:"entityId"`
	Status      domain.AttachmentStatus `json:"status"`
	FileName    string                  `json:"fileName"`
	FileKey     string                  `json:"fileKey"`
	FileSize    int64                   `json:"fileSize"`
	ContentType string                  `json:"contentType"`
	UploadedBy  uuid.UUID               `json:"uploadedBy"`
	CreatedAt   time.Time               `json:"createdAt"`
}

// DownloadURLResponse carries a time-limited download URL
type DownloadURLResponse struct {
	DownloadURL string `json:"downloadUrl"`
	ExpiresIn   int    `json:"expiresIn"` // seconds
}

// NewAttachmentResponse maps a domain attachment to its response shape
func NewAttachmentResponse(attachment *domain.Attachment) AttachmentResponse {
	return AttachmentResponse{
		ID:          attachment.ID,
		EntityType:  attachment.EntityType,
		EntityID:    attachment.EntityID,
		Status:      attachment.Status,
		FileName:    attachment.FileName,
		FileKey:     attachment.FileKey,
		FileSize:    attachment.FileSize,
		ContentType: attachment.ContentType,
		UploadedBy:  attachment.UploadedBy,
		CreatedAt:   attachment.CreatedAt,
	}
}
