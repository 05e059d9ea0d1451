package domain

import (
	"time"

	"github.com/google/uuid"
)

// EntityType represents the type of entity an attachment is associated with
type EntityType string

const (
	EntityTypeTask    EntityType = "TASK"
	EntityTypeMeeting EntityType = "MEETING"
	EntityTypeProject EntityType = "PROJECT"
)

// AttachmentStatus represents the status of an attachment
type AttachmentStatus string

const (
	AttachmentStatusTemp      AttachmentStatus = "TEMP"      // Uploaded but not yet linked
	AttachmentStatusConfirmed AttachmentStatus = "CONFIRMED" // Linked to an entity
)

// Attachment represents a file uploaded to object storage.
// This is a polymorphic relationship - EntityID can reference a Task,
// Meeting or Project, so no foreign key constraint is placed on it.
type Attachment struct {
	BaseModel
	EntityType  EntityType       `gorm:"type:varchar(50);not null;index:idx_attachments_entity,priority:1" json:"entityType"`
	EntityID    *uuid.UUID       `gorm:"type:uuid;index:idx_attachments_entity,priority:2" json:"entityId"`
	Status      AttachmentStatus `gorm:"type:varchar(20);not null;default:'TEMP';index:idx_attachments_status" json:"status"`
	FileName    string           `gorm:"type:varchar(255);not null" json:"fileName"`
	FileKey     string           `gorm:"type:text;not null" json:"fileKey"` // object storage key, not a full URL
	FileSize    int64            `gorm:"not null" json:"fileSize"`
	ContentType string           `gorm:"type:varchar(100);not null" json:"contentType"`
	UploadedBy  uuid.UUID        `gorm:"type:uuid;not null;index:idx_attachments_uploaded_by" json:"uploadedBy"`
	ExpiresAt   *time.Time       `gorm:"type:timestamp;index:idx_attachments_expires_at" json:"expiresAt"`
}

// TableName specifies the table name for Attachment
func (Attachment) TableName() string {
	return "attachments"
}
