package domain

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ProcessingStatus represents the state of the audio transcription pipeline
type ProcessingStatus string

const (
	ProcessingStatusNone       ProcessingStatus = "NONE"
	ProcessingStatusQueued     ProcessingStatus = "QUEUED"
	ProcessingStatusProcessing ProcessingStatus = "PROCESSING"
	ProcessingStatusCompleted  ProcessingStatus = "COMPLETED"
	ProcessingStatusFailed     ProcessingStatus = "FAILED"
)

// Meeting represents meeting minutes with optional AI transcription of an
// uploaded audio recording. AudioKey stores the object storage key only.
type Meeting struct {
	BaseModel
	ProjectID        uuid.UUID        `gorm:"type:uuid;not null;index:idx_meetings_project_id" json:"projectId"`
	Date             string           `gorm:"type:varchar(10)" json:"date"`
	Attendees        datatypes.JSON   `gorm:"type:jsonb" json:"attendees"`
	Agenda           string           `gorm:"type:text" json:"agenda"`
	Decisions        string           `gorm:"type:text" json:"decisions"`
	ActionItems      string           `gorm:"type:text" json:"actionItems"`
	Transcript       string           `gorm:"type:text" json:"transcript"`
	Summary          string           `gorm:"type:text" json:"summary"`
	AudioKey         string           `gorm:"type:text" json:"audioKey"`
	ProcessingStatus ProcessingStatus `gorm:"type:varchar(20);not null;default:'NONE';index:idx_meetings_processing_status" json:"processingStatus"`
	Project          Project          `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"project,omitempty"`
}

// TableName specifies the table name for Meeting
func (Meeting) TableName() string {
	return "meetings"
}
