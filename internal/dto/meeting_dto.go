package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"project-task-api/internal/domain"
)

// CreateMeetingRequest represents the request to record meeting minutes
type CreateMeetingRequest struct {
	ProjectID   uuid.UUID `json:"projectId" binding:"required"`
	Date        string    `json:"date" binding:"required,len=10" example:"2024-03-15"`
	Attendees   []string  `json:"attendees"`
	Agenda      string    `json:"agenda"`
	Decisions   string    `json:"decisions"`
	ActionItems string    `json:"actionItems"`
	Transcript  string    `json:"transcript"`
	AudioKey    string    `json:"audioKey"`

	// TEMP attachment ids to confirm against the created meeting
	AttachmentIDs []uuid.UUID `json:"attachmentIds"`
}

// UpdateMeetingRequest represents a partial meeting update
type UpdateMeetingRequest struct {
	Date        *string  `json:"date" binding:"omitempty,len=10"`
	Attendees   []string `json:"attendees"`
	Agenda      *string  `json:"agenda"`
	Decisions   *string  `json:"decisions"`
	ActionItems *string  `json:"actionItems"`
	Transcript  *string  `json:"transcript"`
	AudioKey    *string  `json:"audioKey"`

	// TEMP attachment ids to confirm against this meeting
	AttachmentIDs []uuid.UUID `json:"attachmentIds"`
}

// MeetingResponse represents meeting minutes with transcription state
type MeetingResponse struct {
	ID               uuid.UUID               `json:"meetingId"`
	ProjectID        uuid.UUID               `json:"projectId"`
	Date             string                  `json:"date"`
	Attendees        []string                `json:"attendees"`
	Agenda           string                  `json:"agenda"`
	Decisions        string                  `json:"decisions"`
	ActionItems      string                  `json:"actionItems"`
	Transcript       string                  `json:"transcript"`
	Summary          string                  `json:"summary"`
	AudioKey         string                  `json:"audioKey"`
	ProcessingStatus domain.ProcessingStatus `json:"processingStatus"`
	CreatedAt        time.Time               `json:"createdAt"`
	UpdatedAt        time.Time               `json:"updatedAt"`
}

// NewMeetingResponse maps a domain meeting to its response shape
func NewMeetingResponse(meeting *domain.Meeting) MeetingResponse {
	attendees := []string{}
	if len(meeting.Attendees) > 0 {
		_ = json.Unmarshal(meeting.Attendees, &attendees)
	}
	return MeetingResponse{
		ID:               meeting.ID,
		ProjectID:        meeting.ProjectID,
		Date:             meeting.Date,
		Attendees:        attendees,
		Agenda:           meeting.Agenda,
		Decisions:        meeting.Decisions,
		ActionItems:      meeting.ActionItems,
		Transcript:       meeting.Transcript,
		Summary:          meeting.Summary,
		AudioKey:         meeting.AudioKey,
		ProcessingStatus: meeting.ProcessingStatus,
		CreatedAt:        meeting.CreatedAt,
		UpdatedAt:        meeting.UpdatedAt,
	}
}
