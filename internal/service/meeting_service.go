package service

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"project-task-api/internal/domain"
	"project-task-api/internal/dto"
	"project-task-api/internal/metrics"
	"project-task-api/internal/repository"
	"project-task-api/internal/response"
)

// ProcessQueueKey is the Redis list the transcription worker consumes.
const ProcessQueueKey = "meeting:process:queue"

// MeetingService defines the interface for meeting minutes business logic
type MeetingService interface {
	CreateMeeting(ctx context.Context, req *dto.CreateMeetingRequest, userID uuid.UUID) (*dto.MeetingResponse, error)
	GetMeeting(ctx context.Context, meetingID, userID uuid.UUID) (*dto.MeetingResponse, error)
	GetMeetingsByProject(ctx context.Context, projectID, userID uuid.UUID) ([]dto.MeetingResponse, error)
	UpdateMeeting(ctx context.Context, meetingID, userID uuid.UUID, req *dto.UpdateMeetingRequest) (*dto.MeetingResponse, error)
	DeleteMeeting(ctx context.Context, meetingID, userID uuid.UUID) error
	EnqueueProcessing(ctx context.Context, meetingID, userID uuid.UUID) (*dto.MeetingResponse, error)
}

// meetingServiceImpl is the implementation of MeetingService
type meetingServiceImpl struct {
	meetingRepo   repository.MeetingRepository
	projectRepo   repository.ProjectRepository
	attachmentSvc AttachmentService
	redisClient   *redis.Client
	metrics       *metrics.Metrics
	logger        *zap.Logger
}

// NewMeetingService creates a new instance of MeetingService
func NewMeetingService(meetingRepo repository.MeetingRepository, projectRepo repository.ProjectRepository, attachmentSvc AttachmentService, redisClient *redis.Client, m *metrics.Metrics, logger *zap.Logger) MeetingService {
	return &meetingServiceImpl{
		meetingRepo:   meetingRepo,
		projectRepo:   projectRepo,
		attachmentSvc: attachmentSvc,
		redisClient:   redisClient,
		metrics:       m,
		logger:        logger,
	}
}

// CreateMeeting records meeting minutes for a project
func (s *meetingServiceImpl) CreateMeeting(ctx context.Context, req *dto.CreateMeetingRequest, userID uuid.UUID) (*dto.MeetingResponse, error) {
	if err := s.requireMembership(ctx, req.ProjectID, userID); err != nil {
		return nil, err
	}

	attendees, err := json.Marshal(req.Attendees)
	if err != nil {
		return nil, response.NewValidationError("Invalid attendees list", err.Error())
	}

	meeting := &domain.Meeting{
		ProjectID:        req.ProjectID,
		Date:             req.Date,
		Attendees:        datatypes.JSON(attendees),
		Agenda:           req.Agenda,
		Decisions:        req.Decisions,
		ActionItems:      req.ActionItems,
		Transcript:       req.Transcript,
		AudioKey:         req.AudioKey,
		ProcessingStatus: domain.ProcessingStatusNone,
	}
	if err := s.meetingRepo.Create(ctx, meeting); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create meeting", err.Error())
	}

	if len(req.AttachmentIDs) > 0 {
		if err := s.attachmentSvc.ConfirmAttachments(ctx, req.AttachmentIDs, domain.EntityTypeMeeting, meeting.ID); err != nil {
			// Roll the meeting back so it never references unconfirmed uploads
			if deleteErr := s.meetingRepo.Delete(ctx, meeting.ID); deleteErr != nil {
				s.logger.Error("Failed to rollback meeting after attachment confirmation failure",
					zap.String("meeting_id", meeting.ID.String()),
					zap.Error(deleteErr))
			}
			return nil, err
		}
	}

	if s.metrics != nil {
		s.metrics.IncrementMeetingCreated()
	}

	resp := dto.NewMeetingResponse(meeting)
	return &resp, nil
}

// GetMeeting retrieves a meeting, including its transcription state so
// clients can poll processing progress.
func (s *meetingServiceImpl) GetMeeting(ctx context.Context, meetingID, userID uuid.UUID) (*dto.MeetingResponse, error) {
	meeting, err := s.findMeeting(ctx, meetingID, userID)
	if err != nil {
		return nil, err
	}
	resp := dto.NewMeetingResponse(meeting)
	return &resp, nil
}

// GetMeetingsByProject lists a project's meetings, newest first
func (s *meetingServiceImpl) GetMeetingsByProject(ctx context.Context, projectID, userID uuid.UUID) ([]dto.MeetingResponse, error) {
	if err := s.requireMembership(ctx, projectID, userID); err != nil {
		return nil, err
	}

	meetings, err := s.meetingRepo.FindByProjectID(ctx, projectID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch meetings", err.Error())
	}

	responses := make([]dto.MeetingResponse, 0, len(meetings))
	for _, m := range meetings {
		responses = append(responses, dto.NewMeetingResponse(m))
	}
	return responses, nil
}

// UpdateMeeting merges the fields present in the request
func (s *meetingServiceImpl) UpdateMeeting(ctx context.Context, meetingID, userID uuid.UUID, req *dto.UpdateMeetingRequest) (*dto.MeetingResponse, error) {
	if _, err := s.findMeeting(ctx, meetingID, userID); err != nil {
		return nil, err
	}

	if len(req.AttachmentIDs) > 0 {
		if err := s.attachmentSvc.ConfirmAttachments(ctx, req.AttachmentIDs, domain.EntityTypeMeeting, meetingID); err != nil {
			return nil, err
		}
	}

	fields := map[string]interface{}{}
	if req.Date != nil {
		fields["date"] = *req.Date
	}
	if req.Attendees != nil {
		raw, err := json.Marshal(req.Attendees)
		if err != nil {
			return nil, response.NewValidationError("Invalid attendees list", err.Error())
		}
		fields["attendees"] = datatypes.JSON(raw)
	}
	if req.Agenda != nil {
		fields["agenda"] = *req.Agenda
	}
	if req.Decisions != nil {
		fields["decisions"] = *req.Decisions
	}
	if req.ActionItems != nil {
		fields["action_items"] = *req.ActionItems
	}
	if req.Transcript != nil {
		fields["transcript"] = *req.Transcript
	}
	if req.AudioKey != nil {
		fields["audio_key"] = *req.AudioKey
	}

	if len(fields) > 0 {
		if err := s.meetingRepo.UpdateFields(ctx, meetingID, fields); err != nil {
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update meeting", err.Error())
		}
	}

	updated, err := s.meetingRepo.FindByID(ctx, meetingID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch updated meeting", err.Error())
	}
	resp := dto.NewMeetingResponse(updated)
	return &resp, nil
}

// DeleteMeeting removes a meeting
func (s *meetingServiceImpl) DeleteMeeting(ctx context.Context, meetingID, userID uuid.UUID) error {
	if _, err := s.findMeeting(ctx, meetingID, userID); err != nil {
		return err
	}
	if err := s.meetingRepo.Delete(ctx, meetingID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete meeting", err.Error())
	}
	return nil
}

// EnqueueProcessing queues the meeting's audio for transcription. The call
// only marks the meeting QUEUED and pushes its id onto the work queue; the
// worker owns every later transition. A meeting already in flight is not
// re-enqueued, but a FAILED one may be retried by calling this again.
func (s *meetingServiceImpl) EnqueueProcessing(ctx context.Context, meetingID, userID uuid.UUID) (*dto.MeetingResponse, error) {
	meeting, err := s.findMeeting(ctx, meetingID, userID)
	if err != nil {
		return nil, err
	}

	if meeting.AudioKey == "" {
		return nil, response.NewValidationError("Meeting has no audio recording to process", "")
	}
	switch meeting.ProcessingStatus {
	case domain.ProcessingStatusQueued, domain.ProcessingStatusProcessing:
		return nil, response.NewAppError(response.ErrCodeAlreadyExists, "Meeting is already being processed", "")
	}

	// Redis may be absent when the server started degraded; refuse before
	// touching the status so the meeting never sticks in QUEUED with no worker.
	if s.redisClient == nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Transcription queue is unavailable", "")
	}

	if err := s.meetingRepo.UpdateProcessingStatus(ctx, meetingID, domain.ProcessingStatusQueued); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to mark meeting queued", err.Error())
	}
	if err := s.redisClient.LPush(ctx, ProcessQueueKey, meetingID.String()).Err(); err != nil {
		// Roll the status back so the meeting does not look queued forever
		if rollbackErr := s.meetingRepo.UpdateProcessingStatus(ctx, meetingID, meeting.ProcessingStatus); rollbackErr != nil {
			s.logger.Error("Failed to rollback processing status after enqueue failure",
				zap.String("meeting_id", meetingID.String()),
				zap.Error(rollbackErr))
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to enqueue meeting", err.Error())
	}

	s.logger.Info("Meeting queued for transcription",
		zap.String("meeting_id", meetingID.String()))

	queued, err := s.meetingRepo.FindByID(ctx, meetingID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch meeting", err.Error())
	}
	resp := dto.NewMeetingResponse(queued)
	return &resp, nil
}

func (s *meetingServiceImpl) findMeeting(ctx context.Context, meetingID, userID uuid.UUID) (*domain.Meeting, error) {
	meeting, err := s.meetingRepo.FindByID(ctx, meetingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Meeting not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch meeting", err.Error())
	}
	if err := s.requireMembership(ctx, meeting.ProjectID, userID); err != nil {
		return nil, err
	}
	return meeting, nil
}

func (s *meetingServiceImpl) requireMembership(ctx context.Context, projectID, userID uuid.UUID) error {
	isMember, err := s.projectRepo.IsProjectMember(ctx, projectID, userID)
	if err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to check membership", err.Error())
	}
	if !isMember {
		return response.NewForbiddenError("You are not a member of this project", "")
	}
	return nil
}
