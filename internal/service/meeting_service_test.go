package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"project-task-api/internal/client"
	"project-task-api/internal/domain"
	"project-task-api/internal/dto"
	"project-task-api/internal/response"
)

// attachmentSvcOver builds a real attachment service over the given repo
// mock, for services that confirm uploads during create/update.
func attachmentSvcOver(attachmentRepo *MockAttachmentRepository) AttachmentService {
	return NewAttachmentService(attachmentRepo, client.NewMockS3Client(), zap.NewNop())
}

// tempAttachmentsOf returns a FindByIDs stub serving TEMP attachments of
// the given entity type for every requested id.
func tempAttachmentsOf(entityType domain.EntityType) func(ctx context.Context, ids []uuid.UUID) ([]*domain.Attachment, error) {
	return func(ctx context.Context, ids []uuid.UUID) ([]*domain.Attachment, error) {
		out := make([]*domain.Attachment, 0, len(ids))
		for _, id := range ids {
			out = append(out, &domain.Attachment{
				BaseModel:  domain.BaseModel{ID: id},
				EntityType: entityType,
				Status:     domain.AttachmentStatusTemp,
			})
		}
		return out, nil
	}
}

func TestCreateMeeting_StartsUnprocessed(t *testing.T) {
	projectID := uuid.New()
	var created *domain.Meeting

	meetingRepo := &MockMeetingRepository{
		CreateFunc: func(ctx context.Context, meeting *domain.Meeting) error {
			meeting.ID = uuid.New()
			created = meeting
			return nil
		},
	}

	svc := NewMeetingService(meetingRepo, memberProjectRepo(), nil, nil, nil, zap.NewNop())

	resp, err := svc.CreateMeeting(context.Background(), &dto.CreateMeetingRequest{
		ProjectID: projectID,
		Date:      "2024-03-15",
		Attendees: []string{"김철수", "박영희"},
		Agenda:    "킥오프",
		AudioKey:  "uploads/meetings/2024/03/rec.mp3",
	}, uuid.New())

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, domain.ProcessingStatusNone, created.ProcessingStatus)

	var attendees []string
	require.NoError(t, json.Unmarshal(created.Attendees, &attendees))
	assert.Equal(t, []string{"김철수", "박영희"}, attendees)

	assert.Equal(t, domain.ProcessingStatusNone, resp.ProcessingStatus)
	assert.Equal(t, []string{"김철수", "박영희"}, resp.Attendees)
}

func TestCreateMeeting_NonMemberForbidden(t *testing.T) {
	projectRepo := &MockProjectRepository{
		IsProjectMemberFunc: func(ctx context.Context, projectID, userID uuid.UUID) (bool, error) {
			return false, nil
		},
	}
	svc := NewMeetingService(&MockMeetingRepository{}, projectRepo, nil, nil, nil, zap.NewNop())

	_, err := svc.CreateMeeting(context.Background(), &dto.CreateMeetingRequest{
		ProjectID: uuid.New(),
		Date:      "2024-03-15",
	}, uuid.New())

	assertAppErrorCode(t, err, response.ErrCodeForbidden)
}

func TestUpdateMeeting_MergesOnlyPresentFields(t *testing.T) {
	meetingID := uuid.New()
	var gotFields map[string]interface{}

	meetingRepo := &MockMeetingRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Meeting, error) {
			return &domain.Meeting{BaseModel: domain.BaseModel{ID: id}, ProjectID: uuid.New()}, nil
		},
		UpdateFieldsFunc: func(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
			gotFields = fields
			return nil
		},
	}

	svc := NewMeetingService(meetingRepo, memberProjectRepo(), nil, nil, nil, zap.NewNop())

	agenda := "회고"
	_, err := svc.UpdateMeeting(context.Background(), meetingID, uuid.New(), &dto.UpdateMeetingRequest{
		Agenda: &agenda,
	})

	require.NoError(t, err)
	assert.Equal(t, "회고", gotFields["agenda"])
	assert.NotContains(t, gotFields, "date")
	assert.NotContains(t, gotFields, "transcript")
}

func TestEnqueueProcessing_RequiresAudio(t *testing.T) {
	meetingRepo := &MockMeetingRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Meeting, error) {
			return &domain.Meeting{
				BaseModel:        domain.BaseModel{ID: id},
				ProjectID:        uuid.New(),
				ProcessingStatus: domain.ProcessingStatusNone,
			}, nil
		},
	}

	svc := NewMeetingService(meetingRepo, memberProjectRepo(), nil, nil, nil, zap.NewNop())

	_, err := svc.EnqueueProcessing(context.Background(), uuid.New(), uuid.New())
	assertAppErrorCode(t, err, response.ErrCodeValidation)
}

func TestEnqueueProcessing_InFlightNotReenqueued(t *testing.T) {
	for _, status := range []domain.ProcessingStatus{
		domain.ProcessingStatusQueued,
		domain.ProcessingStatusProcessing,
	} {
		t.Run(string(status), func(t *testing.T) {
			meetingRepo := &MockMeetingRepository{
				FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Meeting, error) {
					return &domain.Meeting{
						BaseModel:        domain.BaseModel{ID: id},
						ProjectID:        uuid.New(),
						AudioKey:         "uploads/meetings/2024/03/rec.mp3",
						ProcessingStatus: status,
					}, nil
				},
			}

			svc := NewMeetingService(meetingRepo, memberProjectRepo(), nil, nil, nil, zap.NewNop())

			_, err := svc.EnqueueProcessing(context.Background(), uuid.New(), uuid.New())
			assertAppErrorCode(t, err, response.ErrCodeAlreadyExists)
		})
	}
}

func TestDeleteMeeting_NotFound(t *testing.T) {
	meetingRepo := &MockMeetingRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Meeting, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}

	svc := NewMeetingService(meetingRepo, memberProjectRepo(), nil, nil, nil, zap.NewNop())

	err := svc.DeleteMeeting(context.Background(), uuid.New(), uuid.New())
	assertAppErrorCode(t, err, response.ErrCodeNotFound)
}

func TestCreateMeeting_ConfirmsAttachments(t *testing.T) {
	attachmentID := uuid.New()
	var gotIDs []uuid.UUID
	var gotEntityType domain.EntityType
	var gotEntityID uuid.UUID

	attachmentRepo := &MockAttachmentRepository{
		FindByIDsFunc: tempAttachmentsOf(domain.EntityTypeMeeting),
		ConfirmAttachmentsFunc: func(ctx context.Context, attachmentIDs []uuid.UUID, entityType domain.EntityType, entityID uuid.UUID) error {
			gotIDs = attachmentIDs
			gotEntityType = entityType
			gotEntityID = entityID
			return nil
		},
	}
	var created *domain.Meeting
	meetingRepo := &MockMeetingRepository{
		CreateFunc: func(ctx context.Context, meeting *domain.Meeting) error {
			meeting.ID = uuid.New()
			created = meeting
			return nil
		},
	}

	svc := NewMeetingService(meetingRepo, memberProjectRepo(), attachmentSvcOver(attachmentRepo), nil, nil, zap.NewNop())

	_, err := svc.CreateMeeting(context.Background(), &dto.CreateMeetingRequest{
		ProjectID:     uuid.New(),
		Date:          "2024-03-15",
		AudioKey:      "uploads/meetings/2024/03/rec.mp3",
		AttachmentIDs: []uuid.UUID{attachmentID},
	}, uuid.New())

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, []uuid.UUID{attachmentID}, gotIDs)
	assert.Equal(t, domain.EntityTypeMeeting, gotEntityType)
	assert.Equal(t, created.ID, gotEntityID)
}

func TestCreateMeeting_AttachmentFailureRollsBack(t *testing.T) {
	attachmentRepo := &MockAttachmentRepository{
		// No rows come back, so confirmation fails validation
		FindByIDsFunc: func(ctx context.Context, ids []uuid.UUID) ([]*domain.Attachment, error) {
			return nil, nil
		},
	}
	var deletedID uuid.UUID
	meetingRepo := &MockMeetingRepository{
		CreateFunc: func(ctx context.Context, meeting *domain.Meeting) error {
			meeting.ID = uuid.New()
			return nil
		},
		DeleteFunc: func(ctx context.Context, id uuid.UUID) error {
			deletedID = id
			return nil
		},
	}

	svc := NewMeetingService(meetingRepo, memberProjectRepo(), attachmentSvcOver(attachmentRepo), nil, nil, zap.NewNop())

	_, err := svc.CreateMeeting(context.Background(), &dto.CreateMeetingRequest{
		ProjectID:     uuid.New(),
		Date:          "2024-03-15",
		AttachmentIDs: []uuid.UUID{uuid.New()},
	}, uuid.New())

	assertAppErrorCode(t, err, response.ErrCodeValidation)
	assert.NotEqual(t, uuid.Nil, deletedID)
}

func TestUpdateMeeting_ConfirmsAttachments(t *testing.T) {
	meetingID := uuid.New()
	var gotEntityID uuid.UUID

	attachmentRepo := &MockAttachmentRepository{
		FindByIDsFunc: tempAttachmentsOf(domain.EntityTypeMeeting),
		ConfirmAttachmentsFunc: func(ctx context.Context, attachmentIDs []uuid.UUID, entityType domain.EntityType, entityID uuid.UUID) error {
			gotEntityID = entityID
			return nil
		},
	}
	meetingRepo := &MockMeetingRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Meeting, error) {
			return &domain.Meeting{BaseModel: domain.BaseModel{ID: id}, ProjectID: uuid.New()}, nil
		},
	}

	svc := NewMeetingService(meetingRepo, memberProjectRepo(), attachmentSvcOver(attachmentRepo), nil, nil, zap.NewNop())

	_, err := svc.UpdateMeeting(context.Background(), meetingID, uuid.New(), &dto.UpdateMeetingRequest{
		AttachmentIDs: []uuid.UUID{uuid.New()},
	})

	require.NoError(t, err)
	assert.Equal(t, meetingID, gotEntityID)
}

func TestEnqueueProcessing_QueueUnavailable(t *testing.T) {
	statusTouched := false
	meetingRepo := &MockMeetingRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Meeting, error) {
			return &domain.Meeting{
				BaseModel:        domain.BaseModel{ID: id},
				ProjectID:        uuid.New(),
				AudioKey:         "uploads/meetings/2024/03/rec.mp3",
				ProcessingStatus: domain.ProcessingStatusNone,
			}, nil
		},
		UpdateProcessingStatusFunc: func(ctx context.Context, id uuid.UUID, status domain.ProcessingStatus) error {
			statusTouched = true
			return nil
		},
	}

	svc := NewMeetingService(meetingRepo, memberProjectRepo(), nil, nil, nil, zap.NewNop())

	_, err := svc.EnqueueProcessing(context.Background(), uuid.New(), uuid.New())

	assertAppErrorCode(t, err, response.ErrCodeInternal)
	assert.False(t, statusTouched)
}
