package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"project-task-api/internal/domain"
)

// MeetingRepository defines the interface for meeting data access
type MeetingRepository interface {
	Create(ctx context.Context, meeting *domain.Meeting) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Meeting, error)
	FindByProjectID(ctx context.Context, projectID uuid.UUID) ([]*domain.Meeting, error)
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	UpdateProcessingStatus(ctx context.Context, id uuid.UUID, status domain.ProcessingStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// meetingRepositoryImpl is the GORM implementation of MeetingRepository
type meetingRepositoryImpl struct {
	db *gorm.DB
}

// NewMeetingRepository creates a new instance of MeetingRepository
func NewMeetingRepository(db *gorm.DB) MeetingRepository {
	return &meetingRepositoryImpl{db: db}
}

// Create creates a new meeting
func (r *meetingRepositoryImpl) Create(ctx context.Context, meeting *domain.Meeting) error {
	if err := r.db.WithContext(ctx).Create(meeting).Error; err != nil {
		return err
	}
	return nil
}

// FindByID finds a meeting by its ID
func (r *meetingRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Meeting, error) {
	var meeting domain.Meeting
	if err := r.db.WithContext(ctx).First(&meeting, id).Error; err != nil {
		return nil, err
	}
	return &meeting, nil
}

// FindByProjectID returns a project's meetings, newest first
func (r *meetingRepositoryImpl) FindByProjectID(ctx context.Context, projectID uuid.UUID) ([]*domain.Meeting, error) {
	var meetings []*domain.Meeting
	if err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("date DESC").
		Find(&meetings).Error; err != nil {
		return nil, err
	}
	return meetings, nil
}

// UpdateFields applies a partial update to a meeting
func (r *meetingRepositoryImpl) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	result := r.db.WithContext(ctx).
		Model(&domain.Meeting{}).
		Where("id = ?", id).
		Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// UpdateProcessingStatus updates only the transcription pipeline status
func (r *meetingRepositoryImpl) UpdateProcessingStatus(ctx context.Context, id uuid.UUID, status domain.ProcessingStatus) error {
	result := r.db.WithContext(ctx).
		Model(&domain.Meeting{}).
		Where("id = ?", id).
		Update("processing_status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete soft deletes a meeting by ID
func (r *meetingRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&domain.Meeting{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
