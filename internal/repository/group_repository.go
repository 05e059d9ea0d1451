package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"project-task-api/internal/domain"
)

// GroupRepository defines the interface for task group data access
type GroupRepository interface {
	Create(ctx context.Context, group *domain.TaskGroup) error
	CreateBatch(ctx context.Context, groups []*domain.TaskGroup) error
	FindByProjectID(ctx context.Context, projectID uuid.UUID) ([]*domain.TaskGroup, error)
	FindByProjectAndName(ctx context.Context, projectID uuid.UUID, name string) (*domain.TaskGroup, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// groupRepositoryImpl is the GORM implementation of GroupRepository
type groupRepositoryImpl struct {
	db *gorm.DB
}

// NewGroupRepository creates a new instance of GroupRepository
func NewGroupRepository(db *gorm.DB) GroupRepository {
	return &groupRepositoryImpl{db: db}
}

// Create creates a new task group
func (r *groupRepositoryImpl) Create(ctx context.Context, group *domain.TaskGroup) error {
	if err := r.db.WithContext(ctx).Create(group).Error; err != nil {
		return err
	}
	return nil
}

// CreateBatch creates multiple task groups at once
func (r *groupRepositoryImpl) CreateBatch(ctx context.Context, groups []*domain.TaskGroup) error {
	if len(groups) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Create(groups).Error; err != nil {
		return err
	}
	return nil
}

// FindByProjectID returns a project's groups in display order
func (r *groupRepositoryImpl) FindByProjectID(ctx context.Context, projectID uuid.UUID) ([]*domain.TaskGroup, error) {
	var groups []*domain.TaskGroup
	if err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("display_order ASC").
		Find(&groups).Error; err != nil {
		return nil, err
	}
	return groups, nil
}

// FindByProjectAndName finds a group by (project, name)
func (r *groupRepositoryImpl) FindByProjectAndName(ctx context.Context, projectID uuid.UUID, name string) (*domain.TaskGroup, error) {
	var group domain.TaskGroup
	if err := r.db.WithContext(ctx).
		Where("project_id = ? AND name = ?", projectID, name).
		First(&group).Error; err != nil {
		return nil, err
	}
	return &group, nil
}

// Delete soft deletes a task group by ID
func (r *groupRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Delete(&domain.TaskGroup{}, id).Error; err != nil {
		return err
	}
	return nil
}
