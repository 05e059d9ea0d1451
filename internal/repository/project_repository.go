package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"project-task-api/internal/domain"
)

// ProjectRepository defines the interface for project and member data access
type ProjectRepository interface {
	Create(ctx context.Context, project *domain.Project) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	FindAll(ctx context.Context) ([]*domain.Project, error)
	FindByMemberUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Project, error)
	Update(ctx context.Context, project *domain.Project) error
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error

	AddMember(ctx context.Context, member *domain.ProjectMember) error
	FindMemberByID(ctx context.Context, memberID uuid.UUID) (*domain.ProjectMember, error)
	FindMemberByProjectAndUser(ctx context.Context, projectID, userID uuid.UUID) (*domain.ProjectMember, error)
	FindMembersByProjectID(ctx context.Context, projectID uuid.UUID) ([]*domain.ProjectMember, error)
	CountMembersByRole(ctx context.Context, projectID uuid.UUID, role domain.ProjectRole) (int64, error)
	UpdateMemberRole(ctx context.Context, memberID uuid.UUID, role domain.ProjectRole) error
	RemoveMember(ctx context.Context, memberID uuid.UUID) error
	IsProjectMember(ctx context.Context, projectID, userID uuid.UUID) (bool, error)
}

// projectRepositoryImpl is the GORM implementation of ProjectRepository
type projectRepositoryImpl struct {
	db *gorm.DB
}

// NewProjectRepository creates a new instance of ProjectRepository
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepositoryImpl{db: db}
}

// preloadAll attaches the associations the board and my-work views consume
func (r *projectRepositoryImpl) preloadAll(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Groups", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order ASC")
		}).
		Preload("Tasks").
		Preload("Meetings").
		Preload("Members").
		Preload("Members.User")
}

// Create creates a new project with its associations
func (r *projectRepositoryImpl) Create(ctx context.Context, project *domain.Project) error {
	if err := r.db.WithContext(ctx).Create(project).Error; err != nil {
		return err
	}
	return nil
}

// FindByID finds a project by ID with all associations loaded
func (r *projectRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	var project domain.Project
	if err := r.preloadAll(r.db.WithContext(ctx)).
		First(&project, id).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// FindAll returns every project, ordered by creation time
func (r *projectRepositoryImpl) FindAll(ctx context.Context) ([]*domain.Project, error) {
	var projects []*domain.Project
	if err := r.preloadAll(r.db.WithContext(ctx)).
		Order("created_at ASC").
		Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// FindByMemberUserID returns the projects the given user is a member of
func (r *projectRepositoryImpl) FindByMemberUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Project, error) {
	var projects []*domain.Project
	if err := r.preloadAll(r.db.WithContext(ctx)).
		Joins("JOIN project_members ON project_members.project_id = projects.id").
		Where("project_members.user_id = ?", userID).
		Order("projects.created_at ASC").
		Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// Update saves the full project record
func (r *projectRepositoryImpl) Update(ctx context.Context, project *domain.Project) error {
	if err := r.db.WithContext(ctx).Save(project).Error; err != nil {
		return err
	}
	return nil
}

// UpdateFields applies a partial update to a project
func (r *projectRepositoryImpl) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	result := r.db.WithContext(ctx).
		Model(&domain.Project{}).
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

// Delete soft deletes a project by ID
func (r *projectRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Delete(&domain.Project{}, id).Error; err != nil {
		return err
	}
	return nil
}

// AddMember adds a member to a project
func (r *projectRepositoryImpl) AddMember(ctx context.Context, member *domain.ProjectMember) error {
	if err := r.db.WithContext(ctx).Create(member).Error; err != nil {
		return err
	}
	return nil
}

// FindMemberByID finds a project member by its ID
func (r *projectRepositoryImpl) FindMemberByID(ctx context.Context, memberID uuid.UUID) (*domain.ProjectMember, error) {
	var member domain.ProjectMember
	if err := r.db.WithContext(ctx).First(&member, memberID).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

// FindMemberByProjectAndUser finds a membership by (project, user)
func (r *projectRepositoryImpl) FindMemberByProjectAndUser(ctx context.Context, projectID, userID uuid.UUID) (*domain.ProjectMember, error) {
	var member domain.ProjectMember
	if err := r.db.WithContext(ctx).
		Where("project_id = ? AND user_id = ?", projectID, userID).
		First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

// FindMembersByProjectID returns all members of a project
func (r *projectRepositoryImpl) FindMembersByProjectID(ctx context.Context, projectID uuid.UUID) ([]*domain.ProjectMember, error) {
	var members []*domain.ProjectMember
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("project_id = ?", projectID).
		Order("joined_at ASC").
		Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// CountMembersByRole counts a project's members holding the given role
func (r *projectRepositoryImpl) CountMembersByRole(ctx context.Context, projectID uuid.UUID, role domain.ProjectRole) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&domain.ProjectMember{}).
		Where("project_id = ? AND role = ?", projectID, role).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// UpdateMemberRole updates a member's project role
func (r *projectRepositoryImpl) UpdateMemberRole(ctx context.Context, memberID uuid.UUID, role domain.ProjectRole) error {
	result := r.db.WithContext(ctx).
		Model(&domain.ProjectMember{}).
		Where("id = ?", memberID).
		Update("role", role)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// RemoveMember removes a member from a project
func (r *projectRepositoryImpl) RemoveMember(ctx context.Context, memberID uuid.UUID) error {
	if err := r.db.WithContext(ctx).
		Delete(&domain.ProjectMember{}, memberID).Error; err != nil {
		return err
	}
	return nil
}

// IsProjectMember checks whether the user belongs to the project
func (r *projectRepositoryImpl) IsProjectMember(ctx context.Context, projectID, userID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&domain.ProjectMember{}).
		Where("project_id = ? AND user_id = ?", projectID, userID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
