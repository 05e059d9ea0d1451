package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"project-task-api/internal/domain"
)

// DepartmentRepository defines the interface for department data access
type DepartmentRepository interface {
	Create(ctx context.Context, department *domain.Department) error
	FindAll(ctx context.Context) ([]*domain.Department, error)
	FindByName(ctx context.Context, name string) (*domain.Department, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// departmentRepositoryImpl is the GORM implementation of DepartmentRepository
type departmentRepositoryImpl struct {
	db *gorm.DB
}

// NewDepartmentRepository creates a new instance of DepartmentRepository
func NewDepartmentRepository(db *gorm.DB) DepartmentRepository {
	return &departmentRepositoryImpl{db: db}
}

// Create creates a new department
func (r *departmentRepositoryImpl) Create(ctx context.Context, department *domain.Department) error {
	if err := r.db.WithContext(ctx).Create(department).Error; err != nil {
		return err
	}
	return nil
}

// FindAll returns all departments
func (r *departmentRepositoryImpl) FindAll(ctx context.Context) ([]*domain.Department, error) {
	var departments []*domain.Department
	if err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&departments).Error; err != nil {
		return nil, err
	}
	return departments, nil
}

// FindByName finds a department by name
func (r *departmentRepositoryImpl) FindByName(ctx context.Context, name string) (*domain.Department, error) {
	var department domain.Department
	if err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&department).Error; err != nil {
		return nil, err
	}
	return &department, nil
}

// Delete soft deletes a department by ID
func (r *departmentRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Delete(&domain.Department{}, id).Error; err != nil {
		return err
	}
	return nil
}
