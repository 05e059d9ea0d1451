package service

import (
	"context"
	"errors"
	"math/rand"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"project-task-api/internal/domain"
	"project-task-api/internal/dto"
	"project-task-api/internal/repository"
	"project-task-api/internal/response"
)

// departmentColors is the palette a new department's badge color is drawn from.
var departmentColors = []string{
	"#FF6B6B", "#4ECDC4", "#45B7D1", "#FFA07A",
	"#98D8C8", "#F7DC6F", "#BB8FCE", "#85C1E9",
}

// AdminService defines the interface for admin-only business logic
type AdminService interface {
	GetPendingUsers(ctx context.Context) ([]dto.UserResponse, error)
	DecideUser(ctx context.Context, req *dto.ApproveUserRequest) error
	GetDepartments(ctx context.Context) ([]dto.DepartmentResponse, error)
	CreateDepartment(ctx context.Context, req *dto.CreateDepartmentRequest) (*dto.DepartmentResponse, error)
	DeleteDepartment(ctx context.Context, departmentID uuid.UUID) error
}

// adminServiceImpl is the implementation of AdminService
type adminServiceImpl struct {
	userRepo       repository.UserRepository
	departmentRepo repository.DepartmentRepository
	logger         *zap.Logger
}

// NewAdminService creates a new instance of AdminService
func NewAdminService(userRepo repository.UserRepository, departmentRepo repository.DepartmentRepository, logger *zap.Logger) AdminService {
	return &adminServiceImpl{
		userRepo:       userRepo,
		departmentRepo: departmentRepo,
		logger:         logger,
	}
}

// GetPendingUsers lists accounts awaiting an approval decision
func (s *adminServiceImpl) GetPendingUsers(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := s.userRepo.FindByStatus(ctx, domain.UserStatusPending)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch pending users", err.Error())
	}

	responses := make([]dto.UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, dto.NewUserResponse(user))
	}
	return responses, nil
}

// DecideUser approves or rejects a pending account
func (s *adminServiceImpl) DecideUser(ctx context.Context, req *dto.ApproveUserRequest) error {
	user, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("User not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to fetch user", err.Error())
	}
	if user.Status != domain.UserStatusPending {
		return response.NewValidationError("User is not pending approval", "")
	}

	status := domain.UserStatusApproved
	if req.Action == "reject" {
		status = domain.UserStatusRejected
	}
	if err := s.userRepo.UpdateStatus(ctx, req.Username, status); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to update user status", err.Error())
	}

	s.logger.Info("User approval decided",
		zap.String("username", req.Username),
		zap.String("decision", req.Action))
	return nil
}

// GetDepartments lists all departments
func (s *adminServiceImpl) GetDepartments(ctx context.Context) ([]dto.DepartmentResponse, error) {
	departments, err := s.departmentRepo.FindAll(ctx)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch departments", err.Error())
	}

	responses := make([]dto.DepartmentResponse, 0, len(departments))
	for _, d := range departments {
		responses = append(responses, dto.DepartmentResponse{
			ID:        d.ID,
			Name:      d.Name,
			Color:     d.Color,
			CreatedAt: d.CreatedAt,
		})
	}
	return responses, nil
}

// CreateDepartment creates a department with a randomly picked badge color
func (s *adminServiceImpl) CreateDepartment(ctx context.Context, req *dto.CreateDepartmentRequest) (*dto.DepartmentResponse, error) {
	existing, err := s.departmentRepo.FindByName(ctx, req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to check department name", err.Error())
	}
	if existing != nil {
		return nil, response.NewAppError(response.ErrCodeAlreadyExists, "Department already exists", "")
	}

	department := &domain.Department{
		Name:  req.Name,
		Color: departmentColors[rand.Intn(len(departmentColors))],
	}
	if err := s.departmentRepo.Create(ctx, department); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create department", err.Error())
	}

	return &dto.DepartmentResponse{
		ID:        department.ID,
		Name:      department.Name,
		Color:     department.Color,
		CreatedAt: department.CreatedAt,
	}, nil
}

// DeleteDepartment removes a department. Users keep their department string
// as-is; membership is by name, not by reference.
func (s *adminServiceImpl) DeleteDepartment(ctx context.Context, departmentID uuid.UUID) error {
	if err := s.departmentRepo.Delete(ctx, departmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Department not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete department", err.Error())
	}
	return nil
}
