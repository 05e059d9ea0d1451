package dto

import (
	"github.com/google/uuid"

	"project-task-api/internal/domain"
)

// RegisterRequest represents the request to create a new account.
// New accounts are created in PENDING status and require admin approval.
type RegisterRequest struct {
	Username   string `json:"id" binding:"required,min=4,max=50" example:"hong123"`
	Password   string `json:"pw" binding:"required,min=8" example:"secret-password"`
	Name       string `json:"name" binding:"required,min=2,max=50" example:"홍길동"`
	Email      string `json:"email" binding:"omitempty,email" example:"hong@example.com"`
	BirthDate  string `json:"birthDate" binding:"omitempty,len=10" example:"1990-01-15"`
	Department string `json:"department" binding:"omitempty,max=100" example:"제품 디자인팀"`
}

// LoginRequest represents the login request
type LoginRequest struct {
	Username string `json:"id" binding:"required" example:"hong123"`
	Password string `json:"pw" binding:"required" example:"secret-password"`
}

// LoginResponse represents a successful login
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserResponse represents public user information
type UserResponse struct {
	ID         uuid.UUID         `json:"userId"`
	Username   string            `json:"id"`
	Name       string            `json:"name"`
	Email      string            `json:"email"`
	BirthDate  string            `json:"birthDate,omitempty"`
	Department string            `json:"department"`
	Role       domain.UserRole   `json:"role"`
	Status     domain.UserStatus `json:"status"`
}

// NewUserResponse maps a domain user to its response shape
func NewUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:         user.ID,
		Username:   user.Username,
		Name:       user.Name,
		Email:      user.Email,
		BirthDate:  user.BirthDate,
		Department: user.Department,
		Role:       user.Role,
		Status:     user.Status,
	}
}
