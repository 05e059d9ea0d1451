package dto

import (
	"time"

	"github.com/google/uuid"
)

// ApproveUserRequest represents an admin approval decision for a pending user
type ApproveUserRequest struct {
	Username string `json:"id" binding:"required" example:"hong123"`
	Action   string `json:"action" binding:"required,oneof=approve reject" example:"approve"`
}

// CreateDepartmentRequest represents the request to create a department
type CreateDepartmentRequest struct {
	Name string `json:"name" binding:"required,min=2,max=100" example:"플랫폼개발팀"`
}

// DepartmentResponse represents a department
type DepartmentResponse struct {
	ID        uuid.UUID `json:"departmentId"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"createdAt"`
}

// SeedResponse summarizes what the demo data seeding created
type SeedResponse struct {
	ProjectID   uuid.UUID `json:"projectId"`
	Departments int       `json:"departments"`
	Groups      int       `json:"groups"`
	Tasks       int       `json:"tasks"`
	Meetings    int       `json:"meetings"`
}
