package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"project-task-api/internal/domain"
)

// CreateTaskRequest represents the request to add a task to the board.
// Omitted fields get the board's empty-value defaults.
type CreateTaskRequest struct {
	ProjectID       uuid.UUID  `json:"projectId" binding:"required"`
	Level           int        `json:"level" binding:"required,min=1,max=3" example:"1"`
	ParentID        *uuid.UUID `json:"parentId"`
	Name            string     `json:"name" binding:"omitempty,max=255" example:"UX 전략 수립"`
	Assignee        string     `json:"assignee" binding:"omitempty,max=100" example:"김철수"`
	RoleDescription string     `json:"roleDescription"`
	Scope           string     `json:"scope"`
	StartDate       string     `json:"startDate" binding:"omitempty,len=10" example:"2024-01-01"`
	EndDate         string     `json:"endDate" binding:"omitempty,len=10" example:"2024-02-28"`
	Group           string     `json:"group" binding:"omitempty,max=100" example:"할 일"`
	Status          domain.TaskStatus   `json:"status" binding:"omitempty,oneof='Working on it' Done Stuck Empty"`
	Priority        domain.TaskPriority `json:"priority" binding:"omitempty,oneof=High Medium Low Empty"`
	Budget          float64    `json:"budget" binding:"omitempty,min=0"`
	Memo            string     `json:"memo"`

	// TEMP attachment ids to confirm against the created task
	AttachmentIDs []uuid.UUID `json:"attachmentIds"`
}

// UpdateTaskRequest represents a field-by-field task update. Only fields
// present in the request are merged; level/parent consistency is not
// re-validated on update.
type UpdateTaskRequest struct {
	Name            *string    `json:"name" binding:"omitempty,max=255"`
	Assignee        *string    `json:"assignee" binding:"omitempty,max=100"`
	RoleDescription *string    `json:"roleDescription"`
	Scope           *string    `json:"scope"`
	StartDate       *string    `json:"startDate" binding:"omitempty,len=10"`
	EndDate         *string    `json:"endDate"`
	Group           *string    `json:"group" binding:"omitempty,max=100"`
	Status          *domain.TaskStatus   `json:"status" binding:"omitempty,oneof='Working on it' Done Stuck Empty"`
	Priority        *domain.TaskPriority `json:"priority" binding:"omitempty,oneof=High Medium Low Empty"`
	Budget          *float64   `json:"budget" binding:"omitempty,min=0"`
	Memo            *string    `json:"memo"`
	Files           []string   `json:"files"`
	Collapsed       *bool      `json:"collapsed"`

	// TEMP attachment ids to confirm against this task
	AttachmentIDs []uuid.UUID `json:"attachmentIds"`
}

// TaskResponse represents a task on the board
type TaskResponse struct {
	ID              uuid.UUID           `json:"id"`
	ProjectID       uuid.UUID           `json:"projectId"`
	Level           int                 `json:"level"`
	ParentID        *uuid.UUID          `json:"parentId"`
	Name            string              `json:"name"`
	Assignee        string              `json:"assignee"`
	RoleDescription string              `json:"roleDescription"`
	Scope           string              `json:"scope"`
	StartDate       string              `json:"startDate"`
	EndDate         string              `json:"endDate"`
	Group           string              `json:"group"`
	Status          domain.TaskStatus   `json:"status"`
	Priority        domain.TaskPriority `json:"priority"`
	Budget          float64             `json:"budget"`
	Memo            string              `json:"memo"`
	Files           []string            `json:"files"`
	Collapsed       bool                `json:"collapsed"`
	LastUpdated     time.Time           `json:"lastUpdated"`
}

// NewTaskResponse maps a domain task to its response shape
func NewTaskResponse(task *domain.Task) TaskResponse {
	files := []string{}
	if len(task.Files) > 0 {
		// Malformed stored JSON degrades to an empty list rather than an error
		_ = json.Unmarshal(task.Files, &files)
	}
	return TaskResponse{
		ID:              task.ID,
		ProjectID:       task.ProjectID,
		Level:           task.Level,
		ParentID:        task.ParentID,
		Name:            task.Name,
		Assignee:        task.Assignee,
		RoleDescription: task.RoleDescription,
		Scope:           task.Scope,
		StartDate:       task.StartDate,
		EndDate:         task.EndDate,
		Group:           task.GroupName,
		Status:          task.Status,
		Priority:        task.Priority,
		Budget:          task.Budget,
		Memo:            task.Memo,
		Files:           files,
		Collapsed:       task.Collapsed,
		LastUpdated:     task.UpdatedAt,
	}
}
