package dto

import (
	"time"

	"github.com/google/uuid"

	"project-task-api/internal/domain"
)

// CreateProjectRequest represents the request to create a new project.
// The creator becomes the project's manager and the default task groups
// are seeded automatically.
type CreateProjectRequest struct {
	Name       string `json:"name" binding:"required,min=2,max=100" example:"차세대 뱅킹 플랫폼 구축"`
	Department string `json:"department" binding:"omitempty,max=100" example:"제품 디자인팀"`
	Category   string `json:"category" binding:"omitempty,max=100" example:"Internal"`
	StartDate  string `json:"startDate" binding:"omitempty,len=10" example:"2024-01-01"`
	EndDate    string `json:"endDate" binding:"omitempty,len=10" example:"2024-06-30"`

	// TEMP attachment ids to confirm against the created project
	AttachmentIDs []uuid.UUID `json:"attachmentIds"`
}

// UpdateProjectRequest represents a partial project update
type UpdateProjectRequest struct {
	Name       *string               `json:"name" binding:"omitempty,min=2,max=100"`
	Department *string               `json:"department" binding:"omitempty,max=100"`
	Status     *domain.ProjectStatus `json:"status" binding:"omitempty,oneof=Planning 'In Progress' Done"`
	Category   *string               `json:"category" binding:"omitempty,max=100"`
	StartDate  *string               `json:"startDate" binding:"omitempty,len=10"`
	EndDate    *string               `json:"endDate" binding:"omitempty,len=10"`

	// TEMP attachment ids to confirm against this project
	AttachmentIDs []uuid.UUID `json:"attachmentIds"`
}

// ProjectResponse represents a project with its associations
type ProjectResponse struct {
	ID         uuid.UUID               `json:"projectId"`
	Name       string                  `json:"name"`
	Department string                  `json:"department"`
	Status     domain.ProjectStatus    `json:"status"`
	Category   string                  `json:"category"`
	StartDate  string                  `json:"startDate"`
	EndDate    string                  `json:"endDate"`
	Groups     []GroupResponse         `json:"groups"`
	Tasks      []TaskResponse          `json:"tasks"`
	Meetings   []MeetingResponse       `json:"meetings"`
	Members    []ProjectMemberResponse `json:"members"`
	CreatedAt  time.Time               `json:"createdAt"`
	UpdatedAt  time.Time               `json:"updatedAt"`
}

// ProjectMemberResponse represents a project member with user info
type ProjectMemberResponse struct {
	MemberID    uuid.UUID          `json:"memberId"`
	ProjectID   uuid.UUID          `json:"projectId"`
	UserID      uuid.UUID          `json:"userId"`
	Username    string             `json:"id,omitempty"`
	Name        string             `json:"name,omitempty"`
	Role        domain.UserRole    `json:"role,omitempty"`
	ProjectRole domain.ProjectRole `json:"projectRole"`
	JoinedAt    time.Time          `json:"joinedAt"`
}

// AddProjectMemberRequest represents the request to add a project member
type AddProjectMemberRequest struct {
	UserID      uuid.UUID          `json:"userId" binding:"required"`
	ProjectRole domain.ProjectRole `json:"projectRole" binding:"omitempty,oneof=manager sub-manager member"`
}

// UpdateProjectMemberRoleRequest represents a member role change
type UpdateProjectMemberRoleRequest struct {
	ProjectRole domain.ProjectRole `json:"projectRole" binding:"required,oneof=manager sub-manager member"`
}

// CreateGroupRequest represents the request to add a task group
type CreateGroupRequest struct {
	Name         string `json:"name" binding:"required,min=1,max=100" example:"검토 중"`
	DisplayOrder int    `json:"displayOrder" binding:"omitempty,min=0" example:"2"`
}

// GroupResponse represents a task group
type GroupResponse struct {
	ID           uuid.UUID `json:"groupId"`
	ProjectID    uuid.UUID `json:"projectId"`
	Name         string    `json:"name"`
	DisplayOrder int       `json:"displayOrder"`
	Color        string    `json:"color"`
}

// GroupSummaryResponse represents one swimlane's partition: its tasks plus
// per-group aggregates
type GroupSummaryResponse struct {
	Group     string         `json:"group"`
	Count     int            `json:"count"`
	BudgetSum float64        `json:"budgetSum"`
	Tasks     []TaskResponse `json:"tasks"`
}

// NewProjectResponse maps a domain project to its response shape
func NewProjectResponse(project *domain.Project) *ProjectResponse {
	resp := &ProjectResponse{
		ID:         project.ID,
		Name:       project.Name,
		Department: project.Department,
		Status:     project.Status,
		Category:   project.Category,
		StartDate:  project.StartDate,
		EndDate:    project.EndDate,
		Groups:     make([]GroupResponse, 0, len(project.Groups)),
		Tasks:      make([]TaskResponse, 0, len(project.Tasks)),
		Meetings:   make([]MeetingResponse, 0, len(project.Meetings)),
		Members:    make([]ProjectMemberResponse, 0, len(project.Members)),
		CreatedAt:  project.CreatedAt,
		UpdatedAt:  project.UpdatedAt,
	}
	for i := range project.Groups {
		resp.Groups = append(resp.Groups, NewGroupResponse(&project.Groups[i]))
	}
	for i := range project.Tasks {
		resp.Tasks = append(resp.Tasks, NewTaskResponse(&project.Tasks[i]))
	}
	for i := range project.Meetings {
		resp.Meetings = append(resp.Meetings, NewMeetingResponse(&project.Meetings[i]))
	}
	for i := range project.Members {
		resp.Members = append(resp.Members, NewProjectMemberResponse(&project.Members[i]))
	}
	return resp
}

// NewGroupResponse maps a domain task group to its response shape
func NewGroupResponse(group *domain.TaskGroup) GroupResponse {
	return GroupResponse{
		ID:           group.ID,
		ProjectID:    group.ProjectID,
		Name:         group.Name,
		DisplayOrder: group.DisplayOrder,
		Color:        group.Color,
	}
}

// NewProjectMemberResponse maps a membership (with preloaded user) to its
// response shape
func NewProjectMemberResponse(member *domain.ProjectMember) ProjectMemberResponse {
	return ProjectMemberResponse{
		MemberID:    member.ID,
		ProjectID:   member.ProjectID,
		UserID:      member.UserID,
		Username:    member.User.Username,
		Name:        member.User.Name,
		Role:        member.User.Role,
		ProjectRole: member.Role,
		JoinedAt:    member.JoinedAt,
	}
}
