package domain

import (
	"time"

	"github.com/google/uuid"
)

// ProjectStatus represents a project's lifecycle status
type ProjectStatus string

const (
	ProjectStatusPlanning   ProjectStatus = "Planning"
	ProjectStatusInProgress ProjectStatus = "In Progress"
	ProjectStatusDone       ProjectStatus = "Done"
)

// Project represents a project owning tasks, groups, meetings and members
type Project struct {
	BaseModel
	Name       string        `gorm:"type:varchar(255);not null" json:"name"`
	Department string        `gorm:"type:varchar(100);index:idx_projects_department" json:"department"`
	Status     ProjectStatus `gorm:"type:varchar(50);not null;default:'Planning'" json:"status"`
	Category   string        `gorm:"type:varchar(100)" json:"category"`
	StartDate  string        `gorm:"type:varchar(10)" json:"startDate"`
	EndDate    string        `gorm:"type:varchar(10)" json:"endDate"`
	Groups     []TaskGroup   `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"groups,omitempty"`
	Tasks      []Task        `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"tasks,omitempty"`
	Meetings   []Meeting     `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"meetings,omitempty"`
	Members    []ProjectMember `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"members,omitempty"`
}

// ProjectRole represents a member's authority within one project,
// independent of the user's global role
type ProjectRole string

const (
	ProjectRoleManager    ProjectRole = "manager"
	ProjectRoleSubManager ProjectRole = "sub-manager"
	ProjectRoleMember     ProjectRole = "member"
)

// MaxSubManagers caps the number of sub-managers per project
const MaxSubManagers = 2

// ProjectMember represents a (user, project, project-role) association
type ProjectMember struct {
	ID        uuid.UUID   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ProjectID uuid.UUID   `gorm:"type:uuid;not null;index:idx_project_members_project_id;uniqueIndex:uq_project_members_project_user" json:"projectId"`
	UserID    uuid.UUID   `gorm:"type:uuid;not null;index:idx_project_members_user_id;uniqueIndex:uq_project_members_project_user" json:"userId"`
	Role      ProjectRole `gorm:"type:varchar(50);not null;default:'member';index:idx_project_members_role" json:"role"`
	JoinedAt  time.Time   `gorm:"type:timestamp;not null;default:now()" json:"joinedAt"`
	Project   Project     `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"project,omitempty"`
	User      User        `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
}

// TableName specifies the table name for Project
func (Project) TableName() string {
	return "projects"
}

// TableName specifies the table name for ProjectMember
func (ProjectMember) TableName() string {
	return "project_members"
}
