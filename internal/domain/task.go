package domain

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// TaskStatus represents the work state of a task
type TaskStatus string

const (
	TaskStatusWorkingOnIt TaskStatus = "Working on it"
	TaskStatusDone        TaskStatus = "Done"
	TaskStatusStuck       TaskStatus = "Stuck"
	TaskStatusEmpty       TaskStatus = "Empty"
)

// TaskPriority represents the priority of a task
type TaskPriority string

const (
	TaskPriorityHigh   TaskPriority = "High"
	TaskPriorityMedium TaskPriority = "Medium"
	TaskPriorityLow    TaskPriority = "Low"
	TaskPriorityEmpty  TaskPriority = "Empty"
)

// MaxTaskLevel is the deepest nesting level of the task hierarchy
const MaxTaskLevel = 3

// DefaultTaskName is assigned to tasks created without a name
const DefaultTaskName = "새로운 업무"

// Task represents one work item on the hierarchical board, at level 1-3.
// ParentID carries no foreign key constraint: deleting a parent leaves
// children with a dangling reference, and the board renderer treats such
// nodes as unreachable rather than an error.
type Task struct {
	BaseModel
	ProjectID       uuid.UUID      `gorm:"type:uuid;not null;index:idx_tasks_project_id" json:"projectId"`
	Level           int            `gorm:"type:int;not null;default:1" json:"level"`
	ParentID        *uuid.UUID     `gorm:"type:uuid;index:idx_tasks_parent_id" json:"parentId"`
	Name            string         `gorm:"type:varchar(255);not null" json:"name"`
	Assignee        string         `gorm:"type:varchar(100);index:idx_tasks_assignee" json:"assignee"`
	RoleDescription string         `gorm:"type:text" json:"roleDescription"`
	Scope           string         `gorm:"type:text" json:"scope"`
	StartDate       string         `gorm:"type:varchar(10)" json:"startDate"`
	EndDate         string         `gorm:"type:varchar(10)" json:"endDate"`
	GroupName       string         `gorm:"type:varchar(100);index:idx_tasks_group_name" json:"group"`
	Status          TaskStatus     `gorm:"type:varchar(50);not null;default:'Empty'" json:"status"`
	Priority        TaskPriority   `gorm:"type:varchar(20);not null;default:'Empty'" json:"priority"`
	Budget          float64        `gorm:"type:numeric;not null;default:0" json:"budget"`
	Memo            string         `gorm:"type:text" json:"memo"`
	Files           datatypes.JSON `gorm:"type:jsonb" json:"files"`
	Collapsed       bool           `gorm:"not null;default:false" json:"collapsed"`
	Project         Project        `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"project,omitempty"`
}

// TableName specifies the table name for Task
func (Task) TableName() string {
	return "tasks"
}
