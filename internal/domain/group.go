package domain

import "github.com/google/uuid"

// Default group names seeded at project creation
const (
	DefaultGroupTodo = "할 일"
	DefaultGroupDone = "완료됨"
)

// TaskGroup represents a named swimlane partitioning tasks within a project.
// Tasks reference a group by name, not by foreign key, so a task whose group
// string matches no declared group simply never surfaces on the board.
type TaskGroup struct {
	BaseModel
	ProjectID    uuid.UUID `gorm:"type:uuid;not null;index:idx_task_groups_project_id;uniqueIndex:uq_task_groups_project_name" json:"projectId"`
	Name         string    `gorm:"type:varchar(100);not null;uniqueIndex:uq_task_groups_project_name" json:"name"`
	DisplayOrder int       `gorm:"type:int;not null;default:0;index:idx_task_groups_display_order" json:"displayOrder"`
	Color        string    `gorm:"type:varchar(20)" json:"color"`
	Project      Project   `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"project,omitempty"`
}

// TableName specifies the table name for TaskGroup
func (TaskGroup) TableName() string {
	return "task_groups"
}
