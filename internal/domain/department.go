package domain

// Department represents an organizational unit users belong to
type Department struct {
	BaseModel
	Name  string `gorm:"type:varchar(100);not null;uniqueIndex:uq_departments_name" json:"name"`
	Color string `gorm:"type:varchar(20)" json:"color"`
}

// TableName specifies the table name for Department
func (Department) TableName() string {
	return "departments"
}
