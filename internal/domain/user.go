package domain

// UserRole represents a user's global role
type UserRole string

const (
	UserRoleAdmin UserRole = "admin"
	UserRoleUser  UserRole = "user"
)

// UserStatus represents the approval state of an account
type UserStatus string

const (
	UserStatusPending  UserStatus = "PENDING"
	UserStatusApproved UserStatus = "APPROVED"
	UserStatusRejected UserStatus = "REJECTED"
)

// User represents an account. New accounts start PENDING and must be
// approved by an admin before login succeeds.
type User struct {
	BaseModel
	Username   string     `gorm:"type:varchar(100);not null;uniqueIndex:uq_users_username" json:"username"`
	Password   string     `gorm:"type:varchar(255);not null" json:"-"`
	Name       string     `gorm:"type:varchar(100);not null;index:idx_users_name" json:"name"`
	Email      string     `gorm:"type:varchar(255)" json:"email"`
	BirthDate  string     `gorm:"type:varchar(10)" json:"birthDate"`
	Department string     `gorm:"type:varchar(100)" json:"department"`
	Role       UserRole   `gorm:"type:varchar(20);not null;default:'user'" json:"role"`
	Status     UserStatus `gorm:"type:varchar(20);not null;default:'PENDING';index:idx_users_status" json:"status"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
