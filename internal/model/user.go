package model

// Role represents the dashboard access level of a user.
type Role string

const (
	RoleSuperAdmin Role = "superadmin"
	RoleAdmin      Role = "admin"
	RoleDataEntry  Role = "data-entry"
)

// User represents an authenticated dashboard user.
type User struct {
	Base
	Name         string `json:"name" gorm:"size:255;not null"`
	Email        string `json:"email" gorm:"uniqueIndex:uniq_email;size:255;not null"`
	PasswordHash string `json:"-" gorm:"column:password;size:255;not null"` // Never expose in JSON
	Role         Role   `json:"role" gorm:"type:varchar(20);not null;default:'data-entry';index"`
	Status       Status `json:"status" gorm:"type:varchar(20);not null;default:'active'"`
}
