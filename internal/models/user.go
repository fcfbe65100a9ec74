package models

import (
	"time"

	"gorm.io/datatypes"
)

type UserRole string
type Role = UserRole // Alias for compatibility

const (
	RoleStudent UserRole = "student"
	RoleUser    UserRole = "user"
	RoleMentor  UserRole = "mentor"
	RoleAdmin   UserRole = "admin"
)

// Valid reports whether the role belongs to the closed role set.
func (r UserRole) Valid() bool {
	switch r {
	case RoleStudent, RoleUser, RoleMentor, RoleAdmin:
		return true
	}
	return false
}

// Matches reports whether r satisfies the required role. "user" and
// "student" are interchangeable for non-admin checks.
func (r UserRole) Matches(required UserRole) bool {
	if r == required {
		return true
	}
	if (r == RoleUser && required == RoleStudent) || (r == RoleStudent && required == RoleUser) {
		return true
	}
	return false
}

type User struct {
	ID       string   `json:"id" gorm:"primaryKey;size:255"`
	FullName string   `json:"full_name" gorm:"not null;size:100"`
	Email    string   `json:"email" gorm:"uniqueIndex;not null;size:255"`
	Role     UserRole `json:"role" gorm:"not null;size:20;default:student"`

	// Profile info
	AvatarURL *string        `json:"avatar_url" gorm:"size:500"`
	Skills    datatypes.JSON `json:"skills" gorm:"type:jsonb"`

	// Counters
	Credits         int `json:"credits" gorm:"not null;default:0"`
	InternshipHours int `json:"internship_hours" gorm:"not null;default:0"`
	Certificates    int `json:"certificates" gorm:"not null;default:0"`

	// Status
	IsActive bool `json:"is_active" gorm:"not null;default:true"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// UserUpdate carries the mutable profile fields for a partial update.
// Nil fields are left untouched.
type UserUpdate struct {
	FullName        *string   `json:"full_name"`
	AvatarURL       *string   `json:"avatar_url"`
	Role            *UserRole `json:"role"`
	Skills          []string  `json:"skills"`
	Credits         *int      `json:"credits"`
	InternshipHours *int      `json:"internship_hours"`
	Certificates    *int      `json:"certificates"`
}
