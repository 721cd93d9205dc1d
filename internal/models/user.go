package models

import (
	"time"
)

type User struct {
	ID           uint64    `gorm:"primarykey" json:"id"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	Username     string    `gorm:"type:varchar(255);not null" json:"username"`
	Name         string    `gorm:"type:varchar(255)" json:"name"`
	UserTypeID   uint64    `gorm:"not null" json:"user_type_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	Type            UserType  `gorm:"foreignKey:UserTypeID" json:"type,omitempty"`
	CreatedProjects []Project `gorm:"foreignKey:CreatedBy" json:"-"`
	CreatedTasks    []Task    `gorm:"foreignKey:CreatedBy" json:"-"`
}

// IsManager reports whether the user's loaded type carries the manager role.
func (u *User) IsManager() bool {
	return u.Type.Name == RoleManager
}
