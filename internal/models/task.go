package models

import (
	"time"
)

// Task belongs to exactly one project. Tasks are write-once: there is no
// update or delete surface for them.
type Task struct {
	ID          uint64     `gorm:"primarykey" json:"id"`
	Name        string     `gorm:"type:varchar(255);not null" json:"name"`
	Description string     `gorm:"type:varchar(255)" json:"description"`
	StartDate   *time.Time `json:"start_date"`
	DueDate     *time.Time `json:"due_date"`
	ProjectID   uint64     `gorm:"index;not null" json:"project_id"`
	CreatedAt   time.Time  `json:"created_at"`
	CreatedBy   uint64     `gorm:"index;not null" json:"created_by"`

	// Relations
	Project Project `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	Creator User    `gorm:"foreignKey:CreatedBy" json:"-"`
}
