package models

import (
	"time"
)

type Project struct {
	ID        uint64     `gorm:"primarykey" json:"id"`
	Name      string     `gorm:"type:varchar(255);not null" json:"name"`
	Subject   string     `gorm:"type:varchar(255)" json:"subject"`
	StartDate *time.Time `json:"start_date"`
	DueDate   *time.Time `json:"due_date"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	CreatedBy uint64     `gorm:"index;not null" json:"created_by"`
	UpdatedBy *uint64    `json:"updated_by"`

	// Relations
	Creator User   `gorm:"foreignKey:CreatedBy" json:"-"`
	Tasks   []Task `gorm:"foreignKey:ProjectID" json:"tasks,omitempty"`
}
