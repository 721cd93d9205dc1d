package dto

import (
	"time"

	"github.com/brunovmartini/projects-core-service/internal/models"
)

// ProjectDTO represents a project in API responses
type ProjectDTO struct {
	ID        uint64     `json:"id"`
	Name      string     `json:"name"`
	Subject   string     `json:"subject"`
	StartDate *time.Time `json:"start_date"`
	DueDate   *time.Time `json:"due_date"`
	CreatedBy uint64     `json:"created_by"`
	UpdatedBy *uint64    `json:"updated_by"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// ToProjectDTO converts a Project model to ProjectDTO
func ToProjectDTO(project models.Project) ProjectDTO {
	return ProjectDTO{
		ID:        project.ID,
		Name:      project.Name,
		Subject:   project.Subject,
		StartDate: project.StartDate,
		DueDate:   project.DueDate,
		CreatedBy: project.CreatedBy,
		UpdatedBy: project.UpdatedBy,
		CreatedAt: project.CreatedAt,
		UpdatedAt: project.UpdatedAt,
	}
}

// ToProjectDTOs converts a slice of projects to DTOs
func ToProjectDTOs(projects []models.Project) []ProjectDTO {
	dtos := make([]ProjectDTO, len(projects))
	for i, project := range projects {
		dtos[i] = ToProjectDTO(project)
	}
	return dtos
}
