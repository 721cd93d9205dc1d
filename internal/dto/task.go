package dto

import (
	"time"

	"github.com/brunovmartini/projects-core-service/internal/models"
)

// TaskDTO represents a task in API responses
type TaskDTO struct {
	ID          uint64      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	StartDate   *time.Time  `json:"start_date"`
	DueDate     *time.Time  `json:"due_date"`
	ProjectID   uint64      `json:"project_id"`
	CreatedBy   uint64      `json:"created_by"`
	CreatedAt   time.Time   `json:"created_at"`
	Project     *ProjectDTO `json:"project,omitempty"`
}

// ToTaskDTO converts a Task model to TaskDTO
func ToTaskDTO(task models.Task) TaskDTO {
	dto := TaskDTO{
		ID:          task.ID,
		Name:        task.Name,
		Description: task.Description,
		StartDate:   task.StartDate,
		DueDate:     task.DueDate,
		ProjectID:   task.ProjectID,
		CreatedBy:   task.CreatedBy,
		CreatedAt:   task.CreatedAt,
	}

	// Include project if preloaded
	if task.Project.ID != 0 {
		project := ToProjectDTO(task.Project)
		dto.Project = &project
	}

	return dto
}

// ToTaskDTOs converts a slice of tasks to DTOs
func ToTaskDTOs(tasks []models.Task) []TaskDTO {
	dtos := make([]TaskDTO, len(tasks))
	for i, task := range tasks {
		dtos[i] = ToTaskDTO(task)
	}
	return dtos
}
