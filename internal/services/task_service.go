package services

import (
	"fmt"
	"time"

	"github.com/brunovmartini/projects-core-service/internal/models"
	"github.com/brunovmartini/projects-core-service/internal/repository"
)

// TaskService handles task business logic. The route layer is responsible for
// verifying that the target project exists before calling into it.
type TaskService struct {
	taskRepo repository.TaskRepository
}

// NewTaskService creates a new TaskService.
func NewTaskService(taskRepo repository.TaskRepository) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
	}
}

// CreateTaskInput represents input for creating a task under a project.
// ActorID is the authenticated user recorded as the creator.
type CreateTaskInput struct {
	Name        string
	Description string
	StartDate   *time.Time
	DueDate     *time.Time
	ActorID     uint64
}

// CreateTask persists a new task under the given project.
func (s *TaskService) CreateTask(projectID uint64, input CreateTaskInput) (*models.Task, error) {
	task := &models.Task{
		Name:        input.Name,
		Description: input.Description,
		StartDate:   input.StartDate,
		DueDate:     input.DueDate,
		ProjectID:   projectID,
		CreatedBy:   input.ActorID,
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

// GetTasksByProject returns all tasks of a project. A project without tasks
// yields an empty slice, not an error.
func (s *TaskService) GetTasksByProject(projectID uint64) ([]models.Task, error) {
	tasks, err := s.taskRepo.FindAllByProject(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}
