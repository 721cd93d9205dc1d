package repository

import (
	"github.com/brunovmartini/projects-core-service/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create persists a new user
	Create(user *models.User) error

	// FindAll returns all users with their user type loaded
	FindAll() ([]models.User, error)

	// FindByID finds a user by ID with their user type loaded
	FindByID(id uint64) (*models.User, error)

	// FindByEmail finds a user by email with their user type loaded
	FindByEmail(email string) (*models.User, error)

	// Update commits pending in-memory mutations on the user
	Update(user *models.User) error

	// Delete removes the user row
	Delete(user *models.User) error
}

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	// Create persists a new project
	Create(project *models.Project) error

	// FindAll returns all projects
	FindAll() ([]models.Project, error)

	// FindByID finds a project by ID
	FindByID(id uint64) (*models.Project, error)

	// Update commits pending in-memory mutations on the project
	Update(project *models.Project) error

	// Delete removes the project row
	Delete(project *models.Project) error
}

// TaskRepository defines the interface for task data access. Tasks expose no
// lookup, update or delete by id.
type TaskRepository interface {
	// Create persists a new task
	Create(task *models.Task) error

	// FindAllByProject returns all tasks of a project with the project loaded
	FindAllByProject(projectID uint64) ([]models.Task, error)
}
