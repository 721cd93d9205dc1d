package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/brunovmartini/projects-core-service/internal/models"
	"github.com/brunovmartini/projects-core-service/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrProjectNotFound = errors.New("project not found")
)

// ProjectService handles project business logic.
type ProjectService struct {
	projectRepo repository.ProjectRepository
}

// NewProjectService creates a new ProjectService.
func NewProjectService(projectRepo repository.ProjectRepository) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
	}
}

// CreateProjectInput represents input for creating a project. ActorID is the
// authenticated user recorded as the creator.
type CreateProjectInput struct {
	Name      string
	Subject   string
	StartDate *time.Time
	DueDate   *time.Time
	ActorID   uint64
}

// UpdateProjectInput represents a partial project update. Only the declared
// fields are updatable; nil fields are left untouched.
type UpdateProjectInput struct {
	Name      *string
	Subject   *string
	StartDate *time.Time
	DueDate   *time.Time
}

// GetProjectByID retrieves a project or reports that the id does not exist.
func (s *ProjectService) GetProjectByID(id uint64) (*models.Project, error) {
	project, err := s.projectRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}
	return project, nil
}

// CreateProject persists a new project recording the actor as its creator.
func (s *ProjectService) CreateProject(input CreateProjectInput) (*models.Project, error) {
	project := &models.Project{
		Name:      input.Name,
		Subject:   input.Subject,
		StartDate: input.StartDate,
		DueDate:   input.DueDate,
		CreatedBy: input.ActorID,
	}

	if err := s.projectRepo.Create(project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return project, nil
}

// GetProjects returns all projects.
func (s *ProjectService) GetProjects() ([]models.Project, error) {
	projects, err := s.projectRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// UpdateProject applies a partial update recording the actor as the updater.
func (s *ProjectService) UpdateProject(id uint64, input UpdateProjectInput, actorID uint64) (*models.Project, error) {
	project, err := s.GetProjectByID(id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		project.Name = *input.Name
	}
	if input.Subject != nil {
		project.Subject = *input.Subject
	}
	if input.StartDate != nil {
		project.StartDate = input.StartDate
	}
	if input.DueDate != nil {
		project.DueDate = input.DueDate
	}
	project.UpdatedBy = &actorID

	if err := s.projectRepo.Update(project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	return project, nil
}

// DeleteProject removes a project.
func (s *ProjectService) DeleteProject(id uint64) error {
	project, err := s.GetProjectByID(id)
	if err != nil {
		return err
	}

	if err := s.projectRepo.Delete(project); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	return nil
}
