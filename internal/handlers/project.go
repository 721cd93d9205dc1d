package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/brunovmartini/projects-core-service/internal/dto"
	apierrors "github.com/brunovmartini/projects-core-service/internal/errors"
	"github.com/brunovmartini/projects-core-service/internal/middleware"
	"github.com/brunovmartini/projects-core-service/internal/services"
	"github.com/gin-gonic/gin"
)

// ProjectHandler coordinates project management HTTP handlers.
type ProjectHandler struct {
	projectService *services.ProjectService
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(projectService *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

// CreateProject creates a new project. Managers only; the acting user is
// recorded as the creator.
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	type CreateProjectRequest struct {
		Name      string     `json:"name" binding:"required"`
		Subject   string     `json:"subject"`
		StartDate *time.Time `json:"start_date"`
		DueDate   *time.Time `json:"due_date"`
	}

	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "")
		return
	}

	actorID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	project, err := h.projectService.CreateProject(services.CreateProjectInput{
		Name:      req.Name,
		Subject:   req.Subject,
		StartDate: req.StartDate,
		DueDate:   req.DueDate,
		ActorID:   actorID,
	})
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectDTO(*project))
}

// GetProjects returns all projects.
func (h *ProjectHandler) GetProjects(c *gin.Context) {
	projects, err := h.projectService.GetProjects()
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectDTOs(projects))
}

// GetProject returns a single project by id.
func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, ok := parseIDParam(c, "Invalid project ID.")
	if !ok {
		return
	}

	project, err := h.projectService.GetProjectByID(id)
	if err != nil {
		respondProjectError(c, err, id)
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectDTO(*project))
}

// UpdateProject applies a partial update to a project. Managers only; the
// acting user is recorded as the updater.
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	id, ok := parseIDParam(c, "Invalid project ID.")
	if !ok {
		return
	}

	type UpdateProjectRequest struct {
		Name      *string    `json:"name"`
		Subject   *string    `json:"subject"`
		StartDate *time.Time `json:"start_date"`
		DueDate   *time.Time `json:"due_date"`
	}

	var req UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "")
		return
	}

	actorID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	project, err := h.projectService.UpdateProject(id, services.UpdateProjectInput{
		Name:      req.Name,
		Subject:   req.Subject,
		StartDate: req.StartDate,
		DueDate:   req.DueDate,
	}, actorID)
	if err != nil {
		respondProjectError(c, err, id)
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectDTO(*project))
}

// DeleteProject removes a project. Managers only.
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	id, ok := parseIDParam(c, "Invalid project ID.")
	if !ok {
		return
	}

	if err := h.projectService.DeleteProject(id); err != nil {
		respondProjectError(c, err, id)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Project with id=%d deleted.", id),
	})
}

func respondProjectError(c *gin.Context, err error, id uint64) {
	switch {
	case errors.Is(err, services.ErrProjectNotFound):
		apierrors.NotFound(c, fmt.Sprintf("Not found project with id=%d.", id))
	default:
		apierrors.InternalError(c, "")
	}
}
