package handlers

import (
	"net/http"
	"time"

	"github.com/brunovmartini/projects-core-service/internal/dto"
	apierrors "github.com/brunovmartini/projects-core-service/internal/errors"
	"github.com/brunovmartini/projects-core-service/internal/middleware"
	"github.com/brunovmartini/projects-core-service/internal/services"
	"github.com/gin-gonic/gin"
)

// TaskHandler coordinates task HTTP handlers mounted under a project.
type TaskHandler struct {
	taskService    *services.TaskService
	projectService *services.ProjectService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService *services.TaskService, projectService *services.ProjectService) *TaskHandler {
	return &TaskHandler{
		taskService:    taskService,
		projectService: projectService,
	}
}

// CreateTask creates a new task under a project. Managers only; the project
// must exist before the task is created.
func (h *TaskHandler) CreateTask(c *gin.Context) {
	projectID, ok := parseIDParam(c, "Invalid project ID.")
	if !ok {
		return
	}

	type CreateTaskRequest struct {
		Name        string     `json:"name" binding:"required"`
		Description string     `json:"description"`
		StartDate   *time.Time `json:"start_date"`
		DueDate     *time.Time `json:"due_date"`
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "")
		return
	}

	if _, err := h.projectService.GetProjectByID(projectID); err != nil {
		respondProjectError(c, err, projectID)
		return
	}

	actorID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	task, err := h.taskService.CreateTask(projectID, services.CreateTaskInput{
		Name:        req.Name,
		Description: req.Description,
		StartDate:   req.StartDate,
		DueDate:     req.DueDate,
		ActorID:     actorID,
	})
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// GetTasksByProject returns all tasks of a project. An existing project with
// no tasks yields an empty list.
func (h *TaskHandler) GetTasksByProject(c *gin.Context) {
	projectID, ok := parseIDParam(c, "Invalid project ID.")
	if !ok {
		return
	}

	if _, err := h.projectService.GetProjectByID(projectID); err != nil {
		respondProjectError(c, err, projectID)
		return
	}

	tasks, err := h.taskService.GetTasksByProject(projectID)
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTOs(tasks))
}
