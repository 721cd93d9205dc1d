package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/brunovmartini/projects-core-service/internal/dto"
	"github.com/brunovmartini/projects-core-service/internal/models"
	"github.com/brunovmartini/projects-core-service/internal/repository"
	"github.com/brunovmartini/projects-core-service/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type taskTestEnv struct {
	db             *gorm.DB
	handler        *TaskHandler
	projectService *services.ProjectService
	taskService    *services.TaskService
}

func setupTaskTestEnv(t *testing.T) taskTestEnv {
	t.Helper()

	db := openTestDB(t)

	projectService := services.NewProjectService(repository.NewProjectRepository(db))
	taskService := services.NewTaskService(repository.NewTaskRepository(db))
	handler := NewTaskHandler(taskService, projectService)

	return taskTestEnv{
		db:             db,
		handler:        handler,
		projectService: projectService,
		taskService:    taskService,
	}
}

func createTestProject(t *testing.T, env taskTestEnv, actorID uint64) *models.Project {
	t.Helper()

	project, err := env.projectService.CreateProject(services.CreateProjectInput{
		Name:    "Host Project",
		ActorID: actorID,
	})
	require.NoError(t, err)
	return project
}

func TestTaskHandler_CreateTask(t *testing.T) {
	env := setupTaskTestEnv(t)

	actor := createTestUser(t, env.db, "boss@example.com", "boss", managerTypeID(t, env.db))
	project := createTestProject(t, env, actor.ID)

	payload := map[string]any{
		"name":        "Create user endpoint",
		"description": "Endpoint for creating a user.",
		"due_date":    "2026-10-29T14:22:11Z",
	}
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	c, w := testContext(http.MethodPost, fmt.Sprintf("/projects/%d/tasks", project.ID), body, actor.ID)
	c.Params = gin.Params{{Key: "id", Value: fmt.Sprintf("%d", project.ID)}}

	env.handler.CreateTask(c)

	require.Equal(t, http.StatusOK, w.Code)

	var response dto.TaskDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.NotZero(t, response.ID)
	require.Equal(t, "Create user endpoint", response.Name)
	require.Equal(t, project.ID, response.ProjectID)
	require.Equal(t, actor.ID, response.CreatedBy)
	require.NotNil(t, response.DueDate)
}

func TestTaskHandler_CreateTask_ProjectNotFound(t *testing.T) {
	env := setupTaskTestEnv(t)

	actor := createTestUser(t, env.db, "boss@example.com", "boss", managerTypeID(t, env.db))

	body, err := json.Marshal(map[string]any{"name": "Orphan task"})
	require.NoError(t, err)

	c, w := testContext(http.MethodPost, "/projects/31/tasks", body, actor.ID)
	c.Params = gin.Params{{Key: "id", Value: "31"}}

	env.handler.CreateTask(c)

	require.Equal(t, http.StatusNotFound, w.Code)
	require.Contains(t, w.Body.String(), "Not found project with id=31.")

	// The project check happens before any task is persisted.
	var count int64
	require.NoError(t, env.db.Model(&models.Task{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestTaskHandler_CreateTask_InvalidBody(t *testing.T) {
	env := setupTaskTestEnv(t)

	actor := createTestUser(t, env.db, "boss@example.com", "boss", managerTypeID(t, env.db))
	project := createTestProject(t, env, actor.ID)

	body, err := json.Marshal(map[string]any{"description": "missing the name"})
	require.NoError(t, err)

	c, w := testContext(http.MethodPost, fmt.Sprintf("/projects/%d/tasks", project.ID), body, actor.ID)
	c.Params = gin.Params{{Key: "id", Value: fmt.Sprintf("%d", project.ID)}}

	env.handler.CreateTask(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "Invalid request body.")
}

func TestTaskHandler_GetTasksByProject(t *testing.T) {
	env := setupTaskTestEnv(t)

	actor := createTestUser(t, env.db, "boss@example.com", "boss", managerTypeID(t, env.db))
	project := createTestProject(t, env, actor.ID)

	_, err := env.taskService.CreateTask(project.ID, services.CreateTaskInput{
		Name:    "First",
		ActorID: actor.ID,
	})
	require.NoError(t, err)
	_, err = env.taskService.CreateTask(project.ID, services.CreateTaskInput{
		Name:    "Second",
		ActorID: actor.ID,
	})
	require.NoError(t, err)

	c, w := testContext(http.MethodGet, fmt.Sprintf("/projects/%d/tasks", project.ID), nil, 0)
	c.Params = gin.Params{{Key: "id", Value: fmt.Sprintf("%d", project.ID)}}

	env.handler.GetTasksByProject(c)

	require.Equal(t, http.StatusOK, w.Code)

	var response []dto.TaskDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response, 2)
	for _, task := range response {
		require.Equal(t, project.ID, task.ProjectID)
		require.NotNil(t, task.Project)
		require.Equal(t, project.ID, task.Project.ID)
	}
}

func TestTaskHandler_GetTasksByProject_Empty(t *testing.T) {
	env := setupTaskTestEnv(t)

	actor := createTestUser(t, env.db, "boss@example.com", "boss", managerTypeID(t, env.db))
	project := createTestProject(t, env, actor.ID)

	c, w := testContext(http.MethodGet, fmt.Sprintf("/projects/%d/tasks", project.ID), nil, 0)
	c.Params = gin.Params{{Key: "id", Value: fmt.Sprintf("%d", project.ID)}}

	env.handler.GetTasksByProject(c)

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, "[]", w.Body.String())
}

func TestTaskHandler_GetTasksByProject_ProjectNotFound(t *testing.T) {
	env := setupTaskTestEnv(t)

	c, w := testContext(http.MethodGet, "/projects/12/tasks", nil, 0)
	c.Params = gin.Params{{Key: "id", Value: "12"}}

	env.handler.GetTasksByProject(c)

	require.Equal(t, http.StatusNotFound, w.Code)
	require.Contains(t, w.Body.String(), "Not found project with id=12.")
}
