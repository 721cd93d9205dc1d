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

type projectTestEnv struct {
	db             *gorm.DB
	handler        *ProjectHandler
	projectService *services.ProjectService
}

func setupProjectTestEnv(t *testing.T) projectTestEnv {
	t.Helper()

	db := openTestDB(t)

	projectService := services.NewProjectService(repository.NewProjectRepository(db))
	handler := NewProjectHandler(projectService)

	return projectTestEnv{
		db:             db,
		handler:        handler,
		projectService: projectService,
	}
}

func TestProjectHandler_CreateProject(t *testing.T) {
	env := setupProjectTestEnv(t)

	actor := createTestUser(t, env.db, "boss@example.com", "boss", managerTypeID(t, env.db))

	payload := map[string]any{
		"name":       "Tech Project",
		"subject":    "Web application for hospital management",
		"start_date": "2025-10-29T14:22:11Z",
		"due_date":   "2026-10-29T14:22:11Z",
	}
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	c, w := testContext(http.MethodPost, "/projects", body, actor.ID)

	env.handler.CreateProject(c)

	require.Equal(t, http.StatusOK, w.Code)

	var response dto.ProjectDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.NotZero(t, response.ID)
	require.Equal(t, "Tech Project", response.Name)
	require.Equal(t, actor.ID, response.CreatedBy)
	require.Nil(t, response.UpdatedBy)
	require.NotNil(t, response.StartDate)
	require.NotNil(t, response.DueDate)
	require.NotZero(t, response.CreatedAt)
}

func TestProjectHandler_CreateProject_InvalidBody(t *testing.T) {
	env := setupProjectTestEnv(t)

	actor := createTestUser(t, env.db, "boss@example.com", "boss", managerTypeID(t, env.db))

	body, err := json.Marshal(map[string]any{"subject": "missing the name"})
	require.NoError(t, err)

	c, w := testContext(http.MethodPost, "/projects", body, actor.ID)

	env.handler.CreateProject(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "Invalid request body.")
}

func TestProjectHandler_GetProject_RoundTrip(t *testing.T) {
	env := setupProjectTestEnv(t)

	actor := createTestUser(t, env.db, "boss@example.com", "boss", managerTypeID(t, env.db))

	project, err := env.projectService.CreateProject(services.CreateProjectInput{
		Name:    "Round Trip",
		Subject: "Subject",
		ActorID: actor.ID,
	})
	require.NoError(t, err)

	c, w := testContext(http.MethodGet, fmt.Sprintf("/projects/%d", project.ID), nil, 0)
	c.Params = gin.Params{{Key: "id", Value: fmt.Sprintf("%d", project.ID)}}

	env.handler.GetProject(c)

	require.Equal(t, http.StatusOK, w.Code)

	var response dto.ProjectDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, project.ID, response.ID)
	require.Equal(t, "Round Trip", response.Name)
	require.Equal(t, "Subject", response.Subject)
	require.Equal(t, actor.ID, response.CreatedBy)
}

func TestProjectHandler_GetProject_NotFound(t *testing.T) {
	env := setupProjectTestEnv(t)

	c, w := testContext(http.MethodGet, "/projects/77", nil, 0)
	c.Params = gin.Params{{Key: "id", Value: "77"}}

	env.handler.GetProject(c)

	require.Equal(t, http.StatusNotFound, w.Code)
	require.Contains(t, w.Body.String(), "Not found project with id=77.")
}

func TestProjectHandler_UpdateProject(t *testing.T) {
	env := setupProjectTestEnv(t)

	creator := createTestUser(t, env.db, "boss@example.com", "boss", managerTypeID(t, env.db))
	updater := createTestUser(t, env.db, "lead@example.com", "lead", managerTypeID(t, env.db))

	project, err := env.projectService.CreateProject(services.CreateProjectInput{
		Name:    "Original",
		ActorID: creator.ID,
	})
	require.NoError(t, err)

	body, err := json.Marshal(map[string]any{"name": "Renamed"})
	require.NoError(t, err)

	c, w := testContext(http.MethodPut, fmt.Sprintf("/projects/%d", project.ID), body, updater.ID)
	c.Params = gin.Params{{Key: "id", Value: fmt.Sprintf("%d", project.ID)}}

	env.handler.UpdateProject(c)

	require.Equal(t, http.StatusOK, w.Code)

	var response dto.ProjectDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "Renamed", response.Name)
	require.Equal(t, creator.ID, response.CreatedBy)
	require.NotNil(t, response.UpdatedBy)
	require.Equal(t, updater.ID, *response.UpdatedBy)
}

func TestProjectHandler_UpdateProject_NotFound(t *testing.T) {
	env := setupProjectTestEnv(t)

	actor := createTestUser(t, env.db, "boss@example.com", "boss", managerTypeID(t, env.db))

	body, err := json.Marshal(map[string]any{"name": "Renamed"})
	require.NoError(t, err)

	c, w := testContext(http.MethodPut, "/projects/5", body, actor.ID)
	c.Params = gin.Params{{Key: "id", Value: "5"}}

	env.handler.UpdateProject(c)

	require.Equal(t, http.StatusNotFound, w.Code)
	require.Contains(t, w.Body.String(), "Not found project with id=5.")
}

func TestProjectHandler_DeleteProject(t *testing.T) {
	env := setupProjectTestEnv(t)

	actor := createTestUser(t, env.db, "boss@example.com", "boss", managerTypeID(t, env.db))

	project, err := env.projectService.CreateProject(services.CreateProjectInput{
		Name:    "Doomed",
		ActorID: actor.ID,
	})
	require.NoError(t, err)

	c, w := testContext(http.MethodDelete, fmt.Sprintf("/projects/%d", project.ID), nil, actor.ID)
	c.Params = gin.Params{{Key: "id", Value: fmt.Sprintf("%d", project.ID)}}

	env.handler.DeleteProject(c)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), fmt.Sprintf("Project with id=%d deleted.", project.ID))

	var count int64
	require.NoError(t, env.db.Model(&models.Project{}).Where("id = ?", project.ID).Count(&count).Error)
	require.Zero(t, count)
}

func TestProjectHandler_DeleteProject_NotFound(t *testing.T) {
	env := setupProjectTestEnv(t)

	actor := createTestUser(t, env.db, "boss@example.com", "boss", managerTypeID(t, env.db))

	c, w := testContext(http.MethodDelete, "/projects/9", nil, actor.ID)
	c.Params = gin.Params{{Key: "id", Value: "9"}}

	env.handler.DeleteProject(c)

	require.Equal(t, http.StatusNotFound, w.Code)
	require.Contains(t, w.Body.String(), "Not found project with id=9.")
}
