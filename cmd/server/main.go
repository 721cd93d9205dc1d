package main

import (
	"time"

	"github.com/brunovmartini/projects-core-service/internal/config"
	"github.com/brunovmartini/projects-core-service/internal/constants"
	"github.com/brunovmartini/projects-core-service/internal/database"
	"github.com/brunovmartini/projects-core-service/internal/handlers"
	"github.com/brunovmartini/projects-core-service/internal/logger"
	"github.com/brunovmartini/projects-core-service/internal/middleware"
	"github.com/brunovmartini/projects-core-service/internal/repository"
	"github.com/brunovmartini/projects-core-service/internal/services"
	"github.com/gin-contrib/sessions"
	redisStore "github.com/gin-contrib/sessions/redis"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	isProduction := cfg.GinMode == "release"

	log, closeLogger := logger.New(cfg.LogLevel, isProduction)
	defer closeLogger()

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}

	// Run migrations and seed reference data
	if err := database.Migrate(); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}
	if cfg.DBDriver == "postgres" {
		if err := database.AddIndexes(database.GetDB()); err != nil {
			log.Fatal("failed to add indexes", zap.Error(err))
		}
	}
	if err := database.Seed(database.GetDB()); err != nil {
		log.Fatal("failed to seed database", zap.Error(err))
	}

	// Initialize Gin router
	r := gin.New()
	r.Use(ginzap.Ginzap(log, time.RFC3339, true))
	r.Use(ginzap.RecoveryWithZap(log, true))

	// Setup session middleware with Redis
	redisAddr := cfg.RedisHost + ":" + cfg.RedisPort
	store, err := redisStore.NewStore(
		10,
		"tcp",
		redisAddr,
		"", // username (empty for default user)
		"", // password (empty = no password)
		[]byte(cfg.SessionSecret),
	)
	if err != nil {
		log.Fatal("failed to create redis session store", zap.Error(err))
	}
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   constants.SessionMaxAgeSeconds,
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: 2, // SameSite=Lax
	})
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	// Initialize repositories and services
	db := database.GetDB()
	userService := services.NewUserService(repository.NewUserRepository(db))
	projectService := services.NewProjectService(repository.NewProjectRepository(db))
	taskService := services.NewTaskService(repository.NewTaskRepository(db))

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService)
	userHandler := handlers.NewUserHandler(userService)
	projectHandler := handlers.NewProjectHandler(projectService)
	taskHandler := handlers.NewTaskHandler(taskService, projectService)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	// Auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
		auth.POST("/logout", middleware.RequireAuth(), authHandler.Logout)
	}

	// User routes: reads are open, mutations require a manager
	users := r.Group("/users")
	{
		users.POST("", middleware.RequireAuth(), middleware.RequireManager(), userHandler.CreateUser)
		users.GET("", userHandler.GetUsers)
		users.GET("/:id", userHandler.GetUser)
		users.PUT("/:id", middleware.RequireAuth(), middleware.RequireManager(), userHandler.UpdateUser)
		users.DELETE("/:id", middleware.RequireAuth(), middleware.RequireManager(), userHandler.DeleteUser)
	}

	// Project routes: reads are open, mutations require a manager
	projects := r.Group("/projects")
	{
		projects.POST("", middleware.RequireAuth(), middleware.RequireManager(), projectHandler.CreateProject)
		projects.GET("", projectHandler.GetProjects)
		projects.GET("/:id", projectHandler.GetProject)
		projects.PUT("/:id", middleware.RequireAuth(), middleware.RequireManager(), projectHandler.UpdateProject)
		projects.DELETE("/:id", middleware.RequireAuth(), middleware.RequireManager(), projectHandler.DeleteProject)

		// Tasks live under their project
		projects.POST("/:id/tasks", middleware.RequireAuth(), middleware.RequireManager(), taskHandler.CreateTask)
		projects.GET("/:id/tasks", taskHandler.GetTasksByProject)
	}

	// Start server
	log.Info("server starting", zap.String("addr", cfg.ListenAddr))
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}
