package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/brunovmartini/projects-core-service/internal/dto"
	apierrors "github.com/brunovmartini/projects-core-service/internal/errors"
	"github.com/brunovmartini/projects-core-service/internal/middleware"
	"github.com/brunovmartini/projects-core-service/internal/services"
	"github.com/gin-gonic/gin"
)

// UserHandler coordinates user management HTTP handlers.
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// CreateUser registers a new user. Managers only.
func (h *UserHandler) CreateUser(c *gin.Context) {
	type CreateUserRequest struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
		Username string `json:"username" binding:"required"`
		Name     string `json:"name" binding:"required"`
		UserType uint64 `json:"user_type" binding:"required"`
	}

	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "")
		return
	}

	user, err := h.userService.CreateUser(services.CreateUserInput{
		Email:      req.Email,
		Password:   req.Password,
		Username:   req.Username,
		Name:       req.Name,
		UserTypeID: req.UserType,
	})
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			apierrors.Conflict(c, "")
			return
		}
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

// GetUsers returns all users.
func (h *UserHandler) GetUsers(c *gin.Context) {
	users, err := h.userService.GetUsers()
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTOs(users))
}

// GetUser returns a single user by id.
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := parseIDParam(c, "Invalid user ID.")
	if !ok {
		return
	}

	user, err := h.userService.GetUserByID(id)
	if err != nil {
		respondUserError(c, err, id)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

// UpdateUser applies a partial update to a user. Managers only.
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := parseIDParam(c, "Invalid user ID.")
	if !ok {
		return
	}

	type UpdateUserRequest struct {
		Email    *string `json:"email" binding:"omitempty,email"`
		Username *string `json:"username"`
		Name     *string `json:"name"`
		UserType *uint64 `json:"user_type"`
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "")
		return
	}

	user, err := h.userService.UpdateUser(id, services.UpdateUserInput{
		Email:      req.Email,
		Username:   req.Username,
		Name:       req.Name,
		UserTypeID: req.UserType,
	})
	if err != nil {
		respondUserError(c, err, id)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

// DeleteUser removes a user. Managers only; self-delete is rejected.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := parseIDParam(c, "Invalid user ID.")
	if !ok {
		return
	}

	actorID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	if err := h.userService.DeleteUser(id, actorID); err != nil {
		respondUserError(c, err, id)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("User with id=%d deleted.", id),
	})
}

func respondUserError(c *gin.Context, err error, id uint64) {
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, fmt.Sprintf("Not found user with id=%d.", id))
	case errors.Is(err, services.ErrSelfDelete):
		apierrors.UnprocessableEntity(c, "")
	case errors.Is(err, services.ErrEmailTaken):
		apierrors.Conflict(c, "")
	default:
		apierrors.InternalError(c, "")
	}
}

// parseIDParam reads the :id path parameter as an unsigned integer.
func parseIDParam(c *gin.Context, message string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, message)
		return 0, false
	}
	return id, true
}
