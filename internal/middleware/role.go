package middleware

import (
	"github.com/brunovmartini/projects-core-service/internal/database"
	apierrors "github.com/brunovmartini/projects-core-service/internal/errors"
	"github.com/brunovmartini/projects-core-service/internal/models"
	"github.com/gin-gonic/gin"
)

// RequireManager checks that the authenticated user carries the manager role.
// The role is resolved through the user's seeded type by name, never by an
// assumed numeric id. Must run after RequireAuth.
func RequireManager() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := GetUserID(c)
		if !exists {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		var user models.User
		if err := database.GetDB().Preload("Type").First(&user, userID).Error; err != nil {
			// Session points at a user that no longer exists.
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		if !user.IsManager() {
			apierrors.Forbidden(c, "")
			c.Abort()
			return
		}

		c.Next()
	}
}
