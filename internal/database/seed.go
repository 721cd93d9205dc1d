package database

import (
	"errors"
	"fmt"

	"github.com/brunovmartini/projects-core-service/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seed inserts the role reference data and a bootstrap manager account. It is
// idempotent: roles are only created when the user_types table is empty and
// the admin user only when no user exists yet.
func Seed(db *gorm.DB) error {
	var userType models.UserType
	if err := db.First(&userType).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check user types: %w", err)
		}

		types := []models.UserType{
			{Name: models.RoleManager},
			{Name: models.RoleEmployee},
		}
		if err := db.Create(&types).Error; err != nil {
			return fmt.Errorf("failed to seed user types: %w", err)
		}
	}

	var user models.User
	if err := db.First(&user).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check users: %w", err)
		}

		var managerType models.UserType
		if err := db.Where("name = ?", models.RoleManager).First(&managerType).Error; err != nil {
			return fmt.Errorf("failed to find manager type: %w", err)
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash admin password: %w", err)
		}

		admin := models.User{
			Email:        "admin@admin.com",
			PasswordHash: string(hashedPassword),
			Username:     "admin",
			Name:         "Admin",
			UserTypeID:   managerType.ID,
		}
		if err := db.Create(&admin).Error; err != nil {
			return fmt.Errorf("failed to seed admin user: %w", err)
		}
	}

	return nil
}
