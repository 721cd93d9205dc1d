package dto

import (
	"time"

	"github.com/brunovmartini/projects-core-service/internal/models"
)

// UserTypeDTO represents a user role in API responses
type UserTypeDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"user_type"`
}

// UserDTO represents a user in API responses. The password hash is never
// part of the projection.
type UserDTO struct {
	ID        uint64      `json:"id"`
	Email     string      `json:"email"`
	Username  string      `json:"username"`
	Name      string      `json:"name"`
	Type      UserTypeDTO `json:"type"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// ToUserTypeDTO converts a UserType model to UserTypeDTO
func ToUserTypeDTO(userType models.UserType) UserTypeDTO {
	return UserTypeDTO{
		ID:   userType.ID,
		Name: userType.Name,
	}
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:        user.ID,
		Email:     user.Email,
		Username:  user.Username,
		Name:      user.Name,
		Type:      ToUserTypeDTO(user.Type),
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// ToUserDTOs converts a slice of users to DTOs
func ToUserDTOs(users []models.User) []UserDTO {
	dtos := make([]UserDTO, len(users))
	for i, user := range users {
		dtos[i] = ToUserDTO(user)
	}
	return dtos
}
