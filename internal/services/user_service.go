package services

import (
	"errors"
	"fmt"

	"github.com/brunovmartini/projects-core-service/internal/models"
	"github.com/brunovmartini/projects-core-service/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrEmailTaken           = errors.New("email already in use")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrSelfDelete           = errors.New("current user can not be deleted")
	ErrFailedToHashPassword = errors.New("failed to hash password")
)

// UserService handles user management and authentication business logic.
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	Email    string
	Password string
}

// CreateUserInput represents the required information to create a new user.
type CreateUserInput struct {
	Email      string
	Password   string
	Username   string
	Name       string
	UserTypeID uint64
}

// UpdateUserInput represents a partial user update. Only the declared fields
// are updatable; nil fields are left untouched.
type UpdateUserInput struct {
	Email      *string
	Username   *string
	Name       *string
	UserTypeID *uint64
}

// GetUserByID retrieves a user or reports that the id does not exist.
func (s *UserService) GetUserByID(id uint64) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// GetUserByEmail retrieves a user by email. A missing user is not an error;
// it is reported as a nil user.
func (s *UserService) GetUserByEmail(email string) (*models.User, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	return user, nil
}

// Login verifies credentials and returns the authenticated user. Unknown
// email and wrong password are indistinguishable to the caller.
func (s *UserService) Login(input LoginInput) (*models.User, error) {
	user, err := s.GetUserByEmail(input.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// CreateUser registers a new user with a hashed password.
func (s *UserService) CreateUser(input CreateUserInput) (*models.User, error) {
	existing, err := s.GetUserByEmail(input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrFailedToHashPassword
	}

	user := &models.User{
		Email:        input.Email,
		PasswordHash: string(hashedPassword),
		Username:     input.Username,
		Name:         input.Name,
		UserTypeID:   input.UserTypeID,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	// Re-fetch so the response carries the loaded user type.
	return s.GetUserByID(user.ID)
}

// GetUsers returns all users.
func (s *UserService) GetUsers() ([]models.User, error) {
	users, err := s.userRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// UpdateUser applies a partial update to an existing user.
func (s *UserService) UpdateUser(id uint64, input UpdateUserInput) (*models.User, error) {
	user, err := s.GetUserByID(id)
	if err != nil {
		return nil, err
	}

	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.Username != nil {
		user.Username = *input.Username
	}
	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.UserTypeID != nil {
		user.UserTypeID = *input.UserTypeID
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return s.GetUserByID(user.ID)
}

// DeleteUser removes a user. The acting user may not delete their own account.
func (s *UserService) DeleteUser(id, actorID uint64) error {
	user, err := s.GetUserByID(id)
	if err != nil {
		return err
	}

	if user.ID == actorID {
		return ErrSelfDelete
	}

	if err := s.userRepo.Delete(user); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	return nil
}
