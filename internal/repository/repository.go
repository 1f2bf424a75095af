package repository

import (
	"github.com/reda-h/wellness-companion/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create inserts a new user
	Create(user *models.User) error

	// FindByMail finds a user by mail address (exact match)
	FindByMail(mail string) (*models.User, error)

	// List returns all users ordered by id
	List() ([]models.User, error)
}
