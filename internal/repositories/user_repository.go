package repositories

import "alexis/internal/models"

// UserRepository defines the interface for user data access.
type UserRepository interface {
	GetAll() ([]models.User, error)
	GetByUsername(username string) (*models.User, error)
	Create(user *models.User) error
	UpdatePassword(username, passwordHash string) error
	Delete(username string) error
}
