package repositories

import (
	"fmt"

	"alexis/internal/models"

	"gorm.io/gorm"
)

// GORMUserRepository is a GORM implementation of UserRepository.
type GORMUserRepository struct {
	db *gorm.DB
}

// NewGORMUserRepository creates a new instance of GORMUserRepository.
func NewGORMUserRepository(db *gorm.DB) *GORMUserRepository {
	return &GORMUserRepository{
		db: db,
	}
}

// GetAll lists every admin account.
func (r *GORMUserRepository) GetAll() ([]models.User, error) {
	var users []models.User
	if err := r.db.Order("username").Find(&users).Error; err != nil {
		return nil, wrapDBError("get all users", err)
	}
	return users, nil
}

// Create creates a new user in the database.
func (r *GORMUserRepository) Create(user *models.User) error {
	if err := r.db.Create(user).Error; err != nil {
		return wrapDBError(fmt.Sprintf("create user %s", user.Username), err)
	}
	return nil
}

// GetByUsername retrieves a user by their username from the database.
func (r *GORMUserRepository) GetByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "username = ?", username).Error; err != nil {
		return nil, wrapDBError(fmt.Sprintf("get user by username %s", username), err)
	}
	return &user, nil
}

// UpdatePassword stores a new password hash for the user.
func (r *GORMUserRepository) UpdatePassword(username, passwordHash string) error {
	res := r.db.Model(&models.User{}).Where("username = ?", username).Update("password", passwordHash)
	if res.Error != nil {
		return wrapDBError("update user password", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("user %s not found for password update: %w", username, ErrNotFound)
	}
	return nil
}

// Delete removes a user. Tokens issued to that user stop working at the auth gate.
func (r *GORMUserRepository) Delete(username string) error {
	if err := r.db.Delete(&models.User{}, "username = ?", username).Error; err != nil {
		return wrapDBError("delete user", err)
	}
	return nil
}
