package repositories

import (
	"fmt"

	"alexis/internal/models"

	"gorm.io/gorm"
)

// GORMCarRepository is a GORM implementation of CarRepository.
type GORMCarRepository struct {
	db *gorm.DB
}

// NewGORMCarRepository creates a new instance of GORMCarRepository.
func NewGORMCarRepository(db *gorm.DB) *GORMCarRepository {
	return &GORMCarRepository{
		db: db,
	}
}

// GetAll retrieves all cars from the database.
func (r *GORMCarRepository) GetAll() ([]models.Car, error) {
	var cars []models.Car
	if err := r.db.Find(&cars).Error; err != nil {
		return nil, wrapDBError("get all cars", err)
	}
	return cars, nil
}

// Create inserts a car and fills in its assigned ID.
func (r *GORMCarRepository) Create(car *models.Car) error {
	car.ID = 0
	if car.Features == nil {
		car.Features = []string{}
	}
	if err := r.db.Create(car).Error; err != nil {
		return wrapDBError("create car", err)
	}
	return nil
}

// Update replaces every mutable field of the car identified by car.ID.
func (r *GORMCarRepository) Update(car *models.Car) error {
	if car.Features == nil {
		car.Features = []string{}
	}
	// Select("*") makes GORM write zero values (sold=false, empty strings) too.
	res := r.db.Model(&models.Car{}).Where("id = ?", car.ID).Select("*").Omit("id").Updates(car)
	if res.Error != nil {
		return wrapDBError("update car", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("car with ID %d not found for update: %w", car.ID, ErrNotFound)
	}
	return nil
}

// Delete removes a car. Deleting a missing ID is not an error.
func (r *GORMCarRepository) Delete(id uint) error {
	if err := r.db.Delete(&models.Car{}, "id = ?", id).Error; err != nil {
		return wrapDBError("delete car", err)
	}
	return nil
}
