package services

import (
	"alexis/internal/models"
	"alexis/internal/repositories"
)

// CarService handles business logic related to car listings.
type CarService struct {
	repo repositories.CarRepository
}

// NewCarService creates a new CarService.
func NewCarService(repo repositories.CarRepository) *CarService {
	return &CarService{
		repo: repo,
	}
}

// GetAllCars retrieves all cars.
func (s *CarService) GetAllCars() ([]models.Car, error) {
	return s.repo.GetAll()
}

// CreateCar stores a new car and sets its ID.
func (s *CarService) CreateCar(car *models.Car) error {
	return s.repo.Create(car)
}

// UpdateCar replaces the car with the given ID.
func (s *CarService) UpdateCar(id uint, car *models.Car) error {
	car.ID = id
	return s.repo.Update(car)
}

// DeleteCar deletes a car by its ID.
func (s *CarService) DeleteCar(id uint) error {
	return s.repo.Delete(id)
}
