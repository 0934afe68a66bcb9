package services

import (
	"alexis/internal/models"
	"alexis/internal/repositories"
)

// ServiceItemService handles the list of workshop services.
type ServiceItemService struct {
	repo repositories.ServiceItemRepository
}

// NewServiceItemService creates a new ServiceItemService.
func NewServiceItemService(repo repositories.ServiceItemRepository) *ServiceItemService {
	return &ServiceItemService{repo: repo}
}

// GetAllServices retrieves all services.
func (s *ServiceItemService) GetAllServices() ([]models.ServiceItem, error) {
	return s.repo.GetAll()
}

// CreateService stores a new service and sets its ID.
func (s *ServiceItemService) CreateService(item *models.ServiceItem) error {
	return s.repo.Create(item)
}

// UpdateService replaces the service with the given ID.
func (s *ServiceItemService) UpdateService(id uint, item *models.ServiceItem) error {
	item.ID = id
	return s.repo.Update(item)
}

// DeleteService deletes a service by its ID.
func (s *ServiceItemService) DeleteService(id uint) error {
	return s.repo.Delete(id)
}
