package repositories

import (
	"fmt"

	"alexis/internal/models"

	"gorm.io/gorm"
)

// GORMServiceItemRepository is a GORM implementation of ServiceItemRepository.
type GORMServiceItemRepository struct {
	db *gorm.DB
}

// NewGORMServiceItemRepository creates a new instance of GORMServiceItemRepository.
func NewGORMServiceItemRepository(db *gorm.DB) *GORMServiceItemRepository {
	return &GORMServiceItemRepository{db: db}
}

// GetAll retrieves all services.
func (r *GORMServiceItemRepository) GetAll() ([]models.ServiceItem, error) {
	var items []models.ServiceItem
	if err := r.db.Find(&items).Error; err != nil {
		return nil, wrapDBError("get all services", err)
	}
	return items, nil
}

// Create inserts a service and fills in its assigned ID.
func (r *GORMServiceItemRepository) Create(item *models.ServiceItem) error {
	item.ID = 0
	if err := r.db.Create(item).Error; err != nil {
		return wrapDBError("create service", err)
	}
	return nil
}

// Update replaces the name and description of the service identified by item.ID.
func (r *GORMServiceItemRepository) Update(item *models.ServiceItem) error {
	res := r.db.Model(&models.ServiceItem{}).Where("id = ?", item.ID).Select("name", "description").Updates(item)
	if res.Error != nil {
		return wrapDBError("update service", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("service with ID %d not found for update: %w", item.ID, ErrNotFound)
	}
	return nil
}

// Delete removes a service. Deleting a missing ID is not an error.
func (r *GORMServiceItemRepository) Delete(id uint) error {
	if err := r.db.Delete(&models.ServiceItem{}, "id = ?", id).Error; err != nil {
		return wrapDBError("delete service", err)
	}
	return nil
}
