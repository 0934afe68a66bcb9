package repositories

import (
	"alexis/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMBrandRepository is a GORM implementation of BrandRepository.
type GORMBrandRepository struct {
	db *gorm.DB
}

// NewGORMBrandRepository creates a new instance of GORMBrandRepository.
func NewGORMBrandRepository(db *gorm.DB) *GORMBrandRepository {
	return &GORMBrandRepository{db: db}
}

// GetAll retrieves all tyre brands.
func (r *GORMBrandRepository) GetAll() ([]models.TyreBrand, error) {
	var brands []models.TyreBrand
	if err := r.db.Find(&brands).Error; err != nil {
		return nil, wrapDBError("get all brands", err)
	}
	return brands, nil
}

// Create inserts the brand unless one with the same name exists.
func (r *GORMBrandRepository) Create(brand *models.TyreBrand) (CreateResult, error) {
	res := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(brand)
	if res.Error != nil {
		return Created, wrapDBError("create brand", res.Error)
	}
	if res.RowsAffected == 0 {
		return AlreadyExists, nil
	}
	return Created, nil
}

// Delete removes a brand by name. Tyres referencing it are left alone.
func (r *GORMBrandRepository) Delete(name string) error {
	if err := r.db.Delete(&models.TyreBrand{}, "name = ?", name).Error; err != nil {
		return wrapDBError("delete brand", err)
	}
	return nil
}
