package repositories

import (
	"fmt"

	"alexis/internal/models"

	"gorm.io/gorm"
)

// GORMTyreRepository is a GORM implementation of TyreRepository.
type GORMTyreRepository struct {
	db *gorm.DB
}

// NewGORMTyreRepository creates a new instance of GORMTyreRepository.
func NewGORMTyreRepository(db *gorm.DB) *GORMTyreRepository {
	return &GORMTyreRepository{
		db: db,
	}
}

// GetAll retrieves all tyres from the database.
func (r *GORMTyreRepository) GetAll() ([]models.TyreProduct, error) {
	var tyres []models.TyreProduct
	if err := r.db.Find(&tyres).Error; err != nil {
		return nil, wrapDBError("get all tyres", err)
	}
	return tyres, nil
}

// GetByID retrieves a single tyre by its ID.
func (r *GORMTyreRepository) GetByID(id uint) (*models.TyreProduct, error) {
	var tyre models.TyreProduct
	if err := r.db.First(&tyre, "id = ?", id).Error; err != nil {
		return nil, wrapDBError(fmt.Sprintf("get tyre by ID %d", id), err)
	}
	return &tyre, nil
}

// Create inserts a tyre and fills in its assigned ID.
func (r *GORMTyreRepository) Create(tyre *models.TyreProduct) error {
	tyre.ID = 0
	if err := r.db.Create(tyre).Error; err != nil {
		return wrapDBError("create tyre", err)
	}
	return nil
}

// Update replaces every mutable field of the tyre identified by tyre.ID.
func (r *GORMTyreRepository) Update(tyre *models.TyreProduct) error {
	res := r.db.Model(&models.TyreProduct{}).Where("id = ?", tyre.ID).Select("*").Omit("id").Updates(tyre)
	if res.Error != nil {
		return wrapDBError("update tyre", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("tyre with ID %d not found for update: %w", tyre.ID, ErrNotFound)
	}
	return nil
}

// Delete removes a tyre. Deleting a missing ID is not an error.
func (r *GORMTyreRepository) Delete(id uint) error {
	if err := r.db.Delete(&models.TyreProduct{}, "id = ?", id).Error; err != nil {
		return wrapDBError("delete tyre", err)
	}
	return nil
}

// AdjustStock adds delta to the quantity in one statement, clamping the
// result to [0, models.MaxTyreQuantity].
func (r *GORMTyreRepository) AdjustStock(id uint, delta int) error {
	if delta < -models.MaxStockDelta || delta > models.MaxStockDelta {
		return fmt.Errorf("adjust tyre %d by %d: %w", id, delta, ErrInvalidStockDelta)
	}
	res := r.db.Model(&models.TyreProduct{}).
		Where("id = ?", id).
		Update("quantity", gorm.Expr(
			"CASE WHEN quantity + ? < 0 THEN 0 WHEN quantity + ? > ? THEN ? ELSE quantity + ? END",
			delta, delta, models.MaxTyreQuantity, models.MaxTyreQuantity, delta))
	if res.Error != nil {
		return wrapDBError("adjust tyre stock", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("tyre with ID %d not found for stock update: %w", id, ErrNotFound)
	}
	return nil
}
