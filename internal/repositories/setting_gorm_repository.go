package repositories

import (
	"alexis/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMSettingRepository is a GORM implementation of SettingRepository.
type GORMSettingRepository struct {
	db *gorm.DB
}

// NewGORMSettingRepository creates a new instance of GORMSettingRepository.
func NewGORMSettingRepository(db *gorm.DB) *GORMSettingRepository {
	return &GORMSettingRepository{db: db}
}

// Get returns the setting stored under key.
func (r *GORMSettingRepository) Get(key string) (*models.Setting, error) {
	var s models.Setting
	if err := r.db.Where("key = ?", key).First(&s).Error; err != nil {
		return nil, wrapDBError("get setting "+key, err)
	}
	return &s, nil
}

// Set inserts the setting or replaces the value of an existing key.
func (r *GORMSettingRepository) Set(setting *models.Setting) error {
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(setting).Error
	if err != nil {
		return wrapDBError("set setting "+setting.Key, err)
	}
	return nil
}
