package services

import (
	"errors"

	"alexis/internal/models"
	"alexis/internal/repositories"
)

// SettingService reads and writes site settings.
type SettingService struct {
	repo repositories.SettingRepository
}

// NewSettingService creates a new SettingService.
func NewSettingService(repo repositories.SettingRepository) *SettingService {
	return &SettingService{repo: repo}
}

// GetSetting returns the value stored under key, or an empty object when the key is unknown.
func (s *SettingService) GetSetting(key string) (map[string]any, error) {
	setting, err := s.repo.Get(key)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return map[string]any{}, nil
		}
		return nil, err
	}
	if setting.Value == nil {
		return map[string]any{}, nil
	}
	return setting.Value, nil
}

// SetSetting stores value under key, replacing any previous value.
func (s *SettingService) SetSetting(key string, value map[string]any) error {
	if value == nil {
		value = map[string]any{}
	}
	return s.repo.Set(&models.Setting{Key: key, Value: value})
}
