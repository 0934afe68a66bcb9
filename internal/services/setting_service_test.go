package services_test

import (
	"fmt"
	"testing"

	"alexis/internal/models"
	"alexis/internal/repositories"
	"alexis/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSettingService_GetSetting(t *testing.T) {
	mockRepo := new(MockSettingRepository)
	service := services.NewSettingService(mockRepo)

	banner := &models.Setting{Key: "banner", Value: map[string]any{"active": true, "reason": "Closed"}}
	mockRepo.On("Get", "banner").Return(banner, nil).Once()
	mockRepo.On("Get", "unknown").Return(nil, fmt.Errorf("get setting unknown: %w", repositories.ErrNotFound)).Once()
	mockRepo.On("Get", "broken").Return(nil, fmt.Errorf("get setting broken: %w", repositories.ErrStorageUnavailable)).Once()

	value, err := service.GetSetting("banner")
	assert.NoError(t, err)
	assert.Equal(t, banner.Value, value)

	// Unknown keys read as an empty object
	value, err = service.GetSetting("unknown")
	assert.NoError(t, err)
	assert.NotNil(t, value)
	assert.Empty(t, value)

	_, err = service.GetSetting("broken")
	assert.ErrorIs(t, err, repositories.ErrStorageUnavailable)
	mockRepo.AssertExpectations(t)
}

func TestSettingService_SetSetting(t *testing.T) {
	mockRepo := new(MockSettingRepository)
	service := services.NewSettingService(mockRepo)

	mockRepo.On("Set", mock.MatchedBy(func(s *models.Setting) bool {
		return s.Key == "banner" && s.Value["reason"] == "Holiday"
	})).Return(nil).Once()
	mockRepo.On("Set", mock.MatchedBy(func(s *models.Setting) bool {
		return s.Key == "empty" && s.Value != nil && len(s.Value) == 0
	})).Return(nil).Once()

	assert.NoError(t, service.SetSetting("banner", map[string]any{"active": true, "reason": "Holiday"}))
	assert.NoError(t, service.SetSetting("empty", nil))
	mockRepo.AssertExpectations(t)
}
