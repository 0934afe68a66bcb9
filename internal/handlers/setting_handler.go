package handlers

import (
	"alexis/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// SettingHandler handles HTTP requests for site settings.
type SettingHandler struct {
	service  *services.SettingService
	validate *validator.Validate
	logger   *zap.Logger
}

// NewSettingHandler creates a new SettingHandler.
func NewSettingHandler(service *services.SettingService, logger *zap.Logger) *SettingHandler {
	return &SettingHandler{
		service:  service,
		validate: validator.New(),
		logger:   logger,
	}
}

// RegisterRoutes registers the settings routes.
func (h *SettingHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	router.Get("/settings/:key", h.HandleGetSetting)
	router.Post("/settings", auth, h.HandleUpdateSetting)
}

// SettingUpdateRequest replaces the value stored under Key.
type SettingUpdateRequest struct {
	Key   string         `json:"key" validate:"required,max=100"`
	Value map[string]any `json:"value" validate:"required"`
}

// HandleGetSetting returns the stored value, or {} for an unknown key.
func (h *SettingHandler) HandleGetSetting(c *fiber.Ctx) error {
	value, err := h.service.GetSetting(c.Params("key"))
	if err != nil {
		return respondError(c, h.logger, err, "Could not retrieve setting")
	}
	return c.JSON(value)
}

// HandleUpdateSetting upserts a setting.
func (h *SettingHandler) HandleUpdateSetting(c *fiber.Ctx) error {
	var req SettingUpdateRequest
	if ok, err := parseBody(c, h.validate, &req); !ok {
		return err
	}

	if err := h.service.SetSetting(req.Key, req.Value); err != nil {
		return respondError(c, h.logger, err, "Could not save setting")
	}
	return success(c)
}
