package handlers

import (
	"alexis/internal/models"
	"alexis/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ServiceItemHandler handles HTTP requests for workshop services.
type ServiceItemHandler struct {
	service  *services.ServiceItemService
	validate *validator.Validate
	logger   *zap.Logger
}

// NewServiceItemHandler creates a new ServiceItemHandler.
func NewServiceItemHandler(service *services.ServiceItemService, logger *zap.Logger) *ServiceItemHandler {
	return &ServiceItemHandler{
		service:  service,
		validate: validator.New(),
		logger:   logger,
	}
}

// RegisterRoutes registers the service routes.
func (h *ServiceItemHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	serviceRoutes := router.Group("/services")
	serviceRoutes.Get("/", h.HandleGetServices)
	serviceRoutes.Post("/", auth, h.HandleCreateService)
	serviceRoutes.Put("/:id", auth, h.HandleUpdateService)
	serviceRoutes.Delete("/:id", auth, h.HandleDeleteService)
}

// HandleGetServices lists every service.
func (h *ServiceItemHandler) HandleGetServices(c *fiber.Ctx) error {
	items, err := h.service.GetAllServices()
	if err != nil {
		return respondError(c, h.logger, err, "Could not retrieve services")
	}
	return c.JSON(items)
}

// HandleCreateService adds a service.
func (h *ServiceItemHandler) HandleCreateService(c *fiber.Ctx) error {
	var item models.ServiceItem
	if ok, err := parseBody(c, h.validate, &item); !ok {
		return err
	}

	if err := h.service.CreateService(&item); err != nil {
		return respondError(c, h.logger, err, "Could not create service")
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// HandleUpdateService replaces a service.
func (h *ServiceItemHandler) HandleUpdateService(c *fiber.Ctx) error {
	id, ok, err := parseID(c)
	if !ok {
		return err
	}
	var item models.ServiceItem
	if ok, err := parseBody(c, h.validate, &item); !ok {
		return err
	}

	if err := h.service.UpdateService(id, &item); err != nil {
		return respondError(c, h.logger, err, "Could not update service")
	}
	return c.JSON(item)
}

// HandleDeleteService removes a service.
func (h *ServiceItemHandler) HandleDeleteService(c *fiber.Ctx) error {
	id, ok, err := parseID(c)
	if !ok {
		return err
	}

	if err := h.service.DeleteService(id); err != nil {
		return respondError(c, h.logger, err, "Could not delete service")
	}
	return success(c)
}
