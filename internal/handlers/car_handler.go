package handlers

import (
	"alexis/internal/models"
	"alexis/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CarHandler handles HTTP requests for car listings.
type CarHandler struct {
	service  *services.CarService
	validate *validator.Validate
	logger   *zap.Logger
}

// NewCarHandler creates a new CarHandler.
func NewCarHandler(service *services.CarService, logger *zap.Logger) *CarHandler {
	return &CarHandler{
		service:  service,
		validate: validator.New(),
		logger:   logger,
	}
}

// RegisterRoutes registers the car routes. Reads are public, writes go through auth.
func (h *CarHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	carRoutes := router.Group("/cars")
	carRoutes.Get("/", h.HandleGetCars)
	carRoutes.Post("/", auth, h.HandleCreateCar)
	carRoutes.Put("/:id", auth, h.HandleUpdateCar)
	carRoutes.Delete("/:id", auth, h.HandleDeleteCar)
}

// HandleGetCars lists every car.
func (h *CarHandler) HandleGetCars(c *fiber.Ctx) error {
	cars, err := h.service.GetAllCars()
	if err != nil {
		return respondError(c, h.logger, err, "Could not retrieve cars")
	}
	return c.JSON(cars)
}

// HandleCreateCar adds a car listing.
func (h *CarHandler) HandleCreateCar(c *fiber.Ctx) error {
	var car models.Car
	if ok, err := parseBody(c, h.validate, &car); !ok {
		return err
	}

	if err := h.service.CreateCar(&car); err != nil {
		return respondError(c, h.logger, err, "Could not create car")
	}
	return c.Status(fiber.StatusCreated).JSON(car)
}

// HandleUpdateCar replaces a car listing.
func (h *CarHandler) HandleUpdateCar(c *fiber.Ctx) error {
	id, ok, err := parseID(c)
	if !ok {
		return err
	}
	var car models.Car
	if ok, err := parseBody(c, h.validate, &car); !ok {
		return err
	}

	if err := h.service.UpdateCar(id, &car); err != nil {
		return respondError(c, h.logger, err, "Could not update car")
	}
	return c.JSON(car)
}

// HandleDeleteCar removes a car listing.
func (h *CarHandler) HandleDeleteCar(c *fiber.Ctx) error {
	id, ok, err := parseID(c)
	if !ok {
		return err
	}

	if err := h.service.DeleteCar(id); err != nil {
		return respondError(c, h.logger, err, "Could not delete car")
	}
	return success(c)
}
