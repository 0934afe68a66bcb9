package handlers

import (
	"alexis/internal/models"
	"alexis/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// BookingHandler handles HTTP requests for bookings.
type BookingHandler struct {
	service  *services.BookingService
	validate *validator.Validate
	logger   *zap.Logger
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(service *services.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service:  service,
		validate: validator.New(),
		logger:   logger,
	}
}

// RegisterRoutes registers the booking routes. Customers may create bookings
// without a token; reading and changing them is admin only.
func (h *BookingHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	bookingRoutes := router.Group("/bookings")
	bookingRoutes.Post("/", h.HandleCreateBooking)
	bookingRoutes.Get("/", auth, h.HandleGetBookings)
	bookingRoutes.Put("/:id/status", auth, h.HandleUpdateBookingStatus)
}

// BookingStatusRequest represents the request body for a status change.
type BookingStatusRequest struct {
	Status string `json:"status" validate:"required,max=50"`
}

// HandleGetBookings retrieves all bookings.
func (h *BookingHandler) HandleGetBookings(c *fiber.Ctx) error {
	bookings, err := h.service.GetAllBookings()
	if err != nil {
		return respondError(c, h.logger, err, "Could not retrieve bookings")
	}
	return c.JSON(bookings)
}

// HandleCreateBooking stores a customer booking.
func (h *BookingHandler) HandleCreateBooking(c *fiber.Ctx) error {
	var booking models.Booking
	if ok, err := parseBody(c, h.validate, &booking); !ok {
		return err
	}

	if err := h.service.CreateBooking(&booking); err != nil {
		return respondError(c, h.logger, err, "Could not create booking")
	}
	return c.Status(fiber.StatusCreated).JSON(booking)
}

// HandleUpdateBookingStatus updates the status of an existing booking.
func (h *BookingHandler) HandleUpdateBookingStatus(c *fiber.Ctx) error {
	id, ok, err := parseID(c)
	if !ok {
		return err
	}
	var req BookingStatusRequest
	if ok, err := parseBody(c, h.validate, &req); !ok {
		return err
	}

	if err := h.service.UpdateBookingStatus(id, req.Status); err != nil {
		return respondError(c, h.logger, err, "Could not update booking status")
	}
	return success(c)
}
