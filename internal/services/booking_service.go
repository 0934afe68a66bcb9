package services

import (
	"encoding/json"
	"errors"
	"fmt"

	"alexis/internal/models"
	"alexis/internal/repositories"

	"go.uber.org/zap"
)

// BookingCreatedEvent is the routing key used when a booking is stored.
const BookingCreatedEvent = "booking.created"

// ErrInvalidStatus is returned for an empty booking status.
var ErrInvalidStatus = errors.New("invalid booking status")

// EventPublisher delivers domain events to a message broker.
type EventPublisher interface {
	Publish(routingKey string, body []byte) error
}

// BookingService handles business logic related to bookings.
type BookingService struct {
	repo      repositories.BookingRepository
	publisher EventPublisher // nil disables notifications
	logger    *zap.Logger
}

// NewBookingService creates a new BookingService. publisher may be nil.
func NewBookingService(repo repositories.BookingRepository, publisher EventPublisher, logger *zap.Logger) *BookingService {
	return &BookingService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
	}
}

// GetAllBookings retrieves all bookings.
func (s *BookingService) GetAllBookings() ([]models.Booking, error) {
	return s.repo.GetAll()
}

// CreateBooking stores a customer booking. New bookings are always Pending;
// the status only moves through UpdateBookingStatus.
func (s *BookingService) CreateBooking(booking *models.Booking) error {
	booking.Status = models.BookingStatusPending
	if err := s.repo.Create(booking); err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}

	s.publishCreated(booking)
	return nil
}

// UpdateBookingStatus sets the status of an existing booking.
func (s *BookingService) UpdateBookingStatus(id uint, status string) error {
	if status == "" {
		return fmt.Errorf("%w: status must not be empty", ErrInvalidStatus)
	}
	return s.repo.UpdateStatus(id, status)
}

// publishCreated notifies staff about a new booking. Failures are logged
// only; the booking is already stored.
func (s *BookingService) publishCreated(booking *models.Booking) {
	if s.publisher == nil {
		return
	}

	body, err := json.Marshal(booking)
	if err != nil {
		s.logger.Warn("Failed to marshal booking event", zap.Uint("booking_id", booking.ID), zap.Error(err))
		return
	}
	if err := s.publisher.Publish(BookingCreatedEvent, body); err != nil {
		s.logger.Warn("Failed to publish booking created event", zap.Uint("booking_id", booking.ID), zap.Error(err))
		return
	}
	s.logger.Debug("Published booking created event", zap.Uint("booking_id", booking.ID))
}
