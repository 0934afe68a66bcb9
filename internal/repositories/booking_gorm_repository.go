package repositories

import (
	"fmt"

	"alexis/internal/models"

	"gorm.io/gorm"
)

// GORMBookingRepository is a GORM implementation of BookingRepository.
type GORMBookingRepository struct {
	db *gorm.DB
}

// NewGORMBookingRepository creates a new instance of GORMBookingRepository.
func NewGORMBookingRepository(db *gorm.DB) *GORMBookingRepository {
	return &GORMBookingRepository{db: db}
}

// GetAll retrieves all bookings.
func (r *GORMBookingRepository) GetAll() ([]models.Booking, error) {
	var bookings []models.Booking
	if err := r.db.Find(&bookings).Error; err != nil {
		return nil, wrapDBError("get all bookings", err)
	}
	return bookings, nil
}

// Create stores a new booking.
func (r *GORMBookingRepository) Create(booking *models.Booking) error {
	booking.ID = 0
	if booking.Status == "" {
		booking.Status = models.BookingStatusPending
	}
	if err := r.db.Create(booking).Error; err != nil {
		return wrapDBError("create booking", err)
	}
	return nil
}

// UpdateStatus sets the status of an existing booking.
func (r *GORMBookingRepository) UpdateStatus(id uint, status string) error {
	res := r.db.Model(&models.Booking{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return wrapDBError("update booking status", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("booking with ID %d not found for status update: %w", id, ErrNotFound)
	}
	return nil
}
