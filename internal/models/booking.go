package models

// BookingStatusPending is the status every new booking starts with.
const BookingStatusPending = "Pending"

// Booking represents a customer booking request.
// Status is an open set; the admin UI uses Pending, Confirmed, Completed and Cancelled.
type Booking struct {
	ID           uint    `json:"id" gorm:"primaryKey;autoIncrement"`
	CustomerName string  `json:"customerName" validate:"required,max=200"`
	Contact      string  `json:"contact" validate:"required,max=200"`
	ServiceType  string  `json:"serviceType" validate:"required,max=200"`
	Date         string  `json:"date" validate:"required,max=100"`
	Status       string  `json:"status" gorm:"default:Pending"`
	Notes        *string `json:"notes" validate:"omitempty,max=2000"`
}
