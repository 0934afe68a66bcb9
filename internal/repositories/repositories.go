package repositories

import "alexis/internal/models"

// CarRepository defines the interface for car data access.
type CarRepository interface {
	GetAll() ([]models.Car, error)
	Create(car *models.Car) error
	Update(car *models.Car) error
	Delete(id uint) error
}

// ServiceItemRepository defines the interface for service data access.
type ServiceItemRepository interface {
	GetAll() ([]models.ServiceItem, error)
	Create(item *models.ServiceItem) error
	Update(item *models.ServiceItem) error
	Delete(id uint) error
}

// BookingRepository defines the interface for booking data access.
type BookingRepository interface {
	GetAll() ([]models.Booking, error)
	Create(booking *models.Booking) error
	UpdateStatus(id uint, status string) error
}

// TyreRepository defines the interface for tyre stock data access.
type TyreRepository interface {
	GetAll() ([]models.TyreProduct, error)
	GetByID(id uint) (*models.TyreProduct, error)
	Create(tyre *models.TyreProduct) error
	Update(tyre *models.TyreProduct) error
	Delete(id uint) error
	AdjustStock(id uint, delta int) error
}

// BrandRepository defines the interface for tyre brand data access.
type BrandRepository interface {
	GetAll() ([]models.TyreBrand, error)
	Create(brand *models.TyreBrand) (CreateResult, error)
	Delete(name string) error
}

// SettingRepository defines the interface for site settings.
type SettingRepository interface {
	Get(key string) (*models.Setting, error)
	Set(setting *models.Setting) error
}
