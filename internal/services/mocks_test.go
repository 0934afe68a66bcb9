package services_test

import (
	"alexis/internal/models"
	"alexis/internal/repositories"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetAll() ([]models.User, error) {
	args := m.Called()
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePassword(username, passwordHash string) error {
	args := m.Called(username, passwordHash)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(username string) error {
	args := m.Called(username)
	return args.Error(0)
}

// MockCarRepository is a mock implementation of repositories.CarRepository
type MockCarRepository struct {
	mock.Mock
}

func (m *MockCarRepository) GetAll() ([]models.Car, error) {
	args := m.Called()
	return args.Get(0).([]models.Car), args.Error(1)
}

func (m *MockCarRepository) Create(car *models.Car) error {
	args := m.Called(car)
	return args.Error(0)
}

func (m *MockCarRepository) Update(car *models.Car) error {
	args := m.Called(car)
	return args.Error(0)
}

func (m *MockCarRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockServiceItemRepository is a mock implementation of repositories.ServiceItemRepository
type MockServiceItemRepository struct {
	mock.Mock
}

func (m *MockServiceItemRepository) GetAll() ([]models.ServiceItem, error) {
	args := m.Called()
	return args.Get(0).([]models.ServiceItem), args.Error(1)
}

func (m *MockServiceItemRepository) Create(item *models.ServiceItem) error {
	args := m.Called(item)
	return args.Error(0)
}

func (m *MockServiceItemRepository) Update(item *models.ServiceItem) error {
	args := m.Called(item)
	return args.Error(0)
}

func (m *MockServiceItemRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockBookingRepository is a mock implementation of repositories.BookingRepository
type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) GetAll() ([]models.Booking, error) {
	args := m.Called()
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockBookingRepository) Create(booking *models.Booking) error {
	args := m.Called(booking)
	return args.Error(0)
}

func (m *MockBookingRepository) UpdateStatus(id uint, status string) error {
	args := m.Called(id, status)
	return args.Error(0)
}

// MockTyreRepository is a mock implementation of repositories.TyreRepository
type MockTyreRepository struct {
	mock.Mock
}

func (m *MockTyreRepository) GetAll() ([]models.TyreProduct, error) {
	args := m.Called()
	return args.Get(0).([]models.TyreProduct), args.Error(1)
}

func (m *MockTyreRepository) GetByID(id uint) (*models.TyreProduct, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TyreProduct), args.Error(1)
}

func (m *MockTyreRepository) Create(tyre *models.TyreProduct) error {
	args := m.Called(tyre)
	return args.Error(0)
}

func (m *MockTyreRepository) Update(tyre *models.TyreProduct) error {
	args := m.Called(tyre)
	return args.Error(0)
}

func (m *MockTyreRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockTyreRepository) AdjustStock(id uint, delta int) error {
	args := m.Called(id, delta)
	return args.Error(0)
}

// MockBrandRepository is a mock implementation of repositories.BrandRepository
type MockBrandRepository struct {
	mock.Mock
}

func (m *MockBrandRepository) GetAll() ([]models.TyreBrand, error) {
	args := m.Called()
	return args.Get(0).([]models.TyreBrand), args.Error(1)
}

func (m *MockBrandRepository) Create(brand *models.TyreBrand) (repositories.CreateResult, error) {
	args := m.Called(brand)
	return args.Get(0).(repositories.CreateResult), args.Error(1)
}

func (m *MockBrandRepository) Delete(name string) error {
	args := m.Called(name)
	return args.Error(0)
}

// MockSettingRepository is a mock implementation of repositories.SettingRepository
type MockSettingRepository struct {
	mock.Mock
}

func (m *MockSettingRepository) Get(key string) (*models.Setting, error) {
	args := m.Called(key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Setting), args.Error(1)
}

func (m *MockSettingRepository) Set(setting *models.Setting) error {
	args := m.Called(setting)
	return args.Error(0)
}

// MockPublisher records published events.
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(routingKey string, body []byte) error {
	args := m.Called(routingKey, body)
	return args.Error(0)
}
