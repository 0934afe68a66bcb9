package services

import (
	"alexis/internal/models"
	"alexis/internal/repositories"

	"go.uber.org/zap"
)

// TyreService handles tyre stock and the brand list.
type TyreService struct {
	tyreRepo  repositories.TyreRepository
	brandRepo repositories.BrandRepository
	logger    *zap.Logger
}

// NewTyreService creates a new TyreService.
func NewTyreService(tyreRepo repositories.TyreRepository, brandRepo repositories.BrandRepository, logger *zap.Logger) *TyreService {
	return &TyreService{
		tyreRepo:  tyreRepo,
		brandRepo: brandRepo,
		logger:    logger,
	}
}

// GetAllTyres retrieves all tyres.
func (s *TyreService) GetAllTyres() ([]models.TyreProduct, error) {
	return s.tyreRepo.GetAll()
}

// GetTyreByID retrieves a single tyre.
func (s *TyreService) GetTyreByID(id uint) (*models.TyreProduct, error) {
	return s.tyreRepo.GetByID(id)
}

// CreateTyre stores a new tyre and sets its ID.
func (s *TyreService) CreateTyre(tyre *models.TyreProduct) error {
	return s.tyreRepo.Create(tyre)
}

// UpdateTyre replaces the tyre with the given ID.
func (s *TyreService) UpdateTyre(id uint, tyre *models.TyreProduct) error {
	tyre.ID = id
	return s.tyreRepo.Update(tyre)
}

// DeleteTyre deletes a tyre by its ID.
func (s *TyreService) DeleteTyre(id uint) error {
	return s.tyreRepo.Delete(id)
}

// AdjustStock applies delta to the tyre quantity, never going below zero,
// and returns the tyre as stored afterwards.
func (s *TyreService) AdjustStock(id uint, delta int) (*models.TyreProduct, error) {
	if err := s.tyreRepo.AdjustStock(id, delta); err != nil {
		return nil, err
	}
	tyre, err := s.tyreRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("Tyre stock adjusted",
		zap.Uint("tyre_id", id), zap.Int("delta", delta), zap.Int("quantity", tyre.Quantity))
	return tyre, nil
}

// GetAllBrands retrieves all tyre brands.
func (s *TyreService) GetAllBrands() ([]models.TyreBrand, error) {
	return s.brandRepo.GetAll()
}

// CreateBrand adds a brand. An existing name is reported as AlreadyExists, not as an error.
func (s *TyreService) CreateBrand(brand *models.TyreBrand) (repositories.CreateResult, error) {
	return s.brandRepo.Create(brand)
}

// DeleteBrand removes a brand by name.
func (s *TyreService) DeleteBrand(name string) error {
	return s.brandRepo.Delete(name)
}
