package handlers

import (
	"alexis/internal/models"
	"alexis/internal/repositories"
	"alexis/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// TyreHandler handles HTTP requests for tyre stock and tyre brands.
type TyreHandler struct {
	service  *services.TyreService
	validate *validator.Validate
	logger   *zap.Logger
}

// NewTyreHandler creates a new TyreHandler.
func NewTyreHandler(service *services.TyreService, logger *zap.Logger) *TyreHandler {
	return &TyreHandler{
		service:  service,
		validate: validator.New(),
		logger:   logger,
	}
}

// RegisterRoutes registers the tyre and brand routes.
func (h *TyreHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	tyreRoutes := router.Group("/tyres")
	tyreRoutes.Get("/", h.HandleGetTyres)
	tyreRoutes.Post("/", auth, h.HandleCreateTyre)
	tyreRoutes.Put("/:id", auth, h.HandleUpdateTyre)
	tyreRoutes.Delete("/:id", auth, h.HandleDeleteTyre)
	tyreRoutes.Put("/:id/stock", auth, h.HandleAdjustStock)

	brandRoutes := router.Group("/brands")
	brandRoutes.Get("/", h.HandleGetBrands)
	brandRoutes.Post("/", auth, h.HandleCreateBrand)
	brandRoutes.Delete("/:name", auth, h.HandleDeleteBrand)
}

// StockAdjustRequest carries a signed change to the tyre quantity.
type StockAdjustRequest struct {
	Delta int `json:"delta" validate:"gte=-1000000,lte=1000000"`
}

// HandleGetTyres lists every tyre.
func (h *TyreHandler) HandleGetTyres(c *fiber.Ctx) error {
	tyres, err := h.service.GetAllTyres()
	if err != nil {
		return respondError(c, h.logger, err, "Could not retrieve tyres")
	}
	return c.JSON(tyres)
}

// HandleCreateTyre adds a tyre line.
func (h *TyreHandler) HandleCreateTyre(c *fiber.Ctx) error {
	var tyre models.TyreProduct
	if ok, err := parseBody(c, h.validate, &tyre); !ok {
		return err
	}

	if err := h.service.CreateTyre(&tyre); err != nil {
		return respondError(c, h.logger, err, "Could not create tyre")
	}
	return c.Status(fiber.StatusCreated).JSON(tyre)
}

// HandleUpdateTyre replaces a tyre line.
func (h *TyreHandler) HandleUpdateTyre(c *fiber.Ctx) error {
	id, ok, err := parseID(c)
	if !ok {
		return err
	}
	var tyre models.TyreProduct
	if ok, err := parseBody(c, h.validate, &tyre); !ok {
		return err
	}

	if err := h.service.UpdateTyre(id, &tyre); err != nil {
		return respondError(c, h.logger, err, "Could not update tyre")
	}
	return c.JSON(tyre)
}

// HandleDeleteTyre removes a tyre line.
func (h *TyreHandler) HandleDeleteTyre(c *fiber.Ctx) error {
	id, ok, err := parseID(c)
	if !ok {
		return err
	}

	if err := h.service.DeleteTyre(id); err != nil {
		return respondError(c, h.logger, err, "Could not delete tyre")
	}
	return success(c)
}

// HandleAdjustStock applies a stock delta and returns the updated tyre.
func (h *TyreHandler) HandleAdjustStock(c *fiber.Ctx) error {
	id, ok, err := parseID(c)
	if !ok {
		return err
	}
	var req StockAdjustRequest
	if ok, err := parseBody(c, h.validate, &req); !ok {
		return err
	}

	tyre, err := h.service.AdjustStock(id, req.Delta)
	if err != nil {
		return respondError(c, h.logger, err, "Could not update tyre stock")
	}
	return c.JSON(tyre)
}

// HandleGetBrands lists every tyre brand.
func (h *TyreHandler) HandleGetBrands(c *fiber.Ctx) error {
	brands, err := h.service.GetAllBrands()
	if err != nil {
		return respondError(c, h.logger, err, "Could not retrieve brands")
	}
	return c.JSON(brands)
}

// HandleCreateBrand adds a brand. A duplicate name answers 200 with the same body.
func (h *TyreHandler) HandleCreateBrand(c *fiber.Ctx) error {
	var brand models.TyreBrand
	if ok, err := parseBody(c, h.validate, &brand); !ok {
		return err
	}

	result, err := h.service.CreateBrand(&brand)
	if err != nil {
		return respondError(c, h.logger, err, "Could not create brand")
	}
	if result == repositories.AlreadyExists {
		return c.JSON(brand)
	}
	return c.Status(fiber.StatusCreated).JSON(brand)
}

// HandleDeleteBrand removes a brand by name.
func (h *TyreHandler) HandleDeleteBrand(c *fiber.Ctx) error {
	if err := h.service.DeleteBrand(c.Params("name")); err != nil {
		return respondError(c, h.logger, err, "Could not delete brand")
	}
	return success(c)
}
