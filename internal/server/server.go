package server

import (
	"time"

	"alexis/internal/config"
	"alexis/internal/handlers"
	"alexis/internal/middleware"
	"alexis/internal/repositories"
	"alexis/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// NewApp wires repositories, services and handlers into a Fiber app.
// publisher may be nil, in which case booking notifications are skipped.
func NewApp(cfg *config.Config, db *gorm.DB, publisher services.EventPublisher, logger *zap.Logger) (*fiber.App, *services.AuthService) {
	// --- Repositories ---
	carRepo := repositories.NewGORMCarRepository(db)
	serviceRepo := repositories.NewGORMServiceItemRepository(db)
	bookingRepo := repositories.NewGORMBookingRepository(db)
	tyreRepo := repositories.NewGORMTyreRepository(db)
	brandRepo := repositories.NewGORMBrandRepository(db)
	userRepo := repositories.NewGORMUserRepository(db)
	settingRepo := repositories.NewGORMSettingRepository(db)

	// --- Services ---
	authService := services.NewAuthService(userRepo, []byte(cfg.JWTSecret), cfg.TokenTTL, logger)
	carService := services.NewCarService(carRepo)
	serviceItemService := services.NewServiceItemService(serviceRepo)
	bookingService := services.NewBookingService(bookingRepo, publisher, logger)
	tyreService := services.NewTyreService(tyreRepo, brandRepo, logger)
	settingService := services.NewSettingService(settingRepo)

	// --- Handlers ---
	authHandler := handlers.NewAuthHandler(authService, logger)
	carHandler := handlers.NewCarHandler(carService, logger)
	serviceItemHandler := handlers.NewServiceItemHandler(serviceItemService, logger)
	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	tyreHandler := handlers.NewTyreHandler(tyreService, logger)
	settingHandler := handlers.NewSettingHandler(settingService, logger)

	app := fiber.New(fiber.Config{
		AppName: "alexis",
	})

	// --- Middleware ---
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: func() string { return uuid.New().String() },
	}))
	app.Use(fiberlogger.New()) // Request logger
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Alexis Autos API is running"})
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		status := "healthy"
		code := fiber.StatusOK
		if sqlDB, err := db.DB(); err != nil || sqlDB.Ping() != nil {
			status = "degraded"
			code = fiber.StatusServiceUnavailable
		}
		return c.Status(code).JSON(fiber.Map{
			"status":    status,
			"time":      time.Now().Format(time.RFC3339),
			"messaging": publisher != nil,
		})
	})

	// --- API Routes ---
	api := app.Group("/api")
	auth := middleware.AuthRequired(authService, logger)

	authHandler.RegisterRoutes(api, auth)
	carHandler.RegisterRoutes(api, auth)
	serviceItemHandler.RegisterRoutes(api, auth)
	bookingHandler.RegisterRoutes(api, auth)
	tyreHandler.RegisterRoutes(api, auth)
	settingHandler.RegisterRoutes(api, auth)

	return app, authService
}
