package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/streadway/amqp"
	"go.uber.org/zap"

	"alexis/internal/config"
	"alexis/internal/database"
	"alexis/internal/server"
	"alexis/internal/services"
	"alexis/pkg/logger"
	"alexis/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zapLogger, err := logger.New(cfg.IsDevelopment())
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	if cfg.EphemeralSecret {
		zapLogger.Warn("JWT_SECRET is not set; using a random signing key, every restart invalidates all outstanding tokens")
	}

	// --- Database ---
	db, err := database.Open(cfg)
	if err != nil {
		zapLogger.Fatal("Failed to open database", zap.Error(err))
	}
	if err := database.Bootstrap(db); err != nil {
		zapLogger.Fatal("Failed to bootstrap database", zap.Error(err))
	}

	// --- Messaging (optional) ---
	var publisher services.EventPublisher
	if cfg.RabbitMQURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL}, zapLogger)
		if err != nil {
			zapLogger.Warn("RabbitMQ unavailable, booking notifications disabled", zap.Error(err))
		} else {
			defer mqClient.Close()
			publisher = mqClient

			// Booking notifications are only logged for now.
			consumerErr := mqClient.ConsumeBookingEvents(func(msg amqp.Delivery) error {
				zapLogger.Info("Received booking event",
					zap.String("type", msg.Type),
					zap.Uint64("delivery_tag", msg.DeliveryTag),
					zap.ByteString("body", msg.Body))
				return nil
			})
			if consumerErr != nil {
				zapLogger.Warn("Failed to start RabbitMQ consumer", zap.Error(consumerErr))
			}
		}
	}

	app, authService := server.NewApp(cfg, db, publisher, zapLogger)

	seedOpts := database.SeedOptions{
		AdminUsername: cfg.AdminUsername,
		AdminPassword: cfg.AdminPassword,
	}
	if err := database.Seed(db, seedOpts, authService.HashPassword, zapLogger); err != nil {
		zapLogger.Fatal("Failed to seed database", zap.Error(err))
	}

	// --- Start HTTP Server ---
	zapLogger.Info("Starting server", zap.String("port", cfg.AppPort), zap.String("env", cfg.AppEnv))

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(cfg.AppPort); err != nil {
			zapLogger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		zapLogger.Error("Error during Fiber shutdown", zap.Error(err))
	}

	zapLogger.Info("Server gracefully stopped")
}
