package handlers

import (
	"errors"
	"fmt"

	"alexis/internal/repositories"
	"alexis/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// respondError maps core errors to HTTP statuses. message is the
// user-facing summary used for unexpected failures.
func respondError(c *fiber.Ctx, logger *zap.Logger, err error, message string) error {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Resource not found",
			"error":   err.Error(),
		})
	case errors.Is(err, repositories.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": "Resource already exists",
			"error":   err.Error(),
		})
	case errors.Is(err, services.ErrAuthenticationFailed):
		c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Incorrect username or password",
		})
	case errors.Is(err, services.ErrInvalidStatus), errors.Is(err, repositories.ErrInvalidStockDelta):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   err.Error(),
		})
	case errors.Is(err, repositories.ErrStorageUnavailable):
		logger.Error("Storage unavailable", zap.String("path", c.Path()), zap.Error(err))
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"message": "Database structure error",
		})
	default:
		logger.Error(message, zap.String("path", c.Path()), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": message,
			"error":   err.Error(),
		})
	}
}

// parseBody decodes and validates the request body into dst. When it returns
// false the error response has already been written.
func parseBody(c *fiber.Ctx, validate *validator.Validate, dst any) (bool, error) {
	if err := c.BodyParser(dst); err != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := validate.Struct(dst); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return false, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Validation failed",
				"error":   err.Error(),
			})
		}
		errorMessages := make(map[string]string)
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
		return false, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  errorMessages,
		})
	}
	return true, nil
}

// parseID reads the positive integer :id route parameter. When ok is false
// the error response has already been written.
func parseID(c *fiber.Ctx) (id uint, ok bool, err error) {
	n, parseErr := c.ParamsInt("id")
	if parseErr != nil || n <= 0 {
		return 0, false, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": fmt.Sprintf("Invalid ID %q", c.Params("id")),
		})
	}
	return uint(n), true, nil
}

func success(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "success"})
}
