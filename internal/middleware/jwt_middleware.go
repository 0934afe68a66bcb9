package middleware

import (
	"errors"
	"strings"

	"alexis/internal/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// UsernameKey is the fiber.Ctx Locals key holding the authenticated username.
const UsernameKey = "username"

// AuthRequired is a Fiber middleware that only lets requests with a valid
// bearer token of an existing user through.
func AuthRequired(authService *services.AuthService, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, errMsg := extractBearerToken(c.Get(fiber.HeaderAuthorization))
		if errMsg != "" {
			return unauthorized(c, errMsg)
		}

		user, err := authService.Authenticate(tokenString)
		if err != nil {
			if !errors.Is(err, services.ErrAuthenticationFailed) {
				logger.Error("Token check failed", zap.Error(err))
				return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
					"message": "Could not verify credentials",
				})
			}
			logger.Debug("JWT validation failed", zap.String("path", c.Path()), zap.Error(err))
			return unauthorized(c, "Invalid or expired token")
		}

		// Store the identity in Fiber context for subsequent handlers
		c.Locals(UsernameKey, user.Username)

		return c.Next()
	}
}

// extractBearerToken returns the token from an Authorization header, or a
// message explaining why the header is unusable.
func extractBearerToken(authHeader string) (string, string) {
	if authHeader == "" {
		return "", "Authorization header is required"
	}

	// Expected format: "Bearer <token>"
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", "Authorization header format must be 'Bearer <token>'"
	}
	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", "Bearer token is empty"
	}
	return token, ""
}

func unauthorized(c *fiber.Ctx, message string) error {
	c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"message": message,
	})
}
