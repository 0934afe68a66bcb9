package handlers

import (
	"alexis/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AuthHandler handles login and admin account management.
type AuthHandler struct {
	authService *services.AuthService
	validate    *validator.Validate
	logger      *zap.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validate:    validator.New(),
		logger:      logger,
	}
}

// RegisterRoutes registers the login route and the admin user routes.
func (h *AuthHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	router.Post("/login", h.HandleLogin)

	router.Get("/users", auth, h.HandleListUsers)
	router.Post("/users", auth, h.HandleCreateUser)
	router.Put("/users/:username/password", auth, h.HandleChangePassword)
	router.Delete("/users/:username", auth, h.HandleDeleteUser)
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse is returned after a successful login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Username    string `json:"username"`
}

// CreateUserRequest represents the request body for adding an admin.
type CreateUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=100"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// PasswordChangeRequest represents the request body for a password change.
type PasswordChangeRequest struct {
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// HandleLogin exchanges credentials for a bearer token.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if ok, err := parseBody(c, h.validate, &req); !ok {
		return err
	}

	token, err := h.authService.LoginUser(req.Username, req.Password)
	if err != nil {
		h.logger.Info("Login failed", zap.String("username", req.Username), zap.Error(err))
		return respondError(c, h.logger, err, "Could not log in")
	}

	return c.JSON(TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		Username:    req.Username,
	})
}

// HandleListUsers lists admin usernames.
func (h *AuthHandler) HandleListUsers(c *fiber.Ctx) error {
	users, err := h.authService.ListUsers()
	if err != nil {
		return respondError(c, h.logger, err, "Could not retrieve users")
	}
	return c.JSON(users)
}

// HandleCreateUser adds an admin account.
func (h *AuthHandler) HandleCreateUser(c *fiber.Ctx) error {
	var req CreateUserRequest
	if ok, err := parseBody(c, h.validate, &req); !ok {
		return err
	}

	if err := h.authService.CreateUser(req.Username, req.Password); err != nil {
		return respondError(c, h.logger, err, "Could not create user")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"status": "success"})
}

// HandleChangePassword sets a new password for the user in the path.
func (h *AuthHandler) HandleChangePassword(c *fiber.Ctx) error {
	var req PasswordChangeRequest
	if ok, err := parseBody(c, h.validate, &req); !ok {
		return err
	}

	if err := h.authService.ChangePassword(c.Params("username"), req.Password); err != nil {
		return respondError(c, h.logger, err, "Could not change password")
	}
	return success(c)
}

// HandleDeleteUser removes an admin account.
func (h *AuthHandler) HandleDeleteUser(c *fiber.Ctx) error {
	if err := h.authService.DeleteUser(c.Params("username")); err != nil {
		return respondError(c, h.logger, err, "Could not delete user")
	}
	return success(c)
}
