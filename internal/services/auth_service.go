package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"alexis/internal/models"
	"alexis/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// DefaultTokenTTL is how long an access token stays valid.
const DefaultTokenTTL = 60 * time.Minute

// Authentication errors. ErrInvalidToken wraps ErrAuthenticationFailed.
var (
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrInvalidToken         = fmt.Errorf("%w: invalid token", ErrAuthenticationFailed)
)

// AuthService hashes passwords, issues bearer tokens and resolves them back
// to admin users.
//
// The signing key is fixed for the lifetime of the service. Replacing it,
// including restarting with a freshly generated key, invalidates every token
// issued before.
type AuthService struct {
	userRepo   repositories.UserRepository
	jwtSecret  []byte
	tokenDurat time.Duration
	logger     *zap.Logger
}

// NewAuthService creates a new AuthService. A non-positive tokenTTL falls back to DefaultTokenTTL.
func NewAuthService(userRepo repositories.UserRepository, jwtSecret []byte, tokenTTL time.Duration, logger *zap.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = DefaultTokenTTL
	}
	return &AuthService{
		userRepo:   userRepo,
		jwtSecret:  jwtSecret,
		tokenDurat: tokenTTL,
		logger:     logger,
	}
}

// HashPassword returns a salted bcrypt hash of the plaintext.
func (s *AuthService) HashPassword(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// CheckPassword reports whether plaintext matches the stored hash.
func (s *AuthService) CheckPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}

// IssueToken signs a token for subject that expires after the configured TTL.
func (s *AuthService) IssueToken(subject string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": subject,
		"iat": now.Unix(),
		"exp": now.Add(s.tokenDurat).Unix(),
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken checks signature and expiry and returns the token subject.
func (s *AuthService) ValidateToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Validate the alg is what we expect:
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", ErrInvalidToken
	}
	// jwt-go skips the expiry check for a non-numeric exp.
	switch claims["exp"].(type) {
	case float64, json.Number:
	case nil:
		return "", fmt.Errorf("%w: missing exp claim", ErrInvalidToken)
	default:
		return "", fmt.Errorf("%w: exp claim is not a number", ErrInvalidToken)
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", fmt.Errorf("%w: missing sub claim", ErrInvalidToken)
	}
	return sub, nil
}

// LoginUser checks the credentials and returns a fresh token.
func (s *AuthService) LoginUser(username, password string) (string, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			return "", err
		}
		// Same answer for unknown users and wrong passwords.
		return "", fmt.Errorf("%w: invalid credentials", ErrAuthenticationFailed)
	}
	if !s.CheckPassword(password, user.Password) {
		return "", fmt.Errorf("%w: invalid credentials", ErrAuthenticationFailed)
	}

	return s.IssueToken(user.Username)
}

// Authenticate resolves a bearer token to the user it was issued for.
// Tokens of deleted users are rejected.
func (s *AuthService) Authenticate(tokenString string) (*models.User, error) {
	username, err := s.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: user %s no longer exists", ErrAuthenticationFailed, username)
		}
		return nil, err
	}
	return user, nil
}

// ListUsers returns every admin account. Password hashes are not serialized.
func (s *AuthService) ListUsers() ([]models.User, error) {
	return s.userRepo.GetAll()
}

// CreateUser hashes the password and stores a new admin account.
func (s *AuthService) CreateUser(username, password string) error {
	hashed, err := s.HashPassword(password)
	if err != nil {
		return err
	}
	if err := s.userRepo.Create(&models.User{Username: username, Password: hashed}); err != nil {
		return err
	}
	s.logger.Info("Admin user created", zap.String("username", username))
	return nil
}

// ChangePassword replaces the password of an existing user.
func (s *AuthService) ChangePassword(username, password string) error {
	hashed, err := s.HashPassword(password)
	if err != nil {
		return err
	}
	if err := s.userRepo.UpdatePassword(username, hashed); err != nil {
		return err
	}
	s.logger.Info("Admin password changed", zap.String("username", username))
	return nil
}

// DeleteUser removes an admin account, revoking its outstanding tokens.
func (s *AuthService) DeleteUser(username string) error {
	if err := s.userRepo.Delete(username); err != nil {
		return err
	}
	s.logger.Info("Admin user deleted", zap.String("username", username))
	return nil
}
