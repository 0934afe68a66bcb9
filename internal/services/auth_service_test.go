package services_test

import (
	"fmt"
	"testing"
	"time"

	"alexis/internal/models"
	"alexis/internal/repositories"
	"alexis/internal/services"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var testJWTSecret = []byte("test_jwt_secret")

func newAuthService(repo repositories.UserRepository) *services.AuthService {
	return services.NewAuthService(repo, testJWTSecret, services.DefaultTokenTTL, zap.NewNop())
}

func TestAuthService_HashAndCheckPassword(t *testing.T) {
	authService := newAuthService(new(MockUserRepository))

	hash, err := authService.HashPassword("password123")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", hash)
	assert.NotContains(t, hash, "password123")

	// Salted: hashing the same password twice gives different strings.
	other, err := authService.HashPassword("password123")
	require.NoError(t, err)
	assert.NotEqual(t, hash, other)

	assert.True(t, authService.CheckPassword("password123", hash))
	assert.True(t, authService.CheckPassword("password123", other))
	assert.False(t, authService.CheckPassword("wrongpassword", hash))
	assert.False(t, authService.CheckPassword("password123", "not-a-hash"))
}

func TestAuthService_LoginUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := newAuthService(mockRepo)

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	user := &models.User{Username: "testuser", Password: string(hashedPassword)}

	// Test successful login
	mockRepo.On("GetByUsername", "testuser").Return(user, nil).Once()
	token, err := authService.LoginUser("testuser", "password123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	parsedToken, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		return testJWTSecret, nil
	})
	require.NoError(t, err)
	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	assert.True(t, ok)
	assert.Equal(t, "testuser", claims["sub"])
	assert.Contains(t, claims, "exp")
	mockRepo.AssertExpectations(t)

	// Test invalid credentials (wrong password)
	mockRepo.On("GetByUsername", "testuser").Return(user, nil).Once()
	_, err = authService.LoginUser("testuser", "wrongpassword")
	assert.ErrorIs(t, err, services.ErrAuthenticationFailed)
	assert.Contains(t, err.Error(), "invalid credentials")
	mockRepo.AssertExpectations(t)

	// Test invalid credentials (user not found)
	mockRepo.On("GetByUsername", "nonexistentuser").
		Return(nil, fmt.Errorf("get user: %w", repositories.ErrNotFound)).Once()
	_, err = authService.LoginUser("nonexistentuser", "password123")
	assert.ErrorIs(t, err, services.ErrAuthenticationFailed)
	assert.Contains(t, err.Error(), "invalid credentials")
	mockRepo.AssertExpectations(t)

	// Storage faults are not disguised as bad credentials
	mockRepo.On("GetByUsername", "testuser").
		Return(nil, fmt.Errorf("get user: %w", repositories.ErrStorageUnavailable)).Once()
	_, err = authService.LoginUser("testuser", "password123")
	assert.ErrorIs(t, err, repositories.ErrStorageUnavailable)
	assert.NotErrorIs(t, err, services.ErrAuthenticationFailed)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_ValidateToken(t *testing.T) {
	authService := newAuthService(new(MockUserRepository))

	// Fresh token verifies
	token, err := authService.IssueToken("testuser")
	require.NoError(t, err)
	subject, err := authService.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "testuser", subject)

	// Malformed token
	_, err = authService.ValidateToken("invalid.token.string")
	assert.ErrorIs(t, err, services.ErrInvalidToken)
	assert.ErrorIs(t, err, services.ErrAuthenticationFailed)

	// Token signed with a different secret
	otherService := services.NewAuthService(new(MockUserRepository), []byte("other_secret"), services.DefaultTokenTTL, zap.NewNop())
	foreignToken, err := otherService.IssueToken("testuser")
	require.NoError(t, err)
	_, err = authService.ValidateToken(foreignToken)
	assert.ErrorIs(t, err, services.ErrInvalidToken)

	// Token without sub claim
	noSub := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	noSubString, _ := noSub.SignedString(testJWTSecret)
	_, err = authService.ValidateToken(noSubString)
	assert.ErrorIs(t, err, services.ErrInvalidToken)

	// Token without expiry
	noExp := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "testuser"})
	noExpString, _ := noExp.SignedString(testJWTSecret)
	_, err = authService.ValidateToken(noExpString)
	assert.ErrorIs(t, err, services.ErrInvalidToken)

	// Token whose expiry is not a number
	textExp := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "testuser", "exp": "never"})
	textExpString, _ := textExp.SignedString(testJWTSecret)
	_, err = authService.ValidateToken(textExpString)
	assert.ErrorIs(t, err, services.ErrInvalidToken)

	// Token using the "none" algorithm
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": "testuser",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	unsignedString, _ := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	_, err = authService.ValidateToken(unsignedString)
	assert.ErrorIs(t, err, services.ErrInvalidToken)
}

func TestAuthService_TokenExpiresAfterTTL(t *testing.T) {
	authService := newAuthService(new(MockUserRepository))

	token, err := authService.IssueToken("testuser")
	require.NoError(t, err)

	_, err = authService.ValidateToken(token)
	require.NoError(t, err)

	// Move the validation clock past the 60 minute lifetime.
	originalTimeFunc := jwt.TimeFunc
	jwt.TimeFunc = func() time.Time { return time.Now().Add(services.DefaultTokenTTL + time.Minute) }
	defer func() { jwt.TimeFunc = originalTimeFunc }()

	_, err = authService.ValidateToken(token)
	assert.ErrorIs(t, err, services.ErrInvalidToken)
}

func TestAuthService_Authenticate(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := newAuthService(mockRepo)
	user := &models.User{Username: "admin", Password: "hash"}

	token, err := authService.IssueToken("admin")
	require.NoError(t, err)

	mockRepo.On("GetByUsername", "admin").Return(user, nil).Once()
	resolved, err := authService.Authenticate(token)
	assert.NoError(t, err)
	assert.Equal(t, "admin", resolved.Username)
	mockRepo.AssertExpectations(t)

	// The user was deleted after the token was issued
	mockRepo.On("GetByUsername", "admin").
		Return(nil, fmt.Errorf("get user: %w", repositories.ErrNotFound)).Once()
	_, err = authService.Authenticate(token)
	assert.ErrorIs(t, err, services.ErrAuthenticationFailed)
	mockRepo.AssertExpectations(t)

	// An invalid token never reaches the repository
	_, err = authService.Authenticate("garbage")
	assert.ErrorIs(t, err, services.ErrInvalidToken)
	mockRepo.AssertNumberOfCalls(t, "GetByUsername", 2)
}

func TestAuthService_CreateUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := newAuthService(mockRepo)

	var stored *models.User
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).
		Run(func(args mock.Arguments) { stored = args.Get(0).(*models.User) }).
		Return(nil).Once()

	err := authService.CreateUser("staff", "s3cret")
	assert.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "staff", stored.Username)
	assert.NotEqual(t, "s3cret", stored.Password)
	assert.True(t, authService.CheckPassword("s3cret", stored.Password))
	mockRepo.AssertExpectations(t)

	// Duplicate username
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).
		Return(fmt.Errorf("create user staff: %w", repositories.ErrConflict)).Once()
	err = authService.CreateUser("staff", "other")
	assert.ErrorIs(t, err, repositories.ErrConflict)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_ChangePasswordAndDelete(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := newAuthService(mockRepo)

	mockRepo.On("UpdatePassword", "admin", mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) {
			assert.True(t, authService.CheckPassword("newpass", args.String(1)))
		}).
		Return(nil).Once()
	assert.NoError(t, authService.ChangePassword("admin", "newpass"))

	mockRepo.On("UpdatePassword", "ghost", mock.AnythingOfType("string")).
		Return(fmt.Errorf("user ghost: %w", repositories.ErrNotFound)).Once()
	assert.ErrorIs(t, authService.ChangePassword("ghost", "newpass"), repositories.ErrNotFound)

	mockRepo.On("Delete", "staff").Return(nil).Once()
	assert.NoError(t, authService.DeleteUser("staff"))

	mockRepo.On("GetAll").Return([]models.User{{Username: "admin"}}, nil).Once()
	users, err := authService.ListUsers()
	assert.NoError(t, err)
	assert.Len(t, users, 1)
	mockRepo.AssertExpectations(t)
}

func TestNewAuthService_DefaultsTokenTTL(t *testing.T) {
	authService := services.NewAuthService(new(MockUserRepository), testJWTSecret, 0, zap.NewNop())

	token, err := authService.IssueToken("admin")
	require.NoError(t, err)
	parsed, err := jwt.Parse(token, func(*jwt.Token) (interface{}, error) { return testJWTSecret, nil })
	require.NoError(t, err)

	exp := int64(parsed.Claims.(jwt.MapClaims)["exp"].(float64))
	assert.InDelta(t, time.Now().Add(services.DefaultTokenTTL).Unix(), exp, 5)
}
