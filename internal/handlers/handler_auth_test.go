package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/kieltransportes011-pixel/controlfretev1-sub001/internal/apperrors"
	"github.com/kieltransportes011-pixel/controlfretev1-sub001/internal/core/domain"
	portssvc "github.com/kieltransportes011-pixel/controlfretev1-sub001/internal/core/ports/services"
	"github.com/kieltransportes011-pixel/controlfretev1-sub001/internal/dto"
	"github.com/kieltransportes011-pixel/controlfretev1-sub001/internal/handlers"
	"github.com/kieltransportes011-pixel/controlfretev1-sub001/internal/platform/config"
	"github.com/kieltransportes011-pixel/controlfretev1-sub001/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) RegisterUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) ResetPassword(ctx context.Context, email string, cpf string, newPassword string) error {
	args := m.Called(ctx, email, cpf, newPassword)
	return args.Error(0)
}

func (m *MockUserService) GetOrCreateGoogleUser(ctx context.Context, info domain.GoogleUserInfo) (*domain.User, error) {
	args := m.Called(ctx, info)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

type AuthHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockUserService *MockUserService
	jwtSecret       string
}

func (suite *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	dto.RegisterCustomValidators()

	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.mockUserService = new(MockUserService)

	cfg := &config.Config{
		JWTSecret:         suite.jwtSecret,
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "test-issuer",
	}
	services := &portssvc.ServiceContainer{User: suite.mockUserService}
	handlers.RegisterAuthRoutes(suite.router, cfg, services)
}

func (suite *AuthHandlerTestSuite) postJSON(path string, body any) *httptest.ResponseRecorder {
	payload, err := json.Marshal(body)
	require.NoError(suite.T(), err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *AuthHandlerTestSuite) TestLogin_Success() {
	hash, err := utils.HashPassword("password123")
	require.NoError(suite.T(), err)
	user := &domain.User{UserID: "user-1", Email: "maria@example.com", PasswordHash: hash}
	suite.mockUserService.On("GetUserByEmail", mock.Anything, user.Email).
		Return(user, nil).Once()

	w := suite.postJSON("/api/v1/auth/login", dto.LoginRequest{Email: user.Email, Password: "password123"})
	require.Equal(suite.T(), http.StatusOK, w.Code)

	var resp dto.LoginResponse
	require.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(suite.T(), resp.Token)

	// The token must carry the user ID as subject and verify with the secret.
	token, err := jwt.ParseWithClaims(resp.Token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		return []byte(suite.jwtSecret), nil
	})
	require.NoError(suite.T(), err)
	claims := token.Claims.(*jwt.RegisteredClaims)
	assert.Equal(suite.T(), "user-1", claims.Subject)
	assert.Equal(suite.T(), "test-issuer", claims.Issuer)
}

func (suite *AuthHandlerTestSuite) TestLogin_WrongPassword() {
	hash, err := utils.HashPassword("password123")
	require.NoError(suite.T(), err)
	user := &domain.User{UserID: "user-1", Email: "maria@example.com", PasswordHash: hash}
	suite.mockUserService.On("GetUserByEmail", mock.Anything, user.Email).
		Return(user, nil).Once()

	w := suite.postJSON("/api/v1/auth/login", dto.LoginRequest{Email: user.Email, Password: "wrong"})
	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "Invalid email or password")
}

func (suite *AuthHandlerTestSuite) TestLogin_UnknownEmail() {
	suite.mockUserService.On("GetUserByEmail", mock.Anything, "nobody@example.com").
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.postJSON("/api/v1/auth/login", dto.LoginRequest{Email: "nobody@example.com", Password: "password123"})
	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
	// Unknown email and wrong password answer identically.
	assert.Contains(suite.T(), w.Body.String(), "Invalid email or password")
}

func (suite *AuthHandlerTestSuite) TestResetPassword_Success() {
	suite.mockUserService.On("ResetPassword", mock.Anything, "maria@example.com", "52998224725", "new-password").
		Return(nil).Once()

	w := suite.postJSON("/api/v1/auth/reset-password", dto.ResetPasswordRequest{
		Email:    "maria@example.com",
		CPF:      "52998224725",
		Password: "new-password",
	})
	require.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "Password updated successfully")
	suite.mockUserService.AssertExpectations(suite.T())
}

func (suite *AuthHandlerTestSuite) TestResetPassword_MismatchIsGeneric() {
	suite.mockUserService.On("ResetPassword", mock.Anything, "maria@example.com", "00000000000", "new-password").
		Return(apperrors.ErrValidation).Once()

	w := suite.postJSON("/api/v1/auth/reset-password", dto.ResetPasswordRequest{
		Email:    "maria@example.com",
		CPF:      "00000000000",
		Password: "new-password",
	})
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "Could not verify account details")
	// The body never names the field that failed to match.
	assert.NotContains(suite.T(), w.Body.String(), "email")
	assert.NotContains(suite.T(), w.Body.String(), "cpf")
}

func (suite *AuthHandlerTestSuite) TestResetPassword_DownstreamFailurePassesThrough() {
	suite.mockUserService.On("ResetPassword", mock.Anything, "maria@example.com", "52998224725", "new-password").
		Return(errors.New("credential update failed: backend down")).Once()

	w := suite.postJSON("/api/v1/auth/reset-password", dto.ResetPasswordRequest{
		Email:    "maria@example.com",
		CPF:      "52998224725",
		Password: "new-password",
	})
	// A backend failure still answers 400, with the underlying reason in
	// the body rather than a masked message.
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "credential update failed")
}

func (suite *AuthHandlerTestSuite) TestRegister_Duplicate() {
	suite.mockUserService.On("RegisterUser", mock.Anything, mock.AnythingOfType("dto.RegisterRequest")).
		Return(nil, apperrors.ErrDuplicate).Once()

	w := suite.postJSON("/api/v1/auth/register", dto.RegisterRequest{
		Name:     "Maria Silva",
		Email:    "maria@example.com",
		CPF:      "52998224725",
		Password: "password123",
	})
	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

func TestAuthHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}
