package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/kieltransportes011-pixel/controlfretev1-sub001/internal/apperrors"
	"github.com/kieltransportes011-pixel/controlfretev1-sub001/internal/core/domain"
	portssvc "github.com/kieltransportes011-pixel/controlfretev1-sub001/internal/core/ports/services"
	"github.com/kieltransportes011-pixel/controlfretev1-sub001/internal/core/services"
	"github.com/kieltransportes011-pixel/controlfretev1-sub001/internal/dto"
	"github.com/kieltransportes011-pixel/controlfretev1-sub001/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmailAndCPF(ctx context.Context, email string, cpf string) (*domain.User, error) {
	args := m.Called(ctx, email, cpf)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePasswordHash(ctx context.Context, userID string, passwordHash string, updatedBy string, now time.Time) error {
	args := m.Called(ctx, userID, passwordHash, updatedBy, now)
	return args.Error(0)
}

type UserServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserRepository
	service  portssvc.UserSvcFacade
	ctx      context.Context
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockRepo)
	suite.ctx = context.Background()
}

func (suite *UserServiceTestSuite) TestRegisterUser() {
	req := dto.RegisterRequest{
		Name:     "Maria Silva",
		Email:    "maria@example.com",
		CPF:      "52998224725",
		Password: "correct-horse",
	}
	suite.mockRepo.On("FindUserByEmail", suite.ctx, req.Email).
		Return(nil, apperrors.ErrNotFound).Once()

	var saved domain.User
	suite.mockRepo.On("SaveUser", suite.ctx, mock.AnythingOfType("domain.User")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.User)
		}).Return(nil).Once()

	user, err := suite.service.RegisterUser(suite.ctx, req)
	require.NoError(suite.T(), err)

	assert.NotEmpty(suite.T(), user.UserID)
	assert.Equal(suite.T(), "local", user.AuthProvider)
	assert.True(suite.T(), user.IsActive)

	// The stored credential is a hash of the plaintext, never the plaintext.
	assert.NotEqual(suite.T(), req.Password, saved.PasswordHash)
	assert.True(suite.T(), utils.CheckPasswordHash(req.Password, saved.PasswordHash))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRegisterUserDuplicateEmail() {
	req := dto.RegisterRequest{Name: "Maria", Email: "maria@example.com", CPF: "52998224725", Password: "secret123"}
	existing := &domain.User{UserID: "user-1", Email: req.Email}
	suite.mockRepo.On("FindUserByEmail", suite.ctx, req.Email).
		Return(existing, nil).Once()

	_, err := suite.service.RegisterUser(suite.ctx, req)
	assert.ErrorIs(suite.T(), err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestResetPasswordMismatchIsGeneric() {
	suite.mockRepo.On("FindUserByEmailAndCPF", suite.ctx, "maria@example.com", "00000000000").
		Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.ResetPassword(suite.ctx, "maria@example.com", "00000000000", "new-password")
	require.Error(suite.T(), err)
	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
	// The message never says which of the two fields failed to match.
	assert.NotContains(suite.T(), err.Error(), "email")
	assert.NotContains(suite.T(), err.Error(), "cpf")
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdatePasswordHash",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestResetPasswordWritesOnce() {
	user := &domain.User{UserID: "user-1", Email: "maria@example.com", CPF: "52998224725"}
	suite.mockRepo.On("FindUserByEmailAndCPF", suite.ctx, user.Email, user.CPF).
		Return(user, nil).Once()

	var storedHash string
	suite.mockRepo.On("UpdatePasswordHash", suite.ctx, user.UserID, mock.AnythingOfType("string"), user.UserID, mock.AnythingOfType("time.Time")).
		Run(func(args mock.Arguments) {
			storedHash = args.Get(2).(string)
		}).Return(nil).Once()

	err := suite.service.ResetPassword(suite.ctx, user.Email, user.CPF, "new-password")
	require.NoError(suite.T(), err)
	assert.True(suite.T(), utils.CheckPasswordHash("new-password", storedHash))
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockRepo.AssertNumberOfCalls(suite.T(), "UpdatePasswordHash", 1)
}

func (suite *UserServiceTestSuite) TestGetOrCreateGoogleUserRequiresVerifiedEmail() {
	info := domain.GoogleUserInfo{Email: "maria@example.com", VerifiedEmail: false}

	_, err := suite.service.GetOrCreateGoogleUser(suite.ctx, info)
	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestGetOrCreateGoogleUserFindsExisting() {
	info := domain.GoogleUserInfo{Email: "maria@example.com", VerifiedEmail: true, Name: "Maria"}
	existing := &domain.User{UserID: "user-1", Email: info.Email, AuthProvider: "local"}
	suite.mockRepo.On("FindUserByEmail", suite.ctx, info.Email).
		Return(existing, nil).Once()

	user, err := suite.service.GetOrCreateGoogleUser(suite.ctx, info)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "user-1", user.UserID)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestGetOrCreateGoogleUserProvisions() {
	info := domain.GoogleUserInfo{Email: "maria@example.com", VerifiedEmail: true, Name: "Maria"}
	suite.mockRepo.On("FindUserByEmail", suite.ctx, info.Email).
		Return(nil, apperrors.ErrNotFound).Once()

	var saved domain.User
	suite.mockRepo.On("SaveUser", suite.ctx, mock.AnythingOfType("domain.User")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.User)
		}).Return(nil).Once()

	user, err := suite.service.GetOrCreateGoogleUser(suite.ctx, info)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "google", user.AuthProvider)
	assert.Empty(suite.T(), saved.PasswordHash)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
