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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type OFretejaServiceTestSuite struct {
	suite.Suite
	mockRepo        *MockOFretejaRepository
	mockFreightRepo *MockFreightRepository
	service         portssvc.OFretejaSvcFacade
	ctx             context.Context
	userID          string
}

func (suite *OFretejaServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockOFretejaRepository)
	suite.mockFreightRepo = new(MockFreightRepository)
	suite.service = services.NewOFretejaService(suite.mockRepo, suite.mockFreightRepo)
	suite.ctx = context.Background()
	suite.userID = "user-123"
}

func (suite *OFretejaServiceTestSuite) approvedRequest() *domain.OFretejaFreight {
	return &domain.OFretejaFreight{
		RequestID:          "req-1",
		OwnerUserID:        suite.userID,
		Status:             domain.OFretejaApproved,
		RequesterName:      "Transportadora XYZ",
		PickupDate:         time.Date(2024, time.March, 10, 12, 0, 0, 0, time.Local),
		ProposedValue:      dec("1000"),
		OriginAddress:      "Sao Paulo, SP",
		DestinationAddress: "Curitiba, PR",
		CargoDescription:   "Paletes de bebidas",
	}
}

func (suite *OFretejaServiceTestSuite) TestCreateRequestStartsInReview() {
	req := dto.CreateOFretejaRequest{
		ExternalRef:        "OF-2024-001",
		RequesterName:      "Transportadora XYZ",
		PickupDate:         "2024-03-10",
		ProposedValue:      dec("1000"),
		OriginAddress:      "Sao Paulo, SP",
		DestinationAddress: "Curitiba, PR",
	}

	var saved domain.OFretejaFreight
	suite.mockRepo.On("SaveRequest", suite.ctx, mock.AnythingOfType("domain.OFretejaFreight")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.OFretejaFreight)
		}).Return(nil).Once()

	request, err := suite.service.CreateRequest(suite.ctx, req, suite.userID)
	require.NoError(suite.T(), err)
	assert.NotEmpty(suite.T(), request.RequestID)
	assert.Equal(suite.T(), domain.OFretejaAwaitingReview, request.Status)
	assert.Equal(suite.T(), domain.OFretejaAwaitingReview, saved.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *OFretejaServiceTestSuite) TestCreateRequestRejectsNonPositiveValue() {
	req := dto.CreateOFretejaRequest{PickupDate: "2024-03-10", ProposedValue: dec("0")}

	_, err := suite.service.CreateRequest(suite.ctx, req, suite.userID)
	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveRequest", mock.Anything, mock.Anything)
}

func (suite *OFretejaServiceTestSuite) TestTransitionRequest() {
	request := suite.approvedRequest()
	request.Status = domain.OFretejaAwaitingReview
	suite.mockRepo.On("FindRequestByID", suite.ctx, "req-1").
		Return(request, nil).Once()
	suite.mockRepo.On("UpdateRequest", suite.ctx, mock.AnythingOfType("domain.OFretejaFreight")).
		Return(nil).Once()

	updated, err := suite.service.TransitionRequest(suite.ctx, "req-1", domain.OFretejaAwaitingApproval, suite.userID)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), domain.OFretejaAwaitingApproval, updated.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *OFretejaServiceTestSuite) TestTransitionRequestRejectsIllegalMove() {
	request := suite.approvedRequest()
	request.Status = domain.OFretejaAwaitingReview
	suite.mockRepo.On("FindRequestByID", suite.ctx, "req-1").
		Return(request, nil).Once()

	_, err := suite.service.TransitionRequest(suite.ctx, "req-1", domain.OFretejaImported, suite.userID)
	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateRequest", mock.Anything, mock.Anything)
}

func (suite *OFretejaServiceTestSuite) TestTransitionRequestHidesOtherOwners() {
	request := suite.approvedRequest()
	request.OwnerUserID = "someone-else"
	suite.mockRepo.On("FindRequestByID", suite.ctx, "req-1").
		Return(request, nil).Once()

	_, err := suite.service.TransitionRequest(suite.ctx, "req-1", domain.OFretejaCancelled, suite.userID)
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotFound)
}

func (suite *OFretejaServiceTestSuite) TestImportRequest() {
	request := suite.approvedRequest()
	suite.mockRepo.On("FindRequestByID", suite.ctx, "req-1").
		Return(request, nil).Once()

	var savedFreight domain.Freight
	suite.mockFreightRepo.On("SaveFreight", suite.ctx, mock.AnythingOfType("domain.Freight")).
		Run(func(args mock.Arguments) {
			savedFreight = args.Get(1).(domain.Freight)
		}).Return(nil).Once()

	var updatedRequest domain.OFretejaFreight
	suite.mockRepo.On("UpdateRequest", suite.ctx, mock.AnythingOfType("domain.OFretejaFreight")).
		Run(func(args mock.Arguments) {
			updatedRequest = args.Get(1).(domain.OFretejaFreight)
		}).Return(nil).Once()

	req := dto.ImportOFretejaRequest{
		CompanyPercent: dec("50"),
		DriverPercent:  dec("40"),
		ReservePercent: dec("10"),
	}
	freight, err := suite.service.ImportRequest(suite.ctx, "req-1", req, suite.userID)
	require.NoError(suite.T(), err)

	// The freight inherits the request's data and starts unpaid.
	assert.True(suite.T(), freight.TotalValue.Equal(dec("1000")))
	assert.True(suite.T(), freight.CompanyValue.Equal(dec("500")))
	assert.Equal(suite.T(), domain.FreightPending, freight.Status)
	assert.Equal(suite.T(), request.OriginAddress, freight.Origin)
	assert.Equal(suite.T(), request.RequesterName, freight.ClientName)

	assert.Equal(suite.T(), domain.OFretejaImported, updatedRequest.Status)
	assert.Equal(suite.T(), savedFreight.FreightID, updatedRequest.ImportedFreightID)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockFreightRepo.AssertExpectations(suite.T())
}

func (suite *OFretejaServiceTestSuite) TestImportRequestRequiresApprovedStatus() {
	request := suite.approvedRequest()
	request.Status = domain.OFretejaAwaitingApproval
	suite.mockRepo.On("FindRequestByID", suite.ctx, "req-1").
		Return(request, nil).Once()

	req := dto.ImportOFretejaRequest{CompanyPercent: dec("50"), DriverPercent: dec("40"), ReservePercent: dec("10")}
	_, err := suite.service.ImportRequest(suite.ctx, "req-1", req, suite.userID)
	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
	suite.mockFreightRepo.AssertNotCalled(suite.T(), "SaveFreight", mock.Anything, mock.Anything)
}

func TestOFretejaServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OFretejaServiceTestSuite))
}
