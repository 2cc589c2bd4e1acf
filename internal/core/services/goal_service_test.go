package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/kieltransportes011-pixel/controlfretev1-sub001/internal/apperrors"
	"github.com/kieltransportes011-pixel/controlfretev1-sub001/internal/core/domain"
	portssvc "github.com/kieltransportes011-pixel/controlfretev1-sub001/internal/core/ports/services"
	"github.com/kieltransportes011-pixel/controlfretev1-sub001/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type GoalServiceTestSuite struct {
	suite.Suite
	mockFreightRepo  *MockFreightRepository
	mockSettingsRepo *MockSettingsRepository
	service          portssvc.GoalSvcFacade
	ctx              context.Context
	userID           string
	now              time.Time
}

func (suite *GoalServiceTestSuite) SetupTest() {
	suite.mockFreightRepo = new(MockFreightRepository)
	suite.mockSettingsRepo = new(MockSettingsRepository)
	suite.now = time.Date(2024, time.July, 15, 10, 0, 0, 0, time.Local)
	suite.service = services.NewGoalService(suite.mockFreightRepo, suite.mockSettingsRepo,
		services.WithGoalClock(func() time.Time { return suite.now }),
	)
	suite.ctx = context.Background()
	suite.userID = "user-123"
}

func (suite *GoalServiceTestSuite) TestGetGoalSummary() {
	settings := &domain.Settings{MonthlyGoal: dec("1000")}
	suite.mockSettingsRepo.On("FindSettingsByOwner", suite.ctx, suite.userID).
		Return(settings, nil).Once()

	// The read window spans the six history months plus the current one.
	from := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.Local)
	to := time.Date(2024, time.August, 1, 0, 0, 0, 0, time.Local)
	freights := []domain.Freight{
		{FreightDate: time.Date(2024, time.July, 10, 12, 0, 0, 0, time.Local), TotalValue: dec("400")},
		{FreightDate: time.Date(2024, time.June, 20, 12, 0, 0, 0, time.Local), TotalValue: dec("800")},
	}
	suite.mockFreightRepo.On("ListFreightsInRange", suite.ctx, suite.userID, from, to).
		Return(freights, nil).Once()

	snapshots := []domain.GoalHistoryEntry{{Month: "2024-06", Goal: dec("1000")}}
	suite.mockSettingsRepo.On("ListGoalHistory", suite.ctx, suite.userID).
		Return(snapshots, nil).Once()

	progress, history, err := suite.service.GetGoalSummary(suite.ctx, suite.userID)
	require.NoError(suite.T(), err)

	assert.True(suite.T(), progress.Goal.Equal(dec("1000")))
	assert.True(suite.T(), progress.MonthTotal.Equal(dec("400")))
	assert.True(suite.T(), progress.Remaining.Equal(dec("600")))

	require.Len(suite.T(), history, 1)
	assert.Equal(suite.T(), "2024-06", history[0].Month)
	assert.True(suite.T(), history[0].Achieved.Equal(dec("800")))
	assert.False(suite.T(), history[0].Success)

	suite.mockFreightRepo.AssertExpectations(suite.T())
	suite.mockSettingsRepo.AssertExpectations(suite.T())
}

func (suite *GoalServiceTestSuite) TestGetGoalSummaryWithoutSettings() {
	suite.mockSettingsRepo.On("FindSettingsByOwner", suite.ctx, suite.userID).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockFreightRepo.On("ListFreightsInRange", suite.ctx, suite.userID, mock.Anything, mock.Anything).
		Return([]domain.Freight{}, nil).Once()
	suite.mockSettingsRepo.On("ListGoalHistory", suite.ctx, suite.userID).
		Return([]domain.GoalHistoryEntry{}, nil).Once()

	progress, history, err := suite.service.GetGoalSummary(suite.ctx, suite.userID)
	require.NoError(suite.T(), err)
	assert.True(suite.T(), progress.Goal.IsZero())
	assert.True(suite.T(), progress.Percent.IsZero())
	assert.Empty(suite.T(), history)
}

func (suite *GoalServiceTestSuite) TestSnapshotGoalRejectsBadMonth() {
	_, err := suite.service.SnapshotGoal(suite.ctx, suite.userID, "2024/06")
	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
	suite.mockSettingsRepo.AssertNotCalled(suite.T(), "SaveGoalHistoryEntry", mock.Anything, mock.Anything)
}

func (suite *GoalServiceTestSuite) TestSnapshotGoalCreatesEntry() {
	settings := &domain.Settings{MonthlyGoal: dec("1500")}
	suite.mockSettingsRepo.On("FindSettingsByOwner", suite.ctx, suite.userID).
		Return(settings, nil).Once()
	suite.mockSettingsRepo.On("FindGoalHistoryByMonth", suite.ctx, suite.userID, "2024-06").
		Return(nil, apperrors.ErrNotFound).Once()

	var saved domain.GoalHistoryEntry
	suite.mockSettingsRepo.On("SaveGoalHistoryEntry", suite.ctx, mock.AnythingOfType("domain.GoalHistoryEntry")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.GoalHistoryEntry)
		}).Return(nil).Once()

	entry, err := suite.service.SnapshotGoal(suite.ctx, suite.userID, "2024-06")
	require.NoError(suite.T(), err)
	assert.NotEmpty(suite.T(), entry.EntryID)
	assert.Equal(suite.T(), "2024-06", entry.Month)
	assert.True(suite.T(), entry.Goal.Equal(dec("1500")))
	assert.Equal(suite.T(), entry.EntryID, saved.EntryID)
	suite.mockSettingsRepo.AssertExpectations(suite.T())
}

func (suite *GoalServiceTestSuite) TestSnapshotGoalReplacesExistingEntry() {
	settings := &domain.Settings{MonthlyGoal: dec("2000")}
	suite.mockSettingsRepo.On("FindSettingsByOwner", suite.ctx, suite.userID).
		Return(settings, nil).Once()

	existing := &domain.GoalHistoryEntry{
		EntryID:     "entry-1",
		OwnerUserID: suite.userID,
		Month:       "2024-06",
		Goal:        dec("1500"),
	}
	suite.mockSettingsRepo.On("FindGoalHistoryByMonth", suite.ctx, suite.userID, "2024-06").
		Return(existing, nil).Once()

	var saved domain.GoalHistoryEntry
	suite.mockSettingsRepo.On("SaveGoalHistoryEntry", suite.ctx, mock.AnythingOfType("domain.GoalHistoryEntry")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.GoalHistoryEntry)
		}).Return(nil).Once()

	entry, err := suite.service.SnapshotGoal(suite.ctx, suite.userID, "2024-06")
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "entry-1", entry.EntryID)
	assert.True(suite.T(), saved.Goal.Equal(dec("2000")))
	suite.mockSettingsRepo.AssertExpectations(suite.T())
}

func (suite *GoalServiceTestSuite) TestDeleteGoalHistoryEntry() {
	snapshots := []domain.GoalHistoryEntry{{EntryID: "entry-1", OwnerUserID: suite.userID}}
	suite.mockSettingsRepo.On("ListGoalHistory", suite.ctx, suite.userID).
		Return(snapshots, nil).Once()
	suite.mockSettingsRepo.On("DeleteGoalHistoryEntry", suite.ctx, "entry-1").
		Return(nil).Once()

	err := suite.service.DeleteGoalHistoryEntry(suite.ctx, "entry-1", suite.userID)
	require.NoError(suite.T(), err)
	suite.mockSettingsRepo.AssertExpectations(suite.T())
}

func (suite *GoalServiceTestSuite) TestDeleteGoalHistoryEntryNotOwned() {
	suite.mockSettingsRepo.On("ListGoalHistory", suite.ctx, suite.userID).
		Return([]domain.GoalHistoryEntry{}, nil).Once()

	err := suite.service.DeleteGoalHistoryEntry(suite.ctx, "entry-9", suite.userID)
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotFound)
	suite.mockSettingsRepo.AssertNotCalled(suite.T(), "DeleteGoalHistoryEntry", mock.Anything, mock.Anything)
}

func TestGoalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(GoalServiceTestSuite))
}
