package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/maintkit/ledgerpost/internal/apperrors"
	"github.com/maintkit/ledgerpost/internal/core/domain"
	portssvc "github.com/maintkit/ledgerpost/internal/core/ports/services"
	"github.com/maintkit/ledgerpost/internal/core/services"
	"github.com/maintkit/ledgerpost/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MovementServiceTestSuite struct {
	suite.Suite
	mockMovementRepo *MockMovementRepository
	mockMasterData   *MockMasterDataRepository
	hook             *RecordingMovementHook
	service          portssvc.MovementSvcFacade

	tenantID string
	testReq  dto.CreateMovementRequest
}

func (suite *MovementServiceTestSuite) SetupTest() {
	suite.mockMovementRepo = new(MockMovementRepository)
	suite.mockMasterData = new(MockMasterDataRepository)
	suite.hook = &RecordingMovementHook{}
	suite.service = services.NewMovementService(suite.mockMovementRepo, suite.mockMasterData,
		services.WithMovementHooks(suite.hook))

	suite.tenantID = "tenant-a"
	suite.testReq = dto.CreateMovementRequest{
		ItemName: "bearing 6204",
		Kind:     "OUT",
		Quantity: decimal.NewFromInt(5),
		UnitCost: decimal.RequireFromString("25.50"),
	}
}

func (suite *MovementServiceTestSuite) expectActiveTenant() {
	suite.mockMasterData.On("FindTenantByID", mock.Anything, suite.tenantID).
		Return(&domain.Tenant{TenantID: suite.tenantID, IsActive: true}, nil)
}

func (suite *MovementServiceTestSuite) TestCreateMovement_Success() {
	ctx := context.Background()
	suite.expectActiveTenant()

	suite.mockMovementRepo.On("SaveMovement", ctx, mock.MatchedBy(func(m domain.StockMovement) bool {
		return m.TenantID == suite.tenantID &&
			m.ItemName == suite.testReq.ItemName &&
			m.Kind == domain.MovementOut &&
			m.MovementID != "" &&
			m.CreatedBy == "user-1"
	})).Return(nil).Once()

	movement, err := suite.service.CreateMovement(ctx, suite.tenantID, suite.testReq, "user-1")

	suite.Require().NoError(err)
	suite.Require().NotNil(movement)
	suite.True(movement.TotalCost().Equal(decimal.RequireFromString("127.50")))
	suite.Require().Len(suite.hook.Movements, 1)
	suite.Equal(movement.MovementID, suite.hook.Movements[0].MovementID)
	suite.mockMovementRepo.AssertExpectations(suite.T())
}

func (suite *MovementServiceTestSuite) TestCreateMovement_InvalidKind() {
	ctx := context.Background()
	req := suite.testReq
	req.Kind = "TELEPORT"

	movement, err := suite.service.CreateMovement(ctx, suite.tenantID, req, "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(movement)
	suite.Empty(suite.hook.Movements)
	suite.mockMovementRepo.AssertNotCalled(suite.T(), "SaveMovement", mock.Anything, mock.Anything)
}

func (suite *MovementServiceTestSuite) TestCreateMovement_InactiveTenant() {
	ctx := context.Background()
	suite.mockMasterData.On("FindTenantByID", mock.Anything, suite.tenantID).
		Return(&domain.Tenant{TenantID: suite.tenantID, IsActive: false}, nil)

	movement, err := suite.service.CreateMovement(ctx, suite.tenantID, suite.testReq, "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(movement)
	suite.mockMovementRepo.AssertNotCalled(suite.T(), "SaveMovement", mock.Anything, mock.Anything)
}

func (suite *MovementServiceTestSuite) TestCreateMovement_SaveErrorSkipsHooks() {
	ctx := context.Background()
	suite.expectActiveTenant()

	suite.mockMovementRepo.On("SaveMovement", ctx, mock.AnythingOfType("domain.StockMovement")).
		Return(assert.AnError).Once()

	movement, err := suite.service.CreateMovement(ctx, suite.tenantID, suite.testReq, "user-1")

	suite.Require().Error(err)
	suite.Nil(movement)
	suite.Empty(suite.hook.Movements, "hooks must not fire when the primary write fails")
}

func (suite *MovementServiceTestSuite) TestCreateMovement_LedgerOutageDoesNotFailCreate() {
	// Full wiring: the real posting service is the hook and its ledger
	// store is down. The movement create must still succeed.
	ctx := context.Background()
	mockLedger := new(MockLedgerRepository)
	resolver := services.NewResolverService(suite.mockMasterData)
	poster := services.NewPostingService(resolver, mockLedger)
	service := services.NewMovementService(suite.mockMovementRepo, suite.mockMasterData,
		services.WithMovementHooks(poster))

	defaultCC := "cc-default"
	suite.mockMasterData.On("FindTenantByID", mock.Anything, suite.tenantID).
		Return(&domain.Tenant{TenantID: suite.tenantID, CurrencyCode: "EUR", DefaultCostCenterID: &defaultCC, IsActive: true}, nil)
	suite.mockMovementRepo.On("SaveMovement", ctx, mock.AnythingOfType("domain.StockMovement")).
		Return(nil).Once()
	mockLedger.On("GetOrCreateTransaction", ctx, mock.AnythingOfType("domain.LedgerTransaction")).
		Return(nil, false, apperrors.ErrStorageUnavailable).Once()

	movement, err := service.CreateMovement(ctx, suite.tenantID, suite.testReq, "user-1")

	suite.Require().NoError(err)
	suite.Require().NotNil(movement)
	mockLedger.AssertExpectations(suite.T())
}

func (suite *MovementServiceTestSuite) TestCreateMovement_DefaultsOccurredAt() {
	ctx := context.Background()
	suite.expectActiveTenant()
	before := time.Now().UTC()

	suite.mockMovementRepo.On("SaveMovement", ctx, mock.AnythingOfType("domain.StockMovement")).
		Return(nil).Once()

	movement, err := suite.service.CreateMovement(ctx, suite.tenantID, suite.testReq, "user-1")

	suite.Require().NoError(err)
	suite.False(movement.OccurredAt.Before(before))
}

func (suite *MovementServiceTestSuite) TestGetMovementByID_Success() {
	ctx := context.Background()
	expected := &domain.StockMovement{MovementID: "mov-1", TenantID: suite.tenantID}

	suite.mockMovementRepo.On("FindMovementByID", ctx, suite.tenantID, "mov-1").
		Return(expected, nil).Once()

	movement, err := suite.service.GetMovementByID(ctx, suite.tenantID, "mov-1")

	suite.Require().NoError(err)
	suite.Equal(expected, movement)
}

func (suite *MovementServiceTestSuite) TestGetMovementByID_NotFound() {
	ctx := context.Background()

	suite.mockMovementRepo.On("FindMovementByID", ctx, suite.tenantID, "missing").
		Return(nil, apperrors.ErrNotFound).Once()

	movement, err := suite.service.GetMovementByID(ctx, suite.tenantID, "missing")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(movement)
}

func (suite *MovementServiceTestSuite) TestListMovements_AppliesDefaultLimit() {
	ctx := context.Background()
	expected := []domain.StockMovement{{MovementID: "mov-1"}}

	suite.mockMovementRepo.On("ListMovements", ctx, suite.tenantID, 100).
		Return(expected, nil).Once()

	movements, err := suite.service.ListMovements(ctx, suite.tenantID, 0)

	suite.Require().NoError(err)
	suite.Equal(expected, movements)
	suite.mockMovementRepo.AssertExpectations(suite.T())
}

func TestMovementService(t *testing.T) {
	suite.Run(t, new(MovementServiceTestSuite))
}
