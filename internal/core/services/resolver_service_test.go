package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/maintkit/ledgerpost/internal/apperrors"
	"github.com/maintkit/ledgerpost/internal/core/domain"
	portssvc "github.com/maintkit/ledgerpost/internal/core/ports/services"
	"github.com/maintkit/ledgerpost/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ResolverServiceTestSuite struct {
	suite.Suite
	mockMasterData *MockMasterDataRepository
	service        portssvc.ResolverSvc

	tenantID     string
	defaultCCID  string
	workOrderID  string
	assetID      string
	workOrderCC  string
	assetCC      string
	testMovement domain.StockMovement
}

func (suite *ResolverServiceTestSuite) SetupTest() {
	suite.mockMasterData = new(MockMasterDataRepository)
	suite.service = services.NewResolverService(suite.mockMasterData)

	suite.tenantID = "tenant-a"
	suite.defaultCCID = "cc-default"
	suite.workOrderID = "wo-1"
	suite.assetID = "asset-1"
	suite.workOrderCC = "cc-workorder"
	suite.assetCC = "cc-asset"

	suite.testMovement = domain.StockMovement{
		MovementID: "mov-1",
		TenantID:   suite.tenantID,
		ItemName:   "bearing 6204",
		Kind:       domain.MovementOut,
		Quantity:   decimal.NewFromInt(5),
		UnitCost:   decimal.RequireFromString("25.50"),
		OccurredAt: time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC),
	}
}

func (suite *ResolverServiceTestSuite) expectTenant() {
	tenant := &domain.Tenant{
		TenantID:            suite.tenantID,
		CurrencyCode:        "EUR",
		DefaultCostCenterID: &suite.defaultCCID,
		IsActive:            true,
	}
	suite.mockMasterData.On("FindTenantByID", mock.Anything, suite.tenantID).Return(tenant, nil)
}

// --- Movement qualification ---

func (suite *ResolverServiceTestSuite) TestResolveMovement_OutQualifies() {
	ctx := context.Background()
	suite.expectTenant()

	draft, err := suite.service.Resolve(ctx, domain.StockMovementEvent{Movement: suite.testMovement})

	suite.Require().NoError(err)
	suite.Require().NotNil(draft)
	suite.True(draft.Amount.Equal(decimal.RequireFromString("127.50")), "5 x 25.50 must be exactly 127.50, got %s", draft.Amount)
	suite.Equal(domain.CategoryParts, draft.Category)
	suite.Equal(suite.defaultCCID, draft.CostCenterID)
	suite.Equal("EUR", draft.CurrencyCode)
	suite.Equal("2025-03", draft.BudgetMonth)
	suite.Equal("mov-1", draft.Metadata["movement_id"])
	suite.mockMasterData.AssertExpectations(suite.T())
}

func (suite *ResolverServiceTestSuite) TestResolveMovement_AdjustmentQualifies() {
	ctx := context.Background()
	suite.expectTenant()
	movement := suite.testMovement
	movement.Kind = domain.MovementAdjustment

	draft, err := suite.service.Resolve(ctx, domain.StockMovementEvent{Movement: movement})

	suite.Require().NoError(err)
	suite.Require().NotNil(draft)
}

func (suite *ResolverServiceTestSuite) TestResolveMovement_NonConsumingKindsSkip() {
	ctx := context.Background()
	for _, kind := range []domain.MovementKind{domain.MovementIn, domain.MovementReturn, domain.MovementTransfer} {
		movement := suite.testMovement
		movement.Kind = kind

		draft, err := suite.service.Resolve(ctx, domain.StockMovementEvent{Movement: movement})

		suite.Require().NoError(err, "kind %s", kind)
		suite.Nil(draft, "kind %s must not qualify", kind)
	}
	// No master data lookups happen for non-qualifying kinds.
	suite.mockMasterData.AssertNotCalled(suite.T(), "FindTenantByID", mock.Anything, mock.Anything)
}

func (suite *ResolverServiceTestSuite) TestResolveMovement_ZeroAmountSkips() {
	ctx := context.Background()
	movement := suite.testMovement
	movement.UnitCost = decimal.Zero

	draft, err := suite.service.Resolve(ctx, domain.StockMovementEvent{Movement: movement})

	suite.Require().NoError(err)
	suite.Nil(draft)
}

func (suite *ResolverServiceTestSuite) TestResolveMovement_NegativeAmountPosts() {
	ctx := context.Background()
	suite.expectTenant()
	movement := suite.testMovement
	movement.Kind = domain.MovementAdjustment
	movement.Quantity = decimal.NewFromInt(-2)

	draft, err := suite.service.Resolve(ctx, domain.StockMovementEvent{Movement: movement})

	suite.Require().NoError(err)
	suite.Require().NotNil(draft)
	suite.True(draft.Amount.IsNegative())
	suite.True(draft.Amount.Equal(decimal.RequireFromString("-51.00")))
}

// --- Cost center fallback chain ---

func (suite *ResolverServiceTestSuite) TestResolveMovement_WorkOrderCostCenterWins() {
	ctx := context.Background()
	suite.expectTenant()
	movement := suite.testMovement
	movement.WorkOrderID = &suite.workOrderID
	movement.AssetID = &suite.assetID

	suite.mockMasterData.On("FindWorkOrderByID", mock.Anything, suite.tenantID, suite.workOrderID).
		Return(&domain.WorkOrder{WorkOrderID: suite.workOrderID, CostCenterID: &suite.workOrderCC}, nil).Once()

	draft, err := suite.service.Resolve(ctx, domain.StockMovementEvent{Movement: movement})

	suite.Require().NoError(err)
	suite.Require().NotNil(draft)
	suite.Equal(suite.workOrderCC, draft.CostCenterID)
	// The asset is never consulted once the work order resolves.
	suite.mockMasterData.AssertNotCalled(suite.T(), "FindAssetByID", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ResolverServiceTestSuite) TestResolveMovement_AssetCostCenterSecond() {
	ctx := context.Background()
	suite.expectTenant()
	movement := suite.testMovement
	movement.WorkOrderID = &suite.workOrderID
	movement.AssetID = &suite.assetID

	// Work order exists but has no cost center.
	suite.mockMasterData.On("FindWorkOrderByID", mock.Anything, suite.tenantID, suite.workOrderID).
		Return(&domain.WorkOrder{WorkOrderID: suite.workOrderID}, nil).Once()
	suite.mockMasterData.On("FindAssetByID", mock.Anything, suite.tenantID, suite.assetID).
		Return(&domain.Asset{AssetID: suite.assetID, CostCenterID: &suite.assetCC}, nil).Once()

	draft, err := suite.service.Resolve(ctx, domain.StockMovementEvent{Movement: movement})

	suite.Require().NoError(err)
	suite.Require().NotNil(draft)
	suite.Equal(suite.assetCC, draft.CostCenterID)
}

func (suite *ResolverServiceTestSuite) TestResolveMovement_TenantDefaultLast() {
	ctx := context.Background()
	suite.expectTenant()
	movement := suite.testMovement
	movement.WorkOrderID = &suite.workOrderID
	movement.AssetID = &suite.assetID

	suite.mockMasterData.On("FindWorkOrderByID", mock.Anything, suite.tenantID, suite.workOrderID).
		Return(&domain.WorkOrder{WorkOrderID: suite.workOrderID}, nil).Once()
	suite.mockMasterData.On("FindAssetByID", mock.Anything, suite.tenantID, suite.assetID).
		Return(&domain.Asset{AssetID: suite.assetID}, nil).Once()

	draft, err := suite.service.Resolve(ctx, domain.StockMovementEvent{Movement: movement})

	suite.Require().NoError(err)
	suite.Require().NotNil(draft)
	suite.Equal(suite.defaultCCID, draft.CostCenterID)
}

func (suite *ResolverServiceTestSuite) TestResolveMovement_DanglingWorkOrderContinues() {
	ctx := context.Background()
	suite.expectTenant()
	movement := suite.testMovement
	movement.WorkOrderID = &suite.workOrderID

	suite.mockMasterData.On("FindWorkOrderByID", mock.Anything, suite.tenantID, suite.workOrderID).
		Return(nil, apperrors.ErrNotFound).Once()

	draft, err := suite.service.Resolve(ctx, domain.StockMovementEvent{Movement: movement})

	suite.Require().NoError(err)
	suite.Require().NotNil(draft)
	suite.Equal(suite.defaultCCID, draft.CostCenterID)
}

func (suite *ResolverServiceTestSuite) TestResolveMovement_UnresolvedCostCenter() {
	ctx := context.Background()
	tenant := &domain.Tenant{TenantID: suite.tenantID, CurrencyCode: "EUR", IsActive: true}
	suite.mockMasterData.On("FindTenantByID", mock.Anything, suite.tenantID).Return(tenant, nil)

	draft, err := suite.service.Resolve(ctx, domain.StockMovementEvent{Movement: suite.testMovement})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnresolvedCostCenter)
	suite.Nil(draft)
}

func (suite *ResolverServiceTestSuite) TestResolveMovement_WorkOrderLookupFailurePropagates() {
	ctx := context.Background()
	suite.expectTenant()
	movement := suite.testMovement
	movement.WorkOrderID = &suite.workOrderID
	expectedErr := assert.AnError

	suite.mockMasterData.On("FindWorkOrderByID", mock.Anything, suite.tenantID, suite.workOrderID).
		Return(nil, expectedErr).Once()

	draft, err := suite.service.Resolve(ctx, domain.StockMovementEvent{Movement: movement})

	suite.Require().Error(err)
	suite.ErrorIs(err, expectedErr)
	suite.NotErrorIs(err, apperrors.ErrUnresolvedCostCenter)
	suite.Nil(draft)
}

// --- Commitment qualification ---

func (suite *ResolverServiceTestSuite) approvedCommitment() domain.Commitment {
	approvedBy := "approver-1"
	approvedAt := time.Date(2025, 4, 2, 9, 30, 0, 0, time.UTC)
	return domain.Commitment{
		CommitmentID: "com-1",
		TenantID:     suite.tenantID,
		Description:  "annual crane inspection",
		Amount:       decimal.RequireFromString("1800.00"),
		CurrencyCode: "EUR",
		BudgetMonth:  "2025-04",
		Category:     domain.CategoryThirdParty,
		CostCenterID: "cc-site-2",
		Status:       domain.CommitmentApproved,
		ApprovedBy:   &approvedBy,
		ApprovedAt:   &approvedAt,
	}
}

func (suite *ResolverServiceTestSuite) TestResolveCommitment_ApprovedQualifies() {
	ctx := context.Background()
	commitment := suite.approvedCommitment()

	draft, err := suite.service.Resolve(ctx, domain.CommitmentApprovedEvent{Commitment: commitment})

	suite.Require().NoError(err)
	suite.Require().NotNil(draft)
	suite.True(draft.Amount.Equal(commitment.Amount))
	suite.Equal(domain.CategoryThirdParty, draft.Category)
	suite.Equal("cc-site-2", draft.CostCenterID)
	suite.Equal("2025-04", draft.BudgetMonth)
	suite.Equal(*commitment.ApprovedAt, draft.OccurredAt)
	suite.Equal("approver-1", draft.Metadata["approved_by"])
}

func (suite *ResolverServiceTestSuite) TestResolveCommitment_NonApprovedSkips() {
	ctx := context.Background()
	for _, status := range []domain.CommitmentStatus{domain.CommitmentDraft, domain.CommitmentSubmitted, domain.CommitmentRejected, domain.CommitmentCancelled} {
		commitment := suite.approvedCommitment()
		commitment.Status = status

		draft, err := suite.service.Resolve(ctx, domain.CommitmentApprovedEvent{Commitment: commitment})

		suite.Require().NoError(err, "status %s", status)
		suite.Nil(draft, "status %s must not qualify", status)
	}
}

func (suite *ResolverServiceTestSuite) TestResolveCommitment_ZeroAmountSkips() {
	ctx := context.Background()
	commitment := suite.approvedCommitment()
	commitment.Amount = decimal.Zero

	draft, err := suite.service.Resolve(ctx, domain.CommitmentApprovedEvent{Commitment: commitment})

	suite.Require().NoError(err)
	suite.Nil(draft)
}

func (suite *ResolverServiceTestSuite) TestResolveCommitment_FallsBackToTenantDefault() {
	ctx := context.Background()
	suite.expectTenant()
	commitment := suite.approvedCommitment()
	commitment.CostCenterID = ""

	draft, err := suite.service.Resolve(ctx, domain.CommitmentApprovedEvent{Commitment: commitment})

	suite.Require().NoError(err)
	suite.Require().NotNil(draft)
	suite.Equal(suite.defaultCCID, draft.CostCenterID)
}

func (suite *ResolverServiceTestSuite) TestResolveCommitment_UnresolvedWithoutDefault() {
	ctx := context.Background()
	tenant := &domain.Tenant{TenantID: suite.tenantID, CurrencyCode: "EUR", IsActive: true}
	suite.mockMasterData.On("FindTenantByID", mock.Anything, suite.tenantID).Return(tenant, nil)
	commitment := suite.approvedCommitment()
	commitment.CostCenterID = ""

	draft, err := suite.service.Resolve(ctx, domain.CommitmentApprovedEvent{Commitment: commitment})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnresolvedCostCenter)
	suite.Nil(draft)
}

func TestResolverService(t *testing.T) {
	suite.Run(t, new(ResolverServiceTestSuite))
}
