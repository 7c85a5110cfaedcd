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

type PostingServiceTestSuite struct {
	suite.Suite
	mockResolver *MockResolver
	mockLedger   *MockLedgerRepository
	service      portssvc.LedgerPosterSvc

	testEvent domain.StockMovementEvent
	testDraft domain.TransactionDraft
}

func (suite *PostingServiceTestSuite) SetupTest() {
	suite.mockResolver = new(MockResolver)
	suite.mockLedger = new(MockLedgerRepository)
	suite.service = services.NewPostingService(suite.mockResolver, suite.mockLedger)

	suite.testEvent = domain.StockMovementEvent{Movement: domain.StockMovement{
		MovementID: "mov-1",
		TenantID:   "tenant-a",
		Kind:       domain.MovementOut,
		OccurredAt: time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC),
	}}
	suite.testDraft = domain.TransactionDraft{
		TenantID:     "tenant-a",
		Amount:       decimal.RequireFromString("127.50"),
		CurrencyCode: "EUR",
		Category:     domain.CategoryParts,
		CostCenterID: "cc-1",
		BudgetMonth:  "2025-03",
		OccurredAt:   suite.testEvent.Movement.OccurredAt,
	}
}

func (suite *PostingServiceTestSuite) TestPostEvent_CreatesTransaction() {
	ctx := context.Background()

	suite.mockResolver.On("Resolve", ctx, suite.testEvent).Return(&suite.testDraft, nil).Once()
	suite.mockLedger.On("GetOrCreateTransaction", ctx, mock.MatchedBy(func(txn domain.LedgerTransaction) bool {
		return txn.IdempotencyKey == "stock_movement:tenant-a:mov-1" &&
			txn.TenantID == "tenant-a" &&
			txn.Amount.Equal(suite.testDraft.Amount) &&
			txn.Category == domain.CategoryParts &&
			txn.TransactionID != ""
	})).Return(&domain.LedgerTransaction{
		TransactionID:  "txn-1",
		TenantID:       "tenant-a",
		IdempotencyKey: "stock_movement:tenant-a:mov-1",
		Amount:         suite.testDraft.Amount,
		Category:       domain.CategoryParts,
	}, true, nil).Once()

	txn, created, err := suite.service.PostEvent(ctx, suite.testEvent)

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.True(created)
	suite.Equal("txn-1", txn.TransactionID)
	suite.mockResolver.AssertExpectations(suite.T())
	suite.mockLedger.AssertExpectations(suite.T())
}

func (suite *PostingServiceTestSuite) TestPostEvent_DuplicateReturnsExisting() {
	ctx := context.Background()
	existing := &domain.LedgerTransaction{
		TransactionID:  "txn-original",
		TenantID:       "tenant-a",
		IdempotencyKey: "stock_movement:tenant-a:mov-1",
		Amount:         suite.testDraft.Amount,
	}

	suite.mockResolver.On("Resolve", ctx, suite.testEvent).Return(&suite.testDraft, nil).Once()
	suite.mockLedger.On("GetOrCreateTransaction", ctx, mock.AnythingOfType("domain.LedgerTransaction")).
		Return(existing, false, nil).Once()

	txn, created, err := suite.service.PostEvent(ctx, suite.testEvent)

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.False(created)
	suite.Equal("txn-original", txn.TransactionID)
	suite.mockLedger.AssertExpectations(suite.T())
}

func (suite *PostingServiceTestSuite) TestPostEvent_UnqualifiedEventSkipsWriter() {
	ctx := context.Background()

	suite.mockResolver.On("Resolve", ctx, suite.testEvent).Return(nil, nil).Once()

	txn, created, err := suite.service.PostEvent(ctx, suite.testEvent)

	suite.Require().NoError(err)
	suite.Nil(txn)
	suite.False(created)
	suite.mockLedger.AssertNotCalled(suite.T(), "GetOrCreateTransaction", mock.Anything, mock.Anything)
}

func (suite *PostingServiceTestSuite) TestPostEvent_MissingIdentity() {
	ctx := context.Background()
	event := domain.StockMovementEvent{Movement: domain.StockMovement{MovementID: "mov-1"}}

	txn, created, err := suite.service.PostEvent(ctx, event)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrMissingIdentity)
	suite.Nil(txn)
	suite.False(created)
	suite.mockResolver.AssertNotCalled(suite.T(), "Resolve", mock.Anything, mock.Anything)
}

func (suite *PostingServiceTestSuite) TestPostEvent_ResolverErrorPropagates() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockResolver.On("Resolve", ctx, suite.testEvent).Return(nil, expectedErr).Once()

	txn, created, err := suite.service.PostEvent(ctx, suite.testEvent)

	suite.Require().Error(err)
	suite.ErrorIs(err, expectedErr)
	suite.Nil(txn)
	suite.False(created)
}

func (suite *PostingServiceTestSuite) TestPostEvent_WriterErrorPropagates() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockResolver.On("Resolve", ctx, suite.testEvent).Return(&suite.testDraft, nil).Once()
	suite.mockLedger.On("GetOrCreateTransaction", ctx, mock.AnythingOfType("domain.LedgerTransaction")).
		Return(nil, false, expectedErr).Once()

	txn, created, err := suite.service.PostEvent(ctx, suite.testEvent)

	suite.Require().Error(err)
	suite.ErrorIs(err, expectedErr)
	suite.Nil(txn)
	suite.False(created)
}

func (suite *PostingServiceTestSuite) TestMovementSavedHook_SuppressesWriterError() {
	ctx := context.Background()

	suite.mockResolver.On("Resolve", ctx, suite.testEvent).Return(&suite.testDraft, nil).Once()
	suite.mockLedger.On("GetOrCreateTransaction", ctx, mock.AnythingOfType("domain.LedgerTransaction")).
		Return(nil, false, assert.AnError).Once()

	// The hook has no error return; a writer outage must not panic or leak.
	suite.service.MovementSaved(ctx, suite.testEvent.Movement)

	suite.mockLedger.AssertExpectations(suite.T())
}

func (suite *PostingServiceTestSuite) TestCommitmentApprovedHook_Posts() {
	ctx := context.Background()
	commitment := domain.Commitment{
		CommitmentID: "com-1",
		TenantID:     "tenant-a",
		Status:       domain.CommitmentApproved,
		Amount:       decimal.RequireFromString("1800.00"),
	}
	event := domain.CommitmentApprovedEvent{Commitment: commitment}
	draft := suite.testDraft
	draft.Category = domain.CategoryThirdParty

	suite.mockResolver.On("Resolve", ctx, event).Return(&draft, nil).Once()
	suite.mockLedger.On("GetOrCreateTransaction", ctx, mock.MatchedBy(func(txn domain.LedgerTransaction) bool {
		return txn.IdempotencyKey == "commitment_approved:tenant-a:com-1"
	})).Return(&domain.LedgerTransaction{TransactionID: "txn-2"}, true, nil).Once()

	suite.service.CommitmentApproved(ctx, commitment)

	suite.mockLedger.AssertExpectations(suite.T())
}

func TestPostingService(t *testing.T) {
	suite.Run(t, new(PostingServiceTestSuite))
}
