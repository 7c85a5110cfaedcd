package services_test

import (
	"context"
	"time"

	"github.com/maintkit/ledgerpost/internal/core/domain"
	portsrepo "github.com/maintkit/ledgerpost/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock MasterDataRepository ---

type MockMasterDataRepository struct {
	mock.Mock
}

func (m *MockMasterDataRepository) FindTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tenant), args.Error(1)
}

func (m *MockMasterDataRepository) ListTenants(ctx context.Context) ([]domain.Tenant, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Tenant), args.Error(1)
}

func (m *MockMasterDataRepository) SaveTenant(ctx context.Context, tenant domain.Tenant) error {
	args := m.Called(ctx, tenant)
	return args.Error(0)
}

func (m *MockMasterDataRepository) SetDefaultCostCenter(ctx context.Context, tenantID string, costCenterID string, updatedBy string) error {
	args := m.Called(ctx, tenantID, costCenterID, updatedBy)
	return args.Error(0)
}

func (m *MockMasterDataRepository) FindCostCenterByID(ctx context.Context, tenantID string, costCenterID string) (*domain.CostCenter, error) {
	args := m.Called(ctx, tenantID, costCenterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CostCenter), args.Error(1)
}

func (m *MockMasterDataRepository) ListCostCenters(ctx context.Context, tenantID string) ([]domain.CostCenter, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CostCenter), args.Error(1)
}

func (m *MockMasterDataRepository) SaveCostCenter(ctx context.Context, costCenter domain.CostCenter) error {
	args := m.Called(ctx, costCenter)
	return args.Error(0)
}

func (m *MockMasterDataRepository) FindWorkOrderByID(ctx context.Context, tenantID string, workOrderID string) (*domain.WorkOrder, error) {
	args := m.Called(ctx, tenantID, workOrderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkOrder), args.Error(1)
}

func (m *MockMasterDataRepository) SaveWorkOrder(ctx context.Context, workOrder domain.WorkOrder) error {
	args := m.Called(ctx, workOrder)
	return args.Error(0)
}

func (m *MockMasterDataRepository) FindAssetByID(ctx context.Context, tenantID string, assetID string) (*domain.Asset, error) {
	args := m.Called(ctx, tenantID, assetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Asset), args.Error(1)
}

func (m *MockMasterDataRepository) SaveAsset(ctx context.Context, asset domain.Asset) error {
	args := m.Called(ctx, asset)
	return args.Error(0)
}

var _ portsrepo.MasterDataRepositoryFacade = (*MockMasterDataRepository)(nil)

// --- Mock LedgerRepository ---

type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) FindTransactionByKey(ctx context.Context, idempotencyKey string) (*domain.LedgerTransaction, error) {
	args := m.Called(ctx, idempotencyKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerTransaction), args.Error(1)
}

func (m *MockLedgerRepository) ListTransactions(ctx context.Context, tenantID string, filter portsrepo.ListLedgerFilter) ([]domain.LedgerTransaction, error) {
	args := m.Called(ctx, tenantID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerTransaction), args.Error(1)
}

func (m *MockLedgerRepository) SummarizeByCategory(ctx context.Context, tenantID string, budgetMonth string) (map[domain.TransactionCategory]decimal.Decimal, error) {
	args := m.Called(ctx, tenantID, budgetMonth)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[domain.TransactionCategory]decimal.Decimal), args.Error(1)
}

func (m *MockLedgerRepository) GetOrCreateTransaction(ctx context.Context, txn domain.LedgerTransaction) (*domain.LedgerTransaction, bool, error) {
	args := m.Called(ctx, txn)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.LedgerTransaction), args.Bool(1), args.Error(2)
}

var _ portsrepo.LedgerRepositoryFacade = (*MockLedgerRepository)(nil)

// --- Mock MovementRepository ---

type MockMovementRepository struct {
	mock.Mock
}

func (m *MockMovementRepository) FindMovementByID(ctx context.Context, tenantID string, movementID string) (*domain.StockMovement, error) {
	args := m.Called(ctx, tenantID, movementID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StockMovement), args.Error(1)
}

func (m *MockMovementRepository) ListMovements(ctx context.Context, tenantID string, limit int) ([]domain.StockMovement, error) {
	args := m.Called(ctx, tenantID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StockMovement), args.Error(1)
}

func (m *MockMovementRepository) ListMovementsSince(ctx context.Context, tenantID string, since *time.Time, limit int) ([]domain.StockMovement, error) {
	args := m.Called(ctx, tenantID, since, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StockMovement), args.Error(1)
}

func (m *MockMovementRepository) SaveMovement(ctx context.Context, movement domain.StockMovement) error {
	args := m.Called(ctx, movement)
	return args.Error(0)
}

var _ portsrepo.MovementRepositoryFacade = (*MockMovementRepository)(nil)

// --- Mock CommitmentRepository ---

type MockCommitmentRepository struct {
	mock.Mock
}

func (m *MockCommitmentRepository) FindCommitmentByID(ctx context.Context, tenantID string, commitmentID string) (*domain.Commitment, error) {
	args := m.Called(ctx, tenantID, commitmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Commitment), args.Error(1)
}

func (m *MockCommitmentRepository) ListCommitments(ctx context.Context, tenantID string, status *domain.CommitmentStatus, limit int) ([]domain.Commitment, error) {
	args := m.Called(ctx, tenantID, status, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Commitment), args.Error(1)
}

func (m *MockCommitmentRepository) ListApprovedCommitmentsSince(ctx context.Context, tenantID string, since *time.Time, limit int) ([]domain.Commitment, error) {
	args := m.Called(ctx, tenantID, since, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Commitment), args.Error(1)
}

func (m *MockCommitmentRepository) SaveCommitment(ctx context.Context, commitment domain.Commitment) error {
	args := m.Called(ctx, commitment)
	return args.Error(0)
}

func (m *MockCommitmentRepository) UpdateCommitmentStatus(ctx context.Context, commitment domain.Commitment, expected domain.CommitmentStatus) error {
	args := m.Called(ctx, commitment, expected)
	return args.Error(0)
}

var _ portsrepo.CommitmentRepositoryFacade = (*MockCommitmentRepository)(nil)

// --- Mock Resolver ---

type MockResolver struct {
	mock.Mock
}

func (m *MockResolver) Resolve(ctx context.Context, event domain.Event) (*domain.TransactionDraft, error) {
	args := m.Called(ctx, event)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransactionDraft), args.Error(1)
}

// --- Recording hooks ---

// RecordingMovementHook counts hook invocations without side effects.
type RecordingMovementHook struct {
	Movements []domain.StockMovement
}

func (h *RecordingMovementHook) MovementSaved(_ context.Context, movement domain.StockMovement) {
	h.Movements = append(h.Movements, movement)
}

// RecordingCommitmentHook counts hook invocations without side effects.
type RecordingCommitmentHook struct {
	Commitments []domain.Commitment
}

func (h *RecordingCommitmentHook) CommitmentApproved(_ context.Context, commitment domain.Commitment) {
	h.Commitments = append(h.Commitments, commitment)
}
