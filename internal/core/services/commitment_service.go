package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/maintkit/ledgerpost/internal/apperrors"
	"github.com/maintkit/ledgerpost/internal/core/domain"
	portsrepo "github.com/maintkit/ledgerpost/internal/core/ports/repositories"
	portssvc "github.com/maintkit/ledgerpost/internal/core/ports/services"
	"github.com/maintkit/ledgerpost/internal/dto"
)

// commitmentService owns the budget commitment lifecycle. The approval
// transition fires the ledger post-commit hooks.
type commitmentService struct {
	BaseService
	commitmentRepo portsrepo.CommitmentRepositoryFacade
	costCenterRepo portsrepo.CostCenterReader
	tenantRepo     portsrepo.TenantReader
	hooks          []portssvc.CommitmentHook
}

// CommitmentServiceOption is a functional option for configuring the commitment service.
type CommitmentServiceOption func(*commitmentService)

// WithCommitmentHooks registers post-commit hooks fired after an approval.
func WithCommitmentHooks(hooks ...portssvc.CommitmentHook) CommitmentServiceOption {
	return func(s *commitmentService) {
		s.hooks = append(s.hooks, hooks...)
	}
}

// NewCommitmentService creates a new commitment service.
func NewCommitmentService(
	commitmentRepo portsrepo.CommitmentRepositoryFacade,
	costCenterRepo portsrepo.CostCenterReader,
	tenantRepo portsrepo.TenantReader,
	options ...CommitmentServiceOption,
) portssvc.CommitmentSvcFacade {
	svc := &commitmentService{
		commitmentRepo: commitmentRepo,
		costCenterRepo: costCenterRepo,
		tenantRepo:     tenantRepo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.CommitmentSvcFacade = (*commitmentService)(nil)

// CreateCommitment persists a new commitment in DRAFT after validating the
// tenant and the referenced cost center.
func (s *commitmentService) CreateCommitment(ctx context.Context, tenantID string, req dto.CreateCommitmentRequest, creatorID string) (*domain.Commitment, error) {
	category := domain.TransactionCategory(req.Category)
	if !category.IsValid() {
		return nil, fmt.Errorf("%w: unknown category %q", apperrors.ErrValidation, req.Category)
	}

	tenant, err := s.tenantRepo.FindTenantByID(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to find tenant %s: %w", tenantID, err)
	}
	if !tenant.IsActive {
		return nil, fmt.Errorf("%w: tenant %s is inactive", apperrors.ErrValidation, tenantID)
	}

	costCenter, err := s.costCenterRepo.FindCostCenterByID(ctx, tenantID, req.CostCenterID)
	if err != nil {
		return nil, fmt.Errorf("failed to find cost center %s: %w", req.CostCenterID, err)
	}
	if !costCenter.IsActive {
		return nil, fmt.Errorf("%w: cost center %s is inactive", apperrors.ErrValidation, req.CostCenterID)
	}

	now := time.Now().UTC()
	commitment := domain.Commitment{
		CommitmentID: uuid.NewString(),
		TenantID:     tenantID,
		Description:  req.Description,
		Amount:       req.Amount,
		CurrencyCode: req.CurrencyCode,
		BudgetMonth:  req.BudgetMonth,
		Category:     category,
		CostCenterID: req.CostCenterID,
		Status:       domain.CommitmentDraft,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorID,
		},
	}

	if err := s.commitmentRepo.SaveCommitment(ctx, commitment); err != nil {
		return nil, fmt.Errorf("failed to save commitment: %w", err)
	}

	return &commitment, nil
}

// SubmitCommitment transitions DRAFT -> SUBMITTED.
func (s *commitmentService) SubmitCommitment(ctx context.Context, tenantID string, commitmentID string, actorID string) (*domain.Commitment, error) {
	return s.transition(ctx, tenantID, commitmentID, domain.CommitmentSubmitted, actorID, nil)
}

// ApproveCommitment transitions SUBMITTED -> APPROVED and fires the
// post-commit ledger hooks. A re-approval attempt fails the transition check
// before any write.
func (s *commitmentService) ApproveCommitment(ctx context.Context, tenantID string, commitmentID string, approverID string) (*domain.Commitment, error) {
	commitment, err := s.transition(ctx, tenantID, commitmentID, domain.CommitmentApproved, approverID, func(c *domain.Commitment) {
		now := time.Now().UTC()
		c.ApprovedBy = &approverID
		c.ApprovedAt = &now
	})
	if err != nil {
		return nil, err
	}

	// The approval is committed; hooks run outside its failure domain.
	for _, hook := range s.hooks {
		hook.CommitmentApproved(ctx, *commitment)
	}

	return commitment, nil
}

// RejectCommitment transitions SUBMITTED -> REJECTED.
func (s *commitmentService) RejectCommitment(ctx context.Context, tenantID string, commitmentID string, actorID string) (*domain.Commitment, error) {
	return s.transition(ctx, tenantID, commitmentID, domain.CommitmentRejected, actorID, nil)
}

// CancelCommitment transitions DRAFT or SUBMITTED -> CANCELLED.
func (s *commitmentService) CancelCommitment(ctx context.Context, tenantID string, commitmentID string, actorID string) (*domain.Commitment, error) {
	return s.transition(ctx, tenantID, commitmentID, domain.CommitmentCancelled, actorID, nil)
}

// transition loads the commitment, checks the status machine, applies the
// optional mutation and persists the change.
func (s *commitmentService) transition(ctx context.Context, tenantID string, commitmentID string, next domain.CommitmentStatus, actorID string, mutate func(*domain.Commitment)) (*domain.Commitment, error) {
	commitment, err := s.commitmentRepo.FindCommitmentByID(ctx, tenantID, commitmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to find commitment %s: %w", commitmentID, err)
	}

	if !commitment.Status.CanTransition(next) {
		return nil, fmt.Errorf("%w: %s -> %s for commitment %s", apperrors.ErrInvalidTransition, commitment.Status, next, commitmentID)
	}

	prev := commitment.Status
	commitment.Status = next
	if mutate != nil {
		mutate(commitment)
	}
	commitment.LastUpdatedAt = time.Now().UTC()
	commitment.LastUpdatedBy = actorID

	if err := s.commitmentRepo.UpdateCommitmentStatus(ctx, *commitment, prev); err != nil {
		return nil, fmt.Errorf("failed to update commitment %s: %w", commitmentID, err)
	}

	return commitment, nil
}

// GetCommitmentByID retrieves a single commitment scoped to its tenant.
func (s *commitmentService) GetCommitmentByID(ctx context.Context, tenantID string, commitmentID string) (*domain.Commitment, error) {
	commitment, err := s.commitmentRepo.FindCommitmentByID(ctx, tenantID, commitmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to find commitment %s: %w", commitmentID, err)
	}
	return commitment, nil
}

// ListCommitments retrieves a tenant's commitments, optionally filtered by status.
func (s *commitmentService) ListCommitments(ctx context.Context, tenantID string, status *domain.CommitmentStatus, limit int) ([]domain.Commitment, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	commitments, err := s.commitmentRepo.ListCommitments(ctx, tenantID, status, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list commitments for tenant %s: %w", tenantID, err)
	}
	return commitments, nil
}
