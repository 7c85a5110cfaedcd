package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/maintkit/ledgerpost/internal/apperrors"
	"github.com/maintkit/ledgerpost/internal/core/domain"
	portsrepo "github.com/maintkit/ledgerpost/internal/core/ports/repositories"
	portssvc "github.com/maintkit/ledgerpost/internal/core/ports/services"
	"github.com/maintkit/ledgerpost/internal/platform/metrics"
)

// postingService is the ledger transaction writer: given a domain event it
// ensures exactly one ledger transaction exists for the event's idempotency
// key. It also implements the two post-commit hooks, which suppress every
// error so the primary domain write is never held hostage by ledger
// availability; gaps are reconciled by the backfill runner.
type postingService struct {
	BaseService
	resolver   portssvc.ResolverSvc
	ledgerRepo portsrepo.LedgerRepositoryFacade
}

// NewPostingService creates a new ledger posting service.
func NewPostingService(resolver portssvc.ResolverSvc, ledgerRepo portsrepo.LedgerRepositoryFacade) portssvc.LedgerPosterSvc {
	return &postingService{resolver: resolver, ledgerRepo: ledgerRepo}
}

var (
	_ portssvc.LedgerPosterSvc = (*postingService)(nil)
	_ portssvc.MovementHook    = (*postingService)(nil)
	_ portssvc.CommitmentHook  = (*postingService)(nil)
)

// PostEvent derives the idempotency key, resolves the event into a draft and
// performs the idempotent get-or-create. Returns the transaction and whether
// this call created it; (nil, false, nil) means the event did not qualify.
func (s *postingService) PostEvent(ctx context.Context, event domain.Event) (*domain.LedgerTransaction, bool, error) {
	kind := string(event.Kind())

	key, err := DeriveIdempotencyKey(event)
	if err != nil {
		metrics.LedgerPosts.WithLabelValues(kind, metrics.ResultUnqualified).Inc()
		return nil, false, err
	}

	draft, err := s.resolver.Resolve(ctx, event)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnresolvedCostCenter) {
			metrics.LedgerPosts.WithLabelValues(kind, metrics.ResultUnqualified).Inc()
		} else {
			metrics.LedgerPosts.WithLabelValues(kind, metrics.ResultFailed).Inc()
		}
		return nil, false, err
	}
	if draft == nil {
		metrics.LedgerPosts.WithLabelValues(kind, metrics.ResultUnqualified).Inc()
		return nil, false, nil
	}

	txn := domain.LedgerTransaction{
		TransactionID:  uuid.NewString(),
		TenantID:       draft.TenantID,
		IdempotencyKey: key,
		Amount:         draft.Amount,
		CurrencyCode:   draft.CurrencyCode,
		Category:       draft.Category,
		CostCenterID:   draft.CostCenterID,
		BudgetMonth:    draft.BudgetMonth,
		OccurredAt:     draft.OccurredAt,
		Metadata:       draft.Metadata,
		CreatedAt:      time.Now().UTC(),
	}

	posted, created, err := s.ledgerRepo.GetOrCreateTransaction(ctx, txn)
	if err != nil {
		metrics.LedgerPosts.WithLabelValues(kind, metrics.ResultFailed).Inc()
		return nil, false, fmt.Errorf("failed to post ledger transaction for key %s: %w", key, err)
	}

	if created {
		metrics.LedgerPosts.WithLabelValues(kind, metrics.ResultCreated).Inc()
		s.LogInfo(ctx, "Ledger transaction posted",
			slog.String("idempotency_key", key),
			slog.String("transaction_id", posted.TransactionID),
			slog.String("tenant_id", posted.TenantID),
			slog.String("category", string(posted.Category)),
			slog.String("amount", posted.Amount.String()))
	} else {
		metrics.LedgerPosts.WithLabelValues(kind, metrics.ResultDuplicate).Inc()
	}

	return posted, created, nil
}

// MovementSaved is the post-commit hook for stock movements. Errors are
// logged and suppressed: the movement row is already committed and must stay
// successful regardless of ledger availability.
func (s *postingService) MovementSaved(ctx context.Context, movement domain.StockMovement) {
	_, _, err := s.PostEvent(ctx, domain.StockMovementEvent{Movement: movement})
	s.logHookOutcome(ctx, err,
		slog.String("event_kind", string(domain.EventStockMovement)),
		slog.String("movement_id", movement.MovementID),
		slog.String("tenant_id", movement.TenantID))
}

// CommitmentApproved is the post-commit hook for commitment approvals, with
// the same error-isolation contract as MovementSaved.
func (s *postingService) CommitmentApproved(ctx context.Context, commitment domain.Commitment) {
	_, _, err := s.PostEvent(ctx, domain.CommitmentApprovedEvent{Commitment: commitment})
	s.logHookOutcome(ctx, err,
		slog.String("event_kind", string(domain.EventCommitmentApproved)),
		slog.String("commitment_id", commitment.CommitmentID),
		slog.String("tenant_id", commitment.TenantID))
}

func (s *postingService) logHookOutcome(ctx context.Context, err error, keyvals ...any) {
	switch {
	case err == nil:
	case errors.Is(err, apperrors.ErrUnresolvedCostCenter), errors.Is(err, apperrors.ErrMissingIdentity):
		// Expected, operator-actionable skips.
		args := append([]any{slog.String("reason", err.Error())}, keyvals...)
		s.LogWarn(ctx, "Ledger posting skipped event", args...)
	default:
		s.LogError(ctx, err, "Ledger posting failed; entry will be reconciled by backfill", keyvals...)
	}
}
