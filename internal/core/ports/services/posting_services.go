package services

import (
	"context"

	"github.com/maintkit/ledgerpost/internal/core/domain"
)

// ResolverSvc decides whether a domain event produces a ledger transaction
// and, when it does, which category and cost center apply.
type ResolverSvc interface {
	// Resolve returns a fully populated draft for a qualifying event, or
	// (nil, nil) when the event does not qualify. A wrapped
	// apperrors.ErrUnresolvedCostCenter means the event would qualify but
	// no cost center could be found; callers treat it as a logged skip.
	Resolve(ctx context.Context, event domain.Event) (*domain.TransactionDraft, error)
}

// LedgerPosterSvc is the ledger transaction writer together with the two
// post-commit event hooks.
type LedgerPosterSvc interface {
	// PostEvent resolves the event and idempotently writes its ledger
	// transaction. The bool is true when a new row was inserted, false
	// when the row already existed or the event did not qualify (nil
	// transaction in the latter case).
	PostEvent(ctx context.Context, event domain.Event) (*domain.LedgerTransaction, bool, error)

	// MovementSaved is the post-commit hook for collaborator A. It never
	// returns an error: any posting failure is logged and suppressed so
	// the primary inventory write stays successful.
	MovementSaved(ctx context.Context, movement domain.StockMovement)

	// CommitmentApproved is the post-commit hook for collaborator B, with
	// the same error-isolation contract as MovementSaved.
	CommitmentApproved(ctx context.Context, commitment domain.Commitment)
}

// MovementHook is the extension point the inventory service invokes after a
// movement row has been committed.
type MovementHook interface {
	MovementSaved(ctx context.Context, movement domain.StockMovement)
}

// CommitmentHook is the extension point the commitments service invokes
// after an approval has been committed.
type CommitmentHook interface {
	CommitmentApproved(ctx context.Context, commitment domain.Commitment)
}
