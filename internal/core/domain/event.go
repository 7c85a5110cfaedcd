package domain

import "time"

// EventKind discriminates the domain event variants the ledger core consumes.
type EventKind string

const (
	EventStockMovement      EventKind = "stock_movement"
	EventCommitmentApproved EventKind = "commitment_approved"
)

// Event is the sum type over the two upstream domain events. Qualification
// and category rules dispatch on the concrete variant so the policy stays
// exhaustive at compile time.
type Event interface {
	Kind() EventKind
	Tenant() string
	// ID is the event's own unique identity within its kind (movement id,
	// commitment id). Combined with Kind and Tenant it forms the
	// idempotency key.
	ID() string
	OccurredAt() time.Time
}

// StockMovementEvent is raised after a stock movement row is persisted.
type StockMovementEvent struct {
	Movement StockMovement
}

func (e StockMovementEvent) Kind() EventKind       { return EventStockMovement }
func (e StockMovementEvent) Tenant() string        { return e.Movement.TenantID }
func (e StockMovementEvent) ID() string            { return e.Movement.MovementID }
func (e StockMovementEvent) OccurredAt() time.Time { return e.Movement.OccurredAt }

// CommitmentApprovedEvent is raised after a commitment transitions to
// APPROVED.
type CommitmentApprovedEvent struct {
	Commitment Commitment
}

func (e CommitmentApprovedEvent) Kind() EventKind { return EventCommitmentApproved }
func (e CommitmentApprovedEvent) Tenant() string  { return e.Commitment.TenantID }
func (e CommitmentApprovedEvent) ID() string      { return e.Commitment.CommitmentID }
func (e CommitmentApprovedEvent) OccurredAt() time.Time {
	if e.Commitment.ApprovedAt != nil {
		return *e.Commitment.ApprovedAt
	}
	return e.Commitment.LastUpdatedAt
}

// Compile-time variant checks.
var (
	_ Event = StockMovementEvent{}
	_ Event = CommitmentApprovedEvent{}
)
