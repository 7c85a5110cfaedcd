package dto

import (
	"time"
)

// --- Backfill DTOs (offline administrative tool) ---

// Kind values restricting a backfill run to one event kind.
const (
	BackfillKindMovement   = "movement"
	BackfillKindCommitment = "commitment"
)

// BackfillParams configures one backfill run.
type BackfillParams struct {
	// TenantID scopes the run to one tenant; empty means all tenants.
	TenantID string
	// Since filters events that occurred at or after this instant; nil
	// means no lower bound.
	Since *time.Time
	// DryRun computes what would be written without calling the writer.
	DryRun bool
	// Limit caps the number of events processed per tenant per kind.
	// Zero applies the default cap; runs are never unbounded.
	Limit int
	// Kind restricts the run to one event kind (BackfillKindMovement or
	// BackfillKindCommitment); empty means both.
	Kind string
}

// RunBackfillRequest triggers a backfill run over the admin HTTP surface.
type RunBackfillRequest struct {
	TenantID string     `json:"tenantID"`
	Since    *time.Time `json:"since"`
	DryRun   bool       `json:"dryRun"`
	Limit    int        `json:"limit" binding:"omitempty,min=1"`
	Kind     string     `json:"kind" binding:"omitempty,oneof=movement commitment"`
}

// BackfillReport summarises a run for the operator.
type BackfillReport struct {
	TenantsProcessed int `json:"tenantsProcessed"`
	Scanned          int `json:"scanned"`
	Created          int `json:"created"`
	AlreadyPresent   int `json:"alreadyPresent"`
	Unqualified      int `json:"unqualified"`
}

// Add folds another report into r. Used to accumulate per-tenant results.
func (r *BackfillReport) Add(other BackfillReport) {
	r.TenantsProcessed += other.TenantsProcessed
	r.Scanned += other.Scanned
	r.Created += other.Created
	r.AlreadyPresent += other.AlreadyPresent
	r.Unqualified += other.Unqualified
}
