package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for ledger post attempts.
const (
	ResultCreated     = "created"
	ResultDuplicate   = "duplicate"
	ResultUnqualified = "unqualified"
	ResultFailed      = "failed"
)

// Status labels for backfill runs.
const (
	StatusOK     = "ok"
	StatusFailed = "failed"
)

// LedgerPosts counts ledger post attempts by event kind and outcome.
var LedgerPosts = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "ledgerpost",
		Name:      "posts_total",
		Help:      "Ledger post attempts by event kind and outcome.",
	},
	[]string{"kind", "result"},
)

// BackfillRuns counts completed backfill runs by final status.
var BackfillRuns = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "ledgerpost",
		Name:      "backfill_runs_total",
		Help:      "Backfill runs by final status.",
	},
	[]string{"status"},
)
