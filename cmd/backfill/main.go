package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/maintkit/ledgerpost/internal/core/services"
	"github.com/maintkit/ledgerpost/internal/dto"
	"github.com/maintkit/ledgerpost/internal/middleware"
	"github.com/maintkit/ledgerpost/internal/repositories/database/pgsql"
	"github.com/maintkit/ledgerpost/pkg/config"
	"github.com/maintkit/ledgerpost/pkg/database"
)

// backfill replays historical stock movements and approved commitments
// through the ledger posting core. Idempotent: already-posted events are
// reported as already-present and never duplicated.
func main() {
	var (
		tenantID = flag.String("tenant", "", "restrict the run to one tenant id (default: all tenants)")
		sinceStr = flag.String("since", "", "only replay events that occurred at or after this RFC3339 instant")
		dryRun   = flag.Bool("dry-run", false, "report what would be written without posting")
		limit    = flag.Int("limit", 0, "max events scanned per tenant per kind (default from config)")
		kind     = flag.String("kind", "all", "restrict the run to one event kind: movement, commitment or all")
	)
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	params := dto.BackfillParams{
		TenantID: *tenantID,
		DryRun:   *dryRun,
		Limit:    *limit,
	}
	if params.Limit <= 0 {
		params.Limit = cfg.BackfillLimit
	}
	if *sinceStr != "" {
		since, err := time.Parse(time.RFC3339, *sinceStr)
		if err != nil {
			logger.Error("Invalid -since value; expected RFC3339", slog.String("value", *sinceStr))
			os.Exit(2)
		}
		params.Since = &since
	}
	switch *kind {
	case "all":
	case dto.BackfillKindMovement, dto.BackfillKindCommitment:
		params.Kind = *kind
	default:
		logger.Error("Invalid -kind value; expected movement, commitment or all", slog.String("value", *kind))
		os.Exit(2)
	}

	ctx := middleware.ContextWithLogger(context.Background(), logger)

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)

	repos := pgsql.NewRepositoryProvider(dbPool)
	resolver := services.NewResolverService(repos.MasterData)
	poster := services.NewPostingService(resolver, repos.Ledger)
	backfill := services.NewBackfillService(resolver, repos.Ledger, poster,
		repos.Movement, repos.Commitment, repos.MasterData)

	report, err := backfill.Run(ctx, params)
	if err != nil {
		logger.Error("Backfill run failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	mode := "apply"
	if params.DryRun {
		mode = "dry-run"
	}
	fmt.Printf("backfill %s: tenants=%d scanned=%d created=%d already-present=%d unqualified=%d\n",
		mode, report.TenantsProcessed, report.Scanned, report.Created, report.AlreadyPresent, report.Unqualified)
}
