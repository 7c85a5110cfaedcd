package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/maintkit/ledgerpost/internal/apperrors"
	"github.com/maintkit/ledgerpost/internal/core/domain"
	portsrepo "github.com/maintkit/ledgerpost/internal/core/ports/repositories"
	portssvc "github.com/maintkit/ledgerpost/internal/core/ports/services"
	"github.com/maintkit/ledgerpost/internal/dto"
	"github.com/maintkit/ledgerpost/internal/platform/metrics"
)

// defaultBackfillLimit caps events scanned per tenant per kind when the
// operator does not pass an explicit limit.
const defaultBackfillLimit = 1000

// backfillService replays historical movements and approved commitments
// through the posting core. Safe to run repeatedly: the idempotency key makes
// every replay a no-op for already-posted events.
type backfillService struct {
	BaseService
	resolver       portssvc.ResolverSvc
	ledgerRepo     portsrepo.LedgerRepositoryFacade
	poster         portssvc.LedgerPosterSvc
	movementRepo   portsrepo.MovementReader
	commitmentRepo portsrepo.CommitmentReader
	tenantRepo     portsrepo.TenantReader
}

// NewBackfillService creates a new backfill runner.
func NewBackfillService(
	resolver portssvc.ResolverSvc,
	ledgerRepo portsrepo.LedgerRepositoryFacade,
	poster portssvc.LedgerPosterSvc,
	movementRepo portsrepo.MovementReader,
	commitmentRepo portsrepo.CommitmentReader,
	tenantRepo portsrepo.TenantReader,
) portssvc.BackfillSvcFacade {
	return &backfillService{
		resolver:       resolver,
		ledgerRepo:     ledgerRepo,
		poster:         poster,
		movementRepo:   movementRepo,
		commitmentRepo: commitmentRepo,
		tenantRepo:     tenantRepo,
	}
}

var _ portssvc.BackfillSvcFacade = (*backfillService)(nil)

// Run executes one backfill pass over the selected tenants and reports
// counts. Storage failures abort the run; the tool is offline and retriable.
func (s *backfillService) Run(ctx context.Context, params dto.BackfillParams) (*dto.BackfillReport, error) {
	if params.Limit <= 0 {
		params.Limit = defaultBackfillLimit
	}

	tenants, err := s.selectTenants(ctx, params.TenantID)
	if err != nil {
		metrics.BackfillRuns.WithLabelValues(metrics.StatusFailed).Inc()
		return nil, err
	}

	report := &dto.BackfillReport{}
	for _, tenant := range tenants {
		tenantReport, err := s.runTenant(ctx, tenant.TenantID, params)
		if err != nil {
			metrics.BackfillRuns.WithLabelValues(metrics.StatusFailed).Inc()
			return nil, fmt.Errorf("backfill aborted at tenant %s: %w", tenant.TenantID, err)
		}
		report.Add(*tenantReport)
	}

	metrics.BackfillRuns.WithLabelValues(metrics.StatusOK).Inc()
	s.LogInfo(ctx, "Backfill run complete",
		slog.Int("tenants_processed", report.TenantsProcessed),
		slog.Int("scanned", report.Scanned),
		slog.Int("created", report.Created),
		slog.Int("already_present", report.AlreadyPresent),
		slog.Int("unqualified", report.Unqualified),
		slog.Bool("dry_run", params.DryRun))
	return report, nil
}

func (s *backfillService) selectTenants(ctx context.Context, tenantID string) ([]domain.Tenant, error) {
	if tenantID != "" {
		tenant, err := s.tenantRepo.FindTenantByID(ctx, tenantID)
		if err != nil {
			return nil, fmt.Errorf("failed to find tenant %s: %w", tenantID, err)
		}
		return []domain.Tenant{*tenant}, nil
	}
	tenants, err := s.tenantRepo.ListTenants(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}
	return tenants, nil
}

func (s *backfillService) runTenant(ctx context.Context, tenantID string, params dto.BackfillParams) (*dto.BackfillReport, error) {
	report := &dto.BackfillReport{TenantsProcessed: 1}

	if params.Kind == "" || params.Kind == dto.BackfillKindMovement {
		movements, err := s.movementRepo.ListMovementsSince(ctx, tenantID, params.Since, params.Limit)
		if err != nil {
			return nil, fmt.Errorf("failed to list movements for tenant %s: %w", tenantID, err)
		}
		for _, movement := range movements {
			if err := s.replay(ctx, domain.StockMovementEvent{Movement: movement}, params.DryRun, report); err != nil {
				return nil, err
			}
		}
	}

	if params.Kind == "" || params.Kind == dto.BackfillKindCommitment {
		commitments, err := s.commitmentRepo.ListApprovedCommitmentsSince(ctx, tenantID, params.Since, params.Limit)
		if err != nil {
			return nil, fmt.Errorf("failed to list approved commitments for tenant %s: %w", tenantID, err)
		}
		for _, commitment := range commitments {
			if err := s.replay(ctx, domain.CommitmentApprovedEvent{Commitment: commitment}, params.DryRun, report); err != nil {
				return nil, err
			}
		}
	}

	return report, nil
}

// replay feeds one historical event through the posting core. Identity and
// resolution problems are counted and skipped; storage errors abort the run.
func (s *backfillService) replay(ctx context.Context, event domain.Event, dryRun bool, report *dto.BackfillReport) error {
	report.Scanned++

	if dryRun {
		return s.replayDry(ctx, event, report)
	}

	txn, created, err := s.poster.PostEvent(ctx, event)
	switch {
	case err == nil && txn == nil:
		report.Unqualified++
	case err == nil && created:
		report.Created++
	case err == nil:
		report.AlreadyPresent++
	case errors.Is(err, apperrors.ErrMissingIdentity), errors.Is(err, apperrors.ErrUnresolvedCostCenter):
		report.Unqualified++
		s.LogWarn(ctx, "Backfill skipped event",
			slog.String("event_kind", string(event.Kind())),
			slog.String("event_id", event.ID()),
			slog.String("reason", err.Error()))
	default:
		return fmt.Errorf("failed to replay %s event %s: %w", event.Kind(), event.ID(), err)
	}
	return nil
}

// replayDry computes what a real run would do without calling the writer.
func (s *backfillService) replayDry(ctx context.Context, event domain.Event, report *dto.BackfillReport) error {
	key, err := DeriveIdempotencyKey(event)
	if err != nil {
		report.Unqualified++
		return nil
	}

	draft, err := s.resolver.Resolve(ctx, event)
	switch {
	case errors.Is(err, apperrors.ErrUnresolvedCostCenter):
		report.Unqualified++
		return nil
	case err != nil:
		return fmt.Errorf("failed to resolve %s event %s: %w", event.Kind(), event.ID(), err)
	case draft == nil:
		report.Unqualified++
		return nil
	}

	_, err = s.ledgerRepo.FindTransactionByKey(ctx, key)
	switch {
	case err == nil:
		report.AlreadyPresent++
	case errors.Is(err, apperrors.ErrNotFound):
		report.Created++
	default:
		return fmt.Errorf("failed to check ledger for key %s: %w", key, err)
	}
	return nil
}
