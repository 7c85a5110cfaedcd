package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/maintkit/ledgerpost/internal/apperrors"
	"github.com/maintkit/ledgerpost/internal/core/domain"
	portsrepo "github.com/maintkit/ledgerpost/internal/core/ports/repositories"
	"github.com/maintkit/ledgerpost/internal/models"
	"github.com/maintkit/ledgerpost/internal/utils/mapping"
	"github.com/shopspring/decimal"
)

// uniqueViolationCode is the Postgres error code for unique constraint violations.
const uniqueViolationCode = "23505"

const ledgerColumns = `transaction_id, tenant_id, idempotency_key, amount, currency_code, category, cost_center_id, budget_month, occurred_at, metadata, created_at`

type PgxLedgerRepository struct {
	BaseRepository
}

// newPgxLedgerRepository creates a new repository for ledger transactions.
func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepositoryFacade {
	return &PgxLedgerRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)

// GetOrCreateTransaction inserts the transaction, deferring to the
// idempotency_key uniqueness constraint to serialize concurrent posts of the
// same event. A unique violation means another writer won the race; the
// existing row is fetched and returned instead.
func (r *PgxLedgerRepository) GetOrCreateTransaction(ctx context.Context, txn domain.LedgerTransaction) (*domain.LedgerTransaction, bool, error) {
	modelTxn := mapping.ToModelLedgerTransaction(txn)

	query := `
		INSERT INTO ledger_transactions (` + ledgerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`

	_, err := r.Pool.Exec(ctx, query,
		modelTxn.TransactionID,
		modelTxn.TenantID,
		modelTxn.IdempotencyKey,
		modelTxn.Amount,
		modelTxn.CurrencyCode,
		modelTxn.Category,
		modelTxn.CostCenterID,
		modelTxn.BudgetMonth,
		modelTxn.OccurredAt,
		modelTxn.Metadata,
		modelTxn.CreatedAt,
	)
	if err == nil {
		return &txn, true, nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		existing, findErr := r.FindTransactionByKey(ctx, txn.IdempotencyKey)
		if findErr != nil {
			return nil, false, fmt.Errorf("failed to fetch existing transaction for key %s: %w", txn.IdempotencyKey, findErr)
		}
		return existing, false, nil
	}

	return nil, false, fmt.Errorf("%w: failed to insert ledger transaction: %v", apperrors.ErrStorageUnavailable, err)
}

// FindTransactionByKey retrieves a transaction by its idempotency key.
func (r *PgxLedgerRepository) FindTransactionByKey(ctx context.Context, idempotencyKey string) (*domain.LedgerTransaction, error) {
	query := `
		SELECT ` + ledgerColumns + `
		FROM ledger_transactions
		WHERE idempotency_key = $1;
	`
	var modelTxn models.LedgerTransaction
	err := r.Pool.QueryRow(ctx, query, idempotencyKey).Scan(
		&modelTxn.TransactionID,
		&modelTxn.TenantID,
		&modelTxn.IdempotencyKey,
		&modelTxn.Amount,
		&modelTxn.CurrencyCode,
		&modelTxn.Category,
		&modelTxn.CostCenterID,
		&modelTxn.BudgetMonth,
		&modelTxn.OccurredAt,
		&modelTxn.Metadata,
		&modelTxn.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("%w: failed to find transaction by key %s: %v", apperrors.ErrStorageUnavailable, idempotencyKey, err)
	}

	domainTxn := mapping.ToDomainLedgerTransaction(modelTxn)
	return &domainTxn, nil
}

// ListTransactions retrieves a tenant's transactions, newest first, narrowed
// by the optional filter fields.
func (r *PgxLedgerRepository) ListTransactions(ctx context.Context, tenantID string, filter portsrepo.ListLedgerFilter) ([]domain.LedgerTransaction, error) {
	query := `
		SELECT ` + ledgerColumns + `
		FROM ledger_transactions
		WHERE tenant_id = $1
	`
	args := []any{tenantID}

	if filter.BudgetMonth != "" {
		args = append(args, filter.BudgetMonth)
		query += fmt.Sprintf(" AND budget_month = $%d", len(args))
	}
	if filter.CostCenterID != "" {
		args = append(args, filter.CostCenterID)
		query += fmt.Sprintf(" AND cost_center_id = $%d", len(args))
	}
	if filter.Category != "" {
		args = append(args, string(filter.Category))
		query += fmt.Sprintf(" AND category = $%d", len(args))
	}

	args = append(args, filter.Limit)
	query += fmt.Sprintf(" ORDER BY occurred_at DESC, transaction_id LIMIT $%d;", len(args))

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query ledger transactions: %w", err)
	}
	defer rows.Close()

	modelTxns, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.LedgerTransaction, error) {
		var txn models.LedgerTransaction
		err := row.Scan(
			&txn.TransactionID,
			&txn.TenantID,
			&txn.IdempotencyKey,
			&txn.Amount,
			&txn.CurrencyCode,
			&txn.Category,
			&txn.CostCenterID,
			&txn.BudgetMonth,
			&txn.OccurredAt,
			&txn.Metadata,
			&txn.CreatedAt,
		)
		return txn, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan ledger transactions: %w", err)
	}

	return mapping.ToDomainLedgerTransactionSlice(modelTxns), nil
}

// SummarizeByCategory totals a tenant's transaction amounts per category for
// one budget month. The sum happens in the database as numeric, so decimal
// exactness is preserved.
func (r *PgxLedgerRepository) SummarizeByCategory(ctx context.Context, tenantID string, budgetMonth string) (map[domain.TransactionCategory]decimal.Decimal, error) {
	query := `
		SELECT category, COALESCE(SUM(amount), 0)
		FROM ledger_transactions
		WHERE tenant_id = $1 AND budget_month = $2
		GROUP BY category;
	`
	rows, err := r.Pool.Query(ctx, query, tenantID, budgetMonth)
	if err != nil {
		return nil, fmt.Errorf("failed to query ledger summary: %w", err)
	}
	defer rows.Close()

	totals := make(map[domain.TransactionCategory]decimal.Decimal)
	for rows.Next() {
		var category string
		var total decimal.Decimal
		if err := rows.Scan(&category, &total); err != nil {
			return nil, fmt.Errorf("failed to scan ledger summary row: %w", err)
		}
		totals[domain.TransactionCategory(category)] = total
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read ledger summary rows: %w", err)
	}

	return totals, nil
}
