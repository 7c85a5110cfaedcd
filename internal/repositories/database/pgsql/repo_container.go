package pgsql

import (
	portsrepo "github.com/maintkit/ledgerpost/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		Ledger:     newPgxLedgerRepository(dbPool),
		Movement:   newPgxMovementRepository(dbPool),
		Commitment: newPgxCommitmentRepository(dbPool),
		MasterData: newPgxMasterDataRepository(dbPool),
	}
}
