package services

import (
	portsrepo "github.com/maintkit/ledgerpost/internal/core/ports/repositories"
	portssvc "github.com/maintkit/ledgerpost/internal/core/ports/services"
)

// NewServiceContainer wires the full service graph on top of the repository
// provider. The posting service doubles as the post-commit hook for both the
// movement and the commitment services.
func NewServiceContainer(repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	resolver := NewResolverService(repos.MasterData)
	poster := NewPostingService(resolver, repos.Ledger)

	return &portssvc.ServiceContainer{
		Movement: NewMovementService(repos.Movement, repos.MasterData,
			WithMovementHooks(poster)),
		Commitment: NewCommitmentService(repos.Commitment, repos.MasterData, repos.MasterData,
			WithCommitmentHooks(poster)),
		LedgerPoster: poster,
		LedgerReader: NewLedgerQueryService(repos.Ledger),
		Backfill: NewBackfillService(resolver, repos.Ledger, poster,
			repos.Movement, repos.Commitment, repos.MasterData),
		MasterData: NewMasterDataService(repos.MasterData),
	}
}
