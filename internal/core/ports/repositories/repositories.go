package repositories

// RepositoryProvider aggregates all repository facades for wiring the
// service container.
type RepositoryProvider struct {
	Ledger     LedgerRepositoryFacade
	Movement   MovementRepositoryFacade
	Commitment CommitmentRepositoryFacade
	MasterData MasterDataRepositoryFacade
}
