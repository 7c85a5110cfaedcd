package services

// ServiceContainer aggregates all service facades for handler wiring.
type ServiceContainer struct {
	Movement     MovementSvcFacade
	Commitment   CommitmentSvcFacade
	LedgerPoster LedgerPosterSvc
	LedgerReader LedgerReaderSvc
	Backfill     BackfillSvcFacade
	MasterData   MasterDataSvcFacade
}
