package services

// ServiceContainer bundles the engine's services for handler wiring.
type ServiceContainer struct {
	Journal        JournalSvcFacade
	Reconciliation ReconciliationSvcFacade
	Audit          AuditSvcFacade
}
