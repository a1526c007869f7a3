package services

import (
	"time"

	"github.com/shopspring/decimal"

	portsrepo "github.com/stewardly/ledger_engine/internal/core/ports/repositories"
	portssvc "github.com/stewardly/ledger_engine/internal/core/ports/services"
	"github.com/stewardly/ledger_engine/pkg/config"
)

// NewServiceContainer creates a new service container with properly initialized
// dependencies.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	limits := DefaultReconciliationLimits()
	if cfg.ReconMaxDateAgeDays > 0 {
		limits.MaxDateAge = time.Duration(cfg.ReconMaxDateAgeDays) * 24 * time.Hour
	}
	if cfg.ReconVariancePercent > 0 {
		limits.VariancePercent = decimal.NewFromFloat(cfg.ReconVariancePercent)
	}
	if cfg.ReconMaxNotesLength > 0 {
		limits.MaxNotesLength = cfg.ReconMaxNotesLength
	}
	if cfg.ReconMinAmount != 0 {
		limits.MinAmount = decimal.NewFromFloat(cfg.ReconMinAmount)
	}
	if cfg.ReconMaxAmount != 0 {
		limits.MaxAmount = decimal.NewFromFloat(cfg.ReconMaxAmount)
	}

	container.Journal = NewJournalService(repos.JournalRepo, repos.AccountRepo)
	container.Reconciliation = NewReconciliationService(
		repos.ReconciliationRepo,
		repos.BankAccountRepo,
		repos.AccountRepo,
		limits,
	)
	container.Audit = NewAuditService(repos.AuditRepo)

	return container
}
