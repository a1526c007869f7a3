package repositories

import (
	"context"
	"time"

	"github.com/stewardly/ledger_engine/internal/core/domain"
)

// ReconciliationReader defines read operations for bank reconciliation data.
type ReconciliationReader interface {
	// FindByID retrieves a specific reconciliation by its unique identifier.
	FindByID(ctx context.Context, reconciliationID string) (*domain.BankReconciliation, error)

	// FindByBankAccount retrieves reconciliations for a bank account, most recent first.
	FindByBankAccount(ctx context.Context, bankAccountID string, limit int, offset int) ([]domain.BankReconciliation, error)

	// FindLatestNonVoided retrieves the most recent non-voided reconciliation for a
	// bank account, excluding the given date. Returns ErrNotFound when none exists.
	FindLatestNonVoided(ctx context.Context, bankAccountID string, excludeDate time.Time) (*domain.BankReconciliation, error)

	// ExistsNonVoided returns the id of a non-voided reconciliation for the given
	// bank account and date, or empty string when there is none. The database's
	// partial unique index remains the authority under concurrency.
	ExistsNonVoided(ctx context.Context, bankAccountID string, date time.Time) (string, error)
}

// ReconciliationWriter defines write operations for bank reconciliation data. Each
// method owns a single database transaction together with its audit entry.
type ReconciliationWriter interface {
	// SaveReconciliation persists a new reconciliation. When stampBankAccount is set
	// (caller supplied an approved status on save), the bank account's lastReconciled
	// and bankBalance are updated inside the same transaction. A concurrent save for
	// the same (bank account, date) loses on the partial unique index and surfaces
	// DuplicateReconciliationError.
	SaveReconciliation(ctx context.Context, recon domain.BankReconciliation, stampBankAccount bool, audit domain.AuditLogEntry) error

	// TransitionStatus applies a state-machine transition with a version-guarded
	// update. The recon argument carries the new status and reviewer/approver stamps;
	// stampBankAccount updates the linked bank account in the same transaction
	// (used on approval).
	TransitionStatus(ctx context.Context, recon domain.BankReconciliation, expectedVersion *int64, stampBankAccount bool, audit domain.AuditLogEntry) error
}

// ReconciliationRepositoryFacade combines all reconciliation repository interfaces.
type ReconciliationRepositoryFacade interface {
	ReconciliationReader
	ReconciliationWriter
}
