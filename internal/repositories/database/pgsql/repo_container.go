package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/stewardly/ledger_engine/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	accountRepo := newPgxAccountRepository(dbPool)
	auditRepo := newPgxAuditRepository(dbPool)
	bankAccountRepo := newPgxBankAccountRepository(dbPool)
	journalRepo := newPgxJournalRepository(dbPool, accountRepo, auditRepo)
	reconciliationRepo := newPgxReconciliationRepository(dbPool, bankAccountRepo, auditRepo)

	return portsrepo.RepositoryProvider{
		AccountRepo:        accountRepo,
		JournalRepo:        journalRepo,
		BankAccountRepo:    bankAccountRepo,
		ReconciliationRepo: reconciliationRepo,
		AuditRepo:          auditRepo,
	}
}
