package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/stewardly/ledger_engine/internal/core/domain"
)

// BankAccountReader defines read operations for bank account data.
type BankAccountReader interface {
	// FindBankAccountByID retrieves a bank account by its unique identifier.
	FindBankAccountByID(ctx context.Context, bankAccountID string) (*domain.BankAccount, error)
}

// BankAccountWriter defines the reconciliation stamp applied inside the owning
// reconciliation transaction. Bank accounts are administrative records otherwise;
// creation and deactivation happen outside the engine.
type BankAccountWriter interface {
	// StampReconciledInTx updates lastReconciled and bankBalance within a transaction.
	StampReconciledInTx(ctx context.Context, tx pgx.Tx, bankAccountID string, reconciledDate time.Time, bankBalance decimal.Decimal, userID string) error
}

// BankAccountRepositoryFacade combines all bank account repository interfaces.
type BankAccountRepositoryFacade interface {
	BankAccountReader
	BankAccountWriter
}
