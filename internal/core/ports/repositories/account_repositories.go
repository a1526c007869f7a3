package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/stewardly/ledger_engine/internal/core/domain"
)

// AccountReader defines read operations for chart-of-accounts data.
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// FindAccountsByIDs retrieves multiple accounts by their IDs.
	FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error)

	// SumPostedLines independently sums debit and credit amounts across all POSTED
	// journal entry lines referencing the account. This is the authoritative source
	// for book-balance verification; cached balances are never trusted for it.
	SumPostedLines(ctx context.Context, accountID string) (sumDebit, sumCredit decimal.Decimal, err error)
}

// AccountBalanceSupport defines balance maintenance performed inside an owning
// operation's transaction.
type AccountBalanceSupport interface {
	// LockAccountsForUpdate selects accounts FOR UPDATE within a transaction.
	LockAccountsForUpdate(ctx context.Context, tx pgx.Tx, accountIDs []string) (map[string]domain.Account, error)

	// RecomputeBalancesInTx rewrites each account's derived balance from the sums of
	// its POSTED lines. Balances are always recomputed, never incrementally adjusted.
	RecomputeBalancesInTx(ctx context.Context, tx pgx.Tx, accountIDs []string, userID string) error
}

// AccountRepositoryFacade combines all account-related repository interfaces.
type AccountRepositoryFacade interface {
	AccountReader
	AccountBalanceSupport
}
