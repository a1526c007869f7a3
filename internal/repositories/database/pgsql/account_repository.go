package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/stewardly/ledger_engine/internal/apperrors"
	"github.com/stewardly/ledger_engine/internal/core/domain"
	portsrepo "github.com/stewardly/ledger_engine/internal/core/ports/repositories"
	"github.com/stewardly/ledger_engine/internal/models"
	"github.com/stewardly/ledger_engine/internal/utils/mapping"
)

const accountColumns = `account_id, organization_id, branch_id, code, name, account_type, normal_balance,
	parent_account_id, fund_id, ministry_id, description, is_active, balance,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for chart-of-accounts data.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryFacade {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

func scanAccount(row pgx.Row) (models.Account, error) {
	var m models.Account
	err := row.Scan(
		&m.AccountID,
		&m.OrganizationID,
		&m.BranchID,
		&m.Code,
		&m.Name,
		&m.AccountType,
		&m.NormalBalance,
		&m.ParentAccountID,
		&m.FundID,
		&m.MinistryID,
		&m.Description,
		&m.IsActive,
		&m.Balance,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// FindAccountByID retrieves an account by its ID.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = $1;`

	m, err := scanAccount(r.Pool.QueryRow(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find account by ID "+accountID, err)
	}

	acc := mapping.ToDomainAccount(m)
	return &acc, nil
}

// FindAccountsByIDs retrieves multiple accounts by their IDs.
func (r *PgxAccountRepository) FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	if len(accountIDs) == 0 {
		return map[string]domain.Account{}, nil
	}

	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = ANY($1);`

	rows, err := r.Pool.Query(ctx, query, accountIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query accounts by IDs", err)
	}
	defer rows.Close()

	accounts := make(map[string]domain.Account, len(accountIDs))
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan account row", err)
		}
		accounts[m.AccountID] = mapping.ToDomainAccount(m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating account rows", err)
	}

	return accounts, nil
}

// SumPostedLines sums debit and credit amounts independently across all lines of
// POSTED entries that reference the account. Cached balances are never consulted.
func (r *PgxAccountRepository) SumPostedLines(ctx context.Context, accountID string) (decimal.Decimal, decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(l.debit_amount), 0), COALESCE(SUM(l.credit_amount), 0)
		FROM journal_entry_lines l
		JOIN journal_entries e ON l.entry_id = e.entry_id
		WHERE l.account_id = $1 AND e.status = 'POSTED';
	`
	var sumDebit, sumCredit decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, accountID).Scan(&sumDebit, &sumCredit); err != nil {
		return decimal.Zero, decimal.Zero, apperrors.NewAppError(500, "failed to sum posted lines for account "+accountID, err)
	}
	return sumDebit, sumCredit, nil
}

// LockAccountsForUpdate selects the given accounts FOR UPDATE within the transaction,
// serialising concurrent balance recomputes. Every requested account must exist.
func (r *PgxAccountRepository) LockAccountsForUpdate(ctx context.Context, tx pgx.Tx, accountIDs []string) (map[string]domain.Account, error) {
	if len(accountIDs) == 0 {
		return map[string]domain.Account{}, nil
	}

	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = ANY($1) FOR UPDATE;`

	rows, err := tx.Query(ctx, query, accountIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to lock accounts for update", err)
	}
	defer rows.Close()

	accounts := make(map[string]domain.Account, len(accountIDs))
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan locked account row", err)
		}
		accounts[m.AccountID] = mapping.ToDomainAccount(m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating locked account rows", err)
	}

	for _, id := range accountIDs {
		if _, ok := accounts[id]; !ok {
			return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, id)
		}
	}

	return accounts, nil
}

// RecomputeBalancesInTx rewrites each account's derived balance from the sums of its
// POSTED lines, signed by the account's normal balance side. Balances are always
// recomputed in full, never incrementally adjusted.
func (r *PgxAccountRepository) RecomputeBalancesInTx(ctx context.Context, tx pgx.Tx, accountIDs []string, userID string) error {
	if len(accountIDs) == 0 {
		return nil
	}

	query := `
		UPDATE accounts a
		SET balance = CASE a.normal_balance
				WHEN 'DEBIT' THEN s.sum_debit - s.sum_credit
				ELSE s.sum_credit - s.sum_debit
			END,
			last_updated_at = NOW(),
			last_updated_by = $2
		FROM (
			SELECT acc.account_id,
			       COALESCE(SUM(l.debit_amount) FILTER (WHERE e.status = 'POSTED'), 0) AS sum_debit,
			       COALESCE(SUM(l.credit_amount) FILTER (WHERE e.status = 'POSTED'), 0) AS sum_credit
			FROM accounts acc
			LEFT JOIN journal_entry_lines l ON l.account_id = acc.account_id
			LEFT JOIN journal_entries e ON e.entry_id = l.entry_id
			WHERE acc.account_id = ANY($1)
			GROUP BY acc.account_id
		) s
		WHERE a.account_id = s.account_id;
	`
	if _, err := tx.Exec(ctx, query, accountIDs, userID); err != nil {
		return apperrors.NewAppError(500, "failed to recompute account balances", err)
	}
	return nil
}
