package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/stewardly/ledger_engine/internal/apperrors"
	"github.com/stewardly/ledger_engine/internal/core/domain"
	portsrepo "github.com/stewardly/ledger_engine/internal/core/ports/repositories"
	"github.com/stewardly/ledger_engine/internal/models"
	"github.com/stewardly/ledger_engine/internal/utils/mapping"
)

const bankAccountColumns = `bank_account_id, organization_id, branch_id, gl_account_id, name,
	account_number, bank_name, last_reconciled, bank_balance, is_active,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxBankAccountRepository struct {
	BaseRepository
}

// newPgxBankAccountRepository creates a new repository for bank account data.
func newPgxBankAccountRepository(pool *pgxpool.Pool) portsrepo.BankAccountRepositoryFacade {
	return &PgxBankAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.BankAccountRepositoryFacade = (*PgxBankAccountRepository)(nil)

// FindBankAccountByID retrieves a bank account by its ID.
func (r *PgxBankAccountRepository) FindBankAccountByID(ctx context.Context, bankAccountID string) (*domain.BankAccount, error) {
	query := `SELECT ` + bankAccountColumns + ` FROM bank_accounts WHERE bank_account_id = $1;`

	var m models.BankAccount
	err := r.Pool.QueryRow(ctx, query, bankAccountID).Scan(
		&m.BankAccountID,
		&m.OrganizationID,
		&m.BranchID,
		&m.GLAccountID,
		&m.Name,
		&m.AccountNumber,
		&m.BankName,
		&m.LastReconciled,
		&m.BankBalance,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find bank account by ID "+bankAccountID, err)
	}

	acc := mapping.ToDomainBankAccount(m)
	return &acc, nil
}

// StampReconciledInTx updates lastReconciled and bankBalance within the caller's
// transaction. Used when a reconciliation reaches APPROVED.
func (r *PgxBankAccountRepository) StampReconciledInTx(ctx context.Context, tx pgx.Tx, bankAccountID string, reconciledDate time.Time, bankBalance decimal.Decimal, userID string) error {
	query := `
		UPDATE bank_accounts
		SET last_reconciled = $1, bank_balance = $2, last_updated_at = NOW(), last_updated_by = $3
		WHERE bank_account_id = $4;
	`
	tag, err := tx.Exec(ctx, query, reconciledDate, bankBalance, userID, bankAccountID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to stamp reconciliation on bank account "+bankAccountID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
