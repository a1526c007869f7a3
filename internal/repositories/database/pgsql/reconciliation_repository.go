package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/stewardly/ledger_engine/internal/apperrors"
	"github.com/stewardly/ledger_engine/internal/core/domain"
	portsrepo "github.com/stewardly/ledger_engine/internal/core/ports/repositories"
	"github.com/stewardly/ledger_engine/internal/models"
	"github.com/stewardly/ledger_engine/internal/utils/mapping"
	"github.com/stewardly/ledger_engine/internal/utils/optlock"
)

const reconciliationColumns = `reconciliation_id, organization_id, branch_id, bank_account_id,
	reconciliation_date, bank_statement_balance, book_balance, adjusted_balance, difference,
	cleared_transaction_ids, notes, status, prepared_by, prepared_at, reviewed_by, reviewed_at,
	approved_by, approved_at, void_reason, document_url, version,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxReconciliationRepository struct {
	BaseRepository
	bankAccountRepo portsrepo.BankAccountRepositoryFacade
	auditRepo       portsrepo.AuditRepositoryFacade
}

// newPgxReconciliationRepository creates a new repository for bank reconciliation data.
func newPgxReconciliationRepository(pool *pgxpool.Pool, bankAccountRepo portsrepo.BankAccountRepositoryFacade, auditRepo portsrepo.AuditRepositoryFacade) portsrepo.ReconciliationRepositoryFacade {
	return &PgxReconciliationRepository{
		BaseRepository:  BaseRepository{Pool: pool},
		bankAccountRepo: bankAccountRepo,
		auditRepo:       auditRepo,
	}
}

var _ portsrepo.ReconciliationRepositoryFacade = (*PgxReconciliationRepository)(nil)

func scanReconciliation(row pgx.Row) (models.BankReconciliation, error) {
	var m models.BankReconciliation
	err := row.Scan(
		&m.ReconciliationID,
		&m.OrganizationID,
		&m.BranchID,
		&m.BankAccountID,
		&m.ReconciliationDate,
		&m.BankStatementBalance,
		&m.BookBalance,
		&m.AdjustedBalance,
		&m.Difference,
		&m.ClearedTransactionIDs,
		&m.Notes,
		&m.Status,
		&m.PreparedBy,
		&m.PreparedAt,
		&m.ReviewedBy,
		&m.ReviewedAt,
		&m.ApprovedBy,
		&m.ApprovedAt,
		&m.VoidReason,
		&m.DocumentURL,
		&m.Version,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// FindByID retrieves a reconciliation by its ID.
func (r *PgxReconciliationRepository) FindByID(ctx context.Context, reconciliationID string) (*domain.BankReconciliation, error) {
	query := `SELECT ` + reconciliationColumns + ` FROM bank_reconciliations WHERE reconciliation_id = $1;`

	m, err := scanReconciliation(r.Pool.QueryRow(ctx, query, reconciliationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find reconciliation by ID "+reconciliationID, err)
	}

	recon := mapping.ToDomainReconciliation(m)
	return &recon, nil
}

// FindByBankAccount retrieves reconciliations for a bank account, most recent first.
func (r *PgxReconciliationRepository) FindByBankAccount(ctx context.Context, bankAccountID string, limit int, offset int) ([]domain.BankReconciliation, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT ` + reconciliationColumns + `
		FROM bank_reconciliations
		WHERE bank_account_id = $1
		ORDER BY reconciliation_date DESC, created_at DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, bankAccountID, limit, offset)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query reconciliations for bank account "+bankAccountID, err)
	}
	defer rows.Close()

	var recons []domain.BankReconciliation
	for rows.Next() {
		m, err := scanReconciliation(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan reconciliation row", err)
		}
		recons = append(recons, mapping.ToDomainReconciliation(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating reconciliation rows", err)
	}

	return recons, nil
}

// FindLatestNonVoided retrieves the most recent non-voided reconciliation for a bank
// account, excluding the given date. Returns ErrNotFound when none exists.
func (r *PgxReconciliationRepository) FindLatestNonVoided(ctx context.Context, bankAccountID string, excludeDate time.Time) (*domain.BankReconciliation, error) {
	query := `
		SELECT ` + reconciliationColumns + `
		FROM bank_reconciliations
		WHERE bank_account_id = $1 AND status != 'VOIDED' AND reconciliation_date != $2
		ORDER BY reconciliation_date DESC, created_at DESC
		LIMIT 1;
	`
	m, err := scanReconciliation(r.Pool.QueryRow(ctx, query, bankAccountID, excludeDate))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find latest reconciliation for bank account "+bankAccountID, err)
	}

	recon := mapping.ToDomainReconciliation(m)
	return &recon, nil
}

// ExistsNonVoided returns the id of a non-voided reconciliation for the given bank
// account and date, or empty string when there is none.
func (r *PgxReconciliationRepository) ExistsNonVoided(ctx context.Context, bankAccountID string, date time.Time) (string, error) {
	query := `
		SELECT reconciliation_id
		FROM bank_reconciliations
		WHERE bank_account_id = $1 AND reconciliation_date = $2 AND status != 'VOIDED'
		LIMIT 1;
	`
	var id string
	err := r.Pool.QueryRow(ctx, query, bankAccountID, date).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", apperrors.NewAppError(500, "failed to check existing reconciliation for bank account "+bankAccountID, err)
	}
	return id, nil
}

// SaveReconciliation persists a new reconciliation with its audit record, stamping
// the bank account in the same transaction when the caller approved on save. A
// concurrent save for the same (bank account, date) loses on the partial unique
// index and surfaces DuplicateReconciliationError.
func (r *PgxReconciliationRepository) SaveReconciliation(ctx context.Context, recon domain.BankReconciliation, stampBankAccount bool, audit domain.AuditLogEntry) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelReconciliation(recon)
	query := `
		INSERT INTO bank_reconciliations (` + reconciliationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25);
	`
	_, err = tx.Exec(ctx, query,
		m.ReconciliationID,
		m.OrganizationID,
		m.BranchID,
		m.BankAccountID,
		m.ReconciliationDate,
		m.BankStatementBalance,
		m.BookBalance,
		m.AdjustedBalance,
		m.Difference,
		m.ClearedTransactionIDs,
		m.Notes,
		m.Status,
		m.PreparedBy,
		m.PreparedAt,
		m.ReviewedBy,
		m.ReviewedAt,
		m.ApprovedBy,
		m.ApprovedAt,
		m.VoidReason,
		m.DocumentURL,
		m.Version,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return &apperrors.DuplicateReconciliationError{
				BankAccountID:      recon.BankAccountID,
				ReconciliationDate: recon.ReconciliationDate,
			}
		}
		return apperrors.NewAppError(500, "failed to insert reconciliation "+m.ReconciliationID, err)
	}

	if stampBankAccount {
		if err := r.bankAccountRepo.StampReconciledInTx(ctx, tx, recon.BankAccountID, recon.ReconciliationDate, recon.BankStatementBalance, recon.LastUpdatedBy); err != nil {
			return err
		}
	}
	if err := r.auditRepo.RecordInTx(ctx, tx, audit); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// TransitionStatus applies a workflow transition with a version-guarded update. The
// recon argument carries the new status and reviewer/approver stamps; on approval
// the linked bank account is stamped in the same transaction.
func (r *PgxReconciliationRepository) TransitionStatus(ctx context.Context, recon domain.BankReconciliation, expectedVersion *int64, stampBankAccount bool, audit domain.AuditLogEntry) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelReconciliation(recon)
	err = optlock.Run(ctx, "reconciliation", recon.ReconciliationID, expectedVersion,
		func(ctx context.Context) (int64, error) {
			return readReconVersionTx(ctx, tx, recon.ReconciliationID)
		},
		func(ctx context.Context, currentVersion int64) (int64, error) {
			query := `
				UPDATE bank_reconciliations
				SET status = $1, notes = $2, reviewed_by = $3, reviewed_at = $4,
				    approved_by = $5, approved_at = $6, void_reason = $7,
				    version = version + 1, last_updated_at = $8, last_updated_by = $9
				WHERE reconciliation_id = $10 AND version = $11;
			`
			tag, err := tx.Exec(ctx, query,
				m.Status,
				m.Notes,
				m.ReviewedBy,
				m.ReviewedAt,
				m.ApprovedBy,
				m.ApprovedAt,
				m.VoidReason,
				m.LastUpdatedAt,
				m.LastUpdatedBy,
				m.ReconciliationID,
				currentVersion,
			)
			if err != nil {
				return 0, apperrors.NewAppError(500, "failed to transition reconciliation "+m.ReconciliationID, err)
			}
			return tag.RowsAffected(), nil
		},
	)
	if err != nil {
		return err
	}

	if stampBankAccount {
		if err := r.bankAccountRepo.StampReconciledInTx(ctx, tx, recon.BankAccountID, recon.ReconciliationDate, recon.BankStatementBalance, recon.LastUpdatedBy); err != nil {
			return err
		}
	}
	if err := r.auditRepo.RecordInTx(ctx, tx, audit); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

func readReconVersionTx(ctx context.Context, tx pgx.Tx, reconciliationID string) (int64, error) {
	var version int64
	err := tx.QueryRow(ctx, `SELECT version FROM bank_reconciliations WHERE reconciliation_id = $1 FOR UPDATE;`, reconciliationID).Scan(&version)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.ErrNotFound
		}
		return 0, apperrors.NewAppError(500, "failed to read version for reconciliation "+reconciliationID, err)
	}
	return version, nil
}
