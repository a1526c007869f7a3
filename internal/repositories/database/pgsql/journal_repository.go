package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/stewardly/ledger_engine/internal/apperrors"
	"github.com/stewardly/ledger_engine/internal/core/domain"
	portsrepo "github.com/stewardly/ledger_engine/internal/core/ports/repositories"
	"github.com/stewardly/ledger_engine/internal/models"
	"github.com/stewardly/ledger_engine/internal/utils/mapping"
	"github.com/stewardly/ledger_engine/internal/utils/optlock"
)

const journalEntryColumns = `entry_id, organization_id, branch_id, entry_number, entry_date, fiscal_year,
	fiscal_period, entry_type, source_module, source_ref, description, status, total_debit, total_credit,
	version, posted_by, posted_at, void_reason, reversed_by_entry_id, reverses_entry_id,
	created_at, created_by, last_updated_at, last_updated_by`

const journalLineColumns = `line_id, entry_id, account_id, debit_amount, credit_amount,
	fund_id, ministry_id, member_id, description,
	created_at, created_by, last_updated_at, last_updated_by`

const insertJournalLineQuery = `
	INSERT INTO journal_entry_lines (` + journalLineColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
`

type PgxJournalRepository struct {
	BaseRepository
	accountRepo portsrepo.AccountRepositoryFacade
	auditRepo   portsrepo.AuditRepositoryFacade
}

// newPgxJournalRepository creates a new repository for journal entry data.
func newPgxJournalRepository(pool *pgxpool.Pool, accountRepo portsrepo.AccountRepositoryFacade, auditRepo portsrepo.AuditRepositoryFacade) portsrepo.JournalRepositoryFacade {
	return &PgxJournalRepository{
		BaseRepository: BaseRepository{Pool: pool},
		accountRepo:    accountRepo,
		auditRepo:      auditRepo,
	}
}

var _ portsrepo.JournalRepositoryFacade = (*PgxJournalRepository)(nil)

func scanJournalEntry(row pgx.Row) (models.JournalEntry, error) {
	var m models.JournalEntry
	err := row.Scan(
		&m.EntryID,
		&m.OrganizationID,
		&m.BranchID,
		&m.EntryNumber,
		&m.EntryDate,
		&m.FiscalYear,
		&m.FiscalPeriod,
		&m.EntryType,
		&m.SourceModule,
		&m.SourceRef,
		&m.Description,
		&m.Status,
		&m.TotalDebit,
		&m.TotalCredit,
		&m.Version,
		&m.PostedBy,
		&m.PostedAt,
		&m.VoidReason,
		&m.ReversedByEntryID,
		&m.ReversesEntryID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func insertJournalEntryTx(ctx context.Context, tx pgx.Tx, entry domain.JournalEntry) error {
	m := mapping.ToModelJournalEntry(entry)
	query := `
		INSERT INTO journal_entries (` + journalEntryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24);
	`
	_, err := tx.Exec(ctx, query,
		m.EntryID,
		m.OrganizationID,
		m.BranchID,
		m.EntryNumber,
		m.EntryDate,
		m.FiscalYear,
		m.FiscalPeriod,
		m.EntryType,
		m.SourceModule,
		m.SourceRef,
		m.Description,
		m.Status,
		m.TotalDebit,
		m.TotalCredit,
		m.Version,
		m.PostedBy,
		m.PostedAt,
		m.VoidReason,
		m.ReversedByEntryID,
		m.ReversesEntryID,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert journal entry "+m.EntryID, err)
	}
	return nil
}

func insertJournalLinesTx(ctx context.Context, tx pgx.Tx, lines []domain.JournalEntryLine) error {
	batch := &pgx.Batch{}
	for _, line := range lines {
		m := mapping.ToModelJournalEntryLine(line)
		batch.Queue(insertJournalLineQuery,
			m.LineID,
			m.EntryID,
			m.AccountID,
			m.DebitAmount,
			m.CreditAmount,
			m.FundID,
			m.MinistryID,
			m.MemberID,
			m.Description,
			m.CreatedAt,
			m.CreatedBy,
			m.LastUpdatedAt,
			m.LastUpdatedBy,
		)
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to execute line insert batch", err)
	}
	return nil
}

// SaveDraftEntry persists a new DRAFT entry with its lines and the audit record in
// a single transaction.
func (r *PgxJournalRepository) SaveDraftEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalEntryLine, audit domain.AuditLogEntry) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := insertJournalEntryTx(ctx, tx, entry); err != nil {
		return err
	}
	if err := insertJournalLinesTx(ctx, tx, lines); err != nil {
		return err
	}
	if err := r.auditRepo.RecordInTx(ctx, tx, audit); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// PostEntry transitions a DRAFT entry to POSTED. The status flip is guarded by the
// entry's version and a DRAFT status predicate, the referenced accounts' balances
// are recomputed from posted lines, and the audit record is written, all in one
// transaction.
func (r *PgxJournalRepository) PostEntry(ctx context.Context, entry domain.JournalEntry, expectedVersion *int64, accountIDs []string, audit domain.AuditLogEntry) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := r.accountRepo.LockAccountsForUpdate(ctx, tx, accountIDs); err != nil {
		return err
	}

	m := mapping.ToModelJournalEntry(entry)
	err = optlock.Run(ctx, "journal entry", entry.EntryID, expectedVersion,
		func(ctx context.Context) (int64, error) {
			return readEntryVersionTx(ctx, tx, entry.EntryID)
		},
		func(ctx context.Context, currentVersion int64) (int64, error) {
			query := `
				UPDATE journal_entries
				SET status = $1, total_debit = $2, total_credit = $3, posted_by = $4, posted_at = $5,
				    version = version + 1, last_updated_at = $6, last_updated_by = $7
				WHERE entry_id = $8 AND version = $9 AND status = 'DRAFT';
			`
			tag, err := tx.Exec(ctx, query,
				m.Status,
				m.TotalDebit,
				m.TotalCredit,
				m.PostedBy,
				m.PostedAt,
				m.LastUpdatedAt,
				m.LastUpdatedBy,
				m.EntryID,
				currentVersion,
			)
			if err != nil {
				return 0, apperrors.NewAppError(500, "failed to post journal entry "+m.EntryID, err)
			}
			return tag.RowsAffected(), nil
		},
	)
	if err != nil {
		return err
	}

	if err := r.accountRepo.RecomputeBalancesInTx(ctx, tx, accountIDs, entry.LastUpdatedBy); err != nil {
		return err
	}
	if err := r.auditRepo.RecordInTx(ctx, tx, audit); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// VoidEntry marks the original entry VOID and persists the posted reversing entry
// with its lines. The original's update is guarded by its version and a POSTED
// status predicate. Balances are recomputed and both audit records written in the
// same transaction.
func (r *PgxJournalRepository) VoidEntry(ctx context.Context, original domain.JournalEntry, expectedVersion *int64, reversing domain.JournalEntry, reversingLines []domain.JournalEntryLine, accountIDs []string, audits []domain.AuditLogEntry) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := r.accountRepo.LockAccountsForUpdate(ctx, tx, accountIDs); err != nil {
		return err
	}

	m := mapping.ToModelJournalEntry(original)
	err = optlock.Run(ctx, "journal entry", original.EntryID, expectedVersion,
		func(ctx context.Context) (int64, error) {
			return readEntryVersionTx(ctx, tx, original.EntryID)
		},
		func(ctx context.Context, currentVersion int64) (int64, error) {
			query := `
				UPDATE journal_entries
				SET status = $1, void_reason = $2, reversed_by_entry_id = $3,
				    version = version + 1, last_updated_at = $4, last_updated_by = $5
				WHERE entry_id = $6 AND version = $7 AND status = 'POSTED';
			`
			tag, err := tx.Exec(ctx, query,
				m.Status,
				m.VoidReason,
				m.ReversedByEntryID,
				m.LastUpdatedAt,
				m.LastUpdatedBy,
				m.EntryID,
				currentVersion,
			)
			if err != nil {
				return 0, apperrors.NewAppError(500, "failed to void journal entry "+m.EntryID, err)
			}
			return tag.RowsAffected(), nil
		},
	)
	if err != nil {
		return err
	}

	if err := insertJournalEntryTx(ctx, tx, reversing); err != nil {
		return err
	}
	if err := insertJournalLinesTx(ctx, tx, reversingLines); err != nil {
		return err
	}
	if err := r.accountRepo.RecomputeBalancesInTx(ctx, tx, accountIDs, original.LastUpdatedBy); err != nil {
		return err
	}
	for _, audit := range audits {
		if err := r.auditRepo.RecordInTx(ctx, tx, audit); err != nil {
			return err
		}
	}

	return r.Commit(ctx, tx)
}

func readEntryVersionTx(ctx context.Context, tx pgx.Tx, entryID string) (int64, error) {
	var version int64
	err := tx.QueryRow(ctx, `SELECT version FROM journal_entries WHERE entry_id = $1 FOR UPDATE;`, entryID).Scan(&version)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.ErrNotFound
		}
		return 0, apperrors.NewAppError(500, "failed to read version for journal entry "+entryID, err)
	}
	return version, nil
}

// FindEntryByID retrieves a journal entry by its ID, without lines.
func (r *PgxJournalRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	query := `SELECT ` + journalEntryColumns + ` FROM journal_entries WHERE entry_id = $1;`

	m, err := scanJournalEntry(r.Pool.QueryRow(ctx, query, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find journal entry by ID "+entryID, err)
	}

	entry := mapping.ToDomainJournalEntry(m)
	return &entry, nil
}

// FindLinesByEntryID retrieves all lines belonging to a journal entry.
func (r *PgxJournalRepository) FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.JournalEntryLine, error) {
	query := `SELECT ` + journalLineColumns + ` FROM journal_entry_lines WHERE entry_id = $1 ORDER BY line_id;`

	rows, err := r.Pool.Query(ctx, query, entryID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query lines for journal entry "+entryID, err)
	}
	defer rows.Close()

	var lines []domain.JournalEntryLine
	for rows.Next() {
		var m models.JournalEntryLine
		err := rows.Scan(
			&m.LineID,
			&m.EntryID,
			&m.AccountID,
			&m.DebitAmount,
			&m.CreditAmount,
			&m.FundID,
			&m.MinistryID,
			&m.MemberID,
			&m.Description,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan line row for journal entry "+entryID, err)
		}
		lines = append(lines, mapping.ToDomainJournalEntryLine(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating line rows for journal entry "+entryID, err)
	}

	return lines, nil
}

// ListEntriesByOrg retrieves journal entries for an organisation, most recent first.
func (r *PgxJournalRepository) ListEntriesByOrg(ctx context.Context, organizationID string, limit int, offset int) ([]domain.JournalEntry, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT ` + journalEntryColumns + `
		FROM journal_entries
		WHERE organization_id = $1
		ORDER BY entry_date DESC, created_at DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, organizationID, limit, offset)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query journal entries for organization "+organizationID, err)
	}
	defer rows.Close()

	var entries []domain.JournalEntry
	for rows.Next() {
		m, err := scanJournalEntry(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan journal entry row", err)
		}
		entries = append(entries, mapping.ToDomainJournalEntry(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating journal entry rows", err)
	}

	return entries, nil
}
