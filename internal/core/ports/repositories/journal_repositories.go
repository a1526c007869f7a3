package repositories

import (
	"context"

	"github.com/stewardly/ledger_engine/internal/core/domain"
)

// JournalEntryReader defines read operations for journal entry data.
type JournalEntryReader interface {
	// FindEntryByID retrieves a specific journal entry by its unique identifier.
	FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	// FindLinesByEntryID retrieves all lines belonging to a journal entry.
	FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.JournalEntryLine, error)

	// ListEntriesByOrg retrieves journal entries for an organisation, most recent first.
	ListEntriesByOrg(ctx context.Context, organizationID string, limit int, offset int) ([]domain.JournalEntry, error)
}

// JournalEntryWriter defines write operations for journal entry data. Each method
// owns a single database transaction: entry, lines, account balances, and the audit
// entry commit or roll back together.
type JournalEntryWriter interface {
	// SaveDraftEntry persists a new DRAFT entry with its lines and an audit entry.
	SaveDraftEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalEntryLine, audit domain.AuditLogEntry) error

	// PostEntry transitions a DRAFT entry to POSTED with a version-guarded update,
	// recomputes the referenced accounts' balances and writes the audit entry.
	// expectedVersion nil means the caller opted out of version checking.
	PostEntry(ctx context.Context, entry domain.JournalEntry, expectedVersion *int64, accountIDs []string, audit domain.AuditLogEntry) error

	// VoidEntry marks the original entry VOID (version-guarded) and persists the
	// posted reversing entry with its lines, balance recompute and audit entries
	// in the same transaction.
	VoidEntry(ctx context.Context, original domain.JournalEntry, expectedVersion *int64, reversing domain.JournalEntry, reversingLines []domain.JournalEntryLine, accountIDs []string, audits []domain.AuditLogEntry) error
}

// JournalRepositoryFacade combines all journal-entry repository interfaces.
type JournalRepositoryFacade interface {
	JournalEntryReader
	JournalEntryWriter
}
