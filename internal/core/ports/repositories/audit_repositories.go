package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/stewardly/ledger_engine/internal/core/domain"
)

// AuditWriter appends audit log entries. Record never fails silently: a failed audit
// write fails the enclosing transaction, so audit and mutation commit together or
// not at all.
type AuditWriter interface {
	// RecordInTx appends an audit entry within the given transaction.
	RecordInTx(ctx context.Context, tx pgx.Tx, entry domain.AuditLogEntry) error
}

// AuditReader defines read operations over the append-only audit trail.
type AuditReader interface {
	// ListByEntity retrieves audit entries for an entity, oldest first.
	ListByEntity(ctx context.Context, entityType string, entityID string, limit int, offset int) ([]domain.AuditLogEntry, error)
}

// AuditRepositoryFacade combines the audit repository interfaces.
type AuditRepositoryFacade interface {
	AuditWriter
	AuditReader
}
