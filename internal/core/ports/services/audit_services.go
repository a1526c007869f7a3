package services

import (
	"context"

	"github.com/stewardly/ledger_engine/internal/core/domain"
)

// AuditSvcFacade exposes reads over the append-only audit trail. Writes happen
// inside the owning operation's transaction and have no standalone service path.
type AuditSvcFacade interface {
	// ListByEntity retrieves audit entries for an entity, oldest first.
	ListByEntity(ctx context.Context, organizationID string, entityType string, entityID string, limit int, offset int) ([]domain.AuditLogEntry, error)
}
