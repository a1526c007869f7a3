package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/stewardly/ledger_engine/internal/apperrors"
	"github.com/stewardly/ledger_engine/internal/core/domain"
	portsrepo "github.com/stewardly/ledger_engine/internal/core/ports/repositories"
	portssvc "github.com/stewardly/ledger_engine/internal/core/ports/services"
)

// Entity type names recorded in the audit trail.
const (
	EntityJournalEntry   = "JOURNAL_ENTRY"
	EntityReconciliation = "BANK_RECONCILIATION"
	EntityBankAccount    = "BANK_ACCOUNT"
)

// auditService exposes reads over the audit trail. Writes ride the owning
// operation's transaction and are built with newAuditEntry below.
type auditService struct {
	auditRepo portsrepo.AuditRepositoryFacade
}

// NewAuditService creates a new audit trail read service.
func NewAuditService(auditRepo portsrepo.AuditRepositoryFacade) portssvc.AuditSvcFacade {
	return &auditService{auditRepo: auditRepo}
}

var _ portssvc.AuditSvcFacade = (*auditService)(nil)

func (s *auditService) ListByEntity(ctx context.Context, organizationID string, entityType string, entityID string, limit int, offset int) ([]domain.AuditLogEntry, error) {
	if limit <= 0 {
		limit = 50
	}
	entries, err := s.auditRepo.ListByEntity(ctx, entityType, entityID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}
	// Scope check: entries for another organisation are invisible.
	scoped := make([]domain.AuditLogEntry, 0, len(entries))
	for _, e := range entries {
		if e.OrganizationID == organizationID {
			scoped = append(scoped, e)
		}
	}
	return scoped, nil
}

// newAuditEntry builds an audit log entry with JSON snapshots of the entity before
// and after the mutation. A snapshot marshalling failure fails the operation: audit
// and mutation commit together or not at all.
func newAuditEntry(organizationID, entityType, entityID string, action domain.AuditAction, actorID string, before, after any, reason *string, now time.Time) (domain.AuditLogEntry, error) {
	entry := domain.AuditLogEntry{
		AuditID:        uuid.NewString(),
		OrganizationID: organizationID,
		EntityType:     entityType,
		EntityID:       entityID,
		Action:         action,
		ActorID:        actorID,
		Reason:         reason,
		OccurredAt:     now,
	}
	if before != nil {
		raw, err := json.Marshal(before)
		if err != nil {
			return domain.AuditLogEntry{}, fmt.Errorf("%w: failed to snapshot %s before state: %v", apperrors.ErrInternal, entityType, err)
		}
		entry.Before = raw
	}
	if after != nil {
		raw, err := json.Marshal(after)
		if err != nil {
			return domain.AuditLogEntry{}, fmt.Errorf("%w: failed to snapshot %s after state: %v", apperrors.ErrInternal, entityType, err)
		}
		entry.After = raw
	}
	return entry, nil
}
