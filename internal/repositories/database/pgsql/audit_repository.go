package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/stewardly/ledger_engine/internal/apperrors"
	"github.com/stewardly/ledger_engine/internal/core/domain"
	portsrepo "github.com/stewardly/ledger_engine/internal/core/ports/repositories"
	"github.com/stewardly/ledger_engine/internal/models"
	"github.com/stewardly/ledger_engine/internal/utils/mapping"
)

type PgxAuditRepository struct {
	BaseRepository
}

// newPgxAuditRepository creates a new repository for the append-only audit trail.
func newPgxAuditRepository(pool *pgxpool.Pool) portsrepo.AuditRepositoryFacade {
	return &PgxAuditRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AuditRepositoryFacade = (*PgxAuditRepository)(nil)

// RecordInTx appends an audit entry within the caller's transaction. There is no
// update or delete path; the table only ever grows.
func (r *PgxAuditRepository) RecordInTx(ctx context.Context, tx pgx.Tx, entry domain.AuditLogEntry) error {
	m := mapping.ToModelAuditLogEntry(entry)
	query := `
		INSERT INTO audit_log (audit_id, organization_id, entity_type, entity_id, action, actor_id,
			before_snapshot, after_snapshot, reason, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := tx.Exec(ctx, query,
		m.AuditID,
		m.OrganizationID,
		m.EntityType,
		m.EntityID,
		m.Action,
		m.ActorID,
		m.Before,
		m.After,
		m.Reason,
		m.OccurredAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to record audit entry for "+m.EntityType+" "+m.EntityID, err)
	}
	return nil
}

// ListByEntity retrieves audit entries for an entity, oldest first.
func (r *PgxAuditRepository) ListByEntity(ctx context.Context, entityType string, entityID string, limit int, offset int) ([]domain.AuditLogEntry, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT audit_id, organization_id, entity_type, entity_id, action, actor_id,
		       before_snapshot, after_snapshot, reason, occurred_at
		FROM audit_log
		WHERE entity_type = $1 AND entity_id = $2
		ORDER BY occurred_at ASC, audit_id ASC
		LIMIT $3 OFFSET $4;
	`
	rows, err := r.Pool.Query(ctx, query, entityType, entityID, limit, offset)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query audit entries for "+entityType+" "+entityID, err)
	}
	defer rows.Close()

	var entries []domain.AuditLogEntry
	for rows.Next() {
		var m models.AuditLogEntry
		err := rows.Scan(
			&m.AuditID,
			&m.OrganizationID,
			&m.EntityType,
			&m.EntityID,
			&m.Action,
			&m.ActorID,
			&m.Before,
			&m.After,
			&m.Reason,
			&m.OccurredAt,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan audit entry row", err)
		}
		entries = append(entries, mapping.ToDomainAuditLogEntry(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating audit entry rows", err)
	}

	return entries, nil
}
