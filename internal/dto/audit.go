package dto

import (
	"encoding/json"
	"time"

	"github.com/stewardly/ledger_engine/internal/core/domain"
)

// AuditLogResponse defines the data returned for an audit trail entry.
type AuditLogResponse struct {
	AuditID    string          `json:"auditID"`
	EntityType string          `json:"entityType"`
	EntityID   string          `json:"entityID"`
	Action     string          `json:"action"`
	ActorID    string          `json:"actorID"`
	Before     json.RawMessage `json:"before,omitempty"`
	After      json.RawMessage `json:"after,omitempty"`
	Reason     *string         `json:"reason,omitempty"`
	OccurredAt time.Time       `json:"occurredAt"`
}

// ToAuditLogResponses converts domain audit entries to their response DTOs.
func ToAuditLogResponses(entries []domain.AuditLogEntry) []AuditLogResponse {
	responses := make([]AuditLogResponse, len(entries))
	for i, e := range entries {
		responses[i] = AuditLogResponse{
			AuditID:    e.AuditID,
			EntityType: e.EntityType,
			EntityID:   e.EntityID,
			Action:     string(e.Action),
			ActorID:    e.ActorID,
			Before:     e.Before,
			After:      e.After,
			Reason:     e.Reason,
			OccurredAt: e.OccurredAt,
		}
	}
	return responses
}
