package domain

import (
	"encoding/json"
	"time"
)

// AuditAction names the mutation recorded by an audit log entry.
type AuditAction string

const (
	ActionCreate          AuditAction = "CREATE"
	ActionPost            AuditAction = "POST"
	ActionVoid            AuditAction = "VOID"
	ActionSubmitForReview AuditAction = "SUBMIT_FOR_REVIEW"
	ActionApprove         AuditAction = "APPROVE"
	ActionReject          AuditAction = "REJECT"
)

// AuditLogEntry is an immutable record of a mutation. Entries are created, never
// updated or deleted, and always committed in the same transaction as the mutation
// they describe.
type AuditLogEntry struct {
	AuditID        string          `json:"auditID"`
	OrganizationID string          `json:"organizationID"`
	EntityType     string          `json:"entityType"`
	EntityID       string          `json:"entityID"`
	Action         AuditAction     `json:"action"`
	ActorID        string          `json:"actorID"`
	Before         json.RawMessage `json:"before,omitempty"` // Snapshot prior to the mutation
	After          json.RawMessage `json:"after,omitempty"`  // Snapshot after the mutation
	Reason         *string         `json:"reason,omitempty"`
	OccurredAt     time.Time       `json:"occurredAt"`
}
