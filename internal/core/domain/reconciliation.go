package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReconciliationStatus indicates the state of a bank reconciliation within the
// maker-checker workflow.
type ReconciliationStatus string

const (
	ReconDraft         ReconciliationStatus = "DRAFT"
	ReconPendingReview ReconciliationStatus = "PENDING_REVIEW"
	ReconApproved      ReconciliationStatus = "APPROVED"
	ReconRejected      ReconciliationStatus = "REJECTED"
	ReconVoided        ReconciliationStatus = "VOIDED"
)

// IsTerminal reports whether no further transitions are allowed from this status.
func (s ReconciliationStatus) IsTerminal() bool {
	return s == ReconApproved || s == ReconVoided
}

// CanTransitionTo reports whether the workflow permits moving to the target status.
func (s ReconciliationStatus) CanTransitionTo(target ReconciliationStatus) bool {
	switch target {
	case ReconPendingReview:
		return s == ReconDraft
	case ReconApproved, ReconRejected:
		return s == ReconPendingReview
	case ReconVoided:
		return !s.IsTerminal()
	default:
		return false
	}
}

// ValidReconciliationStatus reports whether the given string names a workflow state.
func ValidReconciliationStatus(s string) bool {
	switch ReconciliationStatus(s) {
	case ReconDraft, ReconPendingReview, ReconApproved, ReconRejected, ReconVoided:
		return true
	}
	return false
}

// BankReconciliation represents one reconciliation attempt for a bank account on a
// given date. At most one non-voided reconciliation exists per (bank account, date).
type BankReconciliation struct {
	ReconciliationID string `json:"reconciliationID"`
	OrgScope
	BankAccountID         string               `json:"bankAccountID"`
	ReconciliationDate    time.Time            `json:"reconciliationDate"` // UTC calendar day, no time component
	BankStatementBalance  decimal.Decimal      `json:"bankStatementBalance"`
	BookBalance           decimal.Decimal      `json:"bookBalance"`
	AdjustedBalance       decimal.Decimal      `json:"adjustedBalance"`
	Difference            decimal.Decimal      `json:"difference"` // Always re-derived: statement - book
	ClearedTransactionIDs []string             `json:"clearedTransactionIDs,omitempty"`
	Notes                 string               `json:"notes"`
	Status                ReconciliationStatus `json:"status"`
	PreparedBy            string               `json:"preparedBy"`
	PreparedAt            time.Time            `json:"preparedAt"`
	ReviewedBy            *string              `json:"reviewedBy,omitempty"`
	ReviewedAt            *time.Time           `json:"reviewedAt,omitempty"`
	ApprovedBy            *string              `json:"approvedBy,omitempty"`
	ApprovedAt            *time.Time           `json:"approvedAt,omitempty"`
	VoidReason            *string              `json:"voidReason,omitempty"`
	DocumentURL           *string              `json:"documentURL,omitempty"` // Opaque blob reference
	Version               int64                `json:"version"`               // Optimistic lock counter
	AuditFields
}
