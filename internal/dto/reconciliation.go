package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/stewardly/ledger_engine/internal/core/domain"
)

// SaveReconciliationRequest creates a bank reconciliation. Difference is re-derived
// server-side; the caller-supplied value is only cross-checked, never trusted.
type SaveReconciliationRequest struct {
	BankAccountID         string          `json:"bankAccountID" binding:"required"`
	ReconciliationDate    time.Time       `json:"reconciliationDate" binding:"required"`
	BankStatementBalance  decimal.Decimal `json:"bankStatementBalance"`
	BookBalance           decimal.Decimal `json:"bookBalance"`
	AdjustedBalance       decimal.Decimal `json:"adjustedBalance"`
	Difference            decimal.Decimal `json:"difference"`
	ClearedTransactionIDs []string        `json:"clearedTransactionIDs,omitempty"`
	Notes                 string          `json:"notes"`
	Status                *string         `json:"status,omitempty"`
	DocumentURL           *string         `json:"documentURL,omitempty"`
	BranchID              string          `json:"branchID"`
}

// ReconciliationActionRequest carries the optional optimistic-lock version for a
// workflow transition.
type ReconciliationActionRequest struct {
	ExpectedVersion *int64 `json:"expectedVersion,omitempty"`
}

// RejectReconciliationRequest rejects a reconciliation under review.
type RejectReconciliationRequest struct {
	Reason          string `json:"reason" binding:"required,max=2000"`
	ExpectedVersion *int64 `json:"expectedVersion,omitempty"`
}

// VoidReconciliationRequest voids a non-terminal reconciliation.
type VoidReconciliationRequest struct {
	Reason string `json:"reason" binding:"required,max=2000"`
}

// ReconciliationResponse defines the data returned for a bank reconciliation.
type ReconciliationResponse struct {
	ReconciliationID      string          `json:"reconciliationID"`
	BankAccountID         string          `json:"bankAccountID"`
	ReconciliationDate    time.Time       `json:"reconciliationDate"`
	BankStatementBalance  decimal.Decimal `json:"bankStatementBalance"`
	BookBalance           decimal.Decimal `json:"bookBalance"`
	AdjustedBalance       decimal.Decimal `json:"adjustedBalance"`
	Difference            decimal.Decimal `json:"difference"`
	ClearedTransactionIDs []string        `json:"clearedTransactionIDs,omitempty"`
	Notes                 string          `json:"notes"`
	Status                string          `json:"status"`
	PreparedBy            string          `json:"preparedBy"`
	PreparedAt            time.Time       `json:"preparedAt"`
	ReviewedBy            *string         `json:"reviewedBy,omitempty"`
	ReviewedAt            *time.Time      `json:"reviewedAt,omitempty"`
	ApprovedBy            *string         `json:"approvedBy,omitempty"`
	ApprovedAt            *time.Time      `json:"approvedAt,omitempty"`
	VoidReason            *string         `json:"voidReason,omitempty"`
	DocumentURL           *string         `json:"documentURL,omitempty"`
	Version               int64           `json:"version"`
}

// ListReconciliationsParams holds pagination parameters.
type ListReconciliationsParams struct {
	Limit  int `form:"limit"`
	Offset int `form:"offset"`
}

// ToReconciliationResponse converts a domain reconciliation to its response DTO.
func ToReconciliationResponse(r *domain.BankReconciliation) ReconciliationResponse {
	return ReconciliationResponse{
		ReconciliationID:      r.ReconciliationID,
		BankAccountID:         r.BankAccountID,
		ReconciliationDate:    r.ReconciliationDate,
		BankStatementBalance:  r.BankStatementBalance,
		BookBalance:           r.BookBalance,
		AdjustedBalance:       r.AdjustedBalance,
		Difference:            r.Difference,
		ClearedTransactionIDs: r.ClearedTransactionIDs,
		Notes:                 r.Notes,
		Status:                string(r.Status),
		PreparedBy:            r.PreparedBy,
		PreparedAt:            r.PreparedAt,
		ReviewedBy:            r.ReviewedBy,
		ReviewedAt:            r.ReviewedAt,
		ApprovedBy:            r.ApprovedBy,
		ApprovedAt:            r.ApprovedAt,
		VoidReason:            r.VoidReason,
		DocumentURL:           r.DocumentURL,
		Version:               r.Version,
	}
}

// ToReconciliationResponses converts a slice of domain reconciliations.
func ToReconciliationResponses(recons []domain.BankReconciliation) []ReconciliationResponse {
	responses := make([]ReconciliationResponse, len(recons))
	for i := range recons {
		responses[i] = ToReconciliationResponse(&recons[i])
	}
	return responses
}
