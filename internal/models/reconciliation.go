package models

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// BankAccount is the persistence model for a mirrored external bank account.
type BankAccount struct {
	BankAccountID  string          `db:"bank_account_id"`
	OrganizationID string          `db:"organization_id"`
	BranchID       *string         `db:"branch_id"`
	GLAccountID    string          `db:"gl_account_id"`
	Name           string          `db:"name"`
	AccountNumber  string          `db:"account_number"`
	BankName       string          `db:"bank_name"`
	LastReconciled *time.Time      `db:"last_reconciled"`
	BankBalance    decimal.Decimal `db:"bank_balance"`
	IsActive       bool            `db:"is_active"`
	AuditFields
}

// BankReconciliation is the persistence model for a reconciliation attempt.
type BankReconciliation struct {
	ReconciliationID      string          `db:"reconciliation_id"`
	OrganizationID        string          `db:"organization_id"`
	BranchID              *string         `db:"branch_id"`
	BankAccountID         string          `db:"bank_account_id"`
	ReconciliationDate    time.Time       `db:"reconciliation_date"`
	BankStatementBalance  decimal.Decimal `db:"bank_statement_balance"`
	BookBalance           decimal.Decimal `db:"book_balance"`
	AdjustedBalance       decimal.Decimal `db:"adjusted_balance"`
	Difference            decimal.Decimal `db:"difference"`
	ClearedTransactionIDs []string        `db:"cleared_transaction_ids"`
	Notes                 string          `db:"notes"`
	Status                string          `db:"status"`
	PreparedBy            string          `db:"prepared_by"`
	PreparedAt            time.Time       `db:"prepared_at"`
	ReviewedBy            *string         `db:"reviewed_by"`
	ReviewedAt            *time.Time      `db:"reviewed_at"`
	ApprovedBy            *string         `db:"approved_by"`
	ApprovedAt            *time.Time      `db:"approved_at"`
	VoidReason            *string         `db:"void_reason"`
	DocumentURL           *string         `db:"document_url"`
	Version               int64           `db:"version"`
	AuditFields
}

// AuditLogEntry is the persistence model for an audit trail row.
type AuditLogEntry struct {
	AuditID        string          `db:"audit_id"`
	OrganizationID string          `db:"organization_id"`
	EntityType     string          `db:"entity_type"`
	EntityID       string          `db:"entity_id"`
	Action         string          `db:"action"`
	ActorID        string          `db:"actor_id"`
	Before         json.RawMessage `db:"before_snapshot"`
	After          json.RawMessage `db:"after_snapshot"`
	Reason         *string         `db:"reason"`
	OccurredAt     time.Time       `db:"occurred_at"`
}
