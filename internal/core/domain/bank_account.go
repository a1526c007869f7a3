package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BankAccount mirrors an external bank account through an internal GL account.
type BankAccount struct {
	BankAccountID string `json:"bankAccountID"`
	OrgScope
	GLAccountID    string          `json:"glAccountID"` // Linked chart-of-accounts account
	Name           string          `json:"name"`
	AccountNumber  string          `json:"accountNumber"`
	BankName       string          `json:"bankName"`
	LastReconciled *time.Time      `json:"lastReconciled,omitempty"` // Date of last approved reconciliation
	BankBalance    decimal.Decimal `json:"bankBalance"`              // Last known statement balance
	IsActive       bool            `json:"isActive"`
	AuditFields
}
