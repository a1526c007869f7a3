package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// BalanceSide indicates which side increases an account's balance.
type BalanceSide string

const (
	DebitSide  BalanceSide = "DEBIT"
	CreditSide BalanceSide = "CREDIT"
)

// NormalBalanceSide returns the side that increases balances of this account type.
// ASSET/EXPENSE accounts are debit-normal; LIABILITY/EQUITY/REVENUE are credit-normal.
func (t AccountType) NormalBalanceSide() BalanceSide {
	switch t {
	case Asset, Expense:
		return DebitSide
	default:
		return CreditSide
	}
}

// Account represents a chart-of-accounts node.
// Balance is derived from posted lines and is never authoritative on its own.
type Account struct {
	AccountID string `json:"accountID"`
	OrgScope
	Code            string          `json:"code"`
	Name            string          `json:"name"`
	AccountType     AccountType     `json:"accountType"`
	NormalBalance   BalanceSide     `json:"normalBalance"`
	ParentAccountID *string         `json:"parentAccountID,omitempty"` // Nullable, tree
	FundID          *string         `json:"fundID,omitempty"`          // Nullable
	MinistryID      *string         `json:"ministryID,omitempty"`      // Nullable
	Description     string          `json:"description"`
	IsActive        bool            `json:"isActive"`
	Balance         decimal.Decimal `json:"balance"` // Derived from posted lines
	AuditFields
}
