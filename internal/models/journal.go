package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry is the persistence model for a journal entry header.
type JournalEntry struct {
	EntryID           string          `db:"entry_id"`
	OrganizationID    string          `db:"organization_id"`
	BranchID          *string         `db:"branch_id"`
	EntryNumber       string          `db:"entry_number"`
	EntryDate         time.Time       `db:"entry_date"`
	FiscalYear        int             `db:"fiscal_year"`
	FiscalPeriod      int             `db:"fiscal_period"`
	EntryType         string          `db:"entry_type"`
	SourceModule      *string         `db:"source_module"`
	SourceRef         *string         `db:"source_ref"`
	Description       string          `db:"description"`
	Status            string          `db:"status"`
	TotalDebit        decimal.Decimal `db:"total_debit"`
	TotalCredit       decimal.Decimal `db:"total_credit"`
	Version           int64           `db:"version"`
	PostedBy          *string         `db:"posted_by"`
	PostedAt          *time.Time      `db:"posted_at"`
	VoidReason        *string         `db:"void_reason"`
	ReversedByEntryID *string         `db:"reversed_by_entry_id"`
	ReversesEntryID   *string         `db:"reverses_entry_id"`
	AuditFields
}

// JournalEntryLine is the persistence model for one leg of a journal entry.
type JournalEntryLine struct {
	LineID       string          `db:"line_id"`
	EntryID      string          `db:"entry_id"`
	AccountID    string          `db:"account_id"`
	DebitAmount  decimal.Decimal `db:"debit_amount"`
	CreditAmount decimal.Decimal `db:"credit_amount"`
	FundID       *string         `db:"fund_id"`
	MinistryID   *string         `db:"ministry_id"`
	MemberID     *string         `db:"member_id"`
	Description  string          `db:"description"`
	AuditFields
}
