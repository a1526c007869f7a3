package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntryStatus indicates the state of a journal entry.
type JournalEntryStatus string

const (
	EntryDraft  JournalEntryStatus = "DRAFT"
	EntryPosted JournalEntryStatus = "POSTED"
	EntryVoid   JournalEntryStatus = "VOID"
)

// JournalEntryType categorises the origin of an entry.
type JournalEntryType string

const (
	EntryTypeStandard  JournalEntryType = "STANDARD"
	EntryTypeReversing JournalEntryType = "REVERSING"
	EntryTypeAdjusting JournalEntryType = "ADJUSTING"
)

// JournalEntry represents one atomic accounting event composed of balanced lines.
// A posted entry is immutable; voiding creates a reversing entry rather than
// mutating history.
type JournalEntry struct {
	EntryID string `json:"entryID"`
	OrgScope
	EntryNumber       string             `json:"entryNumber"` // Human-readable, e.g. JE-20240131-a1b2c3d4
	EntryDate         time.Time          `json:"entryDate"`
	FiscalYear        int                `json:"fiscalYear"`   // Derived from EntryDate
	FiscalPeriod      int                `json:"fiscalPeriod"` // Derived from EntryDate (calendar month)
	EntryType         JournalEntryType   `json:"entryType"`
	SourceModule      string             `json:"sourceModule,omitempty"` // Originating module, nullable
	SourceRef         string             `json:"sourceRef,omitempty"`    // Reference in the source module
	Description       string             `json:"description"`
	Status            JournalEntryStatus `json:"status"`
	TotalDebit        decimal.Decimal    `json:"totalDebit"`  // Cached; recomputed from lines at post time
	TotalCredit       decimal.Decimal    `json:"totalCredit"` // Cached; recomputed from lines at post time
	Version           int64              `json:"version"`     // Optimistic lock counter
	PostedBy          *string            `json:"postedBy,omitempty"`
	PostedAt          *time.Time         `json:"postedAt,omitempty"`
	VoidReason        *string            `json:"voidReason,omitempty"`
	ReversedByEntryID *string            `json:"reversedByEntryID,omitempty"` // Set when voided
	ReversesEntryID   *string            `json:"reversesEntryID,omitempty"`   // Set on the reversing entry
	Lines             []JournalEntryLine `json:"lines,omitempty"`             // Often loaded separately
	AuditFields
}

// FiscalYearPeriod derives the fiscal year and period from an entry date.
// Periods are calendar months; the fiscal year follows the calendar year.
func FiscalYearPeriod(entryDate time.Time) (year int, period int) {
	return entryDate.Year(), int(entryDate.Month())
}

// JournalEntryLine represents one leg of a journal entry, affecting one account.
// Exactly one of DebitAmount/CreditAmount is non-zero; both are non-negative.
type JournalEntryLine struct {
	LineID       string          `json:"lineID"`
	EntryID      string          `json:"entryID"`
	AccountID    string          `json:"accountID"`
	DebitAmount  decimal.Decimal `json:"debitAmount"`
	CreditAmount decimal.Decimal `json:"creditAmount"`
	FundID       *string         `json:"fundID,omitempty"`
	MinistryID   *string         `json:"ministryID,omitempty"`
	MemberID     *string         `json:"memberID,omitempty"`
	Description  string          `json:"description"`
	AuditFields
}

// Side returns which side this line contributes to.
func (l JournalEntryLine) Side() BalanceSide {
	if l.DebitAmount.IsPositive() {
		return DebitSide
	}
	return CreditSide
}

// IsWellFormed reports whether the line contributes to exactly one side with a
// positive amount and carries no negative amounts.
func (l JournalEntryLine) IsWellFormed() bool {
	if l.DebitAmount.IsNegative() || l.CreditAmount.IsNegative() {
		return false
	}
	return l.DebitAmount.IsPositive() != l.CreditAmount.IsPositive()
}
