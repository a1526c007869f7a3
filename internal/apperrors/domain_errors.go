package apperrors

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// The typed errors below carry enough context (amounts, ids) for a caller to explain
// the failure to a human. Each unwraps to one of the sentinel errors in errors.go so
// callers can branch with errors.Is without type-asserting.

// UnbalancedEntryError is returned when a journal entry's debit and credit totals
// differ beyond rounding tolerance at post time.
type UnbalancedEntryError struct {
	EntryID     string
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
}

func (e *UnbalancedEntryError) Error() string {
	return fmt.Sprintf("journal entry %s does not balance: debits %s, credits %s",
		e.EntryID, e.TotalDebit.StringFixed(2), e.TotalCredit.StringFixed(2))
}

func (e *UnbalancedEntryError) Unwrap() error { return ErrValidation }

// BookBalanceMismatchError is returned when the caller-supplied book balance does not
// match the balance independently summed from posted ledger lines.
type BookBalanceMismatchError struct {
	BankAccountID string
	GLAccountID   string
	Reported      decimal.Decimal
	Computed      decimal.Decimal
}

func (e *BookBalanceMismatchError) Error() string {
	return fmt.Sprintf("book balance %s does not match ledger balance %s for GL account %s",
		e.Reported.StringFixed(2), e.Computed.StringFixed(2), e.GLAccountID)
}

func (e *BookBalanceMismatchError) Unwrap() error { return ErrValidation }

// LargeVarianceError is returned when the statement balance moved too far from the
// previous reconciliation's statement balance. Requires explicit human confirmation
// through a separate path; the engine never overrides it silently.
type LargeVarianceError struct {
	BankAccountID   string
	PreviousBalance decimal.Decimal
	CurrentBalance  decimal.Decimal
	ChangePercent   decimal.Decimal
}

func (e *LargeVarianceError) Error() string {
	return fmt.Sprintf("statement balance changed by %s%% (from %s to %s); confirmation required",
		e.ChangePercent.StringFixed(1), e.PreviousBalance.StringFixed(2), e.CurrentBalance.StringFixed(2))
}

func (e *LargeVarianceError) Unwrap() error { return ErrValidation }

// DuplicateReconciliationError is returned when a non-voided reconciliation already
// exists for the same bank account and date.
type DuplicateReconciliationError struct {
	BankAccountID      string
	ReconciliationDate time.Time
	ExistingID         string
}

func (e *DuplicateReconciliationError) Error() string {
	return fmt.Sprintf("a reconciliation already exists for bank account %s on %s",
		e.BankAccountID, e.ReconciliationDate.Format("2006-01-02"))
}

func (e *DuplicateReconciliationError) Unwrap() error { return ErrConflict }

// SelfApprovalError is returned when the preparer of a reconciliation attempts to
// approve it, violating separation of duties.
type SelfApprovalError struct {
	ReconciliationID string
	ActorID          string
}

func (e *SelfApprovalError) Error() string {
	return fmt.Sprintf("user %s prepared reconciliation %s and cannot approve it",
		e.ActorID, e.ReconciliationID)
}

func (e *SelfApprovalError) Unwrap() error { return ErrForbidden }
