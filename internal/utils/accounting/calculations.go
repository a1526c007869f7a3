package accounting

import (
	"github.com/shopspring/decimal"

	"github.com/stewardly/ledger_engine/internal/core/domain"
)

// RoundingTolerance is one minor currency unit. All monetary inputs are validated
// to two decimal places, so any real discrepancy is at least a full cent; only
// sub-cent residue from intermediate arithmetic passes the check.
var RoundingTolerance = decimal.NewFromFloat(0.01)

// WithinTolerance reports whether two amounts differ by strictly less than the
// rounding tolerance. A one-cent discrepancy is a real discrepancy.
func WithinTolerance(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThan(RoundingTolerance)
}

// HasAtMostTwoDecimals reports whether the amount has no more than two decimal places.
func HasAtMostTwoDecimals(d decimal.Decimal) bool {
	return d.Exponent() >= -2 || d.Equal(d.Round(2))
}

// LineTotals sums the debit and credit sides of a set of journal entry lines.
func LineTotals(lines []domain.JournalEntryLine) (totalDebit, totalCredit decimal.Decimal) {
	totalDebit = decimal.Zero
	totalCredit = decimal.Zero
	for _, line := range lines {
		totalDebit = totalDebit.Add(line.DebitAmount)
		totalCredit = totalCredit.Add(line.CreditAmount)
	}
	return totalDebit, totalCredit
}

// NaturalBalance converts raw debit/credit sums into a balance as seen from the
// account's normal side: debit-normal accounts grow with debits, credit-normal
// accounts grow with credits.
func NaturalBalance(side domain.BalanceSide, sumDebit, sumCredit decimal.Decimal) decimal.Decimal {
	if side == domain.DebitSide {
		return sumDebit.Sub(sumCredit)
	}
	return sumCredit.Sub(sumDebit)
}

// ReverseLines produces reversing legs for the given lines: debit and credit sides
// swapped, amounts unchanged. Used when voiding a posted entry.
func ReverseLines(lines []domain.JournalEntryLine) []domain.JournalEntryLine {
	reversed := make([]domain.JournalEntryLine, len(lines))
	for i, line := range lines {
		rev := line
		rev.DebitAmount = line.CreditAmount
		rev.CreditAmount = line.DebitAmount
		reversed[i] = rev
	}
	return reversed
}
