package accounting_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/stewardly/ledger_engine/internal/core/domain"
	"github.com/stewardly/ledger_engine/internal/utils/accounting"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestWithinTolerance(t *testing.T) {
	testCases := []struct {
		name string
		a    string
		b    string
		want bool
	}{
		{name: "equal amounts", a: "100.00", b: "100.00", want: true},
		{name: "sub-cent residue", a: "100.005", b: "100.00", want: true},
		{name: "exactly one cent apart", a: "100.00", b: "99.99", want: false},
		{name: "order does not matter", a: "99.99", b: "100.00", want: false},
		{name: "negative amounts one cent apart", a: "-50.00", b: "-50.01", want: false},
		{name: "large divergence", a: "1000.00", b: "10.00", want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, accounting.WithinTolerance(dec(tc.a), dec(tc.b)))
		})
	}
}

func TestHasAtMostTwoDecimals(t *testing.T) {
	testCases := []struct {
		name   string
		amount string
		want   bool
	}{
		{name: "whole number", amount: "100", want: true},
		{name: "two decimals", amount: "100.25", want: true},
		{name: "three decimals", amount: "100.255", want: false},
		{name: "trailing zero past two places", amount: "100.250", want: true},
		{name: "negative with two decimals", amount: "-0.01", want: true},
		{name: "sub-cent fraction", amount: "0.001", want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, accounting.HasAtMostTwoDecimals(dec(tc.amount)))
		})
	}
}

func TestLineTotals(t *testing.T) {
	lines := []domain.JournalEntryLine{
		{DebitAmount: dec("100.50"), CreditAmount: decimal.Zero},
		{DebitAmount: dec("49.50"), CreditAmount: decimal.Zero},
		{DebitAmount: decimal.Zero, CreditAmount: dec("150.00")},
	}

	totalDebit, totalCredit := accounting.LineTotals(lines)

	assert.True(t, totalDebit.Equal(dec("150.00")))
	assert.True(t, totalCredit.Equal(dec("150.00")))
}

func TestLineTotals_Empty(t *testing.T) {
	totalDebit, totalCredit := accounting.LineTotals(nil)

	assert.True(t, totalDebit.IsZero())
	assert.True(t, totalCredit.IsZero())
}

func TestNaturalBalance(t *testing.T) {
	sumDebit := dec("500.00")
	sumCredit := dec("120.00")

	assert.True(t, accounting.NaturalBalance(domain.DebitSide, sumDebit, sumCredit).Equal(dec("380.00")),
		"a debit-normal account grows with debits")
	assert.True(t, accounting.NaturalBalance(domain.CreditSide, sumDebit, sumCredit).Equal(dec("-380.00")),
		"a credit-normal account shrinks with debits")
}

func TestReverseLines(t *testing.T) {
	accountID := "acc-1"
	lines := []domain.JournalEntryLine{
		{AccountID: accountID, DebitAmount: dec("75.00"), CreditAmount: decimal.Zero, Description: "original leg"},
		{AccountID: "acc-2", DebitAmount: decimal.Zero, CreditAmount: dec("75.00")},
	}

	reversed := accounting.ReverseLines(lines)

	assert.Len(t, reversed, 2)
	assert.Equal(t, accountID, reversed[0].AccountID)
	assert.True(t, reversed[0].DebitAmount.IsZero())
	assert.True(t, reversed[0].CreditAmount.Equal(dec("75.00")))
	assert.True(t, reversed[1].DebitAmount.Equal(dec("75.00")))
	assert.True(t, reversed[1].CreditAmount.IsZero())

	// Originals are untouched.
	assert.True(t, lines[0].DebitAmount.Equal(dec("75.00")))
}
