package domain_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/stewardly/ledger_engine/internal/core/domain"
)

func TestJournalEntryLineSide(t *testing.T) {
	debitLine := domain.JournalEntryLine{DebitAmount: decimal.NewFromInt(10), CreditAmount: decimal.Zero}
	creditLine := domain.JournalEntryLine{DebitAmount: decimal.Zero, CreditAmount: decimal.NewFromInt(10)}

	assert.Equal(t, domain.DebitSide, debitLine.Side())
	assert.Equal(t, domain.CreditSide, creditLine.Side())
}

func TestJournalEntryLineIsWellFormed(t *testing.T) {
	testCases := []struct {
		name   string
		debit  string
		credit string
		want   bool
	}{
		{name: "debit only", debit: "10.00", credit: "0", want: true},
		{name: "credit only", debit: "0", credit: "10.00", want: true},
		{name: "both sides set", debit: "10.00", credit: "10.00", want: false},
		{name: "neither side set", debit: "0", credit: "0", want: false},
		{name: "negative debit", debit: "-5.00", credit: "0", want: false},
		{name: "negative credit", debit: "0", credit: "-5.00", want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			line := domain.JournalEntryLine{
				DebitAmount:  decimal.RequireFromString(tc.debit),
				CreditAmount: decimal.RequireFromString(tc.credit),
			}
			assert.Equal(t, tc.want, line.IsWellFormed())
		})
	}
}

func TestFiscalYearPeriod(t *testing.T) {
	year, period := domain.FiscalYearPeriod(time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, 2026, year)
	assert.Equal(t, 3, period)
}

func TestAccountTypeNormalBalanceSide(t *testing.T) {
	assert.Equal(t, domain.DebitSide, domain.Asset.NormalBalanceSide())
	assert.Equal(t, domain.DebitSide, domain.Expense.NormalBalanceSide())
	assert.Equal(t, domain.CreditSide, domain.Liability.NormalBalanceSide())
	assert.Equal(t, domain.CreditSide, domain.Equity.NormalBalanceSide())
	assert.Equal(t, domain.CreditSide, domain.Revenue.NormalBalanceSide())
}
