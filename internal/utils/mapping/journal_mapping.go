package mapping

import (
	"github.com/stewardly/ledger_engine/internal/core/domain"
	"github.com/stewardly/ledger_engine/internal/models"
)

// ToModelJournalEntry converts a domain JournalEntry to a model JournalEntry.
func ToModelJournalEntry(d domain.JournalEntry) models.JournalEntry {
	return models.JournalEntry{
		EntryID:           d.EntryID,
		OrganizationID:    d.OrganizationID,
		BranchID:          strPtr(d.BranchID),
		EntryNumber:       d.EntryNumber,
		EntryDate:         d.EntryDate,
		FiscalYear:        d.FiscalYear,
		FiscalPeriod:      d.FiscalPeriod,
		EntryType:         string(d.EntryType),
		SourceModule:      strPtr(d.SourceModule),
		SourceRef:         strPtr(d.SourceRef),
		Description:       d.Description,
		Status:            string(d.Status),
		TotalDebit:        d.TotalDebit,
		TotalCredit:       d.TotalCredit,
		Version:           d.Version,
		PostedBy:          d.PostedBy,
		PostedAt:          d.PostedAt,
		VoidReason:        d.VoidReason,
		ReversedByEntryID: d.ReversedByEntryID,
		ReversesEntryID:   d.ReversesEntryID,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainJournalEntry converts a model JournalEntry to a domain JournalEntry.
func ToDomainJournalEntry(m models.JournalEntry) domain.JournalEntry {
	return domain.JournalEntry{
		EntryID:           m.EntryID,
		OrgScope:          domain.OrgScope{OrganizationID: m.OrganizationID, BranchID: strVal(m.BranchID)},
		EntryNumber:       m.EntryNumber,
		EntryDate:         m.EntryDate,
		FiscalYear:        m.FiscalYear,
		FiscalPeriod:      m.FiscalPeriod,
		EntryType:         domain.JournalEntryType(m.EntryType),
		SourceModule:      strVal(m.SourceModule),
		SourceRef:         strVal(m.SourceRef),
		Description:       m.Description,
		Status:            domain.JournalEntryStatus(m.Status),
		TotalDebit:        m.TotalDebit,
		TotalCredit:       m.TotalCredit,
		Version:           m.Version,
		PostedBy:          m.PostedBy,
		PostedAt:          m.PostedAt,
		VoidReason:        m.VoidReason,
		ReversedByEntryID: m.ReversedByEntryID,
		ReversesEntryID:   m.ReversesEntryID,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelJournalEntryLine converts a domain line to a model line.
func ToModelJournalEntryLine(d domain.JournalEntryLine) models.JournalEntryLine {
	return models.JournalEntryLine{
		LineID:       d.LineID,
		EntryID:      d.EntryID,
		AccountID:    d.AccountID,
		DebitAmount:  d.DebitAmount,
		CreditAmount: d.CreditAmount,
		FundID:       d.FundID,
		MinistryID:   d.MinistryID,
		MemberID:     d.MemberID,
		Description:  d.Description,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainJournalEntryLine converts a model line to a domain line.
func ToDomainJournalEntryLine(m models.JournalEntryLine) domain.JournalEntryLine {
	return domain.JournalEntryLine{
		LineID:       m.LineID,
		EntryID:      m.EntryID,
		AccountID:    m.AccountID,
		DebitAmount:  m.DebitAmount,
		CreditAmount: m.CreditAmount,
		FundID:       m.FundID,
		MinistryID:   m.MinistryID,
		MemberID:     m.MemberID,
		Description:  m.Description,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}
