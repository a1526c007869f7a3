package mapping

import (
	"github.com/stewardly/ledger_engine/internal/core/domain"
	"github.com/stewardly/ledger_engine/internal/models"
)

// ToModelBankAccount converts a domain BankAccount to its persistence model.
func ToModelBankAccount(d domain.BankAccount) models.BankAccount {
	return models.BankAccount{
		BankAccountID:  d.BankAccountID,
		OrganizationID: d.OrganizationID,
		BranchID:       strPtr(d.BranchID),
		GLAccountID:    d.GLAccountID,
		Name:           d.Name,
		AccountNumber:  d.AccountNumber,
		BankName:       d.BankName,
		LastReconciled: d.LastReconciled,
		BankBalance:    d.BankBalance,
		IsActive:       d.IsActive,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBankAccount converts a persistence model BankAccount to its domain form.
func ToDomainBankAccount(m models.BankAccount) domain.BankAccount {
	return domain.BankAccount{
		BankAccountID:  m.BankAccountID,
		OrgScope:       domain.OrgScope{OrganizationID: m.OrganizationID, BranchID: strVal(m.BranchID)},
		GLAccountID:    m.GLAccountID,
		Name:           m.Name,
		AccountNumber:  m.AccountNumber,
		BankName:       m.BankName,
		LastReconciled: m.LastReconciled,
		BankBalance:    m.BankBalance,
		IsActive:       m.IsActive,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelReconciliation converts a domain BankReconciliation to its persistence model.
func ToModelReconciliation(d domain.BankReconciliation) models.BankReconciliation {
	return models.BankReconciliation{
		ReconciliationID:      d.ReconciliationID,
		OrganizationID:        d.OrganizationID,
		BranchID:              strPtr(d.BranchID),
		BankAccountID:         d.BankAccountID,
		ReconciliationDate:    d.ReconciliationDate,
		BankStatementBalance:  d.BankStatementBalance,
		BookBalance:           d.BookBalance,
		AdjustedBalance:       d.AdjustedBalance,
		Difference:            d.Difference,
		ClearedTransactionIDs: d.ClearedTransactionIDs,
		Notes:                 d.Notes,
		Status:                string(d.Status),
		PreparedBy:            d.PreparedBy,
		PreparedAt:            d.PreparedAt,
		ReviewedBy:            d.ReviewedBy,
		ReviewedAt:            d.ReviewedAt,
		ApprovedBy:            d.ApprovedBy,
		ApprovedAt:            d.ApprovedAt,
		VoidReason:            d.VoidReason,
		DocumentURL:           d.DocumentURL,
		Version:               d.Version,
		AuditFields:           ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainReconciliation converts a persistence model BankReconciliation to its domain form.
func ToDomainReconciliation(m models.BankReconciliation) domain.BankReconciliation {
	return domain.BankReconciliation{
		ReconciliationID:      m.ReconciliationID,
		OrgScope:              domain.OrgScope{OrganizationID: m.OrganizationID, BranchID: strVal(m.BranchID)},
		BankAccountID:         m.BankAccountID,
		ReconciliationDate:    m.ReconciliationDate,
		BankStatementBalance:  m.BankStatementBalance,
		BookBalance:           m.BookBalance,
		AdjustedBalance:       m.AdjustedBalance,
		Difference:            m.Difference,
		ClearedTransactionIDs: m.ClearedTransactionIDs,
		Notes:                 m.Notes,
		Status:                domain.ReconciliationStatus(m.Status),
		PreparedBy:            m.PreparedBy,
		PreparedAt:            m.PreparedAt,
		ReviewedBy:            m.ReviewedBy,
		ReviewedAt:            m.ReviewedAt,
		ApprovedBy:            m.ApprovedBy,
		ApprovedAt:            m.ApprovedAt,
		VoidReason:            m.VoidReason,
		DocumentURL:           m.DocumentURL,
		Version:               m.Version,
		AuditFields:           ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelAuditLogEntry converts a domain AuditLogEntry to its persistence model.
func ToModelAuditLogEntry(d domain.AuditLogEntry) models.AuditLogEntry {
	return models.AuditLogEntry{
		AuditID:        d.AuditID,
		OrganizationID: d.OrganizationID,
		EntityType:     d.EntityType,
		EntityID:       d.EntityID,
		Action:         string(d.Action),
		ActorID:        d.ActorID,
		Before:         d.Before,
		After:          d.After,
		Reason:         d.Reason,
		OccurredAt:     d.OccurredAt,
	}
}

// ToDomainAuditLogEntry converts a persistence model AuditLogEntry to its domain form.
func ToDomainAuditLogEntry(m models.AuditLogEntry) domain.AuditLogEntry {
	return domain.AuditLogEntry{
		AuditID:        m.AuditID,
		OrganizationID: m.OrganizationID,
		EntityType:     m.EntityType,
		EntityID:       m.EntityID,
		Action:         domain.AuditAction(m.Action),
		ActorID:        m.ActorID,
		Before:         m.Before,
		After:          m.After,
		Reason:         m.Reason,
		OccurredAt:     m.OccurredAt,
	}
}
