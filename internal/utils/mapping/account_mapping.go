package mapping

import (
	"github.com/stewardly/ledger_engine/internal/core/domain"
	"github.com/stewardly/ledger_engine/internal/models"
)

// ToDomainAccount converts a model Account to a domain Account.
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:       m.AccountID,
		OrgScope:        domain.OrgScope{OrganizationID: m.OrganizationID, BranchID: strVal(m.BranchID)},
		Code:            m.Code,
		Name:            m.Name,
		AccountType:     domain.AccountType(m.AccountType),
		NormalBalance:   domain.BalanceSide(m.NormalBalance),
		ParentAccountID: m.ParentAccountID,
		FundID:          m.FundID,
		MinistryID:      m.MinistryID,
		Description:     m.Description,
		IsActive:        m.IsActive,
		Balance:         m.Balance,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelAccount converts a domain Account to a model Account.
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:       d.AccountID,
		OrganizationID:  d.OrganizationID,
		BranchID:        strPtr(d.BranchID),
		Code:            d.Code,
		Name:            d.Name,
		AccountType:     string(d.AccountType),
		NormalBalance:   string(d.NormalBalance),
		ParentAccountID: d.ParentAccountID,
		FundID:          d.FundID,
		MinistryID:      d.MinistryID,
		Description:     d.Description,
		IsActive:        d.IsActive,
		Balance:         d.Balance,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}
