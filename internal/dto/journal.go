package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/stewardly/ledger_engine/internal/core/domain"
)

// CreateJournalLineRequest is one leg of a journal entry being created.
// Exactly one of debitAmount/creditAmount must be non-zero; both non-negative.
type CreateJournalLineRequest struct {
	AccountID    string          `json:"accountID" binding:"required"`
	DebitAmount  decimal.Decimal `json:"debitAmount"`
	CreditAmount decimal.Decimal `json:"creditAmount"`
	FundID       *string         `json:"fundID,omitempty"`
	MinistryID   *string         `json:"ministryID,omitempty"`
	MemberID     *string         `json:"memberID,omitempty"`
	Description  string          `json:"description" binding:"max=500"`
}

// CreateJournalEntryRequest creates a DRAFT journal entry with its lines.
// Drafts may be temporarily unbalanced while being edited.
type CreateJournalEntryRequest struct {
	EntryDate    time.Time                  `json:"entryDate" binding:"required"`
	EntryType    string                     `json:"entryType"`
	SourceModule string                     `json:"sourceModule"`
	SourceRef    string                     `json:"sourceRef"`
	Description  string                     `json:"description" binding:"required,max=500"`
	BranchID     string                     `json:"branchID"`
	Lines        []CreateJournalLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// VoidJournalEntryRequest voids a POSTED entry via a reversing entry.
type VoidJournalEntryRequest struct {
	Reason          string `json:"reason" binding:"required,max=500"`
	ExpectedVersion *int64 `json:"expectedVersion,omitempty"`
}

// JournalLineResponse defines the data returned for a journal entry line.
type JournalLineResponse struct {
	LineID       string          `json:"lineID"`
	AccountID    string          `json:"accountID"`
	DebitAmount  decimal.Decimal `json:"debitAmount"`
	CreditAmount decimal.Decimal `json:"creditAmount"`
	FundID       *string         `json:"fundID,omitempty"`
	MinistryID   *string         `json:"ministryID,omitempty"`
	MemberID     *string         `json:"memberID,omitempty"`
	Description  string          `json:"description"`
}

// JournalEntryResponse defines the data returned for a journal entry.
type JournalEntryResponse struct {
	EntryID           string                `json:"entryID"`
	EntryNumber       string                `json:"entryNumber"`
	EntryDate         time.Time             `json:"entryDate"`
	FiscalYear        int                   `json:"fiscalYear"`
	FiscalPeriod      int                   `json:"fiscalPeriod"`
	EntryType         string                `json:"entryType"`
	Description       string                `json:"description"`
	Status            string                `json:"status"`
	TotalDebit        decimal.Decimal       `json:"totalDebit"`
	TotalCredit       decimal.Decimal       `json:"totalCredit"`
	Version           int64                 `json:"version"`
	PostedBy          *string               `json:"postedBy,omitempty"`
	PostedAt          *time.Time            `json:"postedAt,omitempty"`
	VoidReason        *string               `json:"voidReason,omitempty"`
	ReversedByEntryID *string               `json:"reversedByEntryID,omitempty"`
	ReversesEntryID   *string               `json:"reversesEntryID,omitempty"`
	Lines             []JournalLineResponse `json:"lines,omitempty"`
	CreatedAt         time.Time             `json:"createdAt"`
	CreatedBy         string                `json:"createdBy"`
}

// ListJournalEntriesParams holds pagination parameters for listing entries.
type ListJournalEntriesParams struct {
	Limit  int `form:"limit"`
	Offset int `form:"offset"`
}

// ToJournalLineResponse converts a domain line to its response DTO.
func ToJournalLineResponse(l domain.JournalEntryLine) JournalLineResponse {
	return JournalLineResponse{
		LineID:       l.LineID,
		AccountID:    l.AccountID,
		DebitAmount:  l.DebitAmount,
		CreditAmount: l.CreditAmount,
		FundID:       l.FundID,
		MinistryID:   l.MinistryID,
		MemberID:     l.MemberID,
		Description:  l.Description,
	}
}

// ToJournalEntryResponse converts a domain entry to its response DTO.
func ToJournalEntryResponse(e *domain.JournalEntry) JournalEntryResponse {
	resp := JournalEntryResponse{
		EntryID:           e.EntryID,
		EntryNumber:       e.EntryNumber,
		EntryDate:         e.EntryDate,
		FiscalYear:        e.FiscalYear,
		FiscalPeriod:      e.FiscalPeriod,
		EntryType:         string(e.EntryType),
		Description:       e.Description,
		Status:            string(e.Status),
		TotalDebit:        e.TotalDebit,
		TotalCredit:       e.TotalCredit,
		Version:           e.Version,
		PostedBy:          e.PostedBy,
		PostedAt:          e.PostedAt,
		VoidReason:        e.VoidReason,
		ReversedByEntryID: e.ReversedByEntryID,
		ReversesEntryID:   e.ReversesEntryID,
		CreatedAt:         e.CreatedAt,
		CreatedBy:         e.CreatedBy,
	}
	if len(e.Lines) > 0 {
		resp.Lines = make([]JournalLineResponse, len(e.Lines))
		for i, l := range e.Lines {
			resp.Lines[i] = ToJournalLineResponse(l)
		}
	}
	return resp
}
