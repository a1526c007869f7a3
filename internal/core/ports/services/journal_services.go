package services

import (
	"context"

	"github.com/stewardly/ledger_engine/internal/core/domain"
	"github.com/stewardly/ledger_engine/internal/dto"
)

// JournalSvcFacade defines the ledger operations exposed to collaborators.
type JournalSvcFacade interface {
	// CreateJournalEntry stores a DRAFT entry and its lines. Drafts may be unbalanced;
	// line shape (one non-zero side, non-negative amounts) is still enforced.
	CreateJournalEntry(ctx context.Context, organizationID string, req dto.CreateJournalEntryRequest, actorID string) (*domain.JournalEntry, error)

	// PostJournalEntry recomputes totals from persisted lines and transitions the
	// entry to POSTED, updating account balances atomically.
	PostJournalEntry(ctx context.Context, organizationID string, entryID string, actorID string) (*domain.JournalEntry, error)

	// VoidJournalEntry creates and posts a reversing entry for a POSTED entry in one
	// transaction. The reason is mandatory.
	VoidJournalEntry(ctx context.Context, organizationID string, entryID string, reason string, actorID string, expectedVersion *int64) (*domain.JournalEntry, error)

	// GetJournalEntry retrieves an entry with its lines.
	GetJournalEntry(ctx context.Context, organizationID string, entryID string) (*domain.JournalEntry, error)

	// ListJournalEntries retrieves entries for an organisation, most recent first.
	ListJournalEntries(ctx context.Context, organizationID string, params dto.ListJournalEntriesParams) ([]domain.JournalEntry, error)
}
