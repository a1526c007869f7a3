package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/stewardly/ledger_engine/internal/apperrors"
	"github.com/stewardly/ledger_engine/internal/core/domain"
	portsrepo "github.com/stewardly/ledger_engine/internal/core/ports/repositories"
	portssvc "github.com/stewardly/ledger_engine/internal/core/ports/services"
	"github.com/stewardly/ledger_engine/internal/dto"
	"github.com/stewardly/ledger_engine/internal/middleware"
	"github.com/stewardly/ledger_engine/internal/utils/accounting"
)

var (
	ErrEntryNoLines       = errors.New("journal entry must have at least one line")
	ErrLineOneSide        = errors.New("journal entry line must have exactly one of debit or credit set")
	ErrLineNegative       = errors.New("journal entry line amounts must be non-negative")
	ErrReasonMissing      = errors.New("a reason is required to void a journal entry")
	ErrDescriptionMissing = errors.New("journal entry description is required")
)

// journalService implements the ledger store operations: draft creation, posting
// with recomputed totals, and voiding via reversing entries.
type journalService struct {
	journalRepo portsrepo.JournalRepositoryFacade
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewJournalService creates a new JournalService.
func NewJournalService(journalRepo portsrepo.JournalRepositoryFacade, accountRepo portsrepo.AccountRepositoryFacade) portssvc.JournalSvcFacade {
	return &journalService{
		journalRepo: journalRepo,
		accountRepo: accountRepo,
	}
}

var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// entryNumber mints the human-readable entry number from the entry date and id.
func entryNumber(entryDate time.Time, entryID string) string {
	suffix := strings.ReplaceAll(entryID, "-", "")
	if len(suffix) > 8 {
		suffix = suffix[:8]
	}
	return fmt.Sprintf("JE-%s-%s", entryDate.Format("20060102"), suffix)
}

// validateLineShape enforces the per-line invariant: amounts non-negative and
// exactly one side non-zero. Balance across lines is NOT checked here; drafts may
// be unbalanced while being edited.
func validateLineShape(lines []dto.CreateJournalLineRequest) error {
	if len(lines) == 0 {
		return fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrEntryNoLines)
	}
	for i, line := range lines {
		if line.DebitAmount.IsNegative() || line.CreditAmount.IsNegative() {
			return fmt.Errorf("%w: %s (line %d)", apperrors.ErrValidation, ErrLineNegative, i+1)
		}
		if line.DebitAmount.IsPositive() == line.CreditAmount.IsPositive() {
			return fmt.Errorf("%w: %s (line %d)", apperrors.ErrValidation, ErrLineOneSide, i+1)
		}
		if !accounting.HasAtMostTwoDecimals(line.DebitAmount) || !accounting.HasAtMostTwoDecimals(line.CreditAmount) {
			return fmt.Errorf("%w: line %d amount has more than 2 decimal places", apperrors.ErrValidation, i+1)
		}
	}
	return nil
}

// CreateJournalEntry stores a DRAFT entry and its lines after shape validation.
func (s *journalService) CreateJournalEntry(ctx context.Context, organizationID string, req dto.CreateJournalEntryRequest, actorID string) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Description == "" {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrDescriptionMissing)
	}
	if err := validateLineShape(req.Lines); err != nil {
		return nil, err
	}

	entryType := domain.EntryTypeStandard
	if req.EntryType != "" {
		entryType = domain.JournalEntryType(req.EntryType)
	}

	// Referenced accounts must exist, be active and belong to the organisation.
	accountIDs := make([]string, 0, len(req.Lines))
	for _, line := range req.Lines {
		accountIDs = append(accountIDs, line.AccountID)
	}
	accountIDs = uniqueStrings(accountIDs)
	accountsMap, err := s.accountRepo.FindAccountsByIDs(ctx, accountIDs)
	if err != nil {
		logger.Error("Failed to fetch accounts for entry creation", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to fetch accounts: %w", err)
	}
	for _, id := range accountIDs {
		acc, found := accountsMap[id]
		if !found {
			return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, id)
		}
		if acc.OrganizationID != organizationID {
			logger.Warn("Account used in entry belongs to a different organisation", slog.String("account_id", id))
			return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, id)
		}
		if !acc.IsActive {
			return nil, fmt.Errorf("%w: account %s is inactive", apperrors.ErrValidation, id)
		}
	}

	now := time.Now().UTC()
	entryID := uuid.NewString()
	fiscalYear, fiscalPeriod := domain.FiscalYearPeriod(req.EntryDate)

	lines := make([]domain.JournalEntryLine, len(req.Lines))
	for i, lineReq := range req.Lines {
		lines[i] = domain.JournalEntryLine{
			LineID:       uuid.NewString(),
			EntryID:      entryID,
			AccountID:    lineReq.AccountID,
			DebitAmount:  lineReq.DebitAmount,
			CreditAmount: lineReq.CreditAmount,
			FundID:       lineReq.FundID,
			MinistryID:   lineReq.MinistryID,
			MemberID:     lineReq.MemberID,
			Description:  lineReq.Description,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     actorID,
				LastUpdatedAt: now,
				LastUpdatedBy: actorID,
			},
		}
	}

	totalDebit, totalCredit := accounting.LineTotals(lines)

	entry := domain.JournalEntry{
		EntryID:      entryID,
		OrgScope:     domain.OrgScope{OrganizationID: organizationID, BranchID: req.BranchID},
		EntryNumber:  entryNumber(req.EntryDate, entryID),
		EntryDate:    req.EntryDate,
		FiscalYear:   fiscalYear,
		FiscalPeriod: fiscalPeriod,
		EntryType:    entryType,
		SourceModule: req.SourceModule,
		SourceRef:    req.SourceRef,
		Description:  req.Description,
		Status:       domain.EntryDraft,
		TotalDebit:   totalDebit,
		TotalCredit:  totalCredit,
		Version:      1,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}

	audit, err := newAuditEntry(organizationID, EntityJournalEntry, entryID, domain.ActionCreate, actorID, nil, entry, nil, now)
	if err != nil {
		return nil, err
	}

	if err := s.journalRepo.SaveDraftEntry(ctx, entry, lines, audit); err != nil {
		logger.Error("Failed to save draft entry", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save journal entry: %w", err)
	}

	logger.Info("Journal entry created", slog.String("entry_id", entryID), slog.String("entry_number", entry.EntryNumber))
	entry.Lines = lines
	return &entry, nil
}

// PostJournalEntry transitions a DRAFT entry to POSTED. Totals are recomputed from
// the persisted lines; cached totals from the caller are never trusted. The status
// change, account balance recompute and audit entry commit in one transaction.
func (s *journalService) PostJournalEntry(ctx context.Context, organizationID string, entryID string, actorID string) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	entry, err := s.findScopedEntry(ctx, organizationID, entryID)
	if err != nil {
		return nil, err
	}

	if entry.Status != domain.EntryDraft {
		return nil, fmt.Errorf("%w: entry %s is %s, only DRAFT entries can be posted", apperrors.ErrInvalidState, entryID, entry.Status)
	}

	lines, err := s.journalRepo.FindLinesByEntryID(ctx, entryID)
	if err != nil {
		logger.Error("Failed to fetch lines for posting", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to retrieve entry lines: %w", err)
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrEntryNoLines)
	}

	totalDebit, totalCredit := accounting.LineTotals(lines)
	if !accounting.WithinTolerance(totalDebit, totalCredit) {
		return nil, &apperrors.UnbalancedEntryError{
			EntryID:     entryID,
			TotalDebit:  totalDebit,
			TotalCredit: totalCredit,
		}
	}

	now := time.Now().UTC()
	before := *entry

	entry.Status = domain.EntryPosted
	entry.TotalDebit = totalDebit
	entry.TotalCredit = totalCredit
	entry.PostedBy = &actorID
	entry.PostedAt = &now
	entry.LastUpdatedAt = now
	entry.LastUpdatedBy = actorID

	audit, err := newAuditEntry(organizationID, EntityJournalEntry, entryID, domain.ActionPost, actorID, before, entry, nil, now)
	if err != nil {
		return nil, err
	}

	accountIDs := lineAccountIDs(lines)
	if err := s.journalRepo.PostEntry(ctx, *entry, nil, accountIDs, audit); err != nil {
		logger.Error("Failed to post entry", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		return nil, err
	}

	logger.Info("Journal entry posted", slog.String("entry_id", entryID),
		slog.String("total", totalDebit.StringFixed(2)))
	entry.Version++
	entry.Lines = lines
	return entry, nil
}

// VoidJournalEntry voids a POSTED entry by creating and posting a reversing entry
// with debit/credit sides swapped, in the same transaction. The original entry's
// lines are never mutated.
func (s *journalService) VoidJournalEntry(ctx context.Context, organizationID string, entryID string, reason string, actorID string, expectedVersion *int64) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if strings.TrimSpace(reason) == "" {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrReasonMissing)
	}

	entry, err := s.findScopedEntry(ctx, organizationID, entryID)
	if err != nil {
		return nil, err
	}

	if entry.Status != domain.EntryPosted {
		return nil, fmt.Errorf("%w: entry %s is %s, only POSTED entries can be voided", apperrors.ErrInvalidState, entryID, entry.Status)
	}

	originalLines, err := s.journalRepo.FindLinesByEntryID(ctx, entryID)
	if err != nil {
		logger.Error("Failed to fetch lines for voiding", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to retrieve entry lines: %w", err)
	}

	now := time.Now().UTC()
	reversingID := uuid.NewString()

	reversingLines := accounting.ReverseLines(originalLines)
	for i := range reversingLines {
		reversingLines[i].LineID = uuid.NewString()
		reversingLines[i].EntryID = reversingID
		reversingLines[i].AuditFields = domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		}
	}
	totalDebit, totalCredit := accounting.LineTotals(reversingLines)

	fiscalYear, fiscalPeriod := domain.FiscalYearPeriod(now)
	reversing := domain.JournalEntry{
		EntryID:         reversingID,
		OrgScope:        entry.OrgScope,
		EntryNumber:     entryNumber(now, reversingID),
		EntryDate:       now,
		FiscalYear:      fiscalYear,
		FiscalPeriod:    fiscalPeriod,
		EntryType:       domain.EntryTypeReversing,
		SourceModule:    entry.SourceModule,
		SourceRef:       entry.SourceRef,
		Description:     fmt.Sprintf("Reversal of %s: %s", entry.EntryNumber, reason),
		Status:          domain.EntryPosted,
		TotalDebit:      totalDebit,
		TotalCredit:     totalCredit,
		Version:         1,
		PostedBy:        &actorID,
		PostedAt:        &now,
		ReversesEntryID: &entry.EntryID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}

	before := *entry
	entry.Status = domain.EntryVoid
	entry.VoidReason = &reason
	entry.ReversedByEntryID = &reversingID
	entry.LastUpdatedAt = now
	entry.LastUpdatedBy = actorID

	voidAudit, err := newAuditEntry(organizationID, EntityJournalEntry, entryID, domain.ActionVoid, actorID, before, entry, &reason, now)
	if err != nil {
		return nil, err
	}
	postAudit, err := newAuditEntry(organizationID, EntityJournalEntry, reversingID, domain.ActionPost, actorID, nil, reversing, &reason, now)
	if err != nil {
		return nil, err
	}

	accountIDs := lineAccountIDs(originalLines)
	err = s.journalRepo.VoidEntry(ctx, *entry, expectedVersion, reversing, reversingLines, accountIDs, []domain.AuditLogEntry{voidAudit, postAudit})
	if err != nil {
		logger.Error("Failed to void entry", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		return nil, err
	}

	logger.Info("Journal entry voided", slog.String("entry_id", entryID), slog.String("reversing_entry_id", reversingID))
	reversing.Lines = reversingLines
	return &reversing, nil
}

// GetJournalEntry retrieves an entry with its lines.
func (s *journalService) GetJournalEntry(ctx context.Context, organizationID string, entryID string) (*domain.JournalEntry, error) {
	entry, err := s.findScopedEntry(ctx, organizationID, entryID)
	if err != nil {
		return nil, err
	}

	lines, err := s.journalRepo.FindLinesByEntryID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve lines for entry %s: %w", entryID, err)
	}
	entry.Lines = lines
	return entry, nil
}

// ListJournalEntries retrieves entries for an organisation, most recent first.
func (s *journalService) ListJournalEntries(ctx context.Context, organizationID string, params dto.ListJournalEntriesParams) ([]domain.JournalEntry, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}
	entries, err := s.journalRepo.ListEntriesByOrg(ctx, organizationID, limit, params.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list journal entries: %w", err)
	}
	return entries, nil
}

// findScopedEntry fetches an entry and verifies organisation scope, obscuring
// existence of entries in other organisations.
func (s *journalService) findScopedEntry(ctx context.Context, organizationID string, entryID string) (*domain.JournalEntry, error) {
	entry, err := s.journalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			middleware.GetLoggerFromCtx(ctx).Error("Failed to find journal entry", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		}
		return nil, fmt.Errorf("failed to find journal entry %s: %w", entryID, err)
	}
	if entry.OrganizationID != organizationID {
		return nil, apperrors.ErrNotFound
	}
	return entry, nil
}

// lineAccountIDs returns the unique account ids referenced by the lines.
func lineAccountIDs(lines []domain.JournalEntryLine) []string {
	ids := make([]string, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.AccountID)
	}
	return uniqueStrings(ids)
}

// uniqueStrings returns a slice containing only the unique strings from the input.
func uniqueStrings(input []string) []string {
	seen := make(map[string]struct{}, len(input))
	result := make([]string, 0, len(input))
	for _, str := range input {
		if _, ok := seen[str]; !ok {
			seen[str] = struct{}{}
			result = append(result, str)
		}
	}
	return result
}
