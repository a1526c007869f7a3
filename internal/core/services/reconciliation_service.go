package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/stewardly/ledger_engine/internal/apperrors"
	"github.com/stewardly/ledger_engine/internal/core/domain"
	portsrepo "github.com/stewardly/ledger_engine/internal/core/ports/repositories"
	portssvc "github.com/stewardly/ledger_engine/internal/core/ports/services"
	"github.com/stewardly/ledger_engine/internal/dto"
	"github.com/stewardly/ledger_engine/internal/middleware"
	"github.com/stewardly/ledger_engine/internal/utils/accounting"
)

// reconStatusReconciled is a legacy alias some callers send for APPROVED on save.
const reconStatusReconciled = "RECONCILED"

// ReconciliationLimits holds the configurable bounds applied by the save pipeline.
type ReconciliationLimits struct {
	MaxDateAge      time.Duration   // reconciliation date may not be older than this
	MinAmount       decimal.Decimal // lower bound for monetary fields
	MaxAmount       decimal.Decimal // upper bound for monetary fields
	VariancePercent decimal.Decimal // statement balance change requiring confirmation
	MaxNotesLength  int
}

// DefaultReconciliationLimits returns the standard bounds: 2 year date window,
// amounts in [-10M, 1B], 50% variance threshold, 2000 character notes.
func DefaultReconciliationLimits() ReconciliationLimits {
	return ReconciliationLimits{
		MaxDateAge:      2 * 365 * 24 * time.Hour,
		MinAmount:       decimal.NewFromInt(-10_000_000),
		MaxAmount:       decimal.NewFromInt(1_000_000_000),
		VariancePercent: decimal.NewFromInt(50),
		MaxNotesLength:  2000,
	}
}

// reconciliationService implements the maker-checker bank reconciliation workflow.
type reconciliationService struct {
	reconRepo       portsrepo.ReconciliationRepositoryFacade
	bankAccountRepo portsrepo.BankAccountRepositoryFacade
	accountRepo     portsrepo.AccountRepositoryFacade
	limits          ReconciliationLimits
	now             func() time.Time
}

// NewReconciliationService creates a new ReconciliationService.
func NewReconciliationService(
	reconRepo portsrepo.ReconciliationRepositoryFacade,
	bankAccountRepo portsrepo.BankAccountRepositoryFacade,
	accountRepo portsrepo.AccountRepositoryFacade,
	limits ReconciliationLimits,
) portssvc.ReconciliationSvcFacade {
	return &reconciliationService{
		reconRepo:       reconRepo,
		bankAccountRepo: bankAccountRepo,
		accountRepo:     accountRepo,
		limits:          limits,
		now:             func() time.Time { return time.Now().UTC() },
	}
}

var _ portssvc.ReconciliationSvcFacade = (*reconciliationService)(nil)

// SaveReconciliation runs the validation pipeline in a fixed order, each stage
// short-circuiting on the first failure, then persists the reconciliation. The
// difference and book balance are re-derived server-side; caller values are only
// cross-checked.
func (s *reconciliationService) SaveReconciliation(ctx context.Context, organizationID string, req dto.SaveReconciliationRequest, preparerID string) (*domain.BankReconciliation, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := s.now()

	// 1. Required fields.
	if req.BankAccountID == "" {
		return nil, fmt.Errorf("%w: bank account id is required", apperrors.ErrValidation)
	}
	if req.ReconciliationDate.IsZero() {
		return nil, fmt.Errorf("%w: reconciliation date is required", apperrors.ErrValidation)
	}
	if preparerID == "" {
		return nil, fmt.Errorf("%w: actor id is required", apperrors.ErrValidation)
	}

	// Reconciliations are per calendar day. Truncate to the UTC day before any
	// check or query so uniqueness and variance never depend on time of day.
	reconDate := truncateToUTCDay(req.ReconciliationDate)

	// 2. Date sanity: typo dates must not silently corrupt history.
	if reconDate.After(now) {
		return nil, fmt.Errorf("%w: reconciliation date %s is in the future", apperrors.ErrValidation, reconDate.Format("2006-01-02"))
	}
	if reconDate.Before(now.Add(-s.limits.MaxDateAge)) {
		return nil, fmt.Errorf("%w: reconciliation date %s is too far in the past", apperrors.ErrValidation, reconDate.Format("2006-01-02"))
	}

	// 3. Amount sanity per monetary field.
	amounts := map[string]decimal.Decimal{
		"bankStatementBalance": req.BankStatementBalance,
		"bookBalance":          req.BookBalance,
		"adjustedBalance":      req.AdjustedBalance,
		"difference":           req.Difference,
	}
	for _, field := range []string{"bankStatementBalance", "bookBalance", "adjustedBalance", "difference"} {
		amount := amounts[field]
		if amount.LessThan(s.limits.MinAmount) || amount.GreaterThan(s.limits.MaxAmount) {
			return nil, fmt.Errorf("%w: %s %s is out of range [%s, %s]", apperrors.ErrValidation,
				field, amount.StringFixed(2), s.limits.MinAmount.StringFixed(2), s.limits.MaxAmount.StringFixed(2))
		}
		if !accounting.HasAtMostTwoDecimals(amount) {
			return nil, fmt.Errorf("%w: %s has more than 2 decimal places", apperrors.ErrValidation, field)
		}
	}

	// 4. Difference re-derivation: never trusted verbatim from the caller.
	expectedDifference := req.BankStatementBalance.Sub(req.BookBalance)
	if !accounting.WithinTolerance(req.Difference, expectedDifference) {
		return nil, fmt.Errorf("%w: difference %s does not equal statement minus book balance (expected %s)",
			apperrors.ErrValidation, req.Difference.StringFixed(2), expectedDifference.StringFixed(2))
	}

	// 5. Status, if supplied, must name a workflow state.
	status := domain.ReconDraft
	stampBankAccount := false
	if req.Status != nil && *req.Status != "" {
		supplied := strings.ToUpper(*req.Status)
		if supplied == reconStatusReconciled {
			supplied = string(domain.ReconApproved)
		}
		if !domain.ValidReconciliationStatus(supplied) {
			return nil, fmt.Errorf("%w: invalid status %q", apperrors.ErrValidation, *req.Status)
		}
		status = domain.ReconciliationStatus(supplied)
		stampBankAccount = status == domain.ReconApproved
	}

	// 6. Notes length.
	if len(req.Notes) > s.limits.MaxNotesLength {
		return nil, fmt.Errorf("%w: notes exceed %d characters", apperrors.ErrValidation, s.limits.MaxNotesLength)
	}

	// 7. Referenced bank account must exist and be active.
	bankAccount, err := s.bankAccountRepo.FindBankAccountByID(ctx, req.BankAccountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: bank account %s", apperrors.ErrNotFound, req.BankAccountID)
		}
		logger.Error("Failed to fetch bank account", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to fetch bank account: %w", err)
	}
	if bankAccount.OrganizationID != organizationID {
		return nil, fmt.Errorf("%w: bank account %s", apperrors.ErrNotFound, req.BankAccountID)
	}
	if !bankAccount.IsActive {
		return nil, fmt.Errorf("%w: bank account %s is inactive", apperrors.ErrValidation, req.BankAccountID)
	}

	// 8. Book-balance cross-check against the ledger. A reconciliation can never be
	// saved against a book balance that doesn't match the actual posted lines.
	glAccount, err := s.accountRepo.FindAccountByID(ctx, bankAccount.GLAccountID)
	if err != nil {
		logger.Error("Failed to fetch GL account", slog.String("error", err.Error()), slog.String("gl_account_id", bankAccount.GLAccountID))
		return nil, fmt.Errorf("failed to fetch GL account %s: %w", bankAccount.GLAccountID, err)
	}
	sumDebit, sumCredit, err := s.accountRepo.SumPostedLines(ctx, bankAccount.GLAccountID)
	if err != nil {
		logger.Error("Failed to sum posted lines", slog.String("error", err.Error()), slog.String("gl_account_id", bankAccount.GLAccountID))
		return nil, fmt.Errorf("failed to compute ledger balance: %w", err)
	}
	ledgerBalance := accounting.NaturalBalance(glAccount.AccountType.NormalBalanceSide(), sumDebit, sumCredit)
	if !accounting.WithinTolerance(req.BookBalance, ledgerBalance) {
		return nil, &apperrors.BookBalanceMismatchError{
			BankAccountID: req.BankAccountID,
			GLAccountID:   bankAccount.GLAccountID,
			Reported:      req.BookBalance,
			Computed:      ledgerBalance,
		}
	}

	// 9. Variance detection against the previous reconciliation.
	previous, err := s.reconRepo.FindLatestNonVoided(ctx, req.BankAccountID, reconDate)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		logger.Error("Failed to fetch previous reconciliation", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to fetch previous reconciliation: %w", err)
	}
	if previous != nil && !previous.BankStatementBalance.IsZero() {
		change := req.BankStatementBalance.Sub(previous.BankStatementBalance).Abs()
		changePercent := change.Div(previous.BankStatementBalance.Abs()).Mul(decimal.NewFromInt(100))
		if changePercent.GreaterThan(s.limits.VariancePercent) {
			return nil, &apperrors.LargeVarianceError{
				BankAccountID:   req.BankAccountID,
				PreviousBalance: previous.BankStatementBalance,
				CurrentBalance:  req.BankStatementBalance,
				ChangePercent:   changePercent,
			}
		}
	}

	// 10. Uniqueness per (bank account, date). The database's partial unique index
	// remains the authority when two saves race.
	existingID, err := s.reconRepo.ExistsNonVoided(ctx, req.BankAccountID, reconDate)
	if err != nil {
		logger.Error("Failed to check reconciliation uniqueness", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to check for duplicate reconciliation: %w", err)
	}
	if existingID != "" {
		return nil, &apperrors.DuplicateReconciliationError{
			BankAccountID:      req.BankAccountID,
			ReconciliationDate: reconDate,
			ExistingID:         existingID,
		}
	}

	recon := domain.BankReconciliation{
		ReconciliationID:      uuid.NewString(),
		OrgScope:              domain.OrgScope{OrganizationID: organizationID, BranchID: req.BranchID},
		BankAccountID:         req.BankAccountID,
		ReconciliationDate:    reconDate,
		BankStatementBalance:  req.BankStatementBalance,
		BookBalance:           req.BookBalance,
		AdjustedBalance:       req.AdjustedBalance,
		Difference:            expectedDifference,
		ClearedTransactionIDs: req.ClearedTransactionIDs,
		Notes:                 req.Notes,
		Status:                status,
		PreparedBy:            preparerID,
		PreparedAt:            now,
		DocumentURL:           req.DocumentURL,
		Version:               1,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     preparerID,
			LastUpdatedAt: now,
			LastUpdatedBy: preparerID,
		},
	}
	if stampBankAccount {
		recon.ApprovedBy = &preparerID
		recon.ApprovedAt = &now
	}

	audit, err := newAuditEntry(organizationID, EntityReconciliation, recon.ReconciliationID, domain.ActionCreate, preparerID, nil, recon, nil, now)
	if err != nil {
		return nil, err
	}

	if err := s.reconRepo.SaveReconciliation(ctx, recon, stampBankAccount, audit); err != nil {
		logger.Error("Failed to save reconciliation", slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Reconciliation saved",
		slog.String("reconciliation_id", recon.ReconciliationID),
		slog.String("bank_account_id", req.BankAccountID),
		slog.String("status", string(status)))
	return &recon, nil
}

// SubmitForReview moves a DRAFT reconciliation to PENDING_REVIEW.
func (s *reconciliationService) SubmitForReview(ctx context.Context, organizationID string, reconciliationID string, actorID string, expectedVersion *int64) (*domain.BankReconciliation, error) {
	recon, err := s.findScoped(ctx, organizationID, reconciliationID)
	if err != nil {
		return nil, err
	}

	if recon.Status != domain.ReconDraft {
		return nil, fmt.Errorf("%w: reconciliation %s is %s, only DRAFT can be submitted for review",
			apperrors.ErrInvalidState, reconciliationID, recon.Status)
	}

	now := s.now()
	before := *recon
	recon.Status = domain.ReconPendingReview
	recon.LastUpdatedAt = now
	recon.LastUpdatedBy = actorID

	return s.transition(ctx, recon, &before, expectedVersion, false, domain.ActionSubmitForReview, actorID, nil, now)
}

// Approve moves a PENDING_REVIEW reconciliation to APPROVED. Separation of duties:
// the preparer may never approve their own work. The bank account's reconciled
// balance is stamped in the same transaction as the status change.
func (s *reconciliationService) Approve(ctx context.Context, organizationID string, reconciliationID string, actorID string, expectedVersion *int64) (*domain.BankReconciliation, error) {
	recon, err := s.findScoped(ctx, organizationID, reconciliationID)
	if err != nil {
		return nil, err
	}

	if recon.Status != domain.ReconPendingReview {
		return nil, fmt.Errorf("%w: reconciliation %s is %s, only PENDING_REVIEW can be approved",
			apperrors.ErrInvalidState, reconciliationID, recon.Status)
	}
	if recon.PreparedBy == actorID {
		return nil, &apperrors.SelfApprovalError{ReconciliationID: reconciliationID, ActorID: actorID}
	}

	now := s.now()
	before := *recon
	recon.Status = domain.ReconApproved
	recon.ApprovedBy = &actorID
	recon.ApprovedAt = &now
	recon.LastUpdatedAt = now
	recon.LastUpdatedBy = actorID

	return s.transition(ctx, recon, &before, expectedVersion, true, domain.ActionApprove, actorID, nil, now)
}

// Reject moves a PENDING_REVIEW reconciliation to REJECTED with a reason.
func (s *reconciliationService) Reject(ctx context.Context, organizationID string, reconciliationID string, actorID string, reason string, expectedVersion *int64) (*domain.BankReconciliation, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, fmt.Errorf("%w: a reason is required to reject a reconciliation", apperrors.ErrValidation)
	}

	recon, err := s.findScoped(ctx, organizationID, reconciliationID)
	if err != nil {
		return nil, err
	}

	if recon.Status != domain.ReconPendingReview {
		return nil, fmt.Errorf("%w: reconciliation %s is %s, only PENDING_REVIEW can be rejected",
			apperrors.ErrInvalidState, reconciliationID, recon.Status)
	}

	now := s.now()
	before := *recon
	recon.Status = domain.ReconRejected
	recon.ReviewedBy = &actorID
	recon.ReviewedAt = &now
	recon.Notes = appendNote(recon.Notes, "Rejected: "+reason)
	recon.LastUpdatedAt = now
	recon.LastUpdatedBy = actorID

	return s.transition(ctx, recon, &before, expectedVersion, false, domain.ActionReject, actorID, &reason, now)
}

// Void terminates a non-terminal reconciliation. APPROVED and VOIDED records stay
// terminal; voiding them is rejected here regardless of caller pre-checks.
func (s *reconciliationService) Void(ctx context.Context, organizationID string, reconciliationID string, reason string, actorID string) (*domain.BankReconciliation, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, fmt.Errorf("%w: a reason is required to void a reconciliation", apperrors.ErrValidation)
	}

	recon, err := s.findScoped(ctx, organizationID, reconciliationID)
	if err != nil {
		return nil, err
	}

	if recon.Status.IsTerminal() {
		return nil, fmt.Errorf("%w: reconciliation %s is %s and cannot be voided",
			apperrors.ErrInvalidState, reconciliationID, recon.Status)
	}

	now := s.now()
	before := *recon
	recon.Status = domain.ReconVoided
	recon.VoidReason = &reason
	recon.LastUpdatedAt = now
	recon.LastUpdatedBy = actorID

	return s.transition(ctx, recon, &before, nil, false, domain.ActionVoid, actorID, &reason, now)
}

// FindOne retrieves a reconciliation by id.
func (s *reconciliationService) FindOne(ctx context.Context, organizationID string, reconciliationID string) (*domain.BankReconciliation, error) {
	return s.findScoped(ctx, organizationID, reconciliationID)
}

// FindByBankAccount retrieves reconciliations for a bank account, most recent first.
func (s *reconciliationService) FindByBankAccount(ctx context.Context, organizationID string, bankAccountID string, params dto.ListReconciliationsParams) ([]domain.BankReconciliation, error) {
	bankAccount, err := s.bankAccountRepo.FindBankAccountByID(ctx, bankAccountID)
	if err != nil {
		return nil, fmt.Errorf("failed to find bank account %s: %w", bankAccountID, err)
	}
	if bankAccount.OrganizationID != organizationID {
		return nil, apperrors.ErrNotFound
	}

	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}
	recons, err := s.reconRepo.FindByBankAccount(ctx, bankAccountID, limit, params.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list reconciliations: %w", err)
	}
	return recons, nil
}

// transition persists a state-machine step with its audit entry.
func (s *reconciliationService) transition(ctx context.Context, recon *domain.BankReconciliation, before *domain.BankReconciliation, expectedVersion *int64, stampBankAccount bool, action domain.AuditAction, actorID string, reason *string, now time.Time) (*domain.BankReconciliation, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	audit, err := newAuditEntry(recon.OrganizationID, EntityReconciliation, recon.ReconciliationID, action, actorID, before, recon, reason, now)
	if err != nil {
		return nil, err
	}

	if err := s.reconRepo.TransitionStatus(ctx, *recon, expectedVersion, stampBankAccount, audit); err != nil {
		logger.Error("Failed to transition reconciliation",
			slog.String("error", err.Error()),
			slog.String("reconciliation_id", recon.ReconciliationID),
			slog.String("action", string(action)))
		return nil, err
	}

	logger.Info("Reconciliation transitioned",
		slog.String("reconciliation_id", recon.ReconciliationID),
		slog.String("status", string(recon.Status)))
	recon.Version++
	return recon, nil
}

// findScoped fetches a reconciliation and verifies organisation scope.
func (s *reconciliationService) findScoped(ctx context.Context, organizationID string, reconciliationID string) (*domain.BankReconciliation, error) {
	recon, err := s.reconRepo.FindByID(ctx, reconciliationID)
	if err != nil {
		return nil, fmt.Errorf("failed to find reconciliation %s: %w", reconciliationID, err)
	}
	if recon.OrganizationID != organizationID {
		return nil, apperrors.ErrNotFound
	}
	return recon, nil
}

// truncateToUTCDay drops the time-of-day component, keeping the UTC calendar day.
func truncateToUTCDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

func appendNote(notes, addition string) string {
	if notes == "" {
		return addition
	}
	return notes + "\n" + addition
}
