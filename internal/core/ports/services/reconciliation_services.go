package services

import (
	"context"

	"github.com/stewardly/ledger_engine/internal/core/domain"
	"github.com/stewardly/ledger_engine/internal/dto"
)

// ReconciliationSvcFacade defines the bank reconciliation workflow exposed to
// collaborators.
type ReconciliationSvcFacade interface {
	// SaveReconciliation runs the validation pipeline and persists a new
	// reconciliation prepared by the given actor.
	SaveReconciliation(ctx context.Context, organizationID string, req dto.SaveReconciliationRequest, preparerID string) (*domain.BankReconciliation, error)

	// SubmitForReview moves a DRAFT reconciliation to PENDING_REVIEW.
	SubmitForReview(ctx context.Context, organizationID string, reconciliationID string, actorID string, expectedVersion *int64) (*domain.BankReconciliation, error)

	// Approve moves a PENDING_REVIEW reconciliation to APPROVED, enforcing
	// separation of duties, and stamps the bank account in the same transaction.
	Approve(ctx context.Context, organizationID string, reconciliationID string, actorID string, expectedVersion *int64) (*domain.BankReconciliation, error)

	// Reject moves a PENDING_REVIEW reconciliation to REJECTED with a reason.
	Reject(ctx context.Context, organizationID string, reconciliationID string, actorID string, reason string, expectedVersion *int64) (*domain.BankReconciliation, error)

	// Void terminates a non-terminal reconciliation with a mandatory reason.
	Void(ctx context.Context, organizationID string, reconciliationID string, reason string, actorID string) (*domain.BankReconciliation, error)

	// FindOne retrieves a reconciliation by id.
	FindOne(ctx context.Context, organizationID string, reconciliationID string) (*domain.BankReconciliation, error)

	// FindByBankAccount retrieves reconciliations for a bank account, most recent first.
	FindByBankAccount(ctx context.Context, organizationID string, bankAccountID string, params dto.ListReconciliationsParams) ([]domain.BankReconciliation, error)
}
