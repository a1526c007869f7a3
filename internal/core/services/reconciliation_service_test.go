package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/stewardly/ledger_engine/internal/apperrors"
	"github.com/stewardly/ledger_engine/internal/core/domain"
	portssvc "github.com/stewardly/ledger_engine/internal/core/ports/services"
	"github.com/stewardly/ledger_engine/internal/core/services"
	"github.com/stewardly/ledger_engine/internal/dto"
)

// --- Test Suite Setup ---

type ReconciliationServiceTestSuite struct {
	suite.Suite
	mockReconRepo       *MockReconciliationRepository
	mockBankAccountRepo *MockBankAccountRepository
	mockAccountRepo     *MockAccountRepository
	service             portssvc.ReconciliationSvcFacade
	orgID               string
	preparerID          string
	reviewerID          string
	bankAccount         domain.BankAccount
	glAccount           domain.Account
}

func (suite *ReconciliationServiceTestSuite) SetupTest() {
	suite.mockReconRepo = new(MockReconciliationRepository)
	suite.mockBankAccountRepo = new(MockBankAccountRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.service = services.NewReconciliationService(
		suite.mockReconRepo, suite.mockBankAccountRepo, suite.mockAccountRepo,
		services.DefaultReconciliationLimits())

	suite.orgID = uuid.NewString()
	suite.preparerID = uuid.NewString()
	suite.reviewerID = uuid.NewString()

	suite.glAccount = domain.Account{
		AccountID:     uuid.NewString(),
		OrgScope:      domain.OrgScope{OrganizationID: suite.orgID},
		Code:          "1010",
		AccountType:   domain.Asset,
		NormalBalance: domain.DebitSide,
		IsActive:      true,
	}
	suite.bankAccount = domain.BankAccount{
		BankAccountID: uuid.NewString(),
		OrgScope:      domain.OrgScope{OrganizationID: suite.orgID},
		GLAccountID:   suite.glAccount.AccountID,
		Name:          "Operating Checking",
		IsActive:      true,
	}
}

// validSaveRequest builds a request whose book balance matches a ledger balance of
// 1000 debit-normal (sums set up by expectLedgerBalance).
func (suite *ReconciliationServiceTestSuite) validSaveRequest() dto.SaveReconciliationRequest {
	return dto.SaveReconciliationRequest{
		BankAccountID:        suite.bankAccount.BankAccountID,
		ReconciliationDate:   time.Now().UTC().AddDate(0, 0, -1),
		BankStatementBalance: decimal.NewFromInt(1050),
		BookBalance:          decimal.NewFromInt(1000),
		AdjustedBalance:      decimal.NewFromInt(1050),
		Difference:           decimal.NewFromInt(50),
		Notes:                "Month end",
	}
}

func (suite *ReconciliationServiceTestSuite) expectBankAccount() {
	suite.mockBankAccountRepo.On("FindBankAccountByID", mock.Anything, suite.bankAccount.BankAccountID).
		Return(&suite.bankAccount, nil).Once()
}

func (suite *ReconciliationServiceTestSuite) expectLedgerBalance() {
	suite.mockAccountRepo.On("FindAccountByID", mock.Anything, suite.glAccount.AccountID).
		Return(&suite.glAccount, nil).Once()
	suite.mockAccountRepo.On("SumPostedLines", mock.Anything, suite.glAccount.AccountID).
		Return(decimal.NewFromInt(1000), decimal.Zero, nil).Once()
}

func (suite *ReconciliationServiceTestSuite) expectNoPreviousAndUnique() {
	suite.mockReconRepo.On("FindLatestNonVoided", mock.Anything, suite.bankAccount.BankAccountID, mock.AnythingOfType("time.Time")).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockReconRepo.On("ExistsNonVoided", mock.Anything, suite.bankAccount.BankAccountID, mock.AnythingOfType("time.Time")).
		Return("", nil).Once()
}

// --- SaveReconciliation ---

func (suite *ReconciliationServiceTestSuite) TestSave_Success() {
	ctx := context.Background()
	req := suite.validSaveRequest()

	suite.expectBankAccount()
	suite.expectLedgerBalance()
	suite.expectNoPreviousAndUnique()

	var captured domain.BankReconciliation
	suite.mockReconRepo.On("SaveReconciliation", mock.Anything,
		mock.AnythingOfType("domain.BankReconciliation"), false,
		mock.AnythingOfType("domain.AuditLogEntry")).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(domain.BankReconciliation)
		}).Return(nil).Once()

	recon, err := suite.service.SaveReconciliation(ctx, suite.orgID, req, suite.preparerID)

	suite.Require().NoError(err)
	suite.Equal(domain.ReconDraft, recon.Status)
	suite.Equal(int64(1), recon.Version)
	suite.Equal(suite.preparerID, recon.PreparedBy)
	suite.Nil(recon.ApprovedBy)
	suite.True(captured.Difference.Equal(decimal.NewFromInt(50)))

	suite.mockReconRepo.AssertExpectations(suite.T())
	suite.mockBankAccountRepo.AssertExpectations(suite.T())
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *ReconciliationServiceTestSuite) TestSave_StoresDerivedDifference() {
	ctx := context.Background()
	req := suite.validSaveRequest()
	// Same value, different representation; the stored figure is always derived.
	req.Difference = decimal.RequireFromString("50.00")

	suite.expectBankAccount()
	suite.expectLedgerBalance()
	suite.expectNoPreviousAndUnique()

	var captured domain.BankReconciliation
	suite.mockReconRepo.On("SaveReconciliation", mock.Anything, mock.Anything, false, mock.Anything).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(domain.BankReconciliation)
		}).Return(nil).Once()

	_, err := suite.service.SaveReconciliation(ctx, suite.orgID, req, suite.preparerID)

	suite.Require().NoError(err)
	suite.True(captured.Difference.Equal(req.BankStatementBalance.Sub(req.BookBalance)),
		"stored difference must be statement minus book")
}

func (suite *ReconciliationServiceTestSuite) TestSave_RejectsDifferenceOffByOneCent() {
	ctx := context.Background()
	req := suite.validSaveRequest()
	req.Difference = decimal.RequireFromString("49.99") // expected 50.00

	_, err := suite.service.SaveReconciliation(ctx, suite.orgID, req, suite.preparerID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockReconRepo.AssertNotCalled(suite.T(), "SaveReconciliation")
}

func (suite *ReconciliationServiceTestSuite) TestSave_RequiresBankAccountID() {
	ctx := context.Background()
	req := suite.validSaveRequest()
	req.BankAccountID = ""

	_, err := suite.service.SaveReconciliation(ctx, suite.orgID, req, suite.preparerID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockBankAccountRepo.AssertNotCalled(suite.T(), "FindBankAccountByID")
}

func (suite *ReconciliationServiceTestSuite) TestSave_RejectsFutureDate() {
	ctx := context.Background()
	req := suite.validSaveRequest()
	req.ReconciliationDate = time.Now().UTC().AddDate(0, 0, 2)

	_, err := suite.service.SaveReconciliation(ctx, suite.orgID, req, suite.preparerID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ReconciliationServiceTestSuite) TestSave_RejectsAncientDate() {
	ctx := context.Background()
	req := suite.validSaveRequest()
	req.ReconciliationDate = time.Now().UTC().AddDate(-3, 0, 0)

	_, err := suite.service.SaveReconciliation(ctx, suite.orgID, req, suite.preparerID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ReconciliationServiceTestSuite) TestSave_RejectsOutOfRangeAmount() {
	ctx := context.Background()
	req := suite.validSaveRequest()
	req.BankStatementBalance = decimal.NewFromInt(2_000_000_000)

	_, err := suite.service.SaveReconciliation(ctx, suite.orgID, req, suite.preparerID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ReconciliationServiceTestSuite) TestSave_RejectsExcessPrecision() {
	ctx := context.Background()
	req := suite.validSaveRequest()
	req.BookBalance = decimal.RequireFromString("1000.001")

	_, err := suite.service.SaveReconciliation(ctx, suite.orgID, req, suite.preparerID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ReconciliationServiceTestSuite) TestSave_RejectsWrongDifference() {
	ctx := context.Background()
	req := suite.validSaveRequest()
	req.Difference = decimal.NewFromInt(999)

	_, err := suite.service.SaveReconciliation(ctx, suite.orgID, req, suite.preparerID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockBankAccountRepo.AssertNotCalled(suite.T(), "FindBankAccountByID")
}

func (suite *ReconciliationServiceTestSuite) TestSave_RejectsUnknownStatus() {
	ctx := context.Background()
	req := suite.validSaveRequest()
	bogus := "FINALIZED"
	req.Status = &bogus

	_, err := suite.service.SaveReconciliation(ctx, suite.orgID, req, suite.preparerID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ReconciliationServiceTestSuite) TestSave_RejectsInactiveBankAccount() {
	ctx := context.Background()
	req := suite.validSaveRequest()

	inactive := suite.bankAccount
	inactive.IsActive = false
	suite.mockBankAccountRepo.On("FindBankAccountByID", mock.Anything, suite.bankAccount.BankAccountID).
		Return(&inactive, nil).Once()

	_, err := suite.service.SaveReconciliation(ctx, suite.orgID, req, suite.preparerID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ReconciliationServiceTestSuite) TestSave_BookBalanceMismatch() {
	ctx := context.Background()
	req := suite.validSaveRequest()
	req.BookBalance = decimal.NewFromInt(900)
	req.Difference = decimal.NewFromInt(150)

	suite.expectBankAccount()
	suite.expectLedgerBalance() // ledger says 1000

	_, err := suite.service.SaveReconciliation(ctx, suite.orgID, req, suite.preparerID)

	suite.Require().Error(err)
	var mismatch *apperrors.BookBalanceMismatchError
	suite.Require().ErrorAs(err, &mismatch)
	suite.True(mismatch.Reported.Equal(decimal.NewFromInt(900)))
	suite.True(mismatch.Computed.Equal(decimal.NewFromInt(1000)))
	suite.mockReconRepo.AssertNotCalled(suite.T(), "SaveReconciliation")
}

func (suite *ReconciliationServiceTestSuite) TestSave_LargeVariance() {
	ctx := context.Background()
	req := suite.validSaveRequest()
	req.BankStatementBalance = decimal.NewFromInt(200)
	req.AdjustedBalance = decimal.NewFromInt(200)
	req.Difference = decimal.NewFromInt(-800)

	suite.expectBankAccount()
	suite.expectLedgerBalance()

	previous := &domain.BankReconciliation{
		ReconciliationID:     uuid.NewString(),
		BankAccountID:        suite.bankAccount.BankAccountID,
		BankStatementBalance: decimal.NewFromInt(100),
		Status:               domain.ReconApproved,
	}
	suite.mockReconRepo.On("FindLatestNonVoided", mock.Anything, suite.bankAccount.BankAccountID, mock.AnythingOfType("time.Time")).
		Return(previous, nil).Once()

	_, err := suite.service.SaveReconciliation(ctx, suite.orgID, req, suite.preparerID)

	suite.Require().Error(err)
	var variance *apperrors.LargeVarianceError
	suite.Require().ErrorAs(err, &variance)
	suite.True(variance.ChangePercent.Equal(decimal.NewFromInt(100)))
	suite.mockReconRepo.AssertNotCalled(suite.T(), "ExistsNonVoided")
}

func (suite *ReconciliationServiceTestSuite) TestSave_DuplicateDate() {
	ctx := context.Background()
	req := suite.validSaveRequest()
	existingID := uuid.NewString()

	suite.expectBankAccount()
	suite.expectLedgerBalance()
	suite.mockReconRepo.On("FindLatestNonVoided", mock.Anything, suite.bankAccount.BankAccountID, mock.AnythingOfType("time.Time")).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockReconRepo.On("ExistsNonVoided", mock.Anything, suite.bankAccount.BankAccountID, mock.AnythingOfType("time.Time")).
		Return(existingID, nil).Once()

	_, err := suite.service.SaveReconciliation(ctx, suite.orgID, req, suite.preparerID)

	suite.Require().Error(err)
	var dup *apperrors.DuplicateReconciliationError
	suite.Require().ErrorAs(err, &dup)
	suite.Equal(existingID, dup.ExistingID)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockReconRepo.AssertNotCalled(suite.T(), "SaveReconciliation")
}

func (suite *ReconciliationServiceTestSuite) TestSave_SameDayDifferentTimeIsDuplicate() {
	ctx := context.Background()
	req := suite.validSaveRequest()
	// Afternoon timestamp on the same calendar day as an existing reconciliation.
	day := time.Now().UTC().AddDate(0, 0, -1)
	midnight := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	req.ReconciliationDate = midnight.Add(15*time.Hour + 30*time.Minute)
	existingID := uuid.NewString()

	suite.expectBankAccount()
	suite.expectLedgerBalance()
	suite.mockReconRepo.On("FindLatestNonVoided", mock.Anything, suite.bankAccount.BankAccountID, midnight).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockReconRepo.On("ExistsNonVoided", mock.Anything, suite.bankAccount.BankAccountID, midnight).
		Return(existingID, nil).Once()

	_, err := suite.service.SaveReconciliation(ctx, suite.orgID, req, suite.preparerID)

	suite.Require().Error(err)
	var dup *apperrors.DuplicateReconciliationError
	suite.Require().ErrorAs(err, &dup)
	suite.Equal(midnight, dup.ReconciliationDate)
	suite.mockReconRepo.AssertExpectations(suite.T())
	suite.mockReconRepo.AssertNotCalled(suite.T(), "SaveReconciliation")
}

func (suite *ReconciliationServiceTestSuite) TestSave_PersistsDayGranularDate() {
	ctx := context.Background()
	req := suite.validSaveRequest()
	day := time.Now().UTC().AddDate(0, 0, -1)
	midnight := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	req.ReconciliationDate = midnight.Add(9 * time.Hour)

	suite.expectBankAccount()
	suite.expectLedgerBalance()
	suite.expectNoPreviousAndUnique()

	var captured domain.BankReconciliation
	suite.mockReconRepo.On("SaveReconciliation", mock.Anything, mock.Anything, false, mock.Anything).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(domain.BankReconciliation)
		}).Return(nil).Once()

	_, err := suite.service.SaveReconciliation(ctx, suite.orgID, req, suite.preparerID)

	suite.Require().NoError(err)
	suite.Equal(midnight, captured.ReconciliationDate)
}

func (suite *ReconciliationServiceTestSuite) TestSave_ReconciledAliasStampsBankAccount() {
	ctx := context.Background()
	req := suite.validSaveRequest()
	status := "RECONCILED"
	req.Status = &status

	suite.expectBankAccount()
	suite.expectLedgerBalance()
	suite.expectNoPreviousAndUnique()
	suite.mockReconRepo.On("SaveReconciliation", mock.Anything,
		mock.AnythingOfType("domain.BankReconciliation"), true,
		mock.AnythingOfType("domain.AuditLogEntry")).Return(nil).Once()

	recon, err := suite.service.SaveReconciliation(ctx, suite.orgID, req, suite.preparerID)

	suite.Require().NoError(err)
	suite.Equal(domain.ReconApproved, recon.Status)
	suite.Require().NotNil(recon.ApprovedBy)
	suite.Equal(suite.preparerID, *recon.ApprovedBy)
	suite.mockReconRepo.AssertExpectations(suite.T())
}

// --- Workflow transitions ---

func (suite *ReconciliationServiceTestSuite) reconInStatus(status domain.ReconciliationStatus) *domain.BankReconciliation {
	return &domain.BankReconciliation{
		ReconciliationID:     uuid.NewString(),
		OrgScope:             domain.OrgScope{OrganizationID: suite.orgID},
		BankAccountID:        suite.bankAccount.BankAccountID,
		ReconciliationDate:   time.Now().UTC().AddDate(0, 0, -1),
		BankStatementBalance: decimal.NewFromInt(1050),
		BookBalance:          decimal.NewFromInt(1000),
		Difference:           decimal.NewFromInt(50),
		Status:               status,
		PreparedBy:           suite.preparerID,
		PreparedAt:           time.Now().UTC().Add(-time.Hour),
		Version:              1,
	}
}

func (suite *ReconciliationServiceTestSuite) TestSubmitForReview_Success() {
	ctx := context.Background()
	recon := suite.reconInStatus(domain.ReconDraft)

	suite.mockReconRepo.On("FindByID", mock.Anything, recon.ReconciliationID).Return(recon, nil).Once()
	suite.mockReconRepo.On("TransitionStatus", mock.Anything,
		mock.MatchedBy(func(r domain.BankReconciliation) bool {
			return r.Status == domain.ReconPendingReview
		}),
		(*int64)(nil), false,
		mock.AnythingOfType("domain.AuditLogEntry")).Return(nil).Once()

	updated, err := suite.service.SubmitForReview(ctx, suite.orgID, recon.ReconciliationID, suite.preparerID, nil)

	suite.Require().NoError(err)
	suite.Equal(domain.ReconPendingReview, updated.Status)
	suite.Equal(int64(2), updated.Version)
	suite.mockReconRepo.AssertExpectations(suite.T())
}

func (suite *ReconciliationServiceTestSuite) TestSubmitForReview_RejectsNonDraft() {
	ctx := context.Background()
	recon := suite.reconInStatus(domain.ReconApproved)

	suite.mockReconRepo.On("FindByID", mock.Anything, recon.ReconciliationID).Return(recon, nil).Once()

	_, err := suite.service.SubmitForReview(ctx, suite.orgID, recon.ReconciliationID, suite.preparerID, nil)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidState)
	suite.mockReconRepo.AssertNotCalled(suite.T(), "TransitionStatus")
}

func (suite *ReconciliationServiceTestSuite) TestApprove_Success() {
	ctx := context.Background()
	recon := suite.reconInStatus(domain.ReconPendingReview)

	suite.mockReconRepo.On("FindByID", mock.Anything, recon.ReconciliationID).Return(recon, nil).Once()
	suite.mockReconRepo.On("TransitionStatus", mock.Anything,
		mock.MatchedBy(func(r domain.BankReconciliation) bool {
			return r.Status == domain.ReconApproved && r.ApprovedBy != nil && *r.ApprovedBy == suite.reviewerID
		}),
		(*int64)(nil), true,
		mock.AnythingOfType("domain.AuditLogEntry")).Return(nil).Once()

	updated, err := suite.service.Approve(ctx, suite.orgID, recon.ReconciliationID, suite.reviewerID, nil)

	suite.Require().NoError(err)
	suite.Equal(domain.ReconApproved, updated.Status)
	suite.Equal(int64(2), updated.Version)
	suite.mockReconRepo.AssertExpectations(suite.T())
}

func (suite *ReconciliationServiceTestSuite) TestApprove_RejectsPreparer() {
	ctx := context.Background()
	recon := suite.reconInStatus(domain.ReconPendingReview)

	suite.mockReconRepo.On("FindByID", mock.Anything, recon.ReconciliationID).Return(recon, nil).Once()

	_, err := suite.service.Approve(ctx, suite.orgID, recon.ReconciliationID, suite.preparerID, nil)

	suite.Require().Error(err)
	var selfApproval *apperrors.SelfApprovalError
	suite.Require().ErrorAs(err, &selfApproval)
	suite.Equal(suite.preparerID, selfApproval.ActorID)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockReconRepo.AssertNotCalled(suite.T(), "TransitionStatus")
}

func (suite *ReconciliationServiceTestSuite) TestApprove_RejectsDraft() {
	ctx := context.Background()
	recon := suite.reconInStatus(domain.ReconDraft)

	suite.mockReconRepo.On("FindByID", mock.Anything, recon.ReconciliationID).Return(recon, nil).Once()

	_, err := suite.service.Approve(ctx, suite.orgID, recon.ReconciliationID, suite.reviewerID, nil)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidState)
}

func (suite *ReconciliationServiceTestSuite) TestReject_AppendsReasonToNotes() {
	ctx := context.Background()
	recon := suite.reconInStatus(domain.ReconPendingReview)
	recon.Notes = "Month end"

	suite.mockReconRepo.On("FindByID", mock.Anything, recon.ReconciliationID).Return(recon, nil).Once()
	suite.mockReconRepo.On("TransitionStatus", mock.Anything,
		mock.MatchedBy(func(r domain.BankReconciliation) bool {
			return r.Status == domain.ReconRejected && r.Notes == "Month end\nRejected: amounts look off"
		}),
		(*int64)(nil), false,
		mock.AnythingOfType("domain.AuditLogEntry")).Return(nil).Once()

	updated, err := suite.service.Reject(ctx, suite.orgID, recon.ReconciliationID, suite.reviewerID, "amounts look off", nil)

	suite.Require().NoError(err)
	suite.Equal(domain.ReconRejected, updated.Status)
	suite.Require().NotNil(updated.ReviewedBy)
	suite.Equal(suite.reviewerID, *updated.ReviewedBy)
	suite.mockReconRepo.AssertExpectations(suite.T())
}

func (suite *ReconciliationServiceTestSuite) TestReject_RequiresReason() {
	ctx := context.Background()

	_, err := suite.service.Reject(ctx, suite.orgID, uuid.NewString(), suite.reviewerID, "  ", nil)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockReconRepo.AssertNotCalled(suite.T(), "FindByID")
}

func (suite *ReconciliationServiceTestSuite) TestVoid_Success() {
	ctx := context.Background()
	recon := suite.reconInStatus(domain.ReconRejected)

	suite.mockReconRepo.On("FindByID", mock.Anything, recon.ReconciliationID).Return(recon, nil).Once()
	suite.mockReconRepo.On("TransitionStatus", mock.Anything,
		mock.MatchedBy(func(r domain.BankReconciliation) bool {
			return r.Status == domain.ReconVoided && r.VoidReason != nil && *r.VoidReason == "superseded"
		}),
		(*int64)(nil), false,
		mock.AnythingOfType("domain.AuditLogEntry")).Return(nil).Once()

	updated, err := suite.service.Void(ctx, suite.orgID, recon.ReconciliationID, "superseded", suite.preparerID)

	suite.Require().NoError(err)
	suite.Equal(domain.ReconVoided, updated.Status)
}

func (suite *ReconciliationServiceTestSuite) TestVoid_RejectsTerminal() {
	ctx := context.Background()
	recon := suite.reconInStatus(domain.ReconApproved)

	suite.mockReconRepo.On("FindByID", mock.Anything, recon.ReconciliationID).Return(recon, nil).Once()

	_, err := suite.service.Void(ctx, suite.orgID, recon.ReconciliationID, "cleanup", suite.preparerID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidState)
	suite.mockReconRepo.AssertNotCalled(suite.T(), "TransitionStatus")
}

// --- Reads ---

func (suite *ReconciliationServiceTestSuite) TestFindOne_OrgScopeObscures() {
	ctx := context.Background()
	recon := suite.reconInStatus(domain.ReconDraft)
	recon.OrganizationID = uuid.NewString()

	suite.mockReconRepo.On("FindByID", mock.Anything, recon.ReconciliationID).Return(recon, nil).Once()

	_, err := suite.service.FindOne(ctx, suite.orgID, recon.ReconciliationID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ReconciliationServiceTestSuite) TestFindByBankAccount_DefaultsLimit() {
	ctx := context.Background()

	suite.expectBankAccount()
	suite.mockReconRepo.On("FindByBankAccount", mock.Anything, suite.bankAccount.BankAccountID, 20, 0).
		Return([]domain.BankReconciliation{}, nil).Once()

	_, err := suite.service.FindByBankAccount(ctx, suite.orgID, suite.bankAccount.BankAccountID, dto.ListReconciliationsParams{})

	suite.Require().NoError(err)
	suite.mockReconRepo.AssertExpectations(suite.T())
}

func TestReconciliationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReconciliationServiceTestSuite))
}
