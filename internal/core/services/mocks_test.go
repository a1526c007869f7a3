package services_test

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/stewardly/ledger_engine/internal/core/domain"
	portsrepo "github.com/stewardly/ledger_engine/internal/core/ports/repositories"
)

// --- Mock AccountRepository ---

type MockAccountRepository struct {
	mock.Mock
}

var _ portsrepo.AccountRepositoryFacade = (*MockAccountRepository)(nil)

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) SumPostedLines(ctx context.Context, accountID string) (decimal.Decimal, decimal.Decimal, error) {
	args := m.Called(ctx, accountID)
	return args.Get(0).(decimal.Decimal), args.Get(1).(decimal.Decimal), args.Error(2)
}

func (m *MockAccountRepository) LockAccountsForUpdate(ctx context.Context, tx pgx.Tx, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, tx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) RecomputeBalancesInTx(ctx context.Context, tx pgx.Tx, accountIDs []string, userID string) error {
	args := m.Called(ctx, tx, accountIDs, userID)
	return args.Error(0)
}

// --- Mock JournalRepository ---

type MockJournalRepository struct {
	mock.Mock
}

var _ portsrepo.JournalRepositoryFacade = (*MockJournalRepository)(nil)

func (m *MockJournalRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.JournalEntryLine, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntryLine), args.Error(1)
}

func (m *MockJournalRepository) ListEntriesByOrg(ctx context.Context, organizationID string, limit int, offset int) ([]domain.JournalEntry, error) {
	args := m.Called(ctx, organizationID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) SaveDraftEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalEntryLine, audit domain.AuditLogEntry) error {
	args := m.Called(ctx, entry, lines, audit)
	return args.Error(0)
}

func (m *MockJournalRepository) PostEntry(ctx context.Context, entry domain.JournalEntry, expectedVersion *int64, accountIDs []string, audit domain.AuditLogEntry) error {
	args := m.Called(ctx, entry, expectedVersion, accountIDs, audit)
	return args.Error(0)
}

func (m *MockJournalRepository) VoidEntry(ctx context.Context, original domain.JournalEntry, expectedVersion *int64, reversing domain.JournalEntry, reversingLines []domain.JournalEntryLine, accountIDs []string, audits []domain.AuditLogEntry) error {
	args := m.Called(ctx, original, expectedVersion, reversing, reversingLines, accountIDs, audits)
	return args.Error(0)
}

// --- Mock BankAccountRepository ---

type MockBankAccountRepository struct {
	mock.Mock
}

var _ portsrepo.BankAccountRepositoryFacade = (*MockBankAccountRepository)(nil)

func (m *MockBankAccountRepository) FindBankAccountByID(ctx context.Context, bankAccountID string) (*domain.BankAccount, error) {
	args := m.Called(ctx, bankAccountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BankAccount), args.Error(1)
}

func (m *MockBankAccountRepository) StampReconciledInTx(ctx context.Context, tx pgx.Tx, bankAccountID string, reconciledDate time.Time, bankBalance decimal.Decimal, userID string) error {
	args := m.Called(ctx, tx, bankAccountID, reconciledDate, bankBalance, userID)
	return args.Error(0)
}

// --- Mock ReconciliationRepository ---

type MockReconciliationRepository struct {
	mock.Mock
}

var _ portsrepo.ReconciliationRepositoryFacade = (*MockReconciliationRepository)(nil)

func (m *MockReconciliationRepository) FindByID(ctx context.Context, reconciliationID string) (*domain.BankReconciliation, error) {
	args := m.Called(ctx, reconciliationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BankReconciliation), args.Error(1)
}

func (m *MockReconciliationRepository) FindByBankAccount(ctx context.Context, bankAccountID string, limit int, offset int) ([]domain.BankReconciliation, error) {
	args := m.Called(ctx, bankAccountID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BankReconciliation), args.Error(1)
}

func (m *MockReconciliationRepository) FindLatestNonVoided(ctx context.Context, bankAccountID string, excludeDate time.Time) (*domain.BankReconciliation, error) {
	args := m.Called(ctx, bankAccountID, excludeDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BankReconciliation), args.Error(1)
}

func (m *MockReconciliationRepository) ExistsNonVoided(ctx context.Context, bankAccountID string, date time.Time) (string, error) {
	args := m.Called(ctx, bankAccountID, date)
	return args.String(0), args.Error(1)
}

func (m *MockReconciliationRepository) SaveReconciliation(ctx context.Context, recon domain.BankReconciliation, stampBankAccount bool, audit domain.AuditLogEntry) error {
	args := m.Called(ctx, recon, stampBankAccount, audit)
	return args.Error(0)
}

func (m *MockReconciliationRepository) TransitionStatus(ctx context.Context, recon domain.BankReconciliation, expectedVersion *int64, stampBankAccount bool, audit domain.AuditLogEntry) error {
	args := m.Called(ctx, recon, expectedVersion, stampBankAccount, audit)
	return args.Error(0)
}

// --- Mock AuditRepository ---

type MockAuditRepository struct {
	mock.Mock
}

var _ portsrepo.AuditRepositoryFacade = (*MockAuditRepository)(nil)

func (m *MockAuditRepository) RecordInTx(ctx context.Context, tx pgx.Tx, entry domain.AuditLogEntry) error {
	args := m.Called(ctx, tx, entry)
	return args.Error(0)
}

func (m *MockAuditRepository) ListByEntity(ctx context.Context, entityType string, entityID string, limit int, offset int) ([]domain.AuditLogEntry, error) {
	args := m.Called(ctx, entityType, entityID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AuditLogEntry), args.Error(1)
}
