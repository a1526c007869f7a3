package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stewardly/ledger_engine/internal/apperrors"
	portsrepo "github.com/stewardly/ledger_engine/internal/core/ports/repositories"
	"github.com/stewardly/ledger_engine/internal/core/services"
	"github.com/stewardly/ledger_engine/internal/dto"
	"github.com/stewardly/ledger_engine/pkg/config"
)

func mockProvider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:        new(MockAccountRepository),
		JournalRepo:        new(MockJournalRepository),
		BankAccountRepo:    new(MockBankAccountRepository),
		ReconciliationRepo: new(MockReconciliationRepository),
		AuditRepo:          new(MockAuditRepository),
	}
}

func TestNewServiceContainer_WiresAllServices(t *testing.T) {
	container := services.NewServiceContainer(&config.Config{}, mockProvider())

	require.NotNil(t, container.Journal)
	require.NotNil(t, container.Reconciliation)
	require.NotNil(t, container.Audit)
}

// A configured amount ceiling must reach the reconciliation save pipeline.
func TestNewServiceContainer_AppliesAmountLimits(t *testing.T) {
	cfg := &config.Config{ReconMaxAmount: 100}
	container := services.NewServiceContainer(cfg, mockProvider())

	req := dto.SaveReconciliationRequest{
		BankAccountID:        uuid.NewString(),
		ReconciliationDate:   time.Now().UTC().AddDate(0, 0, -1),
		BankStatementBalance: decimal.NewFromInt(500),
		BookBalance:          decimal.NewFromInt(500),
		AdjustedBalance:      decimal.NewFromInt(500),
		Difference:           decimal.Zero,
	}

	_, err := container.Reconciliation.SaveReconciliation(context.Background(), uuid.NewString(), req, uuid.NewString())

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
