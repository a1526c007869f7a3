package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/stewardly/ledger_engine/internal/core/domain"
	portssvc "github.com/stewardly/ledger_engine/internal/core/ports/services"
	"github.com/stewardly/ledger_engine/internal/core/services"
)

type AuditServiceTestSuite struct {
	suite.Suite
	mockAuditRepo *MockAuditRepository
	service       portssvc.AuditSvcFacade
	orgID         string
}

func (suite *AuditServiceTestSuite) SetupTest() {
	suite.mockAuditRepo = new(MockAuditRepository)
	suite.service = services.NewAuditService(suite.mockAuditRepo)
	suite.orgID = uuid.NewString()
}

func (suite *AuditServiceTestSuite) TestListByEntity_FiltersOtherOrganisations() {
	ctx := context.Background()
	entityID := uuid.NewString()

	entries := []domain.AuditLogEntry{
		{AuditID: uuid.NewString(), OrganizationID: suite.orgID, EntityType: services.EntityJournalEntry, EntityID: entityID, Action: domain.ActionCreate},
		{AuditID: uuid.NewString(), OrganizationID: uuid.NewString(), EntityType: services.EntityJournalEntry, EntityID: entityID, Action: domain.ActionPost},
		{AuditID: uuid.NewString(), OrganizationID: suite.orgID, EntityType: services.EntityJournalEntry, EntityID: entityID, Action: domain.ActionVoid},
	}
	suite.mockAuditRepo.On("ListByEntity", mock.Anything, services.EntityJournalEntry, entityID, 50, 0).
		Return(entries, nil).Once()

	got, err := suite.service.ListByEntity(ctx, suite.orgID, services.EntityJournalEntry, entityID, 0, 0)

	suite.Require().NoError(err)
	suite.Require().Len(got, 2)
	suite.Equal(domain.ActionCreate, got[0].Action)
	suite.Equal(domain.ActionVoid, got[1].Action)
	suite.mockAuditRepo.AssertExpectations(suite.T())
}

func (suite *AuditServiceTestSuite) TestListByEntity_PassesExplicitPagination() {
	ctx := context.Background()
	entityID := uuid.NewString()

	suite.mockAuditRepo.On("ListByEntity", mock.Anything, services.EntityReconciliation, entityID, 10, 30).
		Return([]domain.AuditLogEntry{}, nil).Once()

	_, err := suite.service.ListByEntity(ctx, suite.orgID, services.EntityReconciliation, entityID, 10, 30)

	suite.Require().NoError(err)
	suite.mockAuditRepo.AssertExpectations(suite.T())
}

func TestAuditServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuditServiceTestSuite))
}
