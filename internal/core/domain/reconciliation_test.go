package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stewardly/ledger_engine/internal/core/domain"
)

func TestReconciliationStatusIsTerminal(t *testing.T) {
	assert.True(t, domain.ReconApproved.IsTerminal())
	assert.True(t, domain.ReconVoided.IsTerminal())
	assert.False(t, domain.ReconDraft.IsTerminal())
	assert.False(t, domain.ReconPendingReview.IsTerminal())
	assert.False(t, domain.ReconRejected.IsTerminal())
}

func TestReconciliationStatusCanTransitionTo(t *testing.T) {
	testCases := []struct {
		name string
		from domain.ReconciliationStatus
		to   domain.ReconciliationStatus
		want bool
	}{
		{name: "draft to pending review", from: domain.ReconDraft, to: domain.ReconPendingReview, want: true},
		{name: "pending review to approved", from: domain.ReconPendingReview, to: domain.ReconApproved, want: true},
		{name: "pending review to rejected", from: domain.ReconPendingReview, to: domain.ReconRejected, want: true},
		{name: "draft to approved skips review", from: domain.ReconDraft, to: domain.ReconApproved, want: false},
		{name: "draft to voided", from: domain.ReconDraft, to: domain.ReconVoided, want: true},
		{name: "rejected to voided", from: domain.ReconRejected, to: domain.ReconVoided, want: true},
		{name: "approved to voided is blocked", from: domain.ReconApproved, to: domain.ReconVoided, want: false},
		{name: "voided stays voided", from: domain.ReconVoided, to: domain.ReconVoided, want: false},
		{name: "approved to pending review", from: domain.ReconApproved, to: domain.ReconPendingReview, want: false},
		{name: "rejected to approved", from: domain.ReconRejected, to: domain.ReconApproved, want: false},
		{name: "anything to draft", from: domain.ReconPendingReview, to: domain.ReconDraft, want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.from.CanTransitionTo(tc.to))
		})
	}
}

func TestValidReconciliationStatus(t *testing.T) {
	for _, valid := range []string{"DRAFT", "PENDING_REVIEW", "APPROVED", "REJECTED", "VOIDED"} {
		assert.True(t, domain.ValidReconciliationStatus(valid), valid)
	}
	for _, invalid := range []string{"", "draft", "RECONCILED", "FINALIZED"} {
		assert.False(t, domain.ValidReconciliationStatus(invalid), invalid)
	}
}
