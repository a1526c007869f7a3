package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // UserID reference
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // UserID reference
}

// OrgScope identifies the organisation (and optional branch) an entity belongs to.
// Every financial record carries exactly one organisation.
type OrgScope struct {
	OrganizationID string `json:"organizationID"`
	BranchID       string `json:"branchID,omitempty"` // Nullable
}
