package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/tobi-akande/expense-scanner/constants"
)

// ValidationIssue is a flagged inconsistency for a document. Created only by
// the validation engine; never mutated afterwards except the Acknowledged
// flag, which a reviewer toggles.
type ValidationIssue struct {
	ID           uuid.UUID           `json:"id,omitempty"`
	DocumentID   uuid.UUID           `json:"document_id,omitempty"`
	IssueType    constants.IssueType `json:"issue_type"`
	Severity     constants.Severity  `json:"severity"`
	Description  string              `json:"description"`
	Acknowledged bool                `json:"acknowledged"`
	CreatedAt    time.Time           `json:"created_at,omitempty"`
}

// ValidationSummary is the derived, read-only rollup of a document's stored
// issues.
type ValidationSummary struct {
	TotalIssues    int            `json:"total_issues"`
	Errors         int            `json:"errors"`
	Warnings       int            `json:"warnings"`
	Info           int            `json:"info"`
	Unacknowledged int            `json:"unacknowledged"`
	IssuesByType   map[string]int `json:"issues_by_type"`
}
