package validate

import (
	"github.com/tobi-akande/expense-scanner/constants"
	"github.com/tobi-akande/expense-scanner/internal/entity"
)

// Summarize rolls up stored issues by severity, type and acknowledgement.
// Pure aggregation; safe to call on an empty slice.
func Summarize(issues []entity.ValidationIssue) entity.ValidationSummary {
	summary := entity.ValidationSummary{
		TotalIssues:  len(issues),
		IssuesByType: make(map[string]int),
	}

	for _, issue := range issues {
		switch issue.Severity {
		case constants.SeverityError:
			summary.Errors++
		case constants.SeverityWarning:
			summary.Warnings++
		case constants.SeverityInfo:
			summary.Info++
		}
		if !issue.Acknowledged {
			summary.Unacknowledged++
		}
		summary.IssuesByType[string(issue.IssueType)]++
	}

	return summary
}
