package validate

import (
	"fmt"

	"github.com/tobi-akande/expense-scanner/constants"
	"github.com/tobi-akande/expense-scanner/internal/entity"
	"github.com/tobi-akande/expense-scanner/internal/pipeline"
)

// industryRules applies amount-range heuristics keyed on the assigned
// category. Unlike the vendor group, at most one branch runs.
func (e *Engine) industryRules(fields map[string]entity.FieldResult, details *entity.ReceiptDetails) []entity.ValidationIssue {
	var issues []entity.ValidationIssue

	category := ""
	if details != nil && strOrEmpty(details.Category) != "" {
		category = strOrEmpty(details.Category)
	} else {
		category = strOrEmpty(fieldValue(fields, pipeline.FieldCategory))
	}
	if category == "" {
		return issues
	}

	degrade := func(err error) []entity.ValidationIssue {
		return append(issues, entity.ValidationIssue{
			IssueType:   constants.IssueMissingData,
			Severity:    constants.SeverityInfo,
			Description: fmt.Sprintf("Error in industry-specific validation: %v", err),
		})
	}

	switch constants.Category(category) {
	case constants.FoodAndDining:
		total, _, err := e.resolveTotal(fields, details)
		if err != nil {
			return degrade(err)
		}
		var tip float64
		if details != nil && strOrEmpty(details.TipAmount) != "" {
			tip, err = floatOrZero(details.TipAmount)
			if err != nil {
				return degrade(err)
			}
		}
		if total > 0 && tip > 0 {
			ratio := tip / total
			if ratio < tipRatioMin || ratio > tipRatioMax {
				issues = append(issues, entity.ValidationIssue{
					IssueType:   constants.IssueSuspiciousAmount,
					Severity:    constants.SeverityInfo,
					Description: fmt.Sprintf("Unusual tip percentage for restaurant: %s (expected range: 10-25%%)", percent(ratio)),
				})
			}
		}

	case constants.Transportation:
		total, _, err := e.resolveTotal(fields, details)
		if err != nil {
			return degrade(err)
		}
		if total != 0 && (total < 10 || total > 200) {
			issues = append(issues, entity.ValidationIssue{
				IssueType:   constants.IssueSuspiciousAmount,
				Severity:    constants.SeverityInfo,
				Description: fmt.Sprintf("Unusual transportation amount: %s (typical range: $10-$200)", money(total)),
			})
		}

	case constants.OfficeSupplies:
		total, _, err := e.resolveTotal(fields, details)
		if err != nil {
			return degrade(err)
		}
		if total != 0 && (total < 5 || total > 500) {
			issues = append(issues, entity.ValidationIssue{
				IssueType:   constants.IssueSuspiciousAmount,
				Severity:    constants.SeverityInfo,
				Description: fmt.Sprintf("Unusual office supplies amount: %s (typical range: $5-$500)", money(total)),
			})
		}
	}

	return issues
}
