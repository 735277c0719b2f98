package validate

import (
	"fmt"
	"strings"

	"github.com/tobi-akande/expense-scanner/constants"
	"github.com/tobi-akande/expense-scanner/internal/entity"
	"github.com/tobi-akande/expense-scanner/internal/pipeline"
)

var (
	restaurantKeywords = []string{"restaurant", "cafe", "coffee", "diner", "bar", "grill"}
	gasKeywords        = []string{"gas", "fuel", "shell", "bp", "exxon", "chevron"}
	groceryKeywords    = []string{"grocery", "market", "supermarket", "walmart", "costco", "aldi", "kroger"}
)

// vendorRules applies merchant-keyword heuristics. A merchant matching more
// than one keyword group gets every applicable check.
func (e *Engine) vendorRules(fields map[string]entity.FieldResult, details *entity.ReceiptDetails) []entity.ValidationIssue {
	var issues []entity.ValidationIssue

	merchant := ""
	if details != nil && strOrEmpty(details.MerchantName) != "" {
		merchant = strOrEmpty(details.MerchantName)
	} else {
		merchant = strOrEmpty(fieldValue(fields, pipeline.FieldVendor))
	}
	if merchant == "" {
		return issues
	}
	merchantLower := strings.ToLower(merchant)

	degrade := func(err error) []entity.ValidationIssue {
		return append(issues, entity.ValidationIssue{
			IssueType:   constants.IssueMissingData,
			Severity:    constants.SeverityInfo,
			Description: fmt.Sprintf("Error in vendor-specific validation: %v", err),
		})
	}

	if matchesAny(merchantLower, restaurantKeywords) {
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
	}

	if matchesAny(merchantLower, gasKeywords) {
		total, _, err := e.resolveTotal(fields, details)
		if err != nil {
			return degrade(err)
		}
		if total != 0 && (total < 10 || total > 200) {
			issues = append(issues, entity.ValidationIssue{
				IssueType:   constants.IssueSuspiciousAmount,
				Severity:    constants.SeverityInfo,
				Description: fmt.Sprintf("Unusual gas purchase amount: %s (typical range: $10-$200)", money(total)),
			})
		}
	}

	if matchesAny(merchantLower, groceryKeywords) {
		total, _, err := e.resolveTotal(fields, details)
		if err != nil {
			return degrade(err)
		}
		if total != 0 && (total < 20 || total > 500) {
			issues = append(issues, entity.ValidationIssue{
				IssueType:   constants.IssueSuspiciousAmount,
				Severity:    constants.SeverityInfo,
				Description: fmt.Sprintf("Unusual grocery purchase amount: %s (typical range: $20-$500)", money(total)),
			})
		}
	}

	return issues
}

func matchesAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
