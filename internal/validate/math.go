package validate

import (
	"fmt"
	"math"
	"strings"

	"github.com/tobi-akande/expense-scanner/constants"
	"github.com/tobi-akande/expense-scanner/internal/entity"
)

// mathRules checks cross-field arithmetic: line-item sums vs subtotal, tax
// rate plausibility, subtotal+tax vs total and the tip ratio. Any numeric
// parse failure degrades to a single group-level ERROR and short-circuits
// the rest of the group; other groups still run.
func (e *Engine) mathRules(items []entity.LineItem, details *entity.ReceiptDetails) []entity.ValidationIssue {
	var issues []entity.ValidationIssue

	degrade := func(err error) []entity.ValidationIssue {
		return append(issues, entity.ValidationIssue{
			IssueType:   constants.IssueMathError,
			Severity:    constants.SeverityError,
			Description: fmt.Sprintf("Error in mathematical validation: %v", err),
		})
	}

	var detSubtotal, detTax, detTotal, detTip *string
	if details != nil {
		detSubtotal = details.Subtotal
		detTax = details.TaxAmount
		detTotal = details.TotalAmount
		detTip = details.TipAmount
	}

	// line items vs subtotal
	if len(items) > 0 && details != nil {
		calculated := 0.0
		for _, it := range items {
			calculated += it.TotalPrice
		}
		extracted, err := floatOrZero(detSubtotal)
		if err != nil {
			return degrade(err)
		}
		if calculated > 0 && math.Abs(calculated-extracted) > centTolerance {
			issues = append(issues, entity.ValidationIssue{
				IssueType:   constants.IssueMathError,
				Severity:    constants.SeverityError,
				Description: fmt.Sprintf("Line items sum (%s) does not match subtotal (%s)", money(calculated), money(extracted)),
			})
		}
	}

	subtotal, err := floatOrZero(detSubtotal)
	if err != nil {
		return degrade(err)
	}
	tax, err := floatOrZero(detTax)
	if err != nil {
		return degrade(err)
	}
	total, err := floatOrZero(detTotal)
	if err != nil {
		return degrade(err)
	}

	if subtotal > 0 && tax > 0 {
		// tax rate against the standard table
		rate := tax / subtotal
		if !e.standardRate(rate) {
			issues = append(issues, entity.ValidationIssue{
				IssueType:   constants.IssueMathError,
				Severity:    constants.SeverityWarning,
				Description: fmt.Sprintf("Unusual tax rate: %s (expected rates: %s)", percent(rate), e.ratesList()),
			})
		}

		// total vs subtotal + tax
		calculatedTotal := subtotal + tax
		if math.Abs(calculatedTotal-total) > centTolerance {
			issues = append(issues, entity.ValidationIssue{
				IssueType:   constants.IssueMathError,
				Severity:    constants.SeverityError,
				Description: fmt.Sprintf("Total (%s) does not match subtotal + tax (%s)", money(total), money(calculatedTotal)),
			})
		}
	}

	// tip ratio (receipts)
	if strOrEmpty(detTip) != "" {
		tip, err := floatOrZero(detTip)
		if err != nil {
			return degrade(err)
		}
		if tip > 0 && subtotal > 0 {
			ratio := tip / subtotal
			if ratio < tipRatioMin || ratio > tipRatioMax {
				issues = append(issues, entity.ValidationIssue{
					IssueType:   constants.IssueMathError,
					Severity:    constants.SeverityWarning,
					Description: fmt.Sprintf("Unusual tip percentage: %s (expected range: 10-25%%)", percent(ratio)),
				})
			}
		}
	}

	return issues
}

func (e *Engine) standardRate(rate float64) bool {
	for _, r := range e.taxRates {
		if math.Abs(rate-r) < taxRateTolerance {
			return true
		}
	}
	return false
}

func (e *Engine) ratesList() string {
	parts := make([]string, len(e.taxRates))
	for i, r := range e.taxRates {
		parts[i] = fmt.Sprintf("%.0f%%", r*100)
	}
	return strings.Join(parts, ", ")
}
