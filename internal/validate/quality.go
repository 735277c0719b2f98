package validate

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/tobi-akande/expense-scanner/constants"
	"github.com/tobi-akande/expense-scanner/internal/entity"
	"github.com/tobi-akande/expense-scanner/internal/pipeline"
)

// criticalFields must all be present and populated; absence of total or date
// escalates the issue to ERROR, vendor/merchant gaps alone stay WARNING.
var criticalFields = []string{
	pipeline.FieldVendor,
	pipeline.FieldMerchantName,
	pipeline.FieldDate,
	pipeline.FieldTotal,
}

var amountFields = []string{
	pipeline.FieldTotal,
	pipeline.FieldSubtotal,
	pipeline.FieldTax,
	pipeline.FieldTip,
}

// dataQualityRules flags missing critical fields, low-confidence extractions,
// negative amounts and unparseable dates.
func (e *Engine) dataQualityRules(fields map[string]entity.FieldResult) []entity.ValidationIssue {
	var issues []entity.ValidationIssue

	var missing []string
	for _, name := range criticalFields {
		if strOrEmpty(fieldValue(fields, name)) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		severity := constants.SeverityWarning
		for _, name := range missing {
			if name == pipeline.FieldTotal || name == pipeline.FieldDate {
				severity = constants.SeverityError
				break
			}
		}
		issues = append(issues, entity.ValidationIssue{
			IssueType:   constants.IssueMissingData,
			Severity:    severity,
			Description: fmt.Sprintf("Missing critical fields: %s", strings.Join(missing, ", ")),
		})
	}

	// sorted keys so repeated runs report identical issues
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	var lowConfidence []string
	for _, name := range names {
		fr := fields[name]
		if fr.Confidence < e.lowConfidence && strOrEmpty(fr.Value) != "" {
			lowConfidence = append(lowConfidence, fmt.Sprintf("%s (%.2f)", name, fr.Confidence))
		}
	}
	if len(lowConfidence) > 0 {
		issues = append(issues, entity.ValidationIssue{
			IssueType:   constants.IssueLowConfidence,
			Severity:    constants.SeverityWarning,
			Description: fmt.Sprintf("Low confidence OCR extractions: %s", strings.Join(lowConfidence, ", ")),
		})
	}

	var negative []string
	for _, name := range amountFields {
		raw := strOrEmpty(fieldValue(fields, name))
		if raw == "" {
			continue
		}
		// malformed amounts are reported by the math group
		if v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err == nil && v < 0 {
			negative = append(negative, name)
		}
	}
	if len(negative) > 0 {
		issues = append(issues, entity.ValidationIssue{
			IssueType:   constants.IssueMissingData,
			Severity:    constants.SeverityError,
			Description: fmt.Sprintf("Negative amounts detected in fields: %s", strings.Join(negative, ", ")),
		})
	}

	if raw := strOrEmpty(fieldValue(fields, pipeline.FieldDate)); raw != "" {
		if _, ok := parseDate(raw); !ok {
			issues = append(issues, entity.ValidationIssue{
				IssueType:   constants.IssueMissingData,
				Severity:    constants.SeverityWarning,
				Description: fmt.Sprintf("Invalid date format: %s", raw),
			})
		}
	}

	return issues
}
