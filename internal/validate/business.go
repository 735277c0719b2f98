package validate

import (
	"fmt"
	"time"

	"github.com/tobi-akande/expense-scanner/constants"
	"github.com/tobi-akande/expense-scanner/internal/entity"
	"github.com/tobi-akande/expense-scanner/internal/pipeline"
)

// businessRules checks amount plausibility, future dates and weekend
// after-hours transactions. The total is read from the receipt details when
// populated, falling back to the extracted field; a field present with no
// value still counts as a (zero) amount.
func (e *Engine) businessRules(fields map[string]entity.FieldResult, details *entity.ReceiptDetails) []entity.ValidationIssue {
	var issues []entity.ValidationIssue

	total, ok, err := e.resolveTotal(fields, details)
	if err != nil {
		return append(issues, entity.ValidationIssue{
			IssueType:   constants.IssueSuspiciousAmount,
			Severity:    constants.SeverityInfo,
			Description: fmt.Sprintf("Error in business rule validation: %v", err),
		})
	}
	if ok {
		if total > 10000 {
			issues = append(issues, entity.ValidationIssue{
				IssueType:   constants.IssueSuspiciousAmount,
				Severity:    constants.SeverityWarning,
				Description: fmt.Sprintf("Unusually high amount: %s (over $10,000)", money(total)),
			})
		} else if total < 1 {
			issues = append(issues, entity.ValidationIssue{
				IssueType:   constants.IssueSuspiciousAmount,
				Severity:    constants.SeverityWarning,
				Description: fmt.Sprintf("Unusually low amount: %s (under $1.00)", money(total)),
			})
		}
	}

	dateValue := strOrEmpty(fieldValue(fields, pipeline.FieldDate))

	// future dates; an unparseable date is a data-quality concern, not ours
	if dateValue != "" {
		if parsed, ok := parseDate(dateValue); ok {
			today := dateOnly(e.now())
			if dateOnly(parsed).After(today) {
				issues = append(issues, entity.ValidationIssue{
					IssueType:   constants.IssueSuspiciousAmount,
					Severity:    constants.SeverityError,
					Description: fmt.Sprintf("Future date detected: %s (today is %s)", dateValue, today.Format("2006-01-02")),
				})
			}
		}
	}

	// weekend transactions outside 9am-9pm (receipts with a timestamp)
	if details != nil && strOrEmpty(details.TransactionTime) != "" && dateValue != "" {
		timeValue := strOrEmpty(details.TransactionTime)
		if parsed, ok := parseDate(dateValue); ok && isWeekend(parsed) {
			if clock, ok := parseClock(timeValue); ok && (clock.Hour() < 9 || clock.Hour() >= 21) {
				issues = append(issues, entity.ValidationIssue{
					IssueType:   constants.IssueSuspiciousAmount,
					Severity:    constants.SeverityInfo,
					Description: fmt.Sprintf("Weekend transaction outside typical business hours: %s on %s", timeValue, dateValue),
				})
			}
		}
	}

	return issues
}

func isWeekend(t time.Time) bool {
	return t.Weekday() == time.Saturday || t.Weekday() == time.Sunday
}

// resolveTotal reads the total amount from the details record when populated,
// otherwise from the extracted "total" field when that key exists. The second
// return reports whether any source was found at all.
func (e *Engine) resolveTotal(fields map[string]entity.FieldResult, details *entity.ReceiptDetails) (float64, bool, error) {
	if details != nil && strOrEmpty(details.TotalAmount) != "" {
		v, err := floatOrZero(details.TotalAmount)
		return v, err == nil, err
	}
	if _, present := fields[pipeline.FieldTotal]; present {
		v, err := floatOrZero(fieldValue(fields, pipeline.FieldTotal))
		return v, err == nil, err
	}
	return 0, false, nil
}
