package constants

// IssueType classifies a validation issue.
type IssueType string

// Stable values (store these exact strings in DB).
const (
	IssueMathError        IssueType = "MATH_ERROR"
	IssueSuspiciousAmount IssueType = "SUSPICIOUS_AMOUNT"
	IssueMissingData      IssueType = "MISSING_DATA"
	IssueLowConfidence    IssueType = "LOW_CONFIDENCE"
)

// IssueTypes lists all valid issue types.
var IssueTypes = []string{
	string(IssueMathError),
	string(IssueSuspiciousAmount),
	string(IssueMissingData),
	string(IssueLowConfidence),
}

// Severity ranks a validation issue.
type Severity string

const (
	SeverityError   Severity = "ERROR"
	SeverityWarning Severity = "WARNING"
	SeverityInfo    Severity = "INFO"
)

// Severities lists all valid severities.
var Severities = []string{
	string(SeverityError),
	string(SeverityWarning),
	string(SeverityInfo),
}
