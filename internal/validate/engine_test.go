package validate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tobi-akande/expense-scanner/constants"
	"github.com/tobi-akande/expense-scanner/internal/entity"
)

func strptr(s string) *string { return &s }

func fixedClock() func() time.Time {
	return func() time.Time {
		return time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)
	}
}

func newTestEngine(opts ...Option) *Engine {
	opts = append([]Option{WithClock(fixedClock())}, opts...)
	return NewEngine(nil, opts...)
}

func TestMathRules(t *testing.T) {
	tests := []struct {
		name     string
		items    []entity.LineItem
		details  *entity.ReceiptDetails
		want     int
		severity constants.Severity
		contains []string
	}{
		{
			name:  "line items sum mismatch",
			items: []entity.LineItem{{ItemName: "Coffee", Quantity: 1, UnitPrice: 15, TotalPrice: 15}},
			details: &entity.ReceiptDetails{
				Subtotal: strptr("20.00"),
			},
			want:     1,
			severity: constants.SeverityError,
			contains: []string{"$15.00", "$20.00"},
		},
		{
			name:  "line items match within a cent",
			items: []entity.LineItem{{ItemName: "Coffee", TotalPrice: 19.995}},
			details: &entity.ReceiptDetails{
				Subtotal: strptr("20.00"),
			},
			want: 0,
		},
		{
			name: "standard tax rate accepted",
			details: &entity.ReceiptDetails{
				Subtotal:    strptr("100.00"),
				TaxAmount:   strptr("10.00"),
				TotalAmount: strptr("110.00"),
			},
			want: 0,
		},
		{
			name: "non-standard tax rate warns",
			details: &entity.ReceiptDetails{
				Subtotal:    strptr("100.00"),
				TaxAmount:   strptr("12.00"),
				TotalAmount: strptr("112.00"),
			},
			want:     1,
			severity: constants.SeverityWarning,
			contains: []string{"Unusual tax rate: 12.00%"},
		},
		{
			name: "total does not equal subtotal plus tax",
			details: &entity.ReceiptDetails{
				Subtotal:    strptr("100.00"),
				TaxAmount:   strptr("10.00"),
				TotalAmount: strptr("115.00"),
			},
			want:     1,
			severity: constants.SeverityError,
			contains: []string{"$115.00", "$110.00"},
		},
		{
			name: "tip outside expected range",
			details: &entity.ReceiptDetails{
				Subtotal:  strptr("100.00"),
				TipAmount: strptr("30.00"),
			},
			want:     1,
			severity: constants.SeverityWarning,
			contains: []string{"Unusual tip percentage: 30.00%"},
		},
		{
			name: "malformed amount degrades the whole group",
			details: &entity.ReceiptDetails{
				Subtotal:    strptr("abc"),
				TaxAmount:   strptr("10.00"),
				TotalAmount: strptr("110.00"),
			},
			want:     1,
			severity: constants.SeverityError,
			contains: []string{"Error in mathematical validation"},
		},
		{
			name: "no details no issues",
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine()
			issues := e.mathRules(tt.items, tt.details)
			require.Len(t, issues, tt.want)
			if tt.want == 1 {
				assert.Equal(t, constants.IssueMathError, issues[0].IssueType)
				assert.Equal(t, tt.severity, issues[0].Severity)
				for _, s := range tt.contains {
					assert.Contains(t, issues[0].Description, s)
				}
			}
		})
	}
}

func TestBusinessRules(t *testing.T) {
	t.Run("future date is an error", func(t *testing.T) {
		e := newTestEngine()
		fields := map[string]entity.FieldResult{
			"date": entity.Str("12/25/2026", 0.8),
		}
		issues := e.businessRules(fields, nil)
		require.Len(t, issues, 1)
		assert.Equal(t, constants.IssueSuspiciousAmount, issues[0].IssueType)
		assert.Equal(t, constants.SeverityError, issues[0].Severity)
		assert.Contains(t, issues[0].Description, "Future date detected: 12/25/2026")
		assert.Contains(t, issues[0].Description, "today is 2026-09-01")
	})

	t.Run("past date is fine", func(t *testing.T) {
		e := newTestEngine()
		fields := map[string]entity.FieldResult{
			"date": entity.Str("01/15/2026", 0.8),
		}
		assert.Empty(t, e.businessRules(fields, nil))
	})

	t.Run("two-digit year future date is still caught", func(t *testing.T) {
		e := newTestEngine()
		fields := map[string]entity.FieldResult{
			"date": entity.Str("12/25/26", 0.8),
		}
		issues := e.businessRules(fields, nil)
		require.Len(t, issues, 1)
		assert.Contains(t, issues[0].Description, "Future date detected: 12/25/26")
	})

	t.Run("high amount warns", func(t *testing.T) {
		e := newTestEngine()
		details := &entity.ReceiptDetails{TotalAmount: strptr("12500.00")}
		issues := e.businessRules(nil, details)
		require.Len(t, issues, 1)
		assert.Equal(t, constants.SeverityWarning, issues[0].Severity)
		assert.Contains(t, issues[0].Description, "Unusually high amount: $12500.00")
	})

	t.Run("total field with no value reads as zero and warns low", func(t *testing.T) {
		e := newTestEngine()
		fields := map[string]entity.FieldResult{
			"total": entity.NoMatch(),
		}
		issues := e.businessRules(fields, nil)
		require.Len(t, issues, 1)
		assert.Contains(t, issues[0].Description, "Unusually low amount: $0.00")
	})

	t.Run("no total source no amount issue", func(t *testing.T) {
		e := newTestEngine()
		assert.Empty(t, e.businessRules(map[string]entity.FieldResult{}, nil))
	})

	t.Run("weekend transaction outside business hours", func(t *testing.T) {
		e := newTestEngine()
		fields := map[string]entity.FieldResult{
			"date":  entity.Str("08/29/2026", 0.8), // a Saturday
			"total": entity.Str("50.00", 0.9),
		}
		details := &entity.ReceiptDetails{TransactionTime: strptr("22:30")}
		issues := e.businessRules(fields, details)
		require.Len(t, issues, 1)
		assert.Equal(t, constants.SeverityInfo, issues[0].Severity)
		assert.Contains(t, issues[0].Description, "Weekend transaction outside typical business hours: 22:30 on 08/29/2026")
	})

	t.Run("weekday late transaction not flagged", func(t *testing.T) {
		e := newTestEngine()
		fields := map[string]entity.FieldResult{
			"date":  entity.Str("08/31/2026", 0.8), // a Monday
			"total": entity.Str("50.00", 0.9),
		}
		details := &entity.ReceiptDetails{TransactionTime: strptr("22:30")}
		assert.Empty(t, e.businessRules(fields, details))
	})
}

func TestDataQualityRules(t *testing.T) {
	t.Run("only vendor and merchant missing stays a warning", func(t *testing.T) {
		e := newTestEngine()
		fields := map[string]entity.FieldResult{
			"date":  entity.Str("01/15/2026", 0.8),
			"total": entity.Str("42.00", 0.9),
		}
		issues := e.dataQualityRules(fields)
		require.Len(t, issues, 1)
		assert.Equal(t, constants.IssueMissingData, issues[0].IssueType)
		assert.Equal(t, constants.SeverityWarning, issues[0].Severity)
		assert.Equal(t, "Missing critical fields: vendor, merchant_name", issues[0].Description)
	})

	t.Run("missing total escalates to error", func(t *testing.T) {
		e := newTestEngine()
		fields := map[string]entity.FieldResult{
			"vendor":        entity.Str("Acme Corp", 0.7),
			"merchant_name": entity.Str("ACME", 0.8),
			"date":          entity.Str("01/15/2026", 0.8),
		}
		issues := e.dataQualityRules(fields)
		require.Len(t, issues, 1)
		assert.Equal(t, constants.SeverityError, issues[0].Severity)
		assert.Equal(t, "Missing critical fields: total", issues[0].Description)
	})

	t.Run("low confidence fields reported in sorted order", func(t *testing.T) {
		e := newTestEngine()
		fields := map[string]entity.FieldResult{
			"vendor":        entity.Str("Acme Corp", 0.50),
			"merchant_name": entity.Str("ACME", 0.8),
			"date":          entity.Str("01/15/2026", 0.65),
			"total":         entity.Str("42.00", 0.9),
		}
		issues := e.dataQualityRules(fields)
		require.Len(t, issues, 1)
		assert.Equal(t, constants.IssueLowConfidence, issues[0].IssueType)
		assert.Equal(t, "Low confidence OCR extractions: date (0.65), vendor (0.50)", issues[0].Description)
	})

	t.Run("no-value fields never flagged for confidence", func(t *testing.T) {
		e := newTestEngine()
		fields := map[string]entity.FieldResult{
			"vendor":        entity.Str("Acme Corp", 0.9),
			"merchant_name": entity.Str("ACME", 0.8),
			"date":          entity.Str("01/15/2026", 0.8),
			"total":         entity.Str("42.00", 0.9),
			"tip":           entity.NoMatch(),
		}
		assert.Empty(t, e.dataQualityRules(fields))
	})

	t.Run("negative amounts", func(t *testing.T) {
		e := newTestEngine()
		fields := map[string]entity.FieldResult{
			"vendor":        entity.Str("Acme Corp", 0.9),
			"merchant_name": entity.Str("ACME", 0.8),
			"date":          entity.Str("01/15/2026", 0.8),
			"total":         entity.Str("-42.00", 0.9),
			"tax":           entity.Str("-1.00", 0.9),
		}
		issues := e.dataQualityRules(fields)
		require.Len(t, issues, 1)
		assert.Equal(t, constants.SeverityError, issues[0].Severity)
		assert.Equal(t, "Negative amounts detected in fields: total, tax", issues[0].Description)
	})

	t.Run("two-digit year dates are not flagged invalid", func(t *testing.T) {
		e := newTestEngine()
		fields := map[string]entity.FieldResult{
			"vendor":        entity.Str("Acme Corp", 0.9),
			"merchant_name": entity.Str("ACME", 0.8),
			"date":          entity.Str("01-15-25", 0.8),
			"total":         entity.Str("42.00", 0.9),
		}
		assert.Empty(t, e.dataQualityRules(fields))
	})

	t.Run("unparseable date", func(t *testing.T) {
		e := newTestEngine()
		fields := map[string]entity.FieldResult{
			"vendor":        entity.Str("Acme Corp", 0.9),
			"merchant_name": entity.Str("ACME", 0.8),
			"date":          entity.Str("sometime in March", 0.8),
			"total":         entity.Str("42.00", 0.9),
		}
		issues := e.dataQualityRules(fields)
		require.Len(t, issues, 1)
		assert.Equal(t, "Invalid date format: sometime in March", issues[0].Description)
	})

	t.Run("threshold override", func(t *testing.T) {
		e := newTestEngine(WithLowConfidenceThreshold(0.95))
		fields := map[string]entity.FieldResult{
			"vendor":        entity.Str("Acme Corp", 0.9),
			"merchant_name": entity.Str("ACME", 0.8),
			"date":          entity.Str("01/15/2026", 0.8),
			"total":         entity.Str("42.00", 0.9),
		}
		issues := e.dataQualityRules(fields)
		require.Len(t, issues, 1)
		assert.Equal(t, constants.IssueLowConfidence, issues[0].IssueType)
	})
}

func TestVendorRules(t *testing.T) {
	t.Run("gas merchant with large total", func(t *testing.T) {
		e := newTestEngine()
		details := &entity.ReceiptDetails{
			MerchantName: strptr("Shell Station #42"),
			TotalAmount:  strptr("350.00"),
		}
		issues := e.vendorRules(nil, details)
		require.Len(t, issues, 1)
		assert.Equal(t, constants.SeverityInfo, issues[0].Severity)
		assert.Contains(t, issues[0].Description, "Unusual gas purchase amount: $350.00")
	})

	t.Run("restaurant tip ratio uses the total", func(t *testing.T) {
		e := newTestEngine()
		details := &entity.ReceiptDetails{
			MerchantName: strptr("Blue Door Cafe"),
			TotalAmount:  strptr("100.00"),
			TipAmount:    strptr("40.00"),
		}
		issues := e.vendorRules(nil, details)
		require.Len(t, issues, 1)
		assert.Contains(t, issues[0].Description, "Unusual tip percentage for restaurant: 40.00%")
	})

	t.Run("restaurant tip in range", func(t *testing.T) {
		e := newTestEngine()
		details := &entity.ReceiptDetails{
			MerchantName: strptr("Blue Door Cafe"),
			TotalAmount:  strptr("100.00"),
			TipAmount:    strptr("18.00"),
		}
		assert.Empty(t, e.vendorRules(nil, details))
	})

	t.Run("vendor field fallback when details lack a merchant", func(t *testing.T) {
		e := newTestEngine()
		fields := map[string]entity.FieldResult{
			"vendor": entity.Str("Kroger", 0.7),
			"total":  entity.Str("600.00", 0.9),
		}
		issues := e.vendorRules(fields, nil)
		require.Len(t, issues, 1)
		assert.Contains(t, issues[0].Description, "Unusual grocery purchase amount: $600.00")
	})

	t.Run("no merchant no issues", func(t *testing.T) {
		e := newTestEngine()
		assert.Empty(t, e.vendorRules(map[string]entity.FieldResult{}, nil))
	})
}

func TestIndustryRules(t *testing.T) {
	tests := []struct {
		name     string
		category string
		total    string
		tip      string
		want     int
		contains string
	}{
		{
			name:     "transportation low amount",
			category: "Transportation",
			total:    "5.00",
			want:     1,
			contains: "Unusual transportation amount: $5.00",
		},
		{
			name:     "transportation in range",
			category: "Transportation",
			total:    "45.00",
			want:     0,
		},
		{
			name:     "office supplies high amount",
			category: "Office Supplies",
			total:    "750.00",
			want:     1,
			contains: "Unusual office supplies amount: $750.00",
		},
		{
			name:     "food and dining tip out of range",
			category: "Food & Dining",
			total:    "100.00",
			tip:      "2.00",
			want:     1,
			contains: "Unusual tip percentage for restaurant: 2.00%",
		},
		{
			name:     "unknown category skipped",
			category: "Travel",
			total:    "5000.00",
			want:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine()
			details := &entity.ReceiptDetails{
				Category:    strptr(tt.category),
				TotalAmount: strptr(tt.total),
			}
			if tt.tip != "" {
				details.TipAmount = strptr(tt.tip)
			}
			issues := e.industryRules(nil, details)
			require.Len(t, issues, tt.want)
			if tt.want == 1 {
				assert.Equal(t, constants.IssueSuspiciousAmount, issues[0].IssueType)
				assert.Equal(t, constants.SeverityInfo, issues[0].Severity)
				assert.Contains(t, issues[0].Description, tt.contains)
			}
		})
	}
}

func TestValidateOrderAndIdempotence(t *testing.T) {
	e := newTestEngine()
	fields := map[string]entity.FieldResult{
		"date":  entity.Str("12/25/2026", 0.65),
		"total": entity.Str("0.50", 0.9),
	}
	items := []entity.LineItem{{ItemName: "Widget", Quantity: 1, UnitPrice: 15, TotalPrice: 15}}
	details := &entity.ReceiptDetails{
		Subtotal:    strptr("20.00"),
		TotalAmount: strptr("0.50"),
	}

	first := e.Validate(fields, items, details)
	second := e.Validate(fields, items, details)
	require.Equal(t, first, second)

	// group order: math before business before data quality
	require.NotEmpty(t, first)
	assert.Equal(t, constants.IssueMathError, first[0].IssueType)

	var sawBusiness, sawQuality bool
	businessIdx, qualityIdx := -1, -1
	for i, issue := range first {
		if issue.IssueType == constants.IssueSuspiciousAmount && !sawBusiness {
			sawBusiness = true
			businessIdx = i
		}
		if issue.IssueType == constants.IssueLowConfidence {
			sawQuality = true
			qualityIdx = i
		}
	}
	require.True(t, sawBusiness)
	require.True(t, sawQuality)
	assert.Less(t, businessIdx, qualityIdx)
}

func TestSummarize(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		s := Summarize(nil)
		assert.Equal(t, 0, s.TotalIssues)
		assert.Empty(t, s.IssuesByType)
	})

	t.Run("counts by severity type and acknowledgement", func(t *testing.T) {
		issues := []entity.ValidationIssue{
			{IssueType: constants.IssueMathError, Severity: constants.SeverityError},
			{IssueType: constants.IssueMathError, Severity: constants.SeverityWarning, Acknowledged: true},
			{IssueType: constants.IssueMissingData, Severity: constants.SeverityWarning},
			{IssueType: constants.IssueSuspiciousAmount, Severity: constants.SeverityInfo},
		}
		s := Summarize(issues)
		assert.Equal(t, 4, s.TotalIssues)
		assert.Equal(t, 1, s.Errors)
		assert.Equal(t, 2, s.Warnings)
		assert.Equal(t, 1, s.Info)
		assert.Equal(t, 3, s.Unacknowledged)
		assert.Equal(t, map[string]int{
			"MATH_ERROR":        2,
			"MISSING_DATA":      1,
			"SUSPICIOUS_AMOUNT": 1,
		}, s.IssuesByType)
	})
}
