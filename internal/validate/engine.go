// Package validate implements the rule-based validation engine: a pure
// function from extracted fields, line items and receipt details to an
// ordered list of typed, severity-ranked issues. The engine is idempotent
// and never consults previously stored issues.
package validate

import (
	"log/slog"
	"time"

	"github.com/tobi-akande/expense-scanner/internal/entity"
)

// StandardTaxRates are the rates the tax check accepts, with 0.5% tolerance.
var StandardTaxRates = []float64{0.05, 0.075, 0.10, 0.15}

const (
	taxRateTolerance = 0.005
	centTolerance    = 0.01

	tipRatioMin = 0.10
	tipRatioMax = 0.25
)

// Engine runs the five rule groups in fixed order. Rule tables are immutable
// configuration; a single Engine is safe for concurrent use across documents.
type Engine struct {
	logger        *slog.Logger
	taxRates      []float64
	lowConfidence float64
	now           func() time.Time
}

type Option func(*Engine)

// WithTaxRates overrides the standard tax-rate table.
func WithTaxRates(rates []float64) Option {
	return func(e *Engine) {
		if len(rates) > 0 {
			e.taxRates = rates
		}
	}
}

// WithLowConfidenceThreshold overrides the data-quality confidence floor.
func WithLowConfidenceThreshold(t float64) Option {
	return func(e *Engine) {
		if t > 0 {
			e.lowConfidence = t
		}
	}
}

// WithClock fixes the engine's notion of "today" (tests).
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

func NewEngine(logger *slog.Logger, opts ...Option) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	e := &Engine{
		logger:        logger,
		taxRates:      StandardTaxRates,
		lowConfidence: 0.70,
		now:           time.Now,
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Validate runs all rule groups and concatenates their issues in fixed order:
// mathematical, business, data quality, vendor-specific, industry-specific.
// Issues within a group keep detection order. No cross-group deduplication.
func (e *Engine) Validate(fields map[string]entity.FieldResult, items []entity.LineItem, details *entity.ReceiptDetails) []entity.ValidationIssue {
	var issues []entity.ValidationIssue

	issues = append(issues, e.mathRules(items, details)...)
	issues = append(issues, e.businessRules(fields, details)...)
	issues = append(issues, e.dataQualityRules(fields)...)
	issues = append(issues, e.vendorRules(fields, details)...)
	issues = append(issues, e.industryRules(fields, details)...)

	e.logger.Debug("validation complete", "issues", len(issues))
	return issues
}
